package auth

import "context"

type grantKey struct{}

// WithGrant attaches the request's authority grant to ctx.
func WithGrant(ctx context.Context, grant *AuthorityGrant) context.Context {
	return context.WithValue(ctx, grantKey{}, grant)
}

// GrantFromContext returns the grant attached by WithGrant, or nil.
func GrantFromContext(ctx context.Context) *AuthorityGrant {
	grant, _ := ctx.Value(grantKey{}).(*AuthorityGrant)
	return grant
}
