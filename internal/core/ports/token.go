package ports

import "context"

// TokenVerifier checks a bearer token's signature, issuer and audience
// against the identity provider's trust anchors. Claim interpretation and
// expiry are left to the caller.
type TokenVerifier interface {
	Verify(ctx context.Context, raw string) error
}
