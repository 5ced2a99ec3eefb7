package auth

import (
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/mitchellh/mapstructure"
)

// Claims is the interpreted claim set of a bearer token.
type Claims struct {
	Subject   string
	Email     string
	Name      string
	Picture   string
	Scopes    []string
	Roles     []string
	ExpiresAt time.Time
}

// Principal is the identity a token grant is bound to: the email when the
// token carries one, the subject otherwise.
func (c *Claims) Principal() string {
	if c.Email != "" {
		return c.Email
	}
	return c.Subject
}

// Expired reports whether the token expired strictly before now.
func (c *Claims) Expired(now time.Time) bool {
	return c.ExpiresAt.Before(now)
}

// TokenCredential interprets the claims of a bearer token. It does not check
// signatures; that is the job of a ports.TokenVerifier, which must have
// accepted the token first.
type TokenCredential struct {
	rolesClaim string
	parser     *jwt.Parser
	now        func() time.Time
}

// NewTokenCredential reads roles from the identity provider's namespaced
// claim, https://<domain>/roles.
func NewTokenCredential(domain string) *TokenCredential {
	return &TokenCredential{
		rolesClaim: RolesClaim(domain),
		parser:     jwt.NewParser(jwt.WithoutClaimsValidation()),
		now:        time.Now,
	}
}

func RolesClaim(domain string) string {
	domain = strings.TrimSuffix(strings.TrimPrefix(domain, "https://"), "/")
	return fmt.Sprintf("https://%s/roles", domain)
}

// WithClock overrides the time source used for expiry checks.
func (t *TokenCredential) WithClock(now func() time.Time) *TokenCredential {
	t.now = now
	return t
}

func (t *TokenCredential) Validate(raw string) (*Claims, error) {
	mapClaims := jwt.MapClaims{}
	if _, _, err := t.parser.ParseUnverified(raw, mapClaims); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTokenMalformed, err)
	}

	exp, err := mapClaims.GetExpirationTime()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTokenMalformed, err)
	}
	if exp == nil {
		return nil, fmt.Errorf("%w: exp claim missing", ErrTokenMalformed)
	}

	claims := &Claims{
		Subject:   stringClaim(mapClaims, "sub"),
		Email:     stringClaim(mapClaims, "email"),
		Name:      stringClaim(mapClaims, "name"),
		Picture:   stringClaim(mapClaims, "picture"),
		Scopes:    strings.Fields(stringClaim(mapClaims, "scope")),
		Roles:     t.roles(mapClaims),
		ExpiresAt: exp.Time,
	}

	if claims.Expired(t.now()) {
		return nil, ErrTokenExpired
	}
	return claims, nil
}

// roles decodes the namespaced roles claim. A claim of the wrong shape yields
// no roles rather than rejecting the token.
func (t *TokenCredential) roles(claims jwt.MapClaims) []string {
	raw, ok := claims[t.rolesClaim]
	if !ok || raw == nil {
		return nil
	}
	var roles []string
	if err := mapstructure.Decode(raw, &roles); err != nil {
		return nil
	}
	return roles
}

// DeriveAuthorities maps scopes to SCOPE_<scope> and roles to ROLE_<role>.
func DeriveAuthorities(claims *Claims) Authorities {
	authorities := make(Authorities, len(claims.Scopes)+len(claims.Roles))
	for _, s := range claims.Scopes {
		if s != "" {
			authorities.Add(ScopePrefix + s)
		}
	}
	for _, r := range claims.Roles {
		if r != "" {
			authorities.Add(RolePrefix + r)
		}
	}
	return authorities
}

// TokenGrant builds the grant for a validated token.
func TokenGrant(claims *Claims) *AuthorityGrant {
	return &AuthorityGrant{
		Principal:   claims.Principal(),
		Authorities: DeriveAuthorities(claims),
		Domain:      RouteProtected,
		Claims:      claims,
	}
}

func stringClaim(claims jwt.MapClaims, name string) string {
	v, _ := claims[name].(string)
	return v
}
