package auth

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/golang-jwt/jwt/v5"

	"healthgate/internal/config"
	domain "healthgate/internal/core/domain/auth"
	"healthgate/internal/core/ports"
	"healthgate/internal/platform/logger"
)

var ErrNotConfigured = errors.New("no token trust anchor configured")

// JWTVerifier checks a bearer token's signature, issuer and audience.
// Expiry and claim interpretation stay with domain.TokenCredential.
type JWTVerifier struct {
	keys     KeyProvider
	issuer   string
	audience string
	parser   *jwt.Parser
}

var _ ports.TokenVerifier = (*JWTVerifier)(nil)

func NewJWTVerifier(keys KeyProvider, issuer, audience string, methods ...string) *JWTVerifier {
	if len(methods) == 0 {
		methods = []string{jwt.SigningMethodRS256.Alg()}
	}
	return &JWTVerifier{
		keys:     keys,
		issuer:   issuer,
		audience: audience,
		parser: jwt.NewParser(
			jwt.WithValidMethods(methods),
			jwt.WithoutClaimsValidation(),
		),
	}
}

func (v *JWTVerifier) Verify(ctx context.Context, raw string) error {
	claims := jwt.MapClaims{}
	_, err := v.parser.ParseWithClaims(raw, claims, func(token *jwt.Token) (any, error) {
		kid, _ := token.Header["kid"].(string)
		return v.keys.GetKey(ctx, kid)
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenMalformed) {
			return fmt.Errorf("%w: %v", domain.ErrTokenMalformed, err)
		}
		return fmt.Errorf("%w: %v", domain.ErrTokenUnverified, err)
	}

	if v.issuer != "" {
		iss, err := claims.GetIssuer()
		if err != nil || iss != v.issuer {
			return fmt.Errorf("%w: unexpected issuer %q", domain.ErrTokenUnverified, iss)
		}
	}

	if v.audience != "" {
		aud, err := claims.GetAudience()
		if err != nil || !slices.Contains(aud, v.audience) {
			return fmt.Errorf("%w: audience %q not granted", domain.ErrTokenUnverified, v.audience)
		}
	}

	return nil
}

type rejectingVerifier struct{}

func (rejectingVerifier) Verify(context.Context, string) error {
	return fmt.Errorf("%w: %w", domain.ErrTokenUnverified, ErrNotConfigured)
}

// NewVerifier builds the verifier the security config asks for: HS256 with
// a shared secret, RS256 against the tenant JWKS, or one that rejects every
// token when neither is set.
func NewVerifier(cfg *config.SecurityConfig, log logger.Logger) ports.TokenVerifier {
	auth0 := cfg.Auth0
	switch {
	case auth0.SigningSecret != "":
		log.Warn("Verifying bearer tokens with a shared HS256 secret; use only outside production")
		return NewJWTVerifier(NewSecretKeyProvider(auth0.SigningSecret), auth0.Issuer, auth0.Audience, jwt.SigningMethodHS256.Alg())
	case auth0.JWKSURL != "":
		log.Info("Verifying bearer tokens against JWKS", logger.String("jwks_url", auth0.JWKSURL))
		keys := NewJWKSKeyProvider(auth0.JWKSURL, auth0.JWKSCacheTTL, nil)
		return NewJWTVerifier(keys, auth0.Issuer, auth0.Audience)
	default:
		log.Warn("No token trust anchor configured, protected routes will reject every bearer token")
		return rejectingVerifier{}
	}
}
