package auth

import (
	"context"
	"crypto/rsa"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"healthgate/internal/config"
	domain "healthgate/internal/core/domain/auth"
	"healthgate/internal/platform/logger"
)

const (
	testIssuer   = "https://tenant.auth0.com/"
	testAudience = "https://api.healthgate.dev"
	testSecret   = "test-signing-secret"
)

func validClaims() jwt.MapClaims {
	return jwt.MapClaims{
		"iss":   testIssuer,
		"aud":   []string{testAudience, "https://tenant.auth0.com/userinfo"},
		"sub":   "auth0|42",
		"email": "ops@example.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
	}
}

func signHS256(t *testing.T, claims jwt.MapClaims, secret string) string {
	t.Helper()
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return raw
}

type JWTVerifierTestSuite struct {
	suite.Suite
	verifier *JWTVerifier
	ctx      context.Context
}

func (s *JWTVerifierTestSuite) SetupTest() {
	s.verifier = NewJWTVerifier(NewSecretKeyProvider(testSecret), testIssuer, testAudience, jwt.SigningMethodHS256.Alg())
	s.ctx = context.Background()
}

func (s *JWTVerifierTestSuite) TestVerify_Valid() {
	err := s.verifier.Verify(s.ctx, signHS256(s.T(), validClaims(), testSecret))

	s.NoError(err)
}

func (s *JWTVerifierTestSuite) TestVerify_SingleAudienceString() {
	claims := validClaims()
	claims["aud"] = testAudience

	err := s.verifier.Verify(s.ctx, signHS256(s.T(), claims, testSecret))

	s.NoError(err)
}

func (s *JWTVerifierTestSuite) TestVerify_ExpiredTokenIsLeftToTokenCredential() {
	claims := validClaims()
	claims["exp"] = time.Now().Add(-time.Hour).Unix()

	err := s.verifier.Verify(s.ctx, signHS256(s.T(), claims, testSecret))

	s.NoError(err)
}

func (s *JWTVerifierTestSuite) TestVerify_Rejections() {
	tests := []struct {
		name     string
		token    func() string
		expected error
	}{
		{
			name:     "garbage",
			token:    func() string { return "not-a-jwt" },
			expected: domain.ErrTokenMalformed,
		},
		{
			name:     "wrong secret",
			token:    func() string { return signHS256(s.T(), validClaims(), "other-secret") },
			expected: domain.ErrTokenUnverified,
		},
		{
			name: "wrong issuer",
			token: func() string {
				claims := validClaims()
				claims["iss"] = "https://evil.example.com/"
				return signHS256(s.T(), claims, testSecret)
			},
			expected: domain.ErrTokenUnverified,
		},
		{
			name: "missing issuer",
			token: func() string {
				claims := validClaims()
				delete(claims, "iss")
				return signHS256(s.T(), claims, testSecret)
			},
			expected: domain.ErrTokenUnverified,
		},
		{
			name: "wrong audience",
			token: func() string {
				claims := validClaims()
				claims["aud"] = "https://other-api.example.com"
				return signHS256(s.T(), claims, testSecret)
			},
			expected: domain.ErrTokenUnverified,
		},
		{
			name: "disallowed signing method",
			token: func() string {
				raw, err := jwt.NewWithClaims(jwt.SigningMethodHS512, validClaims()).SignedString([]byte(testSecret))
				s.Require().NoError(err)
				return raw
			},
			expected: domain.ErrTokenUnverified,
		},
		{
			name: "unsigned token",
			token: func() string {
				raw, err := jwt.NewWithClaims(jwt.SigningMethodNone, validClaims()).SignedString(jwt.UnsafeAllowNoneSignatureType)
				s.Require().NoError(err)
				return raw
			},
			expected: domain.ErrTokenUnverified,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			err := s.verifier.Verify(s.ctx, tt.token())

			s.ErrorIs(err, tt.expected)
		})
	}
}

func TestJWTVerifierTestSuite(t *testing.T) {
	suite.Run(t, new(JWTVerifierTestSuite))
}

func signRS256(t *testing.T, key *rsa.PrivateKey, kid string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	token.Header["kid"] = kid
	raw, err := token.SignedString(key)
	require.NoError(t, err)
	return raw
}

func TestJWTVerifier_RS256WithJWKS(t *testing.T) {
	key := generateRSAKey(t)
	server := newJWKSServer(jwkFor("key-1", &key.PublicKey))
	defer server.Close()

	verifier := NewJWTVerifier(NewJWKSKeyProvider(server.URL, time.Hour, nil), testIssuer, testAudience)
	ctx := context.Background()

	assert.NoError(t, verifier.Verify(ctx, signRS256(t, key, "key-1", validClaims())))

	other := generateRSAKey(t)
	err := verifier.Verify(ctx, signRS256(t, other, "key-1", validClaims()))
	assert.ErrorIs(t, err, domain.ErrTokenUnverified)

	err = verifier.Verify(ctx, signRS256(t, key, "unknown-kid", validClaims()))
	assert.ErrorIs(t, err, domain.ErrTokenUnverified)

	// An HS256 token must not be accepted just because the key set is RSA.
	err = verifier.Verify(ctx, signHS256(t, validClaims(), testSecret))
	assert.ErrorIs(t, err, domain.ErrTokenUnverified)
}

func TestNewVerifier(t *testing.T) {
	log := logger.NewNop()

	t.Run("signing secret", func(t *testing.T) {
		cfg := &config.SecurityConfig{Auth0: config.Auth0Config{
			SigningSecret: testSecret,
			Issuer:        testIssuer,
			Audience:      testAudience,
		}}

		verifier := NewVerifier(cfg, log)

		require.IsType(t, &JWTVerifier{}, verifier)
		assert.NoError(t, verifier.Verify(context.Background(), signHS256(t, validClaims(), testSecret)))
	})

	t.Run("jwks", func(t *testing.T) {
		cfg := &config.SecurityConfig{Auth0: config.Auth0Config{
			JWKSURL:      "https://tenant.auth0.com/.well-known/jwks.json",
			JWKSCacheTTL: time.Minute,
		}}

		verifier := NewVerifier(cfg, log)

		jwtVerifier, ok := verifier.(*JWTVerifier)
		require.True(t, ok)
		assert.IsType(t, &JWKSKeyProvider{}, jwtVerifier.keys)
	})

	t.Run("nothing configured", func(t *testing.T) {
		verifier := NewVerifier(&config.SecurityConfig{}, log)

		err := verifier.Verify(context.Background(), signHS256(t, validClaims(), testSecret))

		assert.ErrorIs(t, err, domain.ErrTokenUnverified)
		assert.ErrorIs(t, err, ErrNotConfigured)
	})
}
