package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"

	"healthgate/internal/platform/validator"
)

type SecurityConfig struct {
	BaseConfig
	HealthCheck HealthCheckConfig `envconfig:"HEALTH_CHECK"`
	Auth0       Auth0Config       `envconfig:"AUTH0"`
	RoutesFile  string            `envconfig:"SECURITY_ROUTES_FILE"`
	Routes      RouteSets         `ignored:"true"`
}

type HealthCheckConfig struct {
	APIKey  string `envconfig:"API_KEY"`
	Enabled bool   `envconfig:"ENABLED" default:"true"`
	Header  string `envconfig:"HEADER" default:"X-API-KEY" validate:"required"`
}

type Auth0Config struct {
	Domain        string        `envconfig:"DOMAIN"`
	Audience      string        `envconfig:"AUDIENCE"`
	Issuer        string        `envconfig:"ISSUER" validate:"omitempty,url"`
	JWKSURL       string        `envconfig:"JWKS_URL" validate:"omitempty,url"`
	SigningSecret string        `envconfig:"SIGNING_SECRET"`
	JWKSCacheTTL  time.Duration `envconfig:"JWKS_CACHE_TTL" default:"1h" validate:"gt=0"`
}

// Configured reports whether any trust anchor for bearer tokens is set.
func (c *Auth0Config) Configured() bool {
	return c.JWKSURL != "" || c.SigningSecret != ""
}

// Host is the tenant domain without scheme or trailing slash.
func (c *Auth0Config) Host() string {
	return strings.TrimSuffix(strings.TrimPrefix(c.Domain, "https://"), "/")
}

func (c *Auth0Config) applyDefaults() {
	host := c.Host()
	if host == "" {
		return
	}
	if c.Issuer == "" {
		c.Issuer = fmt.Sprintf("https://%s/", host)
	}
	if c.JWKSURL == "" && c.SigningSecret == "" {
		c.JWKSURL = fmt.Sprintf("https://%s/.well-known/jwks.json", host)
	}
}

func LoadSecurity(v validator.Validator) (*SecurityConfig, error) {
	var cfg SecurityConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	cfg.Auth0.applyDefaults()

	routes, err := LoadRouteSets(cfg.RoutesFile)
	if err != nil {
		return nil, err
	}
	cfg.Routes = routes

	if err := v.Validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid security config: %w", err)
	}
	return &cfg, nil
}
