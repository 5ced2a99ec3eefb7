package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"

	"healthgate/internal/platform/validator"
)

type HttpConfig struct {
	BaseConfig
	Server    HttpServerConfig `envconfig:"HTTP_SERVER"`
	RateLimit RateLimitConfig  `envconfig:"RATE_LIMIT"`
	CORS      CORSConfig       `envconfig:"CORS"`
}

// HttpServerConfig timeouts are in seconds.
type HttpServerConfig struct {
	Host              string `envconfig:"HOST" default:"0.0.0.0"`
	Port              int    `envconfig:"HTTP_SERVER_PORT" default:"8080" validate:"gte=1,lte=65535"`
	ReadTimeout       int    `envconfig:"READ_TIMEOUT" default:"30" validate:"gte=0"`
	ReadHeaderTimeout int    `envconfig:"READ_HEADER_TIMEOUT" default:"10" validate:"gte=0"`
	WriteTimeout      int    `envconfig:"WRITE_TIMEOUT" default:"30" validate:"gte=0"`
	IdleTimeout       int    `envconfig:"IDLE_TIMEOUT" default:"120" validate:"gte=0"`
	ShutdownTimeout   int    `envconfig:"SHUTDOWN_TIMEOUT" default:"30" validate:"gte=0"`
}

func (c HttpServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

func (c HttpServerConfig) ShutdownGrace() time.Duration {
	return seconds(c.ShutdownTimeout)
}

func seconds(n int) time.Duration {
	return time.Duration(n) * time.Second
}

type RateLimitConfig struct {
	GlobalRequests int `envconfig:"GLOBAL_REQUESTS" default:"1000" validate:"gt=0"`
	GlobalWindow   int `envconfig:"GLOBAL_WINDOW" default:"60" validate:"gt=0"`
	RequestsPerIP  int `envconfig:"REQUESTS_PER_IP" default:"100" validate:"gt=0"`
	WindowSeconds  int `envconfig:"WINDOW_SECONDS" default:"60" validate:"gt=0"`
}

func (c RateLimitConfig) Global() time.Duration {
	return seconds(c.GlobalWindow)
}

func (c RateLimitConfig) PerIP() time.Duration {
	return seconds(c.WindowSeconds)
}

// CORSConfig defaults admit the headers the gateway reads: Authorization
// for bearer tokens and X-API-KEY for monitoring.
type CORSConfig struct {
	AllowedOrigins   []string `envconfig:"ALLOWED_ORIGINS" default:"*"`
	AllowedMethods   []string `envconfig:"ALLOWED_METHODS" default:"GET,POST,OPTIONS"`
	AllowedHeaders   []string `envconfig:"ALLOWED_HEADERS" default:"Accept,Authorization,Content-Type,X-API-KEY"`
	ExposedHeaders   []string `envconfig:"EXPOSED_HEADERS" default:"X-Request-Id,WWW-Authenticate"`
	AllowCredentials bool     `envconfig:"ALLOW_CREDENTIALS" default:"false"`
	MaxAge           int      `envconfig:"MAX_AGE" default:"86400" validate:"gte=0"`
}

func LoadHttp(v validator.Validator) (*HttpConfig, error) {
	var cfg HttpConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if err := v.Validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid http config: %w", err)
	}
	return &cfg, nil
}
