package auth

import (
	"errors"
	"fmt"
)

var (
	ErrTokenMissing    = errors.New("missing bearer token")
	ErrTokenMalformed  = errors.New("token malformed")
	ErrTokenExpired    = errors.New("token expired")
	ErrTokenUnverified = errors.New("token rejected")
	ErrKeyMissing      = errors.New("api key missing")
	ErrKeyInvalid      = errors.New("api key invalid")
	ErrKeyDisabled     = errors.New("api key authentication disabled")
)

// Failure is an authentication failure scoped to the route class whose
// credential check produced it.
type Failure struct {
	Domain RouteClass
	Err    error
}

func NewFailure(domain RouteClass, err error) *Failure {
	return &Failure{Domain: domain, Err: err}
}

func (f *Failure) Error() string {
	return fmt.Sprintf("%s authentication failed: %v", f.Domain, f.Err)
}

func (f *Failure) Unwrap() error {
	return f.Err
}

// Message is the client-facing text: the sentinel's own message without
// the wrapped detail.
func (f *Failure) Message() string {
	for _, sentinel := range []error{
		ErrTokenMissing, ErrTokenMalformed, ErrTokenExpired, ErrTokenUnverified,
		ErrKeyMissing, ErrKeyInvalid, ErrKeyDisabled,
	} {
		if errors.Is(f.Err, sentinel) {
			return sentinel.Error()
		}
	}
	return "authentication failed"
}

// Reason is a short, stable label for metrics and logs.
func (f *Failure) Reason() string {
	switch {
	case errors.Is(f.Err, ErrTokenMissing):
		return "token_missing"
	case errors.Is(f.Err, ErrTokenMalformed):
		return "token_malformed"
	case errors.Is(f.Err, ErrTokenExpired):
		return "token_expired"
	case errors.Is(f.Err, ErrTokenUnverified):
		return "token_unverified"
	case errors.Is(f.Err, ErrKeyMissing):
		return "key_missing"
	case errors.Is(f.Err, ErrKeyInvalid):
		return "key_invalid"
	case errors.Is(f.Err, ErrKeyDisabled):
		return "key_disabled"
	default:
		return "unknown"
	}
}
