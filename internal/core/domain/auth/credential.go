package auth

import "strings"

const bearerPrefix = "Bearer "

// Credential is what a request presented: a BearerToken, an APIKey or
// Absent.
type Credential interface {
	credential()
}

type BearerToken struct {
	Raw    string
	Claims *Claims
}

type APIKey struct {
	Raw string
}

type Absent struct{}

func (BearerToken) credential() {}
func (APIKey) credential()      {}
func (Absent) credential()      {}

// BearerFromHeader extracts the token from an Authorization header value.
func BearerFromHeader(header string) Credential {
	token, ok := strings.CutPrefix(header, bearerPrefix)
	if !ok {
		return Absent{}
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return Absent{}
	}
	return BearerToken{Raw: token}
}

// APIKeyFromHeader wraps a shared-secret header value.
func APIKeyFromHeader(header string) Credential {
	if header == "" {
		return Absent{}
	}
	return APIKey{Raw: header}
}
