package auth

import "crypto/subtle"

// KeyCredential checks a presented shared secret against the configured one.
// It fails closed: a disabled check, an empty configured key or an empty
// presented key never validates.
type KeyCredential struct {
	configured string
	enabled    bool
}

func NewKeyCredential(configured string, enabled bool) KeyCredential {
	return KeyCredential{configured: configured, enabled: enabled}
}

func (k KeyCredential) Enabled() bool {
	return k.enabled
}

func (k KeyCredential) Configured() bool {
	return k.configured != ""
}

// Check returns nil when provided matches, or the reason it does not.
func (k KeyCredential) Check(provided string) error {
	if !k.enabled {
		return ErrKeyDisabled
	}
	if provided == "" {
		return ErrKeyMissing
	}
	if k.configured == "" {
		return ErrKeyInvalid
	}
	if subtle.ConstantTimeCompare([]byte(provided), []byte(k.configured)) != 1 {
		return ErrKeyInvalid
	}
	return nil
}
