package auth

import (
	"context"
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"net/http"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"healthgate/internal/version"
)

var ErrKeyNotFound = errors.New("signing key not found")

// minRefreshInterval bounds how often an unknown key id may trigger a fetch.
const minRefreshInterval = 30 * time.Second

// KeyProvider resolves the key that verifies a token signed under keyID.
type KeyProvider interface {
	GetKey(ctx context.Context, keyID string) (any, error)
}

// SecretKeyProvider serves one shared HMAC secret regardless of key id.
type SecretKeyProvider struct {
	secret []byte
}

func NewSecretKeyProvider(secret string) *SecretKeyProvider {
	return &SecretKeyProvider{secret: []byte(secret)}
}

func (p *SecretKeyProvider) GetKey(context.Context, string) (any, error) {
	return p.secret, nil
}

// JWKSKeyProvider caches the identity provider's RSA signing keys. Missing
// or stale keys trigger one refresh at a time, and at most one per
// minRefresh; if a refresh fails the last known keys keep serving.
type JWKSKeyProvider struct {
	url        string
	ttl        time.Duration
	minRefresh time.Duration
	client     *http.Client

	mu          sync.RWMutex
	keys        map[string]*rsa.PublicKey
	fetchedAt   time.Time
	attemptedAt time.Time
	refreshes   singleflight.Group
}

func NewJWKSKeyProvider(url string, ttl time.Duration, client *http.Client) *JWKSKeyProvider {
	if ttl <= 0 {
		ttl = time.Hour
	}
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &JWKSKeyProvider{
		url:        url,
		ttl:        ttl,
		minRefresh: min(ttl, minRefreshInterval),
		client:     client,
		keys:       make(map[string]*rsa.PublicKey),
	}
}

func (p *JWKSKeyProvider) GetKey(ctx context.Context, keyID string) (any, error) {
	p.mu.RLock()
	fresh := time.Since(p.fetchedAt) < p.ttl
	throttled := !p.attemptedAt.IsZero() && time.Since(p.attemptedAt) < p.minRefresh
	key := p.lookupLocked(keyID)
	p.mu.RUnlock()

	if key != nil && (fresh || throttled) {
		return key, nil
	}
	if throttled {
		return nil, ErrKeyNotFound
	}

	_, err, _ := p.refreshes.Do("refresh", func() (any, error) {
		return nil, p.refresh(ctx)
	})

	p.mu.RLock()
	key = p.lookupLocked(keyID)
	p.mu.RUnlock()

	if key != nil {
		return key, nil
	}
	if err != nil {
		return nil, err
	}
	return nil, ErrKeyNotFound
}

// lookupLocked finds a key by id; an empty id matches only a single-key set.
func (p *JWKSKeyProvider) lookupLocked(keyID string) *rsa.PublicKey {
	if keyID == "" {
		if len(p.keys) != 1 {
			return nil
		}
		for _, key := range p.keys {
			return key
		}
	}
	return p.keys[keyID]
}

func (p *JWKSKeyProvider) refresh(ctx context.Context) error {
	defer func() {
		p.mu.Lock()
		p.attemptedAt = time.Now()
		p.mu.Unlock()
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.url, nil)
	if err != nil {
		return fmt.Errorf("create jwks request: %w", err)
	}
	req.Header.Set("User-Agent", version.UserAgent())
	req.Header.Set("Accept", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return fmt.Errorf("fetch jwks: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("fetch jwks: unexpected status %d", resp.StatusCode)
	}

	var set jwkSet
	if err := json.NewDecoder(resp.Body).Decode(&set); err != nil {
		return fmt.Errorf("decode jwks: %w", err)
	}

	keys := make(map[string]*rsa.PublicKey, len(set.Keys))
	for _, k := range set.Keys {
		if k.Kty != "RSA" || (k.Use != "" && k.Use != "sig") {
			continue
		}
		pub, err := k.rsaPublicKey()
		if err != nil {
			continue
		}
		keys[k.Kid] = pub
	}
	if len(keys) == 0 {
		return errors.New("jwks contains no usable RSA signing keys")
	}

	p.mu.Lock()
	p.keys = keys
	p.fetchedAt = time.Now()
	p.mu.Unlock()
	return nil
}

type jwkSet struct {
	Keys []jwk `json:"keys"`
}

type jwk struct {
	Kty string `json:"kty"`
	Kid string `json:"kid"`
	Use string `json:"use"`
	N   string `json:"n"`
	E   string `json:"e"`
}

func (k jwk) rsaPublicKey() (*rsa.PublicKey, error) {
	if k.N == "" || k.E == "" {
		return nil, errors.New("jwk missing modulus or exponent")
	}
	n, err := base64.RawURLEncoding.DecodeString(k.N)
	if err != nil {
		return nil, fmt.Errorf("decode modulus: %w", err)
	}
	e, err := base64.RawURLEncoding.DecodeString(k.E)
	if err != nil {
		return nil, fmt.Errorf("decode exponent: %w", err)
	}
	exponent := new(big.Int).SetBytes(e)
	if !exponent.IsInt64() || exponent.Int64() < 3 {
		return nil, errors.New("jwk exponent out of range")
	}
	return &rsa.PublicKey{
		N: new(big.Int).SetBytes(n),
		E: int(exponent.Int64()),
	}, nil
}
