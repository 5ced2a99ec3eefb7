package health

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"healthgate/internal/platform/health"
	"healthgate/internal/version"
)

// IssuerProbe checks that the identity provider's discovery document is
// being served.
type IssuerProbe struct {
	client   *http.Client
	endpoint string
}

var _ health.Probe = (*IssuerProbe)(nil)

func NewIssuerProbe(endpoint string, timeout time.Duration) *IssuerProbe {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &IssuerProbe{
		client: &http.Client{
			Timeout: timeout,
		},
		endpoint: endpoint,
	}
}

// DiscoveryURL derives the OIDC discovery location from an issuer URL.
func DiscoveryURL(issuer string) string {
	for len(issuer) > 0 && issuer[len(issuer)-1] == '/' {
		issuer = issuer[:len(issuer)-1]
	}
	return issuer + "/.well-known/openid-configuration"
}

func (p *IssuerProbe) Name() string {
	return IssuerProbeName
}

func (p *IssuerProbe) Check(ctx context.Context) (health.Outcome, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.endpoint, nil)
	if err != nil {
		return health.Outcome{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", version.UserAgent())

	resp, err := p.client.Do(req)
	if err != nil {
		return health.Outcome{}, fmt.Errorf("discovery request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return health.Outcome{}, fmt.Errorf("discovery returned status %d", resp.StatusCode)
	}

	return health.Up(map[string]any{
		"endpoint":   p.endpoint,
		"statusCode": resp.StatusCode,
	}), nil
}
