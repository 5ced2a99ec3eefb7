package health

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"healthgate/internal/platform/health"
	"healthgate/internal/version"
)

func TestDiscoveryURL(t *testing.T) {
	tests := []struct {
		issuer   string
		expected string
	}{
		{issuer: "https://tenant.auth0.com/", expected: "https://tenant.auth0.com/.well-known/openid-configuration"},
		{issuer: "https://tenant.auth0.com", expected: "https://tenant.auth0.com/.well-known/openid-configuration"},
	}

	for _, tt := range tests {
		t.Run(tt.issuer, func(t *testing.T) {
			assert.Equal(t, tt.expected, DiscoveryURL(tt.issuer))
		})
	}
}

func TestIssuerProbe_Check_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/.well-known/openid-configuration", r.URL.Path)
		assert.Equal(t, version.UserAgent(), r.Header.Get("User-Agent"))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"issuer":"https://tenant.auth0.com/"}`))
	}))
	defer server.Close()

	probe := NewIssuerProbe(DiscoveryURL(server.URL), time.Second)

	outcome, err := probe.Check(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "issuer", probe.Name())
	assert.Equal(t, health.StatusUp, outcome.Status)
	assert.Equal(t, http.StatusOK, outcome.Detail["statusCode"])
}

func TestIssuerProbe_Check_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	probe := NewIssuerProbe(server.URL, time.Second)

	_, err := probe.Check(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestIssuerProbe_Check_InvalidURL(t *testing.T) {
	probe := NewIssuerProbe("://bad-url", time.Second)

	_, err := probe.Check(context.Background())

	assert.Error(t, err)
}

func TestIssuerProbe_Check_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	probe := NewIssuerProbe(server.URL, 20*time.Millisecond)

	_, err := probe.Check(context.Background())

	assert.Error(t, err)
}
