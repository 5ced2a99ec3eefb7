package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func withBuild(t *testing.T, v, built, commit string) {
	t.Helper()
	origVersion, origBuilt, origCommit := Version, BuildTime, GitCommit
	t.Cleanup(func() {
		Version, BuildTime, GitCommit = origVersion, origBuilt, origCommit
	})
	Version, BuildTime, GitCommit = v, built, commit
}

func TestGet_Default(t *testing.T) {
	assert.Equal(t, "dev", Get())
}

func TestInfo(t *testing.T) {
	withBuild(t, "1.4.0", "2026-10-01T12:00:00Z", "abc1234")

	info := Info()

	assert.Equal(t, Service, info.Service)
	assert.Equal(t, "1.4.0", info.Version)
	assert.Equal(t, "2026-10-01T12:00:00Z", info.BuildTime)
	assert.Equal(t, "abc1234", info.GitCommit)
	assert.NotEmpty(t, info.GoVersion)
}

func TestUserAgent(t *testing.T) {
	assert.Equal(t, "healthgate/dev", UserAgent())

	withBuild(t, "2.0.1", "unknown", "unknown")
	assert.Equal(t, "healthgate/2.0.1", UserAgent())
}
