package version

import "runtime/debug"

const Service = "healthgate"

// Set at build time with -ldflags "-X healthgate/internal/version.Version=...".
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func Get() string {
	return Version
}

type BuildInfo struct {
	Service   string `json:"service"`
	Version   string `json:"version"`
	BuildTime string `json:"build_time"`
	GitCommit string `json:"git_commit"`
	GoVersion string `json:"go_version,omitempty"`
}

func Info() BuildInfo {
	info := BuildInfo{
		Service:   Service,
		Version:   Version,
		BuildTime: BuildTime,
		GitCommit: GitCommit,
	}
	if bi, ok := debug.ReadBuildInfo(); ok {
		info.GoVersion = bi.GoVersion
	}
	return info
}

// UserAgent identifies outbound requests to the identity provider.
func UserAgent() string {
	return Service + "/" + Version
}
