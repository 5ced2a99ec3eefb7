package auth

import (
	"path"
	"strings"
)

type RouteClass string

const (
	RoutePublic     RouteClass = "PUBLIC"
	RouteMonitoring RouteClass = "MONITORING"
	RouteProtected  RouteClass = "PROTECTED"
)

// Classifier maps request paths onto route classes. Patterns ending in
// "/**" match the prefix itself and anything below it; any other pattern
// must match the path exactly. Public patterns are consulted first.
type Classifier struct {
	public     []string
	monitoring []string
}

func NewClassifier(public, monitoring []string) *Classifier {
	return &Classifier{
		public:     normalizePatterns(public),
		monitoring: normalizePatterns(monitoring),
	}
}

func (c *Classifier) Classify(path string) RouteClass {
	path = normalizePath(path)
	if matchAny(c.public, path) {
		return RoutePublic
	}
	if matchAny(c.monitoring, path) {
		return RouteMonitoring
	}
	return RouteProtected
}

func (c *Classifier) PublicPatterns() []string {
	return append([]string(nil), c.public...)
}

func (c *Classifier) MonitoringPatterns() []string {
	return append([]string(nil), c.monitoring...)
}

func matchAny(patterns []string, path string) bool {
	for _, p := range patterns {
		if matchPattern(p, path) {
			return true
		}
	}
	return false
}

func matchPattern(pattern, path string) bool {
	prefix, wildcard := strings.CutSuffix(pattern, "/**")
	if !wildcard {
		return path == pattern
	}
	if prefix == "" {
		return true
	}
	return path == prefix || strings.HasPrefix(path, prefix+"/")
}

func normalizePatterns(patterns []string) []string {
	out := make([]string, 0, len(patterns))
	for _, p := range patterns {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if prefix, ok := strings.CutSuffix(p, "/**"); ok {
			prefix = normalizePath(prefix)
			if prefix == "/" {
				prefix = ""
			}
			out = append(out, prefix+"/**")
			continue
		}
		out = append(out, normalizePath(p))
	}
	return out
}

func normalizePath(p string) string {
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return path.Clean(p)
}
