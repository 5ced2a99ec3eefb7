package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

var (
	DefaultPublicRoutes     = []string{"/api/auth/**", "/docs/**", "/error"}
	DefaultMonitoringRoutes = []string{"/api/health/**", "/actuator/**"}
)

// RouteSets lists the path patterns of the public and monitoring security
// domains. Everything else is protected.
type RouteSets struct {
	Public     []string `yaml:"public" validate:"dive,startswith=/"`
	Monitoring []string `yaml:"monitoring" validate:"dive,startswith=/"`
}

func DefaultRouteSets() RouteSets {
	return RouteSets{
		Public:     append([]string(nil), DefaultPublicRoutes...),
		Monitoring: append([]string(nil), DefaultMonitoringRoutes...),
	}
}

// LoadRouteSets reads route sets from a YAML file. A list the file leaves
// out keeps its default; an empty path yields the defaults.
func LoadRouteSets(path string) (RouteSets, error) {
	sets := DefaultRouteSets()
	if path == "" {
		return sets, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return RouteSets{}, fmt.Errorf("failed to read routes file: %w", err)
	}

	var file struct {
		Public     *[]string `yaml:"public"`
		Monitoring *[]string `yaml:"monitoring"`
	}
	if err := yaml.Unmarshal(data, &file); err != nil {
		return RouteSets{}, fmt.Errorf("failed to parse routes file: %w", err)
	}

	if file.Public != nil {
		sets.Public = *file.Public
	}
	if file.Monitoring != nil {
		sets.Monitoring = *file.Monitoring
	}
	return sets, nil
}
