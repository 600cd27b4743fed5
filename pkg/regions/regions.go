package regions

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// Package regions maps platform identifiers (euw1, na1, ...) to the regional
// routing values consumed by regionally-routed endpoints such as match-v5.

type Region struct {
	Platform string `yaml:"platform"`
	Routing  string `yaml:"routing"`
}

type registry struct {
	Regions []Region `yaml:"regions"`
}

var (
	regMu      sync.RWMutex
	overrides  map[string]string
	defaultMap = map[string]string{
		"br1":  "americas",
		"la1":  "americas",
		"la2":  "americas",
		"na1":  "americas",
		"jp1":  "asia",
		"kr":   "asia",
		"eun1": "europe",
		"euw1": "europe",
		"ru":   "europe",
		"tr1":  "europe",
		"oc1":  "sea",
		"ph2":  "sea",
		"sg2":  "sea",
		"th2":  "sea",
		"tw2":  "sea",
		"vn2":  "sea",
	}
)

// RoutingFor returns the regional routing value for a platform. Overrides
// loaded via Load take precedence over the built-in table.
func RoutingFor(platform string) (string, bool) {
	platform = strings.ToLower(strings.TrimSpace(platform))
	if platform == "" {
		return "", false
	}

	regMu.RLock()
	if overrides != nil {
		if routing, ok := overrides[platform]; ok {
			regMu.RUnlock()
			return routing, true
		}
	}
	regMu.RUnlock()

	routing, ok := defaultMap[platform]
	return routing, ok
}

// Platforms returns the known platform identifiers, overrides included.
func Platforms() []string {
	regMu.RLock()
	defer regMu.RUnlock()

	seen := make(map[string]struct{}, len(defaultMap)+len(overrides))
	out := make([]string, 0, len(defaultMap)+len(overrides))
	for p := range defaultMap {
		seen[p] = struct{}{}
		out = append(out, p)
	}
	for p := range overrides {
		if _, ok := seen[p]; !ok {
			out = append(out, p)
		}
	}
	return out
}

// Load replaces the routing overrides from a YAML file.
func Load(path string) error {
	if strings.TrimSpace(path) == "" {
		return errors.New("regions file path is empty")
	}

	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open regions file: %w", err)
	}
	defer file.Close()

	raw, err := io.ReadAll(file)
	if err != nil {
		return fmt.Errorf("read regions file: %w", err)
	}

	var reg registry
	if err := yaml.Unmarshal(raw, &reg); err != nil {
		return fmt.Errorf("decode regions file: %w", err)
	}
	if len(reg.Regions) == 0 {
		return errors.New("regions file contains no region entries")
	}

	idx := make(map[string]string, len(reg.Regions))
	for i, r := range reg.Regions {
		platform := strings.ToLower(strings.TrimSpace(r.Platform))
		routing := strings.ToLower(strings.TrimSpace(r.Routing))
		if platform == "" {
			return fmt.Errorf("region[%d]: platform is required", i)
		}
		if routing == "" {
			return fmt.Errorf("region[%d]: routing is required for platform %q", i, platform)
		}
		if _, exists := idx[platform]; exists {
			return fmt.Errorf("duplicate platform %q", platform)
		}
		idx[platform] = routing
	}

	regMu.Lock()
	overrides = idx
	regMu.Unlock()

	return nil
}
