// Package config loads validation limit overrides from a YAML file. Enum
// sets and mimetype allow-lists are code-owned and cannot be extended from
// configuration; only bounds, thresholds, and windows may be overridden.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"herdcore/pkg/validation"
)

// LoadLimits returns the default limits with any overrides from path merged
// on top. An empty path yields the defaults unchanged. The merged limits are
// re-validated so a config file cannot produce an inconsistent engine.
func LoadLimits(path string) (validation.Limits, error) {
	limits := validation.DefaultLimits()
	if path == "" {
		return limits, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return validation.Limits{}, fmt.Errorf("read limits file: %w", err)
	}
	if err := yaml.Unmarshal(data, &limits); err != nil {
		return validation.Limits{}, fmt.Errorf("parse limits file %s: %w", path, err)
	}

	// Durations are written as strings ("1h", "30m") and parsed separately;
	// yaml.v3 has no native duration decoding.
	var durations struct {
		FixMaxAge string `yaml:"fix_max_age"`
	}
	if err := yaml.Unmarshal(data, &durations); err == nil && durations.FixMaxAge != "" {
		age, err := time.ParseDuration(durations.FixMaxAge)
		if err != nil {
			return validation.Limits{}, fmt.Errorf("parse fix_max_age: %w", err)
		}
		limits.FixMaxAge = age
	}

	if err := limits.Validate(); err != nil {
		return validation.Limits{}, fmt.Errorf("limits file %s: %w", path, err)
	}
	return limits, nil
}
