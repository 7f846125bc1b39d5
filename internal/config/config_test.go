package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"herdcore/pkg/validation"
)

func writeLimitsFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "limits.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write limits file: %v", err)
	}
	return path
}

func TestLoadLimitsDefaults(t *testing.T) {
	limits, err := LoadLimits("")
	if err != nil {
		t.Fatalf("load defaults: %v", err)
	}
	defaults := validation.DefaultLimits()
	if limits.TagMinLen != defaults.TagMinLen || limits.WeightMaxKg != defaults.WeightMaxKg || limits.FixMaxAge != defaults.FixMaxAge {
		t.Fatalf("defaults not returned: %+v", limits)
	}
}

func TestLoadLimitsOverrides(t *testing.T) {
	path := writeLimitsFile(t, "tag_min_len: 5\nweight_warn_high_kg: 900\nfix_max_age: 30m\n")

	limits, err := LoadLimits(path)
	if err != nil {
		t.Fatalf("load overrides: %v", err)
	}
	if limits.TagMinLen != 5 {
		t.Fatalf("tag_min_len override lost: %d", limits.TagMinLen)
	}
	if limits.WeightWarnHighKg != 900 {
		t.Fatalf("weight_warn_high_kg override lost: %g", limits.WeightWarnHighKg)
	}
	if limits.FixMaxAge != 30*time.Minute {
		t.Fatalf("fix_max_age override lost: %s", limits.FixMaxAge)
	}
	// Untouched fields keep their defaults.
	if limits.PasswordMinLen != 8 {
		t.Fatalf("unrelated default changed: %d", limits.PasswordMinLen)
	}
}

func TestLoadLimitsRejectsInconsistentOverrides(t *testing.T) {
	path := writeLimitsFile(t, "tag_min_len: 50\n") // above the default max of 20
	if _, err := LoadLimits(path); err == nil {
		t.Fatalf("inconsistent overrides must be rejected")
	}
}

func TestLoadLimitsBadFile(t *testing.T) {
	if _, err := LoadLimits(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("missing file must error")
	}

	path := writeLimitsFile(t, "tag_min_len: [oops\n")
	if _, err := LoadLimits(path); err == nil {
		t.Fatalf("malformed yaml must error")
	}

	path = writeLimitsFile(t, "fix_max_age: soon\n")
	if _, err := LoadLimits(path); err == nil {
		t.Fatalf("bad duration must error")
	}
}
