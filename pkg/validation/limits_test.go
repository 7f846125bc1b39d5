package validation

import (
	"testing"

	"herdcore/pkg/domain"
)

func TestDefaultLimitsAreConsistent(t *testing.T) {
	if err := DefaultLimits().Validate(); err != nil {
		t.Fatalf("default limits must validate: %v", err)
	}
}

func TestLimitsValidateRejectsInvertedBounds(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Limits)
	}{
		{"tag bounds", func(l *Limits) { l.TagMaxLen = l.TagMinLen - 1 }},
		{"weight bounds", func(l *Limits) { l.WeightMaxKg = l.WeightMinKg }},
		{"password bounds", func(l *Limits) { l.PasswordMinLen = l.PasswordMaxLen + 1 }},
		{"zero horizon", func(l *Limits) { l.FutureHorizonYears = 0 }},
		{"negative fix age", func(l *Limits) { l.FixMaxAge = -1 }},
		{"default page over max", func(l *Limits) { l.PageDefaultLimit = l.PageMaxLimit + 1 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			limits := DefaultLimits()
			tc.mutate(&limits)
			if err := limits.Validate(); err == nil {
				t.Fatalf("expected validation error")
			}
		})
	}
}

func TestLimitsValidateRequiresMimeAllowLists(t *testing.T) {
	limits := DefaultLimits()
	delete(limits.AllowedMimetypes, domain.FileDocument)
	if err := limits.Validate(); err == nil {
		t.Fatalf("missing document allow-list must be rejected")
	}

	limits = DefaultLimits()
	limits.AllowedMimetypes = nil
	if err := limits.Validate(); err == nil {
		t.Fatalf("nil allow-lists must be rejected")
	}
}

// Bounds are engine configuration, not globals: two engines with different
// limits disagree without interfering.
func TestPerEngineLimits(t *testing.T) {
	strict := DefaultLimits()
	strict.TagMinLen = 5

	strictEngine := newTestEngine(t, WithLimits(strict))
	defaultEngine := newTestEngine(t)

	if res := strictEngine.Tag("AB12"); res.IsValid() {
		t.Fatalf("strict engine should reject a 4-character tag")
	}
	if res := defaultEngine.Tag("AB12"); !res.IsValid() {
		t.Fatalf("default engine should accept a 4-character tag: %v", res.Errors)
	}
}
