package validation

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"herdcore/pkg/domain"
)

// Limits carries every bound, threshold, window, and allow-list consulted by
// the engine. Values live here rather than as package constants so that a
// deployment can tighten or relax them without touching rule bodies, and so
// tests can vary them without shared state.
type Limits struct {
	TagMinLen int `yaml:"tag_min_len" validate:"gt=0"`
	TagMaxLen int `yaml:"tag_max_len" validate:"gtefield=TagMinLen"`

	NameMaxLen       int `yaml:"name_max_len" validate:"gt=0"`
	PersonNameMaxLen int `yaml:"person_name_max_len" validate:"gt=0"`

	WeightMinKg      float64 `yaml:"weight_min_kg" validate:"gt=0"`
	WeightMaxKg      float64 `yaml:"weight_max_kg" validate:"gtfield=WeightMinKg"`
	WeightWarnLowKg  float64 `yaml:"weight_warn_low_kg" validate:"gt=0"`
	WeightWarnHighKg float64 `yaml:"weight_warn_high_kg" validate:"gtfield=WeightWarnLowKg"`

	EmailMaxLen    int `yaml:"email_max_len" validate:"gt=0"`
	UsernameMinLen int `yaml:"username_min_len" validate:"gt=0"`
	UsernameMaxLen int `yaml:"username_max_len" validate:"gtefield=UsernameMinLen"`
	PasswordMinLen int `yaml:"password_min_len" validate:"gt=0"`
	PasswordMaxLen int `yaml:"password_max_len" validate:"gtefield=PasswordMinLen"`
	PhoneMinDigits int `yaml:"phone_min_digits" validate:"gt=0"`
	PhoneMaxDigits int `yaml:"phone_max_digits" validate:"gtefield=PhoneMinDigits"`

	DescriptionMaxLen int `yaml:"description_max_len" validate:"gt=0"`
	NotesMaxLen       int `yaml:"notes_max_len" validate:"gt=0"`

	CostWarnThreshold   float64 `yaml:"cost_warn_threshold" validate:"gt=0"`
	DosageWarnThreshold float64 `yaml:"dosage_warn_threshold" validate:"gt=0"`

	MaxFileSizeBytes int64 `yaml:"max_file_size_bytes" validate:"gt=0"`
	FileNameMaxLen   int   `yaml:"file_name_max_len" validate:"gt=0"`

	BirthMaxAgeYears    int `yaml:"birth_max_age_years" validate:"gt=0"`
	BirthWarnYoungYears int `yaml:"birth_warn_young_years" validate:"gt=0"`
	BirthWarnOldYears   int `yaml:"birth_warn_old_years" validate:"gtefield=BirthWarnYoungYears"`

	EventPastYears      int `yaml:"event_past_years" validate:"gt=0"`
	EventFutureMonths   int `yaml:"event_future_months" validate:"gt=0"`
	EventWarnFutureDays int `yaml:"event_warn_future_days" validate:"gt=0"`
	EventWarnPastMonths int `yaml:"event_warn_past_months" validate:"gt=0"`

	FutureHorizonYears int `yaml:"future_horizon_years" validate:"gt=0"`
	RangeMaxSpanYears  int `yaml:"range_max_span_years" validate:"gt=0"`

	AccuracyMaxMeters float64       `yaml:"accuracy_max_meters" validate:"gt=0"`
	FixMaxAge         time.Duration `yaml:"-" validate:"gt=0"`

	PageMaxLimit     int `yaml:"page_max_limit" validate:"gt=0"`
	PageDefaultLimit int `yaml:"page_default_limit" validate:"gt=0,ltefield=PageMaxLimit"`

	ReservedUsernames    []string `yaml:"reserved_usernames"`
	WeakPasswordPatterns []string `yaml:"weak_password_patterns"`

	AllowedMimetypes map[domain.FileKind][]string `yaml:"-"`
	MimeExtensions   map[string][]string          `yaml:"-"`
}

// DefaultLimits returns the canonical production bounds. Warning thresholds
// (weight extremes, cost, dosage) are deployment policy, not physiology, and
// are expected to be overridden where herds differ.
func DefaultLimits() Limits {
	return Limits{
		TagMinLen: 3,
		TagMaxLen: 20,

		NameMaxLen:       100,
		PersonNameMaxLen: 50,

		WeightMinKg:      1,
		WeightMaxKg:      2000,
		WeightWarnLowKg:  20,
		WeightWarnHighKg: 1200,

		EmailMaxLen:    254,
		UsernameMinLen: 3,
		UsernameMaxLen: 30,
		PasswordMinLen: 8,
		PasswordMaxLen: 128,
		PhoneMinDigits: 10,
		PhoneMaxDigits: 15,

		DescriptionMaxLen: 500,
		NotesMaxLen:       1000,

		CostWarnThreshold:   1_000_000,
		DosageWarnThreshold: 100,

		MaxFileSizeBytes: 10 << 20,
		FileNameMaxLen:   255,

		BirthMaxAgeYears:    25,
		BirthWarnYoungYears: 1,
		BirthWarnOldYears:   10,

		EventPastYears:      2,
		EventFutureMonths:   6,
		EventWarnFutureDays: 7,
		EventWarnPastMonths: 6,

		FutureHorizonYears: 5,
		RangeMaxSpanYears:  2,

		AccuracyMaxMeters: 10_000,
		FixMaxAge:         time.Hour,

		PageMaxLimit:     100,
		PageDefaultLimit: 20,

		ReservedUsernames: []string{
			"admin", "administrator", "root", "system", "support", "api",
		},
		WeakPasswordPatterns: []string{
			"123456", "password", "qwerty", "abc123", "111111", "letmein",
		},
		AllowedMimetypes: map[domain.FileKind][]string{
			domain.FileImage: {
				"image/jpeg", "image/png", "image/gif", "image/webp",
			},
			domain.FileDocument: {
				"application/pdf",
				"application/msword",
				"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
				"application/vnd.ms-excel",
				"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
				"text/csv",
			},
		},
		MimeExtensions: map[string][]string{
			"image/jpeg":      {".jpg", ".jpeg"},
			"image/png":       {".png"},
			"image/gif":       {".gif"},
			"image/webp":      {".webp"},
			"application/pdf": {".pdf"},
			"application/msword": {".doc"},
			"application/vnd.openxmlformats-officedocument.wordprocessingml.document": {".docx"},
			"application/vnd.ms-excel": {".xls"},
			"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet": {".xlsx"},
			"text/csv": {".csv"},
		},
	}
}

var limitsValidator = validator.New()

// Validate rejects internally inconsistent limits (inverted min/max pairs,
// non-positive windows, missing allow-lists) before an engine is built on
// them.
func (l Limits) Validate() error {
	if err := limitsValidator.Struct(l); err != nil {
		return fmt.Errorf("limits: %w", err)
	}
	if len(l.AllowedMimetypes) == 0 {
		return fmt.Errorf("limits: allowed mimetype lists must not be empty")
	}
	for kind := range domain.KnownFileKinds {
		if len(l.AllowedMimetypes[kind]) == 0 {
			return fmt.Errorf("limits: no allowed mimetypes for file kind %q", kind)
		}
	}
	return nil
}
