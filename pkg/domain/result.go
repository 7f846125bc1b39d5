package domain

import (
	"encoding/json"
	"fmt"
)

// Result aggregates the findings of one validation pass. Errors block the
// operation; warnings are advisory and never do.
type Result struct {
	Errors   []string
	Warnings []string
}

// IsValid reports whether the validated record may proceed.
func (r Result) IsValid() bool {
	return len(r.Errors) == 0
}

// Merge appends findings from another result.
func (r *Result) Merge(other Result) {
	if len(other.Errors) > 0 {
		r.Errors = append(r.Errors, other.Errors...)
	}
	if len(other.Warnings) > 0 {
		r.Warnings = append(r.Warnings, other.Warnings...)
	}
}

// Errorf appends a blocking finding.
func (r *Result) Errorf(format string, args ...any) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

// Warnf appends an advisory finding.
func (r *Result) Warnf(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

// resultJSON is the wire shape consumed by HTTP callers. Warnings are omitted
// entirely when there are none.
type resultJSON struct {
	IsValid  bool     `json:"isValid"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings,omitempty"`
}

// MarshalJSON renders the caller-facing contract: isValid, a never-null
// errors array, and warnings only when present.
func (r Result) MarshalJSON() ([]byte, error) {
	out := resultJSON{
		IsValid:  r.IsValid(),
		Errors:   r.Errors,
		Warnings: r.Warnings,
	}
	if out.Errors == nil {
		out.Errors = []string{}
	}
	return json.Marshal(out)
}

// UnmarshalJSON restores a result serialized by MarshalJSON.
func (r *Result) UnmarshalJSON(data []byte) error {
	var in resultJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	r.Errors = in.Errors
	r.Warnings = in.Warnings
	if len(r.Errors) == 0 {
		r.Errors = nil
	}
	return nil
}

// ValidationFailedError wraps an invalid result for call sites that propagate
// failure as an error value instead of inspecting the result directly.
type ValidationFailedError struct {
	Result Result
}

func (e ValidationFailedError) Error() string {
	return fmt.Sprintf("record rejected: %d validation error(s)", len(e.Result.Errors))
}
