package validation

import (
	"errors"

	"github.com/mitchellh/mapstructure"

	"herdcore/pkg/domain"
)

// Decode helpers turn a raw JSON-decoded body into a typed candidate record
// before the domain rules run. Shape problems (a string where a number
// belongs, a non-object payload) surface through the same result contract as
// rule violations, one finding per offending field, so a malformed field
// never aborts the rest of the request.

// DecodeCattle decodes a raw body into a cattle record.
func DecodeCattle(raw map[string]any) (domain.CattleRecord, domain.Result) {
	var rec domain.CattleRecord
	return rec, decodeInto(raw, &rec)
}

// DecodeEvent decodes a raw body into an event record.
func DecodeEvent(raw map[string]any) (domain.EventRecord, domain.Result) {
	var rec domain.EventRecord
	return rec, decodeInto(raw, &rec)
}

// DecodeUser decodes a raw body into a user record.
func DecodeUser(raw map[string]any) (domain.UserRecord, domain.Result) {
	var rec domain.UserRecord
	return rec, decodeInto(raw, &rec)
}

// DecodeLocation decodes a raw body into a location fix.
func DecodeLocation(raw map[string]any) (domain.LocationFix, domain.Result) {
	var fix domain.LocationFix
	return fix, decodeInto(raw, &fix)
}

// DecodePage decodes raw query parameters into a page request.
func DecodePage(raw map[string]any) (domain.PageRequest, domain.Result) {
	var req domain.PageRequest
	return req, decodeInto(raw, &req)
}

// decodeInto maps raw keys onto the record's json tags. Unknown keys are
// tolerated; per-field decode failures are collected, not thrown.
func decodeInto(raw map[string]any, out any) domain.Result {
	var res domain.Result
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:  out,
		TagName: "json",
	})
	if err != nil {
		res.Errorf("record could not be decoded: %v", err)
		return res
	}
	if err := dec.Decode(raw); err != nil {
		var joined *mapstructure.Error
		if errors.As(err, &joined) {
			for _, msg := range joined.Errors {
				res.Errorf("invalid field: %s", msg)
			}
		} else {
			res.Errorf("record could not be decoded: %v", err)
		}
	}
	return res
}
