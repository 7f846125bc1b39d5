package validation

import (
	"strings"
	"testing"

	"herdcore/pkg/domain"
)

func TestDecodeCattle(t *testing.T) {
	raw := map[string]any{
		"tag":        "AB12",
		"type":       "cow",
		"breed":      "holstein",
		"birth_date": "2022-04-01",
		"weight_kg":  415.5,
		"mother_id":  float64(31), // JSON numbers arrive as float64
		"unknown":    "ignored",
	}
	rec, res := DecodeCattle(raw)
	if !res.IsValid() {
		t.Fatalf("decode failed: %v", res.Errors)
	}
	if rec.Tag != "AB12" || rec.Type != domain.AnimalCow || rec.Breed != domain.BreedHolstein {
		t.Fatalf("unexpected record: %+v", rec)
	}
	if rec.WeightKg == nil || *rec.WeightKg != 415.5 {
		t.Fatalf("weight not decoded: %+v", rec.WeightKg)
	}
	if rec.MotherID == nil || *rec.MotherID != 31 {
		t.Fatalf("mother id not decoded: %+v", rec.MotherID)
	}
	if rec.Name != nil {
		t.Fatalf("absent optional field must stay nil")
	}
}

func TestDecodeReportsShapeErrorsPerField(t *testing.T) {
	raw := map[string]any{
		"tag":        "AB12",
		"type":       "cow",
		"breed":      "holstein",
		"birth_date": "2022-04-01",
		"weight_kg":  map[string]any{"value": 415},
	}
	rec, res := DecodeCattle(raw)
	if res.IsValid() {
		t.Fatalf("shape error not reported")
	}
	named := false
	for _, msg := range res.Errors {
		if strings.Contains(strings.ToLower(msg), "weight") {
			named = true
		}
	}
	if !named {
		t.Fatalf("error should name the offending field: %v", res.Errors)
	}
	// The rest of the record decodes and can still be validated.
	if rec.Tag != "AB12" {
		t.Fatalf("well-formed fields should survive a partial decode: %+v", rec)
	}
}

func TestDecodeEventPayload(t *testing.T) {
	raw := map[string]any{
		"cattle_id":   float64(42),
		"type":        "vaccination",
		"event_date":  "2025-06-10",
		"description": "annual booster",
		"vaccination": map[string]any{
			"vaccine_type": "blackleg",
			"dosage":       12.5,
		},
	}
	rec, res := DecodeEvent(raw)
	if !res.IsValid() {
		t.Fatalf("decode failed: %v", res.Errors)
	}
	if rec.Vaccination == nil || rec.Vaccination.VaccineType != domain.VaccineBlackleg {
		t.Fatalf("payload not decoded: %+v", rec.Vaccination)
	}
	if rec.Vaccination.Dosage == nil || *rec.Vaccination.Dosage != 12.5 {
		t.Fatalf("dosage not decoded: %+v", rec.Vaccination.Dosage)
	}
}

func TestDecodeLocationAndPage(t *testing.T) {
	fix, res := DecodeLocation(map[string]any{
		"latitude":  44.9,
		"longitude": -93.3,
		"accuracy":  8.0,
	})
	if !res.IsValid() {
		t.Fatalf("decode failed: %v", res.Errors)
	}
	if fix.Latitude == nil || fix.Longitude == nil || fix.Accuracy == nil {
		t.Fatalf("fields not decoded: %+v", fix)
	}

	req, res := DecodePage(map[string]any{"page": float64(2), "limit": float64(50)})
	if !res.IsValid() {
		t.Fatalf("decode failed: %v", res.Errors)
	}
	if req.Page != 2 || req.Limit != 50 {
		t.Fatalf("unexpected page request: %+v", req)
	}
}
