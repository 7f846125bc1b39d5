package validation

import (
	"strings"
	"time"

	"herdcore/pkg/domain"
)

// Event validates a candidate health event, including the payload selected by
// the event type. A payload attached to a mismatched type is rejected so that
// stray vaccination details cannot ride along on, say, a checkup.
func (e *Engine) Event(rec domain.EventRecord) domain.Result {
	now := e.now()
	var res domain.Result

	if rec.CattleID <= 0 {
		res.Errorf("cattle id must be a positive integer")
	}

	if rec.Type == "" {
		res.Errorf("event type is required")
	} else if _, ok := domain.KnownEventTypes[rec.Type]; !ok {
		res.Errorf("unknown event type %q", rec.Type)
	}

	if strings.TrimSpace(rec.EventDate) == "" {
		res.Errorf("event date is required")
	} else {
		res.Merge(e.eventDateAt(rec.EventDate, now))
	}

	description := strings.TrimSpace(rec.Description)
	if description == "" {
		res.Errorf("description is required")
	} else if len(description) > e.limits.DescriptionMaxLen {
		res.Errorf("description must be at most %d characters", e.limits.DescriptionMaxLen)
	}

	res.Merge(e.eventPayload(rec, now))

	checkPositiveID(&res, "veterinarian id", rec.VeterinarianID)

	if rec.Notes != nil && len(*rec.Notes) > e.limits.NotesMaxLen {
		res.Errorf("notes must be at most %d characters", e.limits.NotesMaxLen)
	}

	if rec.Cost != nil {
		switch {
		case *rec.Cost < 0:
			res.Errorf("cost must not be negative")
		case *rec.Cost > e.limits.CostWarnThreshold:
			res.Warnf("cost %g is unusually high", *rec.Cost)
		}
	}

	res.Merge(e.pairedCoordinates(rec.Latitude, rec.Longitude))

	e.record(KindEvent, res)
	return res
}

// eventPayload dispatches on the event type, exhaustively. Unknown types are
// already reported by Event; nothing further to check for them here.
func (e *Engine) eventPayload(rec domain.EventRecord, now time.Time) domain.Result {
	var res domain.Result
	switch rec.Type {
	case domain.EventVaccination:
		rejectPayload(&res, "illness", rec.Illness != nil, rec.Type)
		rejectPayload(&res, "treatment", rec.Treatment != nil, rec.Type)
		res.Merge(e.vaccinationPayload(rec.Vaccination, now))
	case domain.EventIllness:
		rejectPayload(&res, "vaccination", rec.Vaccination != nil, rec.Type)
		rejectPayload(&res, "treatment", rec.Treatment != nil, rec.Type)
		res.Merge(e.illnessPayload(rec.Illness))
	case domain.EventTreatment:
		rejectPayload(&res, "vaccination", rec.Vaccination != nil, rec.Type)
		rejectPayload(&res, "illness", rec.Illness != nil, rec.Type)
		res.Merge(e.treatmentPayload(rec.Treatment))
	case domain.EventCheckup, domain.EventOther:
		rejectPayload(&res, "vaccination", rec.Vaccination != nil, rec.Type)
		rejectPayload(&res, "illness", rec.Illness != nil, rec.Type)
		rejectPayload(&res, "treatment", rec.Treatment != nil, rec.Type)
	}
	return res
}

func rejectPayload(res *domain.Result, payload string, present bool, eventType domain.EventType) {
	if present {
		res.Errorf("%s details are not allowed on %s events", payload, eventType)
	}
}

func (e *Engine) vaccinationPayload(details *domain.VaccinationDetails, now time.Time) domain.Result {
	var res domain.Result
	if details == nil || details.VaccineType == "" {
		res.Errorf("vaccine type is required for vaccination events")
		if details == nil {
			return res
		}
	} else if _, ok := domain.KnownVaccineTypes[details.VaccineType]; !ok {
		res.Errorf("unknown vaccine type %q", details.VaccineType)
	}

	if details.Dosage != nil {
		switch {
		case *details.Dosage <= 0:
			res.Errorf("dosage must be greater than zero")
		case *details.Dosage > e.limits.DosageWarnThreshold:
			res.Warnf("dosage %g is unusually high", *details.Dosage)
		}
	}

	if strings.TrimSpace(details.NextDueDate) != "" {
		next := e.futureDateAt(details.NextDueDate, now)
		for _, msg := range next.Errors {
			res.Errorf("next due %s", msg)
		}
		res.Warnings = append(res.Warnings, next.Warnings...)
	}
	return res
}

func (e *Engine) illnessPayload(details *domain.IllnessDetails) domain.Result {
	var res domain.Result
	if details == nil || details.Severity == "" {
		return res
	}
	if _, ok := domain.KnownIllnessSeverities[details.Severity]; !ok {
		res.Errorf("unknown illness severity %q", details.Severity)
	}
	return res
}

func (e *Engine) treatmentPayload(details *domain.TreatmentDetails) domain.Result {
	var res domain.Result
	if details == nil {
		return res
	}
	if details.Status != "" {
		if _, ok := domain.KnownTreatmentStatuses[details.Status]; !ok {
			res.Errorf("unknown treatment status %q", details.Status)
		}
	}
	for i, medication := range details.Medications {
		if strings.TrimSpace(medication) == "" {
			res.Errorf("medication at index %d must be a non-empty string", i)
		}
	}
	return res
}
