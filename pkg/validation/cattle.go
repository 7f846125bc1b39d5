package validation

import (
	"strings"

	"herdcore/pkg/domain"
)

// Cattle validates a candidate cattle record. Every check runs; the result
// carries the complete set of findings rather than the first one.
func (e *Engine) Cattle(rec domain.CattleRecord) domain.Result {
	now := e.now()
	var res domain.Result

	res.Merge(e.Tag(rec.Tag))

	if rec.Type == "" {
		res.Errorf("animal type is required")
	} else if _, ok := domain.KnownAnimalTypes[rec.Type]; !ok {
		res.Errorf("unknown animal type %q", rec.Type)
	}

	if rec.Breed == "" {
		res.Errorf("breed is required")
	} else if _, ok := domain.KnownBreeds[rec.Breed]; !ok {
		res.Errorf("unknown breed %q", rec.Breed)
	}

	if strings.TrimSpace(rec.BirthDate) == "" {
		res.Errorf("birth date is required")
	} else {
		res.Merge(e.birthDateAt(rec.BirthDate, now))
	}

	if rec.Name != nil {
		name := strings.TrimSpace(*rec.Name)
		if name == "" {
			res.Warnf("name is blank and will be ignored")
		} else if len(name) > e.limits.NameMaxLen {
			res.Errorf("name must be at most %d characters", e.limits.NameMaxLen)
		}
	}

	if rec.WeightKg != nil {
		res.Merge(e.Weight(*rec.WeightKg))
	}

	if rec.HealthStatus != "" {
		if _, ok := domain.KnownHealthStatuses[rec.HealthStatus]; !ok {
			res.Errorf("unknown health status %q", rec.HealthStatus)
		}
	}

	res.Merge(e.pairedCoordinates(rec.Latitude, rec.Longitude))

	checkPositiveID(&res, "mother id", rec.MotherID)
	checkPositiveID(&res, "father id", rec.FatherID)
	checkPositiveID(&res, "farm id", rec.FarmID)

	e.record(KindCattle, res)
	return res
}

// pairedCoordinates enforces lat/lon co-occurrence and delegates range checks
// when both are present. Absent pairs are fine.
func (e *Engine) pairedCoordinates(lat, lon *float64) domain.Result {
	var res domain.Result
	switch {
	case lat == nil && lon == nil:
	case lat == nil || lon == nil:
		res.Errorf("latitude and longitude must be provided together")
	default:
		res.Merge(e.Coordinates(*lat, *lon))
	}
	return res
}

func checkPositiveID(res *domain.Result, field string, id *int64) {
	if id != nil && *id <= 0 {
		res.Errorf("%s must be a positive integer", field)
	}
}
