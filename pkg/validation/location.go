package validation

import (
	"math"
	"strings"
	"time"

	"herdcore/pkg/domain"
)

// Location validates a geolocation fix. Unlike cattle and event records, a
// fix requires both coordinates: a reading with only one axis is useless.
func (e *Engine) Location(fix domain.LocationFix) domain.Result {
	now := e.now()
	var res domain.Result

	if fix.Latitude == nil || fix.Longitude == nil {
		res.Errorf("latitude and longitude are both required")
	} else {
		res.Merge(e.Coordinates(*fix.Latitude, *fix.Longitude))
	}

	if fix.Accuracy != nil {
		switch {
		case math.IsNaN(*fix.Accuracy) || *fix.Accuracy < 0:
			res.Errorf("accuracy must not be negative")
		case *fix.Accuracy > e.limits.AccuracyMaxMeters:
			res.Errorf("accuracy must be at most %g meters", e.limits.AccuracyMaxMeters)
		}
	}

	if strings.TrimSpace(fix.Timestamp) != "" {
		if ts, ok := domain.ParseDate(fix.Timestamp); !ok {
			res.Errorf("timestamp is not a valid date")
		} else if ts.After(now) {
			res.Errorf("timestamp cannot be in the future")
		} else if now.Sub(ts) > e.limits.FixMaxAge {
			res.Errorf("timestamp is too old (max %s)", formatAge(e.limits.FixMaxAge))
		}
	}

	e.record(KindLocation, res)
	return res
}

func formatAge(d time.Duration) string {
	if d == time.Hour {
		return "1 hour"
	}
	return d.String()
}

const earthRadiusMeters = 6_371_000

// Distance returns the haversine great-circle distance in meters between two
// fixes. Fixes without both coordinates yield zero.
func Distance(a, b domain.LocationFix) float64 {
	if a.Latitude == nil || a.Longitude == nil || b.Latitude == nil || b.Longitude == nil {
		return 0
	}
	lat1 := *a.Latitude * math.Pi / 180
	lat2 := *b.Latitude * math.Pi / 180
	dLat := lat2 - lat1
	dLon := (*b.Longitude - *a.Longitude) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	return 2 * earthRadiusMeters * math.Asin(math.Sqrt(h))
}
