package validation

import (
	"time"

	"herdcore/pkg/domain"
)

// BirthDate validates an animal birth date. A birth dated exactly "now"
// passes; only strictly future dates are rejected. Unusually young or old
// animals produce warnings.
func (e *Engine) BirthDate(value string) domain.Result {
	return e.birthDateAt(value, e.now())
}

func (e *Engine) birthDateAt(value string, now time.Time) domain.Result {
	var res domain.Result
	ts, ok := domain.ParseDate(value)
	if !ok {
		res.Errorf("birth date is not a valid date")
		return res
	}
	if ts.After(now) {
		res.Errorf("birth date cannot be in the future")
		return res
	}
	if ts.Before(now.AddDate(-e.limits.BirthMaxAgeYears, 0, 0)) {
		res.Errorf("birth date is more than %d years ago", e.limits.BirthMaxAgeYears)
		return res
	}
	if ts.After(now.AddDate(-e.limits.BirthWarnYoungYears, 0, 0)) {
		res.Warnf("animal is less than %d year(s) old", e.limits.BirthWarnYoungYears)
	} else if ts.Before(now.AddDate(-e.limits.BirthWarnOldYears, 0, 0)) {
		res.Warnf("animal is more than %d years old", e.limits.BirthWarnOldYears)
	}
	return res
}

// EventDate validates a health event date against the accepted window around
// "now". Dates well inside the window but far from the present produce
// warnings.
func (e *Engine) EventDate(value string) domain.Result {
	return e.eventDateAt(value, e.now())
}

func (e *Engine) eventDateAt(value string, now time.Time) domain.Result {
	var res domain.Result
	ts, ok := domain.ParseDate(value)
	if !ok {
		res.Errorf("event date is not a valid date")
		return res
	}
	earliest := now.AddDate(-e.limits.EventPastYears, 0, 0)
	latest := now.AddDate(0, e.limits.EventFutureMonths, 0)
	if ts.Before(earliest) {
		res.Errorf("event date is more than %d years in the past", e.limits.EventPastYears)
		return res
	}
	if ts.After(latest) {
		res.Errorf("event date is more than %d months in the future", e.limits.EventFutureMonths)
		return res
	}
	if ts.After(now.AddDate(0, 0, e.limits.EventWarnFutureDays)) {
		res.Warnf("event date is more than %d days in the future", e.limits.EventWarnFutureDays)
	} else if ts.Before(now.AddDate(0, -e.limits.EventWarnPastMonths, 0)) {
		res.Warnf("event date is more than %d months in the past", e.limits.EventWarnPastMonths)
	}
	return res
}

// FutureDate validates a date that must lie strictly in the future, within
// the configured horizon. Used for vaccination due dates.
func (e *Engine) FutureDate(value string) domain.Result {
	return e.futureDateAt(value, e.now())
}

func (e *Engine) futureDateAt(value string, now time.Time) domain.Result {
	var res domain.Result
	ts, ok := domain.ParseDate(value)
	if !ok {
		res.Errorf("date is not a valid date")
		return res
	}
	if !ts.After(now) {
		res.Errorf("date must be in the future")
		return res
	}
	if ts.After(now.AddDate(e.limits.FutureHorizonYears, 0, 0)) {
		res.Errorf("date is more than %d years ahead", e.limits.FutureHorizonYears)
	}
	return res
}

// DateRange validates a reporting range: both endpoints parse, start strictly
// precedes end, and the span stays within the configured maximum.
func (e *Engine) DateRange(r domain.DateRange) domain.Result {
	var res domain.Result
	start, startOK := domain.ParseDate(r.StartDate)
	if !startOK {
		res.Errorf("start date is not a valid date")
	}
	end, endOK := domain.ParseDate(r.EndDate)
	if !endOK {
		res.Errorf("end date is not a valid date")
	}
	if !startOK || !endOK {
		e.record(KindDateRange, res)
		return res
	}
	if !start.Before(end) {
		res.Errorf("start date must be before end date")
	} else if end.After(start.AddDate(e.limits.RangeMaxSpanYears, 0, 0)) {
		res.Errorf("date range exceeds %d years", e.limits.RangeMaxSpanYears)
	}
	e.record(KindDateRange, res)
	return res
}
