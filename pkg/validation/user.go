package validation

import (
	"strings"

	"herdcore/pkg/domain"
)

// User validates a candidate user account.
func (e *Engine) User(rec domain.UserRecord) domain.Result {
	var res domain.Result

	res.Merge(e.Username(rec.Username))
	res.Merge(e.Email(rec.Email))
	res.Merge(e.Password(rec.Password))

	checkPersonName(&res, "first name", rec.FirstName, e.limits.PersonNameMaxLen)
	checkPersonName(&res, "last name", rec.LastName, e.limits.PersonNameMaxLen)

	if rec.Role == "" {
		res.Errorf("role is required")
	} else if _, ok := domain.KnownUserRoles[rec.Role]; !ok {
		res.Errorf("unknown role %q", rec.Role)
	}

	if rec.Phone != nil {
		res.Merge(e.Phone(*rec.Phone))
	}

	if rec.Status != "" {
		if _, ok := domain.KnownUserStatuses[rec.Status]; !ok {
			res.Errorf("unknown user status %q", rec.Status)
		}
	}

	e.record(KindUser, res)
	return res
}

func checkPersonName(res *domain.Result, field, value string, maxLen int) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		res.Errorf("%s is required", field)
		return
	}
	if len(trimmed) > maxLen {
		res.Errorf("%s must be at most %d characters", field, maxLen)
	}
}
