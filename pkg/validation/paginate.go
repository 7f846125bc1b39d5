package validation

import "herdcore/pkg/domain"

// PageRequest validates pagination parameters for list lookups.
func (e *Engine) PageRequest(req domain.PageRequest) domain.Result {
	var res domain.Result
	if req.Page < 1 {
		res.Errorf("page must be at least 1")
	}
	if req.Limit < 1 {
		res.Errorf("limit must be at least 1")
	} else if req.Limit > e.limits.PageMaxLimit {
		res.Errorf("limit must be at most %d", e.limits.PageMaxLimit)
	}
	e.record(KindPage, res)
	return res
}

// NormalizePage clamps a page request into a usable window, substituting
// defaults for missing values, and computes the row offset. Callers that want
// strict rejection instead of clamping use PageRequest.
func (e *Engine) NormalizePage(req domain.PageRequest) domain.Page {
	page := req.Page
	if page < 1 {
		page = 1
	}
	limit := req.Limit
	if limit < 1 {
		limit = e.limits.PageDefaultLimit
	}
	if limit > e.limits.PageMaxLimit {
		limit = e.limits.PageMaxLimit
	}
	return domain.Page{
		Page:   page,
		Limit:  limit,
		Offset: (page - 1) * limit,
	}
}
