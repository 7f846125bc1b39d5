package validation

import (
	"math"
	"regexp"
	"strings"
	"unicode"

	"herdcore/pkg/domain"
)

var (
	tagPattern      = regexp.MustCompile(`^[A-Z0-9_-]+$`)
	emailPattern    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	usernamePattern = regexp.MustCompile(`^[a-z0-9_-]+$`)
)

// Tag validates a cattle ear tag. Tags are case-insensitive: the value is
// upper-cased before the pattern check, and a purely numeric tag is rejected
// so that tags never collide with bare record IDs.
func (e *Engine) Tag(value string) domain.Result {
	var res domain.Result
	tag := strings.TrimSpace(value)
	if tag == "" {
		res.Errorf("tag is required")
		return res
	}
	if len(tag) < e.limits.TagMinLen || len(tag) > e.limits.TagMaxLen {
		res.Errorf("tag must be between %d and %d characters", e.limits.TagMinLen, e.limits.TagMaxLen)
	}
	upper := strings.ToUpper(tag)
	if !tagPattern.MatchString(upper) {
		res.Errorf("tag may only contain letters, digits, underscores and hyphens")
		return res
	}
	if !strings.ContainsFunc(upper, unicode.IsLetter) {
		res.Errorf("tag must contain at least one letter")
	}
	return res
}

// Weight validates an animal weight in kilograms. Weights near the extremes
// of the accepted range produce warnings without blocking.
func (e *Engine) Weight(kg float64) domain.Result {
	var res domain.Result
	if math.IsNaN(kg) || math.IsInf(kg, 0) {
		res.Errorf("weight must be a valid number")
		return res
	}
	if kg <= 0 {
		res.Errorf("weight must be greater than zero")
		return res
	}
	if kg < e.limits.WeightMinKg || kg > e.limits.WeightMaxKg {
		res.Errorf("weight must be between %g and %g kg", e.limits.WeightMinKg, e.limits.WeightMaxKg)
		return res
	}
	if kg < e.limits.WeightWarnLowKg {
		res.Warnf("weight %g kg is unusually low", kg)
	} else if kg > e.limits.WeightWarnHighKg {
		res.Warnf("weight %g kg is unusually high", kg)
	}
	return res
}

// Email validates an email address.
func (e *Engine) Email(addr string) domain.Result {
	var res domain.Result
	addr = strings.TrimSpace(addr)
	if addr == "" {
		res.Errorf("email is required")
		return res
	}
	if len(addr) > e.limits.EmailMaxLen {
		res.Errorf("email must be at most %d characters", e.limits.EmailMaxLen)
	}
	if !emailPattern.MatchString(addr) {
		res.Errorf("email is not a valid address")
	}
	return res
}

// Username validates an account username against format, length, and the
// reserved-word list.
func (e *Engine) Username(name string) domain.Result {
	var res domain.Result
	name = strings.TrimSpace(name)
	if name == "" {
		res.Errorf("username is required")
		return res
	}
	if len(name) < e.limits.UsernameMinLen || len(name) > e.limits.UsernameMaxLen {
		res.Errorf("username must be between %d and %d characters", e.limits.UsernameMinLen, e.limits.UsernameMaxLen)
	}
	if !usernamePattern.MatchString(name) {
		res.Errorf("username may only contain lowercase letters, digits, underscores and hyphens")
		return res
	}
	if strings.HasPrefix(name, "-") || strings.HasSuffix(name, "-") {
		res.Errorf("username may not start or end with a hyphen")
	}
	for _, reserved := range e.limits.ReservedUsernames {
		if name == reserved {
			res.Errorf("username %q is reserved", name)
			break
		}
	}
	return res
}

// Password validates password strength: length bounds plus at least three of
// the four character classes. Known-weak sequences and long repeated runs are
// reported as warnings only.
func (e *Engine) Password(password string) domain.Result {
	var res domain.Result
	if password == "" {
		res.Errorf("password is required")
		return res
	}
	if len(password) < e.limits.PasswordMinLen || len(password) > e.limits.PasswordMaxLen {
		res.Errorf("password must be between %d and %d characters", e.limits.PasswordMinLen, e.limits.PasswordMaxLen)
	}

	var lower, upper, digit, symbol bool
	for _, r := range password {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		default:
			symbol = true
		}
	}
	classes := 0
	for _, present := range []bool{lower, upper, digit, symbol} {
		if present {
			classes++
		}
	}
	if classes < 3 {
		res.Errorf("password must contain at least 3 of: lowercase letters, uppercase letters, digits, symbols")
	}

	lowered := strings.ToLower(password)
	for _, weak := range e.limits.WeakPasswordPatterns {
		if strings.Contains(lowered, weak) {
			res.Warnf("password contains the commonly used sequence %q", weak)
		}
	}
	if hasRepeatedRun(password, 4) {
		res.Warnf("password contains 4 or more repeated characters in a row")
	}
	return res
}

// hasRepeatedRun reports whether s contains n identical consecutive runes.
func hasRepeatedRun(s string, n int) bool {
	var prev rune
	run := 0
	for _, r := range s {
		if run > 0 && r == prev {
			run++
		} else {
			prev = r
			run = 1
		}
		if run >= n {
			return true
		}
	}
	return false
}

// phoneStripper drops the separators commonly embedded in phone numbers.
var phoneStripper = strings.NewReplacer(" ", "", "-", "", "(", "", ")", "", "+", "")

// Phone validates a phone number. Separators and a leading plus are stripped
// before checking that only digits remain within the accepted length.
func (e *Engine) Phone(number string) domain.Result {
	var res domain.Result
	number = strings.TrimSpace(number)
	if number == "" {
		res.Errorf("phone is required")
		return res
	}
	digits := phoneStripper.Replace(number)
	for _, r := range digits {
		if !unicode.IsDigit(r) {
			res.Errorf("phone may only contain digits and separators")
			return res
		}
	}
	if len(digits) < e.limits.PhoneMinDigits || len(digits) > e.limits.PhoneMaxDigits {
		res.Errorf("phone must contain between %d and %d digits", e.limits.PhoneMinDigits, e.limits.PhoneMaxDigits)
	}
	return res
}

// Coordinates validates a latitude/longitude pair against geographic bounds.
// Both violations are reported when both values are out of range.
func (e *Engine) Coordinates(lat, lon float64) domain.Result {
	var res domain.Result
	if math.IsNaN(lat) || lat < -90 || lat > 90 {
		res.Errorf("latitude must be between -90 and 90")
	}
	if math.IsNaN(lon) || lon < -180 || lon > 180 {
		res.Errorf("longitude must be between -180 and 180")
	}
	return res
}
