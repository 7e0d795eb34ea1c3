package errors

import (
	"regexp"
	"strings"
	"time"
	"unicode"
)

// DateLayout is the accepted game date format (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// ValidateDate checks that s is a calendar date in YYYY-MM-DD form and
// returns the parsed day.
func ValidateDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, New(ErrCodeInvalidDate, "date cannot be empty")
	}
	d, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, Wrap(ErrCodeInvalidDate, err, "invalid date %q (want YYYY-MM-DD)", s)
	}
	return d, nil
}

// teamCodeRegex matches 2-3 letter team abbreviations such as "SF" or "NYY".
var teamCodeRegex = regexp.MustCompile(`^[A-Za-z]{2,3}$`)

// ValidateTeamCode validates a team abbreviation.
//
// The validation rules are intentionally conservative:
//   - No empty codes
//   - Letters only, 2 or 3 of them
//
// The returned code is normalized to upper case.
func ValidateTeamCode(code string) (string, error) {
	if code == "" {
		return "", New(ErrCodeInvalidTeam, "team code cannot be empty")
	}
	for _, r := range code {
		if unicode.IsControl(r) {
			return "", New(ErrCodeInvalidTeam, "team code contains invalid control characters")
		}
	}
	if !teamCodeRegex.MatchString(code) {
		return "", New(ErrCodeInvalidTeam, "invalid team code %q (want 2-3 letters, e.g. CHC)", code)
	}
	return strings.ToUpper(code), nil
}

// ValidateGameNumber validates the doubleheader game number (1 or 2).
func ValidateGameNumber(n int) error {
	if n != 1 && n != 2 {
		return New(ErrCodeInvalidInput, "game number must be 1 or 2, got %d", n)
	}
	return nil
}

// ValidateFormat checks an output format against the supported set.
func ValidateFormat(format string, supported map[string]bool) error {
	if !supported[format] {
		return New(ErrCodeInvalidFormat, "invalid format: %s", format)
	}
	return nil
}
