// Package validate holds the field-level predicates used by forms. Pure
// functions over strings; failures are collected per field in Errors, never
// returned as Go errors.
package validate

import (
	"regexp"
	"strings"
	"time"
)

var (
	emailRe      = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	cpfRe        = regexp.MustCompile(`^\d{3}\.\d{3}\.\d{3}-\d{2}$`)
	phoneRe      = regexp.MustCompile(`^\(?\d{2}\)?\s?\d{4,5}-?\d{4}$`)
	timeRe       = regexp.MustCompile(`^([01]?[0-9]|2[0-3]):[0-5][0-9]$`)
	lowerRe      = regexp.MustCompile(`[a-z]`)
	upperRe      = regexp.MustCompile(`[A-Z]`)
	digitRe      = regexp.MustCompile(`\d`)
	symbolRe     = regexp.MustCompile(`[@$!%*?&]`)
	passwordChRe = regexp.MustCompile(`^[A-Za-z\d@$!%*?&]{8,}$`)
)

// Email reports whether s looks like an email address.
func Email(s string) bool { return emailRe.MatchString(s) }

// StrongPassword requires at least 8 characters with lower, upper, digit and
// one of @$!%*?&.
func StrongPassword(s string) bool {
	return passwordChRe.MatchString(s) &&
		lowerRe.MatchString(s) &&
		upperRe.MatchString(s) &&
		digitRe.MatchString(s) &&
		symbolRe.MatchString(s)
}

// CPF checks the Brazilian 000.000.000-00 format.
func CPF(s string) bool { return cpfRe.MatchString(s) }

// Phone checks Brazilian phone formats like (11) 91234-5678.
func Phone(s string) bool { return phoneRe.MatchString(s) }

// FullName requires at least two words of two or more characters each.
func FullName(s string) bool {
	words := strings.Fields(strings.TrimSpace(s))
	if len(words) < 2 {
		return false
	}
	for _, w := range words {
		if len([]rune(w)) < 2 {
			return false
		}
	}
	return true
}

// TimeFormat checks an HH:MM clock time.
func TimeFormat(s string) bool { return timeRe.MatchString(s) }

// ValidTimeRange reports whether start precedes end. Empty values pass, so
// the rule composes with a separate required check.
func ValidTimeRange(start, end string) bool {
	if start == "" || end == "" {
		return true
	}
	st, err1 := time.Parse("15:04", start)
	en, err2 := time.Parse("15:04", end)
	if err1 != nil || err2 != nil {
		return false
	}
	return st.Before(en)
}

// NotFutureDate reports whether a "2006-01-02" date is today or earlier.
// Empty and unparseable values pass.
func NotFutureDate(s string) bool {
	if s == "" {
		return true
	}
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		return true
	}
	now := time.Now()
	endOfToday := time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 59, 0, time.UTC)
	return !d.After(endOfToday)
}

// Errors maps field names to messages. Check allocates on first failure, so
// a nil Errors works as long as the return value is kept.
type Errors map[string]string

// Check records msg under field when ok is false and returns the map for
// chaining.
func (e Errors) Check(ok bool, field, msg string) Errors {
	if ok {
		return e
	}
	if e == nil {
		e = Errors{}
	}
	e[field] = msg
	return e
}

// Valid reports whether no field failed.
func (e Errors) Valid() bool { return len(e) == 0 }
