package fhir

import (
	"fmt"
	"time"
)

// DateLayout is the ISO date format used for FHIR date fields.
const DateLayout = "2006-01-02"

// DefaultCurrency is applied to all money values produced by the mappers.
const DefaultCurrency = "USD"

// NewMoney wraps a numeric amount in a Money with the fixed currency.
func NewMoney(v float64) Money {
	return Money{Value: v, Currency: DefaultCurrency}
}

// FormatDate renders a time as an ISO date, or "" for the zero time.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateLayout)
}

// FormatDateTime renders a time as RFC3339, or "" for the zero time.
func FormatDateTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

// ParseDate parses an ISO date or RFC3339 timestamp, returning the zero
// time on malformed input rather than an error.
func ParseDate(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t
	}
	return time.Time{}
}

// AgeFromBirthDate computes a human-readable age ("3 years", "5 months",
// "12 days") as of now. A zero birth date yields "".
func AgeFromBirthDate(birth, now time.Time) string {
	if birth.IsZero() || now.Before(birth) {
		return ""
	}
	years := now.Year() - birth.Year()
	months := int(now.Month()) - int(birth.Month())
	days := now.Day() - birth.Day()
	if days < 0 {
		months--
	}
	if months < 0 {
		years--
		months += 12
	}
	switch {
	case years == 1:
		return "1 year"
	case years > 1:
		return fmt.Sprintf("%d years", years)
	case months == 1:
		return "1 month"
	case months > 1:
		return fmt.Sprintf("%d months", months)
	default:
		d := int(now.Sub(birth).Hours() / 24)
		if d == 1 {
			return "1 day"
		}
		return fmt.Sprintf("%d days", d)
	}
}

// StrOr returns v, or def when v is empty. The defaulting policy for
// every mapper lives in these three helpers.
func StrOr(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func IntOr(v, def int) int {
	if v == 0 {
		return def
	}
	return v
}

func FloatOr(v, def float64) float64 {
	if v == 0 {
		return def
	}
	return v
}
