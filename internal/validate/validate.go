// Package validate holds the field validation rules shared by every
// entity. The rules are pure predicates: they look at a single value
// and return a typed *Error carrying the field name, a human readable
// reason and the offending value. Repositories run them before every
// INSERT and UPDATE, so an entity that turns invalid through later
// editing is rejected at save time, not only at creation.
package validate

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Error describes a single field invariant violation.
type Error struct {
	Field  string
	Reason string
	Value  any
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s (got %v)", e.Field, e.Reason, e.Value)
}

// AsError reports whether err is a validation failure and returns it.
func AsError(err error) (*Error, bool) {
	var ve *Error
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

// Now is the clock used by the temporal rules. Tests may override it.
var Now = func() time.Time { return time.Now().UTC() }

// NotFuture fails when ts lies strictly after the current time. It
// guards created/modified stamps against clock skew and forged values.
func NotFuture(field string, ts time.Time) error {
	if ts.After(Now()) {
		return &Error{Field: field, Reason: "date and time is bigger than current", Value: ts}
	}
	return nil
}

// NonNegative fails when d is strictly below zero.
func NonNegative(field string, d decimal.Decimal) error {
	if d.IsNegative() {
		return &Error{Field: field, Reason: "value has to be greater than or equal to zero", Value: d}
	}
	return nil
}

// Within fails when d lies outside [lo, hi].
func Within(field string, d, lo, hi decimal.Decimal) error {
	if d.LessThan(lo) || d.GreaterThan(hi) {
		return &Error{
			Field:  field,
			Reason: fmt.Sprintf("value has to be between %s and %s", lo, hi),
			Value:  d,
		}
	}
	return nil
}

// NotPast fails when day is before today (UTC). Time-of-day components
// are ignored on both sides.
func NotPast(field string, day time.Time) error {
	today := Now().Truncate(24 * time.Hour)
	if day.Truncate(24 * time.Hour).Before(today) {
		return &Error{Field: field, Reason: "date is less than current", Value: day}
	}
	return nil
}

// Required fails when s is empty after trimming whitespace.
func Required(field, s string) error {
	if strings.TrimSpace(s) == "" {
		return &Error{Field: field, Reason: "must not be empty", Value: s}
	}
	return nil
}

// TimeOfDay fails when s is not a valid HH:MM:SS clock value.
func TimeOfDay(field, s string) error {
	if _, err := time.Parse("15:04:05", s); err != nil {
		return &Error{Field: field, Reason: "must be a valid HH:MM:SS time", Value: s}
	}
	return nil
}

// Amount validates a funding amount: strictly positive, at most
// maxDigits significant digits in total and at most maxPlaces digits
// after the decimal point. Zero, negative and over-precision values all
// fail; callers never apply partial credit.
func Amount(field string, d decimal.Decimal, maxDigits, maxPlaces int) error {
	if !d.IsPositive() {
		return &Error{Field: field, Reason: "you can only add a positive amount of money", Value: d}
	}
	intDigits, fracDigits := digits(d)
	if fracDigits > maxPlaces {
		return &Error{
			Field:  field,
			Reason: fmt.Sprintf("no more than %d decimal places allowed", maxPlaces),
			Value:  d,
		}
	}
	if intDigits+fracDigits > maxDigits {
		return &Error{
			Field:  field,
			Reason: fmt.Sprintf("no more than %d digits allowed", maxDigits),
			Value:  d,
		}
	}
	return nil
}

// digits counts the integer and fractional digits of d, ignoring any
// leading zeros of the integer part.
func digits(d decimal.Decimal) (intDigits, fracDigits int) {
	s := d.Abs().String()
	intPart, fracPart, _ := strings.Cut(s, ".")
	intPart = strings.TrimLeft(intPart, "0")
	return len(intPart), len(fracPart)
}
