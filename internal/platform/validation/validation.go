// Package validation provides per-field request validators.
// Each validator returns at most one error so callers can fail fast on the
// first violated rule in a fixed, declared field order.
package validation

import (
	"fmt"
	"regexp"
)

// emailPattern is intentionally loose: one @, no whitespace, a dotted domain.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Required fails when the field was absent from the request body.
func Required(field string, value *string) error {
	if value == nil {
		return fmt.Errorf("%q is required", field)
	}
	return nil
}

// NotEmpty fails when a present string field is empty.
func NotEmpty(field, value string) error {
	if value == "" {
		return fmt.Errorf("%q is not allowed to be empty", field)
	}
	return nil
}

// MinLen fails when value is shorter than min characters.
func MinLen(field, value string, min int) error {
	if len(value) < min {
		return fmt.Errorf("%q length must be at least %d characters long", field, min)
	}
	return nil
}

// MaxLen fails when value is longer than max characters.
func MaxLen(field, value string, max int) error {
	if len(value) > max {
		return fmt.Errorf("%q length must be less than or equal to %d characters long", field, max)
	}
	return nil
}

// Email fails when value is not a syntactically valid email address.
func Email(field, value string) error {
	if !emailPattern.MatchString(value) {
		return fmt.Errorf("%q must be a valid email", field)
	}
	return nil
}
