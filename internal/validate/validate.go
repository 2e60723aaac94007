// Package validate holds the field-level validation rules shared by every
// record kind in the API. All entity and user validation goes through the
// same rule set so that constraints (ID length, name bounds, email format,
// non-negative monetary values) cannot drift between kinds.
package validate

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrInvalid is the sentinel wrapped by every validation failure.
// Callers classify with errors.Is(err, validate.ErrInvalid).
var ErrInvalid = errors.New("validation failed")

// IDLength is the exact length of every primary-key identifier.
// IDs are opaque, caller-supplied, and never generated server-side.
const IDLength = 10

// emailPattern is a pragmatic format check, not a full RFC 5322 parser.
var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// StringRule describes the constraints on one string field.
type StringRule struct {
	Name     string
	Value    string
	Required bool
	MinLen   int
	MaxLen   int
	Email    bool
}

// ID checks that a primary-key field is exactly IDLength characters.
// A wrong length is a validation failure, never a conflict.
func ID(name, value string) error {
	if len(value) != IDLength {
		return fmt.Errorf("%w: %s must be exactly %d characters", ErrInvalid, name, IDLength)
	}
	return nil
}

// Strings applies a list of string rules and returns the first failure.
func Strings(rules []StringRule) error {
	for _, r := range rules {
		if err := r.check(); err != nil {
			return err
		}
	}
	return nil
}

func (r StringRule) check() error {
	v := strings.TrimSpace(r.Value)
	if v == "" {
		if r.Required {
			return fmt.Errorf("%w: %s is required", ErrInvalid, r.Name)
		}
		return nil
	}
	if r.MinLen > 0 && len(v) < r.MinLen {
		return fmt.Errorf("%w: %s must be at least %d characters", ErrInvalid, r.Name, r.MinLen)
	}
	if r.MaxLen > 0 && len(v) > r.MaxLen {
		return fmt.Errorf("%w: %s exceeds %d characters", ErrInvalid, r.Name, r.MaxLen)
	}
	if r.Email && !emailPattern.MatchString(v) {
		return fmt.Errorf("%w: %s is not a valid email address", ErrInvalid, r.Name)
	}
	return nil
}

// NonNegative checks a monetary value. Zero is accepted.
func NonNegative(name string, value float64) error {
	if value < 0 {
		return fmt.Errorf("%w: %s must not be negative", ErrInvalid, name)
	}
	return nil
}
