package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInputValidation   = errors.New("input validation failed")
	ErrInvalidProfile    = errors.New("invalid health profile")
	ErrDuplicateDishName = errors.New("dish name already exists")
	ErrInvalidDish       = errors.New("invalid dish")
)

// InputValidationError is raised at the request boundary and names the
// failing field together with its valid range.
// Constraint is set when the value is inside its range but breaks a
// cross-field rule, e.g. "must be higher than diastolicBP".
type InputValidationError struct {
	Field      string
	Min        int
	Max        int
	Unit       string
	Constraint string
}

func (e *InputValidationError) Error() string {
	rng := fmt.Sprintf("%d and %d", e.Min, e.Max)
	if e.Unit != "" {
		rng += " " + e.Unit
	}
	if e.Constraint != "" {
		if e.Max == 0 {
			return fmt.Sprintf("%s %s", e.Field, e.Constraint)
		}
		return fmt.Sprintf("%s %s (valid range between %s)", e.Field, e.Constraint, rng)
	}
	return fmt.Sprintf("%s must be between %s", e.Field, rng)
}

func (e *InputValidationError) Is(target error) bool {
	return target == ErrInputValidation
}

// InvalidProfileError is returned by the engine when a profile that
// reached it violates the age, weight or blood pressure invariants.
type InvalidProfileError struct {
	Field  string
	Reason string
}

func (e *InvalidProfileError) Error() string {
	return fmt.Sprintf("invalid health profile: %s: %s", e.Field, e.Reason)
}

func (e *InvalidProfileError) Is(target error) bool {
	return target == ErrInvalidProfile
}

type DuplicateNameError struct {
	Name string
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("dish %q already exists", e.Name)
}

func (e *DuplicateNameError) Is(target error) bool {
	return target == ErrDuplicateDishName
}
