package validator

import (
	"context"
	"time"

	"github.com/dmitrymomot/formkit"
)

// PastDate validates that the input reads as a date strictly before now.
// Input with no date reading fails.
func PastDate() formkit.Validator {
	return func(_ context.Context, value any) (bool, error) {
		if absent(value) {
			return true, nil
		}
		t, ok := timeOf(value)
		return ok && t.Before(time.Now()), nil
	}
}

// FutureDate validates that the input reads as a date strictly after now.
func FutureDate() formkit.Validator {
	return func(_ context.Context, value any) (bool, error) {
		if absent(value) {
			return true, nil
		}
		t, ok := timeOf(value)
		return ok && t.After(time.Now()), nil
	}
}

// After validates that the input reads as a date after ref.
func After(ref time.Time) formkit.Validator {
	return func(_ context.Context, value any) (bool, error) {
		if absent(value) {
			return true, nil
		}
		t, ok := timeOf(value)
		return ok && t.After(ref), nil
	}
}

// Before validates that the input reads as a date before ref.
func Before(ref time.Time) formkit.Validator {
	return func(_ context.Context, value any) (bool, error) {
		if absent(value) {
			return true, nil
		}
		t, ok := timeOf(value)
		return ok && t.Before(ref), nil
	}
}
