package validator

import (
	"context"

	"github.com/dmitrymomot/formkit"
)

// Min validates that the input, read as a number, is at least min. Input with
// no numeric reading fails.
func Min(min float64) formkit.Validator {
	return func(_ context.Context, value any) (bool, error) {
		if absent(value) {
			return true, nil
		}
		n, ok := numberOf(value)
		return ok && n >= min, nil
	}
}

// Max validates that the input, read as a number, is at most max.
func Max(max float64) formkit.Validator {
	return func(_ context.Context, value any) (bool, error) {
		if absent(value) {
			return true, nil
		}
		n, ok := numberOf(value)
		return ok && n <= max, nil
	}
}

// Range validates that the input, read as a number, lies in [min, max].
func Range(min, max float64) formkit.Validator {
	return func(_ context.Context, value any) (bool, error) {
		if absent(value) {
			return true, nil
		}
		n, ok := numberOf(value)
		return ok && n >= min && n <= max, nil
	}
}

// Numeric validates that the input has a numeric reading at all.
func Numeric() formkit.Validator {
	return func(_ context.Context, value any) (bool, error) {
		if absent(value) {
			return true, nil
		}
		_, ok := numberOf(value)
		return ok, nil
	}
}
