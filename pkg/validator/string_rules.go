package validator

import (
	"context"

	"github.com/dmitrymomot/formkit"
)

// Required rejects absent input: nil, or a string that trims to empty. This
// is the only family that fails on absence; every other validator passes
// absent input through so optional fields stay quiet until filled.
func Required() formkit.Validator {
	return func(_ context.Context, value any) (bool, error) {
		return !absent(value), nil
	}
}

// MinLen validates that the input is at least min bytes long.
func MinLen(min int) formkit.Validator {
	return func(_ context.Context, value any) (bool, error) {
		if absent(value) {
			return true, nil
		}
		return len(stringOf(value)) >= min, nil
	}
}

// MaxLen validates that the input is at most max bytes long.
func MaxLen(max int) formkit.Validator {
	return func(_ context.Context, value any) (bool, error) {
		if absent(value) {
			return true, nil
		}
		return len(stringOf(value)) <= max, nil
	}
}

// Len validates that the input is exactly length bytes long.
func Len(length int) formkit.Validator {
	return func(_ context.Context, value any) (bool, error) {
		if absent(value) {
			return true, nil
		}
		return len(stringOf(value)) == length, nil
	}
}
