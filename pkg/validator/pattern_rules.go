package validator

import (
	"context"
	"regexp"
	"unicode"

	"github.com/dmitrymomot/formkit"
)

// Matches validates the input against pattern. The pattern is compiled at
// construction; an invalid pattern panics, the same fail-fast posture as a
// bad engine configuration.
func Matches(pattern string) formkit.Validator {
	re := regexp.MustCompile(pattern)
	return func(_ context.Context, value any) (bool, error) {
		if absent(value) {
			return true, nil
		}
		return re.MatchString(stringOf(value)), nil
	}
}

// NoWhitespace validates that the input contains no whitespace characters.
func NoWhitespace() formkit.Validator {
	return func(_ context.Context, value any) (bool, error) {
		if absent(value) {
			return true, nil
		}
		for _, r := range stringOf(value) {
			if unicode.IsSpace(r) {
				return false, nil
			}
		}
		return true, nil
	}
}

// ContainsUppercase validates that the input contains at least one uppercase
// letter.
func ContainsUppercase() formkit.Validator {
	return containsClass(unicode.IsUpper)
}

// ContainsLowercase validates that the input contains at least one lowercase
// letter.
func ContainsLowercase() formkit.Validator {
	return containsClass(unicode.IsLower)
}

// ContainsDigit validates that the input contains at least one digit.
func ContainsDigit() formkit.Validator {
	return containsClass(unicode.IsDigit)
}

// ContainsSpecial validates that the input contains at least one character
// that is neither a letter, a digit, nor whitespace.
func ContainsSpecial() formkit.Validator {
	return containsClass(func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && !unicode.IsSpace(r)
	})
}

func containsClass(match func(rune) bool) formkit.Validator {
	return func(_ context.Context, value any) (bool, error) {
		if absent(value) {
			return true, nil
		}
		for _, r := range stringOf(value) {
			if match(r) {
				return true, nil
			}
		}
		return false, nil
	}
}
