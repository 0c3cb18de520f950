package validator

import (
	"context"
	"math"
	"strings"
	"unicode"

	"github.com/dmitrymomot/formkit"
)

// Common weak passwords - curated list of frequently compromised passwords
var commonPasswords = map[string]bool{
	"password":      true,
	"123456":        true,
	"password123":   true,
	"admin":         true,
	"qwerty":        true,
	"abc123":        true,
	"letmein":       true,
	"welcome":       true,
	"monkey":        true,
	"1234567890":    true,
	"dragon":        true,
	"sunshine":      true,
	"iloveyou":      true,
	"princess":      true,
	"football":      true,
	"1234":          true,
	"12345":         true,
	"12345678":      true,
	"123456789":     true,
	"123123":        true,
	"111111":        true,
	"000000":        true,
	"qwertyuiop":    true,
	"asdfghjkl":     true,
	"zxcvbnm":       true,
	"qwerty123":     true,
	"password1":     true,
	"password12":    true,
	"password!":     true,
	"Password":      true,
	"Password1":     true,
	"Password123":   true,
	"admin123":      true,
	"administrator": true,
	"root":          true,
	"guest":         true,
}

// NotCommonPassword rejects passwords from the curated list of frequently
// compromised passwords. Matching is case-sensitive except for the handful of
// capitalized variants the list carries explicitly.
func NotCommonPassword() formkit.Validator {
	return func(_ context.Context, value any) (bool, error) {
		if absent(value) {
			return true, nil
		}
		input := stringOf(value)
		return !commonPasswords[input] && !commonPasswords[strings.ToLower(input)], nil
	}
}

// MinEntropy validates that the password's estimated entropy is at least bits.
// Entropy is estimated as length times log2 of the character-class pool size
// (lowercase 26, uppercase 26, digits 10, other 32).
func MinEntropy(bits float64) formkit.Validator {
	return func(_ context.Context, value any) (bool, error) {
		if absent(value) {
			return true, nil
		}
		return estimateEntropy(stringOf(value)) >= bits, nil
	}
}

func estimateEntropy(password string) float64 {
	var lower, upper, digit, other bool
	for _, r := range password {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		default:
			other = true
		}
	}

	pool := 0
	if lower {
		pool += 26
	}
	if upper {
		pool += 26
	}
	if digit {
		pool += 10
	}
	if other {
		pool += 32
	}
	if pool == 0 {
		return 0
	}

	return float64(len([]rune(password))) * math.Log2(float64(pool))
}
