package validator

import (
	"context"
	"strings"

	"github.com/dmitrymomot/formkit"
)

// CreditCard validates a card number using the Luhn checksum. Spaces and
// dashes are stripped first; the cleaned number must be 13-19 digits.
func CreditCard() formkit.Validator {
	return func(_ context.Context, value any) (bool, error) {
		if absent(value) {
			return true, nil
		}
		cleaned := strings.ReplaceAll(strings.ReplaceAll(stringOf(value), " ", ""), "-", "")

		if !numericStringRegex.MatchString(cleaned) {
			return false, nil
		}
		if len(cleaned) < 13 || len(cleaned) > 19 {
			return false, nil
		}

		// Luhn algorithm, right to left
		sum := 0
		double := false
		for i := len(cleaned) - 1; i >= 0; i-- {
			digit := int(cleaned[i] - '0')
			if double {
				digit *= 2
				if digit > 9 {
					digit = digit/10 + digit%10
				}
			}
			sum += digit
			double = !double
		}

		return sum%10 == 0, nil
	}
}
