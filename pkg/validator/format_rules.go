package validator

import (
	"context"
	"net/mail"
	"net/url"
	"regexp"
	"slices"
	"strings"

	"github.com/dmitrymomot/formkit"
)

var (
	// Phone number regex - international format with optional country code
	phoneRegex = regexp.MustCompile(`^\+?[1-9]\d{1,14}$`)

	alphanumericRegex  = regexp.MustCompile(`^[a-zA-Z0-9]+$`)
	alphaRegex         = regexp.MustCompile(`^[a-zA-Z]+$`)
	numericStringRegex = regexp.MustCompile(`^[0-9]+$`)
)

// Email validates an email address using RFC 5322 parsing plus the stricter
// domain shape typical web forms expect (a dot-separated, non-empty domain).
func Email() formkit.Validator {
	return func(_ context.Context, value any) (bool, error) {
		if absent(value) {
			return true, nil
		}
		input := stringOf(value)

		addr, err := mail.ParseAddress(input)
		if err != nil {
			return false, nil
		}

		parts := strings.Split(addr.Address, "@")
		if len(parts) != 2 || parts[0] == "" {
			return false, nil
		}

		domain := parts[1]
		if !strings.Contains(domain, ".") || strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
			return false, nil
		}
		for _, part := range strings.Split(domain, ".") {
			if part == "" {
				return false, nil
			}
		}

		return true, nil
	}
}

// URL validates an absolute URL with a host.
func URL() formkit.Validator {
	return func(_ context.Context, value any) (bool, error) {
		if absent(value) {
			return true, nil
		}
		u, err := url.Parse(stringOf(value))
		if err != nil {
			return false, nil
		}
		return u.Scheme != "" && u.Host != "", nil
	}
}

// URLWithScheme validates an absolute URL whose scheme is one of the allowed
// set.
func URLWithScheme(schemes ...string) formkit.Validator {
	return func(_ context.Context, value any) (bool, error) {
		if absent(value) {
			return true, nil
		}
		u, err := url.Parse(stringOf(value))
		if err != nil || u.Host == "" {
			return false, nil
		}
		return slices.Contains(schemes, u.Scheme), nil
	}
}

// Phone validates an international phone number (E.164, optional leading +).
// Spaces, dashes, and parentheses are stripped before matching.
func Phone() formkit.Validator {
	replacer := strings.NewReplacer(" ", "", "-", "", "(", "", ")", "")
	return func(_ context.Context, value any) (bool, error) {
		if absent(value) {
			return true, nil
		}
		return phoneRegex.MatchString(replacer.Replace(stringOf(value))), nil
	}
}

// Alphanumeric validates that the input contains only letters and digits.
func Alphanumeric() formkit.Validator {
	return func(_ context.Context, value any) (bool, error) {
		if absent(value) {
			return true, nil
		}
		return alphanumericRegex.MatchString(stringOf(value)), nil
	}
}

// Alpha validates that the input contains only letters.
func Alpha() formkit.Validator {
	return func(_ context.Context, value any) (bool, error) {
		if absent(value) {
			return true, nil
		}
		return alphaRegex.MatchString(stringOf(value)), nil
	}
}

// NumericString validates that the input contains only digits.
func NumericString() formkit.Validator {
	return func(_ context.Context, value any) (bool, error) {
		if absent(value) {
			return true, nil
		}
		return numericStringRegex.MatchString(stringOf(value)), nil
	}
}
