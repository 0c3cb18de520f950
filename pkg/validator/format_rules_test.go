package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/formkit/pkg/validator"
)

func TestEmail(t *testing.T) {
	t.Parallel()
	v := validator.Email()

	t.Run("valid addresses", func(t *testing.T) {
		t.Parallel()
		for _, email := range []string{
			"user@example.com",
			"first.last@sub.example.co.uk",
			"user+tag@example.io",
		} {
			assert.True(t, check(t, v, email), email)
		}
	})

	t.Run("invalid addresses", func(t *testing.T) {
		t.Parallel()
		for _, email := range []string{
			"plainaddress",
			"@example.com",
			"user@",
			"user@nodot",
			"user@.example.com",
			"user@example..com",
		} {
			assert.False(t, check(t, v, email), email)
		}
	})

	t.Run("absent input is valid", func(t *testing.T) {
		t.Parallel()
		assert.True(t, check(t, v, ""))
	})
}

func TestURL(t *testing.T) {
	t.Parallel()
	v := validator.URL()

	assert.True(t, check(t, v, "https://example.com/path?q=1"))
	assert.False(t, check(t, v, "not a url"))
	assert.False(t, check(t, v, "/relative/only"))
	assert.True(t, check(t, v, nil))
}

func TestURLWithScheme(t *testing.T) {
	t.Parallel()
	v := validator.URLWithScheme("https")

	assert.True(t, check(t, v, "https://example.com"))
	assert.False(t, check(t, v, "http://example.com"))
	assert.False(t, check(t, v, "ftp://example.com"))
}

func TestPhone(t *testing.T) {
	t.Parallel()
	v := validator.Phone()

	assert.True(t, check(t, v, "+14155552671"))
	assert.True(t, check(t, v, "+1 (415) 555-2671"))
	assert.False(t, check(t, v, "not-a-phone"))
	assert.False(t, check(t, v, "+0123"))
	assert.True(t, check(t, v, ""))
}

func TestCharacterClasses(t *testing.T) {
	t.Parallel()

	assert.True(t, check(t, validator.Alphanumeric(), "abc123"))
	assert.False(t, check(t, validator.Alphanumeric(), "abc 123"))

	assert.True(t, check(t, validator.Alpha(), "abcDEF"))
	assert.False(t, check(t, validator.Alpha(), "abc1"))

	assert.True(t, check(t, validator.NumericString(), "0123"))
	assert.False(t, check(t, validator.NumericString(), "12.3"))
}
