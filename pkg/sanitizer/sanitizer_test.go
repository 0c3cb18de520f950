package sanitizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/formkit/pkg/sanitizer"
)

func TestApplyAndCompose(t *testing.T) {
	t.Parallel()

	t.Run("apply chains transforms in order", func(t *testing.T) {
		t.Parallel()
		got := sanitizer.Apply("  HELLO  ", sanitizer.Trim, sanitizer.ToLower)
		assert.Equal(t, "hello", got)
	})

	t.Run("compose builds a reusable pipeline", func(t *testing.T) {
		t.Parallel()
		clean := sanitizer.Compose(sanitizer.Trim, sanitizer.ToLower)
		assert.Equal(t, "hello", clean("  HELLO  "))
		assert.Equal(t, "world", clean("World"))
	})

	t.Run("empty pipeline is identity", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "as-is", sanitizer.Apply("as-is"))
	})
}

func TestStringNormalizers(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "a b c", sanitizer.CollapseWhitespace("  a \t b \n c  "))
	assert.Equal(t, "line one line two", sanitizer.SingleLine("line one\r\nline two"))
}

func TestNormalizeEmail(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "user@example.com", sanitizer.NormalizeEmail("  User@Example.COM  "))
	assert.Equal(t, "first.last@example.com", sanitizer.NormalizeEmail("first..last@example.com"))
	assert.Equal(t, "not-an-email", sanitizer.NormalizeEmail(" Not-An-Email "))
}

func TestNormalizePhone(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "+14155552671", sanitizer.NormalizePhone("+1 (415) 555-2671"))
	assert.Equal(t, "4155552671", sanitizer.NormalizePhone("415.555.2671"))
}

func TestNormalizeCreditCard(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "4532015112830366", sanitizer.NormalizeCreditCard("4532-0151-1283-0366"))
	assert.Equal(t, "4532015112830366", sanitizer.NormalizeCreditCard("4532 0151 1283 0366"))
}
