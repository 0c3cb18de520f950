package logger_test

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/logger"
)

func TestGroup(t *testing.T) {
	attr := logger.Group("validation", slog.String("field", "email"), slog.Int("rules", 2))
	require.Equal(t, "validation", attr.Key)
	require.Equal(t, slog.KindGroup, attr.Value.Kind())
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, "field", g[0].Key)
	assert.Equal(t, "rules", g[1].Key)
}

func TestError(t *testing.T) {
	t.Run("wraps error under error key", func(t *testing.T) {
		err := errors.New("boom")
		attr := logger.Error(err)
		assert.Equal(t, "error", attr.Key)
		assert.Equal(t, err, attr.Value.Any())
	})

	t.Run("nil error yields empty attr", func(t *testing.T) {
		assert.Equal(t, slog.Attr{}, logger.Error(nil))
	})
}

func TestDomainAttrs(t *testing.T) {
	assert.Equal(t, slog.String("field", "email"), logger.Field("email"))
	assert.Equal(t, slog.Attr{}, logger.Field(""))

	assert.Equal(t, slog.String("event", "change"), logger.Event("change"))
	assert.Equal(t, slog.Attr{}, logger.Event(""))

	assert.Equal(t, slog.String("form", "signup"), logger.Form("signup"))
	assert.Equal(t, slog.Attr{}, logger.Form(""))
}
