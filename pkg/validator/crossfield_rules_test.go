package validator_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/partial"
	"github.com/dmitrymomot/formkit/pkg/validator"
)

func TestEqual(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	ok, err := validator.Equal(ctx, "abc", "abc")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = validator.Equal(ctx, "abc", "xyz")
	require.NoError(t, err)
	assert.False(t, ok)

	t.Run("absent first argument is valid", func(t *testing.T) {
		t.Parallel()
		ok, err := validator.Equal(ctx, "", "anything")
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("missing arguments fault", func(t *testing.T) {
		t.Parallel()
		_, err := validator.Equal(ctx, "only-one")
		assert.Error(t, err)
	})
}

func TestNotEqual(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	ok, err := validator.NotEqual(ctx, "new-password", "old-password")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = validator.NotEqual(ctx, "same", "same")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestDateOrdered(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	ok, err := validator.DateOrdered(ctx, "2026-01-01", "2026-06-01")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = validator.DateOrdered(ctx, "2026-06-01", "2026-01-01")
	require.NoError(t, err)
	assert.False(t, ok)

	t.Run("equal dates are ordered", func(t *testing.T) {
		t.Parallel()
		ok, err := validator.DateOrdered(ctx, "2026-01-01", "2026-01-01")
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("absent side is valid", func(t *testing.T) {
		t.Parallel()
		ok, err := validator.DateOrdered(ctx, "", "2026-01-01")
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("unparseable date fails", func(t *testing.T) {
		t.Parallel()
		ok, err := validator.DateOrdered(ctx, "soon", "2026-01-01")
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestCrossFieldViaPartial(t *testing.T) {
	t.Parallel()

	values := map[string]any{"password": "Abc12345"}
	confirm := partial.BindValues(validator.Equal, func() map[string]any { return values },
		partial.Slot, partial.Field("password")).Validator()

	ok, err := confirm(context.Background(), "Abc12345")
	require.NoError(t, err)
	assert.True(t, ok)

	// A later password change is visible to the already-bound validator.
	values["password"] = "Xyz98765"
	ok, err = confirm(context.Background(), "Abc12345")
	require.NoError(t, err)
	assert.False(t, ok)
}
