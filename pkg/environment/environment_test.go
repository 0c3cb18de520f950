package environment_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/formkit/pkg/environment"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  environment.Environment
	}{
		{"production", "production", environment.Production},
		{"prod shorthand", "prod", environment.Production},
		{"uppercase production", "PRODUCTION", environment.Production},
		{"staging", "staging", environment.Staging},
		{"stage shorthand", "stage", environment.Staging},
		{"development", "development", environment.Development},
		{"unknown defaults to development", "qa", environment.Development},
		{"empty defaults to development", "", environment.Development},
		{"padded value", "  prod  ", environment.Production},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, environment.Parse(tt.input))
		})
	}
}

func TestPredicates(t *testing.T) {
	t.Parallel()

	assert.True(t, environment.Production.IsProduction())
	assert.False(t, environment.Production.IsDevelopment())
	assert.True(t, environment.Development.IsDevelopment())
	assert.True(t, environment.Staging.IsStaging())
	assert.False(t, environment.Staging.IsProduction())
}

func TestContext(t *testing.T) {
	t.Parallel()

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()
		ctx := environment.WithContext(context.Background(), environment.Staging)
		assert.Equal(t, environment.Staging, environment.FromContext(ctx))
	})

	t.Run("missing value defaults to development", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, environment.Development, environment.FromContext(context.Background()))
	})

	t.Run("nil context defaults to development", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, environment.Development, environment.FromContext(nil)) //nolint:staticcheck
	})
}
