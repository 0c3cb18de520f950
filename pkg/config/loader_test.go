package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/config"
)

type testSettings struct {
	Env      string `env:"FORMKIT_TEST_ENV" envDefault:"development"`
	LogLevel string `env:"FORMKIT_TEST_LOG_LEVEL" envDefault:"info"`
}

type requiredSettings struct {
	Token string `env:"FORMKIT_TEST_REQUIRED_TOKEN,required"`
}

func TestLoadDefaults(t *testing.T) {
	var settings testSettings
	require.NoError(t, config.Load(&settings))
	assert.Equal(t, "development", settings.Env)
	assert.Equal(t, "info", settings.LogLevel)
}

func TestLoadCachesPerType(t *testing.T) {
	var first testSettings
	require.NoError(t, config.Load(&first))

	// Changing the environment after the first load must not change the
	// cached value.
	t.Setenv("FORMKIT_TEST_ENV", "production")

	var second testSettings
	require.NoError(t, config.Load(&second))
	assert.Equal(t, first, second)
}

func TestLoadNilPointer(t *testing.T) {
	var settings *testSettings
	err := config.Load(settings)
	assert.ErrorIs(t, err, config.ErrNilPointer)
}

func TestLoadRequiredMissing(t *testing.T) {
	var settings requiredSettings
	err := config.Load(&settings)
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrParsingConfig)
}

func TestMustLoadPanicsOnError(t *testing.T) {
	assert.Panics(t, func() {
		var settings requiredSettings
		config.MustLoad(&settings)
	})
}
