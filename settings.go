package formkit

import (
	"github.com/dmitrymomot/formkit/pkg/config"
	"github.com/dmitrymomot/formkit/pkg/environment"
	"github.com/dmitrymomot/formkit/pkg/logger"
)

// Settings are the environment-sourced engine defaults used by NewFromEnv.
type Settings struct {
	Environment string `env:"FORMKIT_ENV" envDefault:"development"`
	LogLevel    string `env:"FORMKIT_LOG_LEVEL" envDefault:"info"`
	LogFormat   string `env:"FORMKIT_LOG_FORMAT" envDefault:"text"`
}

// NewFromEnv builds an Engine configured from FORMKIT_* environment
// variables: the deployment environment (which controls the
// configuration-integrity check) and a matching diagnostics logger. Explicit
// options are applied last and win over the environment-derived defaults.
func NewFromEnv(fields Config, values ValueStore, errs ErrorStore, opts ...Option) (*Engine, error) {
	var settings Settings
	if err := config.Load(&settings); err != nil {
		return nil, err
	}

	env := environment.Parse(settings.Environment)
	log := logger.New(
		logger.WithEnvironment(string(env), "formkit"),
		logger.WithLevel(logger.ParseLevel(settings.LogLevel)),
		logger.WithFormat(logger.Format(settings.LogFormat)),
	)

	combined := append([]Option{
		WithEnvironment(env),
		WithLogger(log),
	}, opts...)

	return New(fields, values, errs, combined...), nil
}
