// Package logger builds the slog-based diagnostics channel the validation
// engine reports through: usage faults (missing field names, valueless change
// events) and validator faults (a predicate returning an error).
//
// New assembles a *slog.Logger from functional options: output format
// (text/json), minimum level, static attributes, and context extractors that
// pull request-scoped values into every record. Environment presets
// (WithDevelopment, WithStaging, WithProduction, or WithEnvironment to pick
// one by name) match the formkit engine's environment handling.
//
// The attribute helpers (Field, Event, Form, Error, Group) keep diagnostic
// keys consistent across the engine and integrations:
//
//	log := logger.New(logger.WithDevelopment("checkout-form"))
//	log.Error("validator failed", logger.Field("email"), logger.Error(err))
package logger
