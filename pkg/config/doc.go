// Package config loads engine settings from environment variables.
//
// Load parses `env`-tagged struct fields (via caarlos0/env), after loading
// the default .env file once per process (via godotenv). Parsed values are
// cached per struct type, so every part of an application that asks for the
// same settings type sees the same values. formkit.NewFromEnv builds its
// Settings through this package.
package config
