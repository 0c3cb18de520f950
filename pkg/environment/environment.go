package environment

import "strings"

// Environment represents the deployment environment a form engine runs in.
type Environment string

const (
	// Development for development environment.
	Development Environment = "development"
	// Production for production environment.
	Production Environment = "production"
	// Staging for staging environment.
	Staging Environment = "staging"
)

// Parse maps a free-form environment string to one of the known
// environments. Unrecognised values resolve to Development so integrity
// checks stay on unless production is named explicitly.
func Parse(s string) Environment {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(Production), "prod":
		return Production
	case string(Staging), "stage":
		return Staging
	default:
		return Development
	}
}

// IsProduction reports whether env names the production environment.
func (e Environment) IsProduction() bool {
	return e == Production
}

// IsDevelopment reports whether env names the development environment.
func (e Environment) IsDevelopment() bool {
	return e == Development
}

// IsStaging reports whether env names the staging environment.
func (e Environment) IsStaging() bool {
	return e == Staging
}
