// Package environment models the deployment environment of a form engine.
//
// The engine uses the environment to decide whether the
// configuration-integrity check runs: it is always on outside production and
// skipped in production for performance. Parse resolves free-form strings
// (such as the FORMKIT_ENV variable) to a known environment, defaulting to
// Development.
package environment
