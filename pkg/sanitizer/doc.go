// Package sanitizer normalizes externally-sourced form values before they
// enter validation.
//
// Integrations whose widgets emit structured or messy payloads (pasted card
// numbers with spaces, phone numbers with punctuation, multi-line text in a
// single-line field) normalize through this package and stage the result with
// the engine's SetFieldValue, which merges a value without triggering
// validation:
//
//	normalizeCard := sanitizer.Compose(sanitizer.Trim, sanitizer.NormalizeCreditCard)
//	engine.SetFieldValue("cardNumber", normalizeCard(raw))
//
// All helpers are pure and allocation-light; Apply and Compose chain them
// into reusable pipelines.
package sanitizer
