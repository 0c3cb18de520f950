// Package i18n localizes validation error messages for formkit field
// configurations.
//
// A Catalog holds message templates per language, addressed by dot-separated
// keys ("validation.min_length") with named %{placeholder} substitution.
// Catalogs load from YAML or JSON content (the parser is picked by file
// extension) or from an already-parsed map. Lookup falls back to the default
// language and finally to the key itself, so a missing translation degrades
// to something visible rather than an empty error message.
//
// Match negotiates the best supported language for a user's preferences via
// BCP 47 matching (golang.org/x/text/language), and Catalog.Validation
// bridges directly into engine configuration by pairing a validator with its
// localized message:
//
//	catalog, _ := i18n.Load(ctx, "messages.yaml", content)
//	lang := catalog.Match("de-AT", "en")
//
//	validation := catalog.Validation(lang, validator.Required(), "validation.required")
package i18n
