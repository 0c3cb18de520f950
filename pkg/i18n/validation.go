package i18n

import "github.com/dmitrymomot/formkit"

// Validation builds a formkit.Validation whose error message is the
// localized text for key in lang, with placeholder args applied. Field
// configurations built this way stay declarative while the displayed
// messages follow the user's language:
//
//	cfg := formkit.Config{
//		{
//			Name: "password",
//			Validations: []formkit.Validation{
//				catalog.Validation(lang, validator.Required(), "validation.required"),
//				catalog.Validation(lang, validator.MinLen(8), "validation.min_length", "min", "8"),
//			},
//		},
//	}
func (c *Catalog) Validation(lang string, check formkit.Validator, key string, args ...string) formkit.Validation {
	return formkit.Validation{
		Check:   check,
		Message: c.T(lang, key, args...),
	}
}
