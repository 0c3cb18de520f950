// Package validator is the built-in catalog of validation predicates for the
// formkit engine.
//
// Every exported constructor closes over its parameters and returns a
// formkit.Validator (a unary, context-aware predicate), so the catalog is a
// library of higher-order functions the engine treats uniformly. There is no
// hidden state: constructors are pure and the returned validators are
// goroutine-safe.
//
// # Architecture
//
// Each source file groups a family for one domain (`string_rules.go`,
// `format_rules.go`, `date_rules.go`, etc.). Cross-field predicates
// (`crossfield_rules.go`) are n-ary and shaped for pkg/partial, which binds
// sibling-field arguments down to the unary contract.
//
// # Conventions
//
// Absent input (nil, or a string that trims to empty) is valid for every
// family except Required. The engine does not special-case emptiness itself;
// this convention is what lets optional fields carry format validations that
// stay silent until the user types.
//
// Validators return (false, nil) for a normal failure. A non-nil error marks
// the validator as faulty; the engine logs it and records the configured
// message without halting the remaining validations.
//
// # Usage
//
//	formkit.Config{
//		{
//			Name: "email",
//			Validations: []formkit.Validation{
//				{Check: validator.Required(), Message: "Email is required."},
//				{Check: validator.Email(), Message: "Enter a valid email."},
//			},
//		},
//		{
//			Name: "confirmPassword",
//			Validations: []formkit.Validation{
//				{
//					Check: partial.BindValues(validator.Equal, values.Values,
//						partial.Slot, partial.Field("password")).Validator(),
//					Message: "Passwords must match.",
//				},
//			},
//		},
//	}
//
// Long-running checks (e.g. username availability over the network) are
// expressed as ordinary validators that block; the engine awaits each one
// sequentially.
package validator
