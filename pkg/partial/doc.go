// Package partial turns multi-argument validation predicates into the unary
// shape the formkit engine consumes, by binding fixed arguments ahead of
// time.
//
// Bind fixes arguments around Slot placeholders that are filled from
// call-time arguments left to right; surplus call-time arguments are
// appended. BindValues extends Bind with FieldRef arguments that resolve
// against a live form-values snapshot on every call, which is how cross-field
// validators (password confirmation, date ranges) stay current without being
// reconfigured per keystroke.
//
//	dateOrdered := func(ctx context.Context, args ...any) (bool, error) { ... }
//
//	check := partial.BindValues(dateOrdered, values.Values,
//		partial.Field("startDate"), partial.Slot,
//	).Validator()
//
// The resulting func satisfies the engine's Validator contract structurally.
package partial
