package partial

import "context"

// FieldRef is a bound argument that resolves to another field's live value.
// Resolution happens at each call against the values snapshot supplied to
// BindValues, not at bind time, so a validator configured once keeps seeing
// up-to-date sibling values without being rebuilt on every change.
type FieldRef struct {
	name string
}

// Field creates a reference to the named form field.
func Field(name string) FieldRef {
	return FieldRef{name: name}
}

// Name returns the referenced field's name.
func (r FieldRef) Name() string { return r.name }

// BindValues binds like Bind, additionally resolving FieldRef arguments
// against the values snapshot returned by source at each call. Slot filling
// and surplus-argument semantics are identical to Bind.
//
//	same := func(ctx context.Context, args ...any) (bool, error) {
//		return args[0] == args[1], nil
//	}
//	matchesPassword := partial.BindValues(same, values.Values,
//		partial.Slot, partial.Field("password"))
func BindValues(fn Predicate, source func() map[string]any, bound ...any) Predicate {
	return func(ctx context.Context, args ...any) (bool, error) {
		resolved := make([]any, len(bound))
		copy(resolved, bound)

		var values map[string]any
		for i, b := range resolved {
			ref, ok := b.(FieldRef)
			if !ok {
				continue
			}
			if values == nil && source != nil {
				values = source()
			}
			resolved[i] = values[ref.name]
		}

		return fn(ctx, fill(resolved, args)...)
	}
}
