package formkit

import "context"

// Validator reports whether a single value is acceptable. Implementations may
// block while awaiting an asynchronous check; the engine always waits for the
// result before moving to the next validation. A non-nil error marks the
// validator itself as faulty (it "threw"), which is distinct from the value
// merely failing the check.
type Validator func(ctx context.Context, value any) (bool, error)

// Validation pairs a predicate with the human-readable message recorded when
// the predicate rejects the value.
type Validation struct {
	Check   Validator
	Message string
}

// Field declares the validation setup for one named form field.
//
// Validations run in declared order. RelatedFields names sibling fields that
// are re-validated after this field, but only while they already display an
// error. NestedFieldOf redirects this field's validation to the named target;
// auxiliary fields configured this way never receive an error of their own.
// NestedFieldOf and RelatedFields are mutually exclusive: declaring both is
// a configuration fault raised when the field's fan-out executes.
type Field struct {
	Name          string
	Validations   []Validation
	RelatedFields []string
	NestedFieldOf string
}

// Config is the ordered set of field declarations handed to New. The declared
// order is the iteration order of ValidateAll. The engine treats a Config as
// immutable for its lifetime.
type Config []Field

// Lookup returns the declaration for name, if present.
func (c Config) Lookup(name string) (Field, bool) {
	for _, f := range c {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}
