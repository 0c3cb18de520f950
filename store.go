package formkit

// ValueStore is the caller-owned container of current field values. The
// engine keeps no copy: it reads a fresh snapshot on every operation and
// requests mutations through SetValue. Implementations decide how updates are
// applied (direct map write, functional state transition, signal).
type ValueStore interface {
	Values() map[string]any
	SetValue(field string, value any)
}

// ErrorStore is the caller-owned container of current field errors. An empty
// message means the field is valid; a missing key is equivalent to an empty
// message.
type ErrorStore interface {
	Errors() map[string]string
	SetError(field, message string)
}

// Values is a map-backed ValueStore for callers without their own container.
type Values map[string]any

// Values implements ValueStore.
func (v Values) Values() map[string]any { return v }

// SetValue implements ValueStore.
func (v Values) SetValue(field string, value any) { v[field] = value }

// Errors is a map-backed ErrorStore with inspection helpers.
type Errors map[string]string

// Errors implements ErrorStore.
func (e Errors) Errors() map[string]string { return e }

// SetError implements ErrorStore.
func (e Errors) SetError(field, message string) { e[field] = message }

// Has checks if a field currently displays an error.
func (e Errors) Has(field string) bool { return e[field] != "" }

// Get returns the error message for a field, empty when the field is valid.
func (e Errors) Get(field string) string { return e[field] }

// IsEmpty returns true if no field displays an error.
func (e Errors) IsEmpty() bool {
	for _, msg := range e {
		if msg != "" {
			return false
		}
	}
	return true
}

// Fields returns the names of fields currently displaying an error.
func (e Errors) Fields() []string {
	var fields []string
	for field, msg := range e {
		if msg != "" {
			fields = append(fields, field)
		}
	}
	return fields
}

// ValueFuncs adapts getter/setter functions to the ValueStore contract, for
// callers whose values live behind a store or signal rather than a map they
// can share.
type ValueFuncs struct {
	Get func() map[string]any
	Set func(field string, value any)
}

// Values implements ValueStore.
func (f ValueFuncs) Values() map[string]any {
	if f.Get == nil {
		return nil
	}
	return f.Get()
}

// SetValue implements ValueStore.
func (f ValueFuncs) SetValue(field string, value any) {
	if f.Set != nil {
		f.Set(field, value)
	}
}

// ErrorFuncs adapts getter/setter functions to the ErrorStore contract.
type ErrorFuncs struct {
	Get func() map[string]string
	Set func(field, message string)
}

// Errors implements ErrorStore.
func (f ErrorFuncs) Errors() map[string]string {
	if f.Get == nil {
		return nil
	}
	return f.Get()
}

// SetError implements ErrorStore.
func (f ErrorFuncs) SetError(field, message string) {
	if f.Set != nil {
		f.Set(field, message)
	}
}
