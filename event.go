package formkit

// Target identifies the form field an event originated from. Name is the
// primary source; Attributes is the fallback for widgets that only expose an
// attribute-style accessor.
type Target struct {
	Name       string
	Attributes map[string]string
}

// fieldName resolves the field name from the target, falling back to the
// "name" attribute. The second result is false when neither source yields a
// usable name.
func (t Target) fieldName() (string, bool) {
	if t.Name != "" {
		return t.Name, true
	}
	if name := t.Attributes["name"]; name != "" {
		return name, true
	}
	return "", false
}

// ChangeEvent describes a value edit on a field. HasValue distinguishes
// genuine input (including zero values) from a malformed programmatic event
// that carried no value at all; the engine warns and ignores the latter.
type ChangeEvent struct {
	Target   Target
	Value    any
	HasValue bool
}

// BlurEvent describes focus leaving a field.
type BlurEvent struct {
	Target Target
}

// PickerEvent describes a change from a widget that delivers its value via a
// side channel rather than a value attribute (date pickers and similar
// structured components). A nil Payload makes the event a no-op.
type PickerEvent struct {
	Target  Target
	Payload any
}

// SubmitEvent describes a form submission. PreventDefault, when set, is
// always invoked before validation so the enclosing form never partially
// submits.
type SubmitEvent struct {
	PreventDefault func()
}
