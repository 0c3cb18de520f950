package formkit

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/formkit/pkg/environment"
	"github.com/dmitrymomot/formkit/pkg/logger"
)

// Engine orchestrates field validation in response to UI events. It holds the
// static field configuration and references to the caller-owned stores, and
// nothing else; all operations are safe to call for the lifetime of a form
// session.
type Engine struct {
	fields Config
	values ValueStore
	errors ErrorStore
	log    *slog.Logger
	env    environment.Environment
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the diagnostics logger. Defaults to slog.Default().
func WithLogger(log *slog.Logger) Option {
	return func(e *Engine) {
		if log != nil {
			e.log = log
		}
	}
}

// WithEnvironment sets the deployment environment. In Production the
// configuration-integrity check that guards against a field declaring both
// NestedFieldOf and RelatedFields is skipped; everywhere else a violation
// panics with a *ConfigError.
func WithEnvironment(env environment.Environment) Option {
	return func(e *Engine) {
		e.env = env
	}
}

// New creates an Engine over the given configuration and caller-owned stores.
func New(fields Config, values ValueStore, errs ErrorStore, opts ...Option) *Engine {
	e := &Engine{
		fields: fields,
		values: values,
		errors: errs,
		log:    slog.Default(),
		env:    environment.Development,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(e)
		}
	}
	return e
}

// Change handles a value edit: it merges the incoming value into the value
// store, validates the field against the incoming value directly (so the
// outcome does not depend on when the caller's state update lands), and fans
// out to nested or related fields. Events without a resolvable field name or
// without a value are logged and ignored.
func (e *Engine) Change(ctx context.Context, ev ChangeEvent) {
	name, ok := e.resolveField(ctx, ev.Target)
	if !ok {
		return
	}
	if !ev.HasValue {
		e.log.WarnContext(ctx, "change event carried no value", logger.Field(name))
		return
	}

	e.values.SetValue(name, ev.Value)
	e.validateField(ctx, name, ev.Value, true)
	e.fanOut(ctx, name)
}

// SelectChange handles a dropdown-style change. The contract is identical to
// Change; it exists so call sites wiring select widgets read naturally.
func (e *Engine) SelectChange(ctx context.Context, ev ChangeEvent) {
	e.Change(ctx, ev)
}

// PickerChange handles widgets that deliver their value via a side channel,
// such as date pickers emitting a structured payload. A nil payload is a
// no-op; otherwise the payload is treated exactly like a change value.
func (e *Engine) PickerChange(ctx context.Context, ev PickerEvent) {
	if ev.Payload == nil {
		return
	}
	e.Change(ctx, ChangeEvent{Target: ev.Target, Value: ev.Payload, HasValue: true})
}

// Blur validates the field against its currently stored value and fans out to
// nested or related fields.
func (e *Engine) Blur(ctx context.Context, ev BlurEvent) {
	name, ok := e.resolveField(ctx, ev.Target)
	if !ok {
		return
	}
	e.validateField(ctx, name, nil, false)
	e.fanOut(ctx, name)
}

// SetFieldValue merges a value into the value store without validating or
// fanning out. Integrations use it to stage a normalized value (see
// pkg/sanitizer) before validation makes sense for it.
func (e *Engine) SetFieldValue(name string, value any) {
	e.values.SetValue(name, value)
}

// ValidateAll validates every configured field, in declared order, against
// the stored values, and reports whether the whole form is clean. It is the
// sole source of truth for whether the form may be submitted.
func (e *Engine) ValidateAll(ctx context.Context) bool {
	valid := true
	for _, f := range e.fields {
		if !e.validateField(ctx, f.Name, nil, false) {
			valid = false
		}
	}
	return valid
}

// Submit suppresses the event's default action, then runs ValidateAll and
// returns its result. The caller decides what a true result triggers (e.g.
// the actual network submission).
func (e *Engine) Submit(ctx context.Context, ev SubmitEvent) bool {
	if ev.PreventDefault != nil {
		ev.PreventDefault()
	}
	return e.ValidateAll(ctx)
}

// resolveField extracts the field name from the event target. A target
// without a usable name is a usage fault: logged, and the triggering
// operation becomes a no-op.
func (e *Engine) resolveField(ctx context.Context, t Target) (string, bool) {
	name, ok := t.fieldName()
	if !ok {
		e.log.ErrorContext(ctx, "You must specify a name for this form field.")
		return "", false
	}
	return name, true
}

// fanOut re-validates the fields the triggering field's configuration points
// at. Nested auxiliary fields validate only their designated target; related
// fields are re-validated only while they already display an error, so
// untouched siblings never surface new errors from someone else's edit.
func (e *Engine) fanOut(ctx context.Context, name string) {
	cfg, ok := e.fields.Lookup(name)
	if !ok {
		return
	}

	if e.env != environment.Production && cfg.NestedFieldOf != "" && len(cfg.RelatedFields) > 0 {
		panic(&ConfigError{
			Field:  name,
			Reason: "NestedFieldOf and RelatedFields are mutually exclusive",
		})
	}

	if cfg.NestedFieldOf != "" {
		e.validateField(ctx, cfg.NestedFieldOf, nil, false)
		return
	}

	if len(cfg.RelatedFields) == 0 {
		return
	}
	current := e.errors.Errors()
	for _, related := range cfg.RelatedFields {
		if current[related] != "" {
			e.validateField(ctx, related, nil, false)
		}
	}
}
