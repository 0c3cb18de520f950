package formkit

import (
	"context"

	"github.com/dmitrymomot/formkit/pkg/logger"
)

// genericInvalidMessage is recorded when a faulty validator has no configured
// message of its own.
const genericInvalidMessage = "This field is invalid."

// validateField runs the validation sequence configured for name and writes
// the outcome into the error store under the resolved field name. When
// hasOverride is true the candidate value is override (change events validate
// the incoming value before the caller's state update necessarily landed);
// otherwise the stored value is used. Returns whether the field ended up
// valid.
//
// The sequence runs in declared order and never short-circuits: the last
// failing validation's message wins. A validator returning an error is a
// fault, not a failure: it is logged, the validation's configured message
// (or the generic fallback) is retained, and the remaining validations still
// run.
func (e *Engine) validateField(ctx context.Context, name string, override any, hasOverride bool) bool {
	cfg, ok := e.fields.Lookup(name)
	if ok && cfg.NestedFieldOf != "" {
		name = cfg.NestedFieldOf
		cfg, ok = e.fields.Lookup(name)
	}

	message := ""
	if ok && len(cfg.Validations) > 0 {
		value := override
		if !hasOverride {
			value = e.values.Values()[name]
		}

		for _, v := range cfg.Validations {
			if v.Check == nil {
				continue
			}
			passed, err := v.Check(ctx, value)
			if err != nil {
				e.log.ErrorContext(ctx, "validator failed", logger.Field(name), logger.Error(err))
				if v.Message != "" {
					message = v.Message
				} else {
					message = genericInvalidMessage
				}
				continue
			}
			if !passed {
				message = v.Message
			}
		}
	}

	e.errors.SetError(name, message)
	return message == ""
}
