// Package formkit implements an event-driven validation engine for form
// state: given a declarative per-field configuration, it decides which fields
// to (re)validate in response to change, blur, and submit events and
// reconciles the outcomes into a flat error map owned by the caller.
//
// FormKit renders nothing and stores nothing. The caller owns both the value
// map and the error map and hands them to the engine behind the ValueStore
// and ErrorStore contracts; every operation reads the latest snapshot and
// writes results back through the store. This keeps the engine stateless and
// lets it sit behind any state container (a struct, a signal, a UI store).
//
// # Architecture
//
//   - Config / Field       – ordered, immutable per-field validation setup
//   - Validator            – unary predicate contract, sync or blocking-async
//   - Engine               – change/blur/submit orchestration and fan-out
//   - ValueStore, ErrorStore – caller-owned state reached through interfaces
//
// Validator catalogs live in separate packages: pkg/validator ships the
// built-in predicate families, and pkg/partial binds multi-argument
// predicates (including live cross-field references) down to the unary
// contract.
//
// # Usage
//
//	values := formkit.Values{}
//	errs := formkit.Errors{}
//
//	engine := formkit.New(formkit.Config{
//		{
//			Name: "email",
//			Validations: []formkit.Validation{
//				{Check: validator.Required(), Message: "Email is required."},
//				{Check: validator.Email(), Message: "Enter a valid email."},
//			},
//		},
//	}, values, errs)
//
//	engine.Change(ctx, formkit.ChangeEvent{
//		Target:   formkit.Target{Name: "email"},
//		Value:    "alice@example.com",
//		HasValue: true,
//	})
//
//	if engine.Submit(ctx, formkit.SubmitEvent{}) {
//		// every configured field validated clean
//	}
//
// # Validation Semantics
//
// Validations configured for a field run sequentially in declared order and
// never short-circuit: the last failing validation's message is the one
// recorded. A field whose configuration declares NestedFieldOf redirects its
// validation to the named target and never receives an error of its own.
// Related fields are re-validated after the triggering field, but only while
// they already display an error, so untouched siblings stay quiet.
//
// Asynchronous validators are ordinary Validator funcs that block; the engine
// awaits each one before moving on. Concurrent triggers racing on the same
// field resolve last-write-wins on the error store.
package formkit
