package partial

import "context"

// slotMarker is the placeholder sentinel. It is an unexported type so no
// legitimate argument value can collide with it.
type slotMarker struct{}

// Slot marks a bound-argument position that is filled from the call-time
// arguments, left to right.
var Slot slotMarker

// Predicate is an n-ary validation predicate. Bound forms of a Predicate are
// what the engine ultimately calls through the unary Validator contract.
type Predicate func(ctx context.Context, args ...any) (bool, error)

// Bind returns a Predicate with bound arguments fixed in place. At call time,
// each Slot position is filled left-to-right from the call-time arguments;
// call-time arguments beyond what the slots consume are appended after the
// bound list. Slots left over when call-time arguments run out receive nil.
// Bind is a pure transformation: mismatched arity is the underlying
// predicate's concern.
//
//	ge := func(ctx context.Context, args ...any) (bool, error) {
//		return args[0].(int) >= args[1].(int), nil
//	}
//	atLeastFive := partial.Bind(ge, partial.Slot, 5)
//	atLeastFive(ctx, 7) // ge(7, 5)
func Bind(fn Predicate, bound ...any) Predicate {
	return func(ctx context.Context, args ...any) (bool, error) {
		return fn(ctx, fill(bound, args)...)
	}
}

// fill merges call-time args into the bound argument list: slots are consumed
// left-to-right, surplus call-time args are appended.
func fill(bound []any, args []any) []any {
	merged := make([]any, 0, len(bound)+len(args))
	next := 0
	for _, b := range bound {
		if _, isSlot := b.(slotMarker); isSlot {
			if next < len(args) {
				merged = append(merged, args[next])
				next++
			} else {
				merged = append(merged, nil)
			}
			continue
		}
		merged = append(merged, b)
	}
	return append(merged, args[next:]...)
}

// Validator adapts a bound predicate to the engine's unary validator shape.
func (p Predicate) Validator() func(ctx context.Context, value any) (bool, error) {
	return func(ctx context.Context, value any) (bool, error) {
		return p(ctx, value)
	}
}
