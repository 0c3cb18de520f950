package validator

import (
	"context"
	"fmt"
)

// Cross-field predicates are n-ary by nature: they compare the triggering
// field's value against one or more sibling values. They are shaped for
// partial.Bind / partial.BindValues, which fix the sibling arguments (often
// as live field references) and hand the engine a unary validator.

// Equal passes when the first two arguments coerce to the same string. An
// absent first argument is valid. Fewer than two arguments is a predicate
// fault.
func Equal(_ context.Context, args ...any) (bool, error) {
	if err := needArgs("Equal", 2, args); err != nil {
		return false, err
	}
	if absent(args[0]) {
		return true, nil
	}
	return stringOf(args[0]) == stringOf(args[1]), nil
}

// NotEqual passes when the first two arguments coerce to different strings.
// An absent first argument is valid.
func NotEqual(_ context.Context, args ...any) (bool, error) {
	if err := needArgs("NotEqual", 2, args); err != nil {
		return false, err
	}
	if absent(args[0]) {
		return true, nil
	}
	return stringOf(args[0]) != stringOf(args[1]), nil
}

// DateOrdered passes when the first argument reads as a date not after the
// second (earlier, later). Either argument being absent is valid; an argument
// with no date reading fails.
func DateOrdered(_ context.Context, args ...any) (bool, error) {
	if err := needArgs("DateOrdered", 2, args); err != nil {
		return false, err
	}
	if absent(args[0]) || absent(args[1]) {
		return true, nil
	}
	earlier, ok := timeOf(args[0])
	if !ok {
		return false, nil
	}
	later, ok := timeOf(args[1])
	if !ok {
		return false, nil
	}
	return !earlier.After(later), nil
}

func needArgs(name string, want int, args []any) error {
	if len(args) < want {
		return fmt.Errorf("validator: %s needs %d arguments, got %d", name, want, len(args))
	}
	return nil
}
