// Package builtin implements the primitive functions the evaluator
// exposes as Fun values: list surgery, arithmetic, variable
// binding and lambda construction, plus their startup registration.
package builtin

import "meowlisp/value"

// checkArity validates args' length against [min, max] (max < 0 means
// unbounded), keyed by the built-in's own name for the error message.
func checkArity(name string, args *value.SExpr, min, max int) *value.Err {
	n := args.Length()
	switch {
	case min == max && n != min:
		return value.MakeErr("Function '%s' passed invalid number of arguments. Got %d, Expected %d.", name, n, min)
	case max < 0 && n < min:
		return value.MakeErr("Function '%s' passed invalid number of arguments. Got %d, Expected at least %d.", name, n, min)
	case max >= 0 && (n < min || n > max):
		return value.MakeErr("Function '%s' passed invalid number of arguments. Got %d, Expected between %d and %d.", name, n, min, max)
	}
	return nil
}

// wantType builds a built-in's type-mismatch diagnostic for an argument
// that turned out not to be the expected type.
func wantType(name string, got value.Value, expected string) *value.Err {
	return value.MakeErr("Function '%s' passed incorrect types! Got %s, Expected %s.", name, value.TypeName(got), expected)
}

// qexprArg returns args' element at index pos as a *value.QExpr, or a
// type-mismatch Err.
func qexprArg(name string, args *value.SExpr, pos int) (*value.QExpr, *value.Err) {
	v := args.Elems()[pos]
	q, ok := value.GetQExpr(v)
	if !ok {
		return nil, wantType(name, v, "Q-Expression")
	}
	return q, nil
}
