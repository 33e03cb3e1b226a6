// Package eval reduces S-expressions to values, the evaluator core of
// meowlisp. It is a pure tree-walking evaluator: no compilation pass, no
// tail-call optimization, no logging.
package eval

import "meowlisp/value"

// Eval reduces v in environment env to a fresh, owned result.
//
//  1. A Sym looks itself up in env.
//  2. An SExpr is reduced (see evalSExpr).
//  3. Everything else (Num, Err, QExpr, Fun) evaluates to itself.
func Eval(env *value.Environment, v value.Value) value.Value {
	switch x := v.(type) {
	case value.Sym:
		return env.Get(x)
	case *value.SExpr:
		return evalSExpr(env, x)
	default:
		return v
	}
}

// evalSExpr reduces an S-expression: evaluate every child, propagate the
// first Err found, collapse to identity at arity 0 or 1, and otherwise
// apply the evaluated head to the evaluated rest.
func evalSExpr(env *value.Environment, s *value.SExpr) value.Value {
	elems := s.Elems()
	evaluated := make([]value.Value, len(elems))
	for i, child := range elems {
		evaluated[i] = Eval(env, child)
	}

	for _, v := range evaluated {
		if value.IsErr(v) {
			return v
		}
	}

	switch len(evaluated) {
	case 0:
		return value.MakeSExpr()
	case 1:
		return evaluated[0]
	}

	head, rest := evaluated[0], evaluated[1:]
	if !value.IsFun(head) {
		return value.MakeErr(
			"first element is not a function! Got %s, Expected Function",
			value.TypeName(head),
		)
	}
	return Apply(env, head, value.MakeSExpr(rest...))
}
