package builtin

import (
	"meowlisp/eval"
	"meowlisp/value"
)

// List implements `list`: retype args from an S-expression to
// a Q-expression and return it, whatever its arity.
func List(_ *value.Environment, args *value.SExpr) value.Value {
	return args.AsQExpr()
}

// Head implements `head`: the Q-expression containing only the first
// element of a single, non-empty Q-expression argument.
func Head(_ *value.Environment, args *value.SExpr) value.Value {
	if err := checkArity("head", args, 1, 1); err != nil {
		return err
	}
	q, err := qexprArg("head", args, 0)
	if err != nil {
		return err
	}
	if q.Length() == 0 {
		return value.MakeErr("Function 'head' passed {}!")
	}
	return value.MakeQExpr(value.Copy(q.Elems()[0]))
}

// Tail implements `tail`: the Q-expression with its first element removed.
func Tail(_ *value.Environment, args *value.SExpr) value.Value {
	if err := checkArity("tail", args, 1, 1); err != nil {
		return err
	}
	q, err := qexprArg("tail", args, 0)
	if err != nil {
		return err
	}
	if q.Length() == 0 {
		return value.MakeErr("Function 'tail' passed {}!")
	}
	rest := q.Elems()[1:]
	out := value.MakeQExpr()
	for _, e := range rest {
		out.Push(value.Copy(e))
	}
	return out
}

// Join implements `join`: the concatenation, in order, of one or more
// Q-expression arguments.
func Join(_ *value.Environment, args *value.SExpr) value.Value {
	if err := checkArity("join", args, 1, -1); err != nil {
		return err
	}
	out := value.MakeQExpr()
	for i, v := range args.Elems() {
		q, ok := value.GetQExpr(v)
		if !ok {
			return wantType("join", args.Elems()[i], "Q-Expression")
		}
		for _, e := range q.Elems() {
			out.Push(value.Copy(e))
		}
	}
	return out
}

// Eval implements `eval`: retype the sole Q-expression argument to an
// S-expression and evaluate it in env.
func Eval(env *value.Environment, args *value.SExpr) value.Value {
	if err := checkArity("eval", args, 1, 1); err != nil {
		return err
	}
	q, err := qexprArg("eval", args, 0)
	if err != nil {
		return err
	}
	return eval.Eval(env, q.AsSExpr())
}
