package builtin

import "meowlisp/value"

// bind implements the shared shape of `def` and `=`: the first
// argument is a Q-expression of symbols, the rest are the values bound to
// them pairwise, in order. put is env.Def for `def` (global) and env.Put
// for `=` (local to env).
func bind(name string, env *value.Environment, args *value.SExpr, put func(value.Sym, value.Value)) value.Value {
	if err := checkArity(name, args, 2, -1); err != nil {
		return err
	}
	syms, err := qexprArg(name, args, 0)
	if err != nil {
		return err
	}

	names := make([]value.Sym, syms.Length())
	for i, v := range syms.Elems() {
		s, ok := value.GetSym(v)
		if !ok {
			return wantType(name, v, "Symbol")
		}
		names[i] = s
	}

	values := args.Elems()[1:]
	if len(names) != len(values) {
		return value.MakeErr("Function '%s' cannot define number of values to symbols", name)
	}

	for i, s := range names {
		put(s, values[i])
	}
	return value.MakeSExpr()
}

// Def implements `def`: binds symbols to values in the global environment.
func Def(env *value.Environment, args *value.SExpr) value.Value {
	return bind("def", env, args, env.Def)
}

// Assign implements `=`: binds symbols to values local to env.
func Assign(env *value.Environment, args *value.SExpr) value.Value {
	return bind("=", env, args, env.Put)
}
