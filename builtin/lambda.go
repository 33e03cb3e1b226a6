package builtin

import "meowlisp/value"

// Lambda implements `\`: exactly two Q-expression
// arguments, formals and body. Every element of formals must be a Sym.
func Lambda(_ *value.Environment, args *value.SExpr) value.Value {
	if err := checkArity("\\", args, 2, 2); err != nil {
		return err
	}
	formals, err := qexprArg("\\", args, 0)
	if err != nil {
		return err
	}
	body, err := qexprArg("\\", args, 1)
	if err != nil {
		return err
	}

	for _, v := range formals.Elems() {
		if _, ok := value.GetSym(v); !ok {
			return wantType("\\", v, "Symbol")
		}
	}

	return value.MakeLambda(
		value.Copy(formals).(*value.QExpr),
		value.Copy(body).(*value.QExpr),
	)
}
