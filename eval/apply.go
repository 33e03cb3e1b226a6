package eval

import "meowlisp/value"

// Apply calls f with args: f must already be known to be callable
// (evalSExpr checks this before calling Apply). args holds
// already-evaluated argument values.
func Apply(env *value.Environment, f value.Value, args *value.SExpr) value.Value {
	switch fn := f.(type) {
	case *value.Builtin:
		return fn.Fn(env, args)
	case *value.Lambda:
		return applyLambda(env, fn, args)
	default:
		return value.MakeErr(
			"first element is not a function! Got %s, Expected Function",
			value.TypeName(f),
		)
	}
}

// applyLambda binds args against lam's formals left to right, producing
// either the body's evaluation (once every formal is bound), a curried
// lambda (partial binding), or an Err (arity mismatch / malformed "&").
//
// applyLambda never mutates lam itself: it works against a fresh clone
// of lam's formals, body and captured environment, so a lambda value
// stored in an environment and applied repeatedly never observes a
// prior call's bindings or parent link.
func applyLambda(callerEnv *value.Environment, lam *value.Lambda, args *value.SExpr) value.Value {
	formals := append([]value.Value(nil), lam.Formals().Elems()...)
	argVals := append([]value.Value(nil), args.Elems()...)
	workEnv := lam.Env().Copy()

	given := len(argVals)
	total := len(formals)

	for len(argVals) > 0 {
		if len(formals) == 0 {
			return value.MakeErr("Function passed too many arguments. Got %d, Expected %d.", given, total)
		}
		sym, ok := value.GetSym(formals[0])
		if !ok {
			return value.MakeErr("Function format invalid. Formal %v is not a symbol.", formals[0])
		}
		formals = formals[1:]

		if sym == value.SymAmp {
			if len(formals) != 1 {
				return value.MakeErr("Function format invalid. Symbol '&' not followed by single symbol.")
			}
			restSym, ok := value.GetSym(formals[0])
			if !ok {
				return value.MakeErr("Function format invalid. Symbol '&' not followed by single symbol.")
			}
			workEnv.Put(restSym, value.MakeQExpr(argVals...))
			formals = nil
			argVals = nil
			break
		}

		workEnv.Put(sym, value.Copy(argVals[0]))
		argVals = argVals[1:]
	}

	if len(formals) == 1 {
		if sym, ok := value.GetSym(formals[0]); ok && sym == value.SymAmp {
			return value.MakeErr("Function format invalid. Symbol '&' not followed by single symbol.")
		}
	}
	if len(formals) == 2 {
		if sym, ok := value.GetSym(formals[0]); ok && sym == value.SymAmp {
			restSym, _ := value.GetSym(formals[1])
			workEnv.Put(restSym, value.MakeQExpr())
			formals = nil
		}
	}

	if len(formals) == 0 {
		workEnv.SetParent(callerEnv)
		body := value.Copy(lam.Body()).(*value.QExpr)
		return Eval(workEnv, body.AsSExpr())
	}

	// Under-application: return a new, independently callable lambda with
	// the formals bound so far retained (currying).
	partial := value.NewLambdaFrom(value.MakeQExpr(formals...), value.Copy(lam.Body()).(*value.QExpr), workEnv)
	return value.Copy(partial)
}
