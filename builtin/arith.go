package builtin

import "meowlisp/value"

// numArgs checks every argument is a Number and returns them as int64s.
func numArgs(name string, args *value.SExpr) ([]int64, *value.Err) {
	elems := args.Elems()
	out := make([]int64, len(elems))
	for i, v := range elems {
		n, ok := value.GetNum(v)
		if !ok {
			return nil, wantType(name, v, "Number")
		}
		out[i] = int64(n)
	}
	return out, nil
}

// fold applies op left to right over a non-empty slice of operands,
// starting from the first one.
func fold(ns []int64, op func(acc, n int64) int64) int64 {
	acc := ns[0]
	for _, n := range ns[1:] {
		acc = op(acc, n)
	}
	return acc
}

// Add implements `+`: sum of one or more Numbers.
func Add(_ *value.Environment, args *value.SExpr) value.Value {
	if err := checkArity("+", args, 1, -1); err != nil {
		return err
	}
	ns, err := numArgs("+", args)
	if err != nil {
		return err
	}
	return value.MakeNum(fold(ns, func(a, b int64) int64 { return a + b }))
}

// Sub implements `-`: with one argument, its negation; with more, the
// running left-to-right difference.
func Sub(_ *value.Environment, args *value.SExpr) value.Value {
	if err := checkArity("-", args, 1, -1); err != nil {
		return err
	}
	ns, err := numArgs("-", args)
	if err != nil {
		return err
	}
	if len(ns) == 1 {
		return value.MakeNum(-ns[0])
	}
	return value.MakeNum(fold(ns, func(a, b int64) int64 { return a - b }))
}

// Mul implements `*`: product of one or more Numbers.
func Mul(_ *value.Environment, args *value.SExpr) value.Value {
	if err := checkArity("*", args, 1, -1); err != nil {
		return err
	}
	ns, err := numArgs("*", args)
	if err != nil {
		return err
	}
	return value.MakeNum(fold(ns, func(a, b int64) int64 { return a * b }))
}

// Div implements `/`: left-to-right integer division, truncating toward
// zero. Division by zero produces an Err rather than panicking.
func Div(_ *value.Environment, args *value.SExpr) value.Value {
	if err := checkArity("/", args, 1, -1); err != nil {
		return err
	}
	ns, err := numArgs("/", args)
	if err != nil {
		return err
	}
	acc := ns[0]
	for _, n := range ns[1:] {
		if n == 0 {
			return value.MakeErr("Division by Zero!")
		}
		acc /= n
	}
	return value.MakeNum(acc)
}

// Mod implements `%`: left-to-right remainder, whose sign matches the
// dividend (Go's native % semantics). Modulo by zero produces an Err.
func Mod(_ *value.Environment, args *value.SExpr) value.Value {
	if err := checkArity("%", args, 1, -1); err != nil {
		return err
	}
	ns, err := numArgs("%", args)
	if err != nil {
		return err
	}
	acc := ns[0]
	for _, n := range ns[1:] {
		if n == 0 {
			return value.MakeErr("Division (mod) by Zero!")
		}
		acc %= n
	}
	return value.MakeNum(acc)
}
