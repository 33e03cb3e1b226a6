// Package value provides the tagged value model the evaluator works on:
// numbers, errors, symbols, S-expressions, Q-expressions and functions,
// plus the environment that binds symbols to values.
package value

import "io"

// Value is the generic value every meowlisp datum must fulfill.
type Value interface {
	// TypeName returns the human-readable tag name used in diagnostics,
	// e.g. "Number", "Q-Expression", "Function".
	TypeName() string

	// Print writes the textual rendering of the value to w.
	Print(w io.Writer) (int, error)

	// String returns the textual rendering as a Go string.
	String() string
}

// Values that own mutable parts implement copier so they can be
// deep-copied; not every Value needs to (a Num or a Sym, say, is an
// immutable Go value that Copy returns as is).
type copier interface {
	copyValue() Value
}

// Copy returns a deep, independently owned copy of v. For a built-in
// function the "copy" is the same opaque handle (it is immutable); for a
// lambda, formals, body and captured environment are all duplicated (the
// environment's parent link is preserved as the same back-reference, not
// itself copied — see Environment.Copy).
func Copy(v Value) Value {
	if v == nil {
		return nil
	}
	if c, ok := v.(copier); ok {
		return c.copyValue()
	}
	return v
}

// IsEqual reports whether two values are structurally equal. Function
// values compare by identity: a built-in or a lambda equals only the very
// same value, so a copied lambda is not equal to its original.
func IsEqual(a, b Value) bool {
	ea, oka := a.(interface{ equal(Value) bool })
	if oka {
		return ea.equal(b)
	}
	return a == b
}

// Release drops a value's references early rather than waiting for the
// garbage collector. It has no work to do beyond making unreachability
// immediate for long-lived lambdas that capture large environments, but
// it lets call sites keep a consume-and-release calling convention
// without tracking manual lifetimes themselves.
func Release(v Value) {
	if lam, ok := v.(*Lambda); ok {
		lam.formals = nil
		lam.body = nil
		lam.env = nil
	}
}
