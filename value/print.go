package value

import "io"

// Print writes v's textual rendering to w, dispatching to the value's own
// Print method. Provided at package level for call sites that hold a
// Value rather than a concrete type.
func Print(w io.Writer, v Value) (int, error) { return v.Print(w) }

// TypeName returns v's human-readable tag name used in diagnostics:
// Number, Error, Symbol, S-Expression, Q-Expression, Function.
func TypeName(v Value) string { return v.TypeName() }
