package value

import (
	"fmt"
	"io"
)

// BuiltinFn is the opaque function handle carried by a built-in Fun value.
// It receives the calling environment and an already-evaluated argument
// bundle (an *SExpr) and returns a fresh, owned result.
type BuiltinFn func(env *Environment, args *SExpr) Value

// Builtin is a named, opaque built-in function handle.
type Builtin struct {
	Name string
	Fn   BuiltinFn
}

// MakeBuiltin creates a fresh builtin function value.
func MakeBuiltin(name string, fn BuiltinFn) *Builtin { return &Builtin{Name: name, Fn: fn} }

func (*Builtin) TypeName() string { return "Function" }

func (b *Builtin) String() string { return "<function>" }

func (b *Builtin) Print(w io.Writer) (int, error) { return io.WriteString(w, b.String()) }

// copyValue copies the opaque handle itself: built-ins carry
// no mutable state, so the "copy" is the same function paired with the
// same name.
func (b *Builtin) copyValue() Value { return b }

func (b *Builtin) equal(other Value) bool {
	ob, ok := other.(*Builtin)
	return ok && b == ob
}

// Lambda is a user-defined function: its formals, body and captured
// environment. The captured environment starts empty with no parent.
// Application always works against a clone of this environment, never
// this one in place: the call that completes the formals sets the clone's
// parent to the calling environment, so a stored, reused lambda never
// observes a previous call's bindings or parent link.
type Lambda struct {
	formals *QExpr
	body    *QExpr
	env     *Environment
}

// MakeLambda creates a fresh lambda value. formals must be a Q-expression
// of symbols (with at most one "&" followed by exactly one more symbol).
// The constructor checks none of this: builtin.Lambda checks that every
// formal is a symbol, and the placement of "&" is checked only when the
// lambda is applied.
func MakeLambda(formals, body *QExpr) *Lambda {
	return &Lambda{
		formals: formals,
		body:    body,
		env:     NewEnvironment(nil),
	}
}

// NewLambdaFrom rebuilds a lambda value from its three constituent parts
// directly, without the no-parent/empty-env defaulting MakeLambda applies.
// Used by apply when it returns a partially-applied (curried) lambda that
// must carry its own already-extended environment.
func NewLambdaFrom(formals, body *QExpr, env *Environment) *Lambda {
	return &Lambda{formals: formals, body: body, env: env}
}

// Formals returns the lambda's formal parameter list.
func (l *Lambda) Formals() *QExpr { return l.formals }

// Body returns the lambda's body.
func (l *Lambda) Body() *QExpr { return l.body }

// Env returns the lambda's captured environment.
func (l *Lambda) Env() *Environment { return l.env }

func (*Lambda) TypeName() string { return "Function" }

func (l *Lambda) String() string {
	return fmt.Sprintf("(\\ %s %s)", l.formals.String(), l.body.String())
}

func (l *Lambda) Print(w io.Writer) (int, error) { return io.WriteString(w, l.String()) }

func (l *Lambda) copyValue() Value {
	return &Lambda{
		formals: Copy(l.formals).(*QExpr),
		body:    Copy(l.body).(*QExpr),
		env:     l.env.shallowCopy(),
	}
}

func (l *Lambda) equal(other Value) bool {
	ol, ok := other.(*Lambda)
	return ok && l == ol
}

// GetBuiltin returns v as a *Builtin, if possible.
func GetBuiltin(v Value) (*Builtin, bool) {
	b, ok := v.(*Builtin)
	return b, ok
}

// GetLambda returns v as a *Lambda, if possible.
func GetLambda(v Value) (*Lambda, bool) {
	l, ok := v.(*Lambda)
	return l, ok
}

// IsFun reports whether v is a callable function value (builtin or lambda).
func IsFun(v Value) bool {
	switch v.(type) {
	case *Builtin, *Lambda:
		return true
	default:
		return false
	}
}
