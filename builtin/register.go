package builtin

import "meowlisp/value"

// Register installs every built-in into env under its canonical symbol,
// returning env for convenience.
func Register(env *value.Environment) *value.Environment {
	builtins := map[string]value.BuiltinFn{
		"list": List,
		"head": Head,
		"tail": Tail,
		"join": Join,
		"eval": Eval,

		"+": Add,
		"-": Sub,
		"*": Mul,
		"/": Div,
		"%": Mod,

		"def": Def,
		"=":   Assign,
		"\\":  Lambda,
	}

	for name, fn := range builtins {
		env.Put(value.Sym(name), value.MakeBuiltin(name, fn))
	}
	return env
}

// NewRootEnvironment returns a fresh global environment with every
// built-in already registered.
func NewRootEnvironment() *value.Environment {
	return Register(value.NewEnvironment(nil))
}
