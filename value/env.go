package value

// Environment is an ordered name-to-value mapping with an optional parent.
// Lookup walks the parent chain; each environment owns copies of the
// values it stores, deep-copying on both insert and lookup so callers may
// freely consume whatever they get back.
//
// Insertion order is recorded alongside the name->value map so lookups
// that enumerate local bindings (Names, AllNames) are deterministic.
type Environment struct {
	parent *Environment
	names  []string
	vars   map[string]Value
}

// NewEnvironment creates a fresh environment with the given parent (nil
// for a root environment).
func NewEnvironment(parent *Environment) *Environment {
	return &Environment{parent: parent, vars: make(map[string]Value)}
}

// Parent returns the environment's parent, or nil if it is a root.
func (e *Environment) Parent() *Environment { return e.parent }

// SetParent rebinds the environment's parent. Used by function
// application to extend a copy of a lambda's captured environment with
// the calling environment just before its body is evaluated.
func (e *Environment) SetParent(parent *Environment) { e.parent = parent }

// Get performs env_get: a deep copy of the bound value,
// walking the parent chain, or an Err("unbound symbol '<sym>'") if sym is
// bound nowhere in the chain.
func (e *Environment) Get(sym Sym) Value {
	for env := e; env != nil; env = env.parent {
		if v, ok := env.vars[string(sym)]; ok {
			return Copy(v)
		}
	}
	return MakeErr("unbound symbol '%s'", string(sym))
}

// Put performs env_put: insert-or-replace in this environment
// itself.
func (e *Environment) Put(sym Sym, v Value) {
	name := string(sym)
	if _, exists := e.vars[name]; !exists {
		e.names = append(e.names, name)
	}
	e.vars[name] = Copy(v)
}

// Def performs env_def: walk to the root of the parent chain
// and Put there.
func (e *Environment) Def(sym Sym, v Value) {
	root := e
	for root.parent != nil {
		root = root.parent
	}
	root.Put(sym, v)
}

// Unbind removes sym's binding from this environment only.
func (e *Environment) Unbind(sym Sym) {
	name := string(sym)
	if _, exists := e.vars[name]; !exists {
		return
	}
	delete(e.vars, name)
	for i, n := range e.names {
		if n == name {
			e.names = append(e.names[:i], e.names[i+1:]...)
			break
		}
	}
}

// Copy performs env_copy: a deep copy of all bindings,
// preserving the parent pointer as-is (an alias, not itself copied).
func (e *Environment) Copy() *Environment {
	out := &Environment{
		parent: e.parent,
		names:  append([]string(nil), e.names...),
		vars:   make(map[string]Value, len(e.vars)),
	}
	for name, v := range e.vars {
		out.vars[name] = Copy(v)
	}
	return out
}

// shallowCopy is Copy with a self-contained name, used internally when
// Lambda.copyValue deep-copies a captured environment.
func (e *Environment) shallowCopy() *Environment { return e.Copy() }

// Names returns the locally bound symbol names in insertion order
// (parent bindings are not included; see AllNames for the full chain).
func (e *Environment) Names() []string {
	return append([]string(nil), e.names...)
}

// AllNames returns the bound symbol names across this environment and its
// parent chain, innermost first, without duplicates.
func (e *Environment) AllNames() []string {
	seen := make(map[string]bool)
	var out []string
	for env := e; env != nil; env = env.parent {
		for _, n := range env.names {
			if !seen[n] {
				seen[n] = true
				out = append(out, n)
			}
		}
	}
	return out
}
