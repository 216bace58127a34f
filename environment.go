// environment.go — chained name→Value scopes (spec.md §3 "Environments").
//
// Grounded on the teacher's Env{parent, table} shape, but Assign follows
// spec.md's deliberately lenient rule instead of the teacher's stricter
// one: walking up and failing to find a name falls through to defining
// it in the *current* scope rather than raising an error, since EZ has
// no separate `let` keyword.
package ez

// Environment is one lexical scope frame.
type Environment struct {
	parent *Environment
	vars   map[string]Value
}

// NewEnvironment creates a scope that is a child of parent (nil for the
// global scope).
func NewEnvironment(parent *Environment) *Environment {
	return &Environment{parent: parent, vars: make(map[string]Value)}
}

// Define binds name to v in this scope, shadowing any outer binding.
func (e *Environment) Define(name string, v Value) {
	e.vars[name] = v
}

// Get walks the parent chain looking for name. ok is false at the
// outermost miss (callers raise UndefinedVariable).
func (e *Environment) Get(name string) (Value, bool) {
	for env := e; env != nil; env = env.parent {
		if v, ok := env.vars[name]; ok {
			return v, true
		}
	}
	return Value{}, false
}

// Assign mutates the nearest scope in which name is already bound. If
// name is not found anywhere in the chain, it is defined in the current
// scope instead of failing — spec.md §3: "this is a deliberate leniency
// of the surface language".
func (e *Environment) Assign(name string, v Value) {
	for env := e; env != nil; env = env.parent {
		if _, ok := env.vars[name]; ok {
			env.vars[name] = v
			return
		}
	}
	e.vars[name] = v
}

// Has reports whether name is bound anywhere in the chain, without
// retrieving the value.
func (e *Environment) Has(name string) bool {
	_, ok := e.Get(name)
	return ok
}
