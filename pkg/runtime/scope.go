// Package runtime implements the Lox tree-walking evaluator: the lexical
// scope chain and the interpreter that executes a parsed program.
package runtime

import "github.com/lemonberrylabs/golox/pkg/types"

// Scope manages variable storage with parent scope chaining. Lookups start
// in the current scope and walk up the parent chain. Declarations always
// bind in the current scope, which is what permits shadowing; assignments
// update the nearest enclosing scope that declares the name. Closures hold
// references to the scope active at their definition, so a scope lives as
// long as any closure or active call frame can still reach it.
//
// Evaluation is single-threaded, so scopes need no locking.
type Scope struct {
	parent *Scope
	vars   map[string]types.Value
}

// NewScope creates a new root scope.
func NewScope() *Scope {
	return &Scope{vars: make(map[string]types.Value)}
}

// NewChildScope creates a child scope enclosed by this scope.
func (s *Scope) NewChildScope() *Scope {
	return &Scope{parent: s, vars: make(map[string]types.Value)}
}

// Define binds a name in this scope, shadowing any outer binding of the
// same name. Redefining an existing local is allowed.
func (s *Scope) Define(name string, value types.Value) {
	s.vars[name] = value
}

// Get retrieves a variable value, searching up the scope chain. The second
// result reports whether any enclosing scope declares the name.
func (s *Scope) Get(name string) (types.Value, bool) {
	for scope := s; scope != nil; scope = scope.parent {
		if v, ok := scope.vars[name]; ok {
			return v, true
		}
	}
	return types.Null, false
}

// Assign updates the nearest enclosing scope that declares the name. It
// reports false if no scope declares it; assignment never creates bindings.
func (s *Scope) Assign(name string, value types.Value) bool {
	for scope := s; scope != nil; scope = scope.parent {
		if _, ok := scope.vars[name]; ok {
			scope.vars[name] = value
			return true
		}
	}
	return false
}
