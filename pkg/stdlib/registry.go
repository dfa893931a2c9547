// Package stdlib implements the native functions seeded into the global
// scope of every Lox interpreter instance.
package stdlib

import (
	"fmt"
	"sort"

	"github.com/lemonberrylabs/golox/pkg/types"
)

// NativeFn is a native function implementation. Arguments arrive already
// evaluated and arity-checked.
type NativeFn func(args []types.Value) (types.Value, error)

// Native is a built-in callable. It satisfies types.Callable.
type Native struct {
	name  string
	arity int
	fn    NativeFn
}

// Arity implements types.Callable.
func (n *Native) Arity() int {
	return n.arity
}

// Call implements types.Callable.
func (n *Native) Call(args []types.Value) (types.Value, error) {
	return n.fn(args)
}

// String implements types.Callable.
func (n *Native) String() string {
	return fmt.Sprintf("<native fn %s>", n.name)
}

// Registry holds all native functions.
type Registry struct {
	funcs map[string]*Native
}

// NewRegistry creates a registry with all built-in functions registered.
func NewRegistry() *Registry {
	r := &Registry{funcs: make(map[string]*Native)}
	r.registerTime()
	r.registerText()
	return r
}

// Register adds a native function to the registry.
func (r *Registry) Register(name string, arity int, fn NativeFn) {
	r.funcs[name] = &Native{name: name, arity: arity, fn: fn}
}

// Get returns the named native, if registered.
func (r *Registry) Get(name string) (*Native, bool) {
	fn, ok := r.funcs[name]
	return fn, ok
}

// Names returns all registered names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.funcs))
	for name := range r.funcs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// typeError builds a native-call type error; the interpreter fills in the
// call site line.
func typeError(format string, args ...interface{}) error {
	return types.NewTypeError(0, fmt.Sprintf(format, args...))
}
