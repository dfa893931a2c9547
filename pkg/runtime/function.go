package runtime

import (
	"fmt"

	"github.com/lemonberrylabs/golox/pkg/ast"
	"github.com/lemonberrylabs/golox/pkg/types"
)

// Function is a user-defined Lox function: its declaration paired with the
// scope that was active at its definition. Each call executes the body in a
// fresh child of that captured scope, never the caller's scope, which is
// what gives closures correct lexical scoping.
type Function struct {
	declaration *ast.FunctionStmt
	closure     *Scope
	interp      *Interpreter
}

// Arity implements types.Callable.
func (f *Function) Arity() int {
	return len(f.declaration.Params)
}

// Call implements types.Callable. The argument count has already been
// checked against Arity by the interpreter.
func (f *Function) Call(args []types.Value) (types.Value, error) {
	scope := f.closure.NewChildScope()
	for i, param := range f.declaration.Params {
		scope.Define(param.Lexeme, args[i])
	}

	result, err := f.interp.executeBlock(f.declaration.Body, scope)
	if err != nil {
		return types.Null, err
	}
	if result.flow == flowReturn {
		return result.value, nil
	}
	// Reaching the end of the body without a return yields nil.
	return types.Null, nil
}

// String implements types.Callable.
func (f *Function) String() string {
	return fmt.Sprintf("<fn %s>", f.declaration.Name.Lexeme)
}
