package runtime

import (
	"fmt"
	"io"
	"os"

	"github.com/lemonberrylabs/golox/pkg/ast"
	"github.com/lemonberrylabs/golox/pkg/stdlib"
	"github.com/lemonberrylabs/golox/pkg/token"
	"github.com/lemonberrylabs/golox/pkg/types"
)

// DefaultMaxCallDepth is the default call stack depth limit. Each Lox call
// consumes host stack; the explicit bound turns runaway recursion into a
// reportable RecursionError instead of a host crash.
const DefaultMaxCallDepth = 1024

// flowControl represents control-transfer signals during execution.
type flowControl int

const (
	flowNone   flowControl = iota
	flowReturn             // unwind to the nearest enclosing call
)

// stepResult is the result of executing a single statement.
type stepResult struct {
	flow  flowControl
	value types.Value // carried value for flowReturn
}

// Interpreter walks a parsed program and executes it against a scope chain
// rooted at a global scope seeded with the native functions.
type Interpreter struct {
	globals      *Scope
	out          io.Writer
	maxCallDepth int
	callDepth    int
}

// Option configures an Interpreter.
type Option func(*Interpreter)

// WithOutput directs print statement output to w. Defaults to os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(i *Interpreter) { i.out = w }
}

// WithMaxCallDepth overrides the call stack depth limit.
func WithMaxCallDepth(n int) Option {
	return func(i *Interpreter) {
		if n > 0 {
			i.maxCallDepth = n
		}
	}
}

// New creates an interpreter with a fresh global scope seeded with the
// stdlib natives.
func New(opts ...Option) *Interpreter {
	i := &Interpreter{
		globals:      NewScope(),
		out:          os.Stdout,
		maxCallDepth: DefaultMaxCallDepth,
	}
	for _, opt := range opts {
		opt(i)
	}

	registry := stdlib.NewRegistry()
	for _, name := range registry.Names() {
		fn, _ := registry.Get(name)
		i.globals.Define(name, types.NewCallable(fn))
	}
	return i
}

// Globals returns the global scope. The REPL host keeps the interpreter
// (and with it this scope) alive across lines.
func (i *Interpreter) Globals() *Scope {
	return i.globals
}

// Interpret executes the statements top to bottom in the global scope. It
// returns the first runtime error encountered, if any; execution stops at
// the point of error and earlier side effects stand.
func (i *Interpreter) Interpret(statements []ast.Stmt) *types.RuntimeError {
	for _, stmt := range statements {
		result, err := i.execute(stmt, i.globals)
		if err != nil {
			return asRuntimeError(err)
		}
		if result.flow == flowReturn {
			return &types.RuntimeError{
				Message: "Can't return from top-level code.",
				Line:    topLevelReturnLine(stmt),
			}
		}
	}
	return nil
}

// execute runs one statement for its side effects. The stepResult threads
// return signals up through enclosing statements to the nearest call.
func (i *Interpreter) execute(stmt ast.Stmt, scope *Scope) (stepResult, error) {
	switch s := stmt.(type) {
	case *ast.ExpressionStmt:
		_, err := i.evalExpr(s.Expression, scope)
		return stepResult{}, err

	case *ast.PrintStmt:
		value, err := i.evalExpr(s.Expression, scope)
		if err != nil {
			return stepResult{}, err
		}
		fmt.Fprintln(i.out, value.String())
		return stepResult{}, nil

	case *ast.VarStmt:
		value := types.Null
		if s.Initializer != nil {
			var err error
			value, err = i.evalExpr(s.Initializer, scope)
			if err != nil {
				return stepResult{}, err
			}
		}
		scope.Define(s.Name.Lexeme, value)
		return stepResult{}, nil

	case *ast.BlockStmt:
		return i.executeBlock(s.Statements, scope.NewChildScope())

	case *ast.IfStmt:
		condition, err := i.evalExpr(s.Condition, scope)
		if err != nil {
			return stepResult{}, err
		}
		if condition.Truthy() {
			return i.execute(s.ThenBranch, scope)
		}
		if s.ElseBranch != nil {
			return i.execute(s.ElseBranch, scope)
		}
		return stepResult{}, nil

	case *ast.WhileStmt:
		for {
			condition, err := i.evalExpr(s.Condition, scope)
			if err != nil {
				return stepResult{}, err
			}
			if !condition.Truthy() {
				return stepResult{}, nil
			}
			result, err := i.execute(s.Body, scope)
			if err != nil {
				return stepResult{}, err
			}
			if result.flow != flowNone {
				return result, nil
			}
		}

	case *ast.FunctionStmt:
		fn := &Function{declaration: s, closure: scope, interp: i}
		scope.Define(s.Name.Lexeme, types.NewCallable(fn))
		return stepResult{}, nil

	case *ast.ReturnStmt:
		value := types.Null
		if s.Value != nil {
			var err error
			value, err = i.evalExpr(s.Value, scope)
			if err != nil {
				return stepResult{}, err
			}
		}
		return stepResult{flow: flowReturn, value: value}, nil

	default:
		return stepResult{}, fmt.Errorf("unsupported statement node type: %T", stmt)
	}
}

// executeBlock runs statements within the given scope, stopping early on a
// return signal or error.
func (i *Interpreter) executeBlock(statements []ast.Stmt, scope *Scope) (stepResult, error) {
	for _, stmt := range statements {
		result, err := i.execute(stmt, scope)
		if err != nil {
			return stepResult{}, err
		}
		if result.flow != flowNone {
			return result, nil
		}
	}
	return stepResult{}, nil
}

// evalExpr evaluates an expression to exactly one runtime value. Dispatch
// is over the closed node set; each node kind has exactly one rule.
func (i *Interpreter) evalExpr(expr ast.Expr, scope *Scope) (types.Value, error) {
	switch e := expr.(type) {
	case *ast.LiteralExpr:
		return e.Value, nil

	case *ast.GroupingExpr:
		return i.evalExpr(e.Expression, scope)

	case *ast.UnaryExpr:
		return i.evalUnary(e, scope)

	case *ast.BinaryExpr:
		return i.evalBinary(e, scope)

	case *ast.LogicalExpr:
		return i.evalLogical(e, scope)

	case *ast.VariableExpr:
		value, ok := scope.Get(e.Name.Lexeme)
		if !ok {
			return types.Null, types.NewUndefinedVariableError(e.Name.Line, e.Name.Lexeme)
		}
		return value, nil

	case *ast.AssignExpr:
		value, err := i.evalExpr(e.Value, scope)
		if err != nil {
			return types.Null, err
		}
		if !scope.Assign(e.Name.Lexeme, value) {
			return types.Null, types.NewUndefinedVariableError(e.Name.Line, e.Name.Lexeme)
		}
		return value, nil

	case *ast.CallExpr:
		return i.evalCall(e, scope)

	default:
		return types.Null, fmt.Errorf("unsupported expression node type: %T", expr)
	}
}

func (i *Interpreter) evalUnary(e *ast.UnaryExpr, scope *Scope) (types.Value, error) {
	right, err := i.evalExpr(e.Right, scope)
	if err != nil {
		return types.Null, err
	}

	switch e.Operator.Type {
	case token.Minus:
		if right.Type() != types.TypeNumber {
			return types.Null, types.NewTypeError(e.Operator.Line, "Operand must be a number.")
		}
		return types.NewNumber(-right.AsNumber()), nil
	case token.Bang:
		return types.NewBool(!right.Truthy()), nil
	default:
		return types.Null, fmt.Errorf("unsupported unary operator: %s", e.Operator.Type)
	}
}

func (i *Interpreter) evalBinary(e *ast.BinaryExpr, scope *Scope) (types.Value, error) {
	left, err := i.evalExpr(e.Left, scope)
	if err != nil {
		return types.Null, err
	}
	right, err := i.evalExpr(e.Right, scope)
	if err != nil {
		return types.Null, err
	}

	switch e.Operator.Type {
	case token.Plus:
		return evalAdd(e.Operator, left, right)
	case token.Minus:
		return evalArith(e.Operator, left, right, func(a, b float64) float64 { return a - b })
	case token.Star:
		return evalArith(e.Operator, left, right, func(a, b float64) float64 { return a * b })
	case token.Slash:
		// Division by zero deliberately follows IEEE float semantics and
		// yields infinity or NaN rather than an error.
		return evalArith(e.Operator, left, right, func(a, b float64) float64 { return a / b })
	case token.EqualEqual:
		return types.NewBool(left.Equal(right)), nil
	case token.BangEqual:
		return types.NewBool(!left.Equal(right)), nil
	case token.Greater:
		return evalCompare(e.Operator, left, right, func(a, b float64) bool { return a > b })
	case token.GreaterEqual:
		return evalCompare(e.Operator, left, right, func(a, b float64) bool { return a >= b })
	case token.Less:
		return evalCompare(e.Operator, left, right, func(a, b float64) bool { return a < b })
	case token.LessEqual:
		return evalCompare(e.Operator, left, right, func(a, b float64) bool { return a <= b })
	default:
		return types.Null, fmt.Errorf("unsupported binary operator: %s", e.Operator.Type)
	}
}

// evalAdd handles "+": numbers add, strings concatenate, anything else is a
// type error.
func evalAdd(op token.Token, left, right types.Value) (types.Value, error) {
	if left.Type() == types.TypeNumber && right.Type() == types.TypeNumber {
		return types.NewNumber(left.AsNumber() + right.AsNumber()), nil
	}
	if left.Type() == types.TypeString && right.Type() == types.TypeString {
		return types.NewString(left.AsString() + right.AsString()), nil
	}
	return types.Null, types.NewTypeError(op.Line, "Operands must be two numbers or two strings.")
}

func evalArith(op token.Token, left, right types.Value, apply func(a, b float64) float64) (types.Value, error) {
	if left.Type() != types.TypeNumber || right.Type() != types.TypeNumber {
		return types.Null, types.NewTypeError(op.Line, "Operands must be numbers.")
	}
	return types.NewNumber(apply(left.AsNumber(), right.AsNumber())), nil
}

func evalCompare(op token.Token, left, right types.Value, test func(a, b float64) bool) (types.Value, error) {
	if left.Type() != types.TypeNumber || right.Type() != types.TypeNumber {
		return types.Null, types.NewTypeError(op.Line, "Operands must be numbers.")
	}
	return types.NewBool(test(left.AsNumber(), right.AsNumber())), nil
}

// evalLogical short-circuits: the right operand is not evaluated when the
// left already determines the result, and the expression's value is the
// last operand evaluated, not a coerced boolean.
func (i *Interpreter) evalLogical(e *ast.LogicalExpr, scope *Scope) (types.Value, error) {
	left, err := i.evalExpr(e.Left, scope)
	if err != nil {
		return types.Null, err
	}

	if e.Operator.Type == token.Or {
		if left.Truthy() {
			return left, nil
		}
	} else {
		if !left.Truthy() {
			return left, nil
		}
	}
	return i.evalExpr(e.Right, scope)
}

func (i *Interpreter) evalCall(e *ast.CallExpr, scope *Scope) (types.Value, error) {
	callee, err := i.evalExpr(e.Callee, scope)
	if err != nil {
		return types.Null, err
	}

	args := make([]types.Value, len(e.Arguments))
	for idx, arg := range e.Arguments {
		value, err := i.evalExpr(arg, scope)
		if err != nil {
			return types.Null, err
		}
		args[idx] = value
	}

	if callee.Type() != types.TypeCallable {
		return types.Null, types.NewNotCallableError(e.Paren.Line)
	}
	fn := callee.AsCallable()

	if len(args) != fn.Arity() {
		return types.Null, types.NewArityError(e.Paren.Line, fn.Arity(), len(args))
	}

	i.callDepth++
	defer func() { i.callDepth-- }()
	if i.callDepth > i.maxCallDepth {
		return types.Null, types.NewRecursionError(e.Paren.Line, i.maxCallDepth)
	}

	result, err := fn.Call(args)
	if err != nil {
		return types.Null, runtimeErrorAt(err, e.Paren.Line)
	}
	return result, nil
}

// runtimeErrorAt attaches the call site line to errors raised without one,
// which is how native function failures get a source position.
func runtimeErrorAt(err error, line int) error {
	if re, ok := err.(*types.RuntimeError); ok && re.Line == 0 {
		re.Line = line
	}
	return err
}

// asRuntimeError normalizes any evaluation error to a *types.RuntimeError.
func asRuntimeError(err error) *types.RuntimeError {
	if re, ok := err.(*types.RuntimeError); ok {
		return re
	}
	return &types.RuntimeError{Message: err.Error()}
}

// topLevelReturnLine digs out the line of a return statement that escaped
// to the top level.
func topLevelReturnLine(stmt ast.Stmt) int {
	if ret, ok := stmt.(*ast.ReturnStmt); ok {
		return ret.Keyword.Line
	}
	return 0
}
