package types

import "fmt"

// Error tag constants classifying Lox runtime errors.
const (
	TagTypeError         = "TypeError"
	TagUndefinedVariable = "UndefinedVariable"
	TagArityError        = "ArityError"
	TagNotCallableError  = "NotCallableError"
	TagRecursionError    = "RecursionError"
)

// RuntimeError represents a Lox runtime error with its message, the source
// line that raised it, and classification tags. Exactly one runtime error is
// reported per run: evaluation aborts at the point of error.
type RuntimeError struct {
	Message string
	Line    int
	Tags    []string
}

// Error implements the error interface.
func (e *RuntimeError) Error() string {
	return e.Message
}

// HasTag returns true if the error carries the specified tag.
func (e *RuntimeError) HasTag(tag string) bool {
	for _, t := range e.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Common error constructors.

// NewTypeError creates a TypeError for an unsupported operand combination.
func NewTypeError(line int, msg string) *RuntimeError {
	return &RuntimeError{Message: msg, Line: line, Tags: []string{TagTypeError}}
}

// NewUndefinedVariableError creates an error for a reference to or
// assignment of a name no enclosing scope declares.
func NewUndefinedVariableError(line int, name string) *RuntimeError {
	return &RuntimeError{
		Message: fmt.Sprintf("Undefined variable '%s'.", name),
		Line:    line,
		Tags:    []string{TagUndefinedVariable},
	}
}

// NewArityError creates an error for a call whose argument count does not
// match the callee's declared parameter count.
func NewArityError(line, want, got int) *RuntimeError {
	return &RuntimeError{
		Message: fmt.Sprintf("Expected %d arguments but got %d.", want, got),
		Line:    line,
		Tags:    []string{TagArityError},
	}
}

// NewNotCallableError creates an error for calling a non-callable value.
func NewNotCallableError(line int) *RuntimeError {
	return &RuntimeError{
		Message: "Can only call functions.",
		Line:    line,
		Tags:    []string{TagNotCallableError},
	}
}

// NewRecursionError creates a RecursionError for call stack overflow.
// Bounding the depth explicitly keeps runaway Lox recursion a reportable
// runtime error instead of a host stack exhaustion crash.
func NewRecursionError(line, limit int) *RuntimeError {
	return &RuntimeError{
		Message: fmt.Sprintf("Call stack depth limit exceeded (max %d).", limit),
		Line:    line,
		Tags:    []string{TagRecursionError},
	}
}
