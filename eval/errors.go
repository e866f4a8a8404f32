/*
File    : lox/eval/errors.go
*/
package eval

import "fmt"

// EvaluateError is a runtime failure: a type mismatch, an undefined
// variable, an arity mismatch, or a call on a non-callable value.
type EvaluateError struct {
	Message string
}

func (e *EvaluateError) Error() string {
	return fmt.Sprintf("Error: %s", e.Message)
}

func newError(format string, args ...interface{}) error {
	return &EvaluateError{Message: fmt.Sprintf(format, args...)}
}
