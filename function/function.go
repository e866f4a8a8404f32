/*
File    : lox/function/function.go
*/

// Package function defines the Func runtime value (spec §3.2). It is kept
// out of the object package because it must hold a reference to its
// declaring environment and its AST body, and importing either back into
// object would create a dependency cycle.
package function

import (
	"fmt"

	"github.com/loxlang/lox/ast"
	"github.com/loxlang/lox/environment"
	"github.com/loxlang/lox/lexer"
	"github.com/loxlang/lox/object"
)

// Function is a declared function value: its name, the environment that
// was live when the `fun` statement executed (its closure), its parameter
// names, and its body. Closure is captured by reference, never copied —
// this is what makes a function declared inside a scope still see that
// scope's bindings (including later mutations) when invoked later from
// anywhere.
type Function struct {
	Name    string
	Params  []lexer.Token
	Body    *ast.BlockStmt
	Closure *environment.Environment
}

func (*Function) Type() object.Type { return object.FunctionType }

// Display renders a function the way spec §4.3.1's print table requires:
// "<function NAME>".
func (f *Function) Display() string {
	return fmt.Sprintf("<function %s>", f.Name)
}

// Arity is the number of parameters this function was declared with.
func (f *Function) Arity() int {
	return len(f.Params)
}
