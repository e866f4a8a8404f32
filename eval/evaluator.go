/*
File    : lox/eval/evaluator.go
*/

// Package eval walks the ast tree produced by parser against a chain of
// environment.Environment scopes, producing a object.Value per node and
// the side effects (print output, builtin calls) spec.md §4.3 describes.
package eval

import (
	"io"
	"os"

	"github.com/loxlang/lox/ast"
	"github.com/loxlang/lox/environment"
	"github.com/loxlang/lox/object"
)

// Evaluator holds the state shared across every Eval call in one run: the
// root environment builtins and globals live in, and the sink `print`
// writes to.
type Evaluator struct {
	Globals *environment.Environment
	Out     io.Writer
}

// New creates an Evaluator with a fresh global environment and stdout as
// its print sink.
func New() *Evaluator {
	return &Evaluator{
		Globals: environment.New(nil),
		Out:     os.Stdout,
	}
}

// Run executes an ordered program against env (typically e.Globals; the
// REPL passes e.Globals on every line so declarations persist across
// lines), returning the last statement's value. A Return sentinel that
// escapes every statement — i.e. a `return` with no enclosing function —
// is reported as an EvaluateError rather than silently swallowed, per
// spec.md §9's resolution of that open question.
func (e *Evaluator) Run(stmts []ast.Stmt, env *environment.Environment) (object.Value, error) {
	var result object.Value = object.Nil{}
	for _, stmt := range stmts {
		v, err := e.Eval(stmt, env)
		if err != nil {
			return nil, err
		}
		if _, ok := v.(object.ReturnValue); ok {
			return nil, newError("cannot return from top level")
		}
		result = v
	}
	return result, nil
}

// Eval dispatches a single Expr or Stmt node to its handler. It is the one
// entry point every recursive call goes through, matching spec.md §4.3's
// unified interpret/evaluate contract.
func (e *Evaluator) Eval(node ast.Node, env *environment.Environment) (object.Value, error) {
	switch n := node.(type) {
	// Statements
	case *ast.ExpressionStmt:
		return e.evalExpressionStmt(n, env)
	case *ast.PrintStmt:
		return e.evalPrintStmt(n, env)
	case *ast.VarStmt:
		return e.evalVarStmt(n, env)
	case *ast.BlockStmt:
		return e.evalBlockStmt(n, env)
	case *ast.IfStmt:
		return e.evalIfStmt(n, env)
	case *ast.WhileStmt:
		return e.evalWhileStmt(n, env)
	case *ast.FunctionStmt:
		return e.evalFunctionStmt(n, env)
	case *ast.ReturnStmt:
		return e.evalReturnStmt(n, env)

	// Expressions
	case *ast.LiteralExpr:
		return n.Value, nil
	case *ast.UnaryExpr:
		return e.evalUnaryExpr(n, env)
	case *ast.BinaryExpr:
		return e.evalBinaryExpr(n, env)
	case *ast.LogicalExpr:
		return e.evalLogicalExpr(n, env)
	case *ast.CallExpr:
		return e.evalCallExpr(n, env)
	case *ast.GroupingExpr:
		return e.Eval(n.Expression, env)
	case *ast.VariableExpr:
		return e.evalVariableExpr(n, env)
	case *ast.AssignExpr:
		return e.evalAssignExpr(n, env)
	}
	return nil, newError("unknown node type %T", node)
}
