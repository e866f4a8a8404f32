/*
File    : lox/eval/eval_statements.go
*/
package eval

import (
	"fmt"

	"github.com/loxlang/lox/ast"
	"github.com/loxlang/lox/environment"
	"github.com/loxlang/lox/function"
	"github.com/loxlang/lox/object"
)

func (e *Evaluator) evalExpressionStmt(s *ast.ExpressionStmt, env *environment.Environment) (object.Value, error) {
	return e.Eval(s.Expression, env)
}

// evalPrintStmt writes the display form of its expression's value followed
// by a newline, per spec.md §4.3.1's print table (no quotes on strings,
// host float format on numbers, <function NAME>/<built-in function NAME>
// for callables).
func (e *Evaluator) evalPrintStmt(s *ast.PrintStmt, env *environment.Environment) (object.Value, error) {
	v, err := e.Eval(s.Expression, env)
	if err != nil {
		return nil, err
	}
	fmt.Fprintln(e.Out, v.Display())
	return object.Nil{}, nil
}

func (e *Evaluator) evalVarStmt(s *ast.VarStmt, env *environment.Environment) (object.Value, error) {
	v, err := e.Eval(s.Initializer, env)
	if err != nil {
		return nil, err
	}
	env.Define(s.Name.Lexeme, v)
	return object.Nil{}, nil
}

// evalBlockStmt creates a fresh child scope, evaluates its statements in
// order, and stops early (propagating the wrapped value unchanged) the
// moment any statement yields an object.ReturnValue.
func (e *Evaluator) evalBlockStmt(s *ast.BlockStmt, env *environment.Environment) (object.Value, error) {
	child := environment.New(env)
	var result object.Value = object.Nil{}
	for _, stmt := range s.Statements {
		v, err := e.Eval(stmt, child)
		if err != nil {
			return nil, err
		}
		if _, ok := v.(object.ReturnValue); ok {
			return v, nil
		}
		result = v
	}
	return result, nil
}

func (e *Evaluator) evalIfStmt(s *ast.IfStmt, env *environment.Environment) (object.Value, error) {
	cond, err := e.Eval(s.Condition, env)
	if err != nil {
		return nil, err
	}
	if object.Truthy(cond) {
		return e.Eval(s.ThenBranch, env)
	}
	if s.ElseBranch != nil {
		return e.Eval(s.ElseBranch, env)
	}
	return object.Nil{}, nil
}

func (e *Evaluator) evalWhileStmt(s *ast.WhileStmt, env *environment.Environment) (object.Value, error) {
	for {
		cond, err := e.Eval(s.Condition, env)
		if err != nil {
			return nil, err
		}
		if !object.Truthy(cond) {
			return object.Nil{}, nil
		}
		v, err := e.Eval(s.Body, env)
		if err != nil {
			return nil, err
		}
		if _, ok := v.(object.ReturnValue); ok {
			return v, nil
		}
	}
}

// evalFunctionStmt builds a Func value capturing the current environment
// reference (never a copy, per spec.md §4.3.1) and installs it in the
// current scope under its own name.
func (e *Evaluator) evalFunctionStmt(s *ast.FunctionStmt, env *environment.Environment) (object.Value, error) {
	fn := &function.Function{
		Name:    s.Name.Lexeme,
		Params:  s.Params,
		Body:    s.Body,
		Closure: env,
	}
	env.Define(s.Name.Lexeme, fn)
	return object.Nil{}, nil
}

func (e *Evaluator) evalReturnStmt(s *ast.ReturnStmt, env *environment.Environment) (object.Value, error) {
	v, err := e.Eval(s.Value, env)
	if err != nil {
		return nil, err
	}
	return object.ReturnValue{Value: v}, nil
}
