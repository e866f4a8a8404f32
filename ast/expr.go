/*
File    : lox/ast/expr.go
*/

// Package ast defines the syntax tree the parser builds and the evaluator
// walks: Expr (spec §3.3) and Stmt (spec §3.4) node types sharing a common
// Node marker so a single dispatcher can handle both.
package ast

import (
	"github.com/loxlang/lox/lexer"
	"github.com/loxlang/lox/object"
)

// Node is implemented by every Expr and every Stmt. Its only method is the
// unexported marker node(); it exists only so eval.Evaluator can dispatch
// on one type switch instead of two.
type Node interface {
	node()
}

// Expr is any expression node.
type Expr interface {
	Node
	exprNode()
}

// LiteralExpr wraps a literal value produced directly by the parser
// (numbers, strings, true/false, nil).
type LiteralExpr struct {
	Value object.Value
}

// UnaryExpr is a prefix operator applied to a single operand ('-' or '!').
type UnaryExpr struct {
	Operator lexer.Token
	Right    Expr
}

// BinaryExpr is a left-associative infix operator application.
type BinaryExpr struct {
	Left     Expr
	Operator lexer.Token
	Right    Expr
}

// LogicalExpr is `and`/`or`, kept distinct from BinaryExpr because it
// short-circuits (spec §4.3.3).
type LogicalExpr struct {
	Left     Expr
	Operator lexer.Token
	Right    Expr
}

// CallExpr is a function call: a callee expression applied to an ordered
// argument list. Paren records the closing ')' token; the evaluator's
// arity/callability errors do not include its line.
type CallExpr struct {
	Callee Expr
	Paren  lexer.Token
	Args   []Expr
}

// GroupingExpr is a parenthesized sub-expression.
type GroupingExpr struct {
	Expression Expr
}

// VariableExpr looks up an identifier in the current environment chain.
type VariableExpr struct {
	Name lexer.Token
}

// AssignExpr assigns a new value to an existing variable binding.
type AssignExpr struct {
	Name  lexer.Token
	Value Expr
}

func (*LiteralExpr) node()     {}
func (*UnaryExpr) node()       {}
func (*BinaryExpr) node()      {}
func (*LogicalExpr) node()     {}
func (*CallExpr) node()        {}
func (*GroupingExpr) node()    {}
func (*VariableExpr) node()    {}
func (*AssignExpr) node()      {}

func (*LiteralExpr) exprNode()  {}
func (*UnaryExpr) exprNode()    {}
func (*BinaryExpr) exprNode()   {}
func (*LogicalExpr) exprNode()  {}
func (*CallExpr) exprNode()     {}
func (*GroupingExpr) exprNode() {}
func (*VariableExpr) exprNode() {}
func (*AssignExpr) exprNode()   {}
