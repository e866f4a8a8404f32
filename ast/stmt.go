/*
File    : lox/ast/stmt.go
*/
package ast

import "github.com/loxlang/lox/lexer"

// Stmt is any statement node.
type Stmt interface {
	Node
	stmtNode()
}

// ExpressionStmt evaluates an expression for its side effects; the
// statement's result is the expression's value.
type ExpressionStmt struct {
	Expression Expr
}

// PrintStmt evaluates an expression and writes its display form followed
// by a newline.
type PrintStmt struct {
	Expression Expr
}

// VarStmt declares a new binding in the current scope. The initializer is
// optional in source (spec §4.2's var_decl rule); the parser always fills
// Initializer in, defaulting to a nil literal when source omits it, so
// this field is never itself nil.
type VarStmt struct {
	Name        lexer.Token
	Initializer Expr
}

// BlockStmt is an ordered list of statements executed in a fresh child
// scope.
type BlockStmt struct {
	Statements []Stmt
}

// IfStmt is a conditional with an optional else branch.
type IfStmt struct {
	Condition  Expr
	ThenBranch Stmt
	ElseBranch Stmt // nil if absent
}

// WhileStmt repeats Body while Condition is truthy.
type WhileStmt struct {
	Condition Expr
	Body      Stmt
}

// FunctionStmt declares a named function value in the current scope,
// capturing that scope as the function's closure.
type FunctionStmt struct {
	Name   lexer.Token
	Params []lexer.Token
	Body   *BlockStmt
}

// ReturnStmt evaluates Value (defaulting to nil when omitted, per spec
// §4.2's return_stmt desugaring) and unwinds to the nearest enclosing
// function call.
type ReturnStmt struct {
	Keyword lexer.Token
	Value   Expr
}

func (*ExpressionStmt) node() {}
func (*PrintStmt) node()      {}
func (*VarStmt) node()        {}
func (*BlockStmt) node()      {}
func (*IfStmt) node()         {}
func (*WhileStmt) node()      {}
func (*FunctionStmt) node()   {}
func (*ReturnStmt) node()     {}

func (*ExpressionStmt) stmtNode() {}
func (*PrintStmt) stmtNode()      {}
func (*VarStmt) stmtNode()        {}
func (*BlockStmt) stmtNode()      {}
func (*IfStmt) stmtNode()         {}
func (*WhileStmt) stmtNode()      {}
func (*FunctionStmt) stmtNode()   {}
func (*ReturnStmt) stmtNode()     {}
