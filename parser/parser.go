/*
File    : lox/parser/parser.go
*/

// Package parser implements a recursive-descent parser with one-token
// lookahead that turns a lox token stream into an ordered Stmt tree,
// following the precedence grammar in spec.md §4.2 exactly.
package parser

import (
	"fmt"

	"github.com/loxlang/lox/ast"
	"github.com/loxlang/lox/lexer"
	"github.com/loxlang/lox/object"
)

// ParseError reports a grammar violation, carrying the offending token so
// callers can report its line and lexeme.
type ParseError struct {
	Token   lexer.Token
	Message string
}

func (e *ParseError) Error() string {
	if e.Token.Type == lexer.Eof {
		return fmt.Sprintf("Error at line %d at end: %s", e.Token.Line, e.Message)
	}
	return fmt.Sprintf("Error at line %d at '%s': %s", e.Token.Line, e.Token.Lexeme, e.Message)
}

// Parser holds the token stream and lookahead state for one parse.
//
// Errors accumulates every ParseError encountered across declarations
// (instead of panicking on the first one), mirroring the teacher's
// collect-don't-panic error design; after each failed declaration the
// parser synchronizes to the next statement boundary so it can keep
// reporting further errors.
type Parser struct {
	tokens  []lexer.Token
	current int
	Errors  []error
}

// New creates a Parser over an already-scanned token stream.
func New(tokens []lexer.Token) *Parser {
	return &Parser{tokens: tokens}
}

// Parse parses the token stream into an ordered Stmt sequence. Parse
// always consumes every non-Eof token or records at least one error; it
// never returns a partial tree for a declaration that failed (that
// declaration is simply dropped after synchronizing).
func (p *Parser) Parse() []ast.Stmt {
	var stmts []ast.Stmt
	for !p.isAtEnd() {
		stmt := p.declaration()
		if stmt != nil {
			stmts = append(stmts, stmt)
		}
	}
	return stmts
}

// HasErrors reports whether any ParseError was recorded.
func (p *Parser) HasErrors() bool {
	return len(p.Errors) > 0
}

// ---- token stream helpers ----

func (p *Parser) peek() lexer.Token {
	return p.tokens[p.current]
}

func (p *Parser) previous() lexer.Token {
	return p.tokens[p.current-1]
}

func (p *Parser) isAtEnd() bool {
	return p.peek().Type == lexer.Eof
}

func (p *Parser) advance() lexer.Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) check(typ lexer.TokenType) bool {
	if p.isAtEnd() {
		return typ == lexer.Eof
	}
	return p.peek().Type == typ
}

func (p *Parser) match(types ...lexer.TokenType) bool {
	for _, typ := range types {
		if p.check(typ) {
			p.advance()
			return true
		}
	}
	return false
}

// consume advances past a token of the expected type, or records a
// ParseError (and panics with parseSignal to unwind to the nearest
// recovery point) if the current token doesn't match.
func (p *Parser) consume(typ lexer.TokenType, message string) lexer.Token {
	if p.check(typ) {
		return p.advance()
	}
	panic(p.errorAt(p.peek(), message))
}

// parseSignal wraps a *ParseError so panic/recover can distinguish an
// intentional parse failure from a genuine programming bug elsewhere.
type parseSignal struct{ err *ParseError }

func (p *Parser) errorAt(tok lexer.Token, message string) parseSignal {
	err := &ParseError{Token: tok, Message: message}
	p.Errors = append(p.Errors, err)
	return parseSignal{err: err}
}

// synchronize discards tokens until it reaches a likely statement
// boundary: just past a ';', or at a keyword that begins a new statement.
// This lets the parser recover from one bad declaration and keep looking
// for further errors in the rest of the program.
func (p *Parser) synchronize() {
	p.advance()
	for !p.isAtEnd() {
		if p.previous().Type == lexer.Semicolon {
			return
		}
		switch p.peek().Type {
		case lexer.Class, lexer.Fun, lexer.Var, lexer.For,
			lexer.If, lexer.While, lexer.Print, lexer.Return:
			return
		}
		p.advance()
	}
}

// ---- declarations ----

// declaration parses one top-level-or-block declaration, recovering via
// synchronize() if it fails so that one bad statement doesn't abort the
// whole parse.
func (p *Parser) declaration() (stmt ast.Stmt) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(parseSignal); ok {
				p.synchronize()
				stmt = nil
				return
			}
			panic(r)
		}
	}()

	switch {
	case p.match(lexer.Var):
		return p.varDeclaration()
	case p.match(lexer.Fun):
		return p.functionDeclaration("function")
	default:
		return p.statement()
	}
}

func (p *Parser) varDeclaration() ast.Stmt {
	name := p.consume(lexer.Identifier, "expected a variable name")

	var initializer ast.Expr = &ast.LiteralExpr{Value: object.Nil{}}
	if p.match(lexer.Equal) {
		initializer = p.expression()
	}
	p.consumeStatementTerminator()
	return &ast.VarStmt{Name: name, Initializer: initializer}
}

func (p *Parser) functionDeclaration(kind string) ast.Stmt {
	name := p.consume(lexer.Identifier, "expected a "+kind+" name")
	p.consume(lexer.LeftParen, "expected '(' after "+kind+" name")

	var params []lexer.Token
	if !p.check(lexer.RightParen) {
		for {
			params = append(params, p.consume(lexer.Identifier, "expected a parameter name"))
			if !p.match(lexer.Comma) {
				break
			}
		}
	}
	p.consume(lexer.RightParen, "expected ')' after parameters")

	p.consume(lexer.LeftBrace, "expected '{' before "+kind+" body")
	body := p.block()
	return &ast.FunctionStmt{Name: name, Params: params, Body: &ast.BlockStmt{Statements: body}}
}

// ---- statements ----

func (p *Parser) statement() ast.Stmt {
	switch {
	case p.match(lexer.Print):
		return p.printStatement()
	case p.match(lexer.LeftBrace):
		return &ast.BlockStmt{Statements: p.block()}
	case p.match(lexer.If):
		return p.ifStatement()
	case p.match(lexer.While):
		return p.whileStatement()
	case p.match(lexer.For):
		return p.forStatement()
	case p.match(lexer.Return):
		return p.returnStatement()
	default:
		return p.expressionStatement()
	}
}

func (p *Parser) printStatement() ast.Stmt {
	value := p.expression()
	p.consumeStatementTerminator()
	return &ast.PrintStmt{Expression: value}
}

func (p *Parser) expressionStatement() ast.Stmt {
	expr := p.expression()
	p.consumeStatementTerminator()
	return &ast.ExpressionStmt{Expression: expr}
}

func (p *Parser) block() []ast.Stmt {
	var stmts []ast.Stmt
	for !p.check(lexer.RightBrace) && !p.isAtEnd() {
		if d := p.declaration(); d != nil {
			stmts = append(stmts, d)
		}
	}
	p.consume(lexer.RightBrace, "expected '}' after block")
	return stmts
}

func (p *Parser) ifStatement() ast.Stmt {
	p.consume(lexer.LeftParen, "expected '(' after 'if'")
	condition := p.expression()
	p.consume(lexer.RightParen, "expected ')' after if condition")

	thenBranch := p.statement()
	var elseBranch ast.Stmt
	if p.match(lexer.Else) {
		elseBranch = p.statement()
	}
	return &ast.IfStmt{Condition: condition, ThenBranch: thenBranch, ElseBranch: elseBranch}
}

func (p *Parser) whileStatement() ast.Stmt {
	p.consume(lexer.LeftParen, "expected '(' after 'while'")
	condition := p.expression()
	p.consume(lexer.RightParen, "expected ')' after while condition")
	body := p.statement()
	return &ast.WhileStmt{Condition: condition, Body: body}
}

// forStatement desugars `for (init; cond; incr) body` into a block
// containing the initializer followed by a while loop, per spec §4.2:
// a missing initializer is omitted, a missing condition defaults to
// `true`, and a missing increment is omitted.
func (p *Parser) forStatement() ast.Stmt {
	p.consume(lexer.LeftParen, "expected '(' after 'for'")

	var initializer ast.Stmt
	switch {
	case p.match(lexer.Semicolon):
		initializer = nil
	case p.check(lexer.Var):
		p.advance()
		initializer = p.varDeclaration()
	default:
		initializer = p.expressionStatement()
	}

	var condition ast.Expr
	if !p.check(lexer.Semicolon) {
		condition = p.expression()
	}
	p.consume(lexer.Semicolon, "expected ';' after loop condition")

	var increment ast.Expr
	if !p.check(lexer.RightParen) {
		increment = p.expression()
	}
	p.consume(lexer.RightParen, "expected ')' after for clauses")

	body := p.statement()

	if increment != nil {
		body = &ast.BlockStmt{Statements: []ast.Stmt{body, &ast.ExpressionStmt{Expression: increment}}}
	}
	if condition == nil {
		condition = &ast.LiteralExpr{Value: object.Bool{Value: true}}
	}
	body = &ast.WhileStmt{Condition: condition, Body: body}

	if initializer != nil {
		body = &ast.BlockStmt{Statements: []ast.Stmt{initializer, body}}
	}
	return body
}

// returnStatement desugars a bare `return;` to `return nil;` per spec
// §4.2.
func (p *Parser) returnStatement() ast.Stmt {
	keyword := p.previous()
	var value ast.Expr = &ast.LiteralExpr{Value: object.Nil{}}
	if !p.check(lexer.Semicolon) {
		value = p.expression()
	}
	p.consumeStatementTerminator()
	return &ast.ReturnStmt{Keyword: keyword, Value: value}
}

// consumeStatementTerminator enforces the trailing ';' spec §4.2 requires
// after every value-bearing statement, except when the stream has already
// reached Eof — which permits one-line REPL inputs with no trailing
// semicolon.
func (p *Parser) consumeStatementTerminator() {
	if p.isAtEnd() {
		return
	}
	p.consume(lexer.Semicolon, "expected ';' after statement")
}

// ---- expressions (precedence low -> high, per spec §4.2) ----

func (p *Parser) expression() ast.Expr {
	return p.assignment()
}

// assignment is parsed right-associative by recursing on the right-hand
// side before validating the left-hand side is a bare variable.
func (p *Parser) assignment() ast.Expr {
	expr := p.or()

	if p.match(lexer.Equal) {
		equals := p.previous()
		value := p.assignment()

		if v, ok := expr.(*ast.VariableExpr); ok {
			return &ast.AssignExpr{Name: v.Name, Value: value}
		}
		panic(p.errorAt(equals, "Invalid assignment target"))
	}
	return expr
}

func (p *Parser) or() ast.Expr {
	expr := p.and()
	for p.match(lexer.Or) {
		op := p.previous()
		right := p.and()
		expr = &ast.LogicalExpr{Left: expr, Operator: op, Right: right}
	}
	return expr
}

func (p *Parser) and() ast.Expr {
	expr := p.equality()
	for p.match(lexer.And) {
		op := p.previous()
		right := p.equality()
		expr = &ast.LogicalExpr{Left: expr, Operator: op, Right: right}
	}
	return expr
}

func (p *Parser) equality() ast.Expr {
	expr := p.comparison()
	for p.match(lexer.BangEqual, lexer.EqualEqual) {
		op := p.previous()
		right := p.comparison()
		expr = &ast.BinaryExpr{Left: expr, Operator: op, Right: right}
	}
	return expr
}

func (p *Parser) comparison() ast.Expr {
	expr := p.addition()
	for p.match(lexer.Greater, lexer.GreaterEqual, lexer.Less, lexer.LessEqual) {
		op := p.previous()
		right := p.addition()
		expr = &ast.BinaryExpr{Left: expr, Operator: op, Right: right}
	}
	return expr
}

func (p *Parser) addition() ast.Expr {
	expr := p.multiplication()
	for p.match(lexer.Minus, lexer.Plus) {
		op := p.previous()
		right := p.multiplication()
		expr = &ast.BinaryExpr{Left: expr, Operator: op, Right: right}
	}
	return expr
}

func (p *Parser) multiplication() ast.Expr {
	expr := p.unary()
	for p.match(lexer.Slash, lexer.Star) {
		op := p.previous()
		right := p.unary()
		expr = &ast.BinaryExpr{Left: expr, Operator: op, Right: right}
	}
	return expr
}

func (p *Parser) unary() ast.Expr {
	if p.match(lexer.Bang, lexer.Minus) {
		op := p.previous()
		right := p.unary()
		return &ast.UnaryExpr{Operator: op, Right: right}
	}
	return p.call()
}

// call parses a primary expression followed by zero or more argument
// lists, so that `f()()()` folds into a left-nested Call tree.
func (p *Parser) call() ast.Expr {
	expr := p.primary()
	for {
		if p.match(lexer.LeftParen) {
			expr = p.finishCall(expr)
		} else {
			break
		}
	}
	return expr
}

func (p *Parser) finishCall(callee ast.Expr) ast.Expr {
	var args []ast.Expr
	if !p.check(lexer.RightParen) {
		for {
			args = append(args, p.expression())
			if !p.match(lexer.Comma) {
				break
			}
		}
	}
	paren := p.consume(lexer.RightParen, "expected ')' after arguments")
	return &ast.CallExpr{Callee: callee, Paren: paren, Args: args}
}

func (p *Parser) primary() ast.Expr {
	switch {
	case p.match(lexer.False):
		return &ast.LiteralExpr{Value: object.Bool{Value: false}}
	case p.match(lexer.True):
		return &ast.LiteralExpr{Value: object.Bool{Value: true}}
	case p.match(lexer.Nil):
		return &ast.LiteralExpr{Value: object.Nil{}}
	case p.match(lexer.Number):
		return &ast.LiteralExpr{Value: object.Number{Value: p.previous().Value.(float64)}}
	case p.match(lexer.String):
		return &ast.LiteralExpr{Value: object.String{Value: p.previous().Value.(string)}}
	case p.match(lexer.Identifier):
		return &ast.VariableExpr{Name: p.previous()}
	case p.match(lexer.LeftParen):
		expr := p.expression()
		p.consume(lexer.RightParen, "expected ')' after expression")
		return &ast.GroupingExpr{Expression: expr}
	case p.match(lexer.Class, lexer.Super, lexer.This):
		panic(p.errorAt(p.previous(), "class semantics are not supported"))
	}
	panic(p.errorAt(p.peek(), "expected an expression"))
}
