/*
File    : lox/eval/eval_expressions.go
*/
package eval

import (
	"github.com/loxlang/lox/ast"
	"github.com/loxlang/lox/environment"
	"github.com/loxlang/lox/function"
	"github.com/loxlang/lox/lexer"
	"github.com/loxlang/lox/object"
)

func (e *Evaluator) evalUnaryExpr(x *ast.UnaryExpr, env *environment.Environment) (object.Value, error) {
	right, err := e.Eval(x.Right, env)
	if err != nil {
		return nil, err
	}
	switch x.Operator.Type {
	case lexer.Minus:
		n, ok := right.(object.Number)
		if !ok {
			return nil, newError("Can't negate %s", right.Display())
		}
		return object.Number{Value: -n.Value}, nil
	case lexer.Bang:
		return object.Bool{Value: !object.Truthy(right)}, nil
	}
	return nil, newError("unknown unary operator %s", x.Operator.Lexeme)
}

// evalBinaryExpr implements the numeric/comparison operators (requiring
// Number on both sides), the overloaded `+` (Number+Number addition;
// String+String, Number+String and String+Number concatenate the display
// forms; any other pairing is an error, per spec.md §4.3.2), and `==`/`!=`
// via object.Equal, which never errors.
func (e *Evaluator) evalBinaryExpr(x *ast.BinaryExpr, env *environment.Environment) (object.Value, error) {
	left, err := e.Eval(x.Left, env)
	if err != nil {
		return nil, err
	}
	right, err := e.Eval(x.Right, env)
	if err != nil {
		return nil, err
	}

	switch x.Operator.Type {
	case lexer.Plus:
		return evalAddition(left, right)
	case lexer.Minus:
		l, r, ok := bothNumbers(left, right)
		if !ok {
			return nil, newError("Expected a number for '-'")
		}
		return object.Number{Value: l - r}, nil
	case lexer.Star:
		l, r, ok := bothNumbers(left, right)
		if !ok {
			return nil, newError("Expected a number for '*'")
		}
		return object.Number{Value: l * r}, nil
	case lexer.Slash:
		l, r, ok := bothNumbers(left, right)
		if !ok {
			return nil, newError("Expected a number for '/'")
		}
		return object.Number{Value: l / r}, nil
	case lexer.Greater:
		l, r, ok := bothNumbers(left, right)
		if !ok {
			return nil, newError("Expected a number for '>'")
		}
		return object.Bool{Value: l > r}, nil
	case lexer.GreaterEqual:
		l, r, ok := bothNumbers(left, right)
		if !ok {
			return nil, newError("Expected a number for '>='")
		}
		return object.Bool{Value: l >= r}, nil
	case lexer.Less:
		l, r, ok := bothNumbers(left, right)
		if !ok {
			return nil, newError("Expected a number for '<'")
		}
		return object.Bool{Value: l < r}, nil
	case lexer.LessEqual:
		l, r, ok := bothNumbers(left, right)
		if !ok {
			return nil, newError("Expected a number for '<='")
		}
		return object.Bool{Value: l <= r}, nil
	case lexer.EqualEqual:
		return object.Bool{Value: object.Equal(left, right)}, nil
	case lexer.BangEqual:
		return object.Bool{Value: !object.Equal(left, right)}, nil
	}
	return nil, newError("unknown binary operator %s", x.Operator.Lexeme)
}

func bothNumbers(a, b object.Value) (float64, float64, bool) {
	an, ok := a.(object.Number)
	if !ok {
		return 0, 0, false
	}
	bn, ok := b.(object.Number)
	if !ok {
		return 0, 0, false
	}
	return an.Value, bn.Value, true
}

func evalAddition(left, right object.Value) (object.Value, error) {
	if l, ok := left.(object.Number); ok {
		if r, ok := right.(object.Number); ok {
			return object.Number{Value: l.Value + r.Value}, nil
		}
	}
	_, leftIsNumberOrString := numberOrString(left)
	_, rightIsNumberOrString := numberOrString(right)
	if !leftIsNumberOrString || !rightIsNumberOrString {
		return nil, newError("Expected a number or string for '+'")
	}
	return object.String{Value: object.Concat(left, right)}, nil
}

func numberOrString(v object.Value) (object.Value, bool) {
	switch v.(type) {
	case object.Number, object.String:
		return v, true
	default:
		return v, false
	}
}

// evalLogicalExpr implements `and`/`or` short-circuiting without coercing
// the returned operand to a Bool (spec.md §4.3.3).
func (e *Evaluator) evalLogicalExpr(x *ast.LogicalExpr, env *environment.Environment) (object.Value, error) {
	left, err := e.Eval(x.Left, env)
	if err != nil {
		return nil, err
	}

	if x.Operator.Type == lexer.Or {
		if object.Truthy(left) {
			return left, nil
		}
		return e.Eval(x.Right, env)
	}

	// and
	if !object.Truthy(left) {
		return left, nil
	}
	return e.Eval(x.Right, env)
}

func (e *Evaluator) evalVariableExpr(x *ast.VariableExpr, env *environment.Environment) (object.Value, error) {
	v, ok := env.Get(x.Name.Lexeme)
	if !ok {
		return nil, newError("Undefined variable: %s", x.Name.Lexeme)
	}
	return v, nil
}

func (e *Evaluator) evalAssignExpr(x *ast.AssignExpr, env *environment.Environment) (object.Value, error) {
	v, err := e.Eval(x.Value, env)
	if err != nil {
		return nil, err
	}
	if !env.Assign(x.Name.Lexeme, v) {
		return nil, newError("Undefined variable: %s", x.Name.Lexeme)
	}
	return v, nil
}

// evalCallExpr evaluates the callee and its arguments left to right, then
// dispatches on the callee's runtime variant (spec.md §4.3.4). A function
// call's fresh scope is parented to the function's captured closure, never
// to the caller's environment — this is the rule that makes closures work.
func (e *Evaluator) evalCallExpr(x *ast.CallExpr, env *environment.Environment) (object.Value, error) {
	callee, err := e.Eval(x.Callee, env)
	if err != nil {
		return nil, err
	}

	args := make([]object.Value, 0, len(x.Args))
	for _, argExpr := range x.Args {
		v, err := e.Eval(argExpr, env)
		if err != nil {
			return nil, err
		}
		args = append(args, v)
	}

	switch fn := callee.(type) {
	case *object.BuiltinFunction:
		if len(args) != fn.Arity {
			return nil, newError("Wrong number of arguments")
		}
		return fn.Fn(args)
	case *function.Function:
		if len(args) != fn.Arity() {
			return nil, newError("Wrong number of arguments")
		}
		return e.callFunction(fn, args)
	default:
		return nil, newError("%s is not a valid function", callee.Display())
	}
}

// callFunction binds args to fn's parameters in a fresh scope parented to
// fn.Closure, then runs the body's statements directly in that scope (not
// a further nested block scope) so that parameter names are visible
// exactly where spec.md §4.3.4 says they must be.
func (e *Evaluator) callFunction(fn *function.Function, args []object.Value) (object.Value, error) {
	callEnv := environment.New(fn.Closure)
	for i, param := range fn.Params {
		callEnv.Define(param.Lexeme, args[i])
	}

	var result object.Value = object.Nil{}
	for _, stmt := range fn.Body.Statements {
		v, err := e.Eval(stmt, callEnv)
		if err != nil {
			return nil, err
		}
		if rv, ok := v.(object.ReturnValue); ok {
			return rv.Value, nil
		}
		result = v
	}
	return result, nil
}
