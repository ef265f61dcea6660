// Package interpreter reduces letcalc terms to runtime values.
//
// Evaluation is a pure function of the term and the environment: there is no
// interpreter-level state, no side effects, and no Go error path. Every
// failure mode surfaces as runtime.ErrorValue, which keeps Evaluate total
// over all finite inputs.
package interpreter

import (
	"letcalc/interpreter-go/pkg/ast"
	"letcalc/interpreter-go/pkg/runtime"
)

// Evaluate reduces term against env and returns exactly one value. Unbound
// variables, malformed nodes, and non-number operands all reduce to the
// error sentinel rather than aborting.
func Evaluate(term ast.Term, env *runtime.Environment) runtime.Value {
	switch n := term.(type) {
	case *ast.Var:
		if n == nil {
			return runtime.ErrorValue{}
		}
		if val, ok := env.Lookup(n.Name); ok {
			return val
		}
		return runtime.ErrorValue{}
	case *ast.Let:
		if n == nil || n.Value == nil || n.Body == nil {
			return runtime.ErrorValue{}
		}
		// The binding proceeds even when the bound expression reduced to the
		// error sentinel: later references observe ErrorValue, not "unbound".
		bound := Evaluate(n.Value, env)
		return Evaluate(n.Body, env.Extend(n.Name, bound))
	case *ast.Add:
		if n == nil || n.Left == nil || n.Right == nil {
			return runtime.ErrorValue{}
		}
		// Operands share the unmodified env and cannot affect each other;
		// left-to-right order is fixed for deterministic tracing.
		left := Evaluate(n.Left, env)
		right := Evaluate(n.Right, env)
		return addNumbers(left, right)
	case *ast.Number:
		if n == nil {
			return runtime.ErrorValue{}
		}
		return runtime.NumberValue{Val: n.Value}
	default:
		return runtime.ErrorValue{}
	}
}

// addNumbers combines two evaluated operands. Anything other than a pair of
// numbers, including the error sentinel itself, yields the error sentinel.
func addNumbers(a, b runtime.Value) runtime.Value {
	left, ok := a.(runtime.NumberValue)
	if !ok {
		return runtime.ErrorValue{}
	}
	right, ok := b.(runtime.NumberValue)
	if !ok {
		return runtime.ErrorValue{}
	}
	return runtime.NumberValue{Val: left.Val + right.Val}
}
