/*
Copyright (C) 2023  Carl-Philip Hänsch

	This program is free software: you can redistribute it and/or modify
	it under the terms of the GNU General Public License as published by
	the Free Software Foundation, either version 3 of the License, or
	(at your option) any later version.

	This program is distributed in the hope that it will be useful,
	but WITHOUT ANY WARRANTY; without even the implied warranty of
	MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
	GNU General Public License for more details.

	You should have received a copy of the GNU General Public License
	along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/
package scmlite

// specialForms maps a special-form head to its handler. Recognition happens
// by textual match against this table BEFORE any environment lookup, so
// none of these names are ever shadowable by a user binding — matching
// original_source/interpreter.c's eval(), which switches on the head symbol
// ahead of lookUpSymbol.
var specialForms map[Symbol]func(args Value, env *Frame) Value

func init() {
	specialForms = map[Symbol]func(args Value, env *Frame) Value{
		"if":     evalIf,
		"quote":  evalQuote,
		"define": evalDefine,
		"set!":   evalSet,
		"lambda": evalLambda,
		"let":    evalLet,
		"let*":   evalLetStar,
		"letrec": evalLetrec,
		"begin":  evalBegin,
		"cond":   evalCond,
		"and":    evalAnd,
		"or":     evalOr,
	}
}

// Eval evaluates one expression in env and returns its value. It never
// returns an error; all failures are reported via panic(*EvalError), caught
// once at the top-level driver in main.go.
func Eval(expr Value, env *Frame) Value {
	switch expr.Tag() {
	case TagInt, TagReal, TagBool, TagStr, TagVoid, TagUnspecified, TagClosure, TagPrimitive:
		return expr
	case TagSymbol:
		return env.Lookup(expr.Symbol())
	case TagNull:
		fail(BadForm, "cannot evaluate empty list")
	case TagPair:
		head := Head(expr)
		if head.IsSymbol() {
			if handler, ok := specialForms[head.Symbol()]; ok {
				return handler(Tail(expr), env)
			}
		}
		fn := Eval(head, env)
		argExprs := ToSlice(Tail(expr))
		args := make([]Value, len(argExprs))
		for i, a := range argExprs {
			args[i] = Eval(a, env)
		}
		return Apply(fn, args)
	}
	fail(BadForm, "cannot evaluate expression")
	panic("unreachable")
}

// Apply calls fn (a Closure or Primitive) with already-evaluated args.
func Apply(fn Value, args []Value) Value {
	switch {
	case fn.IsPrimitive():
		return fn.Primitive().Fn(args)
	case fn.IsClosure():
		clo := fn.Closure()
		if len(args) != len(clo.Params) {
			fail(ArityError, "#<procedure>: expected %d arguments, got %d", len(clo.Params), len(args))
		}
		callFrame := NewFrame(clo.Env)
		for i, p := range clo.Params {
			callFrame.Bind(p, args[i])
		}
		return evalSequence(clo.Body, callFrame)
	default:
		fail(NotApplicable, "cannot apply non-procedure: %s", debugString(fn))
		panic("unreachable")
	}
}

// evalSequence evaluates each expression in body in order, in env, returning
// the value of the last one. An empty body evaluates to Void.
func evalSequence(body []Value, env *Frame) Value {
	result := NewVoid()
	for _, expr := range body {
		result = Eval(expr, env)
	}
	return result
}
