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

// Each handler below receives the form's argument list (everything after the
// head symbol, still as an unevaluated Value list) and the environment it
// was invoked in. Grounded on original_source/interpreter.c's
// evalIf/evalLet/evalLetStar/evalLetRec/evalSet/evalBegin/evalAnd/evalOr/
// evalCond/evalQuote/evalDefine/evalLambda, with one correction to cond
// (see evalCond below).

// evalIf requires exactly three arguments: test, consequent, alternative.
// There is no optional-alternative form here.
func evalIf(args Value, env *Frame) Value {
	parts := ToSlice(args)
	if len(parts) != 3 {
		fail(ArityError, "if: expected exactly 3 arguments, got %d", len(parts))
	}
	test := Eval(parts[0], env)
	if test.Truthy() {
		return Eval(parts[1], env)
	}
	return Eval(parts[2], env)
}

func evalQuote(args Value, env *Frame) Value {
	parts := ToSlice(args)
	if len(parts) != 1 {
		fail(BadForm, "quote: expected exactly 1 argument, got %d", len(parts))
	}
	return parts[0]
}

// evalDefine handles both (define name expr) and the procedure-shorthand
// (define (name param...) body...). It always prepends the binding to the
// GLOBAL frame, regardless of the frame define is lexically invoked in —
// this language has no internal definitions distinct from top-level ones,
// so a define reached from inside a lambda body still lands in the global
// frame via env.Global(), not the lambda's ephemeral call frame. Always
// returns Void so the top-level driver prints nothing for a definition.
func evalDefine(args Value, env *Frame) Value {
	parts := ToSlice(args)
	if len(parts) < 1 {
		fail(BadForm, "define: missing target")
	}
	head := parts[0]
	if head.IsSymbol() {
		if len(parts) != 2 {
			fail(BadForm, "define: expected (define name expr)")
		}
		env.Global().Bind(head.Symbol(), Eval(parts[1], env))
		return NewVoid()
	}
	if head.IsPair() {
		name := Head(head)
		if !name.IsSymbol() {
			fail(BadForm, "define: procedure name must be a symbol")
		}
		params := parseParamList(Tail(head))
		body := parts[1:]
		if len(body) == 0 {
			fail(BadForm, "define: procedure body must not be empty")
		}
		env.Global().Bind(name.Symbol(), NewClosure(params, body, env))
		return NewVoid()
	}
	fail(BadForm, "define: malformed target")
	panic("unreachable")
}

func evalSet(args Value, env *Frame) Value {
	parts := ToSlice(args)
	if len(parts) != 2 {
		fail(BadForm, "set!: expected (set! name expr)")
	}
	if !parts[0].IsSymbol() {
		fail(BadForm, "set!: target must be a symbol")
	}
	env.Assign(parts[0].Symbol(), Eval(parts[1], env))
	return NewVoid()
}

func evalLambda(args Value, env *Frame) Value {
	parts := ToSlice(args)
	if len(parts) < 1 {
		fail(BadForm, "lambda: missing parameter list")
	}
	params := parseParamList(parts[0])
	body := parts[1:]
	if len(body) == 0 {
		fail(BadForm, "lambda: body must not be empty")
	}
	return NewClosure(params, body, env)
}

// parseParamList turns a list of symbols ((a b c)) into []Symbol, rejecting
// anything malformed or duplicated so that Bind can never silently shadow a
// parameter within the same frame (see env.go's doc comment on Frame).
func parseParamList(v Value) []Symbol {
	items := ToSlice(v)
	seen := make(map[Symbol]bool, len(items))
	params := make([]Symbol, len(items))
	for i, item := range items {
		if !item.IsSymbol() {
			fail(BadForm, "parameter list must contain only symbols")
		}
		s := item.Symbol()
		if seen[s] {
			fail(BadForm, "duplicate parameter: %s", s)
		}
		seen[s] = true
		params[i] = s
	}
	return params
}

// bindingPair parses one (name expr) entry shared by let/let*/letrec.
func bindingPair(v Value) (Symbol, Value) {
	if !v.IsPair() {
		fail(BadForm, "malformed binding")
	}
	parts := ToSlice(v)
	if len(parts) != 2 || !parts[0].IsSymbol() {
		fail(BadForm, "malformed binding: expected (name expr)")
	}
	return parts[0].Symbol(), parts[1]
}

func evalLet(args Value, env *Frame) Value {
	parts := ToSlice(args)
	if len(parts) < 1 {
		fail(BadForm, "let: missing binding list")
	}
	bindings := ToSlice(parts[0])
	body := parts[1:]
	child := NewFrame(env)
	seen := make(map[Symbol]bool, len(bindings))
	for _, b := range bindings {
		name, expr := bindingPair(b)
		if seen[name] {
			fail(BadForm, "let: duplicate binding: %s", name)
		}
		seen[name] = true
		// every init expression is evaluated in the OUTER environment, so
		// a let body can never see its own bindings while computing them.
		child.Bind(name, Eval(expr, env))
	}
	return evalSequence(body, child)
}

func evalLetStar(args Value, env *Frame) Value {
	parts := ToSlice(args)
	if len(parts) < 1 {
		fail(BadForm, "let*: missing binding list")
	}
	bindings := ToSlice(parts[0])
	body := parts[1:]
	cur := env
	seen := make(map[Symbol]bool, len(bindings))
	for _, b := range bindings {
		name, expr := bindingPair(b)
		if seen[name] {
			fail(BadForm, "let*: duplicate binding: %s", name)
		}
		seen[name] = true
		child := NewFrame(cur)
		// each init sees all bindings established so far, including this
		// one's own predecessors, but not itself.
		child.Bind(name, Eval(expr, cur))
		cur = child
	}
	if cur == env {
		cur = NewFrame(env)
	}
	return evalSequence(body, cur)
}

func evalLetrec(args Value, env *Frame) Value {
	parts := ToSlice(args)
	if len(parts) < 1 {
		fail(BadForm, "letrec: missing binding list")
	}
	bindings := ToSlice(parts[0])
	body := parts[1:]
	child := NewFrame(env)
	names := make([]Symbol, len(bindings))
	inits := make([]Value, len(bindings))
	seen := make(map[Symbol]bool, len(bindings))
	for i, b := range bindings {
		name, expr := bindingPair(b)
		if seen[name] {
			fail(BadForm, "letrec: duplicate binding: %s", name)
		}
		seen[name] = true
		names[i] = name
		inits[i] = expr
		// placeholder first, so mutually-recursive lambda bodies can refer
		// to siblings that haven't been computed yet without immediately
		// resolving a stale read (see Frame.Lookup's Unspecified skip).
		child.Bind(name, NewUnspecified())
	}
	for i, name := range names {
		child.Bind(name, Eval(inits[i], child))
	}
	return evalSequence(body, child)
}

func evalBegin(args Value, env *Frame) Value {
	return evalSequence(ToSlice(args), env)
}

// evalCond evaluates clauses in order: (test expr...) or (else expr...).
// The first clause whose test is truthy wins; its body is evaluated in
// order and the last expression's value returned. A clause with a truthy
// test but no body expressions evaluates to the test's own value. Unlike
// original_source/interpreter.c's evalCond — which keeps evaluating and
// overwriting its result on every clause including ones whose test is #f —
// this stops at the first truthy clause and never touches the ones after
// it, and a clause whose test is #f contributes nothing to the result.
func evalCond(args Value, env *Frame) Value {
	for _, clauseV := range ToSlice(args) {
		clause := ToSlice(clauseV)
		if len(clause) == 0 {
			fail(BadForm, "cond: empty clause")
		}
		var test Value
		if clause[0].SymbolEquals("else") {
			test = NewBool(true)
		} else {
			test = Eval(clause[0], env)
		}
		if !test.Truthy() {
			continue
		}
		if len(clause) == 1 {
			return test
		}
		return evalSequence(clause[1:], env)
	}
	return NewVoid()
}

func evalAnd(args Value, env *Frame) Value {
	parts := ToSlice(args)
	result := NewBool(true)
	for _, expr := range parts {
		result = Eval(expr, env)
		if !result.Truthy() {
			return result
		}
	}
	return result
}

func evalOr(args Value, env *Frame) Value {
	parts := ToSlice(args)
	for _, expr := range parts {
		v := Eval(expr, env)
		if v.Truthy() {
			return v
		}
	}
	return NewBool(false)
}
