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

import (
	"fmt"
	"strconv"
)

// Tag discriminates the variants of Value. Software contract: a Value's
// payload fields are only ever populated in the combination its Tag implies;
// the evaluator never inspects a field without checking Tag first.
type Tag uint8

const (
	TagInt Tag = iota
	TagReal
	TagBool
	TagStr
	TagSymbol
	TagNull
	TagPair
	TagClosure
	TagPrimitive
	TagVoid
	TagUnspecified
)

// Symbol is a variable name or special-form head. Equality is textual.
type Symbol string

// Pair is a cons cell: an ordered pair whose Cdr, for a proper list, is
// itself Null or another Pair.
type Pair struct {
	Car Value
	Cdr Value
}

// Closure is a first-class function value: its formal parameters, its body
// (a sequence of expressions evaluated in order, last one returned), and the
// Frame it was created in. Re-reading or re-binding variables in that Frame
// after the closure was built is visible inside the closure's body.
type Closure struct {
	Params []Symbol
	Body   []Value
	Env    *Frame
}

// Primitive is a built-in operator: a function over an already-evaluated
// argument list. Fn is the wrapper Declare builds around the Declaration's
// function, so the arity check happens inside Fn; Apply only calls it.
type Primitive struct {
	Name string
	Fn   func(args []Value) Value
}

// Value is the tagged runtime value every expression evaluates to. It is a
// small, immutable-once-built struct so that Values can be copied and
// compared by Go value semantics; the only things ever mutated after
// construction are binding cells inside a Frame (by define, set! and letrec,
// see env.go), never a Value itself.
type Value struct {
	tag  Tag
	i    int64
	f    float64
	s    string
	sym  Symbol
	pair *Pair
	clo  *Closure
	prim *Primitive
}

func (v Value) Tag() Tag { return v.tag }

//
// Constructors
//

func NewInt(i int64) Value    { return Value{tag: TagInt, i: i} }
func NewReal(f float64) Value { return Value{tag: TagReal, f: f} }
func NewBool(b bool) Value {
	if b {
		return Value{tag: TagBool, i: 1}
	}
	return Value{tag: TagBool, i: 0}
}
func NewStr(s string) Value    { return Value{tag: TagStr, s: s} }
func NewSymbol(s string) Value { return Value{tag: TagSymbol, sym: Symbol(s)} }
func NewNull() Value           { return Value{tag: TagNull} }
func NewVoid() Value           { return Value{tag: TagVoid} }
func NewUnspecified() Value    { return Value{tag: TagUnspecified} }

func NewPair(car, cdr Value) Value { return Value{tag: TagPair, pair: &Pair{Car: car, Cdr: cdr}} }

func NewClosure(params []Symbol, body []Value, env *Frame) Value {
	return Value{tag: TagClosure, clo: &Closure{Params: params, Body: body, Env: env}}
}

func NewPrimitive(name string, fn func(args []Value) Value) Value {
	return Value{tag: TagPrimitive, prim: &Primitive{Name: name, Fn: fn}}
}

//
// Accessors. Each panics with a plain string (not an *EvalError) if the tag
// doesn't match; callers
// within this package always check Tag()/predicate helpers first, so a panic
// here indicates an internal bug in this package, not user input.
//

func (v Value) IsInt() bool         { return v.tag == TagInt }
func (v Value) IsReal() bool        { return v.tag == TagReal }
func (v Value) IsNumber() bool      { return v.tag == TagInt || v.tag == TagReal }
func (v Value) IsBool() bool        { return v.tag == TagBool }
func (v Value) IsStr() bool         { return v.tag == TagStr }
func (v Value) IsSymbol() bool      { return v.tag == TagSymbol }
func (v Value) IsNull() bool        { return v.tag == TagNull }
func (v Value) IsPair() bool        { return v.tag == TagPair }
func (v Value) IsClosure() bool     { return v.tag == TagClosure }
func (v Value) IsPrimitive() bool   { return v.tag == TagPrimitive }
func (v Value) IsVoid() bool        { return v.tag == TagVoid }
func (v Value) IsUnspecified() bool { return v.tag == TagUnspecified }

func (v Value) Int() int64 {
	if v.tag != TagInt {
		panic("scmlite: Int() on non-integer Value")
	}
	return v.i
}

func (v Value) Real() float64 {
	if v.tag != TagReal {
		panic("scmlite: Real() on non-real Value")
	}
	return v.f
}

// Float64 returns the numeric value as a float64 regardless of whether it is
// an Int or a Real, for use by the numeric tower in the arithmetic
// primitives. It panics if v is not a number.
func (v Value) Float64() float64 {
	switch v.tag {
	case TagInt:
		return float64(v.i)
	case TagReal:
		return v.f
	default:
		panic("scmlite: Float64() on non-numeric Value")
	}
}

func (v Value) Bool() bool {
	if v.tag != TagBool {
		panic("scmlite: Bool() on non-bool Value")
	}
	return v.i != 0
}

func (v Value) Str() string {
	if v.tag != TagStr {
		panic("scmlite: Str() on non-string Value")
	}
	return v.s
}

func (v Value) Symbol() Symbol {
	if v.tag != TagSymbol {
		panic("scmlite: Symbol() on non-symbol Value")
	}
	return v.sym
}

func (v Value) Pair() *Pair {
	if v.tag != TagPair {
		panic("scmlite: Pair() on non-pair Value")
	}
	return v.pair
}

func (v Value) Closure() *Closure {
	if v.tag != TagClosure {
		panic("scmlite: Closure() on non-closure Value")
	}
	return v.clo
}

func (v Value) Primitive() *Primitive {
	if v.tag != TagPrimitive {
		panic("scmlite: Primitive() on non-primitive Value")
	}
	return v.prim
}

// Truthy implements the language's strict truthiness: only #f is false.
func (v Value) Truthy() bool {
	return !(v.tag == TagBool && v.i == 0)
}

// SymbolEquals reports whether v is a Symbol whose text equals name, the
// textual comparison the evaluator uses to recognize special-form heads and
// Frame bindings alike.
func (v Value) SymbolEquals(name string) bool {
	return v.tag == TagSymbol && string(v.sym) == name
}

// FormatNumber renders integers as plain decimal digits and reals with a
// fixed six fractional digits, matching original_source/interpreter.c's
// printf("%f \n", ...) for doubles. A whole-number Real (e.g. 3.0) must
// still print with a fractional part so it stays visibly distinct from an
// Integer; the shortest round-trip form strconv.FormatFloat's -1 precision
// produces would collapse that distinction (3.0 -> "3").
func FormatNumber(v Value) string {
	switch v.tag {
	case TagInt:
		return strconv.FormatInt(v.i, 10)
	case TagReal:
		return strconv.FormatFloat(v.f, 'f', 6, 64)
	default:
		panic("scmlite: FormatNumber on non-numeric Value")
	}
}

// debugString is used only by panic messages and trace output, never by the
// canonical printer (see printer.go for that contract).
func debugString(v Value) string {
	switch v.tag {
	case TagInt, TagReal:
		return FormatNumber(v)
	case TagBool:
		if v.Truthy() {
			return "#t"
		}
		return "#f"
	case TagStr:
		return v.s
	case TagSymbol:
		return string(v.sym)
	case TagNull:
		return "()"
	case TagPair:
		return fmt.Sprintf("(%s . %s)", debugString(v.pair.Car), debugString(v.pair.Cdr))
	case TagClosure:
		return "#<procedure>"
	case TagPrimitive:
		return "#<primitive:" + v.prim.Name + ">"
	case TagVoid:
		return "#<void>"
	case TagUnspecified:
		return "#<unspecified>"
	default:
		return "#<unknown>"
	}
}
