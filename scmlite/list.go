/*
Copyright (C) 2023  Carl-Philip Hänsch
Copyright (C) 2013  Pieter Kelchtermans (originally licensed unter WTFPL 2.0)

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

// Cons builds a new Pair with head a and tail d, mirroring Scheme's cons.
func Cons(a, d Value) Value { return NewPair(a, d) }

// Head returns the car of a Pair. Callers must check IsPair first; this is
// the uncooked list primitive used internally by the evaluator and by the
// car/cdr builtins (see prims_pairs.go) which add the user-facing arity and
// type checks.
func Head(v Value) Value { return v.Pair().Car }

// Tail returns the cdr of a Pair.
func Tail(v Value) Value { return v.Pair().Cdr }

// IsProperList reports whether v is Null or a chain of Pairs ending in Null.
func IsProperList(v Value) bool {
	for {
		if v.IsNull() {
			return true
		}
		if !v.IsPair() {
			return false
		}
		v = v.Pair().Cdr
	}
}

// Length counts the Pairs along the spine of a proper list.
func Length(v Value) int {
	n := 0
	for v.IsPair() {
		n++
		v = v.Pair().Cdr
	}
	return n
}

// Reverse returns a new proper list with the elements of v in reverse order.
// No structure is shared with the input, matching the original C
// implementation's reverse (see original_source/linkedlist.c): every pair is
// freshly consed rather than mutated in place.
func Reverse(v Value) Value {
	result := NewNull()
	for v.IsPair() {
		result = Cons(v.Pair().Car, result)
		v = v.Pair().Cdr
	}
	return result
}

// ToSlice flattens a proper list into a Go slice, in order.
func ToSlice(v Value) []Value {
	out := make([]Value, 0, Length(v))
	for v.IsPair() {
		out = append(out, v.Pair().Car)
		v = v.Pair().Cdr
	}
	return out
}

// FromSlice builds a proper list from a Go slice, preserving order.
func FromSlice(vs []Value) Value {
	result := NewNull()
	for i := len(vs) - 1; i >= 0; i-- {
		result = Cons(vs[i], result)
	}
	return result
}

// Iterate calls fn once per Pair along the spine of a proper list, in order.
func Iterate(v Value, fn func(Value)) {
	for v.IsPair() {
		fn(v.Pair().Car)
		v = v.Pair().Cdr
	}
}
