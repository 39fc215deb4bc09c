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

// registerPairs installs cons, car, cdr and null?, the only pair primitives
// the language exposes. There is no set-car!/set-cdr!: pairs are immutable
// once consed (see SPEC_FULL.md's Non-goals).
func registerPairs(global *Frame) {
	Declare(global, Declaration{Name: "cons", MinParameter: 2, MaxParameter: 2, Fn: primCons})
	Declare(global, Declaration{Name: "car", MinParameter: 1, MaxParameter: 1, Fn: primCar})
	Declare(global, Declaration{Name: "cdr", MinParameter: 1, MaxParameter: 1, Fn: primCdr})
	Declare(global, Declaration{Name: "null?", MinParameter: 1, MaxParameter: 1, Fn: primIsNull})
}

func primCons(args []Value) Value {
	return Cons(args[0], args[1])
}

func primCar(args []Value) Value {
	if !args[0].IsPair() {
		fail(TypeError, "car: expected a pair, got %s", debugString(args[0]))
	}
	return Head(args[0])
}

func primCdr(args []Value) Value {
	if !args[0].IsPair() {
		fail(TypeError, "cdr: expected a pair, got %s", debugString(args[0]))
	}
	return Tail(args[0])
}

func primIsNull(args []Value) Value {
	return NewBool(args[0].IsNull())
}
