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

import "strings"

// Print renders a Value the way the top-level driver prints a top-level
// result: integers and reals as plain numbers, strings verbatim (they
// already carry their surrounding quotes, see parser.go), bools as #t/#f,
// lists parenthesized recursively, Null as (), and procedures opaquely.
// Grounded on original_source/interpreter.c's per-type printf in
// interpret(), and on scm/printer.go's String() for the recursive-pair
// shape — but this is the only printer the top-level driver calls; there is
// no separate debug-only variant used for program output.
func Print(v Value) string {
	switch v.Tag() {
	case TagInt, TagReal:
		return FormatNumber(v)
	case TagBool:
		if v.Bool() {
			return "#t"
		}
		return "#f"
	case TagStr:
		return v.Str()
	case TagSymbol:
		return string(v.Symbol())
	case TagNull:
		return "()"
	case TagPair:
		return printPair(v)
	case TagClosure:
		return "#<procedure>"
	case TagPrimitive:
		return "#<procedure>"
	case TagVoid, TagUnspecified:
		return ""
	default:
		return "#<unknown>"
	}
}

// printPair renders a (possibly improper) list, printing a dot before the
// final cdr when the list does not end in Null.
func printPair(v Value) string {
	var b strings.Builder
	b.WriteByte('(')
	first := true
	for {
		p := v.Pair()
		if !first {
			b.WriteByte(' ')
		}
		first = false
		b.WriteString(Print(p.Car))
		switch {
		case p.Cdr.IsNull():
			b.WriteByte(')')
			return b.String()
		case p.Cdr.IsPair():
			v = p.Cdr
		default:
			b.WriteString(" . ")
			b.WriteString(Print(p.Cdr))
			b.WriteByte(')')
			return b.String()
		}
	}
}
