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

// Frame is one link in the environment chain: a set of bindings plus a
// parent link. The chain's root is always the single global Frame. A Frame
// is created on entering a function body, let/let*/letrec, or a top-level
// expression, and stays alive for as long as any Closure captured it.
//
// Bindings are kept in a map rather than memcp's association list
// (scm/scm.go's Vars map[Symbol]Scmer uses the same representation): lookup
// still returns the most recently bound value and scoping still respects
// frame boundaries, since every construction site that could shadow a name
// within the same frame (let/let*/lambda parameter lists) rejects the
// duplicate before it ever reaches Bind.
type Frame struct {
	vars  map[Symbol]Value
	outer *Frame
}

// NewFrame creates a fresh, empty child frame of outer. outer is nil only
// for the single global frame.
func NewFrame(outer *Frame) *Frame {
	return &Frame{vars: make(map[Symbol]Value), outer: outer}
}

// Global walks up the chain to the root frame.
func (f *Frame) Global() *Frame {
	for f.outer != nil {
		f = f.outer
	}
	return f
}

// Bind prepends (installs) a new binding in f. Used by define, let, let*,
// letrec's initial Unspecified pass, and lambda application.
func (f *Frame) Bind(name Symbol, value Value) {
	f.vars[name] = value
}

// Lookup walks the frame chain from f up through parents to the global
// frame, returning the value of the first binding whose name matches
// textually. A binding whose value is Unspecified is treated as if absent
// from that frame (this is how letrec's forward-reference detection works:
// reading a sibling binding before its value is computed skips past the
// placeholder and, finding nothing else bound to that name, fails).
func (f *Frame) Lookup(name Symbol) Value {
	for cur := f; cur != nil; cur = cur.outer {
		if v, ok := cur.vars[name]; ok && !v.IsUnspecified() {
			return v
		}
	}
	fail(UnboundSymbol, "unbound symbol: %s", name)
	panic("unreachable")
}

// Assign implements set!: like Lookup, but replaces the value of the first
// binding found (including one still Unspecified) instead of reading it,
// and fails with UnboundSymbol if no frame in the chain has the name at all.
func (f *Frame) Assign(name Symbol, value Value) {
	for cur := f; cur != nil; cur = cur.outer {
		if _, ok := cur.vars[name]; ok {
			cur.vars[name] = value
			return
		}
	}
	fail(UnboundSymbol, "set!: unbound symbol: %s", name)
}
