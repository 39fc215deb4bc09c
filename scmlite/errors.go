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

import "fmt"

// Kind classifies an evaluation failure. Every failure the evaluator or a
// primitive can raise fits exactly one of these; there is no recovery path,
// only a single panic/recover at the top-level driver.
type Kind int

const (
	SyntaxError Kind = iota
	BadForm
	ArityError
	TypeError
	UnboundSymbol
	NotApplicable
)

func (k Kind) String() string {
	switch k {
	case SyntaxError:
		return "SyntaxError"
	case BadForm:
		return "BadForm"
	case ArityError:
		return "ArityError"
	case TypeError:
		return "TypeError"
	case UnboundSymbol:
		return "UnboundSymbol"
	case NotApplicable:
		return "NotApplicable"
	default:
		return "Error"
	}
}

// EvalError is the single error type every package-level panic carries.
// main.go recovers exactly one of these and prints "Evaluation error: <msg>".
type EvalError struct {
	Kind Kind
	Msg  string
}

func (e *EvalError) Error() string {
	return e.Msg
}

func fail(kind Kind, format string, args ...any) {
	panic(&EvalError{Kind: kind, Msg: fmt.Sprintf(format, args...)})
}
