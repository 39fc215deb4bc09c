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
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/launix-de/scmlite/scmlite"
)

// run reads every form out of src, evaluates each in turn in a fresh child
// frame of a single shared global frame, and prints the result of each
// top-level form that isn't Void (definitions and set! evaluate to Void, as
// do an empty begin and a cond with no matching clause). It stops at the
// first evaluation error, exactly as
// original_source/interpreter.c's interpret() aborts the whole run on the
// first failing top-level expression rather than skipping to the next one.
func run(src string, out io.Writer) (exitCode int) {
	tracer := scmlite.NewTracer()
	global := scmlite.NewGlobalFrame()
	currentForm := -1 // -1 means the failure happened while parsing, before any form was evaluated

	defer func() {
		if r := recover(); r != nil {
			evalErr, ok := r.(*scmlite.EvalError)
			if !ok {
				panic(r)
			}
			tracer.Error(currentForm, evalErr)
			fmt.Fprintf(out, "Evaluation error: %s\n", evalErr.Msg)
			exitCode = 1
		}
	}()

	forms := readForms(src)

	for i, form := range forms {
		currentForm = i
		tracer.Form(i, form)
		result := scmlite.Eval(form, scmlite.NewFrame(global))
		tracer.Result(i, result)
		if !result.IsVoid() {
			fmt.Fprintln(out, scmlite.Print(result))
		}
	}
	return 0
}

// readForms parses src up front so a syntax error (e.g. an unterminated
// list) is reported the same way an evaluation error is: as a single
// "Evaluation error: ..." line followed by a non-zero exit, since
// scmlite.ReadAll panics with the same *EvalError type Eval does.
func readForms(src string) []scmlite.Value {
	return scmlite.ReadAll(src)
}

func main() {
	src, err := io.ReadAll(os.Stdin)
	if err != nil {
		fmt.Fprintf(os.Stderr, "scmlite: error reading stdin: %v\n", err)
		os.Exit(1)
	}
	os.Exit(run(string(src), os.Stdout))
}
