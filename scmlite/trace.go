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
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/google/uuid"
)

// Tracer prints an opt-in, human-oriented trace of each top-level form as it
// is read and evaluated. It is gated entirely behind the SCMLITE_TRACE
// environment variable and writes only to stderr, never stdout, so it can
// never perturb the program's testable stdout/exit-code contract — this is
// purely a debugging aid, the smaller analogue of what scm/trace.go does
// for memcp's query engine. A per-process uuid lets output from concurrent
// runs (e.g. under a test harness piping several scripts through in
// parallel) be told apart in a shared log.
type Tracer struct {
	enabled bool
	runID   uuid.UUID
	out     io.Writer
}

// NewTracer builds a Tracer, enabled only when SCMLITE_TRACE is set to a
// non-empty value. Disabled Tracers are free to call methods on: every
// method no-ops immediately when t.enabled is false.
func NewTracer() *Tracer {
	if os.Getenv("SCMLITE_TRACE") == "" {
		return &Tracer{enabled: false}
	}
	return &Tracer{enabled: true, runID: uuid.New(), out: os.Stderr}
}

func (t *Tracer) prefix() string {
	return color.New(color.FgHiBlack).Sprintf("[%s]", t.runID.String()[:8])
}

// Form logs the n-th top-level form about to be evaluated.
func (t *Tracer) Form(n int, expr Value) {
	if !t.enabled {
		return
	}
	fmt.Fprintf(t.out, "%s %s form %d: %s\n", t.prefix(), color.New(color.FgCyan).Sprint("read"), n, Print(expr))
}

// Result logs the value a top-level form evaluated to.
func (t *Tracer) Result(n int, result Value) {
	if !t.enabled {
		return
	}
	fmt.Fprintf(t.out, "%s %s form %d: %s\n", t.prefix(), color.New(color.FgGreen).Sprint("value"), n, debugString(result))
}

// Error logs an evaluation failure that aborted the run.
func (t *Tracer) Error(n int, err *EvalError) {
	if !t.enabled {
		return
	}
	fmt.Fprintf(t.out, "%s %s form %d: [%s] %s\n", t.prefix(), color.New(color.FgRed).Sprint("error"), n, err.Kind, err.Msg)
}
