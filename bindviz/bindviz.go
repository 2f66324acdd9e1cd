// This file is part of Presshere.
//
// Presshere is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Presshere is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Presshere.  If not, see <https://www.gnu.org/licenses/>.

// Package bindviz writes the structure of a binding tree as a graphviz dot
// file. Useful for checking that a binding built with a chain of builder
// calls has the intended shape.
//
//	presshere DOT -binding movex movex.dot
//	dot -Tsvg movex.dot > movex.svg
package bindviz

import (
	"io"

	"github.com/bradleyjkemp/memviz"

	"github.com/jetsetilly/presshere/curated"
)

// Sentinal error pattern returned by Write().
const NilBinding = "bindviz: nil binding"

// errorWriter remembers the first error returned by the underlying writer.
// memviz does not report write errors
type errorWriter struct {
	w   io.Writer
	err error
}

func (ew *errorWriter) Write(p []byte) (int, error) {
	if ew.err != nil {
		return 0, ew.err
	}
	n, err := ew.w.Write(p)
	ew.err = err
	return n, err
}

// Write the binding to the writer in the dot format. The binding should be a
// trigger.Binding or an axis.Binding but any value will be accepted.
func Write(w io.Writer, binding any) error {
	if binding == nil {
		return curated.Errorf(NilBinding)
	}

	ew := &errorWriter{w: w}
	memviz.Map(ew, &binding)
	if ew.err != nil {
		return curated.Errorf("bindviz: %v", ew.err)
	}

	return nil
}
