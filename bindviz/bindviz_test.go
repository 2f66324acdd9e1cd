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

package bindviz_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/jetsetilly/presshere/axis"
	"github.com/jetsetilly/presshere/bindviz"
	"github.com/jetsetilly/presshere/curated"
	"github.com/jetsetilly/presshere/test"
	"github.com/jetsetilly/presshere/trigger"
	"github.com/jetsetilly/presshere/userinput"
)

func TestWrite(t *testing.T) {
	tw := &test.Writer{}

	b := axis.From(axis.Pair{
		Negative: axis.Key(userinput.KeyA),
		Positive: axis.Key(userinput.KeyD),
	}).Deadzone(0.1).Unwrap()

	err := bindviz.Write(tw, b)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, strings.HasPrefix(tw.String(), "digraph"))

	tw.Clear()
	err = bindviz.Write(tw, trigger.And{A: trigger.Key(userinput.KeyA), B: trigger.Constant(true)})
	test.ExpectSuccess(t, err)
	test.ExpectInequality(t, tw.String(), "")
}

func TestNilBinding(t *testing.T) {
	err := bindviz.Write(&test.Writer{}, nil)
	test.ExpectSuccess(t, curated.Is(err, bindviz.NilBinding))
}

type failWriter struct{}

func (failWriter) Write(p []byte) (int, error) {
	return 0, errors.New("write failed")
}

func TestWriteError(t *testing.T) {
	err := bindviz.Write(failWriter{}, trigger.Key(userinput.KeyA))
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.IsAny(err))
}
