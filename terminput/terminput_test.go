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

package terminput

import (
	"errors"
	"io"
	"slices"
	"testing"
	"time"

	"github.com/jetsetilly/presshere/curated"
	"github.com/jetsetilly/presshere/test"
	"github.com/jetsetilly/presshere/userinput"
)

func TestDecode(t *testing.T) {
	keys, quit := decode([]byte("aZ 1\r"))
	test.ExpectFailure(t, quit)
	test.ExpectSuccess(t, slices.Equal(keys, []userinput.Key{
		userinput.KeyA, userinput.KeyZ, userinput.KeySpace, userinput.Key1, userinput.KeyReturn,
	}))

	keys, quit = decode([]byte("\x1b[A\x1b[D\x1bOC\x1b"))
	test.ExpectFailure(t, quit)
	test.ExpectSuccess(t, slices.Equal(keys, []userinput.Key{
		userinput.KeyUp, userinput.KeyLeft, userinput.KeyRight, userinput.KeyEscape,
	}))

	// nothing after the quit key is decoded
	keys, quit = decode([]byte("w\x03s"))
	test.ExpectSuccess(t, quit)
	test.ExpectSuccess(t, slices.Equal(keys, []userinput.Key{userinput.KeyW}))

	_, quit = decode([]byte{ctrlD})
	test.ExpectSuccess(t, quit)

	// unprintable characters are ignored
	keys, _ = decode([]byte{0x01, 0x02})
	test.ExpectEquality(t, len(keys), 0)
}

func TestHolder(t *testing.T) {
	h := newHolder(100 * time.Millisecond)
	t0 := time.Now()

	test.ExpectSuccess(t, h.seen(userinput.KeyA, t0))
	test.ExpectFailure(t, h.seen(userinput.KeyA, t0.Add(50*time.Millisecond)))
	test.ExpectSuccess(t, h.seen(userinput.KeyB, t0.Add(60*time.Millisecond)))

	// A was last seen at 50ms
	test.ExpectEquality(t, len(h.expire(t0.Add(149*time.Millisecond))), 0)
	released := h.expire(t0.Add(150 * time.Millisecond))
	test.ExpectSuccess(t, slices.Equal(released, []userinput.Key{userinput.KeyA}))
	test.ExpectSuccess(t, slices.Equal(h.held(), []userinput.Key{userinput.KeyB}))

	released = h.expire(t0.Add(time.Second))
	test.ExpectSuccess(t, slices.Equal(released, []userinput.Key{userinput.KeyB}))
	test.ExpectEquality(t, len(h.held()), 0)
}

// clock is a time source that only moves when told to
type clock struct {
	t time.Time
}

func (c *clock) now() time.Time {
	return c.t
}

func newTestSource(t *testing.T) (*Source, *clock, *io.PipeWriter) {
	t.Helper()
	r, w := io.Pipe()
	src := newSource(r, r.Close, 100*time.Millisecond)
	clk := &clock{t: time.Now()}
	src.now = clk.now
	t.Cleanup(func() {
		test.ExpectSuccess(t, src.Destroy())
	})
	return src, clk, w
}

func TestService(t *testing.T) {
	src, clk, _ := newTestSource(t)
	c := userinput.NewCollector()

	src.chunks <- []byte("w")
	ok, err := src.Service(c)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, ok)
	s := c.Tick(time.Millisecond)
	test.ExpectSuccess(t, s.Keys().JustPressed(userinput.KeyW))

	// auto-repeat keeps the key held without a new press
	clk.t = clk.t.Add(50 * time.Millisecond)
	src.chunks <- []byte("w")
	_, err = src.Service(c)
	test.ExpectSuccess(t, err)
	s = c.Tick(time.Millisecond)
	test.ExpectSuccess(t, s.Keys().Pressed(userinput.KeyW))
	test.ExpectFailure(t, s.Keys().JustPressed(userinput.KeyW))

	// released once the hold duration has passed
	clk.t = clk.t.Add(100 * time.Millisecond)
	_, err = src.Service(c)
	test.ExpectSuccess(t, err)
	s = c.Tick(time.Millisecond)
	test.ExpectFailure(t, s.Keys().Pressed(userinput.KeyW))
	test.ExpectSuccess(t, s.Keys().JustReleased(userinput.KeyW))

	// quit key
	src.chunks <- []byte("\x03")
	ok, err = src.Service(c)
	test.ExpectSuccess(t, err)
	test.ExpectFailure(t, ok)
}

func TestReader(t *testing.T) {
	src, _, w := newTestSource(t)

	go w.Write([]byte("\x1b[A"))

	select {
	case b := <-src.chunks:
		test.ExpectEquality(t, string(b), "\x1b[A")
	case <-time.After(time.Second):
		t.Fatal("no bytes received from reader")
	}
}

func TestReaderError(t *testing.T) {
	src, _, w := newTestSource(t)
	w.CloseWithError(io.ErrUnexpectedEOF)

	// wait for the reader to fail
	select {
	case err := <-src.errs:
		src.errs <- err
	case <-time.After(time.Second):
		t.Fatal("no error from reader")
	}

	ok, err := src.Service(userinput.NewCollector())
	test.ExpectFailure(t, ok)
	test.ExpectSuccess(t, curated.Is(err, ReadError))
	test.ExpectSuccess(t, errors.Is(err, io.ErrUnexpectedEOF))
}
