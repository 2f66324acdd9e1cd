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

package test

import (
	"fmt"
	"strings"
)

// RingWriter is an implementation of the io.Writer interface that keeps only
// the most recent lines written to it. It should be used to capture the tail
// of output that is too long to compare in full.
//
// Lines may be terminated by "\n" or "\r\n". A line with no terminator is
// held until a later write completes it.
type RingWriter struct {
	lines   []string
	cursor  int
	wrapped bool
	partial strings.Builder
}

// NewRingWriter is the preferred method of initialisation for the RingWriter
// type. The size argument is the number of lines to keep.
func NewRingWriter(size int) (*RingWriter, error) {
	if size <= 0 {
		return nil, fmt.Errorf("invalid size for RingWriter (%d)", size)
	}
	return &RingWriter{
		lines: make([]string, size),
	}, nil
}

// Lines returns the kept lines, oldest first. The line terminators are not
// included and neither is any partial line.
func (r *RingWriter) Lines() []string {
	if !r.wrapped {
		return append([]string{}, r.lines[:r.cursor]...)
	}
	l := append([]string{}, r.lines[r.cursor:]...)
	return append(l, r.lines[:r.cursor]...)
}

// String returns the kept lines each followed by "\n" and then any partial
// line.
func (r *RingWriter) String() string {
	var s strings.Builder
	for _, l := range r.Lines() {
		s.WriteString(l)
		s.WriteString("\n")
	}
	s.WriteString(r.partial.String())
	return s.String()
}

// Reset forgets everything written so far.
func (r *RingWriter) Reset() {
	r.cursor = 0
	r.wrapped = false
	r.partial.Reset()
}

// Write implements io.Writer
func (r *RingWriter) Write(p []byte) (n int, err error) {
	s := string(p)
	for {
		i := strings.IndexByte(s, '\n')
		if i == -1 {
			break
		}
		r.partial.WriteString(s[:i])
		r.push(strings.TrimSuffix(r.partial.String(), "\r"))
		r.partial.Reset()
		s = s[i+1:]
	}
	r.partial.WriteString(s)
	return len(p), nil
}

func (r *RingWriter) push(line string) {
	r.lines[r.cursor] = line
	r.cursor++
	if r.cursor >= len(r.lines) {
		r.cursor = 0
		r.wrapped = true
	}
}
