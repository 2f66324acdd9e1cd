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
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/jetsetilly/presshere/userinput"
)

const (
	ctrlC     = 0x03
	ctrlD     = 0x04
	tab       = 0x09
	lineFeed  = 0x0a
	carriage  = 0x0d
	escape    = 0x1b
	backspace = 0x7f
)

// cursor key sequences. the "ESC O" forms are sent when the terminal is in
// application cursor mode
var arrows = map[string]userinput.Key{
	"\x1b[A": userinput.KeyUp,
	"\x1b[B": userinput.KeyDown,
	"\x1b[C": userinput.KeyRight,
	"\x1b[D": userinput.KeyLeft,
	"\x1bOA": userinput.KeyUp,
	"\x1bOB": userinput.KeyDown,
	"\x1bOC": userinput.KeyRight,
	"\x1bOD": userinput.KeyLeft,
}

// decode the bytes read from the terminal into a list of keys. quit is true
// if the bytes contain a Ctrl-C or Ctrl-D. keys after the quit character are
// not decoded
func decode(b []byte) (keys []userinput.Key, quit bool) {
	for len(b) > 0 {
		switch b[0] {
		case ctrlC, ctrlD:
			return keys, true
		case tab:
			keys = append(keys, userinput.KeyTab)
		case lineFeed, carriage:
			keys = append(keys, userinput.KeyReturn)
		case backspace:
			keys = append(keys, userinput.KeyBackspace)
		case ' ':
			keys = append(keys, userinput.KeySpace)
		case escape:
			if len(b) >= 3 {
				if k, ok := arrows[string(b[:3])]; ok {
					keys = append(keys, k)
					b = b[3:]
					continue
				}
			}
			keys = append(keys, userinput.KeyEscape)
		default:
			r, sz := utf8.DecodeRune(b)
			if unicode.IsPrint(r) {
				keys = append(keys, userinput.Key(strings.ToUpper(string(r))))
			}
			b = b[sz:]
			continue
		}
		b = b[1:]
	}

	return keys, false
}
