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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes (and
// sub-modes) and allows different flags for each mode.
//
// Unlike flag.FlagSet, the arguments are supplied with NewArgs() and Parse()
// is called with no arguments:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("SDL", "TERM", "DOT")
//	p, err := md.Parse()
//
// Sub-mode comparisons are case insensitive and the first sub-mode is the
// default. After a call to Parse() the Mode() function returns the selected
// mode. Calling NewMode() prepares the Modes instance for the flags and
// arguments of the selected mode:
//
//	switch md.Mode() {
//	case "TERM":
//		md.NewMode()
//		hold := md.AddDuration("hold", 100*time.Millisecond, "key hold duration")
//		p, err := md.Parse()
//		...
//	}
//
// Parse() returns ParseHelp if the help flag was specified. The help message
// has already been written to the Output field of the Modes instance and the
// program should exit quietly.
package modalflag
