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

package modalflag_test

import (
	"io"
	"testing"
	"time"

	"github.com/jetsetilly/presshere/modalflag"
	"github.com/jetsetilly/presshere/test"
)

func TestNoModesNoFlags(t *testing.T) {
	md := modalflag.Modes{Output: io.Discard}
	md.NewArgs([]string{})

	p, err := md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectEquality(t, md.Mode(), "")
	test.ExpectEquality(t, md.Path(), "")
}

func TestNoModes(t *testing.T) {
	md := modalflag.Modes{Output: io.Discard}
	md.NewArgs([]string{"-test", "1", "2"})
	testFlag := md.AddBool("test", false, "test flag")
	test.ExpectEquality(t, *testFlag, false)

	p, err := md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectEquality(t, md.Mode(), "")
	test.ExpectEquality(t, *testFlag, true)
	test.ExpectEquality(t, len(md.RemainingArgs()), 2)
	test.ExpectEquality(t, md.GetArg(1), "2")
	test.ExpectEquality(t, md.GetArg(2), "")
}

func TestNoHelpAvailable(t *testing.T) {
	tw := &test.Writer{}

	md := modalflag.Modes{Output: tw}
	md.NewArgs([]string{"-help"})

	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)
	test.ExpectEquality(t, tw.String(), "No help available\n")
}

func TestHelpFlags(t *testing.T) {
	tw := &test.Writer{}

	md := modalflag.Modes{Output: tw}
	md.NewArgs([]string{"-help"})
	md.AddBool("test", true, "test flag")

	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)
	test.ExpectEquality(t, tw.String(), "Usage:\n"+
		"  -test\n"+
		"    \ttest flag (default true)\n")
}

func TestHelpModes(t *testing.T) {
	tw := &test.Writer{}

	md := modalflag.Modes{Output: tw}
	md.NewArgs([]string{"-help"})
	md.AddSubModes("sdl", "term", "dot")

	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)
	test.ExpectEquality(t, tw.String(), "Usage:\n"+
		"  available sub-modes: SDL, TERM, DOT\n"+
		"    default: SDL\n")
}

func TestHelpFlagsAndModes(t *testing.T) {
	tw := &test.Writer{}

	md := modalflag.Modes{Output: tw}
	md.NewArgs([]string{"-help"})
	md.AddBool("test", true, "test flag")
	md.AddSubModes("A", "B")
	md.AdditionalHelp("more help")

	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)
	test.ExpectEquality(t, tw.String(), "Usage:\n"+
		"  -test\n"+
		"    \ttest flag (default true)\n"+
		"\n"+
		"  available sub-modes: A, B\n"+
		"    default: A\n"+
		"\n"+
		"more help\n")
}

func TestDefaultMode(t *testing.T) {
	md := modalflag.Modes{Output: io.Discard}
	md.NewArgs([]string{"file"})
	md.AddSubModes("SDL", "TERM")

	p, err := md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectEquality(t, md.Mode(), "SDL")
	test.ExpectEquality(t, md.GetArg(0), "file")
}

func TestSubModeFlags(t *testing.T) {
	md := modalflag.Modes{Output: io.Discard}
	md.NewArgs([]string{"-fps", "30", "term", "-hold", "250ms", "extra"})
	fps := md.AddInt("fps", 60, "")
	md.AddSubModes("SDL", "TERM")

	p, err := md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectEquality(t, *fps, 30)
	test.ExpectEquality(t, md.Mode(), "TERM")

	md.NewMode()
	hold := md.AddDuration("hold", 100*time.Millisecond, "")
	p, err = md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectEquality(t, *hold, 250*time.Millisecond)
	test.ExpectEquality(t, md.Path(), "TERM")
	test.ExpectEquality(t, md.GetArg(0), "extra")

	var visited []string
	md.Visit(func(flag string, value string) {
		visited = append(visited, flag+"="+value)
	})
	test.ExpectEquality(t, len(visited), 1)
	test.ExpectEquality(t, visited[0], "hold=250ms")
}

func TestBadFlag(t *testing.T) {
	md := modalflag.Modes{Output: io.Discard}
	md.NewArgs([]string{"-nope"})

	p, err := md.Parse()
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, p, modalflag.ParseError)
}
