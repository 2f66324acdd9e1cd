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

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"go.uber.org/multierr"

	"github.com/jetsetilly/presshere/bindviz"
	"github.com/jetsetilly/presshere/host"
	"github.com/jetsetilly/presshere/logger"
	"github.com/jetsetilly/presshere/modalflag"
	"github.com/jetsetilly/presshere/prefs"
	"github.com/jetsetilly/presshere/recorder"
	"github.com/jetsetilly/presshere/sdlinput"
	"github.com/jetsetilly/presshere/statsview"
	"github.com/jetsetilly/presshere/terminput"
	"github.com/jetsetilly/presshere/version"
)

// exit values
const (
	exitParseError = 10
	exitModeError  = 20
)

// #mainthread
//
// SDL requires that events are serviced on the thread that initialised it.
// the SDL source is created and run from the main goroutine for that reason
func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()
	md.AddSubModes("SDL", "TERM", "PLAYBACK", "DOT")

	fps := md.AddInt("fps", 0, "frames per second (zero uses the preferences value)")
	prefsOverride := md.AddString("prefs", "", "preferences for this run only: 'key::value; key::value'")
	echo := md.AddBool("echo", false, "echo log to stderr")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (available: %v)", statsview.Available()))

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)
	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		os.Exit(exitParseError)
	}

	if *echo {
		logger.SetEcho(os.Stderr, false)
	}

	v, r, _ := version.Version()
	logger.Logf(logger.Allow, version.ApplicationName, "version %s (%s)", v, r)

	if *stats {
		if statsview.Available() {
			statsview.Launch(os.Stdout)
		} else {
			fmt.Println("* statsview not available in this build")
		}
	}

	if *prefsOverride != "" {
		prefs.PushCommandLineStack(*prefsOverride)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	switch md.Mode() {
	case "SDL":
		err = run(ctx, md, *fps, func(_ *modalflag.Modes, _ *host.Preferences) (host.Source, string, error) {
			src, err := sdlinput.NewSource()
			return src, "\n", err
		})
	case "TERM":
		err = run(ctx, md, *fps, func(_ *modalflag.Modes, p *host.Preferences) (host.Source, string, error) {
			src, err := terminput.NewSource(terminput.DefaultDevice, p.Hold())
			return src, "\r\n", err
		})
	case "PLAYBACK":
		err = run(ctx, md, *fps, func(md *modalflag.Modes, _ *host.Preferences) (host.Source, string, error) {
			if len(md.RemainingArgs()) != 1 {
				return nil, "", fmt.Errorf("one transcript file required for %s mode", md)
			}
			src, err := recorder.NewPlayback(md.GetArg(0))
			return src, "\n", err
		})
	case "DOT":
		err = dot(md)
	}

	stop()

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md, err)
		os.Exit(exitModeError)
	}
}

// creates the Source for the run() function. also returns the line ending
// required by the output
type sourceCreator func(md *modalflag.Modes, p *host.Preferences) (host.Source, string, error)

func run(ctx context.Context, md *modalflag.Modes, fps int, create sourceCreator) (err error) {
	md.NewMode()
	save := md.AddBool("save", false, "save preferences on exit")
	record := md.AddString("record", "", "record input to transcript file")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	md.Visit(func(flag string, value string) {
		logger.Logf(logger.Allow, md.Mode(), "flag %s = %s", flag, value)
	})

	pref, err := host.NewPreferences("")
	if err != nil {
		return err
	}
	if fps > 0 {
		err = pref.FPS.Set(fps)
		if err != nil {
			return err
		}
	}

	h := host.NewHost(pref)
	err = register(h.Registry(), pref)
	if err != nil {
		return err
	}

	src, newline, err := create(md, pref)
	if err != nil {
		return err
	}

	if *record != "" {
		rec, rerr := recorder.NewRecorder(*record)
		if rerr != nil {
			return multierr.Append(rerr, src.Destroy())
		}
		h.AttachEventRecorder(rec)
		defer func() {
			err = multierr.Append(err, rec.End())
		}()
	}

	rep := newReporter(os.Stdout, newline, h.Registry())
	fmt.Fprintf(os.Stdout, "%s: Escape to quit%s", version.Title(), newline)

	err = h.Run(ctx, src, rep.logic)
	if err != nil {
		return err
	}

	if *save {
		return pref.Save()
	}

	return nil
}

func dot(md *modalflag.Modes) error {
	md.NewMode()
	binding := md.AddString("binding", "movex", "the binding to write")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	pref, err := host.NewPreferences("")
	if err != nil {
		return err
	}

	h := host.NewHost(pref)
	err = register(h.Registry(), pref)
	if err != nil {
		return err
	}

	b, ok := lookup(h.Registry(), strings.ToLower(*binding))
	if !ok {
		return fmt.Errorf("no binding named %s (available: %s)", *binding, strings.Join(signalNames(h.Registry()), ", "))
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return bindviz.Write(os.Stdout, b)
	case 1:
		f, err := os.Create(md.GetArg(0))
		if err != nil {
			return err
		}
		err = bindviz.Write(f, b)
		if err != nil {
			f.Close()
			return err
		}
		return f.Close()
	}

	return fmt.Errorf("too many arguments for %s mode", md)
}
