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

package recorder

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jetsetilly/presshere/curated"
	"github.com/jetsetilly/presshere/userinput"
)

// transcript file header format
// -----------------------------
//
// presshere input transcript
// <version>

const (
	lineMagic int = iota
	lineVersion
	numHeaderLines
)

const (
	magic   = "presshere input transcript"
	version = "1"
)

// transcript entry format
// -----------------------
//
// <frame>, <kind>, <data>, ...
//
// strings are quoted and are always the last field. a line can therefore be
// split into a known number of fields even if the string contains the field
// separator
//
// the duration of a frame is recorded as a tick entry after the events for
// that frame
//
// <frame>, tick, <nanoseconds>

const fieldSep = ", "

const (
	kindQuit           = "quit"
	kindKeyboard       = "key"
	kindMouseButton    = "mousebutton"
	kindMouseMotion    = "motion"
	kindMouseWheel     = "wheel"
	kindGamepadConnect = "connect"
	kindGamepadRemove  = "disconnect"
	kindGamepadButton  = "button"
	kindGamepadAxis    = "axis"
	kindTick           = "tick"
)

// the number of data fields for each kind of entry
var numDataFields = map[string]int{
	kindQuit:           0,
	kindKeyboard:       3,
	kindMouseButton:    2,
	kindMouseMotion:    2,
	kindMouseWheel:     3,
	kindGamepadConnect: 2,
	kindGamepadRemove:  1,
	kindGamepadButton:  4,
	kindGamepadAxis:    3,
	kindTick:           1,
}

// frameTick is the decoded form of a tick entry. it is not a userinput.Event
// and is never sent to a Collector
type frameTick struct {
	delta time.Duration
}

// Sentinal error patterns.
const (
	UnrecordableEvent = "recorder: cannot record event (%T)"
	InvalidTranscript = "playback: %s: line %d: %v"
)

func formatFloat(f float32) string {
	return strconv.FormatFloat(float64(f), 'g', -1, 32)
}

// encode the event as a list of data fields
func encode(ev userinput.Event) (string, []string, error) {
	switch ev := ev.(type) {
	case userinput.EventQuit:
		return kindQuit, nil, nil
	case userinput.EventKeyboard:
		return kindKeyboard, []string{
			strconv.FormatBool(ev.Down),
			strconv.FormatBool(ev.Repeat),
			strconv.Quote(string(ev.Key)),
		}, nil
	case userinput.EventMouseButton:
		return kindMouseButton, []string{
			strconv.Itoa(int(ev.Button)),
			strconv.FormatBool(ev.Down),
		}, nil
	case userinput.EventMouseMotion:
		return kindMouseMotion, []string{
			formatFloat(ev.DX),
			formatFloat(ev.DY),
		}, nil
	case userinput.EventMouseWheel:
		return kindMouseWheel, []string{
			strconv.Itoa(int(ev.Unit)),
			formatFloat(ev.X),
			formatFloat(ev.Y),
		}, nil
	case userinput.EventGamepadConnect:
		return kindGamepadConnect, []string{
			strconv.Itoa(ev.ID),
			strconv.Quote(ev.Name),
		}, nil
	case userinput.EventGamepadDisconnect:
		return kindGamepadRemove, []string{
			strconv.Itoa(ev.ID),
		}, nil
	case userinput.EventGamepadButton:
		return kindGamepadButton, []string{
			strconv.Itoa(ev.ID),
			strconv.Itoa(int(ev.Button)),
			strconv.FormatBool(ev.Down),
			formatFloat(ev.Value),
		}, nil
	case userinput.EventGamepadAxis:
		return kindGamepadAxis, []string{
			strconv.Itoa(ev.ID),
			strconv.Itoa(int(ev.Axis)),
			formatFloat(ev.Value),
		}, nil
	}
	return "", nil, curated.Errorf(UnrecordableEvent, ev)
}

func encodeLine(frame uint64, ev userinput.Event) (string, error) {
	kind, data, err := encode(ev)
	if err != nil {
		return "", err
	}
	fields := append([]string{strconv.FormatUint(frame, 10), kind}, data...)
	return strings.Join(fields, fieldSep), nil
}

func encodeTick(frame uint64, delta time.Duration) string {
	return strings.Join([]string{
		strconv.FormatUint(frame, 10),
		kindTick,
		strconv.FormatInt(int64(delta), 10),
	}, fieldSep)
}

// fieldParser converts fields in turn, remembering the first error
type fieldParser struct {
	fields []string
	idx    int
	err    error
}

func (p *fieldParser) next() string {
	s := p.fields[p.idx]
	p.idx++
	return s
}

func (p *fieldParser) setErr(err error) {
	if p.err == nil && err != nil {
		p.err = err
	}
}

func (p *fieldParser) bool() bool {
	v, err := strconv.ParseBool(p.next())
	p.setErr(err)
	return v
}

func (p *fieldParser) int() int {
	v, err := strconv.Atoi(p.next())
	p.setErr(err)
	return v
}

func (p *fieldParser) duration() time.Duration {
	v, err := strconv.ParseInt(p.next(), 10, 64)
	p.setErr(err)
	if v < 0 {
		p.setErr(fmt.Errorf("negative duration"))
	}
	return time.Duration(v)
}

func (p *fieldParser) float() float32 {
	v, err := strconv.ParseFloat(p.next(), 32)
	p.setErr(err)
	return float32(v)
}

func (p *fieldParser) string() string {
	v, err := strconv.Unquote(p.next())
	p.setErr(err)
	return v
}

// decodeLine is the inverse of encodeLine and encodeTick. the event returned
// for a tick entry is of type frameTick
func decodeLine(line string) (uint64, userinput.Event, error) {
	frameField, rest, ok := strings.Cut(line, fieldSep)
	if !ok {
		return 0, nil, fmt.Errorf("missing fields")
	}

	frame, err := strconv.ParseUint(frameField, 10, 64)
	if err != nil {
		return 0, nil, err
	}

	kind, rest, _ := strings.Cut(rest, fieldSep)
	n, ok := numDataFields[kind]
	if !ok {
		return 0, nil, fmt.Errorf("unknown entry kind (%s)", kind)
	}

	var fields []string
	if n > 0 {
		fields = strings.SplitN(rest, fieldSep, n)
		if len(fields) != n {
			return 0, nil, fmt.Errorf("expected %d fields for %s entry", n, kind)
		}
	}

	p := &fieldParser{fields: fields}
	var ev userinput.Event

	switch kind {
	case kindQuit:
		ev = userinput.EventQuit{}
	case kindKeyboard:
		ev = userinput.EventKeyboard{Down: p.bool(), Repeat: p.bool(), Key: userinput.Key(p.string())}
	case kindMouseButton:
		ev = userinput.EventMouseButton{Button: userinput.MouseButton(p.int()), Down: p.bool()}
	case kindMouseMotion:
		ev = userinput.EventMouseMotion{DX: p.float(), DY: p.float()}
	case kindMouseWheel:
		ev = userinput.EventMouseWheel{Unit: userinput.ScrollUnit(p.int()), X: p.float(), Y: p.float()}
	case kindGamepadConnect:
		ev = userinput.EventGamepadConnect{ID: p.int(), Name: p.string()}
	case kindGamepadRemove:
		ev = userinput.EventGamepadDisconnect{ID: p.int()}
	case kindGamepadButton:
		ev = userinput.EventGamepadButton{ID: p.int(), Button: userinput.GamepadButton(p.int()), Down: p.bool(), Value: p.float()}
	case kindGamepadAxis:
		ev = userinput.EventGamepadAxis{ID: p.int(), Axis: userinput.GamepadAxis(p.int()), Value: p.float()}
	case kindTick:
		ev = frameTick{delta: p.duration()}
	}

	if p.err != nil {
		return 0, nil, p.err
	}

	return frame, ev, nil
}
