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
	"bufio"
	"fmt"
	"io"
	"os"
	"time"

	"go.uber.org/multierr"

	"github.com/jetsetilly/presshere/curated"
	"github.com/jetsetilly/presshere/logger"
	"github.com/jetsetilly/presshere/userinput"
)

// Recorder writes events to a transcript file. It implements the
// userinput.EventRecorder and host.TickRecorder interfaces.
type Recorder struct {
	transcript string
	output     io.WriteCloser
	w          *bufio.Writer

	// the number of events recorded
	count int
}

// NewRecorder is the preferred method of initialisation for the Recorder
// type. An existing file will not be overwritten.
func NewRecorder(transcript string) (*Recorder, error) {
	f, err := os.OpenFile(transcript, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return nil, curated.Errorf("recorder: %v", err)
	}
	return newRecorder(transcript, f)
}

func newRecorder(transcript string, output io.WriteCloser) (*Recorder, error) {
	rec := &Recorder{
		transcript: transcript,
		output:     output,
		w:          bufio.NewWriter(output),
	}

	err := rec.writeHeader()
	if err != nil {
		return nil, multierr.Append(err, output.Close())
	}

	logger.Logf(logger.Allow, "recorder", "recording to %s", transcript)

	return rec, nil
}

func (rec *Recorder) String() string {
	return fmt.Sprintf("%s (%d events)", rec.transcript, rec.count)
}

func (rec *Recorder) writeHeader() error {
	lines := make([]string, numHeaderLines)
	lines[lineMagic] = magic
	lines[lineVersion] = version

	for _, l := range lines {
		_, err := fmt.Fprintln(rec.w, l)
		if err != nil {
			return curated.Errorf("recorder: %v", err)
		}
	}

	return nil
}

// RecordEvent implements the userinput.EventRecorder interface.
func (rec *Recorder) RecordEvent(frame uint64, ev userinput.Event) error {
	line, err := encodeLine(frame, ev)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(rec.w, line)
	if err != nil {
		return curated.Errorf("recorder: %v", err)
	}
	rec.count++

	return nil
}

// RecordTick records the duration of a frame. The duration is used in place
// of the wall clock when the transcript is played back.
func (rec *Recorder) RecordTick(frame uint64, delta time.Duration) error {
	_, err := fmt.Fprintln(rec.w, encodeTick(frame, delta))
	if err != nil {
		return curated.Errorf("recorder: %v", err)
	}
	return nil
}

// End the recording and close the transcript file.
func (rec *Recorder) End() error {
	err := multierr.Append(rec.w.Flush(), rec.output.Close())
	if err != nil {
		return curated.Errorf("recorder: %v", err)
	}
	logger.Logf(logger.Allow, "recorder", "finished %s", rec)
	return nil
}
