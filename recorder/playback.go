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

	"github.com/jetsetilly/presshere/curated"
	"github.com/jetsetilly/presshere/logger"
	"github.com/jetsetilly/presshere/userinput"
)

type playbackEntry struct {
	frame uint64
	event userinput.Event

	// the line in the transcript file the entry appears on
	line int
}

// Playback sends the events in a previously recorded transcript to a
// Collector. It implements the host.Source interface.
type Playback struct {
	transcript string

	sequence []playbackEntry
	seqCt    int

	// recorded frame durations indexed by frame number
	deltas map[uint64]time.Duration

	// the frame of the last event in the transcript
	endFrame uint64

	// the most recent frame serviced
	frame uint64
}

func (plb *Playback) String() string {
	if plb.endFrame == 0 {
		return fmt.Sprintf("%d/0", plb.frame)
	}
	return fmt.Sprintf("%d/%d (%.1f%%)", plb.frame, plb.endFrame, 100*(float64(plb.frame)/float64(plb.endFrame)))
}

// NewPlayback is the preferred method of initialisation for the Playback
// type.
func NewPlayback(transcript string) (*Playback, error) {
	f, err := os.Open(transcript)
	if err != nil {
		return nil, curated.Errorf("playback: %v", err)
	}
	defer f.Close()

	return newPlayback(transcript, f)
}

func newPlayback(transcript string, input io.Reader) (*Playback, error) {
	plb := &Playback{
		transcript: transcript,
		deltas:     make(map[uint64]time.Duration),
	}

	scanner := bufio.NewScanner(input)
	ln := 0
	for scanner.Scan() {
		line := scanner.Text()
		ln++

		switch ln - 1 {
		case lineMagic:
			if line != magic {
				return nil, curated.Errorf(InvalidTranscript, transcript, ln, "not a transcript file")
			}
			continue
		case lineVersion:
			if line != version {
				return nil, curated.Errorf(InvalidTranscript, transcript, ln, fmt.Sprintf("unsupported version (%s)", line))
			}
			continue
		}

		if line == "" {
			continue
		}

		frame, ev, err := decodeLine(line)
		if err != nil {
			return nil, curated.Errorf(InvalidTranscript, transcript, ln, err)
		}

		// frames must be listed in order
		if frame < plb.endFrame {
			return nil, curated.Errorf(InvalidTranscript, transcript, ln, "frame out of order")
		}
		plb.endFrame = frame

		if tick, ok := ev.(frameTick); ok {
			plb.deltas[frame] = tick.delta
			continue
		}

		plb.sequence = append(plb.sequence, playbackEntry{frame: frame, event: ev, line: ln})
	}

	if err := scanner.Err(); err != nil {
		return nil, curated.Errorf("playback: %v", err)
	}

	if ln < numHeaderLines {
		return nil, curated.Errorf(InvalidTranscript, transcript, ln, "missing header")
	}

	logger.Logf(logger.Allow, "playback", "%s: %d events over %d frames", transcript, len(plb.sequence), plb.endFrame)

	return plb, nil
}

// EndFrame returns true if playback has gone past the last frame of the
// transcript.
func (plb *Playback) EndFrame() bool {
	return plb.frame > plb.endFrame
}

// Service implements the host.Source interface. All events for the next
// frame of the Collector are sent. Returns false once the end of the
// transcript has been reached.
func (plb *Playback) Service(c *userinput.Collector) (bool, error) {
	plb.frame = c.Frame() + 1
	if plb.EndFrame() {
		return false, nil
	}

	for plb.seqCt < len(plb.sequence) {
		entry := plb.sequence[plb.seqCt]
		if entry.frame > plb.frame {
			break
		}
		plb.seqCt++

		// entries for earlier frames are never skipped silently
		if entry.frame < plb.frame {
			return false, curated.Errorf(InvalidTranscript, plb.transcript, entry.line, "event for an earlier frame")
		}

		quit, err := c.HandleUserInput(entry.event)
		if err != nil {
			return false, err
		}
		if quit {
			return false, nil
		}
	}

	return true, nil
}

// FrameDelta implements the host.FrameTimer interface. Returns false if the
// transcript has no duration recorded for the frame.
func (plb *Playback) FrameDelta(frame uint64) (time.Duration, bool) {
	d, ok := plb.deltas[frame]
	return d, ok
}

// Destroy implements the host.Source interface.
func (plb *Playback) Destroy() error {
	return nil
}
