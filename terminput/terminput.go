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
	"sync"
	"time"

	"go.uber.org/multierr"

	"github.com/jetsetilly/presshere/curated"
	"github.com/jetsetilly/presshere/logger"
	"github.com/jetsetilly/presshere/userinput"
)

// Sentinal error patterns.
const (
	DeviceError = "terminal: %v"
	ReadError   = "terminal: read: %v"
)

// the size of the read buffer. a single key press is never more than a few
// bytes
const readBufferSize = 32

// Source implements the host.Source interface for a terminal.
type Source struct {
	input   io.Reader
	restore func() error

	keys *holder

	// time source. replaced during testing
	now func() time.Time

	chunks chan []byte
	errs   chan error
	done   chan struct{}
	wg     sync.WaitGroup
}

// newSource reads from input until Destroy() is called. A read that returns
// zero bytes with either a nil error or io.EOF is treated as a timeout and
// the read is tried again. The restore function is called by Destroy().
func newSource(input io.Reader, restore func() error, hold time.Duration) *Source {
	src := &Source{
		input:   input,
		restore: restore,
		keys:    newHolder(hold),
		now:     time.Now,
		chunks:  make(chan []byte, 16),
		errs:    make(chan error, 1),
		done:    make(chan struct{}),
	}

	src.wg.Add(1)
	go src.read()

	return src
}

func (src *Source) read() {
	defer src.wg.Done()

	for {
		select {
		case <-src.done:
			return
		default:
		}

		b := make([]byte, readBufferSize)
		n, err := src.input.Read(b)
		if n > 0 {
			select {
			case src.chunks <- b[:n]:
			case <-src.done:
				return
			}
		}
		if err != nil && !errors.Is(err, io.EOF) {
			select {
			case <-src.done:
			case src.errs <- err:
			}
			return
		}
	}
}

// Service implements the host.Source interface.
func (src *Source) Service(c *userinput.Collector) (bool, error) {
	select {
	case err := <-src.errs:
		return false, curated.Errorf(ReadError, err)
	default:
	}

	now := src.now()

	for {
		var b []byte
		select {
		case b = <-src.chunks:
		default:
		}
		if b == nil {
			break
		}

		keys, quit := decode(b)
		for _, k := range keys {
			if !src.keys.seen(k, now) {
				continue
			}
			_, err := c.HandleUserInput(userinput.EventKeyboard{Key: k, Down: true})
			if err != nil {
				return false, err
			}
		}
		if quit {
			logger.Log(logger.Allow, "terminal", "quit key")
			return false, nil
		}
	}

	for _, k := range src.keys.expire(now) {
		_, err := c.HandleUserInput(userinput.EventKeyboard{Key: k, Down: false})
		if err != nil {
			return false, err
		}
	}

	return true, nil
}

// Destroy implements the host.Source interface. The terminal is returned to
// its original state.
func (src *Source) Destroy() error {
	var err error

	close(src.done)
	if src.restore != nil {
		err = multierr.Append(err, src.restore())
	}
	src.wg.Wait()

	return err
}
