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

// Package recorder writes the events handled by a userinput.Collector to a
// transcript file and plays them back. A Playback is a host.Source and so
// a recording can be replayed through the same bindings that it was recorded
// with.
//
// The Recorder type is attached to a Collector with AttachEventRecorder():
//
//	rec, err := recorder.NewRecorder("session.txt")
//	collector.AttachEventRecorder(rec)
//	...
//	err = rec.End()
//
// Events are replayed in the frame in which they were originally handled.
// The time between frames is decided by the host during playback and is not
// part of the recording.
package recorder
