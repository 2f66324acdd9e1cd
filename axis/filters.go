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

package axis

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/jetsetilly/presshere/userinput"
)

// Deadzone has the value of A only when the magnitude of A is at least
// Threshold. A value exactly equal to the threshold is not in the deadzone.
type Deadzone struct {
	A         Binding
	Threshold float32
}

func (d Deadzone) Value(s *userinput.Snapshot) (float32, bool) {
	v, ok := d.A.Value(s)
	if !ok {
		return 0, false
	}
	if abs(v) < d.Threshold {
		return 0, false
	}
	return v, true
}

func (d Deadzone) Clone() Binding {
	return Deadzone{A: d.A.Clone(), Threshold: d.Threshold}
}

func (d Deadzone) String() string {
	return fmt.Sprintf("deadzone(%s, %v)", describe(d.A), d.Threshold)
}

// Smooth is an exponential smoothing filter. The output moves towards the
// value of A on every frame. A missing value counts as zero.
//
// Smooth always has a value.
type Smooth struct {
	A Binding

	// time constant in seconds. the smaller the value the quicker the output
	// follows the input. a value of zero or less disables smoothing
	Tau float32

	value float32
}

// NewSmooth is the preferred method of initialisation for the Smooth type.
// The initial output of the filter is zero.
func NewSmooth(a Binding, tau float32) *Smooth {
	return &Smooth{A: a, Tau: tau}
}

func (f *Smooth) Value(s *userinput.Snapshot) (float32, bool) {
	target := valueOr(f.A, s, 0)

	if f.Tau <= 0 {
		f.value = target
		return f.value, true
	}

	alpha := 1.0 - float32(math.Exp(-float64(s.DeltaSeconds())/float64(f.Tau)))
	f.value += alpha * (target - f.value)
	return f.value, true
}

func (f *Smooth) Clone() Binding {
	return &Smooth{A: f.A.Clone(), Tau: f.Tau, value: f.value}
}

func (f *Smooth) String() string {
	return fmt.Sprintf("smooth(%s, %v)", describe(f.A), f.Tau)
}

// RateLimit limits how quickly the output can follow the value of A. The
// output will change by no more than MaxRate units per second.
//
// RateLimit has no value if A has no value. The output is remembered for when
// A next has a value.
type RateLimit struct {
	A       Binding
	MaxRate float32

	value float32
}

// NewRateLimit is the preferred method of initialisation for the RateLimit
// type. The initial output of the filter is zero.
func NewRateLimit(a Binding, maxRate float32) *RateLimit {
	return &RateLimit{A: a, MaxRate: maxRate}
}

func (f *RateLimit) Value(s *userinput.Snapshot) (float32, bool) {
	target, ok := f.A.Value(s)
	if !ok {
		return 0, false
	}

	limit := f.MaxRate * s.DeltaSeconds()
	f.value += clamp(target-f.value, -limit, limit)
	return f.value, true
}

func (f *RateLimit) Clone() Binding {
	return &RateLimit{A: f.A.Clone(), MaxRate: f.MaxRate, value: f.value}
}

func (f *RateLimit) String() string {
	return fmt.Sprintf("ratelimit(%s, %v)", describe(f.A), f.MaxRate)
}

// Normalize treats A and Perpendicular as the two components of a vector. If
// the length of the vector is greater than one, then the value of A is scaled
// so that the vector has a length of one. A missing value counts as zero.
//
// For example, diagonal movement with a pair of keyboard Pair bindings would
// otherwise be faster than movement along either axis.
//
// Normalize always has a value.
type Normalize struct {
	A             Binding
	Perpendicular Binding
}

func (n Normalize) Value(s *userinput.Snapshot) (float32, bool) {
	v := mgl32.Vec2{valueOr(n.A, s, 0), valueOr(n.Perpendicular, s, 0)}
	l := v.Len()
	if l > 1.0 {
		return v.X() / l, true
	}
	return v.X(), true
}

func (n Normalize) Clone() Binding {
	return Normalize{A: n.A.Clone(), Perpendicular: n.Perpendicular.Clone()}
}

func (n Normalize) String() string {
	return fmt.Sprintf("normalize(%s, %s)", describe(n.A), describe(n.Perpendicular))
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

func clamp(v, min, max float32) float32 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
