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

	"github.com/jetsetilly/presshere/curve"
	"github.com/jetsetilly/presshere/userinput"
)

// Multiply is A multiplied by B. A missing value counts as zero. Multiply
// always has a value.
type Multiply struct {
	A Binding
	B Binding
}

func (m Multiply) Value(s *userinput.Snapshot) (float32, bool) {
	return valueOr(m.A, s, 0) * valueOr(m.B, s, 0), true
}

func (m Multiply) Clone() Binding {
	return Multiply{A: m.A.Clone(), B: m.B.Clone()}
}

func (m Multiply) String() string {
	return fmt.Sprintf("mult(%s, %s)", describe(m.A), describe(m.B))
}

// Divide is A divided by B. A missing value for A counts as zero and a
// missing value for B counts as one. Divide always has a value.
type Divide struct {
	A Binding
	B Binding
}

func (d Divide) Value(s *userinput.Snapshot) (float32, bool) {
	return valueOr(d.A, s, 0) / valueOr(d.B, s, 1), true
}

func (d Divide) Clone() Binding {
	return Divide{A: d.A.Clone(), B: d.B.Clone()}
}

func (d Divide) String() string {
	return fmt.Sprintf("div(%s, %s)", describe(d.A), describe(d.B))
}

// Add is A plus B. A missing value counts as zero. Add always has a value.
type Add struct {
	A Binding
	B Binding
}

func (a Add) Value(s *userinput.Snapshot) (float32, bool) {
	return valueOr(a.A, s, 0) + valueOr(a.B, s, 0), true
}

func (a Add) Clone() Binding {
	return Add{A: a.A.Clone(), B: a.B.Clone()}
}

func (a Add) String() string {
	return fmt.Sprintf("add(%s, %s)", describe(a.A), describe(a.B))
}

// Subtract is A minus B. A missing value counts as zero. Subtract always has
// a value.
type Subtract struct {
	A Binding
	B Binding
}

func (sb Subtract) Value(s *userinput.Snapshot) (float32, bool) {
	return valueOr(sb.A, s, 0) - valueOr(sb.B, s, 0), true
}

func (sb Subtract) Clone() Binding {
	return Subtract{A: sb.A.Clone(), B: sb.B.Clone()}
}

func (sb Subtract) String() string {
	return fmt.Sprintf("sub(%s, %s)", describe(sb.A), describe(sb.B))
}

// Invert is the negative of A.
type Invert struct {
	A Binding
}

func (i Invert) Value(s *userinput.Snapshot) (float32, bool) {
	v, ok := i.A.Value(s)
	if !ok {
		return 0, false
	}
	return -v, true
}

func (i Invert) Clone() Binding {
	return Invert{A: i.A.Clone()}
}

func (i Invert) String() string {
	return fmt.Sprintf("invert(%s)", describe(i.A))
}

// WithCurve is the value of A passed through the Curve. No value if A has no
// value or if the curve is not defined for the value of A.
type WithCurve struct {
	A     Binding
	Curve curve.Curve
}

func (w WithCurve) Value(s *userinput.Snapshot) (float32, bool) {
	v, ok := w.A.Value(s)
	if !ok {
		return 0, false
	}
	return w.Curve.Sample(v)
}

// Clone implements the Binding interface. Curves are stateless and are shared
// between the original and the clone.
func (w WithCurve) Clone() Binding {
	return WithCurve{A: w.A.Clone(), Curve: w.Curve}
}

func (w WithCurve) String() string {
	return fmt.Sprintf("curve(%s, %v)", describe(w.A), w.Curve)
}

// Transformation is the value of A passed through Func.
type Transformation struct {
	A    Binding
	Func func(float32) float32
}

func (t Transformation) Value(s *userinput.Snapshot) (float32, bool) {
	v, ok := t.A.Value(s)
	if !ok {
		return 0, false
	}
	return t.Func(v), true
}

func (t Transformation) Clone() Binding {
	return Transformation{A: t.A.Clone(), Func: t.Func}
}

func (t Transformation) String() string {
	return fmt.Sprintf("transform(%s)", describe(t.A))
}

// Remap linearly maps the value of A from the input range to the output
// range. Values outside of the input range are not clamped.
type Remap struct {
	A      Binding
	InMin  float32
	InMax  float32
	OutMin float32
	OutMax float32
}

func (r Remap) Value(s *userinput.Snapshot) (float32, bool) {
	v, ok := r.A.Value(s)
	if !ok {
		return 0, false
	}
	return r.OutMin + (v-r.InMin)/(r.InMax-r.InMin)*(r.OutMax-r.OutMin), true
}

func (r Remap) Clone() Binding {
	r.A = r.A.Clone()
	return r
}

func (r Remap) String() string {
	return fmt.Sprintf("remap(%s, %v..%v to %v..%v)", describe(r.A), r.InMin, r.InMax, r.OutMin, r.OutMax)
}
