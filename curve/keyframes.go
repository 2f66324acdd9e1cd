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

package curve

import (
	"fmt"

	"github.com/jetsetilly/presshere/curated"
	"gonum.org/v1/gonum/interp"
)

// Sentinal error patterns returned by NewKeyframes().
const (
	KeyframesTooFew    = "curve: too few keyframes (%d)"
	KeyframesMismatch  = "curve: keyframe lengths differ (%d and %d)"
	KeyframesUnordered = "curve: keyframes not in ascending order (%v after %v)"
	KeyframesFit       = "curve: %v"
)

// Interpolation specifies how the values between keyframes are calculated.
type Interpolation int

// List of valid Interpolation values.
const (
	// straight lines between keyframes
	PiecewiseLinear Interpolation = iota

	// Akima spline. a smooth curve that is less prone to overshoot than a
	// cubic spline
	Akima

	// monotone cubic. the curve does not overshoot the keyframes when the
	// keyframes are monotonic
	Monotone
)

func (i Interpolation) String() string {
	switch i {
	case PiecewiseLinear:
		return "linear"
	case Akima:
		return "akima"
	case Monotone:
		return "monotone"
	}
	return fmt.Sprintf("Interpolation(%d)", int(i))
}

// Keyframes is a curve defined by a list of points. Values between the
// points are interpolated. The curve is not defined outside of the range of
// the keyframes.
type Keyframes struct {
	kind      Interpolation
	first     float64
	last      float64
	predictor interp.Predictor
}

// NewKeyframes is the preferred method of initialisation for the Keyframes
// type. The xs values must be in strictly ascending order and there must be
// as many ys values as xs values.
func NewKeyframes(kind Interpolation, xs []float32, ys []float32) (*Keyframes, error) {
	if len(xs) != len(ys) {
		return nil, curated.Errorf(KeyframesMismatch, len(xs), len(ys))
	}

	// the akima spline needs at least three points to be anything other than
	// a straight line but gonum will accept two
	if len(xs) < 2 {
		return nil, curated.Errorf(KeyframesTooFew, len(xs))
	}

	fx := make([]float64, len(xs))
	fy := make([]float64, len(ys))
	for i := range xs {
		if i > 0 && xs[i] <= xs[i-1] {
			return nil, curated.Errorf(KeyframesUnordered, xs[i], xs[i-1])
		}
		fx[i] = float64(xs[i])
		fy[i] = float64(ys[i])
	}

	var fp interp.FittablePredictor
	switch kind {
	case Akima:
		fp = &interp.AkimaSpline{}
	case Monotone:
		fp = &interp.FritschButland{}
	default:
		kind = PiecewiseLinear
		fp = &interp.PiecewiseLinear{}
	}

	if err := fp.Fit(fx, fy); err != nil {
		return nil, curated.Errorf(KeyframesFit, err)
	}

	return &Keyframes{
		kind:      kind,
		first:     fx[0],
		last:      fx[len(fx)-1],
		predictor: fp,
	}, nil
}

func (k *Keyframes) String() string {
	return fmt.Sprintf("keyframes(%s %v to %v)", k.kind, k.first, k.last)
}

// Sample implements the Curve interface.
func (k *Keyframes) Sample(t float32) (float32, bool) {
	x := float64(t)
	if !(x >= k.first && x <= k.last) {
		return 0, false
	}
	return float32(k.predictor.Predict(x)), true
}
