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
	"math"
)

// Ease is one of a number of commonly used easing functions. The curves are
// defined on the unit interval [0, 1] and Sample() will fail for values
// outside of that interval.
type Ease int

// List of valid Ease values.
const (
	Linear Ease = iota
	QuadraticIn
	QuadraticOut
	QuadraticInOut
	CubicIn
	CubicOut
	CubicInOut
	QuarticIn
	QuarticOut
	QuarticInOut
	QuinticIn
	QuinticOut
	QuinticInOut
	SineIn
	SineOut
	SineInOut
	CircularIn
	CircularOut
	CircularInOut
	ExponentialIn
	ExponentialOut
	ExponentialInOut
	ElasticIn
	ElasticOut
	ElasticInOut
	BackIn
	BackOut
	BackInOut
	BounceIn
	BounceOut
	BounceInOut
	SmoothStep
	SmootherStep
	numEase
)

var easeNames = []string{
	"Linear",
	"QuadraticIn", "QuadraticOut", "QuadraticInOut",
	"CubicIn", "CubicOut", "CubicInOut",
	"QuarticIn", "QuarticOut", "QuarticInOut",
	"QuinticIn", "QuinticOut", "QuinticInOut",
	"SineIn", "SineOut", "SineInOut",
	"CircularIn", "CircularOut", "CircularInOut",
	"ExponentialIn", "ExponentialOut", "ExponentialInOut",
	"ElasticIn", "ElasticOut", "ElasticInOut",
	"BackIn", "BackOut", "BackInOut",
	"BounceIn", "BounceOut", "BounceInOut",
	"SmoothStep", "SmootherStep",
}

func (e Ease) String() string {
	if e < 0 || e >= numEase {
		return fmt.Sprintf("Ease(%d)", int(e))
	}
	return easeNames[e]
}

// Sample implements the Curve interface.
func (e Ease) Sample(t float32) (float32, bool) {
	if !(t >= 0.0 && t <= 1.0) {
		return 0, false
	}
	if e < 0 || e >= numEase {
		return 0, false
	}
	return float32(e.ease(float64(t))), true
}

// constants for the back and elastic curves
const (
	backC1    = 1.70158
	backC2    = backC1 * 1.525
	backC3    = backC1 + 1.0
	elasticC4 = 2.0 * math.Pi / 3.0
	elasticC5 = 2.0 * math.Pi / 4.5
)

func (e Ease) ease(t float64) float64 {
	switch e {
	case Linear:
		return t

	case QuadraticIn:
		return t * t
	case QuadraticOut:
		return 1.0 - (1.0-t)*(1.0-t)
	case QuadraticInOut:
		if t < 0.5 {
			return 2.0 * t * t
		}
		return 1.0 - math.Pow(-2.0*t+2.0, 2)/2.0

	case CubicIn:
		return t * t * t
	case CubicOut:
		return 1.0 - math.Pow(1.0-t, 3)
	case CubicInOut:
		if t < 0.5 {
			return 4.0 * t * t * t
		}
		return 1.0 - math.Pow(-2.0*t+2.0, 3)/2.0

	case QuarticIn:
		return math.Pow(t, 4)
	case QuarticOut:
		return 1.0 - math.Pow(1.0-t, 4)
	case QuarticInOut:
		if t < 0.5 {
			return 8.0 * math.Pow(t, 4)
		}
		return 1.0 - math.Pow(-2.0*t+2.0, 4)/2.0

	case QuinticIn:
		return math.Pow(t, 5)
	case QuinticOut:
		return 1.0 - math.Pow(1.0-t, 5)
	case QuinticInOut:
		if t < 0.5 {
			return 16.0 * math.Pow(t, 5)
		}
		return 1.0 - math.Pow(-2.0*t+2.0, 5)/2.0

	case SineIn:
		return 1.0 - math.Cos(t*math.Pi/2.0)
	case SineOut:
		return math.Sin(t * math.Pi / 2.0)
	case SineInOut:
		return -(math.Cos(math.Pi*t) - 1.0) / 2.0

	case CircularIn:
		return 1.0 - math.Sqrt(1.0-t*t)
	case CircularOut:
		return math.Sqrt(1.0 - (t-1.0)*(t-1.0))
	case CircularInOut:
		if t < 0.5 {
			return (1.0 - math.Sqrt(1.0-4.0*t*t)) / 2.0
		}
		return (math.Sqrt(1.0-math.Pow(-2.0*t+2.0, 2)) + 1.0) / 2.0

	case ExponentialIn:
		if t == 0.0 {
			return 0.0
		}
		return math.Pow(2.0, 10.0*t-10.0)
	case ExponentialOut:
		if t == 1.0 {
			return 1.0
		}
		return 1.0 - math.Pow(2.0, -10.0*t)
	case ExponentialInOut:
		if t == 0.0 || t == 1.0 {
			return t
		}
		if t < 0.5 {
			return math.Pow(2.0, 20.0*t-10.0) / 2.0
		}
		return (2.0 - math.Pow(2.0, -20.0*t+10.0)) / 2.0

	case ElasticIn:
		if t == 0.0 || t == 1.0 {
			return t
		}
		return -math.Pow(2.0, 10.0*t-10.0) * math.Sin((10.0*t-10.75)*elasticC4)
	case ElasticOut:
		if t == 0.0 || t == 1.0 {
			return t
		}
		return math.Pow(2.0, -10.0*t)*math.Sin((10.0*t-0.75)*elasticC4) + 1.0
	case ElasticInOut:
		if t == 0.0 || t == 1.0 {
			return t
		}
		if t < 0.5 {
			return -(math.Pow(2.0, 20.0*t-10.0) * math.Sin((20.0*t-11.125)*elasticC5)) / 2.0
		}
		return (math.Pow(2.0, -20.0*t+10.0)*math.Sin((20.0*t-11.125)*elasticC5))/2.0 + 1.0

	case BackIn:
		return backC3*t*t*t - backC1*t*t
	case BackOut:
		return 1.0 + backC3*math.Pow(t-1.0, 3) + backC1*math.Pow(t-1.0, 2)
	case BackInOut:
		if t < 0.5 {
			return (math.Pow(2.0*t, 2) * ((backC2+1.0)*2.0*t - backC2)) / 2.0
		}
		return (math.Pow(2.0*t-2.0, 2)*((backC2+1.0)*(t*2.0-2.0)+backC2) + 2.0) / 2.0

	case BounceIn:
		return 1.0 - bounceOut(1.0-t)
	case BounceOut:
		return bounceOut(t)
	case BounceInOut:
		if t < 0.5 {
			return (1.0 - bounceOut(1.0-2.0*t)) / 2.0
		}
		return (1.0 + bounceOut(2.0*t-1.0)) / 2.0

	case SmoothStep:
		return t * t * (3.0 - 2.0*t)
	case SmootherStep:
		return t * t * t * (t*(6.0*t-15.0) + 10.0)
	}

	return t
}

func bounceOut(t float64) float64 {
	const n1 = 7.5625
	const d1 = 2.75

	switch {
	case t < 1.0/d1:
		return n1 * t * t
	case t < 2.0/d1:
		t -= 1.5 / d1
		return n1*t*t + 0.75
	case t < 2.5/d1:
		t -= 2.25 / d1
		return n1*t*t + 0.9375
	}
	t -= 2.625 / d1
	return n1*t*t + 0.984375
}
