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

// Curve is implemented by all response curves. Sample() returns false if the
// curve is not defined for the input value.
type Curve interface {
	Sample(t float32) (float32, bool)
}

// Func adapts an ordinary function to the Curve interface. The function is
// defined for every input.
type Func func(t float32) float32

// Sample implements the Curve interface.
func (f Func) Sample(t float32) (float32, bool) {
	return f(t), true
}
