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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package. It takes a formatting pattern,
// placeholder values and returns an error.
//
// The Is() function can be used to check whether an error was created by the
// Errorf() function with a specific pattern. The pattern is what
// differentiates curated errors. For example:
//
//	a := 10
//	e := curated.Errorf("error: value = %d", a)
//
//	if curated.Is(e, "error: value = %d") {
//		fmt.Println("true")
//	}
//
// The Has() function is similar but checks if a pattern occurs somewhere in
// the error chain.
//
//	a := 10
//	e := curated.Errorf("error: value = %d", a)
//	f := curated.Errorf("fatal: %v", e)
//
//	if curated.Has(f, "error: value = %d") {
//		fmt.Println("true")
//	}
//
// The IsAny() function answers whether the error was created by
// curated.Errorf(). We can think of the difference as being 'expected' and
// 'unexpected' errors, depending on how we choose to handle the result of the
// function call.
//
// The Error() function implementation for curated errors ensures that the
// error chain is normalised. Specifically, that the chain does not contain
// duplicate adjacent parts. This alleviates the problem of when and how to
// wrap errors. For example, if A() wraps the result of B() with the pattern
// "error: %v" and B() itself returns a curated error with the pattern
// "error: %v" then the message will be:
//
//	error: not yet implemented
//
// and not:
//
//	error: error: not yet implemented
//
// For the purposes of this package we think of chains as being composed of
// parts separated by the sub-string ': ' as suggested on p239 of "The Go
// Programming Language" (Donovan, Kernighan).
//
// Sentinal patterns should be stored as a const string, suitably named and
// commented, in the package that creates the error.
package curated
