// This file is part of Hatari.
//
// Hatari is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 2 of the License, or
// (at your option) any later version.
//
// Hatari is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Hatari.  If not, see <https://www.gnu.org/licenses/>.

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. It works like the
// Errorf() function in the fmt package except that the formatting pattern is
// retained and can later be used to identify the error. For example:
//
//	e := curated.Errorf("snapshot: wrong interrupt count (%d)", n)
//
//	if curated.Is(e, "snapshot: wrong interrupt count (%d)") {
//		fmt.Println("true")
//	}
//
// The Has() function is similar to Is() but checks for the pattern anywhere
// in the error chain, rather than only at the outermost error.
//
// The IsAny() function answers whether the error was created by Errorf() at
// all. An uncurated error is one this project did not create deliberately
// and usually indicates something unexpected has happened.
//
// The Error() function implementation normalises the error chain by removing
// duplicate adjacent message parts. This means callers can wrap errors
// liberally without worrying about repeated context appearing in the final
// message presented to the user.
package curated
