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

// Package snapshot provides the byte-level codec used for save states.
//
// The emulation resumes bit-exactly from a restored state, so the format is
// deliberately plain: a flat sequence of fixed-width little-endian fields in
// a fixed order, no compression and no versioning. Each sub-system is
// responsible for validating the values it reads before committing them to
// its own state.
package snapshot
