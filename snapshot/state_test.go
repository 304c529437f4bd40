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

package snapshot_test

import (
	"testing"

	"github.com/troed/hatari/curated"
	"github.com/troed/hatari/snapshot"
	"github.com/troed/hatari/test"
)

func TestReadback(t *testing.T) {
	s := snapshot.NewState()
	s.Write8(21)
	s.WriteBool(true)
	s.Write64(-9600)
	s.Write64(1<<62 + 31333)

	r := snapshot.StateFromBytes(s.Bytes())
	test.Equate(t, r.Read8(), uint8(21))
	test.Equate(t, r.ReadBool(), true)
	test.Equate(t, r.Read64(), int64(-9600))
	test.Equate(t, r.Read64(), int64(1<<62+31333))
	test.ExpectedSuccess(t, r.Error())
}

func TestTruncated(t *testing.T) {
	s := snapshot.NewState()
	s.Write8(1)

	r := snapshot.StateFromBytes(s.Bytes())
	test.Equate(t, r.Read8(), uint8(1))

	// reading past the end returns a zero value and raises the sticky error
	test.Equate(t, r.Read64(), int64(0))
	test.ExpectedFailure(t, r.Error())
	test.ExpectedSuccess(t, curated.Is(r.Error(), snapshot.TruncatedState))

	// error remains sticky for subsequent reads
	test.Equate(t, r.ReadBool(), false)
	test.ExpectedFailure(t, r.Error())

	// ResetPosition clears the error
	r.ResetPosition()
	test.ExpectedSuccess(t, r.Error())
	test.Equate(t, r.Read8(), uint8(1))
}
