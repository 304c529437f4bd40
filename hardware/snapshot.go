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

package hardware

import (
	"github.com/troed/hatari/snapshot"
)

// Snapshot serialises the machine state. Emulation can resume bit-exactly
// from the returned state with the Restore() function.
//
// Note that the CPU is not part of the snapshot process; the CPU emulation
// is responsible for its own registers and memory.
func (st *ST) Snapshot() *snapshot.State {
	s := snapshot.NewState()
	st.CycInt.Snapshot(s)
	return s
}

// Restore the machine state from a snapshot. On failure the machine is
// left as it was; a Reset() is the caller's safe fallback.
func (st *ST) Restore(s *snapshot.State) error {
	return st.CycInt.Restore(s)
}
