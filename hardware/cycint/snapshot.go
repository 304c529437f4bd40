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

package cycint

import (
	"github.com/troed/hatari/curated"
	"github.com/troed/hatari/snapshot"
)

// Error patterns returned by the Restore() function.
const (
	WrongInterruptCount = "cycint: snapshot: wrong interrupt count (%d)"
	CorruptSnapshot     = "cycint: snapshot: %s"
)

// flag bits in the per interrupt snapshot record
const (
	snapshotActive         = 0x01
	snapshotUnacknowledged = 0x02
)

// Snapshot writes the scheduler state in a fixed field order: the interrupt
// count, then for every interrupt in enumeration order a flags byte and the
// absolute number of remaining ticks, then the CPU frequency shift, then
// the interrupt Acknowledge() currently applies to.
//
// Deltas are resolved to absolute values before writing so the format does
// not depend on the order in which interrupts were armed. A suspended
// interrupt is written as inactive with its preserved countdown. An
// interrupt held overdue by a missing acknowledge is written as due
// immediately; the amount it has overrun by is not preserved.
func (cy *CycInt) Snapshot(s *snapshot.State) {
	var abs [MaxInterrupts]int64
	var acc int64
	for i := cy.head; i != InterruptNull; i = cy.slots[i].next {
		acc += cy.slots[i].cycles
		abs[i] = acc
	}

	s.Write8(uint8(MaxInterrupts))
	for id := InterruptNull; id < MaxInterrupts; id++ {
		var flags uint8
		if cy.slots[id].active {
			flags |= snapshotActive
		}
		if cy.slots[id].unacknowledged {
			flags |= snapshotUnacknowledged
		}
		s.Write8(flags)

		if cy.slots[id].active {
			if abs[id] < 0 {
				abs[id] = 0
			}
			s.Write64(abs[id])
		} else {
			// zero unless the interrupt is suspended
			s.Write64(cy.slots[id].cycles)
		}
	}
	s.Write8(uint8(cy.shift))
	s.Write8(uint8(cy.dispatching))
}

// Restore rebuilds the scheduler from a snapshot. The delta chain is
// reconstructed from the absolute values, re-sorted by due time with the
// usual ascending-identity tie break, so the next-fire behaviour is
// identical to the moment the snapshot was taken.
//
// A snapshot whose structural size does not match the compiled interrupt
// count, or that contains negative tick values, is rejected. On rejection
// the in-memory state is left untouched so the caller can fall back to a
// full reset.
func (cy *CycInt) Restore(s *snapshot.State) error {
	count := s.Read8()
	if err := s.Error(); err != nil {
		return err
	}
	if count != uint8(MaxInterrupts) {
		return curated.Errorf(WrongInterruptCount, count)
	}

	var flags [MaxInterrupts]uint8
	var remain [MaxInterrupts]int64
	for id := InterruptNull; id < MaxInterrupts; id++ {
		flags[id] = s.Read8()
		remain[id] = s.Read64()
	}
	shift := s.Read8()
	dispatching := s.Read8()

	if err := s.Error(); err != nil {
		return err
	}

	// validate before touching the live table
	for id := InterruptNull; id < MaxInterrupts; id++ {
		if remain[id] < 0 {
			return curated.Errorf(CorruptSnapshot, "negative remaining ticks")
		}
		if flags[id]&^(snapshotActive|snapshotUnacknowledged) != 0 {
			return curated.Errorf(CorruptSnapshot, "impossible interrupt flags")
		}
	}
	if flags[InterruptNull] != 0 {
		return curated.Errorf(CorruptSnapshot, "null interrupt is armed")
	}
	if shift > 2 {
		return curated.Errorf(CorruptSnapshot, "impossible CPU frequency shift")
	}
	if dispatching >= uint8(MaxInterrupts) {
		return curated.Errorf(CorruptSnapshot, "impossible unacknowledged interrupt")
	}

	// commit
	for i := range cy.slots {
		cy.slots[i] = entry{next: InterruptNull}
	}
	cy.head = InterruptNull
	cy.shift = int(shift)
	cy.dispatching = Interrupt(dispatching)

	for id := InterruptNull + 1; id < MaxInterrupts; id++ {
		cy.slots[id].unacknowledged = flags[id]&snapshotUnacknowledged != 0
		if flags[id]&snapshotActive != 0 {
			// insert() maintains due time order and the identity tie break
			cy.insert(id, remain[id])
			cy.slots[id].armed = remain[id]
		} else if remain[id] > 0 {
			// a suspended interrupt survives a save/load
			cy.slots[id].paused = true
			cy.slots[id].cycles = remain[id]
			cy.slots[id].armed = remain[id]
		}
	}

	return nil
}
