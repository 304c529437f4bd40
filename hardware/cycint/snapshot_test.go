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

package cycint_test

import (
	"testing"

	"github.com/troed/hatari/curated"
	"github.com/troed/hatari/hardware/cycint"
	"github.com/troed/hatari/snapshot"
	"github.com/troed/hatari/test"
)

func TestSnapshotRestore(t *testing.T) {
	hn := newHarness(cycint.InterruptVideoVBL, cycint.InterruptVideoHBL,
		cycint.InterruptMFPMainTimerA)

	hn.cy.AddAbsolute(cycint.InterruptVideoVBL, 160256, cycint.CPUCycles)
	hn.cy.AddAbsolute(cycint.InterruptVideoHBL, 512, cycint.CPUCycles)
	hn.cy.AddAbsolute(cycint.InterruptMFPMainTimerA, 10, cycint.MFPCycles)
	hn.cy.SetCPUFreqShift(1)

	s := snapshot.NewState()
	hn.cy.Snapshot(s)

	// restore into a fresh scheduler. handlers are not part of the
	// persisted state so they are registered anew
	rt := newHarness(cycint.InterruptVideoVBL, cycint.InterruptVideoHBL,
		cycint.InterruptMFPMainTimerA)
	err := rt.cy.Restore(snapshot.StateFromBytes(s.Bytes()))
	test.ExpectedSuccess(t, err)

	test.Equate(t, rt.cy.CPUFreqShift(), 1)
	test.Equate(t, rt.cy.String(), hn.cy.String())
	test.Equate(t, rt.cy.ActiveNow().String(), hn.cy.ActiveNow().String())

	// both schedulers replay identically
	hn.cy.Advance(hn.cy.ToInternal(200000, cycint.CPUCycles))
	rt.cy.Advance(rt.cy.ToInternal(200000, cycint.CPUCycles))
	test.Equate(t, len(rt.sequence), len(hn.sequence))
	for i := range rt.sequence {
		test.Equate(t, rt.sequence[i].String(), hn.sequence[i].String())
	}
}

func TestSnapshotImmediateRestore(t *testing.T) {
	// capturing and restoring with no intervening Advance() leaves the
	// next-fire interrupt and its remaining ticks identical
	hn := newHarness(cycint.InterruptFDC)
	hn.cy.AddAbsolute(cycint.InterruptFDC, 100, cycint.CPUCycles)

	s := snapshot.NewState()
	hn.cy.Snapshot(s)

	before := hn.cy.String()
	err := hn.cy.Restore(snapshot.StateFromBytes(s.Bytes()))
	test.ExpectedSuccess(t, err)
	test.Equate(t, hn.cy.String(), before)

	next, ok := hn.cy.CyclesToNext(cycint.CPUCycles)
	test.ExpectedSuccess(t, ok)
	test.Equate(t, next, 100)
}

func TestSnapshotSuspended(t *testing.T) {
	hn := newHarness(cycint.InterruptMIDI)
	hn.cy.AddAbsolute(cycint.InterruptMIDI, 100, cycint.CPUCycles)
	hn.cy.Advance(hn.cy.ToInternal(40, cycint.CPUCycles))
	hn.cy.Suspend(cycint.InterruptMIDI)

	s := snapshot.NewState()
	hn.cy.Snapshot(s)

	rt := newHarness(cycint.InterruptMIDI)
	err := rt.cy.Restore(snapshot.StateFromBytes(s.Bytes()))
	test.ExpectedSuccess(t, err)

	// the suspended countdown survived and can be resumed
	test.ExpectedFailure(t, rt.cy.IsActive(cycint.InterruptMIDI))
	rt.cy.Resume(cycint.InterruptMIDI)

	rt.cy.Advance(rt.cy.ToInternal(59, cycint.CPUCycles))
	test.Equate(t, rt.count(cycint.InterruptMIDI), 0)
	rt.cy.Advance(rt.cy.ToInternal(1, cycint.CPUCycles))
	test.Equate(t, rt.count(cycint.InterruptMIDI), 1)
}

func TestSnapshotUnacknowledged(t *testing.T) {
	cy := cycint.NewCycInt()

	fired := 0
	cy.Register(cycint.InterruptBlitter, func() {
		// no Acknowledge. re-arm within the same batch
		fired++
		cy.AddRelativeWithOffset(cycint.InterruptBlitter, 0, cycint.CPUCycles, 50)
	})

	cy.AddRelativeWithOffset(cycint.InterruptBlitter, 0, cycint.CPUCycles, 50)

	// the re-armed occurrence is overdue but held by the missing
	// acknowledge when the snapshot is taken
	cy.Advance(500)
	test.Equate(t, fired, 1)

	s := snapshot.NewState()
	cy.Snapshot(s)

	rt := cycint.NewCycInt()
	rtFired := 0
	rt.Register(cycint.InterruptBlitter, func() {
		rt.Acknowledge()
		rtFired++
	})
	err := rt.Restore(snapshot.StateFromBytes(s.Bytes()))
	test.ExpectedSuccess(t, err)

	// the held condition survived the round trip
	rt.Advance(100)
	test.Equate(t, rtFired, 0)

	// and clears the same way it would have without the save/load
	rt.Acknowledge()
	rt.Advance(0)
	test.Equate(t, rtFired, 1)
}

func TestRestoreRejectsWrongCount(t *testing.T) {
	s := snapshot.NewState()
	s.Write8(7)

	cy := cycint.NewCycInt()
	err := cy.Restore(snapshot.StateFromBytes(s.Bytes()))
	test.ExpectedFailure(t, err)
	test.ExpectedSuccess(t, curated.Is(err, cycint.WrongInterruptCount))
}

func TestRestoreRejectsNegativeTicks(t *testing.T) {
	hn := newHarness(cycint.InterruptVideoVBL)
	hn.cy.AddAbsolute(cycint.InterruptVideoVBL, 100, cycint.CPUCycles)

	s := snapshot.NewState()
	hn.cy.Snapshot(s)

	// corrupt the VBL entry's tick count. the entry starts after the count
	// byte and the inactive null entry, and follows its own flags byte
	raw := s.Bytes()
	copy(raw[1+9+1:], []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff})

	// the failed restore leaves the previous state untouched
	hn.cy.AddAbsolute(cycint.InterruptVideoVBL, 999, cycint.CPUCycles)
	before := hn.cy.String()

	err := hn.cy.Restore(snapshot.StateFromBytes(raw))
	test.ExpectedFailure(t, err)
	test.ExpectedSuccess(t, curated.Is(err, cycint.CorruptSnapshot))
	test.Equate(t, hn.cy.String(), before)
}

func TestRestoreRejectsTruncated(t *testing.T) {
	hn := newHarness(cycint.InterruptVideoVBL)
	hn.cy.AddAbsolute(cycint.InterruptVideoVBL, 100, cycint.CPUCycles)

	s := snapshot.NewState()
	hn.cy.Snapshot(s)

	before := hn.cy.String()
	err := hn.cy.Restore(snapshot.StateFromBytes(s.Bytes()[:10]))
	test.ExpectedFailure(t, err)
	test.ExpectedSuccess(t, curated.Is(err, snapshot.TruncatedState))
	test.Equate(t, hn.cy.String(), before)
}
