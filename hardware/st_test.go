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

package hardware_test

import (
	"testing"

	"github.com/troed/hatari/hardware"
	"github.com/troed/hatari/hardware/cycint"
	"github.com/troed/hatari/test"
)

// stubCPU consumes a fixed number of cycles per instruction and does
// nothing else. good enough to drive the scheduler.
type stubCPU struct {
	pc     uint32
	cycles int
}

func (c *stubCPU) Step() int {
	c.pc += 2
	return c.cycles
}

func (c *stubCPU) PC() uint32 {
	return c.pc
}

func (c *stubCPU) Reset() {
	c.pc = 0
}

func TestRunFiresOnTime(t *testing.T) {
	cpu := &stubCPU{cycles: 4}
	st := hardware.NewST(cpu)

	// a line interrupt every 512 CPU cycles, re-arming itself
	fired := 0
	st.CycInt.Register(cycint.InterruptVideoHBL, func() {
		st.CycInt.Acknowledge()
		fired++
		st.CycInt.AddRelative(cycint.InterruptVideoHBL, 512, cycint.CPUCycles)
	})
	st.CycInt.AddRelative(cycint.InterruptVideoHBL, 512, cycint.CPUCycles)

	// run for 100 lines worth of cycles
	var ran int64
	err := st.Run(func() (bool, error) {
		ran = int64(cpu.pc) / 2 * 4
		return ran < 512*100, nil
	})
	test.ExpectedSuccess(t, err)

	// with a 4 cycle instruction the batches divide the period exactly
	test.Equate(t, fired, int(ran/512))
}

func TestRunStallsOnDeadCPU(t *testing.T) {
	cpu := &stubCPU{cycles: 0}
	st := hardware.NewST(cpu)
	err := st.Run(nil)
	test.ExpectedFailure(t, err)
}

func TestStep(t *testing.T) {
	cpu := &stubCPU{cycles: 4}
	st := hardware.NewST(cpu)

	fired := 0
	st.CycInt.Register(cycint.InterruptFDC, func() {
		st.CycInt.Acknowledge()
		fired++
	})
	st.CycInt.AddRelative(cycint.InterruptFDC, 8, cycint.CPUCycles)

	test.ExpectedSuccess(t, st.Step())
	test.Equate(t, fired, 0)
	test.ExpectedSuccess(t, st.Step())
	test.Equate(t, fired, 1)
}

func TestMachineSnapshot(t *testing.T) {
	cpu := &stubCPU{cycles: 4}
	st := hardware.NewST(cpu)

	st.CycInt.AddRelative(cycint.InterruptVideoVBL, 160256, cycint.CPUCycles)

	s := st.Snapshot()

	// advance beyond the armed point then restore: the interrupt is
	// pending again, with its full countdown
	st.CycInt.Advance(st.CycInt.ToInternal(200000, cycint.CPUCycles))

	test.ExpectedSuccess(t, st.Restore(s))
	test.ExpectedSuccess(t, st.CycInt.IsActive(cycint.InterruptVideoVBL))

	next, ok := st.CycInt.CyclesToNext(cycint.CPUCycles)
	test.ExpectedSuccess(t, ok)
	test.Equate(t, next, 160256)
}

func TestReset(t *testing.T) {
	cpu := &stubCPU{cycles: 4}
	st := hardware.NewST(cpu)

	st.CycInt.AddRelative(cycint.InterruptVideoVBL, 160256, cycint.CPUCycles)
	st.Reset()

	test.ExpectedFailure(t, st.CycInt.IsActive(cycint.InterruptVideoVBL))
	test.Equate(t, int(cpu.pc), 0)
}
