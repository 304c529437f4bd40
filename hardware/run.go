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
	"github.com/troed/hatari/curated"
	"github.com/troed/hatari/hardware/cycint"
)

// The continueCheck() function in Run() only runs once per CPU batch but it
// can still be expensive. PerformanceBrake is a standard value that can be
// used to filter out expensive code paths within a continueCheck()
// implementation. For example:
//
//	performanceFilter++
//	if performanceFilter >= hardware.PerformanceBrake {
//		performanceFilter = 0
//		if endCondition {
//			return false, nil
//		}
//	}
//	return true, nil
const PerformanceBrake = 100

// number of CPU cycles to run per batch when no interrupt is armed. one
// video line's worth
const idleBatch = 512

// Run sets the emulation running as quickly as possible. The continueCheck
// function is called once per CPU batch; returning false ends the run.
//
// Each batch is sized with the scheduler's CyclesToNext() so the CPU never
// runs past a due interrupt by more than the tail end of one instruction.
func (st *ST) Run(continueCheck func() (bool, error)) error {
	if continueCheck == nil {
		continueCheck = func() (bool, error) { return true, nil }
	}

	for {
		batch, ok := st.CycInt.CyclesToNext(cycint.CPUCycles)
		if !ok {
			batch = idleBatch
		}

		// the CPU cannot subdivide an instruction. a batch of zero cycles
		// still executes one instruction, with Advance() receiving the
		// overshoot
		var elapsed int64
		for {
			cycles := st.CPU.Step()
			if cycles <= 0 {
				return curated.Errorf("hardware: CPU consumed no cycles (PC=%08x)", st.CPU.PC())
			}
			elapsed += int64(cycles)
			if elapsed >= batch {
				break
			}
		}

		st.CycInt.Advance(st.CycInt.ToInternal(elapsed, cycint.CPUCycles))

		cont, err := continueCheck()
		if err != nil {
			return err
		}
		if !cont {
			return nil
		}
	}
}

// Step the emulation by one CPU instruction, advancing the scheduler by the
// cycles consumed. Useful for debuggers and tests.
func (st *ST) Step() error {
	cycles := st.CPU.Step()
	if cycles <= 0 {
		return curated.Errorf("hardware: CPU consumed no cycles (PC=%08x)", st.CPU.PC())
	}
	st.CycInt.Advance(st.CycInt.ToInternal(int64(cycles), cycint.CPUCycles))
	return nil
}
