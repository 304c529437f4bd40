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
	"github.com/troed/hatari/hardware/cycint"
	"github.com/troed/hatari/logger"
)

// CPU is the interface to the instruction level CPU emulation. The
// scheduler core needs nothing more from it than the cycles it consumes.
type CPU interface {
	// Step executes one instruction and returns the number of nominal
	// 8MHz clock cycles it consumed. A machine configured for a faster
	// CPU still reports nominal cycles; the speed difference is handled
	// entirely by the scheduler's frequency shift.
	Step() int

	// PC returns the current program counter. Used for logging and
	// diagnostics only.
	PC() uint32

	// Reset the CPU to its cold-start state.
	Reset()
}

// ST is the emulated machine. Device modules arm interrupts and register
// their handler functions through the CycInt field, keyed by their own
// interrupt identity.
type ST struct {
	CPU    CPU
	CycInt *cycint.CycInt
}

// NewST is the preferred method of initialisation for the ST type.
//
// Every interrupt starts with a placeholder handler that acknowledges the
// firing and makes a log entry. A device module that services an interrupt
// replaces the placeholder with Register(); a placeholder entry appearing
// in the log therefore indicates an interrupt armed by a device that never
// registered for it.
func NewST(cpu CPU) *ST {
	st := &ST{
		CPU:    cpu,
		CycInt: cycint.NewCycInt(),
	}

	for id := cycint.InterruptNull + 1; id < cycint.MaxInterrupts; id++ {
		id := id
		st.CycInt.Register(id, func() {
			st.CycInt.Acknowledge()
			logger.Logf(logger.Allow, "cycint", "%s fired with placeholder handler (PC=%08x)", id, st.CPU.PC())
		})
	}

	return st
}

// Reset the machine. Pending interrupts do not survive a reset, warm or
// cold.
func (st *ST) Reset() {
	st.CPU.Reset()
	st.CycInt.Reset()
	logger.Log(logger.Allow, "hardware", "machine reset")
}
