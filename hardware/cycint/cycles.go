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
	"fmt"

	"github.com/troed/hatari/hardware/clocks"
)

// Domain classifies a duration according to the native clock it is counted
// against.
type Domain int

// List of valid Domain values.
//
// CPUCycles are cycles of the nominal 8MHz CPU clock. The internal tick is
// defined relative to this clock so conversion ignores the CPU frequency
// shift: a machine configured for a faster CPU packs more cycles into the
// same span of internal ticks, which is exactly the behaviour of the real
// hardware.
//
// MFPCycles are cycles of the 2.4576MHz crystal feeding the MFP timers.
// The crystal does not speed up with the CPU, so the duration is
// additionally left-shifted by the CPU frequency shift to hold its
// real-world length against the now faster nominal clock. CPU8Cycles, a
// duration meant as "8MHz cycles regardless of configured speed", is
// shifted for the same reason.
const (
	CPUCycles Domain = iota
	MFPCycles
	CPU8Cycles
)

func (domain Domain) String() string {
	switch domain {
	case CPUCycles:
		return "CPU"
	case MFPCycles:
		return "MFP"
	case CPU8Cycles:
		return "CPU8"
	}
	panic(fmt.Sprintf("cycint: unknown cycle domain (%d)", int(domain)))
}

// ToInternal converts a duration counted in the given domain to internal
// ticks. The shift argument is the CPU frequency shift in effect; use the
// CycInt method of the same name to apply the scheduler's current shift.
func ToInternal(duration int64, domain Domain, shift int) int64 {
	switch domain {
	case CPUCycles:
		return duration * clocks.CPUCycleInternal
	case MFPCycles:
		return (duration * clocks.MFPCycleInternal) << shift
	case CPU8Cycles:
		return (duration * clocks.CPUCycleInternal) << shift
	}
	panic(fmt.Sprintf("cycint: unknown cycle domain (%d)", int(domain)))
}

// FromInternal converts a count of internal ticks back to a duration in the
// given domain.
//
// Rounding differs between domains and the asymmetry is deliberate. For
// example, 9500 internal ticks is 0.98 CPU cycles but 0.3 MFP cycles.
// Peripheral domains round up so that a peripheral never sees fewer of its
// own cycles than have really passed; under-counting would desynchronise
// the MFP timers. The CPU domain truncates.
func FromInternal(ticks int64, domain Domain, shift int) int64 {
	switch domain {
	case CPUCycles:
		return ticks / clocks.CPUCycleInternal
	case MFPCycles:
		return ((ticks + clocks.MFPCycleInternal - 1) / clocks.MFPCycleInternal) >> shift
	case CPU8Cycles:
		return ((ticks + clocks.CPUCycleInternal - 1) / clocks.CPUCycleInternal) >> shift
	}
	panic(fmt.Sprintf("cycint: unknown cycle domain (%d)", int(domain)))
}
