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

import "fmt"

// Interrupt identifies one of the hardware timer sources serviced by the
// scheduler. The set is fixed at compile time and the value is used
// directly as an index into the pending interrupt table.
//
// When two interrupts fall due on the same internal tick the one with the
// lower Interrupt value fires first. Timing sensitive programs rely on
// this order so it must never change.
type Interrupt int

// List of valid Interrupt values.
const (
	InterruptNull Interrupt = iota
	InterruptVideoVBL
	InterruptVideoHBL
	InterruptVideoEndLine
	InterruptMFPMainTimerA
	InterruptMFPMainTimerB
	InterruptMFPMainTimerC
	InterruptMFPMainTimerD
	InterruptMFPTTTimerA
	InterruptMFPTTTimerB
	InterruptMFPTTTimerC
	InterruptMFPTTTimerD
	InterruptACIAIKBD
	InterruptIKBDResetTimer
	InterruptIKBDAutoSend
	InterruptDMASoundMicrowire
	InterruptCrossbar25MHz
	InterruptCrossbar32MHz
	InterruptFDC
	InterruptBlitter
	InterruptMIDI

	// MaxInterrupts is the number of entries in the pending interrupt
	// table, including the null entry.
	MaxInterrupts
)

func (id Interrupt) String() string {
	switch id {
	case InterruptNull:
		return "NULL"
	case InterruptVideoVBL:
		return "VIDEO/VBL"
	case InterruptVideoHBL:
		return "VIDEO/HBL"
	case InterruptVideoEndLine:
		return "VIDEO/ENDLINE"
	case InterruptMFPMainTimerA:
		return "MFP/TIMERA"
	case InterruptMFPMainTimerB:
		return "MFP/TIMERB"
	case InterruptMFPMainTimerC:
		return "MFP/TIMERC"
	case InterruptMFPMainTimerD:
		return "MFP/TIMERD"
	case InterruptMFPTTTimerA:
		return "MFP-TT/TIMERA"
	case InterruptMFPTTTimerB:
		return "MFP-TT/TIMERB"
	case InterruptMFPTTTimerC:
		return "MFP-TT/TIMERC"
	case InterruptMFPTTTimerD:
		return "MFP-TT/TIMERD"
	case InterruptACIAIKBD:
		return "ACIA/IKBD"
	case InterruptIKBDResetTimer:
		return "IKBD/RESET"
	case InterruptIKBDAutoSend:
		return "IKBD/AUTOSEND"
	case InterruptDMASoundMicrowire:
		return "DMA/MICROWIRE"
	case InterruptCrossbar25MHz:
		return "CROSSBAR/25MHZ"
	case InterruptCrossbar32MHz:
		return "CROSSBAR/32MHZ"
	case InterruptFDC:
		return "FDC"
	case InterruptBlitter:
		return "BLITTER"
	case InterruptMIDI:
		return "MIDI"
	}
	panic(fmt.Sprintf("cycint: unknown interrupt (%d)", int(id)))
}
