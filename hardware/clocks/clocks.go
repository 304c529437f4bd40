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

// Package clocks defines the constant values that describe the clock
// crystals in the ST console.
//
// The CPU and the MFP 68901 peripheral chip are driven by different
// crystals. Their frequencies are not related by any convenient ratio so
// durations measured against one clock do not convert to whole numbers of
// the other. The scheduler deals in a much finer "internal" tick instead,
// defined such that one CPU cycle is exactly CPUCycleInternal ticks. One
// MFP cycle is then very nearly MFPCycleInternal ticks: the multiplier
// pair keeps the long-run conversion error below one CPU cycle per many
// seconds of emulated time, which is finer than any program can observe.
package clocks

const (
	// CPU is the frequency of the 68000 in a PAL machine. Usually quoted
	// as 8MHz.
	CPU = 8021247

	// MFP is the frequency of the 2.4576MHz crystal feeding the MFP 68901
	// timers. It is independent of the CPU clock and does not change when
	// a machine is configured for a faster CPU.
	MFP = 2457600
)

const (
	// One CPU cycle expressed in internal scheduler ticks.
	CPUCycleInternal = 9600

	// One MFP cycle expressed in internal scheduler ticks.
	//
	//	CPUCycleInternal * CPU / MFP = 31332.9
	//
	// rounded to the nearest integer.
	MFPCycleInternal = 31333
)
