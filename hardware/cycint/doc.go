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

// Package cycint is the cycle-accurate interrupt scheduler at the centre of
// the emulated machine. Every chip in the ST produces effects at precise
// moments measured against its own clock; this package merges those clock
// domains onto one timeline and calls the correct chip handler at the
// correct instant, in the correct order.
//
// Durations are converted once, at arming time, into the internal tick unit
// defined in the clocks package. After that only internal ticks are
// tracked, so a change of CPU speed never disturbs an event that is already
// armed.
//
// The pending interrupts are kept in a fixed table indexed by the Interrupt
// enumeration, with an intrusive chain ordering the active entries by due
// time. Each chain entry stores the tick delta from its predecessor rather
// than an absolute due time. Advancing the timeline therefore touches only
// the head of the chain, keeping the cost of the Advance() function, which
// is called every few emulated instructions, independent of the number of
// armed interrupts.
//
// The CPU emulation drives the scheduler cooperatively on a single thread:
// it runs a batch of instructions, sized with CyclesToNext(), and reports
// the elapsed cycles to Advance(). Handlers run synchronously inside
// Advance() and may re-arm any interrupt, including their own, but must not
// call Advance() themselves.
package cycint
