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
	"strings"
)

// entry is one slot in the pending interrupt table. There is exactly one
// slot per Interrupt value so arming an interrupt that is already armed
// replaces its countdown rather than adding a second occurrence.
type entry struct {
	active bool
	paused bool

	// the interrupt has fired but Acknowledge() has not been called. while
	// set the interrupt is never fired again, however it is re-armed
	unacknowledged bool

	// while active, cycles is the tick delta from the previous entry in the
	// chain. while paused it is the absolute number of remaining ticks.
	cycles int64

	// number of ticks the interrupt was armed with in total at the last
	// (re)arm. used by the CyclesPassed() function
	armed int64

	// next entry in the chain. InterruptNull terminates the chain
	next Interrupt
}

// CycInt is the pending interrupt table and its dispatcher. Create with
// NewCycInt() and register a handler for every interrupt a machine uses
// before arming anything.
//
// CycInt is not safe for concurrent use. The CPU loop and all handlers run
// cooperatively on one thread.
type CycInt struct {
	slots [MaxInterrupts]entry

	// head of the chain of active entries, ordered by due time with
	// ascending Interrupt value breaking ties
	head Interrupt

	// the fixed function for each interrupt, invoked by Advance()
	handlers [MaxInterrupts]func()

	// the CPU frequency shift. applied when converting MFP and CPU8
	// durations, never to durations already converted
	shift int

	// the most recently fired interrupt; the one Acknowledge() applies to.
	// the fired condition itself is per entry so it survives other
	// interrupts firing in between
	dispatching Interrupt

	// guard against a handler calling Advance()
	advancing bool
}

// NewCycInt is the preferred method of initialisation for the CycInt type.
func NewCycInt() *CycInt {
	return &CycInt{
		head:        InterruptNull,
		dispatching: InterruptNull,
	}
}

// String returns the chain of pending interrupts in due order. Each entry
// is shown with its tick delta from the previous entry.
func (cy *CycInt) String() string {
	s := strings.Builder{}
	for i := cy.head; i != InterruptNull; i = cy.slots[i].next {
		if i != cy.head {
			s.WriteString(" -> ")
		}
		s.WriteString(fmt.Sprintf("%s+%d", i, cy.slots[i].cycles))
	}
	return s.String()
}

// Register the fixed handler function for an interrupt. An interrupt that
// fires without a registered handler is a programming error and causes a
// panic at fire time.
func (cy *CycInt) Register(id Interrupt, handler func()) {
	cy.validate(id)
	cy.handlers[id] = handler
}

// SetCPUFreqShift changes the CPU frequency shift: 0 for 8MHz, 1 for 16MHz,
// 2 for 32MHz. Interrupts already armed keep their countdown; the shift
// only affects conversions made after the call.
//
// Must not be called from inside a handler.
func (cy *CycInt) SetCPUFreqShift(shift int) {
	if shift < 0 || shift > 2 {
		panic(fmt.Sprintf("cycint: unsupported CPU frequency shift (%d)", shift))
	}
	cy.shift = shift
}

// CPUFreqShift returns the current CPU frequency shift.
func (cy *CycInt) CPUFreqShift() int {
	return cy.shift
}

// ToInternal converts a duration to internal ticks using the scheduler's
// current CPU frequency shift.
func (cy *CycInt) ToInternal(duration int64, domain Domain) int64 {
	return ToInternal(duration, domain, cy.shift)
}

// FromInternal converts internal ticks to a duration using the scheduler's
// current CPU frequency shift.
func (cy *CycInt) FromInternal(ticks int64, domain Domain) int64 {
	return FromInternal(ticks, domain, cy.shift)
}

// AddAbsolute arms an interrupt to fire when the given duration has passed,
// measured from now. An interrupt that is already armed is re-armed with
// the new countdown.
//
// A duration that converts to zero or fewer ticks is valid. A zero-length
// timer reload is a real hardware condition; the interrupt fires on the
// very next call to Advance().
func (cy *CycInt) AddAbsolute(id Interrupt, duration int64, domain Domain) {
	cy.validate(id)
	cy.rearm(id, cy.ToInternal(duration, domain))
}

// AddRelative arms an interrupt to fire when the given duration has passed.
// Equivalent to AddAbsolute but named for the common case of a handler
// re-arming it's own interrupt for the follow-up occurrence.
func (cy *CycInt) AddRelative(id Interrupt, duration int64, domain Domain) {
	cy.AddRelativeWithOffset(id, duration, domain, 0)
}

// AddRelativeWithOffset arms an interrupt to fire when the given duration,
// plus an offset of internal ticks applied after conversion, has passed.
// Used when an interrupt must be re-armed for a follow-up occurrence that
// starts from a point other than now. The offset may be negative.
func (cy *CycInt) AddRelativeWithOffset(id Interrupt, duration int64, domain Domain, offset int64) {
	cy.validate(id)
	cy.rearm(id, cy.ToInternal(duration, domain)+offset)
}

// Modify changes the countdown of an interrupt that is already armed. Used
// when a configuration change alters the period of a running timer. A
// Modify of an interrupt that is not armed is a programming error and
// causes a panic.
func (cy *CycInt) Modify(id Interrupt, duration int64, domain Domain) {
	cy.validate(id)
	if !cy.slots[id].active {
		panic(fmt.Sprintf("cycint: Modify() of %s which is not armed", id))
	}
	cy.rearm(id, cy.ToInternal(duration, domain))
}

// Remove disarms an interrupt. It is not an error to remove an interrupt
// that is not armed. Any suspended countdown and any unacknowledged fired
// condition are forgotten.
func (cy *CycInt) Remove(id Interrupt) {
	cy.validate(id)
	if cy.slots[id].active {
		cy.unlink(id)
	}
	cy.slots[id].paused = false
	cy.slots[id].unacknowledged = false
	cy.slots[id].cycles = 0
	if cy.dispatching == id {
		cy.dispatching = InterruptNull
	}
}

// Suspend stops an armed interrupt's countdown without losing the number of
// ticks remaining. Distinct from Remove() followed by a re-arm because the
// exact remaining count is preserved for a later Resume(). Suspending an
// interrupt that is not armed is a programming error and causes a panic.
func (cy *CycInt) Suspend(id Interrupt) {
	cy.validate(id)
	if !cy.slots[id].active {
		panic(fmt.Sprintf("cycint: Suspend() of %s which is not armed", id))
	}
	rem := cy.remaining(id)
	cy.unlink(id)
	cy.slots[id].paused = true
	cy.slots[id].cycles = rem
}

// Resume restarts the countdown of a suspended interrupt with exactly the
// ticks that were left when it was suspended. Resuming an interrupt that is
// not suspended is a programming error and causes a panic.
func (cy *CycInt) Resume(id Interrupt) {
	cy.validate(id)
	if !cy.slots[id].paused {
		panic(fmt.Sprintf("cycint: Resume() of %s which is not suspended", id))
	}
	cy.slots[id].paused = false
	cy.insert(id, cy.slots[id].cycles)
}

// IsActive returns true if the interrupt is armed. A suspended interrupt is
// not active.
func (cy *CycInt) IsActive(id Interrupt) bool {
	cy.validate(id)
	return cy.slots[id].active
}

// ActiveNow returns the interrupt at the head of the chain; the one that
// will fire next. Returns InterruptNull if nothing is armed.
func (cy *CycInt) ActiveNow() Interrupt {
	return cy.head
}

// CyclesPassed returns how much time has passed since the interrupt was
// last (re)armed, converted to the requested domain. Peripheral emulation
// uses this to compute partial-period state, a timer's current counter
// value for example, without waiting for expiry. The interrupt must be
// armed or suspended.
func (cy *CycInt) CyclesPassed(id Interrupt, domain Domain) int64 {
	cy.validate(id)
	var rem int64
	if cy.slots[id].active {
		rem = cy.remaining(id)
	} else if cy.slots[id].paused {
		rem = cy.slots[id].cycles
	} else {
		panic(fmt.Sprintf("cycint: CyclesPassed() of %s which is not armed", id))
	}
	return cy.FromInternal(cy.slots[id].armed-rem, domain)
}

// CyclesToNext returns the duration until the next interrupt is due,
// converted to the requested domain, and true. Returns false if nothing is
// armed. The CPU loop uses this to size its next execution batch: for the
// CPU domain the conversion truncates so the returned batch never runs past
// the due point.
func (cy *CycInt) CyclesToNext(domain Domain) (int64, bool) {
	if cy.head == InterruptNull {
		return 0, false
	}
	rem := cy.slots[cy.head].cycles
	if rem < 0 {
		rem = 0
	}
	return cy.FromInternal(rem, domain), true
}

// Acknowledge clears the fired condition of the interrupt whose handler is
// currently running (or has most recently run). Handlers call this before
// re-arming themselves; an interrupt that has fired but has not been
// acknowledged will not fire a second time, even when other interrupts
// fire and acknowledge in between.
func (cy *CycInt) Acknowledge() {
	if cy.dispatching != InterruptNull {
		cy.slots[cy.dispatching].unacknowledged = false
		cy.dispatching = InterruptNull
	}
}

// Advance the timeline by the given number of internal ticks, firing every
// interrupt that falls due. Interrupts fire in ascending due-time order
// with ascending Interrupt value breaking ties, however large the batch.
// No interrupt is ever skipped or reordered across calls.
//
// Handlers run synchronously. A handler observes the timeline at the
// instant its interrupt fell due, so a handler that immediately re-arms its
// own interrupt produces a drift-free periodic timer regardless of how the
// CPU batches its cycles.
func (cy *CycInt) Advance(elapsed int64) {
	if cy.advancing {
		panic("cycint: Advance() called from inside a handler")
	}
	cy.advancing = true
	defer func() {
		cy.advancing = false
	}()

	for cy.head != InterruptNull {
		if cy.slots[cy.head].cycles > elapsed {
			cy.slots[cy.head].cycles -= elapsed
			return
		}

		id := cy.head

		// the head is due but its previous firing has not been
		// acknowledged. record the passage of time and leave it for a
		// later call
		if cy.slots[id].unacknowledged {
			cy.slots[id].cycles -= elapsed
			return
		}

		// consume the time up to the due point. a non-positive delta means
		// the due point is already behind us
		if cy.slots[id].cycles > 0 {
			elapsed -= cy.slots[id].cycles
		}

		// pop the head. a leftover negative delta folds into the successor
		// so every other due time is preserved
		cy.head = cy.slots[id].next
		if cy.slots[id].cycles < 0 && cy.head != InterruptNull {
			cy.slots[cy.head].cycles += cy.slots[id].cycles
		}
		cy.slots[id].active = false
		cy.slots[id].cycles = 0
		cy.slots[id].next = InterruptNull

		if cy.handlers[id] == nil {
			panic(fmt.Sprintf("cycint: %s fired with no registered handler", id))
		}
		cy.dispatching = id
		cy.slots[id].unacknowledged = true
		cy.handlers[id]()
	}
}

// Reset the table to its cold-start state. Every entry is cleared,
// suspended countdowns included. Registered handlers and the CPU frequency
// shift are retained; both are re-applied by machine configuration, not by
// the scheduler.
func (cy *CycInt) Reset() {
	for i := range cy.slots {
		cy.slots[i] = entry{next: InterruptNull}
	}
	cy.head = InterruptNull
	cy.dispatching = InterruptNull
}

// validate panics if the interrupt cannot be armed. Arming an invalid
// interrupt indicates a defect in a device module, not a runtime condition.
func (cy *CycInt) validate(id Interrupt) {
	if id <= InterruptNull || id >= MaxInterrupts {
		panic(fmt.Sprintf("cycint: invalid interrupt (%d)", int(id)))
	}
}

// rearm converts nothing; ticks are internal. replaces any existing entry
// for the interrupt.
func (cy *CycInt) rearm(id Interrupt, ticks int64) {
	if cy.slots[id].active {
		cy.unlink(id)
	}
	cy.slots[id].paused = false
	cy.slots[id].armed = ticks
	cy.insert(id, ticks)
}

// insert the interrupt into the chain with an absolute due time of ticks
// from now. the caller must ensure the interrupt is not already in the
// chain.
func (cy *CycInt) insert(id Interrupt, ticks int64) {
	var acc int64
	prev := InterruptNull

	// find the insertion point: ascending due time, ascending Interrupt
	// value among equals
	i := cy.head
	for i != InterruptNull {
		due := acc + cy.slots[i].cycles
		if due > ticks || (due == ticks && i > id) {
			break
		}
		acc = due
		prev = i
		i = cy.slots[i].next
	}

	cy.slots[id].active = true
	cy.slots[id].cycles = ticks - acc
	cy.slots[id].next = i

	// the successor's delta is now measured from the new entry
	if i != InterruptNull {
		cy.slots[i].cycles -= ticks - acc
	}

	if prev == InterruptNull {
		cy.head = id
	} else {
		cy.slots[prev].next = id
	}
}

// unlink the interrupt from the chain, folding its delta into the successor
// so every other due time is preserved.
func (cy *CycInt) unlink(id Interrupt) {
	prev := InterruptNull
	for i := cy.head; i != InterruptNull; i = cy.slots[i].next {
		if i == id {
			next := cy.slots[id].next
			if prev == InterruptNull {
				cy.head = next
			} else {
				cy.slots[prev].next = next
			}
			if next != InterruptNull {
				cy.slots[next].cycles += cy.slots[id].cycles
			}
			cy.slots[id].active = false
			cy.slots[id].next = InterruptNull
			return
		}
		prev = i
	}
	panic(fmt.Sprintf("cycint: %s is not in the pending chain", id))
}

// remaining returns the absolute number of ticks before an active interrupt
// falls due.
func (cy *CycInt) remaining(id Interrupt) int64 {
	var acc int64
	for i := cy.head; i != InterruptNull; i = cy.slots[i].next {
		acc += cy.slots[i].cycles
		if i == id {
			return acc
		}
	}
	panic(fmt.Sprintf("cycint: %s is not in the pending chain", id))
}
