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
	"io"

	"github.com/bradleyjkemp/memviz"
)

// vizEntry mirrors one chain entry for the benefit of the memviz package,
// which renders pointer-linked structures. The live table links entries by
// array index so it is rebuilt as a true linked list before rendering.
type vizEntry struct {
	Interrupt string
	Delta     int64
	Due       int64
	Next      *vizEntry
}

// Visualise writes a graphviz (dot) rendering of the pending interrupt
// chain. Useful when debugging timing problems in device emulation: the
// graph shows due order, per-entry deltas and resolved due times at a
// glance.
func (cy *CycInt) Visualise(output io.Writer) {
	root := &vizEntry{Interrupt: "head"}
	node := root

	var acc int64
	for i := cy.head; i != InterruptNull; i = cy.slots[i].next {
		acc += cy.slots[i].cycles
		node.Next = &vizEntry{
			Interrupt: i.String(),
			Delta:     cy.slots[i].cycles,
			Due:       acc,
		}
		node = node.Next
	}

	memviz.Map(output, root)
}
