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

package snapshot

import (
	"os"

	"github.com/troed/hatari/curated"
)

// sentinel error returned by State.Error() if a read has gone past the end
// of the state data.
const TruncatedState = "snapshot: truncated state data"

// State is the serialised form of the emulated machine. Sub-systems write
// their state with the Write*() functions in a fixed field order and read
// it back with the corresponding Read*() functions in the same order.
//
// Reads that go past the end of the data do not panic. They return zero
// values and raise a sticky error, retrievable with the Error() function.
// Sub-systems should check Error() once decoding is complete and before
// committing any of the values read.
type State struct {
	raw          []byte
	readPosition int

	// sticky read error. once set all subsequent reads return zero values
	err error
}

// NewState creates an empty State ready for writing.
func NewState() *State {
	return &State{
		raw: make([]byte, 0),
	}
}

// StateFromBytes creates a State from previously serialised data.
func StateFromBytes(raw []byte) *State {
	return &State{
		raw: raw,
	}
}

// ResetPosition rewinds the read position, allowing the state to be read
// again from the beginning. The sticky read error is also cleared.
func (s *State) ResetPosition() {
	s.readPosition = 0
	s.err = nil
}

// Error returns the sticky read error, or nil if all reads so far have been
// in bounds.
func (s *State) Error() error {
	return s.err
}

// Bytes returns the raw serialised data.
func (s *State) Bytes() []byte {
	return s.raw
}

func (s *State) WriteBool(value bool) {
	if value {
		s.raw = append(s.raw, 1)
	} else {
		s.raw = append(s.raw, 0)
	}
}

func (s *State) Write8(value uint8) {
	s.raw = append(s.raw, value)
}

func (s *State) Write64(value int64) {
	v := uint64(value)
	s.raw = append(s.raw,
		byte(v), byte(v>>8), byte(v>>16), byte(v>>24),
		byte(v>>32), byte(v>>40), byte(v>>48), byte(v>>56))
}

func (s *State) ReadBool() bool {
	if !s.bounds(1) {
		return false
	}
	value := s.raw[s.readPosition] != 0
	s.readPosition++
	return value
}

func (s *State) Read8() uint8 {
	if !s.bounds(1) {
		return 0
	}
	value := s.raw[s.readPosition]
	s.readPosition++
	return value
}

func (s *State) Read64() int64 {
	if !s.bounds(8) {
		return 0
	}
	var v uint64
	for i := 7; i >= 0; i-- {
		v = v<<8 | uint64(s.raw[s.readPosition+i])
	}
	s.readPosition += 8
	return int64(v)
}

func (s *State) bounds(n int) bool {
	if s.err != nil {
		return false
	}
	if s.readPosition+n > len(s.raw) {
		s.err = curated.Errorf(TruncatedState)
		return false
	}
	return true
}

// SaveToFile writes the raw serialised data to the named file.
func (s *State) SaveToFile(filename string) error {
	err := os.WriteFile(filename, s.raw, 0644)
	if err != nil {
		return curated.Errorf("snapshot: %v", err)
	}
	return nil
}

// LoadFromFile creates a State from the contents of the named file.
func LoadFromFile(filename string) (*State, error) {
	raw, err := os.ReadFile(filename)
	if err != nil {
		return nil, curated.Errorf("snapshot: %v", err)
	}
	return StateFromBytes(raw), nil
}
