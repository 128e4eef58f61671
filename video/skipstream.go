// This file is part of Gopher2600.
//
// Gopher2600 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher2600 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher2600.  If not, see <https://www.gnu.org/licenses/>.

package video

import "github.com/SirYodaJedi/scummvm/mveerr"

// SkipStream decodes the run-length skip map used by format 10 into a
// lazy sequence of per-block skip flags. A 0 bit means "block is
// skipped by this pass"; a 1 bit means "not skipped." Bits are consumed
// least-significant-first from 16-bit little-endian words.
//
// Format 10 makes three passes over the same skip map, so the stream
// must be Reset between passes rather than recreated — recreating would
// lose nothing here, but Reset mirrors the cursor-rewind the original
// decoder performs without recopying the buffer.
type SkipStream struct {
	data    []byte
	wordPos int
	bitPos  int
}

// NewSkipStream wraps the buffered skip-map payload.
func NewSkipStream(data []byte) *SkipStream {
	return &SkipStream{data: data}
}

// Reset rewinds the stream to the first bit of the first word.
func (s *SkipStream) Reset() {
	s.wordPos = 0
	s.bitPos = 0
}

// Skip reports whether the next block is skipped, advancing the cursor
// by one bit (fetching the next word when 16 bits have been consumed).
// It returns MapExhausted if the word supply runs out — a malformed
// stream condition, per spec.md §4.2.
func (s *SkipStream) Skip() (bool, error) {
	if s.bitPos == 0 {
		if (s.wordPos+1)*2 > len(s.data) {
			return false, mveerr.Errorf(mveerr.MapExhausted, "skip map exhausted at word %d", s.wordPos)
		}
	}

	word := uint16(s.data[s.wordPos*2]) | uint16(s.data[s.wordPos*2+1])<<8
	bit := (word >> s.bitPos) & 1

	s.bitPos++
	if s.bitPos == 16 {
		s.bitPos = 0
		s.wordPos++
	}

	return bit == 0, nil
}
