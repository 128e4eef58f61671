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

// DecodeFormat10 reconstructs Surfaces.F for the next frame from a
// skip map, a decoding map (one 16-bit opcode per non-skipped block),
// and literal block data at offset 14 of frameData. It implements
// spec.md §4.5.
func DecodeFormat10(s *Surfaces, skipMap, decodingMap, frameData []byte) error {
	if len(frameData) < decodeMapHeaderSize {
		return mveerr.Errorf(mveerr.Truncated, "format 10 frame data shorter than header: have %d, need %d", len(frameData), decodeMapHeaderSize)
	}
	literal := frameData[decodeMapHeaderSize:]

	blockCount := s.BlockCount()
	skip := NewSkipStream(skipMap)

	mapPos := 0
	nextOp := func() (uint16, error) {
		if mapPos+2 > len(decodingMap) {
			return 0, mveerr.Errorf(mveerr.MapExhausted, "decoding map exhausted at offset %d", mapPos)
		}
		op := uint16(decodingMap[mapPos]) | uint16(decodingMap[mapPos+1])<<8
		mapPos += 2
		return op, nil
	}

	litPos := 0
	nextLiteral := func() ([]byte, error) {
		if litPos+64 > len(literal) {
			return nil, mveerr.Errorf(mveerr.Truncated, "format 10 literal stream exhausted at block offset %d", litPos)
		}
		b := literal[litPos : litPos+64]
		litPos += 64
		return b, nil
	}

	// Pass 1: literal blocks into the R0 scratch surface.
	skip.Reset()
	for b := 0; b < blockCount; b++ {
		skipped, err := skip.Skip()
		if err != nil {
			return err
		}
		if skipped {
			continue
		}
		op, err := nextOp()
		if err != nil {
			return err
		}
		if op == 0 {
			lit, err := nextLiteral()
			if err != nil {
				return err
			}
			s.CopyLiteralBlock(s.R0(), lit, b)
		}
	}

	// Pass 2: motion-compensated copies into R0, sourced from R0 itself
	// (already-updated scratch) or R1 (last fully-decoded reference).
	skip.Reset()
	mapPos = 0
	for b := 0; b < blockCount; b++ {
		skipped, err := skip.Skip()
		if err != nil {
			return err
		}
		if skipped {
			continue
		}
		op, err := nextOp()
		if err != nil {
			return err
		}
		if op == 0 {
			continue
		}
		offset := int(op&0x7FFF) - 0x4000
		src := s.R0()
		if op&0x8000 != 0 {
			src = s.R1()
		}
		s.CopyBlockWithOffset(s.R0(), src, b, offset)
	}

	// Pass 3: blit the finished scratch surface into F for non-skipped
	// blocks; skipped blocks keep whatever F already showed, since F is
	// never cleared between frames.
	skip.Reset()
	for b := 0; b < blockCount; b++ {
		skipped, err := skip.Skip()
		if err != nil {
			return err
		}
		if skipped {
			continue
		}
		s.CopyBlockWithOffset(s.F(), s.R0(), b, 0)
	}

	s.SwapFormat10()

	return nil
}
