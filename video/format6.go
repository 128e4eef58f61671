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

// decodeMapHeaderSize is the fixed header length at the start of a
// format 6 frame buffer; the decoding map begins immediately after it.
const decodeMapHeaderSize = 14

// DecodeFormat6 reconstructs Surfaces.F for frameNumber from frameData,
// an opaque blob whose first 14 bytes are a header this decoder skips,
// followed by a decoding map of 2*blockCount bytes, followed by the
// literal block bitstream. It implements spec.md §4.4.
func DecodeFormat6(s *Surfaces, frameData []byte, frameNumber int) error {
	blockCount := s.BlockCount()
	mapSize := blockCount * 2

	if len(frameData) < decodeMapHeaderSize+mapSize {
		return mveerr.Errorf(mveerr.Truncated, "format 6 frame data too short for decoding map: have %d, need %d", len(frameData), decodeMapHeaderSize+mapSize)
	}
	opMap := frameData[decodeMapHeaderSize : decodeMapHeaderSize+mapSize]
	literal := frameData[decodeMapHeaderSize+mapSize:]

	s.RotateFormat6(frameNumber)

	litPos := 0
	nextLiteral := func() ([]byte, error) {
		if litPos+64 > len(literal) {
			return nil, mveerr.Errorf(mveerr.Truncated, "format 6 literal stream exhausted at block offset %d", litPos)
		}
		b := literal[litPos : litPos+64]
		litPos += 64
		return b, nil
	}

	readOp := func(b int) uint16 {
		return uint16(opMap[b*2]) | uint16(opMap[b*2+1])<<8
	}

	// Pass 1: literal blocks, or carry forward from the two-frames-ago
	// reference.
	for b := 0; b < blockCount; b++ {
		op := readOp(b)
		if op == 0 {
			lit, err := nextLiteral()
			if err != nil {
				return err
			}
			s.CopyLiteralBlock(s.F(), lit, b)
		} else if frameNumber > 1 {
			s.CopyBlockWithOffset(s.F(), s.R1(), b, 0)
		}
	}

	// Pass 2: motion-compensated copies from R0 or from F itself.
	for b := 0; b < blockCount; b++ {
		op := readOp(b)
		if op == 0 {
			continue
		}
		offset := int(op&0x7FFF) - 0x4000
		if op&0x8000 != 0 {
			if frameNumber > 0 {
				s.CopyBlockWithOffset(s.F(), s.R0(), b, offset)
			}
		} else {
			s.CopyBlockWithOffset(s.F(), s.F(), b, offset)
		}
	}

	return nil
}
