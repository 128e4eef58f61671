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

// Package container implements the low-level framing of the Interplay
// MVE container: the mixed-endianness primitive reads the packet/opcode
// stream is built from.
package container

import (
	"encoding/binary"
	"io"

	"github.com/SirYodaJedi/scummvm/mveerr"
)

// BitSource is a thin, non-owning view over an externally supplied byte
// stream. The stream is consumed strictly in order; BitSource never
// seeks.
type BitSource struct {
	r io.Reader
}

// NewBitSource wraps r. The caller retains ownership of r.
func NewBitSource(r io.Reader) *BitSource {
	return &BitSource{r: r}
}

// ReadU16LE reads a little-endian 16-bit integer.
func (b *BitSource) ReadU16LE() (uint16, error) {
	var buf [2]byte
	if err := b.fill(buf[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(buf[:]), nil
}

// ReadU16BE reads a big-endian 16-bit integer. Used exclusively for
// opcode tags — every other multi-byte field in the container is
// little-endian.
func (b *BitSource) ReadU16BE() (uint16, error) {
	var buf [2]byte
	if err := b.fill(buf[:]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(buf[:]), nil
}

// ReadU32LE reads a little-endian 32-bit integer.
func (b *BitSource) ReadU32LE() (uint32, error) {
	var buf [4]byte
	if err := b.fill(buf[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(buf[:]), nil
}

// ReadBytes reads exactly n raw bytes.
func (b *BitSource) ReadBytes(n int) ([]byte, error) {
	buf := make([]byte, n)
	if err := b.fill(buf); err != nil {
		return nil, err
	}
	return buf, nil
}

// Skip discards n bytes.
func (b *BitSource) Skip(n int) error {
	if n <= 0 {
		return nil
	}
	_, err := io.CopyN(io.Discard, b.r, int64(n))
	if err != nil {
		return mveerr.Errorf(mveerr.Truncated, "skip %d bytes: %v", n, err)
	}
	return nil
}

func (b *BitSource) fill(buf []byte) error {
	if _, err := io.ReadFull(b.r, buf); err != nil {
		return mveerr.Errorf(mveerr.Truncated, "read %d bytes: %v", len(buf), err)
	}
	return nil
}
