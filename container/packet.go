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

package container

import (
	"bytes"

	"github.com/SirYodaJedi/scummvm/mveerr"
)

// Signature is the literal 19-byte prefix every MVE stream must begin
// with: the ASCII string "Interplay MVE File" followed by 0x1A.
var Signature = append([]byte("Interplay MVE File"), 0x1A)

// magic words following the signature, each a little-endian uint16.
var magicWords = [3]uint16{0x001A, 0x0100, 0x1133}

// PacketKind identifies the outer framing unit a packet carries.
// Meaningful for diagnostics only — the opcode stream inside a packet
// is what actually drives the decoder's behavior.
type PacketKind uint16

// PacketHeader is the (length, kind) pair that precedes every packet's
// opcode stream.
type PacketHeader struct {
	Length uint16
	Kind   PacketKind
}

// ReadPacketHeader reads the next packet header from b.
func ReadPacketHeader(b *BitSource) (PacketHeader, error) {
	length, err := b.ReadU16LE()
	if err != nil {
		return PacketHeader{}, err
	}
	kind, err := b.ReadU16LE()
	if err != nil {
		return PacketHeader{}, err
	}
	return PacketHeader{Length: length, Kind: PacketKind(kind)}, nil
}

// OpcodeHeader is the (payload length, opcode tag) pair that precedes
// every opcode's payload. Note the asymmetry: the length is
// little-endian but the tag is read big-endian.
type OpcodeHeader struct {
	PayloadLength uint16
	Tag           uint16
}

// ReadOpcodeHeader reads the next opcode header from b.
func ReadOpcodeHeader(b *BitSource) (OpcodeHeader, error) {
	length, err := b.ReadU16LE()
	if err != nil {
		return OpcodeHeader{}, err
	}
	tag, err := b.ReadU16BE()
	if err != nil {
		return OpcodeHeader{}, err
	}
	return OpcodeHeader{PayloadLength: length, Tag: tag}, nil
}

// ReadHeader validates the 19-byte signature and three magic words that
// open every MVE stream.
func ReadHeader(b *BitSource) error {
	sig, err := b.ReadBytes(len(Signature))
	if err != nil {
		return err
	}
	if !bytes.Equal(sig, Signature) {
		return mveerr.Errorf(mveerr.InvalidSignature, "signature mismatch: got %x", sig)
	}

	for _, want := range magicWords {
		got, err := b.ReadU16LE()
		if err != nil {
			return err
		}
		if got != want {
			return mveerr.Errorf(mveerr.InvalidSignature, "magic word mismatch: got %#04x, want %#04x", got, want)
		}
	}

	return nil
}
