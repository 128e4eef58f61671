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

// Package mvetest builds synthetic Interplay MVE byte streams for use in
// package tests, so every package can exercise the real container
// framing without checking in binary fixture files.
package mvetest

import (
	"bytes"
	"encoding/binary"
)

// Builder accumulates a complete MVE stream: the fixed header, followed
// by a sequence of packets each holding a sequence of opcodes.
type Builder struct {
	buf        bytes.Buffer
	packet     bytes.Buffer
	packetKind uint16
	inPacket   bool
}

// NewBuilder returns a Builder with the signature and magic words
// already written.
func NewBuilder() *Builder {
	b := &Builder{}
	b.buf.WriteString("Interplay MVE File")
	b.buf.WriteByte(0x1A)
	b.writeU16(&b.buf, 0x001A)
	b.writeU16(&b.buf, 0x0100)
	b.writeU16(&b.buf, 0x1133)
	return b
}

func (b *Builder) writeU16(w *bytes.Buffer, v uint16) {
	var buf [2]byte
	binary.LittleEndian.PutUint16(buf[:], v)
	w.Write(buf[:])
}

func (b *Builder) writeU32(w *bytes.Buffer, v uint32) {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], v)
	w.Write(buf[:])
}

// Packet starts a new outer packet of the given kind. Any previously
// open packet is closed first.
func (b *Builder) Packet(kind uint16) *Builder {
	b.closePacket()
	b.packetKind = kind
	b.inPacket = true
	return b
}

func (b *Builder) closePacket() {
	if !b.inPacket {
		return
	}
	b.writeU16(&b.buf, uint16(b.packet.Len()))
	b.writeU16(&b.buf, b.packetKind)
	b.buf.Write(b.packet.Bytes())
	b.packet.Reset()
	b.inPacket = false
}

// Opcode appends an opcode with the given big-endian tag and raw payload
// to the packet currently under construction.
func (b *Builder) Opcode(tag uint16, payload []byte) *Builder {
	b.writeU16(&b.packet, uint16(len(payload)))
	var tagBuf [2]byte
	binary.BigEndian.PutUint16(tagBuf[:], tag)
	b.packet.Write(tagBuf[:])
	b.packet.Write(payload)
	return b
}

// U16LE encodes v as a little-endian opcode payload fragment.
func U16LE(v uint16) []byte {
	buf := make([]byte, 2)
	binary.LittleEndian.PutUint16(buf, v)
	return buf
}

// U32LE encodes v as a little-endian opcode payload fragment.
func U32LE(v uint32) []byte {
	buf := make([]byte, 4)
	binary.LittleEndian.PutUint32(buf, v)
	return buf
}

// Cat concatenates payload fragments, a convenience for building
// multi-field opcode payloads inline at the call site.
func Cat(parts ...[]byte) []byte {
	var out []byte
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

// Bytes finalizes the stream, closing any open packet, and returns the
// complete byte sequence.
func (b *Builder) Bytes() []byte {
	b.closePacket()
	return b.buf.Bytes()
}

// FrameDataV6 builds a format 6 frame payload: a 14-byte header (content
// irrelevant to decoding, zero-filled here), a decoding map of
// 2*blockCount bytes, and literal block data.
func FrameDataV6(decodingMap, literal []byte) []byte {
	header := make([]byte, 14)
	return Cat(header, decodingMap, literal)
}

// FrameDataV10 builds a format 10 frame payload: the same 14-byte header
// followed by literal block data (the skip map and decoding map travel
// in their own opcodes for format 10, unlike format 6).
func FrameDataV10(literal []byte) []byte {
	header := make([]byte, 14)
	return Cat(header, literal)
}

// Op16 packs a format 6/10 decoding-map opcode: a 15-bit offset biased
// by 0x4000, with the reference-surface selector as the MSB.
func Op16(biasedOffset uint16, selectR1OrR0 bool) uint16 {
	op := biasedOffset & 0x7FFF
	if selectR1OrR0 {
		op |= 0x8000
	}
	return op
}

// LiteralBlock returns a 64-byte literal block filled entirely with the
// given palette index.
func LiteralBlock(index byte) []byte {
	block := make([]byte, 64)
	for i := range block {
		block[i] = index
	}
	return block
}

// SkipMapAllClear returns a skip map for blockCount blocks with every
// bit set to 1 ("not skipped").
func SkipMapAllClear(blockCount int) []byte {
	words := (blockCount + 15) / 16
	data := make([]byte, words*2)
	for i := range data {
		data[i] = 0xFF
	}
	return data
}
