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

package scummvm

// Opcode tags, read big-endian from the container (spec.md §4.6).
const (
	opEnd          uint16 = 0x0000
	opEndPacket    uint16 = 0x0100
	opTimer        uint16 = 0x0200
	opInitAudio    uint16 = 0x0300
	opStartAudio   uint16 = 0x0400
	opInitVideo    uint16 = 0x0502
	opFrameDataV6  uint16 = 0x0600
	opSendVideo    uint16 = 0x0701
	opAudioFrame   uint16 = 0x0800
	opAudioSilent  uint16 = 0x0900
	opSetMode      uint16 = 0x0A00
	opPalette      uint16 = 0x0C00
	opSkipMap      uint16 = 0x0E00
	opDecodingMap  uint16 = 0x0F00
	opFrameDataV10 uint16 = 0x1000
)

// FrameFormat identifies which block-reconstruction algorithm a
// buffered frame payload should be decoded with.
type FrameFormat int

// Pending frame formats. formatNone means no frame data has been
// buffered yet since the stream began; once set, the pending format is
// kept until the next frame-data opcode replaces it.
const (
	formatNone FrameFormat = iota
	format6
	format10
)
