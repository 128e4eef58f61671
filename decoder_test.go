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

package scummvm_test

import (
	"bytes"
	"testing"

	"github.com/SirYodaJedi/scummvm"
	"github.com/SirYodaJedi/scummvm/internal/mvetest"
	"github.com/SirYodaJedi/scummvm/mveerr"
)

// Opcode tags, mirrored from the container's own constants so tests can
// build streams without reaching into the package's internals.
const (
	tagEnd          = 0x0000
	tagEndPacket    = 0x0100
	tagTimer        = 0x0200
	tagInitAudio    = 0x0300
	tagStartAudio   = 0x0400
	tagInitVideo    = 0x0502
	tagFrameDataV6  = 0x0600
	tagSendVideo    = 0x0701
	tagAudioFrame   = 0x0800
	tagAudioSilent  = 0x0900
	tagSetMode      = 0x0A00
	tagPalette      = 0x0C00
	tagSkipMap      = 0x0E00
	tagDecodingMap  = 0x0F00
	tagFrameDataV10 = 0x1000
)

func configBuilder() *mvetest.Builder {
	b := mvetest.NewBuilder()
	b.Packet(0)
	b.Opcode(tagTimer, mvetest.Cat(mvetest.U32LE(1000000/30), mvetest.U16LE(1)))
	b.Opcode(tagInitVideo, mvetest.Cat(mvetest.U16LE(1), mvetest.U16LE(1), mvetest.U16LE(0), mvetest.U16LE(0)))
	b.Opcode(tagEndPacket, nil)
	return b
}

func TestLoad_S1_minimalFrame(t *testing.T) {
	b := configBuilder()
	b.Packet(3)
	b.Opcode(tagPalette, mvetest.Cat(mvetest.U16LE(0), mvetest.U16LE(1), []byte{0x00, 0x15, 0x2A}, []byte{0x00}))

	decodingMap := mvetest.U16LE(0)
	literal := make([]byte, 64)
	for i := range literal {
		literal[i] = byte(i)
	}
	b.Opcode(tagFrameDataV6, mvetest.FrameDataV6(decodingMap, literal))
	b.Opcode(tagSendVideo, mvetest.Cat(mvetest.U16LE(0), mvetest.U16LE(1), mvetest.U16LE(0)))
	b.Opcode(tagEnd, nil)

	d := scummvm.NewDecoder()
	if err := d.Load(bytes.NewReader(b.Bytes())); err != nil {
		t.Fatalf("Load: unexpected error: %v", err)
	}

	if err := d.AdvanceFrame(); err != nil && !scummvm.IsEndOfStream(err) {
		t.Fatalf("AdvanceFrame: unexpected error: %v", err)
	}

	if w, h := d.Dimensions(); w != 8 || h != 8 {
		t.Fatalf("Dimensions() = %d x %d, want 8x8", w, h)
	}

	surf := d.CurrentSurface()
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			want := byte(y*8 + x)
			got := surf.ColorIndexAt(x, y)
			if got != want {
				t.Fatalf("pixel (%d,%d) = %d, want %d", x, y, got, want)
			}
		}
	}

	if !d.PaletteDirty() {
		t.Errorf("expected PaletteDirty after a palette opcode")
	}
}

func TestLoad_S4_audioQueued(t *testing.T) {
	b := mvetest.NewBuilder()
	b.Packet(0)
	b.Opcode(tagInitAudio, mvetest.Cat(mvetest.U16LE(0), mvetest.U16LE(0), mvetest.U16LE(22050), mvetest.U16LE(1024)))
	b.Opcode(tagInitVideo, mvetest.Cat(mvetest.U16LE(1), mvetest.U16LE(1), mvetest.U16LE(0), mvetest.U16LE(0)))
	b.Opcode(tagEndPacket, nil)

	b.Packet(3)
	silence := bytes.Repeat([]byte{0x80}, 1024)
	b.Opcode(tagAudioFrame, mvetest.Cat(mvetest.U16LE(0), mvetest.U16LE(0), mvetest.U16LE(1024), silence))
	b.Opcode(tagEnd, nil)

	d := scummvm.NewDecoder()
	if err := d.Load(bytes.NewReader(b.Bytes())); err != nil {
		t.Fatalf("Load: unexpected error: %v", err)
	}
	if err := d.AdvanceFrame(); err != nil && !scummvm.IsEndOfStream(err) {
		t.Fatalf("AdvanceFrame: unexpected error: %v", err)
	}

	stream := d.AudioStream()
	if stream == nil {
		t.Fatalf("expected audio stream to be initialized")
	}
	if got := stream.SampleCount(); got != 1024 {
		t.Fatalf("got %d queued samples, want 1024", got)
	}
}

func TestLoad_S5_unknownOpcodeIsFatal(t *testing.T) {
	b := configBuilder()
	b.Packet(3)
	b.Opcode(0xBEEF, nil)

	d := scummvm.NewDecoder()
	if err := d.Load(bytes.NewReader(b.Bytes())); err != nil {
		t.Fatalf("Load: unexpected error: %v", err)
	}

	err := d.AdvanceFrame()
	if !mveerr.Is(err, mveerr.UnknownOpcode) {
		t.Fatalf("AdvanceFrame: got %v, want UnknownOpcode", err)
	}
}

func TestLoad_S6_oddPaletteCountPadByte(t *testing.T) {
	b := configBuilder()
	b.Packet(3)
	rgb := []byte{0x3F, 0, 0, 0, 0x3F, 0, 0, 0, 0x3F}
	b.Opcode(tagPalette, mvetest.Cat(mvetest.U16LE(0), mvetest.U16LE(3), rgb, []byte{0x00}))

	decodingMap := mvetest.U16LE(0)
	b.Opcode(tagFrameDataV6, mvetest.FrameDataV6(decodingMap, mvetest.LiteralBlock(1)))
	b.Opcode(tagSendVideo, mvetest.Cat(mvetest.U16LE(0), mvetest.U16LE(3), mvetest.U16LE(0)))
	b.Opcode(tagEnd, nil)

	d := scummvm.NewDecoder()
	if err := d.Load(bytes.NewReader(b.Bytes())); err != nil {
		t.Fatalf("Load: unexpected error: %v", err)
	}
	if err := d.AdvanceFrame(); err != nil && !scummvm.IsEndOfStream(err) {
		t.Fatalf("AdvanceFrame: unexpected error: %v", err)
	}

	surf := d.CurrentSurface()
	if surf.ColorIndexAt(0, 0) != 1 {
		t.Fatalf("expected frame decode to proceed correctly past the pad byte")
	}
}

func TestLoad_invalidSignature(t *testing.T) {
	d := scummvm.NewDecoder()
	err := d.Load(bytes.NewReader(make([]byte, 26)))
	if !mveerr.Is(err, mveerr.InvalidSignature) {
		t.Fatalf("got %v, want InvalidSignature", err)
	}
}

func TestAdvanceFrame_endOfStream(t *testing.T) {
	b := configBuilder()
	b.Packet(3)
	b.Opcode(tagEnd, nil)

	d := scummvm.NewDecoder()
	if err := d.Load(bytes.NewReader(b.Bytes())); err != nil {
		t.Fatalf("Load: unexpected error: %v", err)
	}

	err := d.AdvanceFrame()
	if !scummvm.IsEndOfStream(err) {
		t.Fatalf("got %v, want end-of-stream sentinel", err)
	}
}
