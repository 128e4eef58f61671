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

// Package scummvm implements a decoder for the Interplay MVE
// multimedia container: a packet/opcode demultiplexer driving a
// triple-buffered, block-based video codec (formats 6 and 10) plus a
// queued PCM audio side-channel.
//
// The host is responsible for supplying a byte source, scheduling
// frame presentation according to FrameRate, consuming palette
// updates, rendering CurrentSurface, and mixing AudioStream. None of
// that is this package's job — see spec.md §1.
package scummvm

import (
	"image"
	"image/color"
	"io"
	"math/big"

	"github.com/SirYodaJedi/scummvm/audio"
	"github.com/SirYodaJedi/scummvm/container"
	"github.com/SirYodaJedi/scummvm/logger"
	"github.com/SirYodaJedi/scummvm/mveerr"
	"github.com/SirYodaJedi/scummvm/video"
)

const logTag = "mve"

// VideoInit carries the fields from opcode 0x0502 that decoding itself
// never consults, preserved for host introspection per spec.md §9.
type VideoInit struct {
	Count     uint16
	TrueColor uint16
}

// AudioInit carries the field from opcode 0x0300 that decoding itself
// never consults.
type AudioInit struct {
	Unknown uint16
}

// SendVideoParams carries the fields from opcode 0x0701 beyond the
// palette range it selects.
type SendVideoParams struct {
	PaletteStart int
	PaletteCount int
	Unknown      uint16
}

// Decoder is the host-facing façade over the MVE container. It owns
// every buffer the codec needs: the three frame surfaces, the active
// palette, and the queued audio stream. The byte source passed to Load
// is externally owned; Decoder holds only a non-owning reference to it
// for the lifetime of the stream.
type Decoder struct {
	src *container.BitSource

	done bool

	packetKind      container.PacketKind
	packetRemaining int

	widthBlocks, heightBlocks int
	frameRate                 *big.Rat

	palette  *video.Palette
	surfaces *video.Surfaces

	audioStream *audio.Stream
	audioInit   AudioInit

	videoInit VideoInit

	frameNumber   int
	pendingFormat FrameFormat
	frameData     []byte
	skipMap       []byte
	decodingMap   []byte

	lastSendVideo SendVideoParams
}

// NewDecoder returns a Decoder with no stream loaded yet.
func NewDecoder() *Decoder {
	return &Decoder{
		palette:     video.NewPalette(),
		frameNumber: -1,
	}
}

// Load validates the container signature and fixed header, then drains
// packets up to (but not including) the first video packet, so that by
// the time Load returns, geometry, palette, timer, and audio are fully
// initialized.
func (d *Decoder) Load(r io.Reader) error {
	d.src = container.NewBitSource(r)

	if err := container.ReadHeader(d.src); err != nil {
		return err
	}

	if err := d.readPacketHeader(); err != nil {
		return err
	}

	for !d.done && d.packetKind < 3 {
		if err := d.readNextPacket(); err != nil {
			return err
		}
	}

	logger.Log(logTag, "load complete")
	return nil
}

// AdvanceFrame drains packets until opcode 0x0701 has executed,
// producing a new video frame, or the stream ends.
func (d *Decoder) AdvanceFrame() error {
	if d.done {
		return errEndOfStream
	}

	startFrame := d.frameNumber
	for !d.done && d.frameNumber == startFrame {
		if err := d.readNextPacket(); err != nil {
			return err
		}
	}

	if d.done && d.frameNumber == startFrame {
		return errEndOfStream
	}

	return nil
}

// errEndOfStream is returned by AdvanceFrame when the terminal opcode
// was reached without producing another frame.
var errEndOfStream = mveerr.Errorf(mveerr.Truncated, "end of stream")

// IsEndOfStream reports whether err is the sentinel AdvanceFrame
// returns once the container is exhausted.
func IsEndOfStream(err error) bool {
	return err == errEndOfStream
}

// CurrentSurface returns a read-only view of the decoder's current
// output frame F. The returned image is owned by the Decoder and is
// only valid to read between AdvanceFrame calls.
func (d *Decoder) CurrentSurface() *image.Paletted {
	if d.surfaces == nil {
		return nil
	}
	return d.surfaces.F()
}

// Palette returns the active 256-entry palette.
func (d *Decoder) Palette() color.Palette {
	return d.palette.Entries()
}

// PaletteDirty reports whether the palette has changed since the last
// ClearPaletteDirty call.
func (d *Decoder) PaletteDirty() bool {
	return d.palette.Dirty()
}

// ClearPaletteDirty clears the palette's dirty flag.
func (d *Decoder) ClearPaletteDirty() {
	d.palette.ClearDirty()
}

// FrameRate returns the stream's declared frame rate in frames per
// second, or nil if opcode 0x0200 has not been seen yet.
func (d *Decoder) FrameRate() *big.Rat {
	return d.frameRate
}

// FrameIndex returns the zero-based index of the most recently decoded
// frame. It starts at -1 and is incremented by exactly one on each
// opcode 0x0701.
func (d *Decoder) FrameIndex() int {
	return d.frameNumber
}

// Dimensions returns the surface width and height in pixels.
func (d *Decoder) Dimensions() (width, height int) {
	if d.surfaces == nil {
		return 0, 0
	}
	return d.surfaces.WidthBlocks() * 8, d.surfaces.HeightBlocks() * 8
}

// AudioStream returns the queued PCM audio stream, or nil if opcode
// 0x0300 has not been seen yet.
func (d *Decoder) AudioStream() *audio.Stream {
	return d.audioStream
}

// VideoInit returns the informational fields from opcode 0x0502.
func (d *Decoder) VideoInit() VideoInit {
	return d.videoInit
}

// AudioInit returns the informational fields from opcode 0x0300.
func (d *Decoder) AudioInit() AudioInit {
	return d.audioInit
}

// LastSendVideo returns the palette range and unknown field from the
// most recently executed opcode 0x0701.
func (d *Decoder) LastSendVideo() SendVideoParams {
	return d.lastSendVideo
}
