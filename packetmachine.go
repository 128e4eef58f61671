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

import (
	"math/big"

	"github.com/SirYodaJedi/scummvm/audio"
	"github.com/SirYodaJedi/scummvm/container"
	"github.com/SirYodaJedi/scummvm/logger"
	"github.com/SirYodaJedi/scummvm/mveerr"
	"github.com/SirYodaJedi/scummvm/video"
)

// readPacketHeader reads the next outer packet header. Packet length
// and kind are meaningful for diagnostics only — the opcode stream
// inside the packet is what actually drives behavior (spec.md §3).
func (d *Decoder) readPacketHeader() error {
	hdr, err := container.ReadPacketHeader(d.src)
	if err != nil {
		return err
	}
	d.packetKind = hdr.Kind
	d.packetRemaining = int(hdr.Length)
	logger.Logf(logTag, "packet kind=%d length=%d", hdr.Kind, hdr.Length)
	return nil
}

// readNextPacket reads opcodes from the current packet until either
// the stream terminator (0x0000) or the packet boundary marker
// (0x0100) is seen.
func (d *Decoder) readNextPacket() error {
	for !d.done {
		hdr, err := container.ReadOpcodeHeader(d.src)
		if err != nil {
			return err
		}

		done, err := d.runOpcode(hdr)
		if err != nil {
			return err
		}
		if done {
			return nil
		}
	}
	return nil
}

// runOpcode executes a single opcode, returning true once the caller
// should return to its own loop (packet boundary reached).
func (d *Decoder) runOpcode(hdr container.OpcodeHeader) (bool, error) {
	switch hdr.Tag {
	case opEnd:
		d.done = true
		return true, nil

	case opEndPacket:
		if err := d.readPacketHeader(); err != nil {
			return false, err
		}
		return true, nil

	case opTimer:
		return false, d.doTimer()

	case opInitAudio:
		return false, d.doInitAudio()

	case opStartAudio:
		// No-op: indicates audio may begin. Nothing to do — the audio
		// stream is already queueable as soon as opInitAudio runs.
		return false, d.src.Skip(int(hdr.PayloadLength))

	case opInitVideo:
		return false, d.doInitVideo()

	case opFrameDataV6:
		return false, d.doFrameData(hdr.PayloadLength, format6)

	case opSendVideo:
		return false, d.doSendVideo()

	case opAudioFrame:
		return false, d.doAudioFrame(hdr.PayloadLength)

	case opAudioSilent:
		return false, d.doAudioSilent(hdr.PayloadLength)

	case opSetMode:
		// Informational; ignored by the core.
		return false, d.src.Skip(int(hdr.PayloadLength))

	case opPalette:
		return false, d.doPalette(hdr.PayloadLength)

	case opSkipMap:
		return false, d.doSkipMap(hdr.PayloadLength)

	case opDecodingMap:
		return false, d.doDecodingMap(hdr.PayloadLength)

	case opFrameDataV10:
		return false, d.doFrameData(hdr.PayloadLength, format10)

	default:
		return false, mveerr.Errorf(mveerr.UnknownOpcode, "unknown opcode %#04x", hdr.Tag)
	}
}

func (d *Decoder) doTimer() error {
	rate, err := d.src.ReadU32LE()
	if err != nil {
		return err
	}
	subdiv, err := d.src.ReadU16LE()
	if err != nil {
		return err
	}
	denom := int64(rate) * int64(subdiv)
	if denom <= 0 {
		return mveerr.Errorf(mveerr.BadConfiguration, "timer: non-positive rate*subdiv")
	}
	d.frameRate = big.NewRat(1000000, denom)
	logger.Logf(logTag, "timer rate=%d subdiv=%d -> %s frames/s", rate, subdiv, d.frameRate.FloatString(6))
	return nil
}

func (d *Decoder) doInitAudio() error {
	unk, err := d.src.ReadU16LE()
	if err != nil {
		return err
	}
	flags, err := d.src.ReadU16LE()
	if err != nil {
		return err
	}
	sampleRate, err := d.src.ReadU16LE()
	if err != nil {
		return err
	}
	bufLen, err := d.src.ReadU16LE()
	if err != nil {
		return err
	}

	stream, err := audio.NewStream(flags, audio.Params{
		SampleRate: int(sampleRate),
		BufferLen:  int(bufLen),
	})
	if err != nil {
		return err
	}
	d.audioStream = stream
	d.audioInit = AudioInit{Unknown: unk}
	logger.Logf(logTag, "init audio sampleRate=%d bufLen=%d", sampleRate, bufLen)
	return nil
}

func (d *Decoder) doInitVideo() error {
	width, err := d.src.ReadU16LE()
	if err != nil {
		return err
	}
	height, err := d.src.ReadU16LE()
	if err != nil {
		return err
	}
	count, err := d.src.ReadU16LE()
	if err != nil {
		return err
	}
	trueColor, err := d.src.ReadU16LE()
	if err != nil {
		return err
	}

	if width == 0 || height == 0 {
		return mveerr.Errorf(mveerr.BadConfiguration, "init video: zero geometry %dx%d blocks", width, height)
	}

	d.widthBlocks = int(width)
	d.heightBlocks = int(height)
	d.videoInit = VideoInit{Count: count, TrueColor: trueColor}
	d.surfaces = video.NewSurfaces(d.widthBlocks, d.heightBlocks, d.palette)
	d.frameNumber = -1

	logger.Logf(logTag, "init video %dx%d blocks", width, height)
	return nil
}

func (d *Decoder) doFrameData(payloadLength uint16, format FrameFormat) error {
	data, err := d.src.ReadBytes(int(payloadLength))
	if err != nil {
		return err
	}
	d.frameData = data
	d.pendingFormat = format
	return nil
}

func (d *Decoder) doSendVideo() error {
	palStart, err := d.src.ReadU16LE()
	if err != nil {
		return err
	}
	palCount, err := d.src.ReadU16LE()
	if err != nil {
		return err
	}
	unk, err := d.src.ReadU16LE()
	if err != nil {
		return err
	}
	d.lastSendVideo = SendVideoParams{
		PaletteStart: int(palStart),
		PaletteCount: int(palCount),
		Unknown:      unk,
	}

	d.frameNumber++

	switch d.pendingFormat {
	case format6:
		if err := video.DecodeFormat6(d.surfaces, d.frameData, d.frameNumber); err != nil {
			return err
		}
	case format10:
		if err := video.DecodeFormat10(d.surfaces, d.skipMap, d.decodingMap, d.frameData); err != nil {
			return err
		}
	}

	logger.Logf(logTag, "send video frame=%d format=%d", d.frameNumber, d.pendingFormat)
	return nil
}

func (d *Decoder) doAudioFrame(payloadLength uint16) error {
	seq, err := d.src.ReadU16LE()
	_ = seq
	if err != nil {
		return err
	}
	mask, err := d.src.ReadU16LE()
	_ = mask
	if err != nil {
		return err
	}
	length, err := d.src.ReadU16LE()
	if err != nil {
		return err
	}
	if int(payloadLength) != int(length)+6 {
		return mveerr.Errorf(mveerr.BadConfiguration, "audio frame: payload length %d does not match declared sample length %d", payloadLength, length)
	}
	samples, err := d.src.ReadBytes(int(length))
	if err != nil {
		return err
	}
	if d.audioStream == nil {
		return mveerr.Errorf(mveerr.BadConfiguration, "audio frame: no audio stream initialized")
	}
	d.audioStream.Enqueue(samples)
	return nil
}

func (d *Decoder) doAudioSilent(payloadLength uint16) error {
	if _, err := d.src.ReadU16LE(); err != nil { // seq
		return err
	}
	if _, err := d.src.ReadU16LE(); err != nil { // mask
		return err
	}
	length, err := d.src.ReadU16LE()
	if err != nil {
		return err
	}
	if d.audioStream != nil {
		d.audioStream.EnqueueSilence(int(length))
	}
	return nil
}

func (d *Decoder) doPalette(payloadLength uint16) error {
	palStart, err := d.src.ReadU16LE()
	if err != nil {
		return err
	}
	palCount, err := d.src.ReadU16LE()
	if err != nil {
		return err
	}

	if int(payloadLength) < 3*int(palCount)+2 {
		return mveerr.Errorf(mveerr.Truncated, "palette: payload length %d too short for %d entries", payloadLength, palCount)
	}

	rgb, err := d.src.ReadBytes(3 * int(palCount))
	if err != nil {
		return err
	}
	d.palette.Set(int(palStart), int(palCount), rgb)

	if palCount&1 != 0 {
		if err := d.src.Skip(1); err != nil {
			return err
		}
	}

	return nil
}

func (d *Decoder) doSkipMap(payloadLength uint16) error {
	data, err := d.src.ReadBytes(int(payloadLength))
	if err != nil {
		return err
	}
	d.skipMap = data
	return nil
}

func (d *Decoder) doDecodingMap(payloadLength uint16) error {
	data, err := d.src.ReadBytes(int(payloadLength))
	if err != nil {
		return err
	}
	d.decodingMap = data
	return nil
}
