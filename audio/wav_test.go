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

package audio_test

import (
	"fmt"
	"io"
	"testing"

	"github.com/SirYodaJedi/scummvm/audio"
)

// seekableBuffer is a minimal in-memory io.WriteSeeker, standing in for
// the *os.File a real host would pass to WriteWAV.
type seekableBuffer struct {
	data []byte
	pos  int64
}

func (b *seekableBuffer) Write(p []byte) (int, error) {
	end := b.pos + int64(len(p))
	if end > int64(len(b.data)) {
		grown := make([]byte, end)
		copy(grown, b.data)
		b.data = grown
	}
	copy(b.data[b.pos:end], p)
	b.pos = end
	return len(p), nil
}

func (b *seekableBuffer) Seek(offset int64, whence int) (int64, error) {
	var newPos int64
	switch whence {
	case io.SeekStart:
		newPos = offset
	case io.SeekCurrent:
		newPos = b.pos + offset
	case io.SeekEnd:
		newPos = int64(len(b.data)) + offset
	default:
		return 0, fmt.Errorf("seekableBuffer: invalid whence %d", whence)
	}
	if newPos < 0 {
		return 0, fmt.Errorf("seekableBuffer: negative position")
	}
	b.pos = newPos
	return newPos, nil
}

func TestStream_WriteWAV(t *testing.T) {
	s, err := audio.NewStream(0, audio.Params{SampleRate: 22050})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s.Enqueue([]byte{0x80, 0x90, 0x70})

	var buf seekableBuffer
	if err := s.WriteWAV(&buf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(buf.data) < 44 {
		t.Fatalf("got %d bytes, want at least a 44-byte WAV header", len(buf.data))
	}
	if string(buf.data[0:4]) != "RIFF" || string(buf.data[8:12]) != "WAVE" {
		t.Fatalf("missing RIFF/WAVE markers: %x", buf.data[:12])
	}

	// WriteWAV must not drain the stream.
	if got := s.Len(); got != 1 {
		t.Errorf("got %d buffers after WriteWAV, want 1 (undrained)", got)
	}
}
