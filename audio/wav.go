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

package audio

import (
	"io"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// WriteWAV encodes a copy of every buffer currently queued into a
// standard mono 8-bit WAV container written to w. It does not drain
// the stream. This is a diagnostic convenience only — no opcode
// requires it — mirroring in reverse the teacher's own use of
// go-audio/wav to decode WAV data in soundload_pcm.go.
func (s *Stream) WriteWAV(w io.WriteSeeker) error {
	s.mu.Lock()
	buffers := make([]*goaudio.IntBuffer, len(s.buffers))
	copy(buffers, s.buffers)
	sampleRate := s.params.SampleRate
	s.mu.Unlock()

	enc := wav.NewEncoder(w, sampleRate, 8, 1, 1)
	for _, buf := range buffers {
		if err := enc.Write(buf); err != nil {
			return err
		}
	}
	return enc.Close()
}
