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

// Package audio implements the queued PCM side-channel the decoder
// fills from opcodes 0x0800/0x0900 and a host audio mixer drains.
package audio

import (
	"sync"

	goaudio "github.com/go-audio/audio"

	"github.com/SirYodaJedi/scummvm/mveerr"
)

// NeutralSample is the unsigned-PCM sample value representing silence:
// mid-scale, the unsigned-8-bit equivalent of signed zero.
const NeutralSample = 0x80

// Params describes the audio configuration declared by opcode 0x0300.
// The container permits stereo and 16-bit variants; this decoder
// accepts only mono 8-bit unsigned, per spec.md §1's Non-goals.
type Params struct {
	SampleRate int
	BufferLen  int
}

// Stream is a producer/consumer-safe queue of decoded PCM buffers. The
// decoder (producer) enqueues on its own goroutine as opcodes arrive;
// a host mixer (consumer) may drain concurrently on another goroutine,
// per spec.md §5's explicit thread-safety carve-out for this one
// shared resource.
type Stream struct {
	mu      sync.Mutex
	params  Params
	buffers []*goaudio.IntBuffer
}

// NewStream creates a stream for mono 8-bit unsigned PCM at the given
// parameters. flags must have bits 0 and 1 clear (mono, 8-bit); any
// other value is BadConfiguration per spec.md §4.6's opcode 0x0300.
func NewStream(flags uint16, params Params) (*Stream, error) {
	if flags&3 != 0 {
		return nil, mveerr.Errorf(mveerr.BadConfiguration, "unsupported audio flags %#04x: only mono 8-bit unsigned is supported", flags)
	}
	return &Stream{params: params}, nil
}

// Params returns the stream's declared sample rate and nominal buffer
// length.
func (s *Stream) Params() Params {
	return s.params
}

// Enqueue queues raw unsigned 8-bit PCM samples as a new buffer. The
// samples are converted to go-audio's signed-int representation
// (centered on zero) so the buffer composes with the rest of the
// go-audio ecosystem, e.g. WriteWAV.
func (s *Stream) Enqueue(samples []byte) {
	data := make([]int, len(samples))
	for i, v := range samples {
		data[i] = int(v) - 0x80
	}
	buf := &goaudio.IntBuffer{
		Format: &goaudio.Format{NumChannels: 1, SampleRate: s.params.SampleRate},
		Data:   data,
	}

	s.mu.Lock()
	s.buffers = append(s.buffers, buf)
	s.mu.Unlock()
}

// EnqueueSilence queues n neutral-level samples. Used for opcode 0x0900
// (silent audio frame) so that a host scheduling playback from sample
// counts sees no gap — see DESIGN.md's resolution of spec.md §9's open
// question about 0x0900.
func (s *Stream) EnqueueSilence(n int) {
	samples := make([]byte, n)
	for i := range samples {
		samples[i] = NeutralSample
	}
	s.Enqueue(samples)
}

// Drain removes and returns every buffer currently queued, in arrival
// order. Intended for a host mixer's consume loop.
func (s *Stream) Drain() []*goaudio.IntBuffer {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := s.buffers
	s.buffers = nil
	return out
}

// Len reports how many buffers are currently queued.
func (s *Stream) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.buffers)
}

// SampleCount reports the total number of samples across every buffer
// currently queued, without draining them.
func (s *Stream) SampleCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, b := range s.buffers {
		n += len(b.Data)
	}
	return n
}
