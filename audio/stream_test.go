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
	"sync"
	"testing"

	"github.com/SirYodaJedi/scummvm/audio"
	"github.com/SirYodaJedi/scummvm/mveerr"
)

func TestNewStream_rejectsUnsupportedFlags(t *testing.T) {
	if _, err := audio.NewStream(0x0001, audio.Params{}); !mveerr.Is(err, mveerr.BadConfiguration) {
		t.Errorf("expected BadConfiguration for stereo flag, got %v", err)
	}
	if _, err := audio.NewStream(0x0002, audio.Params{}); !mveerr.Is(err, mveerr.BadConfiguration) {
		t.Errorf("expected BadConfiguration for 16-bit flag, got %v", err)
	}
}

func TestStream_EnqueueConvertsToSigned(t *testing.T) {
	s, err := audio.NewStream(0, audio.Params{SampleRate: 22050})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s.Enqueue([]byte{0x00, 0x80, 0xFF})

	bufs := s.Drain()
	if len(bufs) != 1 {
		t.Fatalf("got %d buffers, want 1", len(bufs))
	}
	want := []int{-128, 0, 127}
	got := bufs[0].Data
	if len(got) != len(want) {
		t.Fatalf("got %d samples, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("sample %d = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestStream_EnqueueSilence(t *testing.T) {
	s, err := audio.NewStream(0, audio.Params{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s.EnqueueSilence(4)

	if got := s.SampleCount(); got != 4 {
		t.Fatalf("got %d samples, want 4", got)
	}
	for _, v := range s.Drain()[0].Data {
		if v != 0 {
			t.Errorf("silent sample = %d, want 0 (neutral level centered)", v)
		}
	}
}

func TestStream_EnqueueIsConcurrencySafe(t *testing.T) {
	s, err := audio.NewStream(0, audio.Params{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Enqueue([]byte{0x80, 0x80})
		}()
	}
	wg.Wait()

	if got := s.Len(); got != 8 {
		t.Fatalf("got %d buffers, want 8", got)
	}
}
