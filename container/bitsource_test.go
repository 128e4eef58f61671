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

package container_test

import (
	"bytes"
	"testing"

	"github.com/SirYodaJedi/scummvm/container"
	"github.com/SirYodaJedi/scummvm/mveerr"
)

func TestBitSource_ReadU16LE(t *testing.T) {
	b := container.NewBitSource(bytes.NewReader([]byte{0x34, 0x12}))
	v, err := b.ReadU16LE()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != 0x1234 {
		t.Errorf("got %#04x, want 0x1234", v)
	}
}

func TestBitSource_ReadU16BE(t *testing.T) {
	b := container.NewBitSource(bytes.NewReader([]byte{0x12, 0x34}))
	v, err := b.ReadU16BE()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != 0x1234 {
		t.Errorf("got %#04x, want 0x1234", v)
	}
}

func TestBitSource_ReadU32LE(t *testing.T) {
	b := container.NewBitSource(bytes.NewReader([]byte{0x78, 0x56, 0x34, 0x12}))
	v, err := b.ReadU32LE()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != 0x12345678 {
		t.Errorf("got %#08x, want 0x12345678", v)
	}
}

func TestBitSource_Truncated(t *testing.T) {
	b := container.NewBitSource(bytes.NewReader([]byte{0x01}))
	_, err := b.ReadU16LE()
	if !mveerr.Is(err, mveerr.Truncated) {
		t.Errorf("expected Truncated, got %v", err)
	}
}

func TestBitSource_Skip(t *testing.T) {
	b := container.NewBitSource(bytes.NewReader([]byte{0x01, 0x02, 0x03, 0x04}))
	if err := b.Skip(2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	v, err := b.ReadU16LE()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != 0x0403 {
		t.Errorf("got %#04x, want 0x0403", v)
	}
}

func TestBitSource_ReadBytes(t *testing.T) {
	b := container.NewBitSource(bytes.NewReader([]byte{0xAA, 0xBB, 0xCC}))
	got, err := b.ReadBytes(3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []byte{0xAA, 0xBB, 0xCC}
	if !bytes.Equal(got, want) {
		t.Errorf("got %x, want %x", got, want)
	}
}
