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

package video

import "image/color"

// PaletteSize is the fixed number of entries in an MVE palette.
const PaletteSize = 256

// Palette is the active 256-entry RGB palette shared by all three
// surfaces. Writing is exclusively done through Set, which also latches
// Dirty; the host clears Dirty after consuming an update.
type Palette struct {
	entries color.Palette
	dirty   bool
}

// NewPalette returns a palette with all 256 entries initialized to
// black, matching the zero-initialization the container performs at
// opcode 0x0502.
func NewPalette() *Palette {
	entries := make(color.Palette, PaletteSize)
	for i := range entries {
		entries[i] = color.RGBA{A: 0xFF}
	}
	return &Palette{entries: entries}
}

// expand6 widens a 6-bit channel value to 8 bits the way the MVE
// format's source palette is encoded: c' = (c<<2) | c.
func expand6(c byte) byte {
	c &= 0x3F
	return (c << 2) | c
}

// Set writes palCount entries starting at palStart, expanding each
// 6-bit RGB channel per expand6, and latches Dirty. rgb must contain
// 3*palCount bytes.
func (p *Palette) Set(palStart, palCount int, rgb []byte) {
	for i := 0; i < palCount; i++ {
		idx := palStart + i
		if idx < 0 || idx >= PaletteSize {
			continue
		}
		r := expand6(rgb[3*i+0])
		g := expand6(rgb[3*i+1])
		b := expand6(rgb[3*i+2])
		p.entries[idx] = color.RGBA{R: r, G: g, B: b, A: 0xFF}
	}
	p.dirty = true
}

// Entries returns the underlying color.Palette. The returned slice is
// shared with the Palette and must not be mutated by the caller.
func (p *Palette) Entries() color.Palette {
	return p.entries
}

// Dirty reports whether the palette has changed since the last
// ClearDirty call.
func (p *Palette) Dirty() bool {
	return p.dirty
}

// ClearDirty clears the dirty flag. Called by the host after consuming
// a palette update.
func (p *Palette) ClearDirty() {
	p.dirty = false
}
