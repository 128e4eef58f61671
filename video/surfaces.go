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

import "image"

// Surfaces owns the three paletted frame buffers the codec reconstructs
// blocks into: the current output F, the nearest reference R0, and the
// older reference R1. F's buffer identity is fixed for the life of the
// decoder — it is decoded into in place, frame after frame, which is
// what lets "leave this block untouched" persist prior content. R0 and
// R1 rotate by index rather than by copying pixels where the original
// uses two whole-surface copies (spec.md §9's redesign note); only one
// real pixel copy per frame survives, where the original does two.
type Surfaces struct {
	widthBlocks, heightBlocks int
	buffers                   [3]*image.Paletted

	// fIdx, r0Idx, r1Idx index into buffers, selecting which physical
	// buffer currently plays which role.
	fIdx, r0Idx, r1Idx int
}

// NewSurfaces allocates three zero-filled paletted surfaces of
// dimensions 8*widthBlocks x 8*heightBlocks, sharing pal.
func NewSurfaces(widthBlocks, heightBlocks int, pal *Palette) *Surfaces {
	rect := image.Rect(0, 0, widthBlocks*8, heightBlocks*8)
	s := &Surfaces{
		widthBlocks:  widthBlocks,
		heightBlocks: heightBlocks,
		fIdx:         0,
		r0Idx:        1,
		r1Idx:        2,
	}
	for i := range s.buffers {
		s.buffers[i] = image.NewPaletted(rect, pal.Entries())
	}
	return s
}

// F returns the current output surface.
func (s *Surfaces) F() *image.Paletted { return s.buffers[s.fIdx] }

// R0 returns the nearest reference surface.
func (s *Surfaces) R0() *image.Paletted { return s.buffers[s.r0Idx] }

// R1 returns the older reference surface.
func (s *Surfaces) R1() *image.Paletted { return s.buffers[s.r1Idx] }

// WidthBlocks returns the surface width in 8-pixel blocks.
func (s *Surfaces) WidthBlocks() int { return s.widthBlocks }

// HeightBlocks returns the surface height in 8-pixel blocks.
func (s *Surfaces) HeightBlocks() int { return s.heightBlocks }

// BlockCount returns the total number of 8x8 blocks in the surface.
func (s *Surfaces) BlockCount() int { return s.widthBlocks * s.heightBlocks }

// RotateFormat6 performs format 6's pre-decode rotation.
//
// F's buffer identity never changes: blocks pass 1 leaves "untouched"
// must keep showing whatever pass 1/2 wrote there in a previous frame
// (or the zero-fill from allocation), and that's only true if F is the
// same physical buffer across the whole stream, decoded into in place.
//
// R0 must end up holding a snapshot of F's current content (the
// original's "R0.copyFrom(F)"). When frameNumber > 1 the buffer
// currently playing R1 is about to be discarded anyway (the original's
// "R1.copyFrom(R0)" is about to replace it) and can be recycled as the
// destination for that snapshot without ever contending with R1's own
// reassignment, so only the R1-recycle path needs a pixel copy, and
// R1's own update becomes a free index reassignment. When frameNumber
// == 1 there is no spare buffer to recycle, so R0's own buffer is
// overwritten in place — a real copy is unavoidable either way, and
// this reproduces the original exactly while never touching F.
func (s *Surfaces) RotateFormat6(frameNumber int) {
	if frameNumber <= 0 {
		return
	}

	oldR0, oldR1 := s.r0Idx, s.r1Idx

	newR0 := oldR0
	if frameNumber > 1 {
		s.r1Idx = oldR0
		newR0 = oldR1
	}
	copyPixels(s.buffers[newR0], s.buffers[s.fIdx])
	s.r0Idx = newR0
}

// copyPixels overwrites dst's pixel plane with src's. dst and src must
// have identical dimensions.
func copyPixels(dst, src *image.Paletted) {
	copy(dst.Pix, src.Pix)
}

// SwapFormat10 performs format 10's post-decode swap: R0 (the
// just-built scratch surface) and R1 exchange roles.
func (s *Surfaces) SwapFormat10() {
	s.r0Idx, s.r1Idx = s.r1Idx, s.r0Idx
}

// blockAnchor returns the top-left pixel coordinate of block b in
// row-major order.
func (s *Surfaces) blockAnchor(b int) (x, y int) {
	x = (b % s.widthBlocks) * 8
	y = (b / s.widthBlocks) * 8
	return
}

// CopyLiteralBlock reads 8 rows of 8 bytes from the start of literal
// and writes them into dst at block b's anchor. It does not advance
// any position; callers step through their literal stream themselves.
func (s *Surfaces) CopyLiteralBlock(dst *image.Paletted, literal []byte, b int) {
	x, y := s.blockAnchor(b)
	for row := 0; row < 8; row++ {
		off := dst.PixOffset(x, y+row)
		copy(dst.Pix[off:off+8], literal[row*8:row*8+8])
	}
}

// CopyBlockWithOffset copies the 8x8 region of src anchored at block
// b's position plus the planar pixel offset into dst at block b's
// anchor. dst and src may be the same surface (intra-frame motion);
// the whole source block is staged in a scratch array before any
// destination pixel is written, so overlapping regions behave like
// memmove.
//
// Source coordinates that fall outside src's bounds after applying the
// offset are not defined by the format (spec.md §4.3); this
// implementation clamps the source rectangle to src's bounds rather
// than reading out of slice or aborting the stream.
func (s *Surfaces) CopyBlockWithOffset(dst, src *image.Paletted, b, offset int) {
	dx, dy := s.blockAnchor(b)

	width := s.widthBlocks * 8
	sx := dx + offset%width
	sy := dy + offset/width

	// Stage the source block into a scratch buffer before writing to
	// dst. When dst and src are the same surface (intra-frame motion)
	// the source and destination regions can overlap; staging first
	// gives byte-wise memmove semantics instead of a result that
	// depends on write order.
	var block [8][8]uint8
	bounds := src.Bounds()
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			// default to the destination's current value so a clamped,
			// out-of-bounds source coordinate leaves that pixel alone
			// rather than blanking it to palette index 0.
			block[row][col] = dst.ColorIndexAt(dx+col, dy+row)
		}
	}
	for row := 0; row < 8; row++ {
		srcY := sy + row
		if srcY < bounds.Min.Y || srcY >= bounds.Max.Y {
			continue
		}
		for col := 0; col < 8; col++ {
			srcX := sx + col
			if srcX < bounds.Min.X || srcX >= bounds.Max.X {
				continue
			}
			block[row][col] = src.ColorIndexAt(srcX, srcY)
		}
	}

	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			dst.SetColorIndex(dx+col, dy+row, block[row][col])
		}
	}
}
