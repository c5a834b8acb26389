package blockimages

import (
	"image"

	"github.com/qwindelzorf/pigmap/engine/rgba"
)

// in this file, "tile" always means a tile of the (resized) source sheet,
// indexed as row*16+col, not a map tile

func texcoord(row, col int) int {
	return row*16 + col
}

func copyPixel(dest *image.NRGBA, x, y int, tiles *image.NRGBA, sx, sy int) {
	rgba.Set(dest, x, y, rgba.Get(tiles, sx, sy))
}

func copyDarken(dest *image.NRGBA, x, y int, tiles *image.NRGBA, sx, sy int, f float64) {
	rgba.Set(dest, x, y, rgba.Darken(rgba.Get(tiles, sx, sy), f, f, f))
}

func blendDarken(dest *image.NRGBA, x, y int, tiles *image.NRGBA, sx, sy int, f float64) {
	rgba.Blend(dest, x, y, rgba.Get(tiles, sx, sy))
	rgba.DarkenAt(dest, x, y, f, f, f)
}

// drawBlockImage draws a full block from three terrain tiles, shading the
// N and W faces; pass -1 to skip a face.
func drawBlockImage(dest *image.NRGBA, drect image.Rectangle, tiles *image.NRGBA, nface, wface, uface, b int) {
	tilesize := 2 * b
	// N face starts at [0,B]
	if nface != -1 {
		dstit := newFaceIterator(drect.Min.X, drect.Min.Y+b, 1, tilesize)
		for srcit := newFaceIterator((nface%16)*tilesize, (nface/16)*tilesize, 0, tilesize); !srcit.end; srcit.advance() {
			copyDarken(dest, dstit.x, dstit.y, tiles, srcit.x, srcit.y, 0.9)
			dstit.advance()
		}
	}
	// W face starts at [2B,2B]
	if wface != -1 {
		dstit := newFaceIterator(drect.Min.X+2*b, drect.Min.Y+2*b, -1, tilesize)
		for srcit := newFaceIterator((wface%16)*tilesize, (wface/16)*tilesize, 0, tilesize); !srcit.end; srcit.advance() {
			copyDarken(dest, dstit.x, dstit.y, tiles, srcit.x, srcit.y, 0.8)
			dstit.advance()
		}
	}
	// U face starts at [2B-1,0]
	if uface != -1 {
		dstit := newTopFaceIterator(drect.Min.X+2*b-1, drect.Min.Y, tilesize)
		for srcit := newFaceIterator((uface%16)*tilesize, (uface/16)*tilesize, 0, tilesize); !srcit.end; srcit.advance() {
			copyPixel(dest, dstit.x, dstit.y, tiles, srcit.x, srcit.y)
			dstit.advance()
		}
	}
}

// drawRotatedBlockImage is drawBlockImage with per-face rotation/flip of
// the source tiles.
func drawRotatedBlockImage(dest *image.NRGBA, drect image.Rectangle, tiles *image.NRGBA, nface, wface, uface int, rotN int, flipN bool, rotW int, flipW bool, rotU int, flipU bool, b int) {
	tilesize := 2 * b
	if nface != -1 {
		dstit := newFaceIterator(drect.Min.X, drect.Min.Y+b, 1, tilesize)
		for srcit := newRotatedFaceIterator((nface%16)*tilesize, (nface/16)*tilesize, rotN, tilesize, flipN); !srcit.end; srcit.advance() {
			copyDarken(dest, dstit.x, dstit.y, tiles, srcit.x, srcit.y, 0.9)
			dstit.advance()
		}
	}
	if wface != -1 {
		dstit := newFaceIterator(drect.Min.X+2*b, drect.Min.Y+2*b, -1, tilesize)
		for srcit := newRotatedFaceIterator((wface%16)*tilesize, (wface/16)*tilesize, rotW, tilesize, flipW); !srcit.end; srcit.advance() {
			copyDarken(dest, dstit.x, dstit.y, tiles, srcit.x, srcit.y, 0.8)
			dstit.advance()
		}
	}
	if uface != -1 {
		dstit := newTopFaceIterator(drect.Min.X+2*b-1, drect.Min.Y, tilesize)
		for srcit := newRotatedFaceIterator((uface%16)*tilesize, (uface/16)*tilesize, rotU, tilesize, flipU); !srcit.end; srcit.advance() {
			copyPixel(dest, dstit.x, dstit.y, tiles, srcit.x, srcit.y)
			dstit.advance()
		}
	}
}

// drawPartialBlockImage draws a block that isn't full height (slabs, snow,
// liquid levels). topcutoff/bottomcutoff chop pixels (out of 2B) off the N
// and W faces; if shift is set, source pixels are taken from the very top
// of the tile even with a topcutoff. flip bit 0x1 mirrors the N face, 0x2
// the W face. Blends, so it can layer over earlier draws.
func drawPartialBlockImage(dest *image.NRGBA, drect image.Rectangle, tiles *image.NRGBA, nface, wface, uface, b, topcutoff, bottomcutoff, rot, flip int, shift bool) {
	tilesize := 2 * b
	if topcutoff+bottomcutoff >= tilesize {
		return
	}
	end := tilesize - bottomcutoff
	srcshift := 0
	if shift {
		srcshift = topcutoff
	}
	// N face starts at [0,B]
	if nface != -1 {
		dstit := newFaceIterator(drect.Min.X, drect.Min.Y+b, 1, tilesize)
		for srcit := newRotatedFaceIterator((nface%16)*tilesize, (nface/16)*tilesize, 0, tilesize, flip&0x1 != 0); !srcit.end; srcit.advance() {
			if dstit.pos%tilesize >= topcutoff && dstit.pos%tilesize < end {
				blendDarken(dest, dstit.x, dstit.y, tiles, srcit.x, srcit.y-srcshift, 0.9)
			}
			dstit.advance()
		}
	}
	// W face starts at [2B,2B]
	if wface != -1 {
		dstit := newFaceIterator(drect.Min.X+2*b, drect.Min.Y+2*b, -1, tilesize)
		for srcit := newRotatedFaceIterator((wface%16)*tilesize, (wface/16)*tilesize, 0, tilesize, flip&0x2 != 0); !srcit.end; srcit.advance() {
			if dstit.pos%tilesize >= topcutoff && dstit.pos%tilesize < end {
				blendDarken(dest, dstit.x, dstit.y, tiles, srcit.x, srcit.y-srcshift, 0.8)
			}
			dstit.advance()
		}
	}
	// U face starts at [2B-1,topcutoff]
	if uface != -1 {
		dstit := newTopFaceIterator(drect.Min.X+2*b-1, drect.Min.Y+topcutoff, tilesize)
		for srcit := newRotatedFaceIterator((uface%16)*tilesize, (uface/16)*tilesize, rot, tilesize, false); !srcit.end; srcit.advance() {
			rgba.Blend(dest, dstit.x, dstit.y, rgba.Get(tiles, srcit.x, srcit.y))
			dstit.advance()
		}
	}
}

// drawItemBlockImage draws two flat copies of a tile crossing at the block
// center (saplings, flowers, etc.). The E/W copy is split around the N/S
// one so the halves stack correctly.
func drawItemBlockImage(dest *image.NRGBA, drect image.Rectangle, tiles *image.NRGBA, tile, b int) {
	tilesize := 2 * b
	cutoff := tilesize / 2
	// E/W face starting at [B,1.5B], southern half only
	dstit := newFaceIterator(drect.Min.X+b, drect.Min.Y+b*3/2, -1, tilesize)
	for srcit := newFaceIterator((tile%16)*tilesize, (tile/16)*tilesize, 0, tilesize); !srcit.end; srcit.advance() {
		if dstit.pos/tilesize >= cutoff {
			rgba.Blend(dest, dstit.x, dstit.y, rgba.Get(tiles, srcit.x, srcit.y))
		}
		dstit.advance()
	}
	// N/S face starting at [B,0.5B]
	dstit = newFaceIterator(drect.Min.X+b, drect.Min.Y+b/2, 1, tilesize)
	for srcit := newFaceIterator((tile%16)*tilesize, (tile/16)*tilesize, 0, tilesize); !srcit.end; srcit.advance() {
		rgba.Blend(dest, dstit.x, dstit.y, rgba.Get(tiles, srcit.x, srcit.y))
		dstit.advance()
	}
	// E/W face starting at [B,1.5B], northern half only
	dstit = newFaceIterator(drect.Min.X+b, drect.Min.Y+b*3/2, -1, tilesize)
	for srcit := newFaceIterator((tile%16)*tilesize, (tile/16)*tilesize, 0, tilesize); !srcit.end; srcit.advance() {
		if dstit.pos/tilesize < cutoff {
			rgba.Blend(dest, dstit.x, dstit.y, rgba.Get(tiles, srcit.x, srcit.y))
		}
		dstit.advance()
	}
}

// drawPartialItemBlockImage is an item image possibly missing some arms
// (iron bars, glass panes).
func drawPartialItemBlockImage(dest *image.NRGBA, drect image.Rectangle, tiles *image.NRGBA, tile, b int, n, s, e, w bool) {
	tilesize := 2 * b
	cutoff := tilesize / 2
	if s {
		dstit := newFaceIterator(drect.Min.X+b, drect.Min.Y+b*3/2, -1, tilesize)
		for srcit := newFaceIterator((tile%16)*tilesize, (tile/16)*tilesize, 0, tilesize); !srcit.end; srcit.advance() {
			if dstit.pos/tilesize >= cutoff {
				rgba.Blend(dest, dstit.x, dstit.y, rgba.Get(tiles, srcit.x, srcit.y))
			}
			dstit.advance()
		}
	}
	dstit := newFaceIterator(drect.Min.X+b, drect.Min.Y+b/2, 1, tilesize)
	for srcit := newFaceIterator((tile%16)*tilesize, (tile/16)*tilesize, 0, tilesize); !srcit.end; srcit.advance() {
		if (w && dstit.pos/tilesize >= cutoff) || (e && dstit.pos/tilesize < cutoff) {
			rgba.Blend(dest, dstit.x, dstit.y, rgba.Get(tiles, srcit.x, srcit.y))
		}
		dstit.advance()
	}
	if n {
		dstit := newFaceIterator(drect.Min.X+b, drect.Min.Y+b*3/2, -1, tilesize)
		for srcit := newFaceIterator((tile%16)*tilesize, (tile/16)*tilesize, 0, tilesize); !srcit.end; srcit.advance() {
			if dstit.pos/tilesize < cutoff {
				rgba.Blend(dest, dstit.x, dstit.y, rgba.Get(tiles, srcit.x, srcit.y))
			}
			dstit.advance()
		}
	}
}

// drawMultiItemBlockImage draws four flat copies of a tile intersecting in
// a square (netherwart, crops).
func drawMultiItemBlockImage(dest *image.NRGBA, drect image.Rectangle, tiles *image.NRGBA, tile, b int) {
	tilesize := 2 * b
	type anchor struct {
		xoff, yoff, deltaY int
	}
	anchors := []anchor{
		{b / 2, b * 5 / 4, -1},
		{3 * b / 2, b * 7 / 4, -1},
		{b / 2, b * 3 / 4, 1},
		{3 * b / 2, b / 4, 1},
	}
	for _, a := range anchors {
		dstit := newFaceIterator(drect.Min.X+a.xoff, drect.Min.Y+a.yoff, a.deltaY, tilesize)
		for srcit := newFaceIterator((tile%16)*tilesize, (tile/16)*tilesize, 0, tilesize); !srcit.end; srcit.advance() {
			rgba.Blend(dest, dstit.x, dstit.y, rgba.Get(tiles, srcit.x, srcit.y))
			dstit.advance()
		}
	}
}

func singleFaceAnchor(face, b int) (xoff, yoff, deltaY int) {
	switch face {
	case 0: // S
		return 2 * b, 0, 1
	case 1: // N
		return 0, b, 1
	case 2: // W
		return 2 * b, 2 * b, -1
	default: // E
		return 0, b, -1
	}
}

// drawSingleFaceBlockImage draws a tile on one upright face.
// face: 0 = S, 1 = N, 2 = W, 3 = E.
func drawSingleFaceBlockImage(dest *image.NRGBA, drect image.Rectangle, tiles *image.NRGBA, tile, face, b int) {
	tilesize := 2 * b
	xoff, yoff, deltaY := singleFaceAnchor(face, b)
	dstit := newFaceIterator(drect.Min.X+xoff, drect.Min.Y+yoff, deltaY, tilesize)
	for srcit := newFaceIterator((tile%16)*tilesize, (tile/16)*tilesize, 0, tilesize); !srcit.end; srcit.advance() {
		rgba.Blend(dest, dstit.x, dstit.y, rgba.Get(tiles, srcit.x, srcit.y))
		dstit.advance()
	}
}

func fractionalCutoffs(fstartv, fendv, fstarth, fendh float64, tilesize int) (vs, ve, hs, he int) {
	clamp := func(f float64) int {
		c := int(f * float64(tilesize))
		if c < 0 {
			return 0
		}
		if c > tilesize {
			return tilesize
		}
		return c
	}
	return clamp(fstartv), clamp(fendv), clamp(fstarth), clamp(fendh)
}

// drawPartialSingleFaceBlockImage draws part of a tile on one upright
// face, with fractional vertical/horizontal cutoffs.
func drawPartialSingleFaceBlockImage(dest *image.NRGBA, drect image.Rectangle, tiles *image.NRGBA, tile, face, b int, fstartv, fendv, fstarth, fendh float64) {
	tilesize := 2 * b
	vstart, vend, hstart, hend := fractionalCutoffs(fstartv, fendv, fstarth, fendh, tilesize)
	xoff, yoff, deltaY := singleFaceAnchor(face, b)
	dstit := newFaceIterator(drect.Min.X+xoff, drect.Min.Y+yoff, deltaY, tilesize)
	for srcit := newFaceIterator((tile%16)*tilesize, (tile/16)*tilesize, 0, tilesize); !srcit.end; srcit.advance() {
		if dstit.pos%tilesize >= vstart && dstit.pos%tilesize < vend &&
			dstit.pos/tilesize >= hstart && dstit.pos/tilesize < hend {
			rgba.Blend(dest, dstit.x, dstit.y, rgba.Get(tiles, srcit.x, srcit.y))
		}
		dstit.advance()
	}
}

// drawOffsetSingleFaceBlockImage takes the same cutoff arguments as the
// partial variant but ignores them, drawing the full face.
func drawOffsetSingleFaceBlockImage(dest *image.NRGBA, drect image.Rectangle, tiles *image.NRGBA, tile, face, b int, fstartv, fendv, fstarth, fendh float64) {
	tilesize := 2 * b
	xoff, yoff, deltaY := singleFaceAnchor(face, b)
	dstit := newFaceIterator(drect.Min.X+xoff, drect.Min.Y+yoff, deltaY, tilesize)
	for srcit := newFaceIterator((tile%16)*tilesize, (tile/16)*tilesize, 0, tilesize); !srcit.end; srcit.advance() {
		rgba.Blend(dest, dstit.x, dstit.y, rgba.Get(tiles, srcit.x, srcit.y))
		dstit.advance()
	}
}

// drawFloorBlockImage draws a tile flat on the floor.
// rot: 0 = top of tile on the S side, 1 = W, 2 = N, 3 = E.
func drawFloorBlockImage(dest *image.NRGBA, drect image.Rectangle, tiles *image.NRGBA, tile, rot, b int) {
	tilesize := 2 * b
	dstit := newTopFaceIterator(drect.Min.X+2*b-1, drect.Min.Y+2*b, tilesize)
	for srcit := newRotatedFaceIterator((tile%16)*tilesize, (tile/16)*tilesize, rot, tilesize, false); !srcit.end; srcit.advance() {
		copyPixel(dest, dstit.x, dstit.y, tiles, srcit.x, srcit.y)
		dstit.advance()
	}
}

func drawPartialFloorBlockImage(dest *image.NRGBA, drect image.Rectangle, tiles *image.NRGBA, tile, b int, fstartv, fendv, fstarth, fendh float64) {
	tilesize := 2 * b
	vstart, vend, hstart, hend := fractionalCutoffs(fstartv, fendv, fstarth, fendh, tilesize)
	dstit := newTopFaceIterator(drect.Min.X+2*b-1, drect.Min.Y+2*b, tilesize)
	for srcit := newFaceIterator((tile%16)*tilesize, (tile/16)*tilesize, 0, tilesize); !srcit.end; srcit.advance() {
		if srcit.pos%tilesize >= vstart && srcit.pos%tilesize < vend &&
			srcit.pos/tilesize >= hstart && srcit.pos/tilesize < hend {
			copyPixel(dest, dstit.x, dstit.y, tiles, srcit.x, srcit.y)
		}
		dstit.advance()
	}
}

// drawAngledFloorBlockImage draws a floor tile tilted upwards (rails on
// slopes). rot as in drawFloorBlockImage; up picks which side is highest:
// 0 = S, 1 = W, 2 = N, 3 = E.
func drawAngledFloorBlockImage(dest *image.NRGBA, drect image.Rectangle, tiles *image.NRGBA, tile, rot, up, b int) {
	tilesize := 2 * b
	dstit := newTopFaceIterator(drect.Min.X+2*b-1, drect.Min.Y+2*b, tilesize)
	for srcit := newRotatedFaceIterator((tile%16)*tilesize, (tile/16)*tilesize, rot, tilesize, false); !srcit.end; srcit.advance() {
		row, col := srcit.pos%tilesize, srcit.pos/tilesize
		yoff := 0
		switch up {
		case 0:
			yoff = tilesize - 1 - row
		case 1:
			yoff = col
		case 2:
			yoff = row
		case 3:
			yoff = tilesize - 1 - col
		}
		rgba.Blend(dest, dstit.x, dstit.y-yoff, rgba.Get(tiles, srcit.x, srcit.y))
		rgba.Blend(dest, dstit.x, dstit.y-yoff+1, rgba.Get(tiles, srcit.x, srcit.y))
		dstit.advance()
	}
}

// drawCeilBlockImage draws a tile flat against the ceiling.
func drawCeilBlockImage(dest *image.NRGBA, drect image.Rectangle, tiles *image.NRGBA, tile, rot, b int) {
	tilesize := 2 * b
	dstit := newTopFaceIterator(drect.Min.X+2*b-1, drect.Min.Y, tilesize)
	for srcit := newRotatedFaceIterator((tile%16)*tilesize, (tile/16)*tilesize, rot, tilesize, false); !srcit.end; srcit.advance() {
		copyPixel(dest, dstit.x, dstit.y, tiles, srcit.x, srcit.y)
		dstit.advance()
	}
}

// drawSolidColorBlockImage fills the whole block shape with one color,
// keeping the usual face shading.
func drawSolidColorBlockImage(dest *image.NRGBA, drect image.Rectangle, p rgba.Pixel, b int) {
	tilesize := 2 * b
	for dstit := newFaceIterator(drect.Min.X, drect.Min.Y+b, 1, tilesize); !dstit.end; dstit.advance() {
		rgba.Set(dest, dstit.x, dstit.y, rgba.Darken(p, 0.9, 0.9, 0.9))
	}
	for dstit := newFaceIterator(drect.Min.X+2*b, drect.Min.Y+2*b, -1, tilesize); !dstit.end; dstit.advance() {
		rgba.Set(dest, dstit.x, dstit.y, rgba.Darken(p, 0.8, 0.8, 0.8))
	}
	for dstit := newTopFaceIterator(drect.Min.X+2*b-1, drect.Min.Y, tilesize); !dstit.end; dstit.advance() {
		rgba.Set(dest, dstit.x, dstit.y, p)
	}
}

// topHalfCutoff picks how many pixels of a top-face column belong to the
// near half. Odd B takes exactly B from each column; even B alternates
// between B-1 and B+1.
func topHalfCutoff(b, col int) int {
	if b%2 != 0 {
		return b
	}
	if col%2 == 0 {
		return b - 1
	}
	return b + 1
}

func drawStairsS(dest *image.NRGBA, drect image.Rectangle, tiles *image.NRGBA, tile, b int) {
	tilesize := 2 * b
	sx, sy := (tile%16)*tilesize, (tile/16)*tilesize
	// bottom half of the normal N face at [0,B]
	dstit := newFaceIterator(drect.Min.X, drect.Min.Y+b, 1, tilesize)
	for srcit := newFaceIterator(sx, sy, 0, tilesize); !srcit.end; srcit.advance() {
		if dstit.pos%tilesize >= b {
			copyDarken(dest, dstit.x, dstit.y, tiles, srcit.x, srcit.y, 0.9)
		}
		dstit.advance()
	}
	// all but the upper-left quarter of the normal W face at [2B,2B]
	dstit = newFaceIterator(drect.Min.X+2*b, drect.Min.Y+2*b, -1, tilesize)
	for srcit := newFaceIterator(sx, sy, 0, tilesize); !srcit.end; srcit.advance() {
		if dstit.pos%tilesize >= b || dstit.pos/tilesize >= b {
			copyDarken(dest, dstit.x, dstit.y, tiles, srcit.x, srcit.y, 0.8)
		}
		dstit.advance()
	}
	// top half of the normal U face at [2B-1,0]
	tdstit := newTopFaceIterator(drect.Min.X+2*b-1, drect.Min.Y, tilesize)
	for srcit := newFaceIterator(sx, sy, 0, tilesize); !srcit.end; srcit.advance() {
		if tdstit.pos%tilesize < topHalfCutoff(b, tdstit.pos/tilesize) {
			copyPixel(dest, tdstit.x, tdstit.y, tiles, srcit.x, srcit.y)
		}
		tdstit.advance()
	}
	// top half of another N face at [B,B/2]; odd B shifts the
	// even-numbered columns down a pixel
	dstit = newFaceIterator(drect.Min.X+b, drect.Min.Y+b/2, 1, tilesize)
	for srcit := newFaceIterator(sx, sy, 0, tilesize); !srcit.end; srcit.advance() {
		adjust := 0
		if b%2 == 1 && (dstit.pos/tilesize)%2 == 0 {
			adjust = 1
		}
		if dstit.pos%tilesize < b {
			copyDarken(dest, dstit.x, dstit.y+adjust, tiles, srcit.x, srcit.y, 0.9)
		}
		dstit.advance()
	}
	// bottom half of another U face at [2B-1,B]
	tdstit = newTopFaceIterator(drect.Min.X+2*b-1, drect.Min.Y+b, tilesize)
	for srcit := newFaceIterator(sx, sy, 0, tilesize); !srcit.end; srcit.advance() {
		if tdstit.pos%tilesize >= topHalfCutoff(b, tdstit.pos/tilesize) {
			copyPixel(dest, tdstit.x, tdstit.y, tiles, srcit.x, srcit.y)
		}
		tdstit.advance()
	}
}

func drawInvStairsS(dest *image.NRGBA, drect image.Rectangle, tiles *image.NRGBA, tile, b int) {
	tilesize := 2 * b
	sx, sy := (tile%16)*tilesize, (tile/16)*tilesize
	// bottom half of a N face at [B,B/2] first, the rest covers it
	dstit := newFaceIterator(drect.Min.X+b, drect.Min.Y+b/2, 1, tilesize)
	for srcit := newFaceIterator(sx, sy, 0, tilesize); !srcit.end; srcit.advance() {
		adjust := 0
		if b%2 == 1 && (dstit.pos/tilesize)%2 == 0 {
			adjust = 1
		}
		if dstit.pos%tilesize >= b {
			copyDarken(dest, dstit.x, dstit.y+adjust, tiles, srcit.x, srcit.y, 0.9)
		}
		dstit.advance()
	}
	// top half of the normal N face
	dstit = newFaceIterator(drect.Min.X, drect.Min.Y+b, 1, tilesize)
	for srcit := newFaceIterator(sx, sy, 0, tilesize); !srcit.end; srcit.advance() {
		if dstit.pos%tilesize < b {
			copyDarken(dest, dstit.x, dstit.y, tiles, srcit.x, srcit.y, 0.9)
		}
		dstit.advance()
	}
	// all but the lower-left quarter of the normal W face
	dstit = newFaceIterator(drect.Min.X+2*b, drect.Min.Y+2*b, -1, tilesize)
	for srcit := newFaceIterator(sx, sy, 0, tilesize); !srcit.end; srcit.advance() {
		if dstit.pos%tilesize < b || dstit.pos/tilesize >= b {
			copyDarken(dest, dstit.x, dstit.y, tiles, srcit.x, srcit.y, 0.8)
		}
		dstit.advance()
	}
	// full U face
	tdstit := newTopFaceIterator(drect.Min.X+2*b-1, drect.Min.Y, tilesize)
	for srcit := newFaceIterator(sx, sy, 0, tilesize); !srcit.end; srcit.advance() {
		copyPixel(dest, tdstit.x, tdstit.y, tiles, srcit.x, srcit.y)
		tdstit.advance()
	}
}

func drawStairsN(dest *image.NRGBA, drect image.Rectangle, tiles *image.NRGBA, tile, b int) {
	tilesize := 2 * b
	sx, sy := (tile%16)*tilesize, (tile/16)*tilesize
	// top half of an U face at [2B-1,B]
	tdstit := newTopFaceIterator(drect.Min.X+2*b-1, drect.Min.Y+b, tilesize)
	for srcit := newFaceIterator(sx, sy, 0, tilesize); !srcit.end; srcit.advance() {
		if tdstit.pos%tilesize < topHalfCutoff(b, tdstit.pos/tilesize) {
			copyPixel(dest, tdstit.x, tdstit.y, tiles, srcit.x, srcit.y)
		}
		tdstit.advance()
	}
	// bottom half of the normal U face at [2B-1,0]
	tdstit = newTopFaceIterator(drect.Min.X+2*b-1, drect.Min.Y, tilesize)
	for srcit := newFaceIterator(sx, sy, 0, tilesize); !srcit.end; srcit.advance() {
		if tdstit.pos%tilesize >= topHalfCutoff(b, tdstit.pos/tilesize) {
			copyPixel(dest, tdstit.x, tdstit.y, tiles, srcit.x, srcit.y)
		}
		tdstit.advance()
	}
	// full N face
	dstit := newFaceIterator(drect.Min.X, drect.Min.Y+b, 1, tilesize)
	for srcit := newFaceIterator(sx, sy, 0, tilesize); !srcit.end; srcit.advance() {
		copyDarken(dest, dstit.x, dstit.y, tiles, srcit.x, srcit.y, 0.9)
		dstit.advance()
	}
	// all but the upper-right quarter of the normal W face
	dstit = newFaceIterator(drect.Min.X+2*b, drect.Min.Y+2*b, -1, tilesize)
	for srcit := newFaceIterator(sx, sy, 0, tilesize); !srcit.end; srcit.advance() {
		if dstit.pos%tilesize >= b || dstit.pos/tilesize < b {
			copyDarken(dest, dstit.x, dstit.y, tiles, srcit.x, srcit.y, 0.8)
		}
		dstit.advance()
	}
}

func drawInvStairsN(dest *image.NRGBA, drect image.Rectangle, tiles *image.NRGBA, tile, b int) {
	tilesize := 2 * b
	sx, sy := (tile%16)*tilesize, (tile/16)*tilesize
	// full U face
	tdstit := newTopFaceIterator(drect.Min.X+2*b-1, drect.Min.Y, tilesize)
	for srcit := newFaceIterator(sx, sy, 0, tilesize); !srcit.end; srcit.advance() {
		copyPixel(dest, tdstit.x, tdstit.y, tiles, srcit.x, srcit.y)
		tdstit.advance()
	}
	// full N face
	dstit := newFaceIterator(drect.Min.X, drect.Min.Y+b, 1, tilesize)
	for srcit := newFaceIterator(sx, sy, 0, tilesize); !srcit.end; srcit.advance() {
		copyDarken(dest, dstit.x, dstit.y, tiles, srcit.x, srcit.y, 0.9)
		dstit.advance()
	}
	// all but the lower-right quarter of the normal W face
	dstit = newFaceIterator(drect.Min.X+2*b, drect.Min.Y+2*b, -1, tilesize)
	for srcit := newFaceIterator(sx, sy, 0, tilesize); !srcit.end; srcit.advance() {
		if dstit.pos%tilesize < b || dstit.pos/tilesize < b {
			copyDarken(dest, dstit.x, dstit.y, tiles, srcit.x, srcit.y, 0.8)
		}
		dstit.advance()
	}
}

// topLeftHalf reports whether a top-face position falls in the left half.
// Odd B skips the last pixel of the last left-half column and picks up the
// first pixel of the first right-half column.
func topLeftHalf(pos, tilesize, b int) bool {
	tcutoff := tilesize * b
	if b%2 == 1 {
		return pos < tcutoff-1 || pos == tcutoff
	}
	return pos < tcutoff
}

func topRightHalf(pos, tilesize, b int) bool {
	tcutoff := tilesize * b
	if b%2 == 1 {
		return pos >= tcutoff+1 || pos == tcutoff-1
	}
	return pos >= tcutoff
}

func drawStairsE(dest *image.NRGBA, drect image.Rectangle, tiles *image.NRGBA, tile, b int) {
	tilesize := 2 * b
	sx, sy := (tile%16)*tilesize, (tile/16)*tilesize
	// all but the upper-right quarter of the normal N face
	dstit := newFaceIterator(drect.Min.X, drect.Min.Y+b, 1, tilesize)
	for srcit := newFaceIterator(sx, sy, 0, tilesize); !srcit.end; srcit.advance() {
		if dstit.pos%tilesize >= b || dstit.pos/tilesize < b {
			copyDarken(dest, dstit.x, dstit.y, tiles, srcit.x, srcit.y, 0.9)
		}
		dstit.advance()
	}
	// bottom half of the normal W face
	dstit = newFaceIterator(drect.Min.X+2*b, drect.Min.Y+2*b, -1, tilesize)
	for srcit := newFaceIterator(sx, sy, 0, tilesize); !srcit.end; srcit.advance() {
		if dstit.pos%tilesize >= b {
			copyDarken(dest, dstit.x, dstit.y, tiles, srcit.x, srcit.y, 0.8)
		}
		dstit.advance()
	}
	// left half of the normal U face at [2B-1,0]
	tdstit := newTopFaceIterator(drect.Min.X+2*b-1, drect.Min.Y, tilesize)
	for srcit := newFaceIterator(sx, sy, 0, tilesize); !srcit.end; srcit.advance() {
		if topLeftHalf(tdstit.pos, tilesize, b) {
			copyPixel(dest, tdstit.x, tdstit.y, tiles, srcit.x, srcit.y)
		}
		tdstit.advance()
	}
	// top half of another W face at [B,1.5B]; odd B shifts the
	// odd-numbered columns down a pixel
	dstit = newFaceIterator(drect.Min.X+b, drect.Min.Y+3*b/2, -1, tilesize)
	for srcit := newFaceIterator(sx, sy, 0, tilesize); !srcit.end; srcit.advance() {
		adjust := 0
		if b%2 == 1 && (dstit.pos/tilesize)%2 == 1 {
			adjust = 1
		}
		if dstit.pos%tilesize < b {
			copyDarken(dest, dstit.x, dstit.y+adjust, tiles, srcit.x, srcit.y, 0.8)
		}
		dstit.advance()
	}
	// right half of another U face at [2B-1,B]
	tdstit = newTopFaceIterator(drect.Min.X+2*b-1, drect.Min.Y+b, tilesize)
	for srcit := newFaceIterator(sx, sy, 0, tilesize); !srcit.end; srcit.advance() {
		if topRightHalf(tdstit.pos, tilesize, b) {
			copyPixel(dest, tdstit.x, tdstit.y, tiles, srcit.x, srcit.y)
		}
		tdstit.advance()
	}
}

func drawInvStairsE(dest *image.NRGBA, drect image.Rectangle, tiles *image.NRGBA, tile, b int) {
	tilesize := 2 * b
	sx, sy := (tile%16)*tilesize, (tile/16)*tilesize
	// bottom half of a W face at [B,1.5B] first, the rest covers it
	dstit := newFaceIterator(drect.Min.X+b, drect.Min.Y+3*b/2, -1, tilesize)
	for srcit := newFaceIterator(sx, sy, 0, tilesize); !srcit.end; srcit.advance() {
		adjust := 0
		if b%2 == 1 && (dstit.pos/tilesize)%2 == 1 {
			adjust = 1
		}
		if dstit.pos%tilesize >= b {
			copyDarken(dest, dstit.x, dstit.y+adjust, tiles, srcit.x, srcit.y, 0.8)
		}
		dstit.advance()
	}
	// top half of the normal W face
	dstit = newFaceIterator(drect.Min.X+2*b, drect.Min.Y+2*b, -1, tilesize)
	for srcit := newFaceIterator(sx, sy, 0, tilesize); !srcit.end; srcit.advance() {
		if dstit.pos%tilesize < b {
			copyDarken(dest, dstit.x, dstit.y, tiles, srcit.x, srcit.y, 0.8)
		}
		dstit.advance()
	}
	// all but the lower-right quarter of the normal N face
	dstit = newFaceIterator(drect.Min.X, drect.Min.Y+b, 1, tilesize)
	for srcit := newFaceIterator(sx, sy, 0, tilesize); !srcit.end; srcit.advance() {
		if dstit.pos%tilesize < b || dstit.pos/tilesize < b {
			copyDarken(dest, dstit.x, dstit.y, tiles, srcit.x, srcit.y, 0.9)
		}
		dstit.advance()
	}
	// full U face
	tdstit := newTopFaceIterator(drect.Min.X+2*b-1, drect.Min.Y, tilesize)
	for srcit := newFaceIterator(sx, sy, 0, tilesize); !srcit.end; srcit.advance() {
		copyPixel(dest, tdstit.x, tdstit.y, tiles, srcit.x, srcit.y)
		tdstit.advance()
	}
}

func drawStairsW(dest *image.NRGBA, drect image.Rectangle, tiles *image.NRGBA, tile, b int) {
	tilesize := 2 * b
	sx, sy := (tile%16)*tilesize, (tile/16)*tilesize
	// left half of an U face at [2B-1,B]
	tdstit := newTopFaceIterator(drect.Min.X+2*b-1, drect.Min.Y+b, tilesize)
	for srcit := newFaceIterator(sx, sy, 0, tilesize); !srcit.end; srcit.advance() {
		if topLeftHalf(tdstit.pos, tilesize, b) {
			copyPixel(dest, tdstit.x, tdstit.y, tiles, srcit.x, srcit.y)
		}
		tdstit.advance()
	}
	// right half of the normal U face at [2B-1,0]
	tdstit = newTopFaceIterator(drect.Min.X+2*b-1, drect.Min.Y, tilesize)
	for srcit := newFaceIterator(sx, sy, 0, tilesize); !srcit.end; srcit.advance() {
		if topRightHalf(tdstit.pos, tilesize, b) {
			copyPixel(dest, tdstit.x, tdstit.y, tiles, srcit.x, srcit.y)
		}
		tdstit.advance()
	}
	// all but the upper-left quarter of the normal N face
	dstit := newFaceIterator(drect.Min.X, drect.Min.Y+b, 1, tilesize)
	for srcit := newFaceIterator(sx, sy, 0, tilesize); !srcit.end; srcit.advance() {
		if dstit.pos%tilesize >= b || dstit.pos/tilesize >= b {
			copyDarken(dest, dstit.x, dstit.y, tiles, srcit.x, srcit.y, 0.9)
		}
		dstit.advance()
	}
	// full W face
	dstit = newFaceIterator(drect.Min.X+2*b, drect.Min.Y+2*b, -1, tilesize)
	for srcit := newFaceIterator(sx, sy, 0, tilesize); !srcit.end; srcit.advance() {
		copyDarken(dest, dstit.x, dstit.y, tiles, srcit.x, srcit.y, 0.8)
		dstit.advance()
	}
}

func drawInvStairsW(dest *image.NRGBA, drect image.Rectangle, tiles *image.NRGBA, tile, b int) {
	tilesize := 2 * b
	sx, sy := (tile%16)*tilesize, (tile/16)*tilesize
	// full U face
	tdstit := newTopFaceIterator(drect.Min.X+2*b-1, drect.Min.Y, tilesize)
	for srcit := newFaceIterator(sx, sy, 0, tilesize); !srcit.end; srcit.advance() {
		copyPixel(dest, tdstit.x, tdstit.y, tiles, srcit.x, srcit.y)
		tdstit.advance()
	}
	// full W face
	dstit := newFaceIterator(drect.Min.X+2*b, drect.Min.Y+2*b, -1, tilesize)
	for srcit := newFaceIterator(sx, sy, 0, tilesize); !srcit.end; srcit.advance() {
		copyDarken(dest, dstit.x, dstit.y, tiles, srcit.x, srcit.y, 0.8)
		dstit.advance()
	}
	// all but the lower-left quarter of the normal N face
	dstit = newFaceIterator(drect.Min.X, drect.Min.Y+b, 1, tilesize)
	for srcit := newFaceIterator(sx, sy, 0, tilesize); !srcit.end; srcit.advance() {
		if dstit.pos%tilesize < b || dstit.pos/tilesize >= b {
			copyDarken(dest, dstit.x, dstit.y, tiles, srcit.x, srcit.y, 0.9)
		}
		dstit.advance()
	}
}

func drawFencePost(dest *image.NRGBA, drect image.Rectangle, tiles *image.NRGBA, tile, b int) {
	tilesize := 2 * b
	tilex, tiley := (tile%16)*tilesize, (tile/16)*tilesize

	// 2x2 top at [2B-1,B-1]
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			copyPixel(dest, drect.Min.X+2*b-1+x, drect.Min.Y+b-1+y, tiles, tilex+x, tiley+y)
		}
	}
	// two 1x2B sides at [2B-1,B+1] and [2B,B+1]
	for y := 0; y < 2*b; y++ {
		copyPixel(dest, drect.Min.X+2*b-1, drect.Min.Y+b+1+y, tiles, tilex, tiley+y)
		copyPixel(dest, drect.Min.X+2*b, drect.Min.Y+b+1+y, tiles, tilex, tiley+y)
	}
}

// drawFence draws a post and up to four rails. E and S rails go first so
// the post sits in front of them.
func drawFence(dest *image.NRGBA, drect image.Rectangle, tiles *image.NRGBA, tile int, n, s, e, w, post bool, b int) {
	tilesize := 2 * b
	sx, sy := (tile%16)*tilesize, (tile/16)*tilesize
	rail := func(pos int) bool {
		return ((pos%tilesize)*2/b)%4 == 1
	}
	if e {
		// N/S face starting at [B,0.5B], left half, one strip
		dstit := newFaceIterator(drect.Min.X+b, drect.Min.Y+b/2, 1, tilesize)
		for srcit := newFaceIterator(sx, sy, 0, tilesize); !srcit.end; srcit.advance() {
			if dstit.pos/tilesize < b && rail(dstit.pos) {
				copyPixel(dest, dstit.x, dstit.y, tiles, srcit.x, srcit.y)
			}
			dstit.advance()
		}
	}
	if s {
		// E/W face starting at [B,1.5B], right half, one strip
		dstit := newFaceIterator(drect.Min.X+b, drect.Min.Y+b*3/2, -1, tilesize)
		for srcit := newFaceIterator(sx, sy, 0, tilesize); !srcit.end; srcit.advance() {
			if dstit.pos/tilesize >= b && rail(dstit.pos) {
				copyPixel(dest, dstit.x, dstit.y, tiles, srcit.x, srcit.y)
			}
			dstit.advance()
		}
	}
	if post {
		drawFencePost(dest, drect, tiles, tile, b)
	}
	if w {
		// N/S face starting at [B,0.5B], right half, one strip
		dstit := newFaceIterator(drect.Min.X+b, drect.Min.Y+b/2, 1, tilesize)
		for srcit := newFaceIterator(sx, sy, 0, tilesize); !srcit.end; srcit.advance() {
			if dstit.pos/tilesize >= b && rail(dstit.pos) {
				copyPixel(dest, dstit.x, dstit.y, tiles, srcit.x, srcit.y)
			}
			dstit.advance()
		}
	}
	if n {
		// E/W face starting at [B,1.5B], left half, one strip
		dstit := newFaceIterator(drect.Min.X+b, drect.Min.Y+b*3/2, -1, tilesize)
		for srcit := newFaceIterator(sx, sy, 0, tilesize); !srcit.end; srcit.advance() {
			if dstit.pos/tilesize < b && rail(dstit.pos) {
				copyPixel(dest, dstit.x, dstit.y, tiles, srcit.x, srcit.y)
			}
			dstit.advance()
		}
	}
}

// drawSign draws a post with the top half of a tile facing the viewer.
func drawSign(dest *image.NRGBA, drect image.Rectangle, tiles *image.NRGBA, tile, b int) {
	drawFencePost(dest, drect, tiles, tile, b)

	tilesize := 2 * b
	dstit := newFaceIterator(drect.Min.X+b, drect.Min.Y+b, 0, tilesize)
	for srcit := newFaceIterator((tile%16)*tilesize, (tile/16)*tilesize, 0, tilesize); !srcit.end; srcit.advance() {
		if dstit.pos%tilesize < b {
			copyPixel(dest, dstit.x, dstit.y, tiles, srcit.x, srcit.y)
		}
		dstit.advance()
	}
}

func drawWallLever(dest *image.NRGBA, drect image.Rectangle, tiles *image.NRGBA, face, b int) {
	drawPartialSingleFaceBlockImage(dest, drect, tiles, 16, face, b, 0.5, 1, 0.35, 0.65)
	drawSingleFaceBlockImage(dest, drect, tiles, 96, face, b)
}

func drawFloorLeverNS(dest *image.NRGBA, drect image.Rectangle, tiles *image.NRGBA, b int) {
	drawPartialFloorBlockImage(dest, drect, tiles, 16, b, 0.25, 0.75, 0.35, 0.65)
	drawItemBlockImage(dest, drect, tiles, 96, b)
}

func drawFloorLeverEW(dest *image.NRGBA, drect image.Rectangle, tiles *image.NRGBA, b int) {
	drawPartialFloorBlockImage(dest, drect, tiles, 16, b, 0.35, 0.65, 0.25, 0.75)
	drawItemBlockImage(dest, drect, tiles, 96, b)
}

func drawRepeater(dest *image.NRGBA, drect image.Rectangle, tiles *image.NRGBA, tile, rot, b int) {
	drawFloorBlockImage(dest, drect, tiles, tile, rot, b)
	drawItemBlockImage(dest, drect, tiles, 99, b)
}

func drawFire(dest *image.NRGBA, drect image.Rectangle, firetile *image.NRGBA, b int) {
	drawSingleFaceBlockImage(dest, drect, firetile, 0, 0, b)
	drawSingleFaceBlockImage(dest, drect, firetile, 0, 3, b)
	drawSingleFaceBlockImage(dest, drect, firetile, 0, 1, b)
	drawSingleFaceBlockImage(dest, drect, firetile, 0, 2, b)
}

func drawBrewingStand(dest *image.NRGBA, drect image.Rectangle, tiles *image.NRGBA, base, stand, b int) {
	drawFloorBlockImage(dest, drect, tiles, base, 0, b)
	drawItemBlockImage(dest, drect, tiles, stand, b)
}

// drawCauldron draws E/S sides first, the liquid surface, then N/W sides.
func drawCauldron(dest *image.NRGBA, drect image.Rectangle, tiles *image.NRGBA, side, liquid, cutoff, b int) {
	drawSingleFaceBlockImage(dest, drect, tiles, side, 0, b)
	drawSingleFaceBlockImage(dest, drect, tiles, side, 3, b)
	if liquid != -1 {
		drawPartialBlockImage(dest, drect, tiles, -1, -1, liquid, b, cutoff, 0, 0, 0, true)
	}
	drawSingleFaceBlockImage(dest, drect, tiles, side, 1, b)
	drawSingleFaceBlockImage(dest, drect, tiles, side, 2, b)
}

func drawVines(dest *image.NRGBA, drect image.Rectangle, tiles *image.NRGBA, tile, b int, n, s, e, w, top bool) {
	if s {
		drawSingleFaceBlockImage(dest, drect, tiles, tile, 0, b)
	}
	if e {
		drawSingleFaceBlockImage(dest, drect, tiles, tile, 3, b)
	}
	if n {
		drawSingleFaceBlockImage(dest, drect, tiles, tile, 1, b)
	}
	if w {
		drawSingleFaceBlockImage(dest, drect, tiles, tile, 2, b)
	}
	if top {
		drawCeilBlockImage(dest, drect, tiles, tile, 0, b)
	}
}

// drawDragonEgg approximates the egg as a half-size block.
func drawDragonEgg(dest *image.NRGBA, drect image.Rectangle, tiles *image.NRGBA, tile, b int) {
	tilesize := 2 * b
	sx, sy := (tile%16)*tilesize, (tile/16)*tilesize
	// bottom-right quarter of a N face at [0,0.5B]
	dstit := newFaceIterator(drect.Min.X, drect.Min.Y+b/2, 1, tilesize)
	for srcit := newFaceIterator(sx, sy, 0, tilesize); !srcit.end; srcit.advance() {
		if dstit.pos%tilesize >= b && dstit.pos/tilesize >= b {
			copyDarken(dest, dstit.x, dstit.y, tiles, srcit.x, srcit.y, 0.9)
		}
		dstit.advance()
	}
	// bottom-left quarter of a W face at [2B,1.5B]
	dstit = newFaceIterator(drect.Min.X+2*b, drect.Min.Y+3*b/2, -1, tilesize)
	for srcit := newFaceIterator(sx, sy, 0, tilesize); !srcit.end; srcit.advance() {
		if dstit.pos%tilesize >= b && dstit.pos/tilesize < b {
			copyDarken(dest, dstit.x, dstit.y, tiles, srcit.x, srcit.y, 0.8)
		}
		dstit.advance()
	}
	// bottom-right quarter of a U face at [2B-1,0.5B]
	tdstit := newTopFaceIterator(drect.Min.X+2*b-1, drect.Min.Y+b/2, tilesize)
	for srcit := newFaceIterator(sx, sy, 0, tilesize); !srcit.end; srcit.advance() {
		cutoff := topHalfCutoff(b, tdstit.pos/tilesize)
		if tdstit.pos%tilesize >= cutoff && tdstit.pos/tilesize >= cutoff {
			copyPixel(dest, tdstit.x, tdstit.y, tiles, srcit.x, srcit.y)
		}
		tdstit.advance()
	}
}

// drawPipe draws a transport pipe: the top face of a half block plus an
// item cross.
func drawPipe(dest *image.NRGBA, drect image.Rectangle, tiles *image.NRGBA, tile, b int) {
	drawPartialBlockImage(dest, drect, tiles, -1, -1, tile, b, b, 0, 0, 0, false)
	drawItemBlockImage(dest, drect, tiles, tile, b)
}

// drawEngine draws a half-block base with a quarter-size pillar on top.
// The pillar anchors half a block above the cell, so writes are clipped to
// the cell to keep neighboring slots clean.
func drawEngine(dest *image.NRGBA, drect image.Rectangle, tiles *image.NRGBA, coltile, basetile, b int) {
	drawPartialBlockImage(dest, drect, tiles, basetile, basetile, basetile, b, b, 0, 0, 0, false)

	tilesize := 2 * b
	sx, sy := (coltile%16)*tilesize, (coltile/16)*tilesize
	// bottom-right quarter of a N face at [0,-0.5B]
	dstit := newFaceIterator(drect.Min.X, drect.Min.Y-b/2, 1, tilesize)
	for srcit := newFaceIterator(sx, sy, 0, tilesize); !srcit.end; srcit.advance() {
		if dstit.pos%tilesize >= b && dstit.pos/tilesize >= b && dstit.y >= drect.Min.Y {
			copyDarken(dest, dstit.x, dstit.y, tiles, srcit.x, srcit.y, 0.9)
		}
		dstit.advance()
	}
	// bottom-left quarter of a W face at [2B,0.5B]
	dstit = newFaceIterator(drect.Min.X+2*b, drect.Min.Y+b/2, -1, tilesize)
	for srcit := newFaceIterator(sx, sy, 0, tilesize); !srcit.end; srcit.advance() {
		if dstit.pos%tilesize >= b && dstit.pos/tilesize < b && dstit.y >= drect.Min.Y {
			copyDarken(dest, dstit.x, dstit.y, tiles, srcit.x, srcit.y, 0.8)
		}
		dstit.advance()
	}
	// bottom-right quarter of a U face at [2B-1,-0.5B]
	tdstit := newTopFaceIterator(drect.Min.X+2*b-1, drect.Min.Y-b/2, tilesize)
	for srcit := newFaceIterator(sx, sy, 0, tilesize); !srcit.end; srcit.advance() {
		cutoff := topHalfCutoff(b, tdstit.pos/tilesize)
		if tdstit.pos%tilesize >= cutoff && tdstit.pos/tilesize >= cutoff && tdstit.y >= drect.Min.Y {
			copyPixel(dest, tdstit.x, tdstit.y, tiles, srcit.x, srcit.y)
		}
		tdstit.advance()
	}
}
