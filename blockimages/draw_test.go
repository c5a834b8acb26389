package blockimages

import (
	"bytes"
	"image"
	"testing"

	"github.com/qwindelzorf/pigmap/engine/rgba"
)

// opaqueTile returns a single-tile sheet filled with one color.
func opaqueTile(tilesize int, p rgba.Pixel) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, tilesize, tilesize))
	for y := 0; y < tilesize; y++ {
		for x := 0; x < tilesize; x++ {
			rgba.Set(img, x, y, p)
		}
	}
	return img
}

func countNonEmpty(img *image.NRGBA) int {
	n := 0
	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if rgba.GetAlpha(img, x, y) != 0 {
				n++
			}
		}
	}
	return n
}

func TestDrawSolidColorBlockImage(t *testing.T) {
	bsize := 4
	tilesize := 2 * bsize
	cell := image.Rect(0, 0, 4*bsize, 4*bsize)
	dest := image.NewNRGBA(cell)

	p := rgba.Pixel{R: 200, G: 100, B: 50, A: 255}
	drawSolidColorBlockImage(dest, cell, p, bsize)

	if got, want := countNonEmpty(dest), 3*tilesize*tilesize; got != want {
		t.Fatalf("drew %d pixels, want %d", got, want)
	}
	if got := rgba.Get(dest, 2*bsize-1, 0); got != p {
		t.Errorf("top face pixel = %+v, want %+v", got, p)
	}
	if got, want := rgba.Get(dest, 0, bsize), rgba.Darken(p, 0.9, 0.9, 0.9); got != want {
		t.Errorf("N face pixel = %+v, want %+v", got, want)
	}
	if got, want := rgba.Get(dest, 2*bsize, 2*bsize), rgba.Darken(p, 0.8, 0.8, 0.8); got != want {
		t.Errorf("W face pixel = %+v, want %+v", got, want)
	}
}

func TestDrawBlockImageSkipsMissingFaces(t *testing.T) {
	bsize := 4
	tilesize := 2 * bsize
	cell := image.Rect(0, 0, 4*bsize, 4*bsize)
	dest := image.NewNRGBA(cell)
	tiles := opaqueTile(tilesize, rgba.Pixel{R: 10, G: 20, B: 30, A: 255})

	drawBlockImage(dest, cell, tiles, -1, -1, 0, bsize)

	if got, want := countNonEmpty(dest), tilesize*tilesize; got != want {
		t.Fatalf("drew %d pixels with only the top face, want %d", got, want)
	}
}

func TestDrawOffsetSingleFaceIgnoresCutoffs(t *testing.T) {
	bsize := 4
	tilesize := 2 * bsize
	cell := image.Rect(0, 0, 4*bsize, 4*bsize)
	tiles := opaqueTile(tilesize, rgba.Pixel{R: 90, G: 90, B: 90, A: 255})

	full := image.NewNRGBA(cell)
	drawSingleFaceBlockImage(full, cell, tiles, 0, 2, bsize)

	offset := image.NewNRGBA(cell)
	drawOffsetSingleFaceBlockImage(offset, cell, tiles, 0, 2, bsize, 0.25, 0.75, 0.25, 0.75)

	if !bytes.Equal(full.Pix, offset.Pix) {
		t.Fatal("offset variant should draw the whole face regardless of cutoffs")
	}
}

// The engine pillar anchors half a block above its cell; nothing may leak
// into the slot above.
func TestDrawEngineStaysInCell(t *testing.T) {
	bsize := 4
	rectsize := 4 * bsize
	tilesize := 2 * bsize
	dest := image.NewNRGBA(image.Rect(0, 0, rectsize, 2*rectsize))
	tiles := opaqueTile(tilesize, rgba.Pixel{R: 50, G: 60, B: 70, A: 255})

	cell := image.Rect(0, rectsize, rectsize, 2*rectsize)
	drawEngine(dest, cell, tiles, 0, 0, bsize)

	for y := 0; y < rectsize; y++ {
		for x := 0; x < rectsize; x++ {
			if rgba.GetAlpha(dest, x, y) != 0 {
				t.Fatalf("engine leaked into the cell above at (%d,%d)", x, y)
			}
		}
	}
	if countNonEmpty(dest) == 0 {
		t.Fatal("engine drew nothing")
	}
}

func TestDeinterpolate(t *testing.T) {
	// a 16-pixel texture resized to 32: source pixel 8 starts at output 16
	if got := deinterpolate(8, 16, 32); got != 16 {
		t.Errorf("deinterpolate(8,16,32) = %d, want 16", got)
	}
	// targets past the end clamp to the last pixel
	if got := deinterpolate(16, 16, 32); got != 31 {
		t.Errorf("deinterpolate(16,16,32) = %d, want 31", got)
	}
	if got := deinterpolate(0, 16, 32); got != 0 {
		t.Errorf("deinterpolate(0,16,32) = %d, want 0", got)
	}
}
