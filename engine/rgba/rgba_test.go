package rgba

import (
	"bytes"
	"image"
	"image/color"
	"path/filepath"
	"testing"
)

func TestGetSetRoundTrip(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	p := Pixel{R: 1, G: 2, B: 3, A: 4}
	Set(img, 2, 3, p)
	if got := Get(img, 2, 3); got != p {
		t.Errorf("Get = %v, want %v", got, p)
	}
	if got := GetAlpha(img, 2, 3); got != 4 {
		t.Errorf("GetAlpha = %d, want 4", got)
	}
	SetAlpha(img, 2, 3, 200)
	if got := Get(img, 2, 3); got != (Pixel{R: 1, G: 2, B: 3, A: 200}) {
		t.Errorf("SetAlpha left %v", got)
	}
}

func TestDarkenTruncates(t *testing.T) {
	p := Darken(Pixel{R: 255, G: 255, B: 255, A: 77}, 0.5, 0.25, 0.1)
	want := Pixel{R: 127, G: 63, B: 25, A: 77}
	if p != want {
		t.Errorf("Darken = %v, want %v", p, want)
	}
}

func TestBlend(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 1, 1))

	// transparent source leaves the destination alone
	Set(img, 0, 0, Pixel{R: 10, G: 20, B: 30, A: 40})
	Blend(img, 0, 0, Pixel{R: 99, G: 99, B: 99, A: 0})
	if got := Get(img, 0, 0); got != (Pixel{R: 10, G: 20, B: 30, A: 40}) {
		t.Errorf("blend with a=0 changed pixel to %v", got)
	}

	// opaque source replaces outright
	Blend(img, 0, 0, Pixel{R: 1, G: 2, B: 3, A: 255})
	if got := Get(img, 0, 0); got != (Pixel{R: 1, G: 2, B: 3, A: 255}) {
		t.Errorf("blend with a=255 gave %v", got)
	}

	// anything over a fully transparent pixel replaces too
	Set(img, 0, 0, Pixel{})
	Blend(img, 0, 0, Pixel{R: 7, G: 8, B: 9, A: 100})
	if got := Get(img, 0, 0); got != (Pixel{R: 7, G: 8, B: 9, A: 100}) {
		t.Errorf("blend over transparent gave %v", got)
	}

	// partial alpha follows the integer source-over math
	Set(img, 0, 0, Pixel{R: 0, G: 0, B: 100, A: 255})
	Blend(img, 0, 0, Pixel{R: 200, G: 100, B: 0, A: 128})
	want := Pixel{R: 100, G: 50, B: 49, A: 255}
	if got := Get(img, 0, 0); got != want {
		t.Errorf("partial blend gave %v, want %v", got, want)
	}
}

func TestBlit(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			Set(src, x, y, Pixel{R: uint8(x), G: uint8(y), A: 255})
		}
	}
	dst := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	Blit(dst, src, image.Rect(1, 1, 3, 3), 5, 6)

	if got := Get(dst, 5, 6); got != (Pixel{R: 1, G: 1, A: 255}) {
		t.Errorf("blit corner = %v", got)
	}
	if got := Get(dst, 6, 7); got != (Pixel{R: 2, G: 2, A: 255}) {
		t.Errorf("blit corner = %v", got)
	}
	if got := GetAlpha(dst, 4, 6); got != 0 {
		t.Errorf("blit wrote outside its target, alpha %d", got)
	}
}

func TestFlipX(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 3, 1))
	for x := 0; x < 3; x++ {
		Set(img, x, 0, Pixel{R: uint8(x), A: 255})
	}
	FlipX(img, img.Bounds())
	for x := 0; x < 3; x++ {
		if got := Get(img, x, 0).R; got != uint8(2-x) {
			t.Errorf("pixel %d = %d after flip, want %d", x, got, 2-x)
		}
	}
}

func TestDarkenRect(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			Set(img, x, y, Pixel{R: 100, G: 100, B: 100, A: 255})
		}
	}
	DarkenRect(img, image.Rect(0, 0, 1, 2), 0.5, 1.0, 1.0)

	if got := Get(img, 0, 1); got != (Pixel{R: 50, G: 100, B: 100, A: 255}) {
		t.Errorf("darkened pixel = %v", got)
	}
	if got := Get(img, 1, 1); got != (Pixel{R: 100, G: 100, B: 100, A: 255}) {
		t.Errorf("pixel outside rect = %v", got)
	}
}

func TestResizeNearestNeighbor(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	Set(src, 0, 0, Pixel{R: 10, A: 255})
	Set(src, 1, 0, Pixel{R: 20, A: 255})
	Set(src, 0, 1, Pixel{R: 30, A: 255})
	Set(src, 1, 1, Pixel{R: 40, A: 255})

	dst := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	Resize(src, src.Bounds(), dst, dst.Bounds())

	if got := Get(dst, 0, 0).R; got != 10 {
		t.Errorf("top-left quadrant = %d, want 10", got)
	}
	if got := Get(dst, 3, 0).R; got != 20 {
		t.Errorf("top-right quadrant = %d, want 20", got)
	}
	if got := Get(dst, 0, 3).R; got != 30 {
		t.Errorf("bottom-left quadrant = %d, want 30", got)
	}
	if got := Get(dst, 3, 3).R; got != 40 {
		t.Errorf("bottom-right quadrant = %d, want 40", got)
	}
}

func TestToNRGBA(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	if ToNRGBA(img) != img {
		t.Error("ToNRGBA copied an image that was already NRGBA at origin")
	}

	gray := image.NewGray(image.Rect(0, 0, 2, 2))
	gray.SetGray(1, 1, color.Gray{Y: 200})
	out := ToNRGBA(gray)
	if out.Bounds() != image.Rect(0, 0, 2, 2) {
		t.Fatalf("converted bounds %v", out.Bounds())
	}
	if got := Get(out, 1, 1); got != (Pixel{R: 200, G: 200, B: 200, A: 255}) {
		t.Errorf("converted pixel = %v", got)
	}

	// images not anchored at the origin get renormalized
	shifted := image.NewNRGBA(image.Rect(5, 5, 7, 7))
	Set(shifted, 6, 6, Pixel{R: 9, A: 255})
	out = ToNRGBA(shifted)
	if out.Bounds() != image.Rect(0, 0, 2, 2) {
		t.Fatalf("renormalized bounds %v", out.Bounds())
	}
	if got := Get(out, 1, 1); got != (Pixel{R: 9, A: 255}) {
		t.Errorf("renormalized pixel = %v", got)
	}
}

func TestWriteAndDecodePNG(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			Set(img, x, y, Pixel{R: uint8(10 * x), G: uint8(10 * y), B: 5, A: uint8(50 + x + y)})
		}
	}

	path := filepath.Join(t.TempDir(), "out.png")
	if err := WritePNG(path, img); err != nil {
		t.Fatal(err)
	}
	got, err := Decode(path)
	if err != nil {
		t.Fatal(err)
	}
	if got.Bounds() != img.Bounds() {
		t.Fatalf("decoded bounds %v, want %v", got.Bounds(), img.Bounds())
	}
	if !bytes.Equal(got.Pix, img.Pix) {
		t.Error("decoded pixels differ from the written ones")
	}
}

func TestDecodeMissingFile(t *testing.T) {
	if _, err := Decode(filepath.Join(t.TempDir(), "nope.png")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}
