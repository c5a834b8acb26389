package blockimages

import (
	"bytes"
	"image"
	"os"
	"path/filepath"
	"testing"

	"github.com/qwindelzorf/pigmap/engine/rgba"
	"github.com/qwindelzorf/pigmap/engine/util"
)

func writeOpaqueSheet(t *testing.T, path string, size int) {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			rgba.Set(img, x, y, rgba.Pixel{R: uint8(x * 7), G: uint8(y * 7), B: 0x40, A: 255})
		}
	}
	if err := rgba.WritePNG(path, img); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

// writeVanillaTextures drops a minimal set of vanilla texture files (tile
// size 2) into dir.
func writeVanillaTextures(t *testing.T, dir string) {
	t.Helper()
	writeOpaqueSheet(t, filepath.Join(dir, "terrain.png"), 32)
	writeOpaqueSheet(t, filepath.Join(dir, "fire.png"), 16)
	writeOpaqueSheet(t, filepath.Join(dir, "endportal.png"), 16)
}

func TestCreateRejectsTinyBlockSize(t *testing.T) {
	if _, err := Create(1, t.TempDir()); err == nil {
		t.Fatal("expected an error for block size 1")
	}
	if _, err := Create(0, t.TempDir()); err == nil {
		t.Fatal("expected an error for block size 0")
	}
}

func TestCreateMissingTerrainFails(t *testing.T) {
	if _, err := Create(2, t.TempDir()); err == nil {
		t.Fatal("expected an error when terrain.png is missing")
	}
}

func TestCreateWithoutModTexturesWarns(t *testing.T) {
	dir := t.TempDir()
	writeVanillaTextures(t, dir)

	bi, err := Create(2, dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(bi.Warnings()) != 2 {
		t.Errorf("got %d warnings, want 2 (Buildcraft and IndustrialCraft): %v",
			len(bi.Warnings()), bi.Warnings())
	}
}

func TestAtlasDimensions(t *testing.T) {
	dir := t.TempDir()
	writeVanillaTextures(t, dir)

	bi, err := Create(2, dir)
	if err != nil {
		t.Fatal(err)
	}
	bounds := bi.Img.Bounds()
	if bounds.Dx() != 16*bi.RectSize() || bounds.Dy() != 45*bi.RectSize() {
		t.Errorf("atlas is %dx%d, want %dx%d", bounds.Dx(), bounds.Dy(),
			16*bi.RectSize(), 45*bi.RectSize())
	}

	// the default size gives the well-known 1024x2880 atlas
	if w, h := atlasDims(64); w != 1024 || h != 2880 {
		t.Errorf("atlasDims(64) = %dx%d, want 1024x2880", w, h)
	}
}

func TestRetouchAlphas(t *testing.T) {
	in := []uint8{0, 5, 9, 10, 128, 245, 246, 255}
	want := []uint8{0, 0, 0, 10, 128, 245, 255, 255}

	bi := &BlockImages{Img: image.NewNRGBA(image.Rect(0, 0, len(in), 1))}
	for x, a := range in {
		rgba.Set(bi.Img, x, 0, rgba.Pixel{R: 0x80, G: 0x80, B: 0x80, A: a})
	}

	bi.retouchAlphas()
	for x, a := range want {
		if got := rgba.GetAlpha(bi.Img, x, 0); got != a {
			t.Errorf("alpha %d retouched to %d, want %d", in[x], got, a)
		}
	}

	// a second pass must not change anything
	before := make([]uint8, len(bi.Img.Pix))
	copy(before, bi.Img.Pix)
	bi.retouchAlphas()
	if !bytes.Equal(before, bi.Img.Pix) {
		t.Error("retouching an already retouched image changed it")
	}
}

func TestOpacityAndTransparency(t *testing.T) {
	dir := t.TempDir()
	writeVanillaTextures(t, dir)

	bi, err := Create(2, dir)
	if err != nil {
		t.Fatal(err)
	}

	// the dummy slot is never drawn into
	if bi.IsOpaque(0, 0) {
		t.Error("dummy slot classified as opaque")
	}
	if !bi.IsTransparent(0, 0) {
		t.Error("dummy slot not classified as transparent")
	}

	// stone is a full block built from fully opaque tiles
	if !bi.IsOpaque(1, 0) {
		t.Error("stone not classified as opaque")
	}
	if bi.IsTransparent(1, 0) {
		t.Error("stone classified as transparent")
	}

	for i := 1; i < NumBlockImages; i++ {
		if bi.opacity[i] && bi.transparency[i] {
			t.Errorf("slot %d is both opaque and transparent", i)
		}
	}
}

func TestCreateUsesCachedAtlas(t *testing.T) {
	dir := t.TempDir()
	writeVanillaTextures(t, dir)

	first, err := Create(2, dir)
	if err != nil {
		t.Fatal(err)
	}
	if !util.DoesFileExist(filepath.Join(dir, "blocks-2.png")) {
		t.Fatal("atlas was not saved next to the textures")
	}

	// wipe the inputs so a rebuild would have to fail
	os.Remove(filepath.Join(dir, "terrain.png"))
	os.Remove(filepath.Join(dir, "fire.png"))
	os.Remove(filepath.Join(dir, "endportal.png"))

	second, err := Create(2, dir)
	if err != nil {
		t.Fatalf("cached build failed: %v", err)
	}
	if len(second.Warnings()) != 0 {
		t.Errorf("cached build produced warnings: %v", second.Warnings())
	}
	if !bytes.Equal(first.Img.Pix, second.Img.Pix) {
		t.Error("cached atlas differs from the freshly built one")
	}
}

func TestCreateRebuildsWrongSizedCache(t *testing.T) {
	dir := t.TempDir()
	writeVanillaTextures(t, dir)

	// an atlas for a different block size must not be reused
	stale := image.NewNRGBA(image.Rect(0, 0, 10, 10))
	if err := rgba.WritePNG(filepath.Join(dir, "blocks-2.png"), stale); err != nil {
		t.Fatal(err)
	}

	bi, err := Create(2, dir)
	if err != nil {
		t.Fatal(err)
	}
	bounds := bi.Img.Bounds()
	if bounds.Dx() != 16*bi.RectSize() || bounds.Dy() != 45*bi.RectSize() {
		t.Errorf("atlas is %dx%d after rebuild, want %dx%d", bounds.Dx(), bounds.Dy(),
			16*bi.RectSize(), 45*bi.RectSize())
	}
}

func TestCreateIsDeterministic(t *testing.T) {
	dirA := t.TempDir()
	dirB := t.TempDir()
	writeVanillaTextures(t, dirA)
	writeVanillaTextures(t, dirB)

	a, err := Create(2, dirA)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Create(2, dirB)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a.Img.Pix, b.Img.Pix) {
		t.Error("two builds from identical inputs produced different atlases")
	}
}
