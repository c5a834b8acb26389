package rgba

import (
	"image"
	"image/png"
	"os"

	"github.com/pkg/errors"
	xdraw "golang.org/x/image/draw"

	_ "github.com/spakin/netpbm"
)

// Pixel is one non-premultiplied RGBA value.
type Pixel struct {
	R, G, B, A uint8
}

func Get(img *image.NRGBA, x, y int) Pixel {
	i := img.PixOffset(x, y)
	return Pixel{img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3]}
}

func Set(img *image.NRGBA, x, y int, p Pixel) {
	i := img.PixOffset(x, y)
	img.Pix[i] = p.R
	img.Pix[i+1] = p.G
	img.Pix[i+2] = p.B
	img.Pix[i+3] = p.A
}

func GetAlpha(img *image.NRGBA, x, y int) uint8 {
	return img.Pix[img.PixOffset(x, y)+3]
}

func SetAlpha(img *image.NRGBA, x, y int, a uint8) {
	img.Pix[img.PixOffset(x, y)+3] = a
}

// Darken scales the color channels, leaving alpha alone.
func Darken(p Pixel, r, g, b float64) Pixel {
	return Pixel{
		R: uint8(float64(p.R) * r),
		G: uint8(float64(p.G) * g),
		B: uint8(float64(p.B) * b),
		A: p.A,
	}
}

func DarkenAt(img *image.NRGBA, x, y int, r, g, b float64) {
	Set(img, x, y, Darken(Get(img, x, y), r, g, b))
}

// Blend draws s over the existing pixel using integer source-over
// compositing on non-premultiplied values.
func Blend(img *image.NRGBA, x, y int, s Pixel) {
	if s.A == 0 {
		return
	}
	d := Get(img, x, y)
	if s.A == 255 || d.A == 0 {
		Set(img, x, y, s)
		return
	}
	sa := int(s.A)
	da := (255 - sa) * int(d.A) / 255
	outa := sa + da
	Set(img, x, y, Pixel{
		R: uint8((int(s.R)*sa + int(d.R)*da) / outa),
		G: uint8((int(s.G)*sa + int(d.G)*da) / outa),
		B: uint8((int(s.B)*sa + int(d.B)*da) / outa),
		A: uint8(outa),
	})
}

// DarkenRect multiplies the color channels of every pixel in rect.
func DarkenRect(img *image.NRGBA, rect image.Rectangle, r, g, b float64) {
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			DarkenAt(img, x, y, r, g, b)
		}
	}
}

// Blit copies srcRect from src to (dx, dy) in dst, alpha included.
func Blit(dst *image.NRGBA, src *image.NRGBA, srcRect image.Rectangle, dx, dy int) {
	for y := 0; y < srcRect.Dy(); y++ {
		for x := 0; x < srcRect.Dx(); x++ {
			Set(dst, dx+x, dy+y, Get(src, srcRect.Min.X+x, srcRect.Min.Y+y))
		}
	}
}

// FlipX mirrors rect horizontally in place.
func FlipX(img *image.NRGBA, rect image.Rectangle) {
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for lo, hi := rect.Min.X, rect.Max.X-1; lo < hi; lo, hi = lo+1, hi-1 {
			p, q := Get(img, lo, y), Get(img, hi, y)
			Set(img, lo, y, q)
			Set(img, hi, y, p)
		}
	}
}

// Resize scales srcRect of src onto dstRect of dst with nearest-neighbor
// sampling, so output stays byte-identical across platforms.
func Resize(src *image.NRGBA, srcRect image.Rectangle, dst *image.NRGBA, dstRect image.Rectangle) {
	xdraw.NearestNeighbor.Scale(dst, dstRect, src, srcRect, xdraw.Src, nil)
}

// Decode reads an image file and normalizes it to NRGBA.
// The netpbm import above lets PNM sheets decode too.
func Decode(filename string) (*image.NRGBA, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "could not open %s", filename)
	}
	defer file.Close()
	img, _, err := image.Decode(file)
	if err != nil {
		return nil, errors.Wrapf(err, "could not decode %s", filename)
	}
	return ToNRGBA(img), nil
}

func ToNRGBA(img image.Image) *image.NRGBA {
	if nrgba, ok := img.(*image.NRGBA); ok && nrgba.Rect.Min == image.Pt(0, 0) {
		return nrgba
	}
	out := image.NewNRGBA(image.Rect(0, 0, img.Bounds().Dx(), img.Bounds().Dy()))
	xdraw.Draw(out, out.Rect, img, img.Bounds().Min, xdraw.Src)
	return out
}

func WritePNG(filename string, img *image.NRGBA) error {
	file, err := os.Create(filename)
	if err != nil {
		return errors.Wrapf(err, "could not create %s", filename)
	}
	defer file.Close()
	if err := png.Encode(file, img); err != nil {
		return errors.Wrapf(err, "could not encode %s", filename)
	}
	return nil
}
