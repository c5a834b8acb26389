package blockimages

import (
	"fmt"
	"image"

	"github.com/pkg/errors"
	"github.com/qwindelzorf/pigmap/engine/rgba"
	"github.com/qwindelzorf/pigmap/engine/util"
)

// NumBlockImages is the number of addressable block image slots. Slot 0 is a
// dummy that unassigned id/data combinations map to; a handful of extra cells
// past this count hold door lowers that are drawn but never mapped.
const NumBlockImages = 715

// BlockImages is the assembled block atlas: a 16-cells-wide PNG plus the
// id/data offset table and per-slot opacity/transparency flags.
type BlockImages struct {
	Img *image.NRGBA

	b        int
	rectsize int

	blockOffsets [4096]int

	opacity      []bool
	transparency []bool

	warnings []string
}

// B returns the base block size the atlas was built for.
func (bi *BlockImages) B() int { return bi.b }

// RectSize returns the side length of one atlas cell (4*B).
func (bi *BlockImages) RectSize() int { return bi.rectsize }

// Warnings returns the non-fatal problems encountered while building, such as
// unreadable mod texture sheets.
func (bi *BlockImages) Warnings() []string { return bi.warnings }

func (bi *BlockImages) warnf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	bi.warnings = append(bi.warnings, msg)
	util.LogTextureWarning(msg)
}

// GetOffset returns the atlas slot for a block id and its 4-bit data value.
func (bi *BlockImages) GetOffset(blockID, blockData uint8) int {
	return bi.blockOffsets[offsetIdx(blockID, blockData&0xf)]
}

// GetRect returns the atlas cell for a slot; cells are packed 16 per row.
func (bi *BlockImages) GetRect(offset int) image.Rectangle {
	x := (offset % 16) * bi.rectsize
	y := (offset / 16) * bi.rectsize
	return image.Rect(x, y, x+bi.rectsize, y+bi.rectsize)
}

// IsOpaque reports whether every drawn pixel of the block's image is fully
// opaque.
func (bi *BlockImages) IsOpaque(blockID, blockData uint8) bool {
	return bi.opacity[bi.GetOffset(blockID, blockData)]
}

// IsTransparent reports whether every drawn pixel of the block's image is
// fully transparent.
func (bi *BlockImages) IsTransparent(blockID, blockData uint8) bool {
	return bi.transparency[bi.GetOffset(blockID, blockData)]
}

func atlasDims(rectsize int) (w, h int) {
	return rectsize * 16, (NumBlockImages/16 + 1) * rectsize
}

// Create builds or loads the block atlas for base size b, using the
// conventionally named texture files found in imgpath. The cached atlas, if
// any, also lives in imgpath as "blocks-<b>.png".
func Create(b int, imgpath string) (*BlockImages, error) {
	return CreateFromConfig(DefaultConfig(b, imgpath))
}

// CreateFromConfig is Create with every file path spelled out.
func CreateFromConfig(cfg Config) (*BlockImages, error) {
	if cfg.B < 2 {
		return nil, errors.Errorf("block size %d is too small (must be at least 2)", cfg.B)
	}

	bi := &BlockImages{
		b:        cfg.B,
		rectsize: 4 * cfg.B,
	}

	// a previously built atlas is reusable if its pixel dimensions match;
	// nothing else about it is checked
	w, h := atlasDims(bi.rectsize)
	cachefile := cfg.cacheFile()
	if util.DoesFileExist(cachefile) {
		img, err := rgba.Decode(cachefile)
		if err != nil {
			util.LogCacheDebug(fmt.Sprintf("ignoring unreadable atlas %s: %v", cachefile, err))
		} else if img.Bounds().Dx() == w && img.Bounds().Dy() == h {
			util.LogCacheInfo(fmt.Sprintf("using cached block images from %s", cachefile))
			bi.Img = img
			bi.setOffsets()
			bi.checkOpacityAndTransparency()
			return bi, nil
		} else {
			util.LogCacheInfo(fmt.Sprintf("cached atlas %s has the wrong size; rebuilding", cachefile))
		}
	}

	bi.Img = image.NewNRGBA(image.Rect(0, 0, w, h))

	for _, src := range cfg.sources() {
		if err := src.draw(bi); err != nil {
			if src.required() {
				return nil, errors.Wrapf(err, "building %s block images", src.name())
			}
			bi.warnf("skipping %s block images: %v", src.name(), err)
		}
	}

	bi.retouchAlphas()

	if err := rgba.WritePNG(cachefile, bi.Img); err != nil {
		util.LogIOError(fmt.Sprintf("could not save atlas to %s: %v", cachefile, err))
	} else {
		util.LogCacheDebug(fmt.Sprintf("saved block images to %s", cachefile))
	}

	bi.setOffsets()
	bi.checkOpacityAndTransparency()
	return bi, nil
}

// retouchAlphas snaps almost-invisible pixels to fully transparent and
// almost-solid ones to fully opaque, so the opacity check isn't thrown off by
// resampling artifacts. Running it again is a no-op.
func (bi *BlockImages) retouchAlphas() {
	bounds := bi.Img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			a := rgba.GetAlpha(bi.Img, x, y)
			if a < 10 {
				rgba.SetAlpha(bi.Img, x, y, 0)
			} else if a > 245 {
				rgba.SetAlpha(bi.Img, x, y, 255)
			}
		}
	}
}

// checkOpacityAndTransparency classifies each block image by walking only the
// pixels inside its isometric hexagon; the corner pixels outside it stay
// untouched by the face painters and must not count.
func (bi *BlockImages) checkOpacityAndTransparency() {
	b := bi.b
	bi.opacity = make([]bool, NumBlockImages)
	bi.transparency = make([]bool, NumBlockImages)

	for i := 0; i < NumBlockImages; i++ {
		rect := bi.GetRect(i)
		opaque, transparent := true, true

		for it := newFaceIterator(rect.Min.X, rect.Min.Y+b, 1, 2*b); !it.end; it.advance() {
			a := rgba.GetAlpha(bi.Img, it.x, it.y)
			if a != 255 {
				opaque = false
			}
			if a != 0 {
				transparent = false
			}
			if !opaque && !transparent {
				break
			}
		}
		if opaque || transparent {
			for it := newFaceIterator(rect.Min.X+2*b, rect.Min.Y+2*b, -1, 2*b); !it.end; it.advance() {
				a := rgba.GetAlpha(bi.Img, it.x, it.y)
				if a != 255 {
					opaque = false
				}
				if a != 0 {
					transparent = false
				}
				if !opaque && !transparent {
					break
				}
			}
		}
		if opaque || transparent {
			for it := newTopFaceIterator(rect.Min.X+2*b-1, rect.Min.Y, 2*b); !it.end; it.advance() {
				a := rgba.GetAlpha(bi.Img, it.x, it.y)
				if a != 255 {
					opaque = false
				}
				if a != 0 {
					transparent = false
				}
				if !opaque && !transparent {
					break
				}
			}
		}

		bi.opacity[i] = opaque
		bi.transparency[i] = transparent
	}
}
