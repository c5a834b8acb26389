package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/qwindelzorf/pigmap/blockimages"
	"github.com/qwindelzorf/pigmap/engine/util"
)

func main() {
	b := 16
	imgpath := "./assets/textures"

	args := os.Args[1:]
	if len(args) > 0 {
		imgpath = args[0]
	}
	if len(args) > 1 {
		parsed, err := strconv.Atoi(args[1])
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid block size %q\n", args[1])
			os.Exit(2)
		}
		b = parsed
	}

	bi, err := blockimages.Create(b, imgpath)
	if err != nil {
		util.LogAtlasError(fmt.Sprintf("could not build block images: %v", err))
		os.Exit(1)
	}

	bounds := bi.Img.Bounds()
	util.LogAtlasInfo(fmt.Sprintf("block atlas ready: %dx%d pixels, cell size %d", bounds.Dx(), bounds.Dy(), bi.RectSize()))
	for _, warning := range bi.Warnings() {
		util.LogAtlasInfo("partial build: " + warning)
	}

	opaque, transparent := 0, 0
	for id := 0; id < 256; id++ {
		if bi.IsOpaque(uint8(id), 0) {
			opaque++
		}
		if bi.IsTransparent(uint8(id), 0) {
			transparent++
		}
	}
	util.LogAtlasDebug(fmt.Sprintf("%d opaque and %d transparent block ids at data 0", opaque, transparent))
}
