package blockimages

import (
	"image"

	"github.com/pkg/errors"
	"github.com/qwindelzorf/pigmap/engine/rgba"
)

// getResizedTiles scales a 16x16 texture sheet so every tile ends up 2B x 2B.
// Each tile is resized on its own so neighbors don't bleed into each other.
func getResizedTiles(sheet *image.NRGBA, tileSize, b int) *image.NRGBA {
	newsize := 2 * b
	tiles := image.NewNRGBA(image.Rect(0, 0, 16*newsize, 16*newsize))
	for ty := 0; ty < 16; ty++ {
		for tx := 0; tx < 16; tx++ {
			rgba.Resize(sheet, image.Rect(tx*tileSize, ty*tileSize, (tx+1)*tileSize, (ty+1)*tileSize),
				tiles, image.Rect(tx*newsize, ty*newsize, (tx+1)*newsize, (ty+1)*newsize))
		}
	}
	return tiles
}

// deinterpolate finds the first destination pixel at or past a source pixel
// under integer nearest scaling.
func deinterpolate(targetj, srcrange, destrange int) int {
	for i := 0; i < destrange; i++ {
		if i*srcrange/destrange >= targetj {
			return i
		}
	}
	return destrange - 1
}

// tileCutoffs holds, for one source sheet, the resized-tile pixel offsets
// matching the usual sixteenths of the original texture height. Needed for
// partial blocks like slabs and liquid levels: the end portal frame, for
// example, is missing its top 3 of 16 pixels.
type tileCutoffs struct {
	c2, c3, c4, c6, c8, c10, c12, c14 int
}

func newTileCutoffs(tileSize, b int) tileCutoffs {
	cut := func(n int) int { return deinterpolate(n*tileSize/16, tileSize, 2*b) }
	return tileCutoffs{cut(2), cut(3), cut(4), cut(6), cut(8), cut(10), cut(12), cut(14)}
}

func rectWH(x, y, w, h int) image.Rectangle {
	return image.Rect(x, y, x+w, y+h)
}

// loadSheet reads a 16x16-tile texture sheet and returns it along with its
// tile size.
func loadSheet(filename string) (*image.NRGBA, int, error) {
	img, err := rgba.Decode(filename)
	if err != nil {
		return nil, 0, err
	}
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	if w%16 != 0 || h != w {
		return nil, 0, errors.Errorf("%s is not a square sheet of 16x16 tiles (%dx%d)", filename, w, h)
	}
	return img, w / 16, nil
}

// loadSquare reads a single square texture (fire, end portal) and resizes it
// to one 2B tile.
func loadSquare(filename string, b int) (*image.NRGBA, error) {
	img, err := rgba.Decode(filename)
	if err != nil {
		return nil, err
	}
	if img.Bounds().Dx() != img.Bounds().Dy() {
		return nil, errors.Errorf("%s is not square", filename)
	}
	tile := image.NewNRGBA(image.Rect(0, 0, 2*b, 2*b))
	rgba.Resize(img, img.Bounds(), tile, tile.Bounds())
	return tile, nil
}

func (bi *BlockImages) drawVanilla(terrainFile, fireFile, endPortalFile string) error {
	b := bi.b

	terrain, terrainSize, err := loadSheet(terrainFile)
	if err != nil {
		return err
	}
	tiles := getResizedTiles(terrain, terrainSize, b)

	firetile, err := loadSquare(fireFile, b)
	if err != nil {
		return err
	}
	endportaltile, err := loadSquare(endPortalFile, b)
	if err != nil {
		return err
	}

	// colorize various tiles
	rgba.DarkenRect(tiles, rectWH(0, 0, 2*b, 2*b), 0.6, 0.95, 0.3)        // tile 0 = grass top
	rgba.DarkenRect(tiles, rectWH(14*b, 4*b, 2*b, 2*b), 0.6, 0.95, 0.3)   // tile 39 = tall grass
	rgba.DarkenRect(tiles, rectWH(16*b, 6*b, 2*b, 2*b), 0.6, 0.95, 0.3)   // tile 56 = fern
	rgba.DarkenRect(tiles, rectWH(8*b, 20*b, 2*b, 2*b), 0.9, 0.1, 0.1)    // tile 164 = redstone dust
	rgba.DarkenRect(tiles, rectWH(24*b, 8*b, 2*b, 2*b), 0.3, 0.95, 0.3)   // tile 76 = lily pad
	rgba.DarkenRect(tiles, rectWH(30*b, 16*b, 2*b, 2*b), 0.35, 1.0, 0.15) // tile 143 = vines

	// colorized copies of the leaf tiles; can't colorize in place because
	// normal and birch leaves share a texture
	leaftiles := image.NewNRGBA(image.Rect(0, 0, 8*b, 2*b))
	rgba.Blit(leaftiles, tiles, rectWH(8*b, 6*b, 2*b, 2*b), 0, 0) // normal
	rgba.DarkenRect(leaftiles, rectWH(0, 0, 2*b, 2*b), 0.3, 1.0, 0.1)
	rgba.Blit(leaftiles, tiles, rectWH(8*b, 16*b, 2*b, 2*b), 2*b, 0) // pine
	rgba.DarkenRect(leaftiles, rectWH(2*b, 0, 2*b, 2*b), 0.3, 1.0, 0.45)
	rgba.Blit(leaftiles, tiles, rectWH(8*b, 6*b, 2*b, 2*b), 4*b, 0) // birch
	rgba.DarkenRect(leaftiles, rectWH(4*b, 0, 2*b, 2*b), 0.55, 0.9, 0.1)
	rgba.Blit(leaftiles, tiles, rectWH(8*b, 24*b, 2*b, 2*b), 6*b, 0) // jungle
	rgba.DarkenRect(leaftiles, rectWH(6*b, 0, 2*b, 2*b), 0.35, 1.0, 0.05)

	// colorized/shortened copies of the stem tiles
	stemtiles := image.NewNRGBA(image.Rect(0, 0, 20*b, 2*b))
	// growth levels 0-7
	for i := 1; i <= 8; i++ {
		rgba.Blit(stemtiles, tiles, rectWH(30*b, 12*b, 2*b, i*b/4), (i-1)*2*b, 2*b-i*b/4)
	}
	// stem connecting to melon/pumpkin, plus a flipped version
	rgba.Blit(stemtiles, tiles, rectWH(30*b, 14*b, 2*b, 2*b), 16*b, 0)
	rgba.Blit(stemtiles, tiles, rectWH(30*b, 14*b, 2*b, 2*b), 18*b, 0)
	rgba.FlipX(stemtiles, rectWH(18*b, 0, 2*b, 2*b))
	// green for levels 0-6, brown for level 7 and the connectors
	rgba.DarkenRect(stemtiles, rectWH(0, 0, 14*b, 2*b), 0.45, 0.95, 0.4)
	rgba.DarkenRect(stemtiles, rectWH(14*b, 0, 6*b, 2*b), 0.75, 0.6, 0.3)

	// one pixel of the default 16x16 texture size, used by cactus/cake
	smallOffset := (terrainSize + 15) / 16

	// resize the cactus tiles again, this time taking a smaller portion of
	// the sheet to drop the transparent border
	rgba.Resize(terrain,
		rectWH(5*terrainSize+smallOffset, 4*terrainSize+smallOffset, terrainSize-2*smallOffset, terrainSize-2*smallOffset),
		tiles, rectWH(5*2*b, 4*2*b, 2*b, 2*b))
	rgba.Resize(terrain,
		rectWH(6*terrainSize+smallOffset, 4*terrainSize, terrainSize-2*smallOffset, terrainSize),
		tiles, rectWH(6*2*b, 4*2*b, 2*b, 2*b))
	// same for the cake tiles
	rgba.Resize(terrain,
		rectWH(9*terrainSize+smallOffset, 7*terrainSize+smallOffset, terrainSize-2*smallOffset, terrainSize-2*smallOffset),
		tiles, rectWH(9*2*b, 7*2*b, 2*b, 2*b))
	rgba.Resize(terrain,
		rectWH(10*terrainSize+smallOffset, 7*terrainSize, terrainSize-2*smallOffset, terrainSize),
		tiles, rectWH(10*2*b, 7*2*b, 2*b, 2*b))

	cut := newTileCutoffs(terrainSize, b)

	img := bi.Img
	r := bi.GetRect

	drawBlockImage(img, r(1), tiles, 1, 1, 1, b)         // stone
	drawBlockImage(img, r(2), tiles, 3, 3, 0, b)         // grass
	drawBlockImage(img, r(3), tiles, 2, 2, 2, b)         // dirt
	drawBlockImage(img, r(4), tiles, 16, 16, 16, b)      // cobblestone
	drawBlockImage(img, r(5), tiles, 4, 4, 4, b)         // planks
	drawBlockImage(img, r(435), tiles, 198, 198, 198, b) // pine planks
	drawBlockImage(img, r(436), tiles, 214, 214, 214, b) // birch planks
	drawBlockImage(img, r(437), tiles, 199, 199, 199, b) // jungle planks
	drawBlockImage(img, r(7), tiles, 17, 17, 17, b)      // bedrock
	drawBlockImage(img, r(8), tiles, 205, 205, 205, b)   // full water
	drawBlockImage(img, r(157), tiles, -1, -1, 205, b)   // water surface
	drawBlockImage(img, r(178), tiles, 205, -1, 205, b)  // water missing W
	drawBlockImage(img, r(179), tiles, -1, 205, 205, b)  // water missing N
	drawBlockImage(img, r(16), tiles, 237, 237, 237, b)  // full lava
	drawBlockImage(img, r(20), tiles, 18, 18, 18, b)     // sand
	drawBlockImage(img, r(21), tiles, 19, 19, 19, b)     // gravel
	drawBlockImage(img, r(22), tiles, 32, 32, 32, b)     // gold ore
	drawBlockImage(img, r(23), tiles, 33, 33, 33, b)     // iron ore
	drawBlockImage(img, r(24), tiles, 34, 34, 34, b)     // coal ore
	drawBlockImage(img, r(25), tiles, 20, 20, 21, b)     // log
	drawBlockImage(img, r(219), tiles, 116, 116, 21, b)  // pine log
	drawBlockImage(img, r(220), tiles, 117, 117, 21, b)  // birch log
	drawBlockImage(img, r(427), tiles, 153, 153, 21, b)  // jungle log
	drawBlockImage(img, r(26), leaftiles, 0, 0, 0, b)    // leaves
	drawBlockImage(img, r(248), leaftiles, 1, 1, 1, b)   // pine leaves
	drawBlockImage(img, r(249), leaftiles, 2, 2, 2, b)   // birch leaves
	drawBlockImage(img, r(428), leaftiles, 3, 3, 3, b)   // jungle leaves
	drawBlockImage(img, r(27), tiles, 48, 48, 48, b)     // sponge
	drawBlockImage(img, r(28), tiles, 49, 49, 49, b)     // glass
	drawBlockImage(img, r(29), tiles, 64, 64, 64, b)     // white wool
	drawBlockImage(img, r(204), tiles, 210, 210, 210, b) // orange wool
	drawBlockImage(img, r(205), tiles, 194, 194, 194, b) // magenta wool
	drawBlockImage(img, r(206), tiles, 178, 178, 178, b) // light blue wool
	drawBlockImage(img, r(207), tiles, 162, 162, 162, b) // yellow wool
	drawBlockImage(img, r(208), tiles, 146, 146, 146, b) // lime wool
	drawBlockImage(img, r(209), tiles, 130, 130, 130, b) // pink wool
	drawBlockImage(img, r(210), tiles, 114, 114, 114, b) // gray wool
	drawBlockImage(img, r(211), tiles, 225, 225, 225, b) // light gray wool
	drawBlockImage(img, r(212), tiles, 209, 209, 209, b) // cyan wool
	drawBlockImage(img, r(213), tiles, 193, 193, 193, b) // purple wool
	drawBlockImage(img, r(214), tiles, 177, 177, 177, b) // blue wool
	drawBlockImage(img, r(215), tiles, 161, 161, 161, b) // brown wool
	drawBlockImage(img, r(216), tiles, 145, 145, 145, b) // green wool
	drawBlockImage(img, r(217), tiles, 129, 129, 129, b) // red wool
	drawBlockImage(img, r(218), tiles, 113, 113, 113, b) // black wool
	drawBlockImage(img, r(34), tiles, 23, 23, 23, b)     // gold block
	drawBlockImage(img, r(35), tiles, 22, 22, 22, b)     // iron block
	drawBlockImage(img, r(36), tiles, 5, 5, 6, b)        // double stone slab
	drawBlockImage(img, r(38), tiles, 7, 7, 7, b)        // brick
	drawBlockImage(img, r(39), tiles, 8, 8, 9, b)        // TNT
	drawBlockImage(img, r(40), tiles, 35, 35, 4, b)      // bookshelf
	drawBlockImage(img, r(41), tiles, 36, 36, 36, b)     // mossy cobblestone
	drawBlockImage(img, r(42), tiles, 37, 37, 37, b)     // obsidian
	drawBlockImage(img, r(49), tiles, 65, 65, 65, b)     // spawner
	drawBlockImage(img, r(54), tiles, 26, 27, 25, b)     // chest facing W
	drawBlockImage(img, r(177), tiles, 27, 26, 25, b)    // chest facing N
	drawBlockImage(img, r(173), tiles, 26, 41, 25, b)    // double chest N facing W
	drawBlockImage(img, r(174), tiles, 26, 42, 25, b)    // double chest S facing W
	drawBlockImage(img, r(175), tiles, 41, 26, 25, b)    // double chest E facing N
	drawBlockImage(img, r(176), tiles, 42, 26, 25, b)    // double chest W facing N
	drawBlockImage(img, r(270), tiles, 26, 27, 25, b)    // locked chest facing W
	drawBlockImage(img, r(271), tiles, 27, 26, 25, b)    // locked chest facing N
	drawBlockImage(img, r(56), tiles, 50, 50, 50, b)     // diamond ore
	drawBlockImage(img, r(57), tiles, 24, 24, 24, b)     // diamond block
	drawBlockImage(img, r(58), tiles, 59, 60, 43, b)     // workbench
	drawBlockImage(img, r(67), tiles, 2, 2, 87, b)       // farmland
	drawBlockImage(img, r(183), tiles, 45, 44, 62, b)    // furnace W
	drawBlockImage(img, r(184), tiles, 44, 45, 62, b)    // furnace N
	drawBlockImage(img, r(185), tiles, 45, 45, 62, b)    // furnace E/S
	drawBlockImage(img, r(186), tiles, 45, 61, 62, b)    // lit furnace W
	drawBlockImage(img, r(187), tiles, 61, 45, 62, b)    // lit furnace N
	drawBlockImage(img, r(188), tiles, 45, 45, 62, b)    // lit furnace E/S
	drawBlockImage(img, r(120), tiles, 51, 51, 51, b)    // redstone ore
	drawBlockImage(img, r(128), tiles, 67, 67, 67, b)    // ice
	drawBlockImage(img, r(180), tiles, -1, -1, 67, b)    // ice surface
	drawBlockImage(img, r(181), tiles, 67, -1, 67, b)    // ice missing W
	drawBlockImage(img, r(182), tiles, -1, 67, 67, b)    // ice missing N
	drawBlockImage(img, r(129), tiles, 66, 66, 66, b)    // snow block
	drawBlockImage(img, r(130), tiles, 70, 70, 69, b)    // cactus
	drawBlockImage(img, r(131), tiles, 72, 72, 72, b)    // clay
	drawBlockImage(img, r(133), tiles, 74, 74, 75, b)    // jukebox
	drawBlockImage(img, r(135), tiles, 118, 119, 102, b) // pumpkin facing W
	drawBlockImage(img, r(153), tiles, 118, 118, 102, b) // pumpkin facing E/S
	drawBlockImage(img, r(154), tiles, 119, 118, 102, b) // pumpkin facing N
	drawBlockImage(img, r(136), tiles, 103, 103, 103, b) // netherrack
	drawBlockImage(img, r(137), tiles, 104, 104, 104, b) // soul sand
	drawBlockImage(img, r(138), tiles, 105, 105, 105, b) // glowstone
	drawBlockImage(img, r(140), tiles, 118, 120, 102, b) // jack-o-lantern W
	drawBlockImage(img, r(155), tiles, 118, 118, 102, b) // jack-o-lantern E/S
	drawBlockImage(img, r(156), tiles, 120, 118, 102, b) // jack-o-lantern N
	drawBlockImage(img, r(221), tiles, 160, 160, 160, b) // lapis ore
	drawBlockImage(img, r(222), tiles, 144, 144, 144, b) // lapis block
	drawBlockImage(img, r(223), tiles, 45, 46, 62, b)    // dispenser W
	drawBlockImage(img, r(224), tiles, 46, 45, 62, b)    // dispenser N
	drawBlockImage(img, r(225), tiles, 45, 45, 62, b)    // dispenser E/S
	drawBlockImage(img, r(226), tiles, 192, 192, 176, b) // sandstone
	drawBlockImage(img, r(431), tiles, 229, 229, 176, b) // hieroglyphic sandstone
	drawBlockImage(img, r(432), tiles, 230, 230, 176, b) // smooth sandstone
	drawBlockImage(img, r(227), tiles, 74, 74, 74, b)    // note block
	drawBlockImage(img, r(290), tiles, 136, 136, 137, b) // melon
	drawBlockImage(img, r(291), tiles, 77, 77, 78, b)    // mycelium
	drawBlockImage(img, r(292), tiles, 224, 224, 224, b) // nether brick
	drawBlockImage(img, r(293), tiles, 175, 175, 175, b) // end stone
	drawBlockImage(img, r(294), tiles, 54, 54, 54, b)    // stone brick
	drawBlockImage(img, r(295), tiles, 100, 100, 100, b) // mossy stone brick
	drawBlockImage(img, r(296), tiles, 101, 101, 101, b) // cracked stone brick
	drawBlockImage(img, r(430), tiles, 213, 213, 213, b) // circle stone brick
	drawBlockImage(img, r(297), tiles, 26, 26, 25, b)    // chest facing E/S
	drawBlockImage(img, r(298), tiles, 26, 57, 25, b)    // double chest N facing E
	drawBlockImage(img, r(299), tiles, 26, 58, 25, b)    // double chest S facing E
	drawBlockImage(img, r(300), tiles, 57, 26, 25, b)    // double chest E facing S
	drawBlockImage(img, r(301), tiles, 58, 26, 25, b)    // double chest W facing S
	drawBlockImage(img, r(336), tiles, 142, 142, 142, b) // mushroom flesh
	drawBlockImage(img, r(337), tiles, 142, 142, 125, b) // red cap top only
	drawBlockImage(img, r(338), tiles, 125, 142, 125, b) // red cap N
	drawBlockImage(img, r(339), tiles, 142, 125, 125, b) // red cap W
	drawBlockImage(img, r(340), tiles, 125, 125, 125, b) // red cap NW
	drawBlockImage(img, r(341), tiles, 142, 142, 126, b) // brown cap top only
	drawBlockImage(img, r(342), tiles, 126, 142, 126, b) // brown cap N
	drawBlockImage(img, r(343), tiles, 142, 126, 126, b) // brown cap W
	drawBlockImage(img, r(344), tiles, 126, 126, 126, b) // brown cap NW
	drawBlockImage(img, r(345), tiles, 141, 141, 142, b) // mushroom stem
	drawBlockImage(img, r(433), tiles, 212, 212, 212, b) // redstone lamp on
	drawBlockImage(img, r(434), tiles, 211, 211, 211, b) // redstone lamp off

	drawRotatedBlockImage(img, r(407), tiles, 108, 108, 109, 2, false, 2, false, 0, false, b) // closed piston D
	drawRotatedBlockImage(img, r(408), tiles, 108, 108, 107, 0, false, 0, false, 0, false, b) // closed piston U
	drawRotatedBlockImage(img, r(409), tiles, 107, 108, 108, 0, false, 1, false, 2, false, b) // closed piston N
	drawRotatedBlockImage(img, r(410), tiles, 109, 108, 108, 0, false, 3, false, 0, false, b) // closed piston S
	drawRotatedBlockImage(img, r(411), tiles, 108, 107, 108, 3, false, 0, false, 3, false, b) // closed piston W
	drawRotatedBlockImage(img, r(412), tiles, 108, 109, 108, 1, false, 0, false, 1, false, b) // closed piston E
	drawRotatedBlockImage(img, r(413), tiles, 108, 108, 109, 2, false, 2, false, 0, false, b) // closed sticky piston D
	drawRotatedBlockImage(img, r(414), tiles, 108, 108, 106, 0, false, 0, false, 0, false, b) // closed sticky piston U
	drawRotatedBlockImage(img, r(415), tiles, 106, 108, 108, 0, false, 1, false, 2, false, b) // closed sticky piston N
	drawRotatedBlockImage(img, r(416), tiles, 109, 108, 108, 0, false, 3, false, 0, false, b) // closed sticky piston S
	drawRotatedBlockImage(img, r(417), tiles, 108, 106, 108, 3, false, 0, false, 3, false, b) // closed sticky piston W
	drawRotatedBlockImage(img, r(418), tiles, 108, 109, 108, 1, false, 0, false, 1, false, b) // closed sticky piston E

	drawPartialBlockImage(img, r(9), tiles, 205, 205, 205, b, cut.c2, 0, 0, 0, true)      // water level 7
	drawPartialBlockImage(img, r(10), tiles, 205, 205, 205, b, cut.c4, 0, 0, 0, true)     // water level 6
	drawPartialBlockImage(img, r(11), tiles, 205, 205, 205, b, cut.c6, 0, 0, 0, true)     // water level 5
	drawPartialBlockImage(img, r(12), tiles, 205, 205, 205, b, cut.c8, 0, 0, 0, true)     // water level 4
	drawPartialBlockImage(img, r(13), tiles, 205, 205, 205, b, cut.c10, 0, 0, 0, true)    // water level 3
	drawPartialBlockImage(img, r(14), tiles, 205, 205, 205, b, cut.c12, 0, 0, 0, true)    // water level 2
	drawPartialBlockImage(img, r(15), tiles, 205, 205, 205, b, cut.c14, 0, 0, 0, true)    // water level 1
	drawPartialBlockImage(img, r(17), tiles, 237, 237, 237, b, cut.c4, 0, 0, 0, true)     // lava level 3
	drawPartialBlockImage(img, r(18), tiles, 237, 237, 237, b, cut.c8, 0, 0, 0, true)     // lava level 2
	drawPartialBlockImage(img, r(19), tiles, 237, 237, 237, b, cut.c12, 0, 0, 0, true)    // lava level 1
	drawPartialBlockImage(img, r(37), tiles, 5, 5, 6, b, cut.c8, 0, 0, 0, true)           // stone slab
	drawPartialBlockImage(img, r(229), tiles, 192, 192, 176, b, cut.c8, 0, 0, 0, true)    // sandstone slab
	drawPartialBlockImage(img, r(230), tiles, 4, 4, 4, b, cut.c8, 0, 0, 0, true)          // wooden slab
	drawPartialBlockImage(img, r(231), tiles, 16, 16, 16, b, cut.c8, 0, 0, 0, true)       // cobble slab
	drawPartialBlockImage(img, r(302), tiles, 7, 7, 7, b, cut.c8, 0, 0, 0, true)          // brick slab
	drawPartialBlockImage(img, r(303), tiles, 54, 54, 54, b, cut.c8, 0, 0, 0, true)       // stone brick slab
	drawPartialBlockImage(img, r(458), tiles, 5, 5, 6, b, 0, cut.c8, 0, 0, false)         // stone slab inv
	drawPartialBlockImage(img, r(459), tiles, 192, 192, 176, b, 0, cut.c8, 0, 0, false)   // sandstone slab inv
	drawPartialBlockImage(img, r(460), tiles, 4, 4, 4, b, 0, cut.c8, 0, 0, false)         // wooden slab inv
	drawPartialBlockImage(img, r(461), tiles, 16, 16, 16, b, 0, cut.c8, 0, 0, false)      // cobble slab inv
	drawPartialBlockImage(img, r(462), tiles, 7, 7, 7, b, 0, cut.c8, 0, 0, false)         // brick slab inv
	drawPartialBlockImage(img, r(463), tiles, 54, 54, 54, b, 0, cut.c8, 0, 0, false)      // stone brick slab inv
	drawPartialBlockImage(img, r(110), tiles, 1, 1, 1, b, cut.c14, 0, 0, 0, true)         // stone pressure plate
	drawPartialBlockImage(img, r(119), tiles, 4, 4, 4, b, cut.c14, 0, 0, 0, true)         // wood pressure plate
	drawPartialBlockImage(img, r(127), tiles, 66, 66, 66, b, cut.c12, 0, 0, 0, true)      // snow
	drawPartialBlockImage(img, r(289), tiles, 122, 122, 121, b, cut.c8, 0, 0, 0, false)   // cake
	drawPartialBlockImage(img, r(281), tiles, 151, 152, 135, b, cut.c8, 0, 0, 0, false)   // bed head W
	drawPartialBlockImage(img, r(282), tiles, 152, 151, 135, b, cut.c8, 0, 3, 2, false)   // bed head N
	drawPartialBlockImage(img, r(283), tiles, 151, -1, 135, b, cut.c8, 0, 2, 1, false)    // bed head E
	drawPartialBlockImage(img, r(284), tiles, -1, 151, 135, b, cut.c8, 0, 1, 0, false)    // bed head S
	drawPartialBlockImage(img, r(285), tiles, 150, -1, 134, b, cut.c8, 0, 0, 0, false)    // bed foot W
	drawPartialBlockImage(img, r(286), tiles, -1, 150, 134, b, cut.c8, 0, 3, 2, false)    // bed foot N
	drawPartialBlockImage(img, r(287), tiles, 150, 149, 134, b, cut.c8, 0, 2, 1, false)   // bed foot E
	drawPartialBlockImage(img, r(288), tiles, 149, 150, 134, b, cut.c8, 0, 1, 0, false)   // bed foot S
	drawPartialBlockImage(img, r(348), tiles, 182, 182, 166, b, cut.c4, 0, 0, 0, false)   // enchantment table
	drawPartialBlockImage(img, r(349), tiles, 159, 159, 158, b, cut.c3, 0, 0, 0, false)   // end portal frame
	drawPartialBlockImage(img, r(377), endportaltile, 0, 0, 0, b, cut.c4, 0, 0, 0, true)  // end portal

	drawItemBlockImage(img, r(6), tiles, 15, b)        // sapling
	drawItemBlockImage(img, r(30), tiles, 13, b)       // yellow flower
	drawItemBlockImage(img, r(31), tiles, 12, b)       // red rose
	drawItemBlockImage(img, r(32), tiles, 29, b)       // brown mushroom
	drawItemBlockImage(img, r(33), tiles, 28, b)       // red mushroom
	drawItemBlockImage(img, r(43), tiles, 80, b)       // torch floor
	drawItemBlockImage(img, r(59), tiles, 95, b)       // wheat level 7
	drawItemBlockImage(img, r(60), tiles, 94, b)       // wheat level 6
	drawItemBlockImage(img, r(61), tiles, 93, b)       // wheat level 5
	drawItemBlockImage(img, r(62), tiles, 92, b)       // wheat level 4
	drawItemBlockImage(img, r(63), tiles, 91, b)       // wheat level 3
	drawItemBlockImage(img, r(64), tiles, 90, b)       // wheat level 2
	drawItemBlockImage(img, r(65), tiles, 89, b)       // wheat level 1
	drawItemBlockImage(img, r(66), tiles, 88, b)       // wheat level 0
	drawItemBlockImage(img, r(121), tiles, 115, b)     // red torch floor off
	drawItemBlockImage(img, r(122), tiles, 99, b)      // red torch floor on
	drawItemBlockImage(img, r(132), tiles, 73, b)      // reeds
	drawItemBlockImage(img, r(250), tiles, 63, b)      // pine sapling
	drawItemBlockImage(img, r(251), tiles, 79, b)      // birch sapling
	drawItemBlockImage(img, r(429), tiles, 30, b)      // jungle sapling
	drawItemBlockImage(img, r(272), tiles, 11, b)      // web
	drawItemBlockImage(img, r(273), tiles, 39, b)      // tall grass
	drawItemBlockImage(img, r(274), tiles, 56, b)      // fern
	drawItemBlockImage(img, r(275), tiles, 55, b)      // dead shrub
	drawMultiItemBlockImage(img, r(333), tiles, 226, b) // netherwart small
	drawMultiItemBlockImage(img, r(334), tiles, 227, b) // netherwart medium
	drawMultiItemBlockImage(img, r(335), tiles, 228, b) // netherwart large

	drawItemBlockImage(img, r(355), tiles, 85, b)                                 // iron bars NSEW
	drawPartialItemBlockImage(img, r(356), tiles, 85, b, true, true, false, false)  // iron bars NS
	drawPartialItemBlockImage(img, r(357), tiles, 85, b, true, false, true, false)  // iron bars NE
	drawPartialItemBlockImage(img, r(358), tiles, 85, b, true, false, false, true)  // iron bars NW
	drawPartialItemBlockImage(img, r(359), tiles, 85, b, false, true, true, false)  // iron bars SE
	drawPartialItemBlockImage(img, r(360), tiles, 85, b, false, true, false, true)  // iron bars SW
	drawPartialItemBlockImage(img, r(361), tiles, 85, b, false, false, true, true)  // iron bars EW
	drawPartialItemBlockImage(img, r(362), tiles, 85, b, false, true, true, true)   // iron bars SEW
	drawPartialItemBlockImage(img, r(363), tiles, 85, b, true, false, true, true)   // iron bars NEW
	drawPartialItemBlockImage(img, r(364), tiles, 85, b, true, true, false, true)   // iron bars NSW
	drawPartialItemBlockImage(img, r(365), tiles, 85, b, true, true, true, false)   // iron bars NSE
	drawPartialItemBlockImage(img, r(419), tiles, 85, b, true, false, false, false) // iron bars N
	drawPartialItemBlockImage(img, r(420), tiles, 85, b, false, true, false, false) // iron bars S
	drawPartialItemBlockImage(img, r(421), tiles, 85, b, false, false, true, false) // iron bars E
	drawPartialItemBlockImage(img, r(422), tiles, 85, b, false, false, false, true) // iron bars W
	drawItemBlockImage(img, r(366), tiles, 49, b)                                 // glass pane NSEW
	drawPartialItemBlockImage(img, r(367), tiles, 49, b, true, true, false, false)  // glass pane NS
	drawPartialItemBlockImage(img, r(368), tiles, 49, b, true, false, true, false)  // glass pane NE
	drawPartialItemBlockImage(img, r(369), tiles, 49, b, true, false, false, true)  // glass pane NW
	drawPartialItemBlockImage(img, r(370), tiles, 49, b, false, true, true, false)  // glass pane SE
	drawPartialItemBlockImage(img, r(371), tiles, 49, b, false, true, false, true)  // glass pane SW
	drawPartialItemBlockImage(img, r(372), tiles, 49, b, false, false, true, true)  // glass pane EW
	drawPartialItemBlockImage(img, r(373), tiles, 49, b, false, true, true, true)   // glass pane SEW
	drawPartialItemBlockImage(img, r(374), tiles, 49, b, true, false, true, true)   // glass pane NEW
	drawPartialItemBlockImage(img, r(375), tiles, 49, b, true, true, false, true)   // glass pane NSW
	drawPartialItemBlockImage(img, r(376), tiles, 49, b, true, true, true, false)   // glass pane NSE
	drawPartialItemBlockImage(img, r(423), tiles, 49, b, true, false, false, false) // glass pane N
	drawPartialItemBlockImage(img, r(424), tiles, 49, b, false, true, false, false) // glass pane S
	drawPartialItemBlockImage(img, r(425), tiles, 49, b, false, false, true, false) // glass pane E
	drawPartialItemBlockImage(img, r(426), tiles, 49, b, false, false, false, true) // glass pane W

	drawItemBlockImage(img, r(395), stemtiles, 0, b) // stem level 0
	drawItemBlockImage(img, r(396), stemtiles, 1, b) // stem level 1
	drawItemBlockImage(img, r(397), stemtiles, 2, b) // stem level 2
	drawItemBlockImage(img, r(398), stemtiles, 3, b) // stem level 3
	drawItemBlockImage(img, r(399), stemtiles, 4, b) // stem level 4
	drawItemBlockImage(img, r(400), stemtiles, 5, b) // stem level 5
	drawItemBlockImage(img, r(401), stemtiles, 6, b) // stem level 6
	drawItemBlockImage(img, r(402), stemtiles, 7, b) // stem level 7
	drawPartialItemBlockImage(img, r(403), stemtiles, 8, b, true, true, false, false) // stem pointing N
	drawPartialItemBlockImage(img, r(404), stemtiles, 9, b, true, true, false, false) // stem pointing S
	drawPartialItemBlockImage(img, r(405), stemtiles, 8, b, false, false, true, true) // stem pointing E
	drawPartialItemBlockImage(img, r(406), stemtiles, 9, b, false, false, true, true) // stem pointing W

	drawSingleFaceBlockImage(img, r(44), tiles, 80, 1, b)  // torch pointing S
	drawSingleFaceBlockImage(img, r(45), tiles, 80, 0, b)  // torch pointing N
	drawSingleFaceBlockImage(img, r(46), tiles, 80, 3, b)  // torch pointing W
	drawSingleFaceBlockImage(img, r(47), tiles, 80, 2, b)  // torch pointing E
	drawSingleFaceBlockImage(img, r(74), tiles, 97, 3, b)  // wood door S side
	drawSingleFaceBlockImage(img, r(75), tiles, 97, 2, b)  // wood door N side
	drawSingleFaceBlockImage(img, r(76), tiles, 97, 0, b)  // wood door W side
	drawSingleFaceBlockImage(img, r(77), tiles, 97, 1, b)  // wood door E side
	drawSingleFaceBlockImage(img, r(78), tiles, 81, 3, b)  // wood door top S
	drawSingleFaceBlockImage(img, r(79), tiles, 81, 2, b)  // wood door top N
	drawSingleFaceBlockImage(img, r(80), tiles, 81, 0, b)  // wood door top W
	drawSingleFaceBlockImage(img, r(81), tiles, 81, 1, b)  // wood door top E
	drawSingleFaceBlockImage(img, r(82), tiles, 83, 2, b)  // ladder E side
	drawSingleFaceBlockImage(img, r(83), tiles, 83, 3, b)  // ladder W side
	drawSingleFaceBlockImage(img, r(84), tiles, 83, 0, b)  // ladder N side
	drawSingleFaceBlockImage(img, r(85), tiles, 83, 1, b)  // ladder S side
	drawSingleFaceBlockImage(img, r(111), tiles, 98, 3, b) // iron door S side
	drawSingleFaceBlockImage(img, r(112), tiles, 98, 2, b) // iron door N side
	drawSingleFaceBlockImage(img, r(113), tiles, 98, 0, b) // iron door W side
	drawSingleFaceBlockImage(img, r(114), tiles, 98, 1, b) // iron door E side
	drawSingleFaceBlockImage(img, r(115), tiles, 82, 3, b) // iron door top S
	drawSingleFaceBlockImage(img, r(116), tiles, 82, 2, b) // iron door top N
	drawSingleFaceBlockImage(img, r(117), tiles, 82, 0, b) // iron door top W
	drawSingleFaceBlockImage(img, r(118), tiles, 82, 1, b) // iron door top E
	drawSingleFaceBlockImage(img, r(141), tiles, 99, 1, b) // red torch S on
	drawSingleFaceBlockImage(img, r(142), tiles, 99, 0, b) // red torch N on
	drawSingleFaceBlockImage(img, r(143), tiles, 99, 3, b) // red torch W on
	drawSingleFaceBlockImage(img, r(144), tiles, 99, 2, b) // red torch E on
	drawSingleFaceBlockImage(img, r(145), tiles, 115, 1, b) // red torch S off
	drawSingleFaceBlockImage(img, r(146), tiles, 115, 0, b) // red torch N off
	drawSingleFaceBlockImage(img, r(147), tiles, 115, 3, b) // red torch W off
	drawSingleFaceBlockImage(img, r(148), tiles, 115, 2, b) // red torch E off
	drawSingleFaceBlockImage(img, r(277), tiles, 84, 2, b) // trapdoor open W
	drawSingleFaceBlockImage(img, r(278), tiles, 84, 3, b) // trapdoor open E
	drawSingleFaceBlockImage(img, r(279), tiles, 84, 0, b) // trapdoor open S
	drawSingleFaceBlockImage(img, r(280), tiles, 84, 1, b) // trapdoor open N

	drawPartialSingleFaceBlockImage(img, r(100), tiles, 4, 2, b, 0.25, 0.75, 0, 1)        // wall sign facing E
	drawPartialSingleFaceBlockImage(img, r(101), tiles, 4, 3, b, 0.25, 0.75, 0, 1)        // wall sign facing W
	drawPartialSingleFaceBlockImage(img, r(102), tiles, 4, 0, b, 0.25, 0.75, 0, 1)        // wall sign facing N
	drawPartialSingleFaceBlockImage(img, r(103), tiles, 4, 1, b, 0.25, 0.75, 0, 1)        // wall sign facing S
	drawPartialSingleFaceBlockImage(img, r(190), tiles, 1, 1, b, 0.35, 0.65, 0.35, 0.65)  // stone button facing S
	drawPartialSingleFaceBlockImage(img, r(191), tiles, 1, 0, b, 0.35, 0.65, 0.35, 0.65)  // stone button facing N
	drawPartialSingleFaceBlockImage(img, r(192), tiles, 1, 3, b, 0.35, 0.65, 0.35, 0.65)  // stone button facing W
	drawPartialSingleFaceBlockImage(img, r(193), tiles, 1, 2, b, 0.35, 0.65, 0.35, 0.65)  // stone button facing E

	drawSolidColorBlockImage(img, r(139), rgba.Pixel{R: 0x48, G: 0x27, B: 0x7b, A: 0xd0}, b) // portal

	drawStairsS(img, r(50), tiles, 4, b)      // wood stairs asc S
	drawStairsN(img, r(51), tiles, 4, b)      // wood stairs asc N
	drawStairsW(img, r(52), tiles, 4, b)      // wood stairs asc W
	drawStairsE(img, r(53), tiles, 4, b)      // wood stairs asc E
	drawStairsS(img, r(96), tiles, 16, b)     // cobble stairs asc S
	drawStairsN(img, r(97), tiles, 16, b)     // cobble stairs asc N
	drawStairsW(img, r(98), tiles, 16, b)     // cobble stairs asc W
	drawStairsE(img, r(99), tiles, 16, b)     // cobble stairs asc E
	drawStairsS(img, r(304), tiles, 7, b)     // brick stairs asc S
	drawStairsN(img, r(305), tiles, 7, b)     // brick stairs asc N
	drawStairsW(img, r(306), tiles, 7, b)     // brick stairs asc W
	drawStairsE(img, r(307), tiles, 7, b)     // brick stairs asc E
	drawStairsS(img, r(308), tiles, 54, b)    // stone brick stairs asc S
	drawStairsN(img, r(309), tiles, 54, b)    // stone brick stairs asc N
	drawStairsW(img, r(310), tiles, 54, b)    // stone brick stairs asc W
	drawStairsE(img, r(311), tiles, 54, b)    // stone brick stairs asc E
	drawStairsS(img, r(312), tiles, 224, b)   // nether brick stairs asc S
	drawStairsN(img, r(313), tiles, 224, b)   // nether brick stairs asc N
	drawStairsW(img, r(314), tiles, 224, b)   // nether brick stairs asc W
	drawStairsE(img, r(315), tiles, 224, b)   // nether brick stairs asc E
	drawInvStairsS(img, r(438), tiles, 4, b)  // wood stairs asc S inverted
	drawInvStairsN(img, r(439), tiles, 4, b)  // wood stairs asc N inverted
	drawInvStairsW(img, r(440), tiles, 4, b)  // wood stairs asc W inverted
	drawInvStairsE(img, r(441), tiles, 4, b)  // wood stairs asc E inverted
	drawInvStairsS(img, r(442), tiles, 16, b) // cobble stairs asc S inverted
	drawInvStairsN(img, r(443), tiles, 16, b) // cobble stairs asc N inverted
	drawInvStairsW(img, r(444), tiles, 16, b) // cobble stairs asc W inverted
	drawInvStairsE(img, r(445), tiles, 16, b) // cobble stairs asc E inverted
	drawInvStairsS(img, r(446), tiles, 7, b)  // brick stairs asc S inverted
	drawInvStairsN(img, r(447), tiles, 7, b)  // brick stairs asc N inverted
	drawInvStairsW(img, r(448), tiles, 7, b)  // brick stairs asc W inverted
	drawInvStairsE(img, r(449), tiles, 7, b)  // brick stairs asc E inverted
	drawInvStairsS(img, r(450), tiles, 54, b) // stone brick stairs asc S inverted
	drawInvStairsN(img, r(451), tiles, 54, b) // stone brick stairs asc N inverted
	drawInvStairsW(img, r(452), tiles, 54, b) // stone brick stairs asc W inverted
	drawInvStairsE(img, r(453), tiles, 54, b) // stone brick stairs asc E inverted
	drawInvStairsS(img, r(454), tiles, 224, b) // nether brick stairs asc S inverted
	drawInvStairsN(img, r(455), tiles, 224, b) // nether brick stairs asc N inverted
	drawInvStairsW(img, r(456), tiles, 224, b) // nether brick stairs asc W inverted
	drawInvStairsE(img, r(457), tiles, 224, b) // nether brick stairs asc E inverted

	drawFloorBlockImage(img, r(55), tiles, 164, 0, b)  // redstone wire NSEW
	drawFloorBlockImage(img, r(86), tiles, 128, 1, b)  // track EW
	drawFloorBlockImage(img, r(87), tiles, 128, 0, b)  // track NS
	drawFloorBlockImage(img, r(92), tiles, 112, 1, b)  // track NE corner
	drawFloorBlockImage(img, r(93), tiles, 112, 0, b)  // track SE corner
	drawFloorBlockImage(img, r(94), tiles, 112, 3, b)  // track SW corner
	drawFloorBlockImage(img, r(95), tiles, 112, 2, b)  // track NW corner
	drawFloorBlockImage(img, r(252), tiles, 179, 1, b) // booster on EW
	drawFloorBlockImage(img, r(253), tiles, 179, 0, b) // booster on NS
	drawFloorBlockImage(img, r(258), tiles, 163, 1, b) // booster off EW
	drawFloorBlockImage(img, r(259), tiles, 163, 0, b) // booster off NS
	drawFloorBlockImage(img, r(264), tiles, 195, 1, b) // detector EW
	drawFloorBlockImage(img, r(265), tiles, 195, 0, b) // detector NS
	drawFloorBlockImage(img, r(276), tiles, 84, 0, b)  // trapdoor closed
	drawFloorBlockImage(img, r(316), tiles, 76, 0, b)  // lily pad

	drawAngledFloorBlockImage(img, r(200), tiles, 128, 0, 0, b) // track asc S
	drawAngledFloorBlockImage(img, r(201), tiles, 128, 0, 2, b) // track asc N
	drawAngledFloorBlockImage(img, r(202), tiles, 128, 1, 3, b) // track asc E
	drawAngledFloorBlockImage(img, r(203), tiles, 128, 1, 1, b) // track asc W
	drawAngledFloorBlockImage(img, r(254), tiles, 179, 0, 0, b) // booster on asc S
	drawAngledFloorBlockImage(img, r(255), tiles, 179, 0, 2, b) // booster on asc N
	drawAngledFloorBlockImage(img, r(256), tiles, 179, 1, 3, b) // booster on asc E
	drawAngledFloorBlockImage(img, r(257), tiles, 179, 1, 1, b) // booster on asc W
	drawAngledFloorBlockImage(img, r(260), tiles, 163, 0, 0, b) // booster off asc S
	drawAngledFloorBlockImage(img, r(261), tiles, 163, 0, 2, b) // booster off asc N
	drawAngledFloorBlockImage(img, r(262), tiles, 163, 1, 3, b) // booster off asc E
	drawAngledFloorBlockImage(img, r(263), tiles, 163, 1, 1, b) // booster off asc W
	drawAngledFloorBlockImage(img, r(266), tiles, 195, 0, 0, b) // detector asc S
	drawAngledFloorBlockImage(img, r(267), tiles, 195, 0, 2, b) // detector asc N
	drawAngledFloorBlockImage(img, r(268), tiles, 195, 1, 3, b) // detector asc E
	drawAngledFloorBlockImage(img, r(269), tiles, 195, 1, 1, b) // detector asc W

	drawFencePost(img, r(134), tiles, 4, b) // fence post
	drawFence(img, r(158), tiles, 4, true, false, false, false, true, b)  // fence N
	drawFence(img, r(159), tiles, 4, false, true, false, false, true, b)  // fence S
	drawFence(img, r(160), tiles, 4, true, true, false, false, true, b)   // fence NS
	drawFence(img, r(161), tiles, 4, false, false, true, false, true, b)  // fence E
	drawFence(img, r(162), tiles, 4, true, false, true, false, true, b)   // fence NE
	drawFence(img, r(163), tiles, 4, false, true, true, false, true, b)   // fence SE
	drawFence(img, r(164), tiles, 4, true, true, true, false, true, b)    // fence NSE
	drawFence(img, r(165), tiles, 4, false, false, false, true, true, b)  // fence W
	drawFence(img, r(166), tiles, 4, true, false, false, true, true, b)   // fence NW
	drawFence(img, r(167), tiles, 4, false, true, false, true, true, b)   // fence SW
	drawFence(img, r(168), tiles, 4, true, true, false, true, true, b)    // fence NSW
	drawFence(img, r(169), tiles, 4, false, false, true, true, true, b)   // fence EW
	drawFence(img, r(170), tiles, 4, true, false, true, true, true, b)    // fence NEW
	drawFence(img, r(171), tiles, 4, false, true, true, true, true, b)    // fence SEW
	drawFence(img, r(172), tiles, 4, true, true, true, true, true, b)     // fence NSEW
	drawFencePost(img, r(332), tiles, 224, b) // nether fence post
	drawFence(img, r(317), tiles, 224, true, false, false, false, true, b)  // nether fence N
	drawFence(img, r(318), tiles, 224, false, true, false, false, true, b)  // nether fence S
	drawFence(img, r(319), tiles, 224, true, true, false, false, true, b)   // nether fence NS
	drawFence(img, r(320), tiles, 224, false, false, true, false, true, b)  // nether fence E
	drawFence(img, r(321), tiles, 224, true, false, true, false, true, b)   // nether fence NE
	drawFence(img, r(322), tiles, 224, false, true, true, false, true, b)   // nether fence SE
	drawFence(img, r(323), tiles, 224, true, true, true, false, true, b)    // nether fence NSE
	drawFence(img, r(324), tiles, 224, false, false, false, true, true, b)  // nether fence W
	drawFence(img, r(325), tiles, 224, true, false, false, true, true, b)   // nether fence NW
	drawFence(img, r(326), tiles, 224, false, true, false, true, true, b)   // nether fence SW
	drawFence(img, r(327), tiles, 224, true, true, false, true, true, b)    // nether fence NSW
	drawFence(img, r(328), tiles, 224, false, false, true, true, true, b)   // nether fence EW
	drawFence(img, r(329), tiles, 224, true, false, true, true, true, b)    // nether fence NEW
	drawFence(img, r(330), tiles, 224, false, true, true, true, true, b)    // nether fence SEW
	drawFence(img, r(331), tiles, 224, true, true, true, true, true, b)     // nether fence NSEW
	drawFence(img, r(346), tiles, 4, false, false, true, true, false, b)    // fence gate EW
	drawFence(img, r(347), tiles, 4, true, true, false, false, false, b)    // fence gate NS

	drawSign(img, r(70), tiles, 4, b) // sign facing N/S
	drawSign(img, r(71), tiles, 4, b) // sign facing NE/SW
	drawSign(img, r(72), tiles, 4, b) // sign facing E/W
	drawSign(img, r(73), tiles, 4, b) // sign facing SE/NW

	drawWallLever(img, r(194), tiles, 1, b) // wall lever facing S
	drawWallLever(img, r(195), tiles, 0, b) // wall lever facing N
	drawWallLever(img, r(196), tiles, 3, b) // wall lever facing W
	drawWallLever(img, r(197), tiles, 2, b) // wall lever facing E
	drawFloorLeverEW(img, r(198), tiles, b) // ground lever EW
	drawFloorLeverNS(img, r(199), tiles, b) // ground lever NS

	drawRepeater(img, r(240), tiles, 147, 0, b) // repeater on N
	drawRepeater(img, r(241), tiles, 147, 2, b) // repeater on S
	drawRepeater(img, r(242), tiles, 147, 3, b) // repeater on E
	drawRepeater(img, r(243), tiles, 147, 1, b) // repeater on W
	drawRepeater(img, r(244), tiles, 131, 0, b) // repeater off N
	drawRepeater(img, r(245), tiles, 131, 2, b) // repeater off S
	drawRepeater(img, r(246), tiles, 131, 3, b) // repeater off E
	drawRepeater(img, r(247), tiles, 131, 1, b) // repeater off W

	drawFire(img, r(189), firetile, b)

	drawBrewingStand(img, r(350), tiles, 156, 157, b)

	drawCauldron(img, r(351), tiles, 154, -1, 0, b)       // cauldron empty
	drawCauldron(img, r(352), tiles, 154, 205, cut.c10, b) // cauldron 1/3 full
	drawCauldron(img, r(353), tiles, 154, 205, cut.c6, b)  // cauldron 2/3 full
	drawCauldron(img, r(354), tiles, 154, 205, cut.c2, b)  // cauldron full

	drawDragonEgg(img, r(378), tiles, 167, b)

	drawVines(img, r(379), tiles, 143, b, false, false, false, false, true) // vines top only
	drawVines(img, r(380), tiles, 143, b, true, false, false, false, false) // vines N
	drawVines(img, r(381), tiles, 143, b, false, true, false, false, false) // vines S
	drawVines(img, r(382), tiles, 143, b, true, true, false, false, false)  // vines NS
	drawVines(img, r(383), tiles, 143, b, false, false, true, false, false) // vines E
	drawVines(img, r(384), tiles, 143, b, true, false, true, false, false)  // vines NE
	drawVines(img, r(385), tiles, 143, b, false, true, true, false, false)  // vines SE
	drawVines(img, r(386), tiles, 143, b, true, true, true, false, false)   // vines NSE
	drawVines(img, r(387), tiles, 143, b, false, false, false, true, false) // vines W
	drawVines(img, r(388), tiles, 143, b, true, false, false, true, false)  // vines NW
	drawVines(img, r(389), tiles, 143, b, false, true, false, true, false)  // vines SW
	drawVines(img, r(390), tiles, 143, b, true, true, false, true, false)   // vines NSW
	drawVines(img, r(391), tiles, 143, b, false, false, true, true, false)  // vines EW
	drawVines(img, r(392), tiles, 143, b, true, false, true, true, false)   // vines NEW
	drawVines(img, r(393), tiles, 143, b, false, true, true, true, false)   // vines SEW
	drawVines(img, r(394), tiles, 143, b, true, true, true, true, false)    // vines NSEW

	return nil
}
