package blockimages

func (bi *BlockImages) drawBuildcraft(texturesFile string) error {
	b := bi.b

	sheet, texSize, err := loadSheet(texturesFile)
	if err != nil {
		return err
	}
	tiles := getResizedTiles(sheet, texSize, b)
	cut := newTileCutoffs(texSize, b)

	img := bi.Img
	r := bi.GetRect

	drawPipe(img, r(500), tiles, texcoord(1, 0), b)  // wood output pipe
	drawPipe(img, r(501), tiles, texcoord(1, 1), b)  // cobblestone pipe
	drawPipe(img, r(502), tiles, texcoord(1, 2), b)  // iron output pipe
	drawPipe(img, r(503), tiles, texcoord(1, 3), b)  // iron input pipe
	drawPipe(img, r(504), tiles, texcoord(1, 4), b)  // gold pipe
	drawPipe(img, r(505), tiles, texcoord(1, 5), b)  // diamond pipe
	drawPipe(img, r(506), tiles, texcoord(1, 6), b)  // diamond black pipe
	drawPipe(img, r(507), tiles, texcoord(1, 7), b)  // diamond teal pipe
	drawPipe(img, r(508), tiles, texcoord(1, 8), b)  // diamond red pipe
	drawPipe(img, r(509), tiles, texcoord(1, 9), b)  // diamond blue pipe
	drawPipe(img, r(510), tiles, texcoord(1, 10), b) // diamond green pipe
	drawPipe(img, r(511), tiles, texcoord(1, 11), b) // diamond yellow pipe
	drawPipe(img, r(512), tiles, texcoord(1, 12), b) // obsidian pipe
	drawPipe(img, r(513), tiles, texcoord(1, 13), b) // stone pipe
	drawPipe(img, r(514), tiles, texcoord(1, 14), b) // active gold pipe
	drawPipe(img, r(515), tiles, texcoord(1, 15), b) // wood input pipe
	drawPipe(img, r(555), tiles, texcoord(7, 0), b)  // waterproof wood pipe
	drawPipe(img, r(556), tiles, texcoord(7, 1), b)  // waterproof cobblestone pipe
	drawPipe(img, r(557), tiles, texcoord(7, 2), b)  // waterproof stone pipe
	drawPipe(img, r(558), tiles, texcoord(7, 3), b)  // waterproof iron pipe
	drawPipe(img, r(559), tiles, texcoord(7, 4), b)  // waterproof gold pipe
	drawPipe(img, r(560), tiles, texcoord(7, 5), b)  // waterproof diamond pipe
	drawPipe(img, r(561), tiles, texcoord(7, 6), b)  // conductive wood pipe
	drawPipe(img, r(562), tiles, texcoord(7, 7), b)  // conductive cobblestone pipe
	drawPipe(img, r(563), tiles, texcoord(7, 8), b)  // conductive stone pipe
	drawPipe(img, r(564), tiles, texcoord(7, 9), b)  // conductive iron pipe
	drawPipe(img, r(565), tiles, texcoord(7, 10), b) // conductive gold pipe
	drawPipe(img, r(566), tiles, texcoord(7, 11), b) // conductive diamond pipe

	drawBlockImage(img, r(519), tiles, texcoord(2, 4), texcoord(2, 5), texcoord(2, 3), b) // miningwell W
	drawBlockImage(img, r(520), tiles, texcoord(2, 5), texcoord(2, 4), texcoord(2, 3), b) // miningwell N
	drawBlockImage(img, r(521), tiles, texcoord(2, 5), texcoord(2, 5), texcoord(2, 3), b) // miningwell E/S
	drawDragonEgg(img, r(516), tiles, texcoord(2, 0), b)                                  // mining pipe
	drawDragonEgg(img, r(517), tiles, texcoord(2, 1), b)                                  // mining tip

	drawBlockImage(img, r(522), tiles, texcoord(2, 6), texcoord(2, 7), texcoord(2, 8), b) // quarry W
	drawBlockImage(img, r(523), tiles, texcoord(2, 7), texcoord(2, 6), texcoord(2, 8), b) // quarry N
	drawBlockImage(img, r(524), tiles, texcoord(2, 6), texcoord(2, 6), texcoord(2, 8), b) // quarry E/S
	drawPipe(img, r(518), tiles, texcoord(2, 2), b)                                       // frame

	drawBlockImage(img, r(525), tiles, texcoord(2, 12), texcoord(2, 12), texcoord(2, 11), b) // autoworkbench
	drawBlockImage(img, r(526), tiles, texcoord(3, 0), texcoord(3, 0), texcoord(3, 1), b)    // template table
	drawBlockImage(img, r(527), tiles, texcoord(3, 5), texcoord(3, 7), texcoord(3, 6), b)    // builder W
	drawBlockImage(img, r(528), tiles, texcoord(3, 7), texcoord(3, 5), texcoord(3, 6), b)    // builder N
	drawBlockImage(img, r(529), tiles, texcoord(3, 5), texcoord(3, 5), texcoord(3, 6), b)    // builder E/S
	drawBlockImage(img, r(530), tiles, texcoord(3, 5), texcoord(4, 2), texcoord(4, 0), b)    // filler W
	drawBlockImage(img, r(531), tiles, texcoord(4, 2), texcoord(3, 5), texcoord(4, 0), b)    // filler N
	drawBlockImage(img, r(532), tiles, texcoord(3, 5), texcoord(3, 5), texcoord(4, 0), b)    // filler E/S

	drawBlockImage(img, r(534), tiles, texcoord(6, 3), texcoord(6, 3), texcoord(6, 5), b) // pump W
	drawBlockImage(img, r(535), tiles, texcoord(6, 3), texcoord(6, 3), texcoord(6, 5), b) // pump N
	drawBlockImage(img, r(536), tiles, texcoord(6, 3), texcoord(6, 3), texcoord(6, 5), b) // pump E/S
	drawDragonEgg(img, r(537), tiles, texcoord(6, 6), b)                                  // pump inlet
	drawBlockImage(img, r(533), tiles, texcoord(6, 0), texcoord(6, 0), texcoord(6, 2), b) // tank

	drawEngine(img, r(567), tiles, texcoord(0, 2), texcoord(2, 10), b) // redstone engine
	drawEngine(img, r(568), tiles, texcoord(0, 1), texcoord(2, 10), b) // steam engine
	drawEngine(img, r(569), tiles, texcoord(0, 4), texcoord(2, 10), b) // combustion engine

	oil := texcoord(12, 14)
	drawBlockImage(img, r(570), tiles, oil, oil, oil, b)                          // oil
	drawPartialBlockImage(img, r(571), tiles, oil, oil, oil, b, cut.c2, 0, 0, 0, true)  // oil level 7
	drawPartialBlockImage(img, r(572), tiles, oil, oil, oil, b, cut.c4, 0, 0, 0, true)  // oil level 6
	drawPartialBlockImage(img, r(573), tiles, oil, oil, oil, b, cut.c6, 0, 0, 0, true)  // oil level 5
	drawPartialBlockImage(img, r(574), tiles, oil, oil, oil, b, cut.c8, 0, 0, 0, true)  // oil level 4
	drawPartialBlockImage(img, r(575), tiles, oil, oil, oil, b, cut.c10, 0, 0, 0, true) // oil level 3
	drawPartialBlockImage(img, r(576), tiles, oil, oil, oil, b, cut.c12, 0, 0, 0, true) // oil level 2
	drawPartialBlockImage(img, r(577), tiles, oil, oil, oil, b, cut.c14, 0, 0, 0, true) // oil level 1

	drawItemBlockImage(img, r(540), tiles, texcoord(3, 9), b)          // landmark floor
	drawSingleFaceBlockImage(img, r(541), tiles, texcoord(3, 9), 1, b) // landmark pointing S
	drawSingleFaceBlockImage(img, r(542), tiles, texcoord(3, 9), 0, b) // landmark pointing N
	drawSingleFaceBlockImage(img, r(543), tiles, texcoord(3, 9), 3, b) // landmark pointing W
	drawSingleFaceBlockImage(img, r(544), tiles, texcoord(3, 9), 2, b) // landmark pointing E

	return nil
}
