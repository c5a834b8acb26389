package blockimages

import "image"

func (bi *BlockImages) drawIndustrialCraft(block0File, cableFile, electricFile, generatorFile, machineFile, machine2File, personalFile string) error {
	b := bi.b

	load := func(filename string) (*image.NRGBA, error) {
		sheet, size, err := loadSheet(filename)
		if err != nil {
			return nil, err
		}
		return getResizedTiles(sheet, size, b), nil
	}

	block0, err := load(block0File)
	if err != nil {
		return err
	}
	cable, err := load(cableFile)
	if err != nil {
		return err
	}
	electric, err := load(electricFile)
	if err != nil {
		return err
	}
	generator, err := load(generatorFile)
	if err != nil {
		return err
	}
	machine, err := load(machineFile)
	if err != nil {
		return err
	}
	machine2, err := load(machine2File)
	if err != nil {
		return err
	}
	personal, err := load(personalFile)
	if err != nil {
		return err
	}

	img := bi.Img
	r := bi.GetRect

	drawItemBlockImage(img, r(600), block0, texcoord(2, 9), b)                                     // crop
	drawBlockImage(img, r(601), block0, texcoord(6, 11), texcoord(6, 11), texcoord(6, 11), b)      // luminator (on)
	drawBlockImage(img, r(602), block0, texcoord(7, 4), texcoord(7, 4), texcoord(7, 5), b)         // scaffold
	drawBlockImage(img, r(603), block0, texcoord(2, 3), texcoord(2, 3), texcoord(2, 3), b)         // wall
	drawBlockImage(img, r(604), block0, texcoord(2, 5), texcoord(2, 5), texcoord(2, 5), b)         // construction foam
	drawBlockImage(img, r(605), machine2, texcoord(0, 0), texcoord(0, 0), texcoord(0, 0), b)       // teleporter
	drawBlockImage(img, r(606), machine2, texcoord(0, 1), texcoord(0, 1), texcoord(0, 1), b)       // tesla coil
	drawBlockImage(img, r(607), cable, texcoord(1, 0), texcoord(1, 0), texcoord(1, 0), b)          // copper block
	drawBlockImage(img, r(608), cable, texcoord(10, 0), texcoord(10, 0), texcoord(10, 0), b)       // tin block
	drawBlockImage(img, r(609), cable, texcoord(2, 0), texcoord(2, 0), texcoord(2, 0), b)          // bronze block
	drawBlockImage(img, r(610), block0, texcoord(4, 3), texcoord(4, 3), texcoord(4, 3), b)         // uranium block
	drawBlockImage(img, r(611), personal, texcoord(2, 0), texcoord(3, 0), texcoord(1, 0), b)       // personal safe N
	drawBlockImage(img, r(612), personal, texcoord(3, 0), texcoord(2, 0), texcoord(1, 0), b)       // personal safe W
	drawBlockImage(img, r(613), personal, texcoord(2, 0), texcoord(2, 0), texcoord(1, 0), b)       // personal safe E/S
	drawBlockImage(img, r(614), personal, texcoord(0, 1), texcoord(3, 1), texcoord(0, 1), b)       // trade-o-mat N
	drawBlockImage(img, r(615), personal, texcoord(3, 1), texcoord(0, 1), texcoord(0, 1), b)       // trade-o-mat W
	drawBlockImage(img, r(616), personal, texcoord(0, 1), texcoord(0, 1), texcoord(0, 1), b)       // trade-o-mat E/S
	drawBlockImage(img, r(617), block0, texcoord(6, 15), texcoord(6, 15), texcoord(6, 15), b)      // luminator
	drawBlockImage(img, r(618), electric, texcoord(0, 0), texcoord(3, 0), texcoord(0, 0), b)       // batbox
	drawBlockImage(img, r(619), electric, texcoord(0, 1), texcoord(3, 1), texcoord(0, 1), b)       // MFE N
	drawBlockImage(img, r(620), electric, texcoord(3, 1), texcoord(0, 1), texcoord(0, 1), b)       // MFE W
	drawBlockImage(img, r(621), electric, texcoord(0, 1), texcoord(0, 1), texcoord(0, 1), b)       // MFE E/S
	drawBlockImage(img, r(622), electric, texcoord(0, 2), texcoord(3, 2), texcoord(0, 2), b)       // MFSU N
	drawBlockImage(img, r(623), electric, texcoord(3, 2), texcoord(0, 2), texcoord(0, 2), b)       // MFSU W
	drawBlockImage(img, r(624), electric, texcoord(0, 2), texcoord(0, 2), texcoord(0, 2), b)       // MFSU E/S
	drawBlockImage(img, r(625), electric, texcoord(0, 3), texcoord(3, 3), texcoord(0, 3), b)       // LV transformer N
	drawBlockImage(img, r(626), electric, texcoord(3, 3), texcoord(0, 3), texcoord(0, 3), b)       // LV transformer W
	drawBlockImage(img, r(627), electric, texcoord(0, 3), texcoord(0, 3), texcoord(0, 3), b)       // LV transformer E/S
	drawBlockImage(img, r(628), electric, texcoord(0, 4), texcoord(3, 4), texcoord(0, 4), b)       // MV transformer N
	drawBlockImage(img, r(629), electric, texcoord(3, 4), texcoord(0, 4), texcoord(0, 4), b)       // MV transformer W
	drawBlockImage(img, r(630), electric, texcoord(0, 4), texcoord(0, 4), texcoord(0, 4), b)       // MV transformer E/S
	drawBlockImage(img, r(631), electric, texcoord(0, 5), texcoord(3, 5), texcoord(0, 5), b)       // HV transformer N
	drawBlockImage(img, r(632), electric, texcoord(3, 5), texcoord(0, 5), texcoord(0, 5), b)       // HV transformer W
	drawBlockImage(img, r(633), electric, texcoord(0, 5), texcoord(0, 5), texcoord(0, 5), b)       // HV transformer E/S
	drawBlockImage(img, r(634), cable, texcoord(6, 0), texcoord(6, 0), texcoord(6, 0), b)          // cable
	drawSingleFaceBlockImage(img, r(635), block0, texcoord(0, 14), 2, b)                           // reinforced door N upper
	drawSingleFaceBlockImage(img, r(636), block0, texcoord(0, 14), 3, b)                           // reinforced door S upper
	drawSingleFaceBlockImage(img, r(637), block0, texcoord(0, 14), 1, b)                           // reinforced door E upper
	drawSingleFaceBlockImage(img, r(638), block0, texcoord(0, 14), 0, b)                           // reinforced door W upper
	drawSingleFaceBlockImage(img, r(716), block0, texcoord(0, 15), 2, b)                           // reinforced door N lower
	drawSingleFaceBlockImage(img, r(717), block0, texcoord(0, 15), 3, b)                           // reinforced door S lower
	drawSingleFaceBlockImage(img, r(718), block0, texcoord(0, 15), 1, b)                           // reinforced door E lower
	drawSingleFaceBlockImage(img, r(719), block0, texcoord(0, 15), 0, b)                           // reinforced door W lower
	drawBlockImage(img, r(639), block0, texcoord(0, 13), texcoord(0, 13), texcoord(0, 13), b)      // reinforced glass
	drawBlockImage(img, r(640), block0, texcoord(0, 12), texcoord(0, 12), texcoord(0, 12), b)      // reinforced stone
	drawBlockImage(img, r(641), block0, texcoord(1, 1), texcoord(1, 1), texcoord(1, 1), b)         // iron fence
	drawBlockImage(img, r(642), block0, texcoord(4, 15), texcoord(4, 15), texcoord(4, 15), b)      // reactor chamber
	drawPartialBlockImage(img, r(643), block0, texcoord(2, 8), texcoord(2, 8), texcoord(2, 8), b, 7*b/8, 0, 0, 0, true) // rubber sheet
	drawItemBlockImage(img, r(644), block0, texcoord(3, 8), b)                                     // remote dynamite
	drawItemBlockImage(img, r(645), block0, texcoord(3, 9), b)                                     // dynamite
	drawBlockImage(img, r(646), block0, texcoord(3, 15), texcoord(3, 15), texcoord(3, 14), b)      // nuke
	drawBlockImage(img, r(647), block0, texcoord(3, 12), texcoord(3, 12), texcoord(3, 11), b)      // ITNT
	drawItemBlockImage(img, r(648), block0, texcoord(2, 6), b)                                     // rubber sapling
	drawBlockImage(img, r(649), block0, texcoord(2, 6), texcoord(2, 6), texcoord(2, 6), b)         // rubber leaves
	drawBlockImage(img, r(650), block0, texcoord(2, 13), texcoord(2, 13), texcoord(2, 15), b)      // rubber wood
	drawFencePost(img, r(651), block0, texcoord(1, 1), b)                                          // mining tip
	drawFencePost(img, r(652), block0, texcoord(1, 1), b)                                          // mining pipe
	drawBlockImage(img, r(653), generator, texcoord(0, 0), texcoord(3, 0), texcoord(1, 0), b)      // generator N
	drawBlockImage(img, r(654), generator, texcoord(3, 0), texcoord(0, 0), texcoord(1, 0), b)      // generator W
	drawBlockImage(img, r(655), generator, texcoord(0, 0), texcoord(0, 0), texcoord(1, 0), b)      // generator E/S
	drawBlockImage(img, r(656), generator, texcoord(0, 1), texcoord(3, 1), texcoord(1, 1), b)      // geothermal generator N
	drawBlockImage(img, r(657), generator, texcoord(3, 1), texcoord(0, 1), texcoord(1, 1), b)      // geothermal generator W
	drawBlockImage(img, r(658), generator, texcoord(0, 1), texcoord(0, 1), texcoord(1, 1), b)      // geothermal generator E/S
	drawBlockImage(img, r(659), generator, texcoord(0, 2), texcoord(3, 2), texcoord(1, 2), b)      // water mill N
	drawBlockImage(img, r(660), generator, texcoord(3, 2), texcoord(0, 2), texcoord(1, 2), b)      // water mill W
	drawBlockImage(img, r(661), generator, texcoord(0, 2), texcoord(0, 2), texcoord(1, 2), b)      // water mill E/S
	drawBlockImage(img, r(662), generator, texcoord(3, 3), texcoord(3, 3), texcoord(1, 3), b)      // solar panel
	drawBlockImage(img, r(663), generator, texcoord(0, 4), texcoord(5, 4), texcoord(1, 4), b)      // wind mill N
	drawBlockImage(img, r(664), generator, texcoord(5, 4), texcoord(0, 4), texcoord(1, 4), b)      // wind mill W
	drawBlockImage(img, r(665), generator, texcoord(0, 4), texcoord(0, 4), texcoord(1, 4), b)      // wind mill E/S
	drawBlockImage(img, r(666), generator, texcoord(0, 5), texcoord(3, 5), texcoord(1, 5), b)      // nuclear reactor N
	drawBlockImage(img, r(667), generator, texcoord(3, 5), texcoord(0, 5), texcoord(1, 5), b)      // nuclear reactor W
	drawBlockImage(img, r(668), generator, texcoord(0, 5), texcoord(0, 5), texcoord(1, 5), b)      // nuclear reactor E/S
	drawBlockImage(img, r(669), block0, texcoord(2, 2), texcoord(2, 2), texcoord(2, 2), b)         // uranium ore
	drawBlockImage(img, r(670), block0, texcoord(2, 1), texcoord(2, 1), texcoord(2, 1), b)         // tin ore
	drawBlockImage(img, r(671), block0, texcoord(2, 0), texcoord(2, 0), texcoord(2, 0), b)         // copper ore
	drawBlockImage(img, r(672), machine, texcoord(0, 0), texcoord(0, 0), texcoord(1, 0), b)        // machine block
	drawBlockImage(img, r(673), machine, texcoord(0, 1), texcoord(3, 1), texcoord(1, 1), b)        // iron furnace N
	drawBlockImage(img, r(674), machine, texcoord(3, 1), texcoord(0, 1), texcoord(1, 1), b)        // iron furnace W
	drawBlockImage(img, r(675), machine, texcoord(0, 1), texcoord(0, 1), texcoord(1, 1), b)        // iron furnace E/S
	drawBlockImage(img, r(676), machine, texcoord(0, 2), texcoord(3, 2), texcoord(1, 2), b)        // electric furnace N
	drawBlockImage(img, r(677), machine, texcoord(3, 2), texcoord(0, 2), texcoord(1, 2), b)        // electric furnace W
	drawBlockImage(img, r(678), machine, texcoord(0, 2), texcoord(0, 2), texcoord(1, 2), b)        // electric furnace E/S
	drawBlockImage(img, r(679), machine, texcoord(0, 3), texcoord(3, 3), texcoord(1, 3), b)        // macerator N
	drawBlockImage(img, r(680), machine, texcoord(3, 3), texcoord(0, 3), texcoord(1, 3), b)        // macerator W
	drawBlockImage(img, r(681), machine, texcoord(0, 3), texcoord(0, 3), texcoord(1, 3), b)        // macerator E/S
	drawBlockImage(img, r(682), machine, texcoord(0, 4), texcoord(3, 4), texcoord(1, 4), b)        // extractor N
	drawBlockImage(img, r(683), machine, texcoord(3, 4), texcoord(0, 4), texcoord(1, 4), b)        // extractor W
	drawBlockImage(img, r(684), machine, texcoord(0, 4), texcoord(0, 4), texcoord(1, 4), b)        // extractor E/S
	drawBlockImage(img, r(685), machine, texcoord(0, 5), texcoord(3, 5), texcoord(1, 5), b)        // compressor N
	drawBlockImage(img, r(686), machine, texcoord(3, 5), texcoord(0, 5), texcoord(1, 5), b)        // compressor W
	drawBlockImage(img, r(687), machine, texcoord(0, 5), texcoord(0, 5), texcoord(1, 5), b)        // compressor E/S
	drawBlockImage(img, r(688), machine, texcoord(0, 6), texcoord(3, 6), texcoord(1, 6), b)        // canning machine N
	drawBlockImage(img, r(689), machine, texcoord(3, 6), texcoord(0, 6), texcoord(1, 6), b)        // canning machine W
	drawBlockImage(img, r(690), machine, texcoord(0, 6), texcoord(0, 6), texcoord(1, 6), b)        // canning machine E/S
	drawBlockImage(img, r(691), machine, texcoord(0, 7), texcoord(3, 7), texcoord(1, 7), b)        // miner N
	drawBlockImage(img, r(692), machine, texcoord(3, 7), texcoord(0, 7), texcoord(1, 7), b)        // miner W
	drawBlockImage(img, r(693), machine, texcoord(0, 7), texcoord(0, 7), texcoord(1, 7), b)        // miner E/S
	drawBlockImage(img, r(694), machine, texcoord(0, 8), texcoord(3, 8), texcoord(1, 8), b)        // pump N
	drawBlockImage(img, r(695), machine, texcoord(3, 8), texcoord(0, 8), texcoord(1, 8), b)        // pump W
	drawBlockImage(img, r(696), machine, texcoord(0, 8), texcoord(0, 8), texcoord(1, 8), b)        // pump E/S
	drawBlockImage(img, r(697), machine, texcoord(0, 9), texcoord(3, 9), texcoord(1, 9), b)        // magnetizer N
	drawBlockImage(img, r(698), machine, texcoord(3, 9), texcoord(0, 9), texcoord(1, 9), b)        // magnetizer W
	drawBlockImage(img, r(699), machine, texcoord(0, 9), texcoord(0, 9), texcoord(1, 9), b)        // magnetizer E/S
	drawBlockImage(img, r(700), machine, texcoord(0, 10), texcoord(3, 10), texcoord(1, 10), b)     // electrolyzer N
	drawBlockImage(img, r(701), machine, texcoord(3, 10), texcoord(0, 10), texcoord(1, 10), b)     // electrolyzer W
	drawBlockImage(img, r(702), machine, texcoord(0, 10), texcoord(0, 10), texcoord(1, 10), b)     // electrolyzer E/S
	drawBlockImage(img, r(703), machine, texcoord(0, 11), texcoord(3, 11), texcoord(1, 11), b)     // recycler N
	drawBlockImage(img, r(704), machine, texcoord(3, 11), texcoord(0, 11), texcoord(1, 11), b)     // recycler W
	drawBlockImage(img, r(705), machine, texcoord(0, 11), texcoord(0, 11), texcoord(1, 11), b)     // recycler E/S
	drawBlockImage(img, r(706), machine, texcoord(0, 12), texcoord(0, 12), texcoord(1, 12), b)     // advanced machine block
	drawBlockImage(img, r(707), machine, texcoord(0, 13), texcoord(3, 13), texcoord(1, 13), b)     // induction furnace N
	drawBlockImage(img, r(708), machine, texcoord(3, 13), texcoord(0, 13), texcoord(1, 13), b)     // induction furnace W
	drawBlockImage(img, r(709), machine, texcoord(0, 13), texcoord(0, 13), texcoord(1, 13), b)     // induction furnace E/S
	drawBlockImage(img, r(710), machine, texcoord(0, 14), texcoord(3, 14), texcoord(1, 14), b)     // mass fabricator N
	drawBlockImage(img, r(711), machine, texcoord(3, 14), texcoord(0, 14), texcoord(1, 14), b)     // mass fabricator W
	drawBlockImage(img, r(712), machine, texcoord(0, 14), texcoord(0, 14), texcoord(1, 14), b)     // mass fabricator E/S
	drawBlockImage(img, r(713), machine, texcoord(0, 15), texcoord(3, 15), texcoord(1, 15), b)     // terraformer N
	drawBlockImage(img, r(714), machine, texcoord(3, 15), texcoord(0, 15), texcoord(1, 15), b)     // terraformer W
	drawBlockImage(img, r(715), machine, texcoord(0, 15), texcoord(0, 15), texcoord(1, 15), b)     // terraformer E/S

	return nil
}
