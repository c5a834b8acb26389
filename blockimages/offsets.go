package blockimages

// The block registry maps (block id, block data) pairs to atlas slots.
// Entries apply in order, later ones overriding earlier ones; data == all
// covers every data value of the id at once. Unlisted pairs stay at the
// dummy slot 0. The historical oddities in here (the id 96 overrides after
// id 97, the double Mining Pipe/Tip writes, Terraformer sharing the
// Recycler slot) are load-bearing: renderers match these exact values.

type offsetAssignment struct {
	id     uint8
	data   int8
	offset int16
}

const allData int8 = -1

var offsetRegistry = []offsetAssignment{
	{1, allData, 1},
	{2, allData, 2},
	{3, allData, 3},
	{4, allData, 4},
	{5, allData, 5},
	{5, 1, 435},
	{5, 2, 436},
	{5, 3, 437},
	{6, allData, 6},
	{6, 1, 250},
	{6, 5, 250},
	{6, 9, 250},
	{6, 13, 250},
	{6, 2, 251},
	{6, 6, 251},
	{6, 10, 251},
	{6, 14, 251},
	{6, 3, 429},
	{6, 7, 429},
	{6, 11, 429},
	{6, 15, 429},
	{7, allData, 7},
	{8, allData, 8},
	{8, 1, 9},
	{8, 2, 10},
	{8, 3, 11},
	{8, 4, 12},
	{8, 5, 13},
	{8, 6, 14},
	{8, 7, 15},
	{9, allData, 8},
	{9, 1, 9},
	{9, 2, 10},
	{9, 3, 11},
	{9, 4, 12},
	{9, 5, 13},
	{9, 6, 14},
	{9, 7, 15},
	{10, allData, 16},
	{10, 6, 19},
	{10, 4, 18},
	{10, 2, 17},
	{11, allData, 16},
	{11, 6, 19},
	{11, 4, 18},
	{11, 2, 17},
	{12, allData, 20},
	{13, allData, 21},
	{14, allData, 22},
	{15, allData, 23},
	{16, allData, 24},
	{17, allData, 25},
	{17, 1, 219},
	{17, 2, 220},
	{17, 3, 427},
	{18, allData, 26},
	{18, 1, 248},
	{18, 5, 248},
	{18, 9, 248},
	{18, 13, 248},
	{18, 2, 249},
	{18, 6, 249},
	{18, 10, 249},
	{18, 14, 249},
	{18, 3, 428},
	{18, 7, 428},
	{18, 11, 428},
	{18, 15, 428},
	{19, allData, 27},
	{20, allData, 28},
	{21, allData, 221},
	{22, allData, 222},
	{23, allData, 223},
	{23, 2, 225},
	{23, 4, 224},
	{23, 5, 225},
	{24, allData, 226},
	{24, 1, 431},
	{24, 2, 432},
	{25, allData, 227},
	{26, allData, 285},
	{26, 1, 286},
	{26, 5, 286},
	{26, 2, 287},
	{26, 6, 287},
	{26, 3, 288},
	{26, 7, 288},
	{26, 8, 281},
	{26, 12, 281},
	{26, 9, 282},
	{26, 13, 282},
	{26, 10, 283},
	{26, 14, 283},
	{26, 11, 284},
	{26, 15, 284},
	{27, allData, 258},
	{27, 1, 259},
	{27, 2, 260},
	{27, 3, 261},
	{27, 4, 262},
	{27, 5, 263},
	{27, 8, 252},
	{27, 9, 253},
	{27, 10, 254},
	{27, 11, 255},
	{27, 12, 256},
	{27, 13, 257},
	{28, allData, 264},
	{28, 1, 265},
	{28, 2, 266},
	{28, 3, 267},
	{28, 4, 268},
	{28, 5, 269},
	{29, allData, 413},
	{29, 1, 414},
	{29, 9, 414},
	{29, 4, 415},
	{29, 12, 415},
	{29, 5, 416},
	{29, 13, 416},
	{29, 3, 417},
	{29, 11, 417},
	{29, 2, 418},
	{29, 10, 418},
	{30, allData, 272},
	{31, allData, 273},
	{31, 0, 275},
	{31, 2, 274},
	{32, allData, 275},
	{33, allData, 407},
	{33, 1, 408},
	{33, 9, 408},
	{33, 4, 409},
	{33, 12, 409},
	{33, 5, 410},
	{33, 13, 410},
	{33, 3, 411},
	{33, 11, 411},
	{33, 2, 412},
	{33, 10, 412},
	{35, 0, 29},
	{35, 1, 204},
	{35, 2, 205},
	{35, 3, 206},
	{35, 4, 207},
	{35, 5, 208},
	{35, 6, 209},
	{35, 7, 210},
	{35, 8, 211},
	{35, 9, 212},
	{35, 10, 213},
	{35, 11, 214},
	{35, 12, 215},
	{35, 13, 216},
	{35, 14, 217},
	{35, 15, 218},
	{37, allData, 30},
	{38, allData, 31},
	{39, allData, 32},
	{40, allData, 33},
	{41, allData, 34},
	{42, allData, 35},
	{43, allData, 36},
	{43, 1, 226},
	{43, 2, 5},
	{43, 3, 4},
	{43, 4, 38},
	{43, 5, 294},
	{44, allData, 37},
	{44, 1, 229},
	{44, 2, 230},
	{44, 3, 231},
	{44, 4, 302},
	{44, 5, 303},
	{44, 8, 458},
	{44, 9, 459},
	{44, 10, 460},
	{44, 11, 461},
	{44, 12, 462},
	{44, 13, 463},
	{45, allData, 38},
	{46, allData, 39},
	{47, allData, 40},
	{48, allData, 41},
	{49, allData, 42},
	{50, allData, 43},
	{50, 1, 44},
	{50, 2, 45},
	{50, 3, 46},
	{50, 4, 47},
	{51, allData, 189},
	{52, allData, 49},
	{53, allData, 50},
	{53, 1, 51},
	{53, 2, 52},
	{53, 3, 53},
	{53, 4, 438},
	{53, 5, 439},
	{53, 6, 440},
	{53, 7, 441},
	{54, allData, 54},
	{54, 4, 177},
	{54, 2, 297},
	{54, 5, 297},
	{55, allData, 55},
	{56, allData, 56},
	{57, allData, 57},
	{58, allData, 58},
	{59, allData, 59},
	{59, 6, 60},
	{59, 5, 61},
	{59, 4, 62},
	{59, 3, 63},
	{59, 2, 64},
	{59, 1, 65},
	{59, 0, 66},
	{60, allData, 67},
	{61, allData, 183},
	{61, 2, 185},
	{61, 4, 184},
	{61, 5, 185},
	{62, allData, 186},
	{62, 2, 188},
	{62, 4, 187},
	{62, 5, 188},
	{63, allData, 73},
	{63, 0, 72},
	{63, 1, 72},
	{63, 4, 70},
	{63, 5, 70},
	{63, 6, 71},
	{63, 7, 71},
	{63, 8, 72},
	{63, 9, 72},
	{63, 12, 70},
	{63, 13, 70},
	{63, 14, 71},
	{63, 15, 71},
	{64, allData, 74},
	{65, allData, 82},
	{65, 3, 83},
	{65, 4, 84},
	{65, 5, 85},
	{66, allData, 86},
	{66, 1, 87},
	{66, 2, 200},
	{66, 3, 201},
	{66, 4, 202},
	{66, 5, 203},
	{66, 6, 92},
	{66, 7, 93},
	{66, 8, 94},
	{66, 9, 95},
	{67, allData, 96},
	{67, 1, 97},
	{67, 2, 98},
	{67, 3, 99},
	{67, 4, 442},
	{67, 5, 443},
	{67, 6, 444},
	{67, 7, 445},
	{68, allData, 100},
	{68, 3, 101},
	{68, 4, 102},
	{68, 5, 103},
	{69, allData, 194},
	{69, 2, 195},
	{69, 3, 196},
	{69, 4, 197},
	{69, 5, 198},
	{69, 6, 199},
	{69, 10, 195},
	{69, 11, 196},
	{69, 12, 197},
	{69, 13, 198},
	{69, 14, 199},
	{70, allData, 110},
	{71, allData, 111},
	{72, allData, 119},
	{73, allData, 120},
	{74, allData, 120},
	{75, allData, 121},
	{75, 1, 145},
	{75, 2, 146},
	{75, 3, 147},
	{75, 4, 148},
	{76, allData, 122},
	{76, 1, 141},
	{76, 2, 142},
	{76, 3, 143},
	{76, 4, 144},
	{77, allData, 190},
	{77, 2, 191},
	{77, 3, 192},
	{77, 4, 193},
	{77, 10, 191},
	{77, 11, 192},
	{77, 12, 193},
	{78, allData, 127},
	{79, allData, 128},
	{80, allData, 129},
	{81, allData, 130},
	{82, allData, 131},
	{83, allData, 132},
	{84, allData, 133},
	{85, allData, 134},
	{86, allData, 153},
	{86, 0, 135},
	{86, 1, 154},
	{86, 3, 153},
	{87, allData, 136},
	{88, allData, 137},
	{89, allData, 138},
	{90, allData, 139},
	{91, allData, 155},
	{91, 0, 140},
	{91, 1, 156},
	{91, 3, 155},
	{92, allData, 289},
	{93, allData, 247},
	{93, 1, 244},
	{93, 5, 244},
	{93, 9, 244},
	{93, 13, 244},
	{93, 2, 246},
	{93, 6, 246},
	{93, 10, 246},
	{93, 14, 246},
	{93, 3, 245},
	{93, 7, 245},
	{93, 11, 245},
	{93, 15, 245},
	{94, allData, 243},
	{94, 1, 240},
	{94, 5, 240},
	{94, 9, 240},
	{94, 13, 240},
	{94, 2, 242},
	{94, 6, 242},
	{94, 10, 242},
	{94, 14, 242},
	{94, 3, 241},
	{94, 7, 241},
	{94, 11, 241},
	{94, 15, 241},
	{95, allData, 270},
	{96, allData, 276},
	{96, 4, 277},
	{96, 5, 278},
	{96, 6, 279},
	{96, 7, 280},
	{97, allData, 1},
	{96, 1, 4},
	{96, 2, 294},
	{98, allData, 294},
	{98, 1, 295},
	{98, 2, 296},
	{98, 3, 430},
	{99, allData, 336},
	{99, 1, 342},
	{99, 2, 341},
	{99, 3, 341},
	{99, 4, 342},
	{99, 5, 341},
	{99, 6, 341},
	{99, 7, 344},
	{99, 8, 343},
	{99, 9, 343},
	{99, 10, 345},
	{100, allData, 336},
	{100, 1, 338},
	{100, 2, 337},
	{100, 3, 337},
	{100, 4, 338},
	{100, 5, 337},
	{100, 6, 337},
	{100, 7, 340},
	{100, 8, 339},
	{100, 9, 339},
	{100, 10, 345},
	{101, allData, 355},
	{102, allData, 366},
	{103, allData, 290},
	{104, allData, 395},
	{104, 1, 396},
	{104, 2, 397},
	{104, 3, 398},
	{104, 4, 399},
	{104, 5, 400},
	{104, 6, 401},
	{104, 7, 402},
	{105, allData, 395},
	{105, 1, 396},
	{105, 2, 397},
	{105, 3, 398},
	{105, 4, 399},
	{105, 5, 400},
	{105, 6, 401},
	{105, 7, 402},
	{106, allData, 379},
	{106, 2, 380},
	{106, 8, 381},
	{106, 10, 382},
	{106, 4, 383},
	{106, 6, 384},
	{106, 12, 385},
	{106, 14, 386},
	{106, 1, 387},
	{106, 3, 388},
	{106, 9, 389},
	{106, 11, 390},
	{106, 5, 391},
	{106, 7, 392},
	{106, 13, 393},
	{106, 15, 394},
	{107, allData, 347},
	{107, 1, 346},
	{107, 3, 346},
	{107, 5, 346},
	{107, 7, 346},
	{108, allData, 304},
	{108, 1, 305},
	{108, 2, 306},
	{108, 3, 307},
	{108, 4, 446},
	{108, 5, 447},
	{108, 6, 448},
	{108, 7, 449},
	{109, allData, 308},
	{109, 1, 309},
	{109, 2, 310},
	{109, 3, 311},
	{109, 4, 450},
	{109, 5, 451},
	{109, 6, 452},
	{109, 7, 453},
	{110, allData, 291},
	{111, allData, 316},
	{112, allData, 292},
	{113, allData, 332},
	{114, allData, 312},
	{114, 1, 313},
	{114, 2, 314},
	{114, 3, 315},
	{114, 4, 454},
	{114, 5, 455},
	{114, 6, 456},
	{114, 7, 457},
	{115, allData, 333},
	{115, 1, 334},
	{115, 2, 334},
	{115, 3, 335},
	{116, allData, 348},
	{117, allData, 350},
	{118, allData, 351},
	{118, 1, 352},
	{118, 2, 353},
	{118, 3, 354},
	{119, allData, 377},
	{120, allData, 349},
	{121, allData, 293},
	{122, allData, 378},
	{123, allData, 434},
	{124, allData, 433},

	// Buildcraft
	{161, allData, 567}, // Redstone Engine
	{161, 1, 568},       // Steam Engine
	{161, 2, 569},       // Combustion Engine
	{152, allData, 525}, // AutoWorkbench
	{157, allData, 527}, // Builder
	{155, allData, 530}, // Filler
	{153, allData, 522}, // Quarry
	{158, allData, 526}, // Template Table
	{158, allData, 526}, // Drafting Table
	{150, allData, 519}, // Mining Well
	{160, allData, 518}, // Frame
	{151, allData, 516}, // Mining Pipe
	{151, allData, 517}, // Mining Tip
	{154, allData, 540}, // LandMark
	{166, allData, 501}, // cobblestone pipe
	{164, allData, 534}, // Pump
	{162, allData, 570}, // Flowing Oil
	{162, 1, 571},
	{162, 2, 572},
	{162, 3, 573},
	{162, 4, 574},
	{162, 5, 575},
	{162, 6, 576},
	{162, 7, 577},
	{163, allData, 570}, // Still Oil
	{163, 1, 571},
	{163, 2, 572},
	{163, 3, 573},
	{163, 4, 574},
	{163, 5, 575},
	{163, 6, 576},
	{163, 7, 577},
	{167, allData, 533}, // Refinery
	{165, allData, 533}, // Tank
	{145, allData, 500}, // Wooden Pipe
	{159, allData, 501}, // Cobblestone Pipe
	{147, allData, 502}, // Iron Pipe
	{148, allData, 504}, // Golden Pipe
	{149, allData, 505}, // Diamond Pipe
	{156, allData, 512}, // Obsidian Pipe
	{146, allData, 513}, // Stone Pipe

	// IC2
	{218, allData, 600}, // Crop
	{219, allData, 601}, // Luminator
	{220, allData, 602}, // Scaffold
	{221, allData, 603}, // Wall
	{222, allData, 604}, // ConstructionFoam
	{223, allData, 605}, // Teleporter
	{223, 1, 606},       // TeslaCoil
	{224, allData, 607}, // CopperBlock
	{224, 1, 608},       // TinBlock
	{224, 2, 609},       // BronzeBlock
	{224, 3, 610},       // UraniumBlock
	{225, allData, 611}, // PersonalSafe
	{225, 1, 614},       // TradeOMat
	{226, allData, 617}, // LuminatorOn
	{227, allData, 618}, // BatBox
	{227, 1, 619},       // MFE
	{227, 2, 622},       // MFSU
	{227, 3, 625},       // LVTransformer
	{227, 4, 628},       // MVTransformer
	{227, 5, 631},       // HVTransformer
	{228, allData, 634}, // Cable
	{229, allData, 635}, // ReinforcedDoor
	{230, allData, 639}, // ReinforcedGlass
	{231, allData, 640}, // ReinforcedStone
	{232, allData, 641}, // IronFence
	{233, allData, 642}, // ReactorChamber
	{234, allData, 643}, // RubberSheet
	{235, allData, 644}, // RemoteDynamite
	{236, allData, 645}, // Dynamite
	{237, allData, 646}, // Nuke
	{239, allData, 647}, // ITNT
	{241, allData, 648}, // RubberSapling
	{242, allData, 649}, // RubberLeaves
	{243, allData, 650}, // RubberWood
	{244, allData, 651}, // MiningTip
	{245, allData, 652}, // MiningPipe
	{246, allData, 653}, // Generator
	{246, 1, 656},       // GeothermalGenerator
	{246, 2, 659},       // WaterMill
	{246, 3, 662},       // SolarPanel
	{246, 4, 663},       // WindMill
	{246, 5, 666},       // NuclearReactor
	{247, allData, 669}, // UraniumOre
	{248, allData, 670}, // TinOre
	{249, allData, 671}, // CopperOre
	{250, allData, 672}, // MachineBlock
	{250, 1, 673},       // IronFurnace
	{250, 2, 676},       // ElectricFurnace
	{250, 3, 679},       // Macerator
	{250, 4, 682},       // Extractor
	{250, 5, 685},       // Compressor
	{250, 6, 688},       // CanningMachine
	{250, 7, 691},       // Miner
	{250, 8, 694},       // ICPump
	{250, 9, 697},       // Magnetizer
	{250, 10, 700},      // Electrolyzer
	{250, 11, 703},      // Recycler
	{250, 12, 706},      // AdvancedMachineBlock
	{250, 13, 707},      // InductionFurnace
	{250, 14, 710},      // MassFabricator
	{250, 15, 703},      // Terraformer
}

func offsetIdx(blockID, blockData uint8) int {
	return int(blockID)*16 + int(blockData)
}

func (bi *BlockImages) setOffsets() {
	for i := range bi.blockOffsets {
		bi.blockOffsets[i] = 0
	}
	for _, a := range offsetRegistry {
		if a.data == allData {
			start := int(a.id) * 16
			for d := 0; d < 16; d++ {
				bi.blockOffsets[start+d] = int(a.offset)
			}
		} else {
			bi.blockOffsets[offsetIdx(a.id, uint8(a.data))] = int(a.offset)
		}
	}
}
