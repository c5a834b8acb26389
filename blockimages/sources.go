package blockimages

import (
	"fmt"
	"path/filepath"
)

// Config names every input texture file the atlas is built from.
type Config struct {
	B        int
	CacheDir string

	Terrain   string
	Fire      string
	EndPortal string

	BuildcraftTextures string

	IC2Block0    string
	IC2Cable     string
	IC2Electric  string
	IC2Generator string
	IC2Machine   string
	IC2Machine2  string
	IC2Personal  string
}

// DefaultConfig points every input at its conventional file name under imgpath.
func DefaultConfig(b int, imgpath string) Config {
	return Config{
		B:        b,
		CacheDir: imgpath,

		Terrain:   filepath.Join(imgpath, "terrain.png"),
		Fire:      filepath.Join(imgpath, "fire.png"),
		EndPortal: filepath.Join(imgpath, "endportal.png"),

		BuildcraftTextures: filepath.Join(imgpath, "block_textures.png"),

		IC2Block0:    filepath.Join(imgpath, "block_0.png"),
		IC2Cable:     filepath.Join(imgpath, "block_cable.png"),
		IC2Electric:  filepath.Join(imgpath, "block_electric.png"),
		IC2Generator: filepath.Join(imgpath, "block_generator.png"),
		IC2Machine:   filepath.Join(imgpath, "block_machine.png"),
		IC2Machine2:  filepath.Join(imgpath, "block_machine2.png"),
		IC2Personal:  filepath.Join(imgpath, "block_personal.png"),
	}
}

func (cfg Config) cacheFile() string {
	return filepath.Join(cfg.CacheDir, fmt.Sprintf("blocks-%d.png", cfg.B))
}

// textureSource draws one mod's (or vanilla's) block images into the atlas.
// A required source aborts the whole build on failure; the others just leave
// their slots at the transparent dummy.
type textureSource interface {
	name() string
	required() bool
	draw(bi *BlockImages) error
}

func (cfg Config) sources() []textureSource {
	return []textureSource{
		vanillaSource{cfg},
		buildcraftSource{cfg},
		ic2Source{cfg},
	}
}

type vanillaSource struct{ cfg Config }

func (vanillaSource) name() string   { return "vanilla" }
func (vanillaSource) required() bool { return true }
func (s vanillaSource) draw(bi *BlockImages) error {
	return bi.drawVanilla(s.cfg.Terrain, s.cfg.Fire, s.cfg.EndPortal)
}

type buildcraftSource struct{ cfg Config }

func (buildcraftSource) name() string   { return "Buildcraft" }
func (buildcraftSource) required() bool { return false }
func (s buildcraftSource) draw(bi *BlockImages) error {
	return bi.drawBuildcraft(s.cfg.BuildcraftTextures)
}

type ic2Source struct{ cfg Config }

func (ic2Source) name() string   { return "IndustrialCraft" }
func (ic2Source) required() bool { return false }
func (s ic2Source) draw(bi *BlockImages) error {
	return bi.drawIndustrialCraft(s.cfg.IC2Block0, s.cfg.IC2Cable, s.cfg.IC2Electric,
		s.cfg.IC2Generator, s.cfg.IC2Machine, s.cfg.IC2Machine2, s.cfg.IC2Personal)
}
