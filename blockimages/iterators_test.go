package blockimages

import (
	"image"
	"testing"
)

func TestFaceIteratorWalksSourceTile(t *testing.T) {
	size := 8
	seen := make(map[image.Point]bool)
	count := 0
	for it := newFaceIterator(16, 24, 0, size); !it.end; it.advance() {
		seen[image.Pt(it.x, it.y)] = true
		count++
	}
	if count != size*size {
		t.Fatalf("visited %d pixels, want %d", count, size*size)
	}
	for y := 24; y < 24+size; y++ {
		for x := 16; x < 16+size; x++ {
			if !seen[image.Pt(x, y)] {
				t.Fatalf("pixel (%d,%d) never visited", x, y)
			}
		}
	}
}

func TestFaceIteratorColumnMajorOrder(t *testing.T) {
	size := 4
	it := newFaceIterator(0, 0, 0, size)
	var got []image.Point
	for ; !it.end; it.advance() {
		got = append(got, image.Pt(it.x, it.y))
	}
	// first column top to bottom, then the next column
	want := []image.Point{{0, 0}, {0, 1}, {0, 2}, {0, 3}, {1, 0}}
	for i, w := range want {
		if got[i] != w {
			t.Fatalf("pixel %d = %v, want %v", i, got[i], w)
		}
	}
}

func TestRotatedFaceIteratorWalksSourceTile(t *testing.T) {
	size := 8
	for rot := 0; rot < 4; rot++ {
		for _, flip := range []bool{false, true} {
			seen := make(map[image.Point]bool)
			for it := newRotatedFaceIterator(0, 0, rot, size, flip); !it.end; it.advance() {
				if it.x < 0 || it.x >= size || it.y < 0 || it.y >= size {
					t.Fatalf("rot %d flip %v escaped the tile at (%d,%d)", rot, flip, it.x, it.y)
				}
				seen[image.Pt(it.x, it.y)] = true
			}
			if len(seen) != size*size {
				t.Fatalf("rot %d flip %v visited %d distinct pixels, want %d", rot, flip, len(seen), size*size)
			}
		}
	}
}

// The three block faces must tile the hexagon: each painter touches
// tilesize^2 distinct pixels inside the cell, and no pixel belongs to two
// faces.
func TestBlockFacesDisjoint(t *testing.T) {
	for _, bsize := range []int{2, 3, 8, 16} {
		tilesize := 2 * bsize
		cell := 4 * bsize

		collect := func(collectFn func(visit func(x, y int))) map[image.Point]bool {
			seen := make(map[image.Point]bool)
			collectFn(func(x, y int) {
				if x < 0 || x >= cell || y < 0 || y >= cell {
					t.Fatalf("B=%d: pixel (%d,%d) outside the %dx%d cell", bsize, x, y, cell, cell)
				}
				if seen[image.Pt(x, y)] {
					t.Fatalf("B=%d: pixel (%d,%d) visited twice", bsize, x, y)
				}
				seen[image.Pt(x, y)] = true
			})
			return seen
		}

		nface := collect(func(visit func(x, y int)) {
			for it := newFaceIterator(0, bsize, 1, tilesize); !it.end; it.advance() {
				visit(it.x, it.y)
			}
		})
		wface := collect(func(visit func(x, y int)) {
			for it := newFaceIterator(2*bsize, 2*bsize, -1, tilesize); !it.end; it.advance() {
				visit(it.x, it.y)
			}
		})
		uface := collect(func(visit func(x, y int)) {
			for it := newTopFaceIterator(2*bsize-1, 0, tilesize); !it.end; it.advance() {
				visit(it.x, it.y)
			}
		})

		for _, faces := range []struct {
			name string
			a, b map[image.Point]bool
		}{
			{"N/W", nface, wface},
			{"N/U", nface, uface},
			{"W/U", wface, uface},
		} {
			for p := range faces.a {
				if faces.b[p] {
					t.Fatalf("B=%d: faces %s overlap at %v", bsize, faces.name, p)
				}
			}
		}

		want := tilesize * tilesize
		for name, face := range map[string]map[image.Point]bool{"N": nface, "W": wface, "U": uface} {
			if len(face) != want {
				t.Fatalf("B=%d: face %s covers %d pixels, want %d", bsize, name, len(face), want)
			}
		}
	}
}
