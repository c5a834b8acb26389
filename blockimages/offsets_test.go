package blockimages

import (
	"image"
	"testing"
)

func testBlockImages(bsize int) *BlockImages {
	bi := &BlockImages{b: bsize, rectsize: 4 * bsize}
	bi.setOffsets()
	return bi
}

func TestOffsetsDefaultToDummy(t *testing.T) {
	bi := testBlockImages(2)
	if got := bi.GetOffset(0, 0); got != 0 {
		t.Errorf("air maps to slot %d, want 0", got)
	}
	// id 200 was never assigned
	for data := uint8(0); data < 16; data++ {
		if got := bi.GetOffset(200, data); got != 0 {
			t.Errorf("unassigned id 200 data %d maps to slot %d, want 0", data, got)
		}
	}
}

func TestOffsetsSpotChecks(t *testing.T) {
	bi := testBlockImages(2)
	checks := []struct {
		id, data uint8
		offset   int
	}{
		{1, 0, 1},     // stone
		{1, 9, 1},     // stone ignores data
		{2, 0, 2},     // grass
		{35, 0, 29},   // white wool
		{35, 15, 218}, // black wool
		{50, 0, 43},   // torch on the floor
		{50, 1, 44},   // torch pointing S
	}
	for _, c := range checks {
		if got := bi.GetOffset(c.id, c.data); got != c.offset {
			t.Errorf("GetOffset(%d,%d) = %d, want %d", c.id, c.data, got, c.offset)
		}
	}
}

// The assignment table preserves some long-standing oddities; they are part
// of the expected output and must survive reordering.
func TestOffsetsHistoricalQuirks(t *testing.T) {
	bi := testBlockImages(2)

	// the late id-96 entries override the earlier blanket one
	if got := bi.GetOffset(96, 1); got != 4 {
		t.Errorf("GetOffset(96,1) = %d, want 4", got)
	}
	if got := bi.GetOffset(96, 2); got != 294 {
		t.Errorf("GetOffset(96,2) = %d, want 294", got)
	}
	if got := bi.GetOffset(96, 0); got != 276 {
		t.Errorf("GetOffset(96,0) = %d, want 276", got)
	}
	if got := bi.GetOffset(96, 4); got != 277 {
		t.Errorf("GetOffset(96,4) = %d, want 277", got)
	}

	// id 97 is blanket-mapped to the stone image
	for data := uint8(0); data < 16; data++ {
		if got := bi.GetOffset(97, data); got != 1 {
			t.Errorf("GetOffset(97,%d) = %d, want 1", data, got)
		}
	}

	// id 151 is written twice; the later entry wins
	if got := bi.GetOffset(151, 0); got != 517 {
		t.Errorf("GetOffset(151,0) = %d, want 517", got)
	}

	// id 250 data 15 maps to the recycler image
	if got := bi.GetOffset(250, 15); got != 703 {
		t.Errorf("GetOffset(250,15) = %d, want 703", got)
	}

	// only the low nibble of the data value is used
	if got := bi.GetOffset(96, 18); got != 294 {
		t.Errorf("GetOffset(96,18) = %d, want 294", got)
	}
}

func TestOffsetsStayInRange(t *testing.T) {
	bi := testBlockImages(2)
	for id := 0; id < 256; id++ {
		for data := 0; data < 16; data++ {
			got := bi.GetOffset(uint8(id), uint8(data))
			if got < 0 || got >= NumBlockImages {
				t.Fatalf("GetOffset(%d,%d) = %d, out of range", id, data, got)
			}
		}
	}
}

func TestGetRect(t *testing.T) {
	bi := testBlockImages(4)
	rectsize := bi.RectSize()
	cases := []struct {
		offset int
		want   image.Rectangle
	}{
		{0, image.Rect(0, 0, rectsize, rectsize)},
		{15, image.Rect(15*rectsize, 0, 16*rectsize, rectsize)},
		{16, image.Rect(0, rectsize, rectsize, 2*rectsize)},
		{714, image.Rect(10*rectsize, 44*rectsize, 11*rectsize, 45*rectsize)},
	}
	for _, c := range cases {
		if got := bi.GetRect(c.offset); got != c.want {
			t.Errorf("GetRect(%d) = %v, want %v", c.offset, got, c.want)
		}
	}
}
