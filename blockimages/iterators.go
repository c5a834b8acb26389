package blockimages

// faceIterator walks the pixels of a 2B-sized tile, column by column.
// It serves both for source rectangles (deltaY 0) and for the sheared
// destination parallelograms of the N and W faces (deltaY 1 or -1, the
// skew applied every two columns).
type faceIterator struct {
	end    bool
	x, y   int
	pos    int
	size   int
	deltaY int
}

func newFaceIterator(xstart, ystart, deltaY, size int) *faceIterator {
	return &faceIterator{x: xstart, y: ystart, deltaY: deltaY, size: size}
}

func (it *faceIterator) advance() {
	it.pos++
	if it.pos >= it.size*it.size {
		it.end = true
		return
	}
	it.y++
	if it.pos%it.size == 0 {
		it.x++
		it.y -= it.size
		if it.pos%(2*it.size) == it.size {
			it.y += it.deltaY
		}
	}
}

// rotatedFaceIterator is a source-rectangle walk with the tile rotated
// and/or flipped. rot 0 = down then right, 1 = left then down,
// 2 = up then left, 3 = right then up.
type rotatedFaceIterator struct {
	end      bool
	x, y     int
	pos      int
	size     int
	dx1, dy1 int
	dx2, dy2 int
}

func newRotatedFaceIterator(xstart, ystart, rot, size int, flipX bool) *rotatedFaceIterator {
	it := &rotatedFaceIterator{size: size}
	switch rot {
	case 0:
		it.x = xstart
		if flipX {
			it.x = xstart + size - 1
		}
		it.y = ystart
		it.dy1 = 1
		it.dx2 = 1
		if flipX {
			it.dx2 = -1
		}
	case 1:
		it.x = xstart + size - 1
		if flipX {
			it.x = xstart
		}
		it.y = ystart
		it.dx1 = -1
		if flipX {
			it.dx1 = 1
		}
		it.dy2 = 1
	case 2:
		it.x = xstart + size - 1
		if flipX {
			it.x = xstart
		}
		it.y = ystart + size - 1
		it.dy1 = -1
		it.dx2 = -1
		if flipX {
			it.dx2 = 1
		}
	default:
		it.x = xstart
		if flipX {
			it.x = xstart + size - 1
		}
		it.y = ystart + size - 1
		it.dx1 = 1
		if flipX {
			it.dx1 = -1
		}
		it.dy2 = -1
	}
	return it
}

func (it *rotatedFaceIterator) advance() {
	it.pos++
	if it.pos >= it.size*it.size {
		it.end = true
		return
	}
	it.x += it.dx1
	it.y += it.dy1
	if it.pos%it.size == 0 {
		it.x += it.dx2
		it.y += it.dy2
		it.x -= it.dx1 * it.size
		it.y -= it.dy1 * it.size
	}
}

// topFaceIterator walks the diamond-shaped top face of a block cell.
type topFaceIterator struct {
	end  bool
	x, y int
	pos  int
	size int
}

func newTopFaceIterator(xstart, ystart, size int) *topFaceIterator {
	return &topFaceIterator{x: xstart, y: ystart, size: size}
}

func (it *topFaceIterator) advance() {
	if (it.pos/it.size)%2 == 0 {
		m := it.pos % it.size
		if m == it.size-1 {
			it.x += it.size - 1
			it.y -= it.size / 2
		} else if m == it.size-2 {
			it.y++
		} else if m%2 == 0 {
			it.x--
			it.y++
		} else {
			it.x--
		}
	} else {
		m := it.pos % it.size
		if m == 0 {
			it.y++
		} else if m == it.size-1 {
			it.x += it.size - 1
			it.y -= it.size/2 - 1
		} else if m%2 == 0 {
			it.x--
			it.y++
		} else {
			it.x--
		}
	}
	it.pos++
	if it.pos >= it.size*it.size {
		it.end = true
	}
}
