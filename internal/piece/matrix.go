package piece

// Matrix is a square grid of cells indexed [row][col].
type Matrix [][]Cell

func (m Matrix) Height() int {
	return len(m)
}

func (m Matrix) Width() int {
	if len(m) == 0 {
		return 0
	}
	return len(m[0])
}

// Clone returns a deep copy of m.
func (m Matrix) Clone() Matrix {
	out := make(Matrix, len(m))
	for i := range m {
		out[i] = make([]Cell, len(m[i]))
		copy(out[i], m[i])
	}
	return out
}

// Rotate turns m a quarter in place: clockwise for dir > 0, counter-clockwise
// otherwise. The matrix must be square.
func (m Matrix) Rotate(dir int) {
	for y := range m {
		for x := 0; x < y; x++ {
			m[x][y], m[y][x] = m[y][x], m[x][y]
		}
	}
	if dir > 0 {
		for _, row := range m {
			for i, j := 0, len(row)-1; i < j; i, j = i+1, j-1 {
				row[i], row[j] = row[j], row[i]
			}
		}
		return
	}
	for i, j := 0, len(m)-1; i < j; i, j = i+1, j-1 {
		m[i], m[j] = m[j], m[i]
	}
}

// Each calls fn for every occupied cell with its local offset.
func (m Matrix) Each(fn func(x, y int, c Cell)) {
	for y, row := range m {
		for x, c := range row {
			if c != Empty {
				fn(x, y, c)
			}
		}
	}
}

// Bottom returns the index of the lowest row holding an occupied cell, or -1.
func (m Matrix) Bottom() int {
	for y := len(m) - 1; y >= 0; y-- {
		for _, c := range m[y] {
			if c != Empty {
				return y
			}
		}
	}
	return -1
}
