package field

import (
	"fmt"

	"github.com/hersh/blockfall/internal/piece"
)

const (
	DefaultWidth  = 10
	DefaultHeight = 20
)

// Field is the arena holding every locked cell. Its size is fixed at
// creation.
type Field struct {
	cells  [][]piece.Cell
	width  int
	height int
}

func New(width, height int) *Field {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("field: invalid size %dx%d", width, height))
	}
	cells := make([][]piece.Cell, height)
	for i := range cells {
		cells[i] = make([]piece.Cell, width)
	}
	return &Field{
		cells:  cells,
		width:  width,
		height: height,
	}
}

func (f *Field) Width() int  { return f.width }
func (f *Field) Height() int { return f.height }

// At returns the cell at (x, y). Out-of-range coordinates read as empty.
func (f *Field) At(x, y int) piece.Cell {
	if !f.inside(x, y) {
		return piece.Empty
	}
	return f.cells[y][x]
}

// Row returns a copy of row y.
func (f *Field) Row(y int) []piece.Cell {
	row := make([]piece.Cell, f.width)
	copy(row, f.cells[y])
	return row
}

func (f *Field) inside(x, y int) bool {
	return x >= 0 && x < f.width && y >= 0 && y < f.height
}

// Collides reports whether m placed with its top-left corner at (x, y)
// overlaps a locked cell or leaves the field on any side.
func (f *Field) Collides(m piece.Matrix, x, y int) bool {
	for my, row := range m {
		for mx, c := range row {
			if c == piece.Empty {
				continue
			}
			fx, fy := x+mx, y+my
			if !f.inside(fx, fy) {
				return true
			}
			if f.cells[fy][fx] != piece.Empty {
				return true
			}
		}
	}
	return false
}

// Merge writes the occupied cells of m into the field. Cells outside the
// field are dropped.
func (f *Field) Merge(m piece.Matrix, x, y int) {
	m.Each(func(mx, my int, c piece.Cell) {
		fx, fy := x+mx, y+my
		if f.inside(fx, fy) {
			f.cells[fy][fx] = c
		}
	})
}

func (f *Field) rowFull(y int) bool {
	for _, c := range f.cells[y] {
		if c == piece.Empty {
			return false
		}
	}
	return true
}

// Sweep removes every full row, shifting the rows above it down and
// inserting empty rows at the top. It returns the number of rows removed.
func (f *Field) Sweep() int {
	cleared := 0
	for y := f.height - 1; y >= 0; y-- {
		if !f.rowFull(y) {
			continue
		}
		row := f.cells[y]
		copy(f.cells[1:y+1], f.cells[:y])
		clear(row)
		f.cells[0] = row
		cleared++
		// the row that slid into y has not been checked yet
		y++
	}
	return cleared
}

// Clear empties every cell.
func (f *Field) Clear() {
	for _, row := range f.cells {
		clear(row)
	}
}

// Filled returns how many cells are occupied.
func (f *Field) Filled() int {
	n := 0
	for _, row := range f.cells {
		for _, c := range row {
			if c != piece.Empty {
				n++
			}
		}
	}
	return n
}

// ToFlat returns the field as a row-major slice of cell values (0 = empty).
func (f *Field) ToFlat() []int {
	flat := make([]int, f.height*f.width)
	for y := 0; y < f.height; y++ {
		for x := 0; x < f.width; x++ {
			flat[y*f.width+x] = int(f.cells[y][x])
		}
	}
	return flat
}

// FromFlat rebuilds a field from a row-major slice. Missing entries are
// empty and values outside 0..7 are treated as empty.
func FromFlat(flat []int, width, height int) *Field {
	f := New(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			idx := y*width + x
			if idx >= len(flat) {
				return f
			}
			if v := flat[idx]; v > 0 && piece.Kind(v).Valid() {
				f.cells[y][x] = piece.Cell(v)
			}
		}
	}
	return f
}
