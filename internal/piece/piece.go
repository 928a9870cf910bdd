package piece

import "fmt"

// Cell is a single grid value. Zero is empty, 1..7 name the owning kind.
type Cell uint8

const Empty Cell = 0

type Kind uint8

const (
	T Kind = iota + 1
	O
	L
	J
	I
	S
	Z
)

// Kinds lists every kind in bag order.
var Kinds = []Kind{T, J, L, O, S, Z, I}

var kindNames = map[Kind]string{
	T: "T",
	O: "O",
	L: "L",
	J: "J",
	I: "I",
	S: "S",
	Z: "Z",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Valid reports whether k is one of the seven tetrominoes.
func (k Kind) Valid() bool {
	return k >= T && k <= Z
}

// Cell returns the value a kind writes into the field.
func (k Kind) Cell() Cell {
	return Cell(k)
}

var shapes = map[Kind][][]Cell{
	T: {
		{0, 0, 0},
		{1, 1, 1},
		{0, 1, 0},
	},
	O: {
		{2, 2},
		{2, 2},
	},
	L: {
		{0, 3, 0},
		{0, 3, 0},
		{0, 3, 3},
	},
	J: {
		{0, 4, 0},
		{0, 4, 0},
		{4, 4, 0},
	},
	I: {
		{0, 5, 0, 0},
		{0, 5, 0, 0},
		{0, 5, 0, 0},
		{0, 5, 0, 0},
	},
	S: {
		{0, 6, 6},
		{6, 6, 0},
		{0, 0, 0},
	},
	Z: {
		{7, 7, 0},
		{0, 7, 7},
		{0, 0, 0},
	},
}

// New returns a freshly allocated shape for k. Callers own the result and
// may rotate it in place.
func New(k Kind) Matrix {
	src, ok := shapes[k]
	if !ok {
		panic(fmt.Sprintf("piece: unknown kind %d", uint8(k)))
	}
	m := make(Matrix, len(src))
	for i := range src {
		m[i] = make([]Cell, len(src[i]))
		copy(m[i], src[i])
	}
	return m
}
