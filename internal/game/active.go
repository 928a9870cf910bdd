package game

import (
	"github.com/hersh/blockfall/internal/field"
	"github.com/hersh/blockfall/internal/piece"
)

// ActivePiece is the falling piece: its shape in the current orientation and
// the field position of the shape's top-left corner.
type ActivePiece struct {
	Kind  piece.Kind
	Shape piece.Matrix
	X, Y  int
}

// spawnActive places a fresh shape of kind k centered on the top row.
func spawnActive(k piece.Kind, width int) ActivePiece {
	shape := piece.New(k)
	return ActivePiece{
		Kind:  k,
		Shape: shape,
		X:     (width - shape.Width()) / 2,
		Y:     0,
	}
}

func (p *ActivePiece) collides(f *field.Field) bool {
	return f.Collides(p.Shape, p.X, p.Y)
}

// Move shifts the piece one column in dir. An illegal move is undone.
func (p *ActivePiece) Move(f *field.Field, dir int) bool {
	p.X += dir
	if p.collides(f) {
		p.X -= dir
		return false
	}
	return true
}

// Rotate turns the piece a quarter in dir. If the new orientation collides
// it is nudged sideways by 1, -2, 3, -4, ... columns in turn; once the next
// nudge would be wider than the piece the rotation is undone.
func (p *ActivePiece) Rotate(f *field.Field, dir int) bool {
	x := p.X
	p.Shape.Rotate(dir)
	for offset := 1; p.collides(f); offset = nextKick(offset) {
		if abs(offset) > p.Shape.Width() {
			p.Shape.Rotate(-dir)
			p.X = x
			return false
		}
		p.X += offset
	}
	return true
}

// nextKick turns 1 into -2, -2 into 3, 3 into -4 and so on.
func nextKick(offset int) int {
	if offset > 0 {
		return -(offset + 1)
	}
	return -offset + 1
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// Drop moves the piece down one row. It returns true when the piece could
// not move and has landed.
func (p *ActivePiece) Drop(f *field.Field) bool {
	p.Y++
	if p.collides(f) {
		p.Y--
		return true
	}
	return false
}

// HardDrop moves the piece as far down as it goes and returns the number of
// rows travelled.
func (p *ActivePiece) HardDrop(f *field.Field) int {
	start := p.Y
	for !p.collides(f) {
		p.Y++
	}
	p.Y--
	return p.Y - start
}

// GhostY returns the row the piece would land on.
func (p ActivePiece) GhostY(f *field.Field) int {
	y := p.Y
	for !f.Collides(p.Shape, p.X, y+1) {
		y++
	}
	return y
}
