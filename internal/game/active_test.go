package game

import (
	"testing"

	"github.com/hersh/blockfall/internal/field"
	"github.com/hersh/blockfall/internal/piece"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fillRows fills rows from..to (inclusive) except the given hole column.
func fillRows(f *field.Field, from, to, hole int) {
	row := make(piece.Matrix, 1)
	row[0] = make([]piece.Cell, 1)
	row[0][0] = piece.Cell(7)
	for y := from; y <= to; y++ {
		for x := 0; x < f.Width(); x++ {
			if x != hole {
				f.Merge(row, x, y)
			}
		}
	}
}

func TestSpawnCentered(t *testing.T) {
	tests := []struct {
		kind piece.Kind
		x    int
	}{
		{piece.I, 3},
		{piece.O, 4},
		{piece.T, 3},
		{piece.Z, 3},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			p := spawnActive(tt.kind, 10)
			assert.Equal(t, tt.x, p.X)
			assert.Equal(t, 0, p.Y)
			assert.Equal(t, tt.kind, p.Kind)
		})
	}
}

func TestMoveStopsAtWalls(t *testing.T) {
	f := field.New(10, 20)
	p := ActivePiece{Kind: piece.O, Shape: piece.New(piece.O), X: 0, Y: 5}

	assert.False(t, p.Move(f, -1))
	assert.Equal(t, 0, p.X)

	for i := 0; i < 8; i++ {
		require.True(t, p.Move(f, 1))
	}
	assert.Equal(t, 8, p.X)
	assert.False(t, p.Move(f, 1))
	assert.Equal(t, 8, p.X)
}

func TestMoveBlockedByLockedCells(t *testing.T) {
	f := field.New(10, 20)
	f.Merge(piece.New(piece.O), 6, 5)
	p := ActivePiece{Kind: piece.O, Shape: piece.New(piece.O), X: 4, Y: 5}

	assert.False(t, p.Move(f, 1))
	assert.Equal(t, 4, p.X)
	assert.True(t, p.Move(f, -1))
}

func TestRotateInOpenField(t *testing.T) {
	f := field.New(10, 20)
	p := spawnActive(piece.T, 10)
	p.Y = 5
	x := p.X

	require.True(t, p.Rotate(f, 1))
	assert.Equal(t, x, p.X)
	want := piece.New(piece.T)
	want.Rotate(1)
	assert.Equal(t, want, p.Shape)
}

func TestRotateKicksOffLeftWall(t *testing.T) {
	f := field.New(10, 20)
	// vertical I hugging the left wall: its filled column is local 1
	p := ActivePiece{Kind: piece.I, Shape: piece.New(piece.I), X: -1, Y: 5}
	require.False(t, p.collides(f))

	require.True(t, p.Rotate(f, 1))
	assert.Equal(t, 0, p.X)
	assert.False(t, p.collides(f))
	assert.Equal(t, piece.Matrix{
		{0, 0, 0, 0},
		{5, 5, 5, 5},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}, p.Shape)
}

func TestRotateKicksOffRightWall(t *testing.T) {
	f := field.New(10, 20)
	p := ActivePiece{Kind: piece.I, Shape: piece.New(piece.I), X: 8, Y: 5}
	require.False(t, p.collides(f))

	// nudges land on 9, 7, 10 and finally 6
	require.True(t, p.Rotate(f, 1))
	assert.Equal(t, 6, p.X)
	assert.False(t, p.collides(f))
}

func TestRotateRevertsWhenNoKickFits(t *testing.T) {
	f := field.New(10, 20)
	fillRows(f, 16, 19, 4)
	p := ActivePiece{Kind: piece.I, Shape: piece.New(piece.I), X: 3, Y: 16}
	require.False(t, p.collides(f))

	assert.False(t, p.Rotate(f, 1))
	assert.Equal(t, 3, p.X)
	assert.Equal(t, 16, p.Y)
	assert.Equal(t, piece.New(piece.I), p.Shape)

	assert.False(t, p.Rotate(f, -1))
	assert.Equal(t, piece.New(piece.I), p.Shape)
}

func TestNextKick(t *testing.T) {
	got := []int{1}
	for i := 0; i < 5; i++ {
		got = append(got, nextKick(got[len(got)-1]))
	}
	assert.Equal(t, []int{1, -2, 3, -4, 5, -6}, got)
}

func TestDrop(t *testing.T) {
	f := field.New(10, 20)
	p := ActivePiece{Kind: piece.O, Shape: piece.New(piece.O), X: 4, Y: 17}

	assert.False(t, p.Drop(f))
	assert.Equal(t, 18, p.Y)
	assert.True(t, p.Drop(f))
	assert.Equal(t, 18, p.Y)
}

func TestHardDropLandsOnFloor(t *testing.T) {
	for _, k := range piece.Kinds {
		t.Run(k.String(), func(t *testing.T) {
			f := field.New(10, 20)
			p := spawnActive(k, 10)
			rows := p.HardDrop(f)

			assert.Equal(t, 20-1-p.Shape.Bottom(), p.Y)
			assert.Equal(t, p.Y, rows)
			assert.False(t, p.collides(f))
			assert.True(t, f.Collides(p.Shape, p.X, p.Y+1))
		})
	}
}

func TestHardDropLandsOnStack(t *testing.T) {
	f := field.New(10, 20)
	fillRows(f, 15, 19, 0)
	p := ActivePiece{Kind: piece.O, Shape: piece.New(piece.O), X: 4, Y: 0}

	p.HardDrop(f)
	assert.Equal(t, 13, p.Y)
}

func TestGhostY(t *testing.T) {
	f := field.New(10, 20)
	p := spawnActive(piece.T, 10)
	assert.Equal(t, 17, p.GhostY(f))
	assert.Equal(t, 0, p.Y, "ghost must not move the piece")

	fillRows(f, 10, 19, 0)
	assert.Equal(t, 7, p.GhostY(f))
}
