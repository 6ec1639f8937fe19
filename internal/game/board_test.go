package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fillRow fills row y completely, skipping the listed columns.
func fillRow(b *Board, y int, except ...int) {
	skip := make(map[int]bool)
	for _, x := range except {
		skip[x] = true
	}
	for x := 0; x < b.Width; x++ {
		if !skip[x] {
			b.Cells[y][x] = Cell{Filled: true, Color: 1}
		}
	}
}

func TestLockPieceWritesCells(t *testing.T) {
	b := NewBoard()
	p := NewPiece(KindO)
	p.PivotX, p.PivotY = 5, 18

	b.LockPiece(p)

	for _, c := range [][2]int{{5, 18}, {6, 18}, {5, 19}, {6, 19}} {
		cell := b.Cells[c[1]][c[0]]
		assert.True(t, cell.Filled, "(%d,%d) should be locked", c[0], c[1])
		assert.Equal(t, KindO.Color(), cell.Color)
	}
}

func TestLockPieceDiscardsCellsAboveBoard(t *testing.T) {
	b := NewBoard()
	p := NewPiece(KindI)
	p.SetRotation(1) // vertical: rows -1..2 around the pivot
	p.PivotX, p.PivotY = 5, 0

	b.LockPiece(p)

	filled := 0
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			if b.Cells[y][x].Filled {
				filled++
			}
		}
	}
	assert.Equal(t, 3, filled, "only the cells at y >= 0 should be stored")
	assert.True(t, b.Cells[0][5].Filled)
	assert.True(t, b.Cells[1][5].Filled)
	assert.True(t, b.Cells[2][5].Filled)
}

func TestClearLinesNoneLeavesBoardUntouched(t *testing.T) {
	b := NewBoard()
	fillRow(b, 19, 0) // one hole keeps the row incomplete
	b.Cells[10][3] = Cell{Filled: true, Color: 2}

	require.Equal(t, 0, b.ClearLines())

	assert.True(t, b.Cells[10][3].Filled)
	assert.True(t, b.Cells[19][1].Filled)
	assert.False(t, b.Cells[19][0].Filled)
}

func TestClearLinesSingleRowShiftsCellsAbove(t *testing.T) {
	b := NewBoard()
	fillRow(b, 5)
	b.Cells[3][2] = Cell{Filled: true, Color: 4}  // above the cleared row
	b.Cells[10][4] = Cell{Filled: true, Color: 4} // below the cleared row

	require.Equal(t, 1, b.ClearLines())

	assert.False(t, b.Cells[3][2].Filled, "cell above should have moved")
	assert.True(t, b.Cells[4][2].Filled, "cell above shifts down one row")
	assert.True(t, b.Cells[10][4].Filled, "cell below the cleared row stays put")
	for x := 0; x < b.Width; x++ {
		assert.False(t, b.Cells[5][x].Filled, "cleared row is empty at x=%d", x)
	}
}

func TestClearLinesTwoRowsShiftsFromSnapshot(t *testing.T) {
	b := NewBoard()
	fillRow(b, 5)
	fillRow(b, 7)
	b.Cells[0][0] = Cell{Filled: true, Color: 2} // above both cleared rows
	b.Cells[6][0] = Cell{Filled: true, Color: 3} // between them
	b.Cells[8][0] = Cell{Filled: true, Color: 5} // below both

	require.Equal(t, 2, b.ClearLines())

	assert.True(t, b.Cells[2][0].Filled, "top cell falls past both cleared rows")
	assert.Equal(t, 2, b.Cells[2][0].Color)
	assert.True(t, b.Cells[7][0].Filled, "middle cell falls past one cleared row")
	assert.Equal(t, 3, b.Cells[7][0].Color)
	assert.True(t, b.Cells[8][0].Filled, "bottom cell does not move")
	assert.Equal(t, 5, b.Cells[8][0].Color)
	assert.False(t, b.Cells[0][0].Filled)
	assert.False(t, b.Cells[6][0].Filled)
}

func TestClearLinesQuad(t *testing.T) {
	b := NewBoard()
	for y := 16; y < 20; y++ {
		fillRow(b, y)
	}

	require.Equal(t, 4, b.ClearLines())

	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			assert.False(t, b.Cells[y][x].Filled, "(%d,%d)", x, y)
		}
	}
}

func TestTopRowOccupied(t *testing.T) {
	b := NewBoard()
	assert.False(t, b.TopRowOccupied())

	b.Cells[1][3] = Cell{Filled: true, Color: 1}
	assert.False(t, b.TopRowOccupied(), "cells at y >= 1 are safe")

	b.Cells[0][3] = Cell{Filled: true, Color: 1}
	assert.True(t, b.TopRowOccupied())
}
