package game

// Cell is one board position: empty, or filled with a color index.
type Cell struct {
	Filled bool
	Color  int
}

// Board is the locked-cell store, a dense Height x Width grid. Row 0 is
// the top; gravity moves cells toward larger Y.
type Board struct {
	Cells  [][]Cell
	Width  int
	Height int
}

func NewBoard() *Board {
	cells := make([][]Cell, BoardHeight)
	for i := range cells {
		cells[i] = make([]Cell, BoardWidth)
	}
	return &Board{
		Cells:  cells,
		Width:  BoardWidth,
		Height: BoardHeight,
	}
}

// LockPiece writes the piece's cells into the board permanently. Cells
// outside the grid (including above the top) are discarded.
func (b *Board) LockPiece(p *Piece) {
	for _, c := range p.Cells() {
		if c.X >= 0 && c.X < b.Width && c.Y >= 0 && c.Y < b.Height {
			b.Cells[c.Y][c.X] = Cell{Filled: true, Color: p.Color()}
		}
	}
}

// ClearLines removes every completed row and shifts the rows above it
// down. The surviving rows are collected from a snapshot of the current
// grid and swapped in as a whole, so no shift can overwrite a row that
// has not been read yet. Returns the number of rows cleared.
func (b *Board) ClearLines() int {
	cleared := 0
	kept := make([][]Cell, 0, b.Height)

	for y := b.Height - 1; y >= 0; y-- {
		full := true
		for x := 0; x < b.Width; x++ {
			if !b.Cells[y][x].Filled {
				full = false
				break
			}
		}
		if full {
			cleared++
		} else {
			kept = append([][]Cell{b.Cells[y]}, kept...)
		}
	}

	if cleared == 0 {
		return 0
	}

	for len(kept) < b.Height {
		kept = append([][]Cell{make([]Cell, b.Width)}, kept...)
	}
	b.Cells = kept
	return cleared
}

// TopRowOccupied reports whether any locked cell sits in the topmost
// visible row. A lock that leaves the stack this high ends the session.
func (b *Board) TopRowOccupied() bool {
	for x := 0; x < b.Width; x++ {
		if b.Cells[0][x].Filled {
			return true
		}
	}
	return false
}
