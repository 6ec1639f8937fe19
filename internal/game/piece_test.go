package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPieceSpawnsTopCenter(t *testing.T) {
	for _, k := range allKinds() {
		p := NewPiece(k)
		assert.Equal(t, BoardWidth/2, p.PivotX)
		assert.Equal(t, 0, p.PivotY)
		assert.Equal(t, 0, p.Rotation)
	}
}

func TestCellsAreFourDistinct(t *testing.T) {
	for _, k := range allKinds() {
		p := NewPiece(k)
		p.PivotX, p.PivotY = 5, 5
		for r := 0; r < 4; r++ {
			p.SetRotation(r)
			seen := make(map[Point]bool)
			for _, c := range p.Cells() {
				seen[c] = true
			}
			require.Len(t, seen, 4, "kind %s rotation %d", k, r)
		}
	}
}

func TestCellsFollowPivot(t *testing.T) {
	p := NewPiece(KindI) // horizontal at rotation 0
	p.PivotX, p.PivotY = 5, 0

	xs := make(map[int]bool)
	for _, c := range p.Cells() {
		assert.Equal(t, 0, c.Y)
		xs[c.X] = true
	}
	assert.Equal(t, map[int]bool{4: true, 5: true, 6: true, 7: true}, xs)
}

func TestTranslate(t *testing.T) {
	p := NewPiece(KindT)
	p.Translate(-2, 3)
	assert.Equal(t, BoardWidth/2-2, p.PivotX)
	assert.Equal(t, 3, p.PivotY)
}

func TestSetRotationWraps(t *testing.T) {
	p := NewPiece(KindJ)

	p.SetRotation(5)
	assert.Equal(t, 1, p.Rotation)

	p.SetRotation(-1)
	assert.Equal(t, 3, p.Rotation)

	p.SetRotation(4)
	assert.Equal(t, 0, p.Rotation)
}
