package game

// Piece is a positioned, rotated instance of a shape. Movement and
// rotation mutate it in place without validation; callers go through the
// placement functions to keep it on the board.
type Piece struct {
	Kind     Kind
	PivotX   int
	PivotY   int
	Rotation int
}

// NewPiece spawns a piece of the given kind at the top-center column with
// rotation 0.
func NewPiece(k Kind) *Piece {
	return &Piece{
		Kind:   k,
		PivotX: BoardWidth / 2,
		PivotY: 0,
	}
}

// Cells returns the four absolute board coordinates the piece occupies in
// its current position and rotation. Cells above the board (negative Y)
// are included; the board ignores them when locking.
func (p *Piece) Cells() [4]Point {
	offsets := RotationOffsets(p.Kind, p.Rotation)
	var cells [4]Point
	for i, o := range offsets {
		cells[i] = Point{p.PivotX + o.X, p.PivotY + o.Y}
	}
	return cells
}

// Translate shifts the pivot by the given deltas.
func (p *Piece) Translate(dx, dy int) {
	p.PivotX += dx
	p.PivotY += dy
}

// SetRotation sets the rotation state, wrapping into [0, 4).
func (p *Piece) SetRotation(r int) {
	p.Rotation = ((r % 4) + 4) % 4
}

// Color returns the piece's color index.
func (p *Piece) Color() int {
	return p.Kind.Color()
}
