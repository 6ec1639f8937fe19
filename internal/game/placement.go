package game

// ValidPlacement reports whether every cell of the piece is inside the
// side and bottom bounds and free of locked cells. There is no top bound:
// cells above the visible grid are legal so pieces can enter from above.
func ValidPlacement(p *Piece, b *Board) bool {
	for _, c := range p.Cells() {
		if c.X < 0 || c.X >= b.Width || c.Y >= b.Height {
			return false
		}
		if c.Y >= 0 && b.Cells[c.Y][c.X].Filled {
			return false
		}
	}
	return true
}

// TryMove translates the piece and keeps the move only if the result is a
// valid placement. Returns whether the move was kept.
func TryMove(p *Piece, b *Board, dx, dy int) bool {
	p.Translate(dx, dy)
	if ValidPlacement(p, b) {
		return true
	}
	p.Translate(-dx, -dy)
	return false
}

// TryRotate advances the piece's rotation by one state, walking the kick
// ladder if the in-place rotation collides. The first offset that yields
// a valid placement wins; if none does, both rotation and pivot are
// restored. Kicks are horizontal only and identical for every kind.
func TryRotate(p *Piece, b *Board) bool {
	prev := p.Rotation
	p.SetRotation(p.Rotation + 1)

	if ValidPlacement(p, b) {
		return true
	}
	for _, dx := range KickOffsets {
		p.Translate(dx, 0)
		if ValidPlacement(p, b) {
			return true
		}
		p.Translate(-dx, 0)
	}

	p.SetRotation(prev)
	return false
}
