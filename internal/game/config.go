package game

import "time"

const (
	BoardWidth  = 10
	BoardHeight = 20
)

const (
	// InitialFallSpeed is how long a piece sits on a row before gravity
	// pulls it down one step at the start of a session.
	InitialFallSpeed = 500 * time.Millisecond

	// SpeedDecay is applied to the fall speed after every locked piece.
	SpeedDecay = 0.995

	// MinFallSpeed is the floor the decay is clamped to.
	MinFallSpeed = 80 * time.Millisecond

	// MoveCooldown is the minimum gap between accepted input intents.
	MoveCooldown = 80 * time.Millisecond
)

// KickOffsets are the horizontal shifts tried, in order, when an in-place
// rotation collides. The same ladder applies to every piece kind.
var KickOffsets = []int{1, -1, 2, -2}
