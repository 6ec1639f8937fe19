package game

import (
	"math/rand"
	"time"
)

// Intent is a discrete player input handed to the session. Unknown
// intents are ignored.
type Intent int

const (
	IntentLeft Intent = iota
	IntentRight
	IntentSoftDrop
	IntentRotate
	IntentHardDrop
)

// Session owns one run of the game: the board, the falling and preview
// pieces, score, and the fall/cooldown timers. It performs no I/O; the
// caller feeds it elapsed time and intents and reads its state each
// frame. Given the same seed and inputs, a session is deterministic.
type Session struct {
	Board   *Board
	Current *Piece
	Next    *Piece
	Score   int
	Lost    bool

	fallSpeed   time.Duration
	fallTimer   time.Duration
	cooldown    time.Duration
	lockPending bool
	rng         *rand.Rand
}

// NewSession creates a session with a seeded piece source. The same seed
// reproduces the same piece sequence.
func NewSession(seed int64) *Session {
	return NewSessionWithRand(rand.New(rand.NewSource(seed)))
}

// NewSessionWithRand creates a session drawing pieces from the given
// source.
func NewSessionWithRand(rng *rand.Rand) *Session {
	s := &Session{rng: rng}
	s.Reset()
	return s
}

// Reset returns the session to its starting state, keeping the piece
// source.
func (s *Session) Reset() {
	s.Board = NewBoard()
	s.Current = s.spawn()
	s.Next = s.spawn()
	s.Score = 0
	s.Lost = false
	s.fallSpeed = InitialFallSpeed
	s.fallTimer = 0
	s.cooldown = MoveCooldown
	s.lockPending = false
}

// spawn draws a kind uniformly at random. No bag: repeats are possible.
func (s *Session) spawn() *Piece {
	return NewPiece(Kind(s.rng.Intn(KindCount)))
}

// Advance moves the session forward by the given elapsed time. At most
// one gravity step happens per call; when the step collides, the piece
// locks in place and the next one is promoted.
func (s *Session) Advance(elapsed time.Duration) {
	if s.Lost {
		return
	}

	s.fallTimer += elapsed
	s.cooldown += elapsed

	if s.fallTimer >= s.fallSpeed {
		s.fallTimer = 0
		if !TryMove(s.Current, s.Board, 0, 1) {
			s.lockPending = true
		}
	}

	if s.lockPending {
		s.lock()
	}
}

// Handle applies one input intent, rate-limited by the move cooldown.
// Returns whether the intent changed the piece. A rejected or invalid
// intent leaves all state untouched.
func (s *Session) Handle(in Intent) bool {
	if s.Lost || s.cooldown < MoveCooldown {
		return false
	}

	moved := false
	switch in {
	case IntentLeft:
		moved = TryMove(s.Current, s.Board, -1, 0)
	case IntentRight:
		moved = TryMove(s.Current, s.Board, 1, 0)
	case IntentSoftDrop:
		moved = TryMove(s.Current, s.Board, 0, 1)
	case IntentRotate:
		moved = TryRotate(s.Current, s.Board)
	case IntentHardDrop:
		for TryMove(s.Current, s.Board, 0, 1) {
		}
		s.lockPending = true
		moved = true
	default:
		return false
	}

	if moved {
		s.cooldown = 0
	}
	if s.lockPending {
		s.lock()
	}
	return moved
}

// lock commits the current piece, clears rows, scores, promotes the
// preview piece, ramps the speed, and checks for loss.
func (s *Session) lock() {
	s.lockPending = false

	s.Board.LockPiece(s.Current)
	s.Score += ScoreForRows(s.Board.ClearLines())

	s.Current = s.Next
	s.Next = s.spawn()

	s.fallSpeed = time.Duration(float64(s.fallSpeed) * SpeedDecay)
	if s.fallSpeed < MinFallSpeed {
		s.fallSpeed = MinFallSpeed
	}

	if s.Board.TopRowOccupied() {
		s.Lost = true
	}
}

// ScoreForRows returns the points awarded for clearing n rows in one
// lock.
func ScoreForRows(n int) int {
	switch {
	case n >= 4:
		return 800
	case n == 3:
		return 500
	case n == 2:
		return 300
	case n == 1:
		return 100
	}
	return 0
}

// FallSpeed returns the current gravity interval.
func (s *Session) FallSpeed() time.Duration {
	return s.fallSpeed
}

// GhostRow returns the pivot row the current piece would land on if
// dropped straight down. Used by renderers to draw the landing preview.
func (s *Session) GhostRow() int {
	ghost := *s.Current
	for TryMove(&ghost, s.Board, 0, 1) {
	}
	return ghost.PivotY
}
