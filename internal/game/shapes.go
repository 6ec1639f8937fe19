package game

// Kind identifies one of the seven tetromino shapes.
type Kind int

const (
	KindI Kind = iota
	KindO
	KindT
	KindS
	KindZ
	KindJ
	KindL
)

const KindCount = 7

// Point is a grid coordinate. In rotation tables it is an offset relative
// to a piece's pivot; elsewhere it is an absolute board cell.
type Point struct {
	X, Y int
}

// rotationTable holds the four rotation states of each kind, each state
// four offsets from the pivot. The O piece is rotation-symmetric so all
// four of its states are identical; I, S and Z alternate between two
// states; T, J and L have four distinct states.
var rotationTable = [KindCount][4][4]Point{
	KindI: {
		{{0, 0}, {-1, 0}, {1, 0}, {2, 0}},
		{{0, 0}, {0, -1}, {0, 1}, {0, 2}},
		{{0, 0}, {-1, 0}, {1, 0}, {2, 0}},
		{{0, 0}, {0, -1}, {0, 1}, {0, 2}},
	},
	KindO: {
		{{0, 0}, {1, 0}, {0, 1}, {1, 1}},
		{{0, 0}, {1, 0}, {0, 1}, {1, 1}},
		{{0, 0}, {1, 0}, {0, 1}, {1, 1}},
		{{0, 0}, {1, 0}, {0, 1}, {1, 1}},
	},
	KindT: {
		{{0, 0}, {-1, 0}, {1, 0}, {0, -1}},
		{{0, 0}, {0, -1}, {0, 1}, {1, 0}},
		{{0, 0}, {-1, 0}, {1, 0}, {0, 1}},
		{{0, 0}, {0, -1}, {0, 1}, {-1, 0}},
	},
	KindS: {
		{{0, 0}, {-1, 0}, {0, -1}, {1, -1}},
		{{0, 0}, {0, -1}, {1, 0}, {1, 1}},
		{{0, 0}, {-1, 0}, {0, -1}, {1, -1}},
		{{0, 0}, {0, -1}, {1, 0}, {1, 1}},
	},
	KindZ: {
		{{0, 0}, {1, 0}, {0, -1}, {-1, -1}},
		{{0, 0}, {0, -1}, {-1, 0}, {-1, 1}},
		{{0, 0}, {1, 0}, {0, -1}, {-1, -1}},
		{{0, 0}, {0, -1}, {-1, 0}, {-1, 1}},
	},
	KindJ: {
		{{0, 0}, {-1, 0}, {1, 0}, {-1, -1}},
		{{0, 0}, {0, -1}, {0, 1}, {1, -1}},
		{{0, 0}, {-1, 0}, {1, 0}, {1, 1}},
		{{0, 0}, {0, -1}, {0, 1}, {-1, 1}},
	},
	KindL: {
		{{0, 0}, {-1, 0}, {1, 0}, {1, -1}},
		{{0, 0}, {0, -1}, {0, 1}, {1, 1}},
		{{0, 0}, {-1, 0}, {1, 0}, {-1, 1}},
		{{0, 0}, {0, -1}, {0, 1}, {-1, -1}},
	},
}

// kindColors maps each kind to an index into the renderer's color table.
var kindColors = [KindCount]int{
	KindI: 6,
	KindO: 3,
	KindT: 5,
	KindS: 2,
	KindZ: 1,
	KindJ: 4,
	KindL: 7,
}

// RotationOffsets returns the four pivot-relative offsets of the given
// kind at the given rotation state. The rotation index is taken modulo 4.
func RotationOffsets(k Kind, rotation int) [4]Point {
	return rotationTable[k][((rotation%4)+4)%4]
}

// Color returns the kind's color index (1-based, 0 means empty).
func (k Kind) Color() int {
	return kindColors[k]
}

func (k Kind) String() string {
	return [KindCount]string{"I", "O", "T", "S", "Z", "J", "L"}[k]
}
