package game

import "capture/meta"

// Player identifies a side. Player1 plays the lowercase pieces and is the
// maximizing side in the heuristic's sign convention.
type Player int

const (
	Player1 Player = iota + 1
	Player2
)

func (p Player) Opponent() Player {
	if p == Player1 {
		return Player2
	}
	return Player1
}

func (p Player) String() string {
	switch p {
	case Player1:
		return "Player1"
	case Player2:
		return "Player2"
	}
	return "Nobody"
}

// Case returns the letter case used by the player's pieces.
func (p Player) Case() string {
	if p == Player1 {
		return "lowercase"
	}
	return "uppercase"
}

type Kind int

const (
	Soldier Kind = iota
	Rider
	Leader
)

// Kinds lists the piece kinds in generation order.
var Kinds = []Kind{Soldier, Rider, Leader}

func (k Kind) String() string {
	switch k {
	case Soldier:
		return "Soldier"
	case Rider:
		return "Rider"
	case Leader:
		return "Leader"
	}
	return "Unknown"
}

// Value is the material worth of a piece of this kind for either owner.
func (k Kind) Value() int {
	switch k {
	case Soldier:
		return 15000
	case Rider:
		return 8000
	case Leader:
		return 5000
	}
	return 0
}

// Step is how many cells the piece travels in one move.
func (k Kind) Step() int {
	if k == Leader {
		return 2
	}
	return 1
}

// Pos is a board coordinate: X is the row, Y the column.
type Pos struct {
	X int
	Y int
}

func (p Pos) Add(dx, dy int) Pos {
	return Pos{X: p.X + dx, Y: p.Y + dy}
}

func (p Pos) Distance(other Pos) int {
	return abs(p.X-other.X) + abs(p.Y-other.Y)
}

func InBounds(p Pos) bool {
	return p.X >= 0 && p.X < meta.BOARD_SIZE && p.Y >= 0 && p.Y < meta.BOARD_SIZE
}

type Piece struct {
	Kind  Kind
	Owner Player
	Pos   Pos
}

// Evaluator scores a board from the given player's perspective.
type Evaluator func(Board, Player) int

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
