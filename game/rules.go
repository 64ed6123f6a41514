package game

type offset struct {
	dx int
	dy int
}

var (
	soldierRange = []offset{
		{1, 0}, {2, 0}, {-1, 0}, {-2, 0},
		{0, -1}, {0, -2}, {0, 1}, {0, 2},
		{1, 1}, {2, 2}, {-1, 1}, {-2, 2},
		{-1, -1}, {-2, -2}, {1, -1}, {2, -2},
	}
	riderRange = []offset{
		{1, 0}, {2, 0}, {3, 0},
		{0, 1}, {0, 2}, {0, -1}, {0, -2},
	}
	leaderRange = []offset{{1, 0}, {0, 1}, {0, -1}}

	directions = []offset{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
)

// AttackRange returns the squares a piece standing on pos can capture on.
// Riders and Leaders face the opponent: Player1 strikes towards +x,
// Player2 towards -x. Squares may lie off the board.
func AttackRange(kind Kind, owner Player, pos Pos) []Pos {
	var offsets []offset
	switch kind {
	case Soldier:
		offsets = soldierRange
	case Rider:
		offsets = riderRange
	case Leader:
		offsets = leaderRange
	}

	forward := 1
	if kind != Soldier && owner == Player2 {
		forward = -1
	}
	squares := make([]Pos, 0, len(offsets))
	for _, o := range offsets {
		squares = append(squares, pos.Add(o.dx*forward, o.dy))
	}
	return squares
}

// CombinedRange is the union of the attack ranges of all the player's pieces.
func CombinedRange(b Board, owner Player) map[Pos]struct{} {
	squares := make(map[Pos]struct{})
	for _, p := range b.Pieces(owner) {
		for _, pos := range AttackRange(p.Kind, owner, p.Pos) {
			squares[pos] = struct{}{}
		}
	}
	return squares
}

// canMove reports whether the piece on from may travel step cells in direction d.
// Every cell on the way must be on the board and empty.
func canMove(b Board, from Pos, d offset, step int) (Pos, bool) {
	to := from
	for i := 0; i < step; i++ {
		to = to.Add(d.dx, d.dy)
		if !InBounds(to) || !b.IsEmpty(to) {
			return to, false
		}
	}
	return to, true
}
