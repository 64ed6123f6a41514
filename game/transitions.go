package game

import "golang.org/x/exp/slices"

type placement struct {
	board Board
	piece Piece
}

// Transitions returns every distinct board the player can reach in one turn.
// A turn is a move and/or an attack by a single piece, in either order.
// The order of the result is deterministic: pieces by kind then row, and for
// each piece the move-first outcomes before the attack-first ones.
func Transitions(b Board, player Player) []Board {
	var candidates []Board
	for _, p := range b.Pieces(player) {
		candidates = append(candidates, moveThenAttack(b, p)...)
		candidates = append(candidates, attackThenMove(b, p)...)
	}
	return dedupe(candidates)
}

// IsLegal reports whether next is reachable from b in one turn of player.
func IsLegal(b Board, player Player, next Board) bool {
	return slices.Contains(Transitions(b, player), next)
}

func moveThenAttack(b Board, p Piece) []Board {
	var states []Board
	for _, m := range moves(b, p) {
		states = append(states, captures(m.board, m.piece)...)
		states = append(states, m.board)
	}
	return states
}

func attackThenMove(b Board, p Piece) []Board {
	var states []Board
	for _, captured := range captures(b, p) {
		states = append(states, captured)
		for _, m := range moves(captured, p) {
			states = append(states, m.board)
		}
	}
	return states
}

func moves(b Board, p Piece) []placement {
	var placements []placement
	for _, d := range directions {
		to, ok := canMove(b, p.Pos, d, p.Kind.Step())
		if !ok {
			continue
		}
		moved := p
		moved.Pos = to
		placements = append(placements, placement{board: b.move(p.Pos, to), piece: moved})
	}
	return placements
}

// captures lists the boards where the piece removed one opponent piece in range.
func captures(b Board, p Piece) []Board {
	reach := AttackRange(p.Kind, p.Owner, p.Pos)
	var states []Board
	for _, target := range b.PiecesOf(p.Owner.Opponent()) {
		if slices.Contains(reach, target) {
			states = append(states, b.Remove(target))
		}
	}
	return states
}

func dedupe(boards []Board) []Board {
	seen := make(map[Board]struct{}, len(boards))
	unique := make([]Board, 0, len(boards))
	for _, b := range boards {
		if _, ok := seen[b]; ok {
			continue
		}
		seen[b] = struct{}{}
		unique = append(unique, b)
	}
	return unique
}
