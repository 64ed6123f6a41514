package game

import "math"

const (
	WIN  = 1_000_000
	LOSS = -WIN
)

// EvaluatePosition scores the board from player's perspective. The terms are
// summed in Player1's favour and negated for Player2:
//   - proximity: each Player1 piece loses value/100 per step to its nearest enemy
//   - exposure: each Player1 piece inside Player2's attack range loses its value
//   - material: Player1 material minus Player2 material
//
// A side without pieces short-circuits to WIN or LOSS.
func EvaluatePosition(b Board, player Player) int {
	if score, over := terminalScore(b, player); over {
		return score
	}

	mine := b.Pieces(Player1)
	theirs := b.Pieces(Player2)
	h := proximityScore(mine, theirs) + exposureScore(b, mine) + materialScore(mine, theirs)

	return orient(h, player)
}

// EvaluateMaterial only tallies material.
func EvaluateMaterial(b Board, player Player) int {
	if score, over := terminalScore(b, player); over {
		return score
	}
	return orient(materialScore(b.Pieces(Player1), b.Pieces(Player2)), player)
}

func terminalScore(b Board, player Player) (int, bool) {
	if b.Count(player) == 0 {
		return LOSS, true
	}
	if b.Count(player.Opponent()) == 0 {
		return WIN, true
	}
	return 0, false
}

func proximityScore(mine, theirs []Piece) int {
	score := 0
	for _, p := range mine {
		nearest := math.MaxInt
		for _, enemy := range theirs {
			nearest = min(nearest, p.Pos.Distance(enemy.Pos))
		}
		score -= nearest * p.Kind.Value() / 100
	}
	return score
}

func exposureScore(b Board, mine []Piece) int {
	threatened := CombinedRange(b, Player2)
	score := 0
	for _, p := range mine {
		if _, ok := threatened[p.Pos]; ok {
			score -= p.Kind.Value()
		}
	}
	return score
}

func materialScore(mine, theirs []Piece) int {
	score := 0
	for _, p := range mine {
		score += p.Kind.Value()
	}
	for _, p := range theirs {
		score -= p.Kind.Value()
	}
	return score
}

func orient(score int, player Player) int {
	if player == Player2 {
		return -score
	}
	return score
}
