package searcher

import (
	"capture/experiments/metrics"
	"capture/game"
)

// Sampler picks which children of a node the search explores.
type Sampler interface {
	Sample(children []game.Board) []game.Board
}

type Searcher interface {
	Decide(board game.Board, player game.Player, depth int) (game.Board, metrics.SearchMetric)
}

// Context is fixed for a whole root search and passed down every call.
// Leaves are always scored from Perspective, the player who moves at the root.
type Context struct {
	Perspective game.Player
	Sampler     Sampler
	Evaluate    game.Evaluator
}

// expand returns the sampled children of board. A player without any legal
// transition passes: the unchanged board is the only child.
func (ctx Context) expand(board game.Board, player game.Player) (children []game.Board, legal int) {
	transitions := game.Transitions(board, player)
	if len(transitions) == 0 {
		return []game.Board{board}, 0
	}
	return ctx.Sampler.Sample(transitions), len(transitions)
}

// improves reports whether value beats best for the node's side. Equal values
// never replace best, so the first child seen wins ties.
func (ctx Context) improves(player game.Player, value, best int) bool {
	if player == ctx.Perspective {
		return value > best
	}
	return value < best
}

func (ctx Context) worst(player game.Player) int {
	if player == ctx.Perspective {
		return MIN_VALUE
	}
	return MAX_VALUE
}
