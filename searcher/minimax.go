package searcher

import (
	"fmt"
	"time"

	"capture/experiments/metrics"
	"capture/game"

	"github.com/rs/zerolog/log"
)

type Option func(m *Minimax)

// Minimax is a depth-limited minimax search without bound pruning. Its
// branching is bounded by the sampler instead.
type Minimax struct {
	sampler  Sampler
	evaluate game.Evaluator
}

func WithSampler(sampler Sampler) Option {
	return func(m *Minimax) {
		if sampler != nil {
			m.sampler = sampler
		}
	}
}

func WithEvaluationFn(evaluate game.Evaluator) Option {
	return func(m *Minimax) {
		if evaluate != nil {
			m.evaluate = evaluate
		}
	}
}

func NewMinimax(options ...Option) *Minimax {
	m := &Minimax{ // Default values
		sampler:  StrideSampler{},
		evaluate: game.EvaluatePosition,
	}
	for _, option := range options {
		option(m)
	}
	return m
}

func (m *Minimax) context(player game.Player) Context {
	return Context{Perspective: player, Sampler: m.sampler, Evaluate: m.evaluate}
}

// Decide returns the board player should move to. The depth must be positive:
// at depth 0 there is no action to choose.
func (m *Minimax) Decide(board game.Board, player game.Player, depth int) (game.Board, metrics.SearchMetric) {
	if depth <= 0 {
		panic(fmt.Sprintf("cannot decide at search depth %d", depth))
	}
	start := time.Now()
	ctx := m.context(player)

	children, legal := ctx.expand(board, player)
	action := board // Forced pass if nothing better is found
	best := ctx.worst(player)
	nodes := int64(1)
	for _, child := range children {
		value, n := ctx.search(child, player.Opponent(), depth-1)
		nodes += n
		if ctx.improves(player, value, best) {
			best = value
			action = child
		}
	}

	metric := metrics.SearchMetric{
		Depth:    depth,
		Nodes:    nodes,
		Children: legal,
		Sampled:  len(children),
		Value:    best,
		Duration: time.Since(start),
	}
	log.Debug().Msgf("%s searched %d nodes at depth %d: %d of %d transitions, value %d",
		player, nodes, depth, len(children), legal, best)
	return action, metric
}

// Value returns the minimax value of board with player to move, scored from
// player's perspective, and the number of nodes visited. A depth of 0 or less
// is just the heuristic value.
func (m *Minimax) Value(board game.Board, player game.Player, depth int) (int, int64) {
	return m.context(player).search(board, player, max(depth, 0))
}

func (ctx Context) search(board game.Board, player game.Player, depth int) (int, int64) {
	if depth == 0 {
		return ctx.Evaluate(board, ctx.Perspective), 1
	}

	children, _ := ctx.expand(board, player)
	best := ctx.worst(player)
	nodes := int64(1)
	for _, child := range children {
		value, n := ctx.search(child, player.Opponent(), depth-1)
		nodes += n
		if ctx.improves(player, value, best) {
			best = value
		}
	}
	return best, nodes
}
