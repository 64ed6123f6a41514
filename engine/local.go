package engine

import (
	"errors"
	"fmt"
	"io"

	"capture/experiments/metrics"
	"capture/game"
	"capture/meta"

	"github.com/rs/zerolog/log"
)

type Option func(e *Engine)

// WithOutput sets where boards are printed after every move.
func WithOutput(out io.Writer) Option {
	return func(e *Engine) {
		if out != nil {
			e.out = out
		}
	}
}

// WithThreshold stops the game once the searches visited this many nodes.
func WithThreshold(nodes int64) Option {
	return func(e *Engine) {
		if nodes > 0 {
			e.threshold = nodes
		}
	}
}

// WithAdaptiveDepth turns the material deepening on or off.
func WithAdaptiveDepth(adaptive bool) Option {
	return func(e *Engine) {
		e.tuner = NewDepthTuner(adaptive)
	}
}

func WithCollector(collector metrics.Collector) Option {
	return func(e *Engine) {
		if collector != nil {
			e.metrics = collector
		}
	}
}

type Engine struct {
	Board     game.Board
	Agents    []Agent // Indexed by player ID - 1
	depth     int
	step      int
	nodes     int64
	threshold int64
	tuner     *DepthTuner
	metrics   metrics.Collector
	out       io.Writer
}

func LocalEngine(board game.Board, agents []Agent, depth int, options ...Option) *Engine {
	if len(agents) != 2 {
		panic("need exactly two agents")
	}
	if depth <= 0 {
		panic(fmt.Sprintf("search depth must be positive, got %d", depth))
	}

	e := &Engine{
		Board:     board,
		Agents:    agents,
		depth:     depth,
		threshold: meta.DEFAULT_THRESHOLD * 1_000_000,
		tuner:     NewDepthTuner(true),
		metrics:   metrics.NewDummyCollector(),
		out:       io.Discard,
	}
	for _, option := range options {
		option(e)
	}
	return e
}

func (e *Engine) Depth() int {
	return e.depth
}

func (e *Engine) Nodes() int64 {
	return e.nodes
}

// Run plays rounds until a side is wiped out, a player quits or the searches
// exceed the node threshold.
func (e *Engine) Run() Outcome {
	e.metrics.Start()
	log.Info().Msgf("game starts, search depth %d", e.depth)
	fmt.Fprintf(e.out, "\n%s\n\n", e.Board)

	for {
		for _, player := range []game.Player{game.Player1, game.Player2} {
			if outcome, over := e.turn(player); over {
				return outcome
			}
		}

		depth, adjustments := e.tuner.AfterRound(e.Board, e.depth)
		for _, a := range adjustments {
			log.Info().Msgf("%s: search depth %d -> %d", a.Cause, a.From, a.To)
		}
		e.depth = depth

		if e.nodes >= e.threshold {
			log.Info().Msgf("searched %d nodes, threshold is %d", e.nodes, e.threshold)
			return e.finish(0, ReasonThreshold)
		}
	}
}

func (e *Engine) turn(player game.Player) (Outcome, bool) {
	e.step++
	log.Info().Msgf("step %d, search depth %d: %s (%s) is calculating...", e.step, e.depth, player, player.Case())

	next, metric, err := e.Agents[player-1].NextBoard(e.Board, player, e.depth)
	if err != nil {
		if !errors.Is(err, ErrQuit) {
			log.Error().Err(err).Msgf("%s cannot move", player)
		}
		return e.finish(0, ReasonQuit), true
	}

	e.nodes += metric.Nodes
	e.metrics.AddMove(metrics.MoveMetric{Step: e.step, Player: int(player), SearchMetric: metric})
	e.Board = next

	fmt.Fprintf(e.out, ">>> %s (%s) has moved.\nTotal search nodes: %d\n\n%s\n\n", player, player.Case(), e.nodes, e.Board)

	if loser, over := e.Board.Loser(); over {
		return e.finish(loser.Opponent(), ReasonWin), true
	}
	return Outcome{}, false
}

func (e *Engine) finish(winner game.Player, reason Reason) Outcome {
	outcome := Outcome{
		Winner: winner,
		Reason: reason,
		Steps:  e.step,
		Nodes:  e.nodes,
		Depth:  e.depth,
		Board:  e.Board,
	}
	log.Info().Msg(outcome.String())
	return outcome
}

// Moves returns the per-move metrics gathered by the collector.
func (e *Engine) Moves() []metrics.MoveMetric {
	return e.metrics.Moves()
}

// GameMetric summarizes the outcome for recording.
func (e *Engine) GameMetric(outcome Outcome, layout game.Layout) metrics.GameMetric {
	winner := ""
	if outcome.Winner != 0 {
		winner = outcome.Winner.String()
	}
	return e.metrics.Complete(metrics.GameMetric{
		Layout:     string(layout),
		Winner:     winner,
		Reason:     string(outcome.Reason),
		TotalMoves: outcome.Steps,
		Nodes:      outcome.Nodes,
		FinalDepth: outcome.Depth,
	})
}
