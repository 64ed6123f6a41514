package engine

import (
	"errors"

	"capture/experiments/metrics"
	"capture/game"
	"capture/searcher"
)

// ErrQuit is returned by an agent whose player ends the game.
var ErrQuit = errors.New("player quit")

// Agent chooses the board its player moves to.
type Agent interface {
	NextBoard(board game.Board, player game.Player, depth int) (game.Board, metrics.SearchMetric, error)
}

// SearchAgent plays the board chosen by a searcher.
type SearchAgent struct {
	Searcher searcher.Searcher
}

func (a SearchAgent) NextBoard(board game.Board, player game.Player, depth int) (game.Board, metrics.SearchMetric, error) {
	next, metric := a.Searcher.Decide(board, player, depth)
	return next, metric, nil
}

type Reason string

const (
	ReasonWin       Reason = "win"
	ReasonThreshold Reason = "threshold"
	ReasonQuit      Reason = "quit"
)

// Outcome summarizes a finished run. Winner is zero unless Reason is ReasonWin.
type Outcome struct {
	Winner game.Player
	Reason Reason
	Steps  int
	Nodes  int64
	Depth  int
	Board  game.Board
}

func (o Outcome) String() string {
	switch o.Reason {
	case ReasonWin:
		return o.Winner.String() + " has won. Game ended."
	case ReasonThreshold:
		return "Seems not easy to reach the end of the game! Stopped at the expansion threshold."
	}
	return "Game stopped by a player."
}
