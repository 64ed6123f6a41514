package engine

import (
	"capture/game"
	"capture/meta"
)

// Adjustment records one change of search depth.
type Adjustment struct {
	Cause string
	From  int
	To    int
}

// DepthTuner retunes the search depth after every round. Each material
// threshold deepens the search once; a repeated board nudges it.
type DepthTuner struct {
	adaptive       bool
	deepenedFirst  bool
	deepenedSecond bool
	history        *History
}

func NewDepthTuner(adaptive bool) *DepthTuner {
	return &DepthTuner{
		adaptive: adaptive,
		history:  NewHistory(meta.HISTORY_SIZE),
	}
}

// AfterRound returns the depth for the next round given the board it ended on.
func (t *DepthTuner) AfterRound(b game.Board, depth int) (int, []Adjustment) {
	var adjustments []Adjustment
	adjust := func(cause string, to int) {
		adjustments = append(adjustments, Adjustment{Cause: cause, From: depth, To: to})
		depth = to
	}

	if t.adaptive {
		pieces := b.Total()
		if !t.deepenedFirst && pieces <= meta.FIRST_DEEPEN_AT {
			t.deepenedFirst = true
			adjust("material", depth+1)
		}
		if !t.deepenedSecond && pieces <= meta.SECOND_DEEPEN_AT {
			t.deepenedSecond = true
			adjust("material", depth+1)
		}
	}

	if t.history.Observe(b) {
		if depth > meta.DEADLOCK_DEPTH {
			adjust("deadlock", depth-1)
		} else {
			adjust("deadlock", depth+meta.DEADLOCK_BOOST)
		}
	}
	return depth, adjustments
}
