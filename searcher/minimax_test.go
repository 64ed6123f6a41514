package searcher

import (
	"testing"

	"capture/game"

	"github.com/stretchr/testify/require"
)

func TestDecide(t *testing.T) {
	t.Run("maximizing player takes a winning capture at depth 1", func(t *testing.T) {
		b := game.Board{}.
			Place(game.Rider, game.Player1, game.Pos{X: 12, Y: 12}).
			Place(game.Leader, game.Player2, game.Pos{X: 12, Y: 14}).
			Place(game.Soldier, game.Player2, game.Pos{X: 0, Y: 0})
		m := NewMinimax()

		got, metric := m.Decide(b, game.Player1, 1)

		require.True(t, game.IsLegal(b, game.Player1, got), "Chosen board should be a legal transition")
		require.Empty(t, got.PositionsOf(game.Leader, game.Player2), "Search should capture the leader")
		require.Equal(t, 9, metric.Children)
		require.Equal(t, 9, metric.Sampled, "Fewer than 10 children should not be sampled")
		require.Equal(t, int64(10), metric.Nodes, "Root plus one leaf per child")
		require.Equal(t, game.EvaluatePosition(got, game.Player1), metric.Value)
	})

	t.Run("blocked player passes", func(t *testing.T) {
		b := game.Board{}.
			Place(game.Leader, game.Player1, game.Pos{X: 0, Y: 0}).
			Place(game.Soldier, game.Player2, game.Pos{X: 2, Y: 0}).
			Place(game.Soldier, game.Player2, game.Pos{X: 0, Y: 2})
		require.Empty(t, game.Transitions(b, game.Player1))

		got, metric := NewMinimax().Decide(b, game.Player1, 2)

		require.Equal(t, b, got, "Pass should leave the board unchanged")
		require.Equal(t, 0, metric.Children)
		require.Equal(t, 1, metric.Sampled)
	})

	t.Run("ties keep the first child", func(t *testing.T) {
		b := game.Skirmish()
		flat := func(game.Board, game.Player) int { return 0 }
		m := NewMinimax(WithEvaluationFn(flat), WithSampler(FullSampler{}))

		got, _ := m.Decide(b, game.Player1, 1)
		require.Equal(t, game.Transitions(b, game.Player1)[0], got)

		got, _ = m.Decide(b, game.Player2, 2)
		require.Equal(t, game.Transitions(b, game.Player2)[0], got)
	})

	t.Run("minimizing replies are backed up", func(t *testing.T) {
		// Whatever Player1 does, Player2's soldier can take one of its pieces.
		b := game.Board{}.
			Place(game.Leader, game.Player1, game.Pos{X: 10, Y: 10}).
			Place(game.Leader, game.Player1, game.Pos{X: 14, Y: 14}).
			Place(game.Soldier, game.Player2, game.Pos{X: 12, Y: 12})
		m := NewMinimax(WithEvaluationFn(game.EvaluateMaterial), WithSampler(FullSampler{}))

		value, _ := m.Value(b, game.Player1, 2)
		greedy, _ := m.Value(b, game.Player1, 1)

		require.Equal(t, 2*5000-15000, greedy, "Player1 cannot reach the soldier")
		require.Equal(t, 5000-15000, value, "Player2 should take a leader")
	})

	t.Run("non-positive depth is a caller bug", func(t *testing.T) {
		require.Panics(t, func() { NewMinimax().Decide(game.Skirmish(), game.Player1, 0) })
	})

	t.Run("a round of play is deterministic", func(t *testing.T) {
		play := func() game.Board {
			m := NewMinimax(WithSampler(NewSampler(false)))
			b, _ := m.Decide(game.Skirmish(), game.Player1, 1)
			b, _ = m.Decide(b, game.Player2, 1)
			return b
		}

		first := play()
		require.NotEqual(t, game.Skirmish(), first)
		require.Equal(t, first, play())
	})

	t.Run("wide roots are sampled", func(t *testing.T) {
		b := game.Classic()
		legal := len(game.Transitions(b, game.Player1))
		require.GreaterOrEqual(t, legal, WIDE_BRANCHING)

		_, metric := NewMinimax().Decide(b, game.Player1, 1)

		require.Equal(t, legal, metric.Children)
		require.Equal(t, (legal+2)/3, metric.Sampled)
	})
}

func TestValue(t *testing.T) {
	b := game.Skirmish()
	m := NewMinimax()

	value, nodes := m.Value(b, game.Player2, 0)

	require.Equal(t, game.EvaluatePosition(b, game.Player2), value, "Depth 0 should be the heuristic value")
	require.Equal(t, int64(1), nodes)
}
