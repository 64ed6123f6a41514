package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSkirmishLayout(t *testing.T) {
	b := Skirmish()

	require.Len(t, b.PiecesOf(Player1), 3, "Player1 should start with three pieces")
	require.Len(t, b.PiecesOf(Player2), 3, "Player2 should start with three pieces")
	for _, kind := range Kinds {
		require.Len(t, b.PositionsOf(kind, Player1), 1, "Player1 should own one %s", kind)
		require.Len(t, b.PositionsOf(kind, Player2), 1, "Player2 should own one %s", kind)
	}
	require.Equal(t, []Pos{{X: 22, Y: 12}}, b.PositionsOf(Soldier, Player1))
	require.Equal(t, []Pos{{X: 2, Y: 12}}, b.PositionsOf(Soldier, Player2))
	require.Equal(t, []Pos{{X: 21, Y: 3}}, b.PositionsOf(Rider, Player1))
	require.Equal(t, []Pos{{X: 5, Y: 12}}, b.PositionsOf(Leader, Player2))
}

func TestClassicLayout(t *testing.T) {
	b := Classic()

	require.Equal(t, 20, b.Count(Player1))
	require.Equal(t, 20, b.Count(Player2))
	require.Len(t, b.PositionsOf(Soldier, Player1), 5)
	require.Len(t, b.PositionsOf(Rider, Player2), 4)
	require.Len(t, b.PositionsOf(Leader, Player2), 11)
}

func TestNewBoard(t *testing.T) {
	t.Run("known layouts", func(t *testing.T) {
		b, err := NewBoard(ClassicLayout)
		require.NoError(t, err)
		require.Equal(t, Classic(), b)
	})

	t.Run("unknown layout", func(t *testing.T) {
		_, err := NewBoard("chess")
		require.Error(t, err)
	})
}

func TestBoardIsImmutable(t *testing.T) {
	b := Skirmish()
	before := b.Clone()

	moved := b.Remove(Pos{X: 2, Y: 12}).Place(Soldier, Player2, Pos{X: 3, Y: 12})

	require.Equal(t, before, b, "Original board should not change")
	require.NotEqual(t, b, moved, "Copy should carry the change")
	require.True(t, moved.IsEmpty(Pos{X: 2, Y: 12}))
}

func TestIsEmptyOutOfBounds(t *testing.T) {
	var b Board
	require.Panics(t, func() { b.IsEmpty(Pos{X: 25, Y: 0}) }, "Off-board query is a caller bug")
	require.Panics(t, func() { b.IsEmpty(Pos{X: 0, Y: -1}) }, "Off-board query is a caller bug")
	require.True(t, b.IsEmpty(Pos{X: 24, Y: 24}))
}

func TestCellPiece(t *testing.T) {
	kind, owner, ok := CellOf(Rider, Player2).Piece()
	require.True(t, ok)
	require.Equal(t, Rider, kind)
	require.Equal(t, Player2, owner)
	require.Equal(t, "R", CellOf(Rider, Player2).String())
	require.Equal(t, "l", CellOf(Leader, Player1).String())

	_, _, ok = Empty.Piece()
	require.False(t, ok)
}

func TestBoardStringRoundTrip(t *testing.T) {
	b := Classic()
	text := b.String()

	require.Contains(t, text, "| | |S| |")
	parsed, err := ParseBoard(text)
	require.NoError(t, err)
	require.Equal(t, b, parsed)

	_, err = ParseBoard("|x|")
	require.Error(t, err)
}

func TestLoser(t *testing.T) {
	var b Board
	b = b.Place(Soldier, Player1, Pos{X: 0, Y: 0})
	loser, over := b.Loser()
	require.True(t, over)
	require.Equal(t, Player2, loser)

	_, over = Skirmish().Loser()
	require.False(t, over)
}
