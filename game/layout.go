package game

import (
	"fmt"

	"capture/meta"
)

type Layout string

const (
	SkirmishLayout Layout = "skirmish"
	ClassicLayout  Layout = "classic"
)

var Layouts = []Layout{SkirmishLayout, ClassicLayout}

// NewBoard returns the starting position for the layout.
func NewBoard(layout Layout) (Board, error) {
	switch layout {
	case SkirmishLayout, "":
		return Skirmish(), nil
	case ClassicLayout:
		return Classic(), nil
	}
	return Board{}, fmt.Errorf("unknown layout %q", layout)
}

// Skirmish places one piece of each kind per side. Player2 starts at the top
// and Player1 mirrors it at the bottom.
func Skirmish() Board {
	var b Board
	top := []Piece{
		{Kind: Soldier, Pos: Pos{X: 2, Y: 12}},
		{Kind: Rider, Pos: Pos{X: 3, Y: 3}},
		{Kind: Leader, Pos: Pos{X: 5, Y: 12}},
	}
	return mirrored(b, top)
}

// Classic is the full twenty-pieces-a-side opening.
func Classic() Board {
	var b Board
	var top []Piece
	for _, y := range []int{5, 8, 12, 16, 19} {
		top = append(top, Piece{Kind: Soldier, Pos: Pos{X: 2, Y: y}})
	}
	for _, pos := range []Pos{{X: 3, Y: 3}, {X: 3, Y: 21}, {X: 5, Y: 2}, {X: 5, Y: 22}} {
		top = append(top, Piece{Kind: Rider, Pos: pos})
	}
	for y := 5; y < 21; y += 2 {
		top = append(top, Piece{Kind: Leader, Pos: Pos{X: 4, Y: y}})
	}
	for y := 10; y < 16; y += 2 {
		top = append(top, Piece{Kind: Leader, Pos: Pos{X: 5, Y: y}})
	}
	return mirrored(b, top)
}

func mirrored(b Board, top []Piece) Board {
	last := meta.BOARD_SIZE - 1
	for _, p := range top {
		b = b.Place(p.Kind, Player2, p.Pos)
		b = b.Place(p.Kind, Player1, Pos{X: last - p.Pos.X, Y: p.Pos.Y})
	}
	return b
}
