package game

import (
	"fmt"
	"strings"

	"capture/meta"
)

// Cell holds at most one piece. Lowercase letters belong to Player1,
// uppercase letters to Player2.
type Cell byte

const Empty Cell = 0

var kindLetters = [...]byte{Soldier: 's', Rider: 'r', Leader: 'l'}

func CellOf(kind Kind, owner Player) Cell {
	letter := kindLetters[kind]
	if owner == Player2 {
		letter -= 'a' - 'A'
	}
	return Cell(letter)
}

// Piece decodes the cell. ok is false for an empty cell.
func (c Cell) Piece() (kind Kind, owner Player, ok bool) {
	if c == Empty {
		return 0, 0, false
	}
	letter := byte(c)
	owner = Player1
	if letter >= 'A' && letter <= 'Z' {
		owner = Player2
		letter += 'a' - 'A'
	}
	for k, l := range kindLetters {
		if l == letter {
			return Kind(k), owner, true
		}
	}
	return 0, 0, false
}

func (c Cell) Owner() Player {
	_, owner, _ := c.Piece()
	return owner
}

func (c Cell) String() string {
	if c == Empty {
		return " "
	}
	return string(rune(c))
}

// Board is an immutable snapshot of the grid. It is a comparable value:
// assignment copies it and it can be used as a map key.
type Board struct {
	cells [meta.BOARD_SIZE][meta.BOARD_SIZE]Cell
}

// Clone returns a copy of the board.
func (b Board) Clone() Board {
	return b
}

// At returns the cell at pos. Querying outside the grid is a caller bug.
func (b Board) At(pos Pos) Cell {
	if !InBounds(pos) {
		panic(fmt.Sprintf("position %v is off the board", pos))
	}
	return b.cells[pos.X][pos.Y]
}

func (b Board) IsEmpty(pos Pos) bool {
	return b.At(pos) == Empty
}

// Place returns a copy of the board with the piece put on pos.
func (b Board) Place(kind Kind, owner Player, pos Pos) Board {
	return b.set(pos, CellOf(kind, owner))
}

// Remove returns a copy of the board with pos cleared.
func (b Board) Remove(pos Pos) Board {
	return b.set(pos, Empty)
}

func (b Board) move(from, to Pos) Board {
	cell := b.At(from)
	return b.set(from, Empty).set(to, cell)
}

func (b Board) set(pos Pos, cell Cell) Board {
	b.At(pos) // bounds check
	b.cells[pos.X][pos.Y] = cell
	return b
}

// PositionsOf lists the squares holding the player's pieces of the given kind, row by row.
func (b Board) PositionsOf(kind Kind, owner Player) []Pos {
	target := CellOf(kind, owner)
	var positions []Pos
	for x := range b.cells {
		for y, cell := range b.cells[x] {
			if cell == target {
				positions = append(positions, Pos{X: x, Y: y})
			}
		}
	}
	return positions
}

// PiecesOf lists every square held by the player, grouped by kind.
func (b Board) PiecesOf(owner Player) []Pos {
	var positions []Pos
	for _, kind := range Kinds {
		positions = append(positions, b.PositionsOf(kind, owner)...)
	}
	return positions
}

// Pieces is PiecesOf with the kind attached to each position.
func (b Board) Pieces(owner Player) []Piece {
	var pieces []Piece
	for _, kind := range Kinds {
		for _, pos := range b.PositionsOf(kind, owner) {
			pieces = append(pieces, Piece{Kind: kind, Owner: owner, Pos: pos})
		}
	}
	return pieces
}

func (b Board) Count(owner Player) int {
	count := 0
	for x := range b.cells {
		for _, cell := range b.cells[x] {
			if cell != Empty && cell.Owner() == owner {
				count++
			}
		}
	}
	return count
}

func (b Board) Total() int {
	return b.Count(Player1) + b.Count(Player2)
}

// Loser returns the player left without pieces, if any.
func (b Board) Loser() (Player, bool) {
	if b.Count(Player1) == 0 {
		return Player1, true
	}
	if b.Count(Player2) == 0 {
		return Player2, true
	}
	return 0, false
}

// String renders one row per line with cells delimited by '|'.
func (b Board) String() string {
	var sb strings.Builder
	for x := range b.cells {
		if x > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteByte('|')
		for _, cell := range b.cells[x] {
			sb.WriteString(cell.String())
			sb.WriteByte('|')
		}
	}
	return sb.String()
}

// ParseBoard reads a board in the format produced by String.
func ParseBoard(text string) (Board, error) {
	var b Board
	rows := strings.Split(strings.Trim(text, "\n"), "\n")
	if len(rows) != meta.BOARD_SIZE {
		return b, fmt.Errorf("expected %d rows, got %d", meta.BOARD_SIZE, len(rows))
	}
	for x, row := range rows {
		row = strings.TrimSuffix(strings.TrimPrefix(row, "|"), "|")
		cells := strings.Split(row, "|")
		if len(cells) != meta.BOARD_SIZE {
			return b, fmt.Errorf("row %d: expected %d cells, got %d", x, meta.BOARD_SIZE, len(cells))
		}
		for y, text := range cells {
			if text == " " || text == "" {
				continue
			}
			cell := Cell(text[0])
			if _, _, ok := cell.Piece(); !ok || len(text) != 1 {
				return b, fmt.Errorf("row %d column %d: unknown piece %q", x, y, text)
			}
			b.cells[x][y] = cell
		}
	}
	return b, nil
}
