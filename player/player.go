package player

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"capture/engine"
	"capture/experiments/metrics"
	"capture/game"

	"golang.org/x/exp/slices"
)

var (
	ErrMalformedInput = errors.New("malformed input")
	ErrIllegalAction  = errors.New("illegal action")
)

type ActionType int

const (
	SkipAction ActionType = iota
	QuitAction
	AttackAction
	MoveAction
)

// Action is one step typed by a human: an attack on a square or a move
// between two squares.
type Action struct {
	Type ActionType
	From game.Pos // Moving piece
	To   game.Pos // Attacked square or move destination
}

var (
	actionPattern = regexp.MustCompile(`^[\s\[\]\(\),\d-]+$`)
	numberPattern = regexp.MustCompile(`-?\d+`)
)

// ParseAction reads "[x,y]" as an attack and "[x1,y1],[x2,y2]" as a move.
// "n" skips and "q" quits.
func ParseAction(text string) (Action, error) {
	text = strings.TrimSpace(text)
	switch strings.ToLower(text) {
	case "n":
		return Action{Type: SkipAction}, nil
	case "q":
		return Action{Type: QuitAction}, nil
	}
	if !actionPattern.MatchString(text) {
		return Action{}, fmt.Errorf("%w: %q", ErrMalformedInput, text)
	}

	var coords []int
	for _, match := range numberPattern.FindAllString(text, -1) {
		n, err := strconv.Atoi(match)
		if err != nil {
			return Action{}, fmt.Errorf("%w: %v", ErrMalformedInput, err)
		}
		coords = append(coords, n)
	}

	var action Action
	switch len(coords) {
	case 2:
		action = Action{Type: AttackAction, To: game.Pos{X: coords[0], Y: coords[1]}}
	case 4:
		action = Action{Type: MoveAction, From: game.Pos{X: coords[0], Y: coords[1]}, To: game.Pos{X: coords[2], Y: coords[3]}}
	default:
		return Action{}, fmt.Errorf("%w: expected one or two positions, got %d numbers", ErrMalformedInput, len(coords))
	}
	for _, pos := range []game.Pos{action.From, action.To} {
		if !game.InBounds(pos) {
			return Action{}, fmt.Errorf("%w: %v is off the board", ErrIllegalAction, pos)
		}
	}
	return action, nil
}

// Apply builds the board the action leads to. It only checks what it needs
// to build that board; legality is decided against the transitions.
func Apply(b game.Board, player game.Player, action Action) (game.Board, error) {
	switch action.Type {
	case AttackAction:
		if _, owner, ok := b.At(action.To).Piece(); !ok || owner != player.Opponent() {
			return b, fmt.Errorf("%w: no opponent piece on %v", ErrIllegalAction, action.To)
		}
		return b.Remove(action.To), nil
	case MoveAction:
		kind, owner, ok := b.At(action.From).Piece()
		if !ok || owner != player {
			return b, fmt.Errorf("%w: none of your pieces on %v", ErrIllegalAction, action.From)
		}
		return b.Remove(action.From).Place(kind, player, action.To), nil
	}
	return b, fmt.Errorf("%w: nothing to apply", ErrIllegalAction)
}

// Human is an agent reading actions from a text stream.
type Human struct {
	in  *bufio.Scanner
	out io.Writer
}

func NewHuman(in io.Reader, out io.Writer) *Human {
	return &Human{in: bufio.NewScanner(in), out: out}
}

const prompt = "Enter your action by inputing one position to attack or two positions to move a piece, " +
	"such as [3,6] or [3,5],[6,7], 'n' to skip or 'q' to quit (the top left square is [0,0])"

// NextBoard reads one turn: an attack or a move, optionally followed by the
// other kind. Every step must lead to a board among the legal transitions.
func (h *Human) NextBoard(board game.Board, player game.Player, depth int) (game.Board, metrics.SearchMetric, error) {
	legal := game.Transitions(board, player)
	metric := metrics.SearchMetric{Children: len(legal), Sampled: len(legal)}
	if len(legal) == 0 {
		fmt.Fprintf(h.out, "%s has no legal action and passes.\n", player)
		return board, metric, nil
	}

	current := board
	done := map[ActionType]bool{}
	for {
		switch {
		case done[AttackAction]:
			fmt.Fprintln(h.out, "Then move? ('n' to skip)")
		case done[MoveAction]:
			fmt.Fprintln(h.out, "Then attack? ('n' to skip)")
		default:
			fmt.Fprintln(h.out, prompt)
		}

		if !h.in.Scan() {
			return board, metric, engine.ErrQuit
		}
		action, err := ParseAction(h.in.Text())
		if err != nil {
			fmt.Fprintf(h.out, "Please check the format and try again: %v\n", err)
			continue
		}

		switch action.Type {
		case QuitAction:
			return board, metric, engine.ErrQuit
		case SkipAction:
			return current, metric, nil
		}
		if done[action.Type] {
			fmt.Fprintln(h.out, "You can only attack once and move once per turn.")
			continue
		}

		next, err := Apply(current, player, action)
		if err == nil && !slices.Contains(legal, next) {
			err = ErrIllegalAction
		}
		if err != nil {
			fmt.Fprintf(h.out, "Wrong input, try again: %v\n", err)
			continue
		}

		current = next
		done[action.Type] = true
		fmt.Fprintf(h.out, "\n%s\n\n", current)
		if done[AttackAction] && done[MoveAction] {
			return current, metric, nil
		}
	}
}
