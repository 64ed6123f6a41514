package engine

import (
	"capture/game"

	"golang.org/x/exp/slices"
)

// History keeps the most recent boards, oldest first.
type History struct {
	size   int
	boards []game.Board
}

func NewHistory(size int) *History {
	if size <= 0 {
		panic("history size must be positive")
	}
	return &History{size: size, boards: make([]game.Board, 0, size)}
}

func (h *History) Contains(b game.Board) bool {
	return slices.Contains(h.boards, b)
}

// Push appends b, evicting the oldest board once the history is full.
func (h *History) Push(b game.Board) {
	if len(h.boards) == h.size {
		h.boards = slices.Delete(h.boards, 0, 1)
	}
	h.boards = append(h.boards, b)
}

// Observe reports whether b repeats a board in the history, then records it.
func (h *History) Observe(b game.Board) bool {
	seen := h.Contains(b)
	h.Push(b)
	return seen
}

func (h *History) Len() int {
	return len(h.boards)
}
