package metrics

import (
	"time"
)

type SearchMetric struct {
	Depth    int
	Nodes    int64 // Nodes visited, leaves included
	Children int   // Legal transitions at the root
	Sampled  int   // Root transitions left after sampling
	Value    int   // Backed-up minimax value of the chosen board
	Duration time.Duration
}

type MoveMetric struct {
	Step   int
	Player int // Player ID
	SearchMetric
}

type GameMetric struct {
	Layout     string
	Winner     string // Player ID, "" without a winner
	Reason     string
	StartTime  time.Time
	EndTime    time.Time
	Duration   time.Duration
	TotalMoves int
	Nodes      int64
	FinalDepth int
}

// AgentConfig describes a computer player taking part in an experiment.
type AgentConfig struct {
	ID       int
	Depth    int  // 0 follows the engine's depth
	Throttle bool // Stride sampling
	Material bool // Material-only evaluation
}

type Collector interface {
	Start()
	AddMove(move MoveMetric)
	Moves() []MoveMetric
	Complete(game GameMetric) GameMetric
}

type collector struct {
	startTime time.Time
	moves     []MoveMetric
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start() {
	m.startTime = time.Now()
	m.moves = nil
}

func (m *collector) AddMove(move MoveMetric) {
	m.moves = append(m.moves, move)
}

func (m *collector) Moves() []MoveMetric {
	return m.moves
}

func (m *collector) Complete(game GameMetric) GameMetric {
	game.StartTime = m.startTime
	game.EndTime = time.Now()
	game.Duration = game.EndTime.Sub(m.startTime)
	return game
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start()                              {}
func (m *dummyCollector) AddMove(move MoveMetric)             {}
func (m *dummyCollector) Moves() []MoveMetric                 { return nil }
func (m *dummyCollector) Complete(game GameMetric) GameMetric { return game }
