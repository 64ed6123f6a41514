package experiments

import (
	"fmt"

	"capture/engine"
	"capture/experiments/metrics"
	"capture/game"
	"capture/meta"
	"capture/searcher"

	"github.com/rs/zerolog/log"
)

const NodeBudget = 5_000_000 // Per game

type Experiment struct {
	Name      string
	Layout    game.Layout
	Depth     int   // Engine starting depth, used by agents without their own
	Threshold int64 // Node budget per game
	Configs   []metrics.AgentConfig
	MatchUps  [][]metrics.AgentConfig
}

// DepthExperiment pits fixed-depth agents against the baseline agent that
// follows the engine's adaptive depth.
func DepthExperiment(layout game.Layout) Experiment {
	baseline := metrics.AgentConfig{ID: 0, Throttle: true}
	configs := []metrics.AgentConfig{
		{ID: 1, Depth: 1, Throttle: true},
		{ID: 2, Depth: 2, Throttle: true},
		{ID: 3, Depth: 3, Throttle: true},
	}
	return newExperiment("depth", layout, baseline, configs)
}

// ThrottleExperiment compares stride sampling against full expansion at the same depth.
func ThrottleExperiment(layout game.Layout) Experiment {
	baseline := metrics.AgentConfig{ID: 0, Depth: meta.DEFAULT_DEPTH, Throttle: true}
	configs := []metrics.AgentConfig{
		{ID: 1, Depth: meta.DEFAULT_DEPTH, Throttle: false},
	}
	return newExperiment("throttle", layout, baseline, configs)
}

// EvaluationExperiment plays the positional heuristic against a material count.
func EvaluationExperiment(layout game.Layout) Experiment {
	baseline := metrics.AgentConfig{ID: 0, Throttle: true}
	configs := []metrics.AgentConfig{
		{ID: 1, Throttle: true, Material: true},
	}
	return newExperiment("evaluation", layout, baseline, configs)
}

func newExperiment(name string, layout game.Layout, baseline metrics.AgentConfig, configs []metrics.AgentConfig) Experiment {
	// Games are deterministic, so each pairing is played once per side
	matchUps := [][]metrics.AgentConfig{}
	for _, config := range configs {
		matchUps = append(matchUps, []metrics.AgentConfig{baseline, config}, []metrics.AgentConfig{config, baseline})
	}
	return Experiment{
		Name:      name,
		Layout:    layout,
		Depth:     meta.DEFAULT_DEPTH,
		Threshold: NodeBudget,
		Configs:   append(configs, baseline),
		MatchUps:  matchUps,
	}
}

// Experiments lists the experiments by name.
var Experiments = map[string]func(game.Layout) Experiment{
	"depth":      DepthExperiment,
	"throttle":   ThrottleExperiment,
	"evaluation": EvaluationExperiment,
}

// Run plays every match-up and stores the records under dir.
func (x Experiment) Run(dir string) error {
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment...", x.Name)

	for mi, matchup := range x.MatchUps {
		config1 := matchup[0]
		config2 := matchup[1]

		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(x.MatchUps), config1, config2)

		gameMetric, moveMetrics, err := x.runGame(config1, config2)
		if err != nil {
			return err
		}
		gameRecords = append(gameRecords, metrics.GameRecord{
			ID:         mi + 1,
			Agent1:     config1.ID,
			Agent2:     config2.ID,
			GameMetric: gameMetric,
		})
		for _, mm := range moveMetrics {
			moveRecords = append(moveRecords, metrics.MoveRecord{
				Game:       mi + 1,
				MoveMetric: mm,
			})
		}

		log.Info().Msgf("completed matchup %d of %d with winner: %q (%s)", mi+1, len(x.MatchUps), gameMetric.Winner, gameMetric.Reason)
	}

	log.Info().Msgf("completed %s experiment", x.Name)

	writer, err := metrics.NewWriter(dir)
	if err != nil {
		return fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WriteAgentConfigs(x.Configs); err != nil {
		return fmt.Errorf("failed to store agent configs: %w", err)
	}
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return fmt.Errorf("failed to store game records: %w", err)
	}
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return fmt.Errorf("failed to store move records: %w", err)
	}
	log.Info().Msgf("stored %s experiment records in %s", x.Name, writer.Dir())
	return nil
}

func (x Experiment) runGame(config1, config2 metrics.AgentConfig) (metrics.GameMetric, []metrics.MoveMetric, error) {
	board, err := game.NewBoard(x.Layout)
	if err != nil {
		return metrics.GameMetric{}, nil, err
	}
	agents := []engine.Agent{createAgent(config1), createAgent(config2)}
	e := engine.LocalEngine(board, agents, x.Depth,
		engine.WithThreshold(x.Threshold),
		engine.WithCollector(metrics.NewCollector()),
	)

	outcome := e.Run()
	return e.GameMetric(outcome, x.Layout), e.Moves(), nil
}

func createAgent(config metrics.AgentConfig) engine.Agent {
	options := []searcher.Option{searcher.WithSampler(searcher.NewSampler(config.Throttle))}
	if config.Material {
		options = append(options, searcher.WithEvaluationFn(game.EvaluateMaterial))
	}
	agent := engine.SearchAgent{Searcher: searcher.NewMinimax(options...)}
	if config.Depth > 0 {
		return fixedDepth{agent: agent, depth: config.Depth}
	}
	return agent
}

// fixedDepth ignores the engine's depth tuning.
type fixedDepth struct {
	agent engine.Agent
	depth int
}

func (f fixedDepth) NextBoard(board game.Board, player game.Player, _ int) (game.Board, metrics.SearchMetric, error) {
	return f.agent.NextBoard(board, player, f.depth)
}
