package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"capture/config"
	"capture/engine"
	"capture/experiments"
	"capture/experiments/metrics"
	"capture/game"
	"capture/player"
	"capture/searcher"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	flag.IntVar(&cfg.Depth, "d", cfg.Depth, "Initial search depth")
	flag.BoolVar(&cfg.NoAdjust, "c", cfg.NoAdjust, "Disable stride sampling and material deepening")
	flag.BoolVar(&cfg.Human, "u", cfg.Human, "Play as Player2 (uppercase pieces)")
	flag.Float64Var(&cfg.Threshold, "t", cfg.Threshold, "Search node threshold, in millions")
	layout := flag.String("layout", string(cfg.Layout), "Initial layout: skirmish or classic")
	flag.StringVar(&cfg.Record, "record", cfg.Record, "Directory for CSV game records")
	experiment := flag.String("experiment", "", "Run an experiment instead of a game: depth, throttle or evaluation")
	flag.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "Debug logging")
	flag.Parse()
	cfg.Layout = game.Layout(*layout)

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if cfg.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Send()
	}

	if *experiment != "" {
		if err := runExperiment(*experiment, cfg); err != nil {
			log.Fatal().Err(err).Msgf("experiment %s failed", *experiment)
		}
		return
	}

	if err := play(cfg); err != nil {
		log.Fatal().Err(err).Msg("game failed")
	}
}

func play(cfg *config.Config) error {
	board, err := game.NewBoard(cfg.Layout)
	if err != nil {
		return err
	}

	sampler := searcher.NewSampler(!cfg.NoAdjust)
	agents := []engine.Agent{
		engine.SearchAgent{Searcher: searcher.NewMinimax(searcher.WithSampler(sampler))},
		engine.SearchAgent{Searcher: searcher.NewMinimax(searcher.WithSampler(sampler))},
	}
	if cfg.Human {
		agents[game.Player2-1] = player.NewHuman(os.Stdin, os.Stdout)
	}

	options := []engine.Option{
		engine.WithOutput(os.Stdout),
		engine.WithThreshold(cfg.Nodes()),
		engine.WithAdaptiveDepth(!cfg.NoAdjust),
	}
	if cfg.Record != "" {
		options = append(options, engine.WithCollector(metrics.NewCollector()))
	}

	e := engine.LocalEngine(board, agents, cfg.Depth, options...)
	outcome := e.Run()
	fmt.Println(outcome)

	if cfg.Record == "" {
		return nil
	}
	writer, err := metrics.NewWriter(cfg.Record)
	if err != nil {
		return err
	}
	record := metrics.GameRecord{ID: 1, GameMetric: e.GameMetric(outcome, cfg.Layout)}
	if err := writer.WriteGameRecords([]metrics.GameRecord{record}); err != nil {
		return err
	}
	moves := []metrics.MoveRecord{}
	for _, m := range e.Moves() {
		moves = append(moves, metrics.MoveRecord{Game: record.ID, MoveMetric: m})
	}
	if err := writer.WriteMoveRecords(moves); err != nil {
		return err
	}
	log.Info().Msgf("stored game records in %s", writer.Dir())
	return nil
}

func runExperiment(name string, cfg *config.Config) error {
	newExperiment, ok := experiments.Experiments[name]
	if !ok {
		return errors.New("unknown experiment")
	}
	x := newExperiment(cfg.Layout)
	x.Depth = cfg.Depth
	x.Threshold = cfg.Nodes()

	dir := cfg.Record
	if dir == "" {
		dir = "records"
	}
	return x.Run(dir)
}
