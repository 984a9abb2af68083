// Command capflow computes the maximum flow of a capacitated network
// declared in a YAML file (optionally overridden by CAPFLOW_* environment
// variables) and prints the flow value together with the per-edge flows.
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/kvolkov/capflow/flow"
)

func main() {
	configPath := flag.String("config", "capflow.yaml", "path to the network config file")
	flag.Parse()

	cfg, err := LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "capflow:", err)
		os.Exit(1)
	}

	setupLogging(cfg.Log)

	if err := run(cfg); err != nil {
		log.Error().Err(err).Msg("max flow computation failed")
		os.Exit(1)
	}
}

func setupLogging(lc LogConfig) {
	level, err := zerolog.ParseLevel(lc.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	log.Logger = log.Level(level)

	if lc.Format == "console" {
		cw := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.TimeOnly}
		log.Logger = log.Output(cw)
	}
}

func run(cfg *Config) error {
	network, err := cfg.BuildNetwork()
	if err != nil {
		return err
	}

	solver, err := flow.NewEdmondsKarp(network, flow.FlowOptions{
		Epsilon: cfg.Flow.Epsilon,
		Verbose: cfg.Flow.Verbose,
	})
	if err != nil {
		return err
	}

	start := time.Now()
	mf, err := solver.BuildMaximumFlow(cfg.Flow.Source, cfg.Flow.Sink)
	if err != nil {
		return err
	}

	log.Info().
		Str("source", cfg.Flow.Source).
		Str("sink", cfg.Flow.Sink).
		Float64("value", mf.Value).
		Dur("elapsed", time.Since(start)).
		Msg("maximum flow computed")

	ids := make([]string, 0, len(mf.EdgeFlows))
	for id := range mf.EdgeFlows {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		e, err := network.GetEdge(id)
		if err != nil {
			return err
		}
		log.Info().
			Str("edge", id).
			Str("from", e.From).
			Str("to", e.To).
			Float64("capacity", e.Weight).
			Float64("flow", mf.EdgeFlows[id]).
			Msg("edge flow")
	}

	return nil
}
