package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/kvolkov/capflow/core"
	"github.com/kvolkov/capflow/flow"
)

const envPrefix = "CAPFLOW_"

// Config describes one max-flow run: the network topology, the endpoints,
// and the solver/logging knobs.
type Config struct {
	Network NetworkConfig `koanf:"network"`
	Flow    FlowConfig    `koanf:"flow"`
	Log     LogConfig     `koanf:"log"`
}

// NetworkConfig declares the capacitated network.
type NetworkConfig struct {
	Directed bool         `koanf:"directed"`
	Weighted bool         `koanf:"weighted"`
	Edges    []EdgeConfig `koanf:"edges"`
}

// EdgeConfig is one edge of the network. Capacity is ignored when the
// network is declared unweighted (every edge then carries capacity 1).
type EdgeConfig struct {
	From     string  `koanf:"from"`
	To       string  `koanf:"to"`
	Capacity float64 `koanf:"capacity"`
}

// FlowConfig selects the endpoints and solver tolerances.
type FlowConfig struct {
	Source  string  `koanf:"source"`
	Sink    string  `koanf:"sink"`
	Epsilon float64 `koanf:"epsilon"`
	Verbose bool    `koanf:"verbose"`
}

// LogConfig controls the zerolog output.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"` // console or json
}

// LoadConfig layers defaults, the YAML file at path (when present), and
// CAPFLOW_* environment variables — highest priority last.
func LoadConfig(path string) (*Config, error) {
	k := koanf.New(".")

	defaults := map[string]interface{}{
		"network.directed": true,
		"network.weighted": true,
		"flow.epsilon":     flow.DefaultEpsilon,
		"flow.verbose":     false,
		"log.level":        "info",
		"log.format":       "console",
	}
	if err := k.Load(confmap.Provider(defaults, "."), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("load config file %q: %w", path, err)
			}
		}
	}

	// CAPFLOW_FLOW_SOURCE=s → flow.source, etc.
	if err := k.Load(env.Provider(envPrefix, ".", func(envKey string) string {
		key := strings.ToLower(strings.TrimPrefix(envKey, envPrefix))
		return strings.ReplaceAll(key, "_", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate rejects configurations the solver would refuse anyway, with
// friendlier messages.
func (c *Config) Validate() error {
	if c.Flow.Source == "" {
		return fmt.Errorf("config: flow.source is required")
	}
	if c.Flow.Sink == "" {
		return fmt.Errorf("config: flow.sink is required")
	}
	if c.Flow.Source == c.Flow.Sink {
		return fmt.Errorf("config: flow.source and flow.sink must differ")
	}
	if c.Flow.Epsilon <= 0 {
		return fmt.Errorf("config: flow.epsilon must be positive, got %g", c.Flow.Epsilon)
	}
	if len(c.Network.Edges) == 0 {
		return fmt.Errorf("config: network.edges must not be empty")
	}
	for i, e := range c.Network.Edges {
		if e.From == "" || e.To == "" {
			return fmt.Errorf("config: network.edges[%d]: from and to are required", i)
		}
	}

	return nil
}

// BuildNetwork materializes the declared topology as a *core.Graph.
func (c *Config) BuildNetwork() (*core.Graph, error) {
	opts := []core.GraphOption{core.WithDirected(c.Network.Directed)}
	if c.Network.Weighted {
		opts = append(opts, core.WithWeighted())
	}
	g := core.NewGraph(opts...)

	for _, e := range c.Network.Edges {
		capacity := e.Capacity
		if !c.Network.Weighted {
			capacity = 0
		}
		if _, err := g.AddEdge(e.From, e.To, capacity); err != nil {
			return nil, fmt.Errorf("config: edge %s→%s: %w", e.From, e.To, err)
		}
	}

	return g, nil
}
