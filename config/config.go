package config

import (
	"fmt"
	"isolation/experiments/metrics"
	"isolation/meta"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Name     string                `mapstructure:"name"`
	Games    int                   `mapstructure:"games"` // Per match up
	Budget   time.Duration         `mapstructure:"budget"`
	Seed     uint64                `mapstructure:"seed"`
	Output   string                `mapstructure:"output"`
	Width    int                   `mapstructure:"width"`
	Height   int                   `mapstructure:"height"`
	Agents   []metrics.AgentConfig `mapstructure:"agents"`
	Matchups [][]int               `mapstructure:"matchups"` // Pairs of agent IDs, seat 0 first
}

// DefaultAgents pits full-width and alpha-beta search against each other and
// the baselines.
var DefaultAgents = []metrics.AgentConfig{
	{ID: 1, Kind: metrics.SearchAgent},
	{ID: 2, Kind: metrics.SearchAgent, NoPruning: true},
	{ID: 3, Kind: metrics.GreedyAgent},
	{ID: 4, Kind: metrics.RandomAgent},
}

var DefaultMatchups = [][]int{{1, 4}, {1, 3}, {1, 2}}

// Setup loads the configuration from cfgPath, if given, on top of the
// defaults. Scalar keys can be overridden with ISOLATION_<KEY> variables.
func Setup(cfgPath string) (*Config, error) {
	v := viper.New()
	v.SetDefault("name", "isolation")
	v.SetDefault("games", 10)
	v.SetDefault("budget", meta.TimeLimit)
	v.SetDefault("seed", 1)
	v.SetDefault("output", "data")
	v.SetDefault("width", meta.BoardWidth)
	v.SetDefault("height", meta.BoardHeight)

	v.SetEnvPrefix("ISOLATION")
	v.AutomaticEnv()

	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
		err := v.ReadInConfig()
		if err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	err := v.Unmarshal(&cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if len(cfg.Agents) == 0 {
		cfg.Agents = append([]metrics.AgentConfig{}, DefaultAgents...)
	}
	if len(cfg.Matchups) == 0 {
		cfg.Matchups = append([][]int{}, DefaultMatchups...)
	}

	err = cfg.Validate()
	if err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Games < 1 {
		return fmt.Errorf("games must be positive, got %d", c.Games)
	}
	if c.Budget <= 0 {
		return fmt.Errorf("budget must be positive, got %v", c.Budget)
	}
	if c.Width < 1 || c.Height < 1 || c.Width*c.Height > meta.MaxTurns {
		return fmt.Errorf("unsupported board size %dx%d", c.Width, c.Height)
	}

	ids := map[int]bool{}
	for _, agent := range c.Agents {
		if ids[agent.ID] {
			return fmt.Errorf("duplicate agent id %d", agent.ID)
		}
		ids[agent.ID] = true

		switch agent.Kind {
		case metrics.SearchAgent:
			minDepth, maxDepth := agent.MinDepth, agent.MaxDepth
			if minDepth <= 0 {
				minDepth = meta.MinDepth
			}
			if maxDepth <= 0 {
				maxDepth = meta.MaxDepth
			}
			if maxDepth < minDepth {
				return fmt.Errorf("agent %d: max depth %d below min depth %d", agent.ID, maxDepth, minDepth)
			}
		case metrics.GreedyAgent, metrics.RandomAgent:
		default:
			return fmt.Errorf("agent %d: unknown kind %q", agent.ID, agent.Kind)
		}
	}

	for _, matchup := range c.Matchups {
		if len(matchup) != 2 {
			return fmt.Errorf("matchup %v must name two agents", matchup)
		}
		for _, id := range matchup {
			if !ids[id] {
				return fmt.Errorf("matchup %v: unknown agent %d", matchup, id)
			}
		}
	}

	return nil
}

// Agent returns the configuration of the agent with the given ID.
func (c *Config) Agent(id int) (metrics.AgentConfig, bool) {
	for _, agent := range c.Agents {
		if agent.ID == id {
			return agent, true
		}
	}
	return metrics.AgentConfig{}, false
}
