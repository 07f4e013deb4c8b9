package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/Antigono00/pvp21/internal/model"
)

// BattleSim holds all configuration for the battle simulator.
type BattleSim struct {
	// Logging
	LogLevel string `yaml:"log_level"`

	// Battle
	Battle BattleConfig `yaml:"battle"`

	// Report archive
	Database DatabaseConfig `yaml:"database"`
}

// BattleConfig controls the simulated matches.
type BattleConfig struct {
	Difficulty model.Difficulty `yaml:"difficulty"`

	// Seed of the first match; match i uses Seed+i. 0 draws a random seed.
	Seed uint64 `yaml:"seed"`

	MaxTurns    int           `yaml:"max_turns"`
	Matches     int           `yaml:"matches"`
	Concurrency int           `yaml:"concurrency"`
	Timeout     time.Duration `yaml:"timeout"` // whole run (0 = no limit)

	// Deck lists card IDs from the catalog; both sides get a copy.
	Deck     []string `yaml:"deck"`
	HandSize int      `yaml:"hand_size"`
	Energy   int      `yaml:"starting_energy"`
}

// DatabaseConfig holds PostgreSQL connection parameters.
type DatabaseConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
	SSLMode  string `yaml:"sslmode"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

// DefaultBattleSim returns BattleSim config with sensible defaults.
func DefaultBattleSim() BattleSim {
	return BattleSim{
		LogLevel: "info",
		Battle: BattleConfig{
			Difficulty:  model.DifficultyMedium,
			MaxTurns:    50,
			Matches:     4,
			Concurrency: 2,
			HandSize:    3,
			Energy:      4,
			Deck: []string{
				"c-emberfox", "t-arcane-shield", "c-turtle", "s-arcane-blast",
				"c-golem", "s-tremor", "t-power-charge", "c-sprite",
				"s-life-drain", "c-tidecaller", "t-regeneration", "c-drake",
			},
		},
		Database: DatabaseConfig{
			Host:     "127.0.0.1",
			Port:     5432,
			User:     "pvp21",
			Password: "pvp21",
			DBName:   "pvp21",
			SSLMode:  "disable",
		},
	}
}

// Validate checks values that would make the simulator misbehave.
func (c BattleSim) Validate() error {
	if !c.Battle.Difficulty.Valid() {
		return fmt.Errorf("unknown difficulty %q", c.Battle.Difficulty)
	}
	if c.Battle.MaxTurns <= 0 {
		return fmt.Errorf("max_turns must be positive, got %d", c.Battle.MaxTurns)
	}
	if c.Battle.Matches < 0 {
		return fmt.Errorf("matches must not be negative, got %d", c.Battle.Matches)
	}
	if c.Battle.Concurrency <= 0 {
		return fmt.Errorf("concurrency must be positive, got %d", c.Battle.Concurrency)
	}
	if len(c.Battle.Deck) == 0 {
		return fmt.Errorf("deck is empty")
	}
	return nil
}

// LoadBattleSim loads simulator config from a YAML file.
// If the file doesn't exist, returns defaults.
func LoadBattleSim(path string) (BattleSim, error) {
	cfg := DefaultBattleSim()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("validating config %s: %w", path, err)
	}
	return cfg, nil
}
