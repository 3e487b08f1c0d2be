// Package config loads CLI configuration from files, environment
// variables, and flags.
package config

import "fmt"

// Config holds all CLI configuration options.
type Config struct {
	// Precision is the number of significant digits printed for results;
	// -1 selects the shortest representation that round-trips.
	Precision int `koanf:"precision"`
	// MaxDepth bounds expression nesting accepted by the parser.
	MaxDepth int `koanf:"max_depth"`
	// HistoryFile is where the REPL persists input history.
	HistoryFile string `koanf:"history_file"`
	// Verbose enables debug logging.
	Verbose bool `koanf:"verbose"`
	// Variables are bindings made available to every evaluation.
	Variables map[string]float64 `koanf:"variables"`
}

// Default configuration values.
const (
	DefaultPrecision   = -1
	DefaultMaxDepth    = 200
	DefaultHistoryFile = ".numina_history"
)

// Default returns a Config populated with defaults only.
func Default() *Config {
	return &Config{
		Precision:   DefaultPrecision,
		MaxDepth:    DefaultMaxDepth,
		HistoryFile: DefaultHistoryFile,
	}
}

// Validate checks configuration invariants.
func (c *Config) Validate() error {
	if c.Precision < -1 || c.Precision > 17 {
		return fmt.Errorf("precision must be between -1 and 17, got %d", c.Precision)
	}
	if c.MaxDepth <= 0 {
		return fmt.Errorf("max_depth must be positive, got %d", c.MaxDepth)
	}
	return nil
}
