// Package commands implements the numina CLI subcommands.
package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/numina-labs/numina/internal/cli/config"
)

// parseBindings converts repeated "name=value" flags into a bindings map,
// layered on top of the configured variables.
func parseBindings(cfg *config.Config, pairs []string) (map[string]float64, error) {
	bindings := make(map[string]float64, len(cfg.Variables)+len(pairs))
	for name, value := range cfg.Variables {
		bindings[name] = value
	}
	for _, pair := range pairs {
		name, raw, ok := strings.Cut(pair, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid binding %q, want name=value", pair)
		}
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid value in binding %q: %w", pair, err)
		}
		bindings[name] = value
	}
	return bindings, nil
}

// formatValue renders a result at the configured precision.
func formatValue(v float64, precision int) string {
	return strconv.FormatFloat(v, 'g', precision, 64)
}
