// Package cli provides the command-line interface for numina.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/numina-labs/numina/internal/cli/commands"
	"github.com/numina-labs/numina/internal/cli/config"
	"github.com/spf13/cobra"
)

var cfgFile string

// Version information (set at build time).
var (
	Version   = "0.1.0"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// loggerKey is used to store the logger in context.
type loggerKey struct{}

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "numina",
		Short: "numina - symbolic and numeric math toolkit",
		Long: `numina parses, rewrites, and evaluates arithmetic expressions.

It builds symbolic expression trees with constant folding, substitution,
and rule-based differentiation, and ships an interactive calculator with
user variables and registered functions.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			cfg, err := config.LoadConfig(cfgFile, cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}

			logger := slog.New(slog.DiscardHandler)
			if cfg.Verbose {
				logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
					Level: slog.LevelDebug,
				}))
				if configFile := config.GetConfigFileUsed(); configFile != "" {
					fmt.Fprintf(os.Stderr, "Using config file: %s\n", configFile)
				}
			}
			cmd.SetContext(context.WithValue(cmd.Context(), loggerKey{}, logger))

			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetVersionTemplate(`{{.Name}} {{.Version}}
`)

	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./numina.yaml)")
	rootCmd.PersistentFlags().Int("precision", config.DefaultPrecision, "significant digits for printed results (-1 for shortest)")
	rootCmd.PersistentFlags().Int("max-depth", config.DefaultMaxDepth, "maximum expression nesting depth")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Verbose output")

	rootCmd.AddCommand(
		commands.NewEvalCommand(),
		commands.NewSimplifyCommand(),
		commands.NewDiffCommand(),
		commands.NewREPLCommand(GetLogger),
		commands.NewVersionCommand(Version),
	)

	return rootCmd
}

// GetLogger retrieves the logger from the command context.
func GetLogger(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
		return l
	}
	return slog.New(slog.DiscardHandler)
}

// Execute runs the root command.
func Execute() error {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}
