package commands

import (
	"fmt"

	"github.com/numina-labs/numina/internal/cli/config"
	"github.com/numina-labs/numina/pkg/symbolic"
	"github.com/spf13/cobra"
)

// EvalOptions holds options for the eval command.
type EvalOptions struct {
	Vars     []string // name=value bindings
	Simplify bool     // fold constants before evaluating
}

// NewEvalCommand creates the eval command.
func NewEvalCommand() *cobra.Command {
	opts := &EvalOptions{}
	cmd := &cobra.Command{
		Use:   "eval <expression>",
		Short: "Evaluate an expression",
		Long: `Parse an expression into a tree and evaluate it numerically.

Unbound variables evaluate to NaN; bind them with --var. Named constants
(pi, e, ln2, ...) are folded at parse time and cannot be rebound.`,
		Example: `  # Literal arithmetic
  numina eval "2 + 3 * 4"

  # With variable bindings
  numina eval "x * y + 1" --var x=2 --var y=3

  # Named constants
  numina eval "two_pi / 2"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Current()

			expr, err := symbolic.ParseWithLimit(args[0], cfg.MaxDepth)
			if err != nil {
				return err
			}
			if opts.Simplify {
				expr = symbolic.Simplify(expr)
			}

			bindings, err := parseBindings(cfg, opts.Vars)
			if err != nil {
				return err
			}

			value := symbolic.Evaluate(expr, symbolic.MapLookup(bindings))
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), formatValue(value, cfg.Precision))
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&opts.Vars, "var", nil, "variable binding name=value (repeatable)")
	cmd.Flags().BoolVar(&opts.Simplify, "simplify", false, "fold constant subtrees before evaluating")

	return cmd
}
