package commands

import (
	"fmt"

	"github.com/numina-labs/numina/internal/cli/config"
	"github.com/numina-labs/numina/pkg/symbolic"
	"github.com/spf13/cobra"
)

// NewSimplifyCommand creates the simplify command.
func NewSimplifyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "simplify <expression>",
		Short: "Fold constant subtrees of an expression",
		Long: `Parse an expression and fold every fully-literal subtree into a
single constant. No other rewrites are applied: x * 0 stays as written.`,
		Example: `  numina simplify "2 + 3 * 4"
  numina simplify "x + 2 * 3"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Current()

			expr, err := symbolic.ParseWithLimit(args[0], cfg.MaxDepth)
			if err != nil {
				return err
			}
			expr = symbolic.Simplify(expr)
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), expr.String())
			return nil
		},
	}
}
