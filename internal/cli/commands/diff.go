package commands

import (
	"fmt"

	"github.com/numina-labs/numina/internal/cli/config"
	"github.com/numina-labs/numina/pkg/symbolic"
	"github.com/spf13/cobra"
)

// DiffOptions holds options for the diff command.
type DiffOptions struct {
	Variable string   // differentiate with respect to this variable
	Simplify bool     // fold constants in the derivative
	At       []string // name=value bindings; also evaluate the derivative
}

// NewDiffCommand creates the diff command.
func NewDiffCommand() *cobra.Command {
	opts := &DiffOptions{}
	cmd := &cobra.Command{
		Use:   "diff <expression>",
		Short: "Differentiate an expression symbolically",
		Long: `Compute the symbolic derivative of an expression with respect to one
variable, using the sum, difference, product, and quotient rules.
Exponentiation has no rule and is rejected.`,
		Example: `  # d/dx of x*y is y
  numina diff "x * y" --by x

  # Fold constants in the result
  numina diff "x * 3 + 1" --by x --simplify

  # Evaluate the derivative at a point
  numina diff "x / y" --by x --at x=3 --at y=4`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Current()

			expr, err := symbolic.ParseWithLimit(args[0], cfg.MaxDepth)
			if err != nil {
				return err
			}

			derivative, err := symbolic.Diff(expr, opts.Variable)
			if err != nil {
				return err
			}
			if opts.Simplify {
				derivative = symbolic.Simplify(derivative)
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), derivative.String())

			if len(opts.At) > 0 {
				bindings, err := parseBindings(cfg, opts.At)
				if err != nil {
					return err
				}
				value := symbolic.Evaluate(derivative, symbolic.MapLookup(bindings))
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), formatValue(value, cfg.Precision))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.Variable, "by", "b", "x", "variable to differentiate by")
	cmd.Flags().BoolVar(&opts.Simplify, "simplify", false, "fold constant subtrees in the derivative")
	cmd.Flags().StringArrayVar(&opts.At, "at", nil, "evaluate the derivative with binding name=value (repeatable)")

	return cmd
}
