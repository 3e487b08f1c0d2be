package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/chzyer/readline"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/numina-labs/numina/internal/cli/config"
	"github.com/numina-labs/numina/pkg/calc"
	"github.com/numina-labs/numina/pkg/mathutil"
	"github.com/spf13/cobra"
)

var (
	replBannerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	replErrorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	replMutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// NewREPLCommand creates the repl command.
func NewREPLCommand(getLogger func(context.Context) *slog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:     "repl",
		Aliases: []string{"shell"},
		Short:   "Start an interactive calculator session",
		Long: `Start a read-eval-print loop for numeric expressions.

The session supports variable assignment (x = 3), named constants
(pi, e, sqrt2, ...), built-in functions (sin, sqrt, min, ...), and
dot-commands for inspecting session state.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runREPL(cmd, getLogger(cmd.Context()))
		},
	}
}

func runREPL(cmd *cobra.Command, logger *slog.Logger) error {
	cfg := config.Current()

	env := calc.NewEnv(calc.Config{Builtins: true, Logger: logger})
	for name, value := range cfg.Variables {
		if err := env.SetVar(name, value); err != nil {
			logger.Warn("skipping configured variable", "name", name, "error", err)
		}
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "numina> ",
		HistoryFile:     cfg.HistoryFile,
		AutoComplete:    newReplCompleter(env),
		InterruptPrompt: "^C",
		EOFPrompt:       ".quit",
	})
	if err != nil {
		return fmt.Errorf("failed to initialize REPL: %w", err)
	}
	defer func() { _ = rl.Close() }()

	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintln(out, replBannerStyle.Render("Numina Calculator"))
	_, _ = fmt.Fprintln(out, replMutedStyle.Render("Type .help for commands, .quit to exit"))
	_, _ = fmt.Fprintln(out)

	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if errors.Is(err, io.EOF) {
			break
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, ".") {
			if handleReplCommand(cmd, env, line) {
				if line == ".quit" || line == ".exit" {
					break
				}
				continue
			}
		}

		value, err := env.Eval(line)
		if err != nil {
			_, _ = fmt.Fprintln(cmd.ErrOrStderr(), replErrorStyle.Render(fmt.Sprintf("Error: %v", err)))
			continue
		}
		_, _ = fmt.Fprintln(out, formatValue(value, cfg.Precision))
	}

	return nil
}

func handleReplCommand(cmd *cobra.Command, env *calc.Env, line string) bool {
	out := cmd.OutOrStdout()
	command := strings.ToLower(strings.Fields(line)[0])

	switch command {
	case ".quit", ".exit":
		return true

	case ".help":
		printReplHelp(out)
		return true

	case ".vars":
		names := env.VarNames()
		if len(names) == 0 {
			_, _ = fmt.Fprintln(out, replMutedStyle.Render("no variables defined"))
			return true
		}
		t := table.NewWriter()
		t.SetOutputMirror(out)
		t.SetStyle(table.StyleLight)
		t.AppendHeader(table.Row{"Name", "Value"})
		for _, name := range names {
			value, _ := env.Var(name)
			t.AppendRow(table.Row{name, value})
		}
		t.Render()
		return true

	case ".funcs":
		_, _ = fmt.Fprintln(out, strings.Join(env.FuncNames(), ", "))
		return true

	case ".consts":
		t := table.NewWriter()
		t.SetOutputMirror(out)
		t.SetStyle(table.StyleLight)
		t.AppendHeader(table.Row{"Name", "Value"})
		for _, name := range mathutil.ConstantNames() {
			value, _ := mathutil.LookupConstant(name)
			t.AppendRow(table.Row{name, value})
		}
		t.Render()
		return true

	case ".clear":
		fmt.Print("\033[H\033[2J")
		return true

	default:
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Unknown command: %s (type .help for commands)\n", command)
		return true
	}
}

func printReplHelp(w io.Writer) {
	help := `
Commands:
  .help           Show this help message
  .vars           List session variables
  .funcs          List available functions
  .consts         List named constants
  .clear          Clear the screen
  .quit / .exit   Exit the REPL

Tips:
  - Assign variables with name = expression (e.g. r = 2.5)
  - Use arrow keys to navigate history
  - Tab completion works for functions and constants
`
	_, _ = fmt.Fprintln(w, help)
}

// newReplCompleter creates a readline completer for function and
// constant names plus the dot-commands.
func newReplCompleter(env *calc.Env) *readline.PrefixCompleter {
	var items []readline.PrefixCompleterInterface
	for _, name := range env.FuncNames() {
		items = append(items, readline.PcItem(name+"("))
	}
	for _, name := range mathutil.ConstantNames() {
		items = append(items, readline.PcItem(name))
	}
	items = append(items,
		readline.PcItem(".help"),
		readline.PcItem(".vars"),
		readline.PcItem(".funcs"),
		readline.PcItem(".consts"),
		readline.PcItem(".clear"),
		readline.PcItem(".quit"),
		readline.PcItem(".exit"),
	)
	return readline.NewPrefixCompleter(items...)
}
