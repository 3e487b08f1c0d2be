// Package commands_test provides tests for CLI command creation and execution.
package commands

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/numina-labs/numina/internal/cli/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEvalCommand(t *testing.T) {
	cmd := NewEvalCommand()

	assert.Equal(t, "eval <expression>", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")
	assert.NotEmpty(t, cmd.Example, "Example should not be empty")

	for _, flag := range []string{"var", "simplify"} {
		assert.NotNil(t, cmd.Flags().Lookup(flag), "flag %q should exist", flag)
	}
}

func TestEvalCommandExecute(t *testing.T) {
	config.ResetConfig()

	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "literal arithmetic",
			args: []string{"2 + 3 * 4"},
			want: "14",
		},
		{
			name: "variable binding",
			args: []string{"x * y + 1", "--var", "x=2", "--var", "y=3"},
			want: "7",
		},
		{
			name: "unbound variable is NaN",
			args: []string{"x + 1"},
			want: "NaN",
		},
		{
			name: "named constant",
			args: []string{"two_pi / 2"},
			want: "3.141592653589793",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := NewEvalCommand()
			buf := new(bytes.Buffer)
			cmd.SetOut(buf)
			cmd.SetErr(buf)
			cmd.SetArgs(tt.args)

			require.NoError(t, cmd.Execute())
			assert.Equal(t, tt.want, strings.TrimSpace(buf.String()))
		})
	}
}

func TestEvalCommandErrors(t *testing.T) {
	config.ResetConfig()

	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{
			name:    "trailing input",
			args:    []string{"2 3"},
			wantErr: "parse error",
		},
		{
			name:    "malformed binding",
			args:    []string{"x + 1", "--var", "x"},
			wantErr: "invalid binding",
		},
		{
			name:    "non-numeric binding value",
			args:    []string{"x + 1", "--var", "x=abc"},
			wantErr: "invalid value",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := NewEvalCommand()
			cmd.SetOut(new(bytes.Buffer))
			cmd.SetErr(new(bytes.Buffer))
			cmd.SetArgs(tt.args)

			err := cmd.Execute()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestNewSimplifyCommand(t *testing.T) {
	cmd := NewSimplifyCommand()

	assert.Equal(t, "simplify <expression>", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")
}

func TestSimplifyCommandExecute(t *testing.T) {
	config.ResetConfig()

	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "fully literal",
			args: []string{"2 + 3 * 4"},
			want: "14",
		},
		{
			name: "mixed subtree",
			args: []string{"x + 2 * 3"},
			want: "x + 6",
		},
		{
			name: "no fold across variables",
			args: []string{"x * 0"},
			want: "x * 0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := NewSimplifyCommand()
			buf := new(bytes.Buffer)
			cmd.SetOut(buf)
			cmd.SetErr(buf)
			cmd.SetArgs(tt.args)

			require.NoError(t, cmd.Execute())
			assert.Equal(t, tt.want, strings.TrimSpace(buf.String()))
		})
	}
}

func TestNewDiffCommand(t *testing.T) {
	cmd := NewDiffCommand()

	assert.Equal(t, "diff <expression>", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")
	assert.NotEmpty(t, cmd.Example, "Example should not be empty")

	for _, flag := range []string{"by", "simplify", "at"} {
		assert.NotNil(t, cmd.Flags().Lookup(flag), "flag %q should exist", flag)
	}
}

func TestDiffCommandExecute(t *testing.T) {
	config.ResetConfig()

	tests := []struct {
		name string
		args []string
		want []string
	}{
		{
			name: "constant derivative",
			args: []string{"5", "--by", "x"},
			want: []string{"0"},
		},
		{
			name: "product rule simplified",
			args: []string{"x * 3", "--by", "x", "--simplify"},
			want: []string{"3"},
		},
		{
			name: "evaluate at point",
			args: []string{"x * x", "--by", "x", "--simplify", "--at", "x=4"},
			want: []string{"8"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := NewDiffCommand()
			buf := new(bytes.Buffer)
			cmd.SetOut(buf)
			cmd.SetErr(buf)
			cmd.SetArgs(tt.args)

			require.NoError(t, cmd.Execute())
			for _, want := range tt.want {
				assert.Contains(t, buf.String(), want)
			}
		})
	}
}

func TestDiffCommandRejectsPower(t *testing.T) {
	config.ResetConfig()

	cmd := NewDiffCommand()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"x ^ 2", "--by", "x"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot differentiate")
}

func TestNewREPLCommand(t *testing.T) {
	getLogger := func(context.Context) *slog.Logger {
		return slog.New(slog.DiscardHandler)
	}
	cmd := NewREPLCommand(getLogger)

	assert.Equal(t, "repl", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")
	assert.Contains(t, cmd.Aliases, "shell")
}
