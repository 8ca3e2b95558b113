package commands

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"github.com/urfave/cli/v3"

	"github.com/hay-kot/threads/internal/core/logging"
	"github.com/hay-kot/threads/internal/tui"
)

type TuiCmd struct {
	flags *Flags
}

// NewTuiCmd creates a new tui command
func NewTuiCmd(flags *Flags) *TuiCmd {
	return &TuiCmd{flags: flags}
}

// Register adds the tui command to the application
func (cmd *TuiCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:   "tui",
		Usage:  "Open the interactive comment browser",
		Action: cmd.Run,
	})

	return app
}

// Run executes the TUI. Exported for use as default command.
func (cmd *TuiCmd) Run(_ context.Context, _ *cli.Command) error {
	app := cmd.flags.App
	cfg := cmd.flags.Config

	m := tui.New(tui.Options{
		Controller:  app.Controller,
		Dispatcher:  app.Dispatcher,
		Keybindings: cfg.Keybindings,
		TimeFormat:  cfg.Display.TimeFormat,
		IndentWidth: cfg.Display.IndentWidth,
		Logger:      logging.Component("tui"),
	})

	if cmd.flags.Stderr != nil {
		cmd.flags.Stderr.Hold()
		defer func() { _ = cmd.flags.Stderr.Release() }()
	}

	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
