package commands

import (
	"context"

	"github.com/urfave/cli/v3"
)

type LsCmd struct {
	flags *Flags

	// flags
	format string
}

// NewLsCmd creates a new ls command
func NewLsCmd(flags *Flags) *LsCmd {
	return &LsCmd{flags: flags}
}

// Register adds the ls command to the application
func (cmd *LsCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "ls",
		Usage:     "List all comments",
		UsageText: "threads ls [--format text|html|json]",
		Description: `Fetches the complete comment tree and prints it.

Text output indents replies under their parent. HTML output produces the
same markup the browser client draws. JSON output is the tree as returned
by the service.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "format",
				Usage:       "output format (text, html, json)",
				Value:       FormatText,
				Destination: &cmd.format,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *LsCmd) run(ctx context.Context, c *cli.Command) error {
	if err := validFormat(cmd.format); err != nil {
		return err
	}

	app := cmd.flags.App
	if err := app.Controller.Reload(ctx); err != nil {
		return failure(c.Root().ErrWriter, cmd.format, err)
	}

	return writeTree(c.Root().Writer, app.Coordinator.Drawn(), cmd.format, cmd.flags.Config)
}
