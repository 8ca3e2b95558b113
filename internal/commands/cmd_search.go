package commands

import (
	"context"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/hay-kot/threads/internal/threads"
)

type SearchCmd struct {
	flags *Flags

	// flags
	format string
}

// NewSearchCmd creates a new search command
func NewSearchCmd(flags *Flags) *SearchCmd {
	return &SearchCmd{flags: flags}
}

// Register adds the search command to the application
func (cmd *SearchCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:        "search",
		Usage:       "Search comments by text",
		UsageText:   "threads search [--format text|html|json] QUERY...",
		Description: "Prints every comment whose text matches QUERY, along with its replies.",
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

func (cmd *SearchCmd) run(ctx context.Context, c *cli.Command) error {
	if err := validFormat(cmd.format); err != nil {
		return err
	}

	app := cmd.flags.App
	query := strings.Join(c.Args().Slice(), " ")
	if err := app.Controller.Search(ctx, query); err != nil {
		if threads.IsValidation(err) {
			return err
		}
		return failure(c.Root().ErrWriter, cmd.format, err)
	}

	return writeTree(c.Root().Writer, app.Coordinator.Drawn(), cmd.format, cmd.flags.Config)
}
