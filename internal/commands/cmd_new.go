package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/urfave/cli/v3"
)

type NewCmd struct {
	flags *Flags

	// Command-specific flags
	parent string
	text   string
}

// NewNewCmd creates a new new command
func NewNewCmd(flags *Flags) *NewCmd {
	return &NewCmd{flags: flags}
}

// Register adds the new command to the application
func (cmd *NewCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "new",
		Usage:     "Post a new comment",
		UsageText: "threads new [--parent ID] [TEXT...]",
		Description: `Posts a comment and prints the refreshed tree.

With --parent the comment is posted as a reply to that comment. When TEXT is
omitted and stdin is a terminal, an interactive form prompts for it.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "parent",
				Aliases:     []string{"p"},
				Usage:       "id of the comment to reply to",
				Destination: &cmd.parent,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *NewCmd) run(ctx context.Context, c *cli.Command) error {
	cmd.text = strings.Join(c.Args().Slice(), " ")

	if strings.TrimSpace(cmd.text) == "" && isTerminal(os.Stdin) {
		if err := cmd.runForm(); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil
			}
			return fmt.Errorf("form: %w", err)
		}
	}

	app := cmd.flags.App
	if err := app.Controller.Create(ctx, cmd.text, cmd.parent); err != nil {
		return err
	}

	return writeBuffer(c.Root().Writer, app.Buffer, cmd.flags.Config)
}

func (cmd *NewCmd) runForm() error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewText().
				Title("Comment").
				Validate(validateText).
				Value(&cmd.text),
			huh.NewInput().
				Title("Parent ID").
				Description("Leave empty for a top-level comment").
				Validate(validateParent).
				Value(&cmd.parent),
		),
	).WithTheme(huh.ThemeCharm()).Run()
}

func validateText(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("comment is required")
	}
	return nil
}

func validateParent(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if _, err := strconv.Atoi(s); err != nil {
		return fmt.Errorf("must be a number")
	}
	return nil
}
