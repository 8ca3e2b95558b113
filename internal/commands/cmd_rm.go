package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/hay-kot/threads/internal/threads"
)

type RmCmd struct {
	flags *Flags

	// flags
	yes bool
}

// NewRmCmd creates a new rm command
func NewRmCmd(flags *Flags) *RmCmd {
	return &RmCmd{flags: flags}
}

// Register adds the rm command to the application
func (cmd *RmCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "rm",
		Usage:     "Delete a comment",
		UsageText: "threads rm [--yes] ID",
		Description: `Deletes comment ID and prints the refreshed tree. The service decides
what happens to its replies.

A confirmation prompt is shown unless --yes is given. Without a terminal
on stdin, --yes is required.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "yes",
				Aliases:     []string{"y"},
				Usage:       "skip the confirmation prompt",
				Destination: &cmd.yes,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *RmCmd) run(ctx context.Context, c *cli.Command) error {
	if c.Args().Len() != 1 {
		return fmt.Errorf("exactly one comment id is required")
	}

	id, err := parseID(c.Args().First())
	if err != nil {
		return err
	}

	confirm, err := cmd.confirmer()
	if err != nil {
		return err
	}

	deleted := false
	approve := threads.ConfirmFunc(func(prompt string) bool {
		deleted = confirm.Confirm(prompt)
		return deleted
	})

	app := cmd.flags.App
	if err := app.Controller.Delete(ctx, id, approve); err != nil {
		return err
	}
	if !deleted {
		log.Debug().Int("id", id).Msg("delete cancelled")
		return nil
	}

	return writeBuffer(c.Root().Writer, app.Buffer, cmd.flags.Config)
}

func (cmd *RmCmd) confirmer() (threads.Confirmer, error) {
	if cmd.yes {
		return threads.Approve, nil
	}
	if !isTerminal(os.Stdin) {
		return nil, fmt.Errorf("stdin is not a terminal; pass --yes to delete without confirmation")
	}

	return threads.ConfirmFunc(func(prompt string) bool {
		var ok bool
		err := huh.NewConfirm().
			Title(prompt).
			Affirmative("Delete").
			Negative("Cancel").
			Value(&ok).
			WithTheme(huh.ThemeCharm()).
			Run()
		return err == nil && ok
	}), nil
}
