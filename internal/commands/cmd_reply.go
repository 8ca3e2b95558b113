package commands

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/urfave/cli/v3"
)

type ReplyCmd struct {
	flags *Flags
}

// NewReplyCmd creates a new reply command
func NewReplyCmd(flags *Flags) *ReplyCmd {
	return &ReplyCmd{flags: flags}
}

// Register adds the reply command to the application
func (cmd *ReplyCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:        "reply",
		Usage:       "Reply to a comment",
		UsageText:   "threads reply ID TEXT...",
		Description: "Posts TEXT as a reply to comment ID and prints the refreshed tree.",
		Action:      cmd.run,
	})

	return app
}

func (cmd *ReplyCmd) run(ctx context.Context, c *cli.Command) error {
	if c.Args().Len() < 1 {
		return fmt.Errorf("comment id is required")
	}

	id, err := parseID(c.Args().First())
	if err != nil {
		return err
	}
	text := strings.Join(c.Args().Tail(), " ")

	app := cmd.flags.App
	if err := app.Controller.SubmitReply(ctx, id, text); err != nil {
		return err
	}

	return writeBuffer(c.Root().Writer, app.Buffer, cmd.flags.Config)
}

func parseID(s string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("invalid comment id %q", s)
	}
	return id, nil
}
