package commands

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/hay-kot/criterio"
	"github.com/urfave/cli/v3"

	"github.com/hay-kot/threads/internal/core/config"
	"github.com/hay-kot/threads/internal/core/styles"
	"github.com/hay-kot/threads/pkg/iojson"
)

type ConfigValidateCmd struct {
	flags  *Flags
	format string
}

// NewConfigValidateCmd creates a new config validate command.
func NewConfigValidateCmd(flags *Flags) *ConfigValidateCmd {
	return &ConfigValidateCmd{flags: flags}
}

// Register adds the config validate command to the application.
func (cmd *ConfigValidateCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "config",
		Usage: "Configuration management commands",
		Commands: []*cli.Command{
			{
				Name:        "validate",
				Usage:       "Validate configuration file",
				UsageText:   "threads config validate [options]",
				Description: "Loads the configuration file and reports every invalid field and warning.",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:        "format",
						Usage:       "output format (text, json)",
						Value:       FormatText,
						Destination: &cmd.format,
					},
				},
				Action: cmd.run,
			},
		},
	})

	return app
}

// validationIssue is one invalid field.
type validationIssue struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (cmd *ConfigValidateCmd) run(_ context.Context, c *cli.Command) error {
	// The Before hook skips loading for this command so broken files can be
	// reported field by field.
	cfg, loadErr := config.Load(cmd.flags.ConfigPath)

	var (
		issues   []validationIssue
		warnings []config.ValidationWarning
	)

	switch {
	case loadErr == nil:
		if err := cfg.ValidateDeep(cmd.flags.ConfigPath); err != nil {
			issues = toIssues(err)
		}
		warnings = cfg.Warnings()
	default:
		issues = toIssues(loadErr)
	}

	w := c.Root().Writer
	if cmd.format == FormatJSON {
		if err := iojson.WriteWith(w, c.Root().ErrWriter, struct {
			Valid    bool                       `json:"valid"`
			Errors   []validationIssue          `json:"errors,omitempty"`
			Warnings []config.ValidationWarning `json:"warnings,omitempty"`
		}{
			Valid:    len(issues) == 0,
			Errors:   issues,
			Warnings: warnings,
		}); err != nil {
			return err
		}
	} else {
		writeValidationText(w, cmd.flags.ConfigPath, issues, warnings)
	}

	if len(issues) > 0 {
		return cli.Exit("", 1)
	}
	return nil
}

func toIssues(err error) []validationIssue {
	var fieldErrs criterio.FieldErrors
	if !errors.As(err, &fieldErrs) {
		return []validationIssue{{Field: "config_file", Message: err.Error()}}
	}

	issues := make([]validationIssue, len(fieldErrs))
	for i, fe := range fieldErrs {
		issues[i] = validationIssue{Field: fe.Field, Message: fe.Err.Error()}
	}
	return issues
}

func writeValidationText(w io.Writer, path string, issues []validationIssue, warnings []config.ValidationWarning) {
	styled := isTerminal(w)
	paint := func(s string, ok bool) string {
		if !styled {
			return s
		}
		if ok {
			return styles.TextSuccessStyle.Render(s)
		}
		return styles.TextErrorStyle.Render(s)
	}

	_, _ = fmt.Fprintf(w, "config: %s\n", path)

	for _, warn := range warnings {
		line := fmt.Sprintf("warning %s: %s", warn.Category, warn.Message)
		if styled {
			line = styles.TextWarningStyle.Render(line)
		}
		_, _ = fmt.Fprintln(w, line)
		if warn.Item != "" {
			_, _ = fmt.Fprintf(w, "  Item: %s\n", warn.Item)
		}
	}

	for _, issue := range issues {
		_, _ = fmt.Fprintln(w, paint(fmt.Sprintf("%s: %s", issue.Field, issue.Message), false))
	}

	_, _ = fmt.Fprintln(w)
	if len(issues) == 0 {
		_, _ = fmt.Fprintln(w, paint("Configuration is valid", true))
		return
	}
	_, _ = fmt.Fprintln(w, paint(fmt.Sprintf("%d error(s) found", len(issues)), false))
}
