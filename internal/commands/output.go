package commands

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/hay-kot/threads/internal/client"
	"github.com/hay-kot/threads/internal/core/comment"
	"github.com/hay-kot/threads/internal/core/config"
	"github.com/hay-kot/threads/internal/core/render"
	"github.com/hay-kot/threads/internal/threads"
	"github.com/hay-kot/threads/pkg/iojson"
)

// Output formats accepted by --format.
const (
	FormatText = "text"
	FormatHTML = "html"
	FormatJSON = "json"
)

func validFormat(format string) error {
	switch format {
	case FormatText, FormatHTML, FormatJSON:
		return nil
	default:
		return fmt.Errorf("unknown format %q (want text, html or json)", format)
	}
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// textWriter returns a text surface for w, styled only when w is a terminal.
func textWriter(w io.Writer, cfg *config.Config) *render.TextWriter {
	return render.NewTextWriter(render.TextOptions{
		TimeFormat:  cfg.Display.TimeFormat,
		IndentWidth: cfg.Display.IndentWidth,
		Styled:      isTerminal(w),
	})
}

// failure reports err for format. JSON mode writes an iojson.Error to ew and
// exits non-zero without repeating the message; other formats return err.
func failure(ew io.Writer, format string, err error) error {
	if format != FormatJSON {
		return err
	}

	data := map[string]any{}
	var reqErr *threads.RequestError
	if errors.As(err, &reqErr) {
		data["op"] = reqErr.Op
	}
	var statusErr *client.StatusError
	if errors.As(err, &statusErr) {
		data["status"] = statusErr.Code
	}

	if werr := iojson.WriteError(ew, err.Error(), data); werr != nil {
		return err
	}
	return cli.Exit("", 1)
}

// writeTree writes roots to w in format.
func writeTree(w io.Writer, roots []*comment.Comment, format string, cfg *config.Config) error {
	switch format {
	case FormatJSON:
		if roots == nil {
			roots = []*comment.Comment{}
		}
		return iojson.WriteWith(w, os.Stderr, roots)
	case FormatHTML:
		hw := render.NewHTMLWriter(cfg.Display.TimeFormat)
		render.Draw(hw, roots)
		_, err := hw.WriteTo(w)
		return err
	default:
		tw := textWriter(w, cfg)
		render.Draw(tw, roots)
		_, err := tw.WriteTo(w)
		return err
	}
}

// writeBuffer replays the last drawn tree onto w as text.
func writeBuffer(w io.Writer, b *render.Buffer, cfg *config.Config) error {
	tw := textWriter(w, cfg)
	b.DrawTo(tw)
	_, err := tw.WriteTo(w)
	return err
}
