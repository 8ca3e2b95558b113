package render

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/hay-kot/threads/internal/core/sanitize"
	"github.com/hay-kot/threads/internal/core/styles"
)

// TextWriter renders rows as indented terminal text. Styling is applied only
// when Styled is set so piped output stays plain.
type TextWriter struct {
	buf         bytes.Buffer
	timeFormat  string
	indentWidth int
	styled      bool
}

// TextOptions configures a TextWriter.
type TextOptions struct {
	TimeFormat  string
	IndentWidth int // columns per nesting level
	Styled      bool
}

// NewTextWriter returns a TextWriter.
func NewTextWriter(opts TextOptions) *TextWriter {
	return &TextWriter{
		timeFormat:  opts.TimeFormat,
		indentWidth: opts.IndentWidth,
		styled:      opts.Styled,
	}
}

// Clear implements Surface.
func (t *TextWriter) Clear() {
	t.buf.Reset()
}

// Placeholder implements Surface.
func (t *TextWriter) Placeholder(msg string) {
	if t.styled {
		msg = styles.TextMutedStyle.Render(msg)
	}
	fmt.Fprintln(&t.buf, msg)
}

// Row implements Surface.
func (t *TextWriter) Row(r Row) {
	pad := strings.Repeat(" ", r.Depth*t.indentWidth)

	meta := fmt.Sprintf("#%d · %s", r.ID, FormatTime(r.CreatedAt, t.timeFormat))
	if t.styled {
		meta = styles.TextMutedStyle.Render(meta)
	}

	text := sanitize.Terminal(r.Text)
	lines := strings.Split(text, "\n")

	fmt.Fprintf(&t.buf, "%s%s\n", pad, meta)
	for _, line := range lines {
		if t.styled {
			line = styles.TextForegroundStyle.Render(line)
		}
		fmt.Fprintf(&t.buf, "%s  %s\n", pad, line)
	}
}

// String returns the text drawn so far.
func (t *TextWriter) String() string {
	return t.buf.String()
}

// WriteTo implements io.WriterTo.
func (t *TextWriter) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(t.buf.Bytes())
	return int64(n), err
}
