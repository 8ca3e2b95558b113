package render

import (
	"bytes"
	"fmt"
	"io"

	"github.com/hay-kot/threads/internal/core/sanitize"
)

// HTMLWriter renders rows as the markup fragment a browser client inserts
// into its comments container. Output accumulates in memory until WriteTo.
type HTMLWriter struct {
	buf        bytes.Buffer
	timeFormat string
}

// NewHTMLWriter returns an HTMLWriter formatting times with layout.
func NewHTMLWriter(layout string) *HTMLWriter {
	return &HTMLWriter{timeFormat: layout}
}

// Clear implements Surface.
func (h *HTMLWriter) Clear() {
	h.buf.Reset()
}

// Placeholder implements Surface.
func (h *HTMLWriter) Placeholder(msg string) {
	fmt.Fprintf(&h.buf, "<p>%s</p>\n", sanitize.HTML(msg))
}

// Row implements Surface.
func (h *HTMLWriter) Row(r Row) {
	fmt.Fprintf(&h.buf, `<div class="comment" style="margin-left: %dpx">
  <div class="text">%s</div>
  <div class="meta">ID: %d | Created: %s</div>
  <div class="actions">
    <button class="reply-btn" data-id="%d">Reply</button>
    <button class="delete-btn" data-id="%d">Delete</button>
  </div>
  <div class="reply-form" id="%s" style="display: none">
    <textarea placeholder="Write your reply..."></textarea>
    <button class="submit-reply-btn" data-parent-id="%d">Submit Reply</button>
    <button class="cancel-reply-btn" data-id="%d">Cancel</button>
  </div>
</div>
`,
		r.Indent,
		sanitize.HTML(r.Text),
		r.ID,
		sanitize.HTML(FormatTime(r.CreatedAt, h.timeFormat)),
		r.ID, r.ID,
		r.ReplyFormID(),
		r.ID, r.ID,
	)
}

// String returns the markup drawn so far.
func (h *HTMLWriter) String() string {
	return h.buf.String()
}

// WriteTo implements io.WriterTo.
func (h *HTMLWriter) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(h.buf.Bytes())
	return int64(n), err
}
