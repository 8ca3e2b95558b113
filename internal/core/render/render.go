// Package render turns a nested comment tree into flat, indentation-annotated
// rows and draws them onto a display surface.
//
// Traversal is pure: Flatten only produces rows. Surfaces own every side
// effect, and Draw always clears the surface before writing.
package render

import (
	"fmt"
	"time"

	"github.com/hay-kot/threads/internal/core/comment"
)

const (
	// IndentStep is the indentation added per nesting level.
	IndentStep = 20

	// EmptyPlaceholder is drawn instead of rows when there are no comments.
	EmptyPlaceholder = "No comments found."

	// DefaultTimeFormat is the layout used for creation times.
	DefaultTimeFormat = "2006-01-02 15:04:05"
)

// Row is a single render instruction for one comment.
type Row struct {
	ID        int
	ParentID  *int
	Text      string // raw, unsanitized
	CreatedAt time.Time
	Depth     int
	Indent    int
}

// ReplyFormID is the stable address of the row's reply panel.
func (r Row) ReplyFormID() string {
	return ReplyFormID(r.ID)
}

// ReplyFormID returns the reply panel address for a comment id.
func ReplyFormID(id int) string {
	return fmt.Sprintf("reply-form-%d", id)
}

// Flatten converts roots into depth-first, pre-order rows.
func Flatten(roots []*comment.Comment) []Row {
	rows := make([]Row, 0, comment.Count(roots))
	return flatten(rows, roots, 0)
}

func flatten(rows []Row, nodes []*comment.Comment, depth int) []Row {
	for _, c := range nodes {
		if c == nil {
			continue
		}
		rows = append(rows, Row{
			ID:        c.ID,
			ParentID:  c.ParentID,
			Text:      c.Text,
			CreatedAt: c.CreatedAt,
			Depth:     depth,
			Indent:    depth * IndentStep,
		})
		rows = flatten(rows, c.Children, depth+1)
	}
	return rows
}

// Surface is a display target for rendered rows.
type Surface interface {
	// Clear discards everything previously drawn.
	Clear()
	// Placeholder draws msg in place of an empty list.
	Placeholder(msg string)
	// Row draws a single comment row.
	Row(r Row)
}

// Draw clears s and redraws it from roots. An empty tree draws only the
// placeholder.
func Draw(s Surface, roots []*comment.Comment) {
	s.Clear()

	rows := Flatten(roots)
	if len(rows) == 0 {
		s.Placeholder(EmptyPlaceholder)
		return
	}

	for _, r := range rows {
		s.Row(r)
	}
}

// FormatTime renders t in local time using layout, falling back to
// DefaultTimeFormat.
func FormatTime(t time.Time, layout string) string {
	if layout == "" {
		layout = DefaultTimeFormat
	}
	return t.Local().Format(layout)
}
