package render

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hay-kot/threads/internal/core/comment"
)

func intPtr(i int) *int { return &i }

var created = time.Date(2025, 9, 20, 12, 30, 0, 0, time.UTC)

func nestedTree() []*comment.Comment {
	return []*comment.Comment{
		{
			ID: 1, Text: "first", CreatedAt: created,
			Children: []*comment.Comment{
				{ID: 2, ParentID: intPtr(1), Text: "reply", CreatedAt: created, Children: []*comment.Comment{
					{ID: 3, ParentID: intPtr(2), Text: "deep", CreatedAt: created},
				}},
			},
		},
		{ID: 4, Text: "second", CreatedAt: created},
	}
}

// chain builds a single branch n levels deep.
func chain(n int) []*comment.Comment {
	root := &comment.Comment{ID: 1}
	cur := root
	for i := 2; i <= n; i++ {
		next := &comment.Comment{ID: i, ParentID: intPtr(cur.ID)}
		cur.Children = []*comment.Comment{next}
		cur = next
	}
	return []*comment.Comment{root}
}

func TestFlatten_OrderAndIndent(t *testing.T) {
	rows := Flatten(nestedTree())

	require.Len(t, rows, 4)

	ids := make([]int, len(rows))
	for i, r := range rows {
		ids[i] = r.ID
	}
	assert.Equal(t, []int{1, 2, 3, 4}, ids)

	assert.Equal(t, 0, rows[0].Indent)
	assert.Equal(t, 20, rows[1].Indent)
	assert.Equal(t, 40, rows[2].Indent)
	assert.Equal(t, 0, rows[3].Indent)
	assert.Equal(t, "reply-form-3", rows[2].ReplyFormID())
}

func TestFlatten_CountAndIndentProperty(t *testing.T) {
	trees := [][]*comment.Comment{
		nil,
		nestedTree(),
		chain(1),
		chain(50),
	}

	for i, tree := range trees {
		t.Run(fmt.Sprintf("tree %d", i), func(t *testing.T) {
			rows := Flatten(tree)
			assert.Len(t, rows, comment.Count(tree))

			depths := map[int]int{}
			comment.Walk(tree, func(c *comment.Comment, depth int) bool {
				depths[c.ID] = depth
				return true
			})
			for _, r := range rows {
				assert.Equal(t, IndentStep*depths[r.ID], r.Indent, "row %d", r.ID)
				assert.Equal(t, depths[r.ID], r.Depth)
			}
		})
	}
}

func TestDraw_Empty(t *testing.T) {
	b := NewBuffer()
	Draw(b, []*comment.Comment{})

	assert.Equal(t, EmptyPlaceholder, b.PlaceholderText())
	assert.Empty(t, b.Rows())
}

func TestDraw_ReplacesPreviousContent(t *testing.T) {
	b := NewBuffer()
	Draw(b, nestedTree())
	require.Len(t, b.Rows(), 4)

	Draw(b, []*comment.Comment{{ID: 9, Text: "only"}})
	rows := b.Rows()
	require.Len(t, rows, 1)
	assert.Equal(t, 9, rows[0].ID)
	assert.Empty(t, b.PlaceholderText())
	assert.Equal(t, 2, b.Draws())
}

func TestBuffer_PanelsCollapseOnRedraw(t *testing.T) {
	b := NewBuffer()
	Draw(b, nestedTree())

	assert.False(t, b.Expanded(ReplyFormID(2)))
	assert.True(t, b.SetExpanded(ReplyFormID(2), true))
	assert.True(t, b.Expanded(ReplyFormID(2)))

	assert.False(t, b.SetExpanded(ReplyFormID(99), true), "unknown form is not addressable")

	Draw(b, nestedTree())
	assert.False(t, b.Expanded(ReplyFormID(2)))
}

func TestBuffer_Lookup(t *testing.T) {
	b := NewBuffer()
	Draw(b, nestedTree())

	r, ok := b.Lookup(3)
	require.True(t, ok)
	assert.Equal(t, 2, r.Depth)

	_, ok = b.Lookup(100)
	assert.False(t, ok)
}

func TestBuffer_DrawTo(t *testing.T) {
	b := NewBuffer()
	Draw(b, nestedTree())

	w := NewTextWriter(TextOptions{IndentWidth: 2})
	Draw(w, nestedTree())
	want := w.String()

	replay := NewTextWriter(TextOptions{IndentWidth: 2})
	b.DrawTo(replay)
	assert.Equal(t, want, replay.String())

	Draw(b, nil)
	b.DrawTo(replay)
	assert.Equal(t, EmptyPlaceholder+"\n", replay.String())
}

func TestHTMLWriter(t *testing.T) {
	w := NewHTMLWriter("2006-01-02")
	Draw(w, []*comment.Comment{
		{ID: 7, Text: `<script>alert("x")</script>`, CreatedAt: created, Children: []*comment.Comment{
			{ID: 8, ParentID: intPtr(7), Text: "child", CreatedAt: created},
		}},
	})

	out := w.String()
	assert.Contains(t, out, `&lt;script&gt;alert(&#34;x&#34;)&lt;/script&gt;`)
	assert.NotContains(t, out, "<script>")
	assert.Contains(t, out, `id="reply-form-7"`)
	assert.Contains(t, out, `id="reply-form-8"`)
	assert.Contains(t, out, `margin-left: 20px`)
	assert.Contains(t, out, `data-parent-id="8"`)
	assert.Contains(t, out, "ID: 7 | Created: ")
	assert.Equal(t, 2, strings.Count(out, `class="comment"`))
}

func TestHTMLWriter_Empty(t *testing.T) {
	w := NewHTMLWriter("")
	Draw(w, nil)
	assert.Equal(t, "<p>No comments found.</p>\n", w.String())
}

func TestTextWriter(t *testing.T) {
	w := NewTextWriter(TextOptions{IndentWidth: 2})
	Draw(w, nestedTree())

	lines := strings.Split(strings.TrimRight(w.String(), "\n"), "\n")
	require.Len(t, lines, 8)
	assert.True(t, strings.HasPrefix(lines[0], "#1 · "))
	assert.Equal(t, "  first", lines[1])
	assert.True(t, strings.HasPrefix(lines[2], "  #2 · "))
	assert.Equal(t, "      deep", lines[5])
}

func TestTextWriter_StripsEscapes(t *testing.T) {
	w := NewTextWriter(TextOptions{IndentWidth: 2})
	Draw(w, []*comment.Comment{{ID: 1, Text: "\x1b[2Jgotcha"}})
	assert.Contains(t, w.String(), "  gotcha")
	assert.NotContains(t, w.String(), "\x1b")
}
