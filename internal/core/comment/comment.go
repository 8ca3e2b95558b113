// Package comment defines the comment tree as served by the comment service.
package comment

import "time"

// Comment is a node in the comment tree. Children arrive fully nested from
// the server; the client never assembles the tree itself.
type Comment struct {
	ID        int        `json:"id"`
	ParentID  *int       `json:"parent_id"`
	Text      string     `json:"text"`
	CreatedAt time.Time  `json:"created_at"`
	Children  []*Comment `json:"children"`
}

// IsRoot reports whether the comment has no parent.
func (c *Comment) IsRoot() bool {
	return c.ParentID == nil
}

// CreateRequest is the body for creating a comment or reply.
type CreateRequest struct {
	Text     string `json:"text"`
	ParentID *int   `json:"parent_id,omitempty"`
}

// SearchRequest is the body for a text search.
type SearchRequest struct {
	Text string `json:"text"`
}

// Walk visits every comment depth-first in pre-order. Roots have depth 0.
// Returning false from fn stops the walk. Nil entries are skipped.
func Walk(roots []*Comment, fn func(c *Comment, depth int) bool) {
	walk(roots, 0, fn)
}

func walk(nodes []*Comment, depth int, fn func(*Comment, int) bool) bool {
	for _, c := range nodes {
		if c == nil {
			continue
		}
		if !fn(c, depth) {
			return false
		}
		if !walk(c.Children, depth+1, fn) {
			return false
		}
	}
	return true
}

// Count returns the number of comments across all levels.
func Count(roots []*Comment) int {
	n := 0
	Walk(roots, func(*Comment, int) bool {
		n++
		return true
	})
	return n
}

// Find returns the comment with the given id, or nil.
func Find(roots []*Comment, id int) *Comment {
	var found *Comment
	Walk(roots, func(c *Comment, _ int) bool {
		if c.ID == id {
			found = c
			return false
		}
		return true
	})
	return found
}
