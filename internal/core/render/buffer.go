package render

import "sync"

// Buffer is an in-memory Surface safe for concurrent use. It holds the rows of
// the last draw along with the reply panel state of each row.
type Buffer struct {
	mu          sync.RWMutex
	rows        []Row
	placeholder string
	expanded    map[string]bool // keyed by reply form id
	draws       int
}

// NewBuffer returns an empty buffer.
func NewBuffer() *Buffer {
	return &Buffer{expanded: make(map[string]bool)}
}

// Clear implements Surface. All reply panels collapse.
func (b *Buffer) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.rows = nil
	b.placeholder = ""
	b.expanded = make(map[string]bool)
	b.draws++
}

// Placeholder implements Surface.
func (b *Buffer) Placeholder(msg string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.placeholder = msg
}

// Row implements Surface.
func (b *Buffer) Row(r Row) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.rows = append(b.rows, r)
}

// Rows returns a copy of the drawn rows.
func (b *Buffer) Rows() []Row {
	b.mu.RLock()
	defer b.mu.RUnlock()

	out := make([]Row, len(b.rows))
	copy(out, b.rows)
	return out
}

// PlaceholderText returns the placeholder drawn by the last draw, if any.
func (b *Buffer) PlaceholderText() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.placeholder
}

// Draws returns how many times the buffer has been cleared.
func (b *Buffer) Draws() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.draws
}

// Lookup returns the row with the given comment id.
func (b *Buffer) Lookup(id int) (Row, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, r := range b.rows {
		if r.ID == id {
			return r, true
		}
	}
	return Row{}, false
}

// SetExpanded opens or closes the reply panel addressed by formID. It returns
// false when no drawn row owns that panel.
func (b *Buffer) SetExpanded(formID string, expanded bool) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.hasForm(formID) {
		return false
	}
	if expanded {
		b.expanded[formID] = true
	} else {
		delete(b.expanded, formID)
	}
	return true
}

// Expanded reports whether the reply panel addressed by formID is open.
func (b *Buffer) Expanded(formID string) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.expanded[formID]
}

func (b *Buffer) hasForm(formID string) bool {
	for _, r := range b.rows {
		if r.ReplyFormID() == formID {
			return true
		}
	}
	return false
}

// DrawTo replays the last draw onto s.
func (b *Buffer) DrawTo(s Surface) {
	b.mu.RLock()
	rows := make([]Row, len(b.rows))
	copy(rows, b.rows)
	placeholder := b.placeholder
	b.mu.RUnlock()

	s.Clear()
	if placeholder != "" {
		s.Placeholder(placeholder)
	}
	for _, r := range rows {
		s.Row(r)
	}
}
