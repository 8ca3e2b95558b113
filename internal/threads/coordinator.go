// Package threads holds the client's action controller and the coordinator
// that keeps the displayed tree in step with the comment service.
package threads

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/hay-kot/threads/internal/core/comment"
	"github.com/hay-kot/threads/internal/core/render"
)

// Backend is the comment service as seen by the client.
type Backend interface {
	All(ctx context.Context) ([]*comment.Comment, error)
	Create(ctx context.Context, req comment.CreateRequest) error
	Delete(ctx context.Context, id int) error
	Search(ctx context.Context, text string) ([]*comment.Comment, error)
}

// Mode is what the surface currently shows.
type Mode int

const (
	ModeAll Mode = iota
	ModeSearch
)

func (m Mode) String() string {
	if m == ModeSearch {
		return "search"
	}
	return "all"
}

// Snapshot is one complete server read waiting to be drawn.
type Snapshot struct {
	Ticket   uint64
	Mode     Mode
	Query    string
	Comments []*comment.Comment
}

// Coordinator performs full reloads and draws them onto a surface. Each fetch
// takes a ticket; a snapshot is drawn only when its ticket is newer than the
// last drawn one, so late responses from superseded fetches are dropped.
type Coordinator struct {
	backend Backend
	surface *render.Buffer
	logger  zerolog.Logger

	tickets atomic.Uint64

	mu      sync.Mutex
	applied uint64
	mode    Mode
	query   string
	drawn   []*comment.Comment
}

// NewCoordinator creates a coordinator drawing onto surface.
func NewCoordinator(backend Backend, surface *render.Buffer, logger zerolog.Logger) *Coordinator {
	return &Coordinator{
		backend: backend,
		surface: surface,
		logger:  logger,
	}
}

// Surface returns the buffer the coordinator draws onto.
func (c *Coordinator) Surface() *render.Buffer {
	return c.surface
}

// Begin reserves the next ticket.
func (c *Coordinator) Begin() uint64 {
	return c.tickets.Add(1)
}

// Fetch reads the complete tree for ticket.
func (c *Coordinator) Fetch(ctx context.Context, ticket uint64) (Snapshot, error) {
	roots, err := c.backend.All(ctx)
	if err != nil {
		return Snapshot{}, &RequestError{Op: OpLoad, Err: err}
	}
	return Snapshot{Ticket: ticket, Mode: ModeAll, Comments: roots}, nil
}

// Search reads the trees matching query for ticket.
func (c *Coordinator) Search(ctx context.Context, ticket uint64, query string) (Snapshot, error) {
	roots, err := c.backend.Search(ctx, query)
	if err != nil {
		return Snapshot{}, &RequestError{Op: OpSearch, Err: err}
	}
	return Snapshot{Ticket: ticket, Mode: ModeSearch, Query: query, Comments: roots}, nil
}

// Apply draws s unless a newer snapshot has already been drawn. It reports
// whether s was drawn.
func (c *Coordinator) Apply(s Snapshot) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if s.Ticket <= c.applied {
		c.logger.Debug().
			Uint64("ticket", s.Ticket).
			Uint64("applied", c.applied).
			Msg("discarding stale snapshot")
		return false
	}

	c.applied = s.Ticket
	c.mode = s.Mode
	c.query = s.Query
	c.drawn = s.Comments
	render.Draw(c.surface, s.Comments)

	c.logger.Debug().
		Uint64("ticket", s.Ticket).
		Str("mode", s.Mode.String()).
		Int("comments", comment.Count(s.Comments)).
		Msg("snapshot drawn")
	return true
}

// Reload fetches the complete tree and draws it.
func (c *Coordinator) Reload(ctx context.Context) error {
	s, err := c.Fetch(ctx, c.Begin())
	if err != nil {
		return err
	}
	c.Apply(s)
	return nil
}

// ShowSearch fetches the results for query and draws them in place of the
// current tree. On failure the current tree stays drawn.
func (c *Coordinator) ShowSearch(ctx context.Context, query string) error {
	s, err := c.Search(ctx, c.Begin(), query)
	if err != nil {
		return err
	}
	c.Apply(s)
	return nil
}

// Mode returns what is drawn and, for searches, the query.
func (c *Coordinator) Mode() (Mode, string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mode, c.query
}

// Drawn returns the tree of the last drawn snapshot.
func (c *Coordinator) Drawn() []*comment.Comment {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.drawn
}
