package threads_test

import (
	"context"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hay-kot/threads/internal/core/comment"
	"github.com/hay-kot/threads/internal/core/render"
	"github.com/hay-kot/threads/internal/threads"
)

// gatedBackend answers All with whatever is sent on the next gate.
type gatedBackend struct {
	gates chan []*comment.Comment
}

func (g *gatedBackend) All(ctx context.Context) ([]*comment.Comment, error) {
	select {
	case roots := <-g.gates:
		return roots, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (g *gatedBackend) Create(context.Context, comment.CreateRequest) error { return nil }
func (g *gatedBackend) Delete(context.Context, int) error                  { return nil }

func (g *gatedBackend) Search(context.Context, string) ([]*comment.Comment, error) {
	return nil, nil
}

func tree(texts ...string) []*comment.Comment {
	out := make([]*comment.Comment, len(texts))
	for i, text := range texts {
		out[i] = &comment.Comment{ID: i + 1, Text: text}
	}
	return out
}

func TestCoordinator_StaleSnapshotDropped(t *testing.T) {
	buf := render.NewBuffer()
	coord := threads.NewCoordinator(&gatedBackend{}, buf, zerolog.Nop())

	older := coord.Begin()
	newer := coord.Begin()
	require.Less(t, older, newer)

	assert.True(t, coord.Apply(threads.Snapshot{Ticket: newer, Comments: tree("new")}))
	assert.False(t, coord.Apply(threads.Snapshot{Ticket: older, Comments: tree("old")}))

	rows := buf.Rows()
	require.Len(t, rows, 1)
	assert.Equal(t, "new", rows[0].Text)
	assert.Equal(t, 1, buf.Draws())

	drawn := coord.Drawn()
	require.Len(t, drawn, 1)
	assert.Equal(t, "new", drawn[0].Text)
}

func TestCoordinator_DrawnEmptyBeforeFirstSnapshot(t *testing.T) {
	coord := threads.NewCoordinator(&gatedBackend{}, render.NewBuffer(), zerolog.Nop())
	assert.Empty(t, coord.Drawn())
}

func TestCoordinator_ConcurrentReloadsLatestWins(t *testing.T) {
	backend := &gatedBackend{gates: make(chan []*comment.Comment)}
	buf := render.NewBuffer()
	coord := threads.NewCoordinator(backend, buf, zerolog.Nop())
	ctx := context.Background()

	first := coord.Begin()
	second := coord.Begin()

	var wg sync.WaitGroup
	results := make([]threads.Snapshot, 2)
	for i, ticket := range []uint64{first, second} {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s, err := coord.Fetch(ctx, ticket)
			assert.NoError(t, err)
			results[i] = s
		}()
	}

	backend.gates <- tree("a")
	backend.gates <- tree("b")
	wg.Wait()

	// The second fetch answers first in the worst case; order of Apply
	// must not matter.
	coord.Apply(results[1])
	coord.Apply(results[0])

	rows := buf.Rows()
	require.Len(t, rows, 1)
	assert.Equal(t, results[1].Comments[0].Text, rows[0].Text)
}

func TestCoordinator_ReloadDrawsAll(t *testing.T) {
	backend := &gatedBackend{gates: make(chan []*comment.Comment, 1)}
	buf := render.NewBuffer()
	coord := threads.NewCoordinator(backend, buf, zerolog.Nop())

	backend.gates <- tree("x", "y")
	require.NoError(t, coord.Reload(context.Background()))

	assert.Len(t, buf.Rows(), 2)
	mode, query := coord.Mode()
	assert.Equal(t, threads.ModeAll, mode)
	assert.Empty(t, query)
	assert.Equal(t, "all", mode.String())
	assert.Equal(t, "search", threads.ModeSearch.String())
}

func TestCoordinator_ReloadCanceled(t *testing.T) {
	backend := &gatedBackend{gates: make(chan []*comment.Comment)}
	buf := render.NewBuffer()
	coord := threads.NewCoordinator(backend, buf, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := coord.Reload(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, buf.Draws())
}
