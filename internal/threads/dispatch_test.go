package threads_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hay-kot/threads/internal/core/logging"
	"github.com/hay-kot/threads/internal/threads"
)

func TestParseIntent(t *testing.T) {
	for _, intent := range threads.Intents {
		got, ok := threads.ParseIntent(string(intent))
		assert.True(t, ok)
		assert.Equal(t, intent, got)
	}

	_, ok := threads.ParseIntent("explode")
	assert.False(t, ok)
}

func TestDispatcher_Unknown(t *testing.T) {
	d := threads.NewDispatcher()
	err := d.Dispatch(context.Background(), "explode", threads.Args{})
	require.ErrorIs(t, err, threads.ErrUnknownIntent)
}

func TestDispatcher_TagsIntent(t *testing.T) {
	d := threads.NewDispatcher()

	var seen string
	d.Register(threads.IntentReload, func(ctx context.Context, _ threads.Args) error {
		seen = logging.GetIntent(ctx)
		return nil
	})

	require.NoError(t, d.Dispatch(context.Background(), threads.IntentReload, threads.Args{}))
	assert.Equal(t, "reload", seen)
}

func TestController_Register(t *testing.T) {
	h := newHarness(t)
	d := threads.NewDispatcher()
	h.ctrl.Register(d)

	for _, intent := range threads.Intents {
		assert.True(t, d.Registered(intent), intent)
	}
	assert.ElementsMatch(t, threads.Intents, d.Bound())
	assert.IsIncreasing(t, d.Bound())

	ctx := context.Background()
	require.NoError(t, d.Dispatch(ctx, threads.IntentCreate, threads.Args{Text: "root"}))
	require.NoError(t, d.Dispatch(ctx, threads.IntentReply, threads.Args{ID: 1}))
	assert.True(t, h.ctrl.Expanded(1))
	require.NoError(t, d.Dispatch(ctx, threads.IntentCancel, threads.Args{ID: 1}))
	assert.False(t, h.ctrl.Expanded(1))

	require.NoError(t, d.Dispatch(ctx, threads.IntentSubmitReply, threads.Args{ID: 1, Text: "child"}))
	assert.Equal(t, []int{1, 2}, h.ids())

	require.NoError(t, d.Dispatch(ctx, threads.IntentSearch, threads.Args{Text: "child"}))
	assert.Equal(t, []int{2}, h.ids())
	require.NoError(t, d.Dispatch(ctx, threads.IntentClearSearch, threads.Args{}))
	assert.Equal(t, []int{1, 2}, h.ids())

	require.NoError(t, d.Dispatch(ctx, threads.IntentDelete, threads.Args{ID: 1}))
	assert.Equal(t, 0, h.srv.Count(http.MethodDelete, "/comments/1"), "no confirmer declines")

	require.NoError(t, d.Dispatch(ctx, threads.IntentDelete, threads.Args{ID: 1, Confirm: threads.Approve}))
	assert.Empty(t, h.ids())
	require.NoError(t, d.Dispatch(ctx, threads.IntentReload, threads.Args{}))
}
