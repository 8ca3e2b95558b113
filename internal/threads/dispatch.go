package threads

import (
	"context"
	"fmt"
	"slices"

	"github.com/hay-kot/threads/internal/core/logging"
	"github.com/hay-kot/threads/pkg/kv"
)

// Intent names a user action.
type Intent string

const (
	IntentCreate      Intent = "create"
	IntentReply       Intent = "reply"
	IntentDelete      Intent = "delete"
	IntentSearch      Intent = "search"
	IntentCancel      Intent = "cancel"
	IntentSubmitReply Intent = "submit-reply"
	IntentReload      Intent = "reload"
	IntentClearSearch Intent = "clear-search"
)

// Intents lists every built-in intent.
var Intents = []Intent{
	IntentCreate,
	IntentReply,
	IntentDelete,
	IntentSearch,
	IntentCancel,
	IntentSubmitReply,
	IntentReload,
	IntentClearSearch,
}

// ParseIntent returns the intent named s.
func ParseIntent(s string) (Intent, bool) {
	i := Intent(s)
	return i, slices.Contains(Intents, i)
}

// Args carries the typed inputs of an intent.
type Args struct {
	ID       int    // target comment for reply, cancel, submit-reply and delete
	Text     string // comment, reply or search text
	ParentID string // user-typed parent id for create
	Confirm  Confirmer
}

// Handler executes an intent.
type Handler func(ctx context.Context, args Args) error

// Dispatcher binds intent names to handlers. It is safe for concurrent use.
type Dispatcher struct {
	handlers *kv.Store[Intent, Handler]
}

// NewDispatcher returns an empty dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{handlers: kv.New[Intent, Handler]()}
}

// Register binds h to intent, replacing any previous binding.
func (d *Dispatcher) Register(intent Intent, h Handler) {
	d.handlers.Set(intent, h)
}

// Registered reports whether intent has a handler.
func (d *Dispatcher) Registered(intent Intent) bool {
	_, ok := d.handlers.Get(intent)
	return ok
}

// Bound returns every intent with a handler, sorted by name.
func (d *Dispatcher) Bound() []Intent {
	return slices.Sorted(slices.Values(d.handlers.Keys()))
}

// Dispatch runs the handler bound to intent.
func (d *Dispatcher) Dispatch(ctx context.Context, intent Intent, args Args) error {
	h, ok := d.handlers.Get(intent)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownIntent, intent)
	}
	return h(logging.WithIntent(ctx, string(intent)), args)
}

// Register binds every built-in intent to the controller.
func (c *Controller) Register(d *Dispatcher) {
	d.Register(IntentCreate, func(ctx context.Context, a Args) error {
		return c.Create(ctx, a.Text, a.ParentID)
	})
	d.Register(IntentReply, func(_ context.Context, a Args) error {
		c.Reply(a.ID)
		return nil
	})
	d.Register(IntentCancel, func(_ context.Context, a Args) error {
		c.Cancel(a.ID)
		return nil
	})
	d.Register(IntentSubmitReply, func(ctx context.Context, a Args) error {
		return c.SubmitReply(ctx, a.ID, a.Text)
	})
	d.Register(IntentDelete, func(ctx context.Context, a Args) error {
		return c.Delete(ctx, a.ID, a.Confirm)
	})
	d.Register(IntentSearch, func(ctx context.Context, a Args) error {
		return c.Search(ctx, a.Text)
	})
	d.Register(IntentReload, func(ctx context.Context, _ Args) error {
		return c.Reload(ctx)
	})
	d.Register(IntentClearSearch, func(ctx context.Context, _ Args) error {
		return c.ClearSearch(ctx)
	})
}
