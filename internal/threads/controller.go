package threads

import (
	"context"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/hay-kot/threads/internal/core/comment"
	"github.com/hay-kot/threads/internal/core/render"
)

// DeletePrompt is the question asked before a comment is deleted.
const DeletePrompt = "Are you sure you want to delete this comment?"

// Confirmer asks the user to approve a destructive action.
type Confirmer interface {
	Confirm(prompt string) bool
}

// ConfirmFunc adapts a function to Confirmer.
type ConfirmFunc func(prompt string) bool

// Confirm implements Confirmer.
func (f ConfirmFunc) Confirm(prompt string) bool { return f(prompt) }

var (
	// Approve confirms without asking.
	Approve Confirmer = ConfirmFunc(func(string) bool { return true })
	// Decline refuses without asking.
	Decline Confirmer = ConfirmFunc(func(string) bool { return false })
)

// Controller maps user intents to backend calls. Every successful mutation is
// followed by a full reload through the Coordinator; nothing is patched
// locally.
type Controller struct {
	backend Backend
	sync    *Coordinator
	logger  zerolog.Logger
}

// NewController creates a controller.
func NewController(backend Backend, sync *Coordinator, logger zerolog.Logger) *Controller {
	return &Controller{
		backend: backend,
		sync:    sync,
		logger:  logger,
	}
}

// Coordinator returns the coordinator used for reloads.
func (c *Controller) Coordinator() *Coordinator {
	return c.sync
}

// Create posts a new comment. parentID is user-typed; empty means top-level.
// The caller clears its input fields when Committed(err) is true.
func (c *Controller) Create(ctx context.Context, text, parentID string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return ErrEmptyComment
	}

	req := comment.CreateRequest{Text: text}
	if raw := strings.TrimSpace(parentID); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			return ErrParentID
		}
		req.ParentID = &id
	}

	if err := c.backend.Create(ctx, req); err != nil {
		c.logger.Error().Ctx(ctx).Err(err).Msg("create comment")
		return &RequestError{Op: OpCreate, Err: err}
	}

	return c.sync.Reload(ctx)
}

// Reply toggles the reply panel of a drawn comment. It returns the new state.
func (c *Controller) Reply(id int) bool {
	b := c.sync.Surface()
	formID := render.ReplyFormID(id)
	expanded := !b.Expanded(formID)
	if !b.SetExpanded(formID, expanded) {
		return false
	}
	return expanded
}

// Cancel collapses the reply panel of a drawn comment.
func (c *Controller) Cancel(id int) {
	c.sync.Surface().SetExpanded(render.ReplyFormID(id), false)
}

// Expanded reports whether the reply panel of a comment is open.
func (c *Controller) Expanded(id int) bool {
	return c.sync.Surface().Expanded(render.ReplyFormID(id))
}

// SubmitReply posts text as a reply to parentID, collapses the panel and
// reloads. The caller clears its reply text when Committed(err) is true.
func (c *Controller) SubmitReply(ctx context.Context, parentID int, text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return ErrEmptyReply
	}

	if err := c.backend.Create(ctx, comment.CreateRequest{Text: text, ParentID: &parentID}); err != nil {
		c.logger.Error().Ctx(ctx).Err(err).Int("parent_id", parentID).Msg("create reply")
		return &RequestError{Op: OpReply, Err: err}
	}

	c.Cancel(parentID)
	return c.sync.Reload(ctx)
}

// Delete removes a comment once confirm approves. A declined confirmation is
// a no-op; a nil confirm counts as declined.
func (c *Controller) Delete(ctx context.Context, id int, confirm Confirmer) error {
	if confirm == nil || !confirm.Confirm(DeletePrompt) {
		c.logger.Debug().Ctx(ctx).Int("id", id).Msg("delete declined")
		return nil
	}

	if err := c.backend.Delete(ctx, id); err != nil {
		c.logger.Error().Ctx(ctx).Err(err).Int("id", id).Msg("delete comment")
		return &RequestError{Op: OpDelete, Err: err}
	}

	return c.sync.Reload(ctx)
}

// Search replaces the drawn tree with the comments matching query.
func (c *Controller) Search(ctx context.Context, query string) error {
	query = strings.TrimSpace(query)
	if query == "" {
		return ErrEmptySearch
	}

	if err := c.sync.ShowSearch(ctx, query); err != nil {
		c.logger.Error().Ctx(ctx).Err(err).Str("query", query).Msg("search comments")
		return err
	}
	return nil
}

// Reload redraws the complete tree.
func (c *Controller) Reload(ctx context.Context) error {
	if err := c.sync.Reload(ctx); err != nil {
		c.logger.Error().Ctx(ctx).Err(err).Msg("reload comments")
		return err
	}
	return nil
}

// ClearSearch leaves search results and redraws the complete tree.
func (c *Controller) ClearSearch(ctx context.Context) error {
	return c.Reload(ctx)
}
