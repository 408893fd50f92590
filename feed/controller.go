package feed

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/SHAIK-RUMEENA/PostBloging/models"
)

// defaultDraftCategory is what the form resets to after a submit or cancel.
const defaultDraftCategory = "Technology"

// ConfirmFunc guards irreversible actions. Delete asks it before sending
// anything; returning false aborts.
type ConfirmFunc func(post models.Post) bool

// ValidationErrors maps a form field to its problem. Submission is blocked
// before any network call while it is non-empty.
type ValidationErrors map[string]string

func (v ValidationErrors) Error() string {
	fields := make([]string, 0, len(v))
	for field := range v {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return "invalid fields: " + strings.Join(fields, ", ")
}

// Controller holds the local snapshot of the feed and derives the displayed
// view from the active category filter and search term. It orchestrates the
// create/update/like/delete flows against the Post API and owns the draft
// form's Creating/Editing state machine.
type Controller struct {
	api     *Client
	log     *logrus.Logger
	confirm ConfirmFunc

	mu             sync.Mutex
	snapshot       []models.Post
	filtered       []models.Post
	searchTerm     string
	filterCategory string
	draft          Draft
	editingID      string
}

func NewController(api *Client, confirm ConfirmFunc, log *logrus.Logger) *Controller {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Controller{
		api:            api,
		log:            log,
		confirm:        confirm,
		filterCategory: CategoryAll,
		draft:          Draft{Category: defaultDraftCategory},
	}
}

// Refresh fetches all posts and replaces the local snapshot wholesale. On
// failure the prior snapshot is retained, stale but available, and the error
// is only logged. Whatever response lands last wins.
func (c *Controller) Refresh(ctx context.Context) []models.Post {
	posts, err := c.api.FetchPosts(ctx)
	if err != nil {
		c.log.WithError(err).Error("Error fetching posts")
		return c.Posts()
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.snapshot = posts
	c.recompute()
	return append([]models.Post(nil), c.filtered...)
}

// Posts returns the current filtered view.
func (c *Controller) Posts() []models.Post {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]models.Post(nil), c.filtered...)
}

// SetSearchTerm updates the search term and recomputes the view.
func (c *Controller) SetSearchTerm(term string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.searchTerm = term
	c.recompute()
}

// SetFilterCategory updates the category filter and recomputes the view.
func (c *Controller) SetFilterCategory(category string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.filterCategory = category
	c.recompute()
}

// recompute must be called with the lock held. The view is derived whenever
// any of its three inputs changes.
func (c *Controller) recompute() {
	c.filtered = ApplyFilter(c.snapshot, c.filterCategory, c.searchTerm)
}

// Draft returns the current form state.
func (c *Controller) Draft() Draft {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.draft
}

// SetDraft replaces the form state, as the user types.
func (c *Controller) SetDraft(draft Draft) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.draft = draft
}

// Editing returns the id being edited, and whether the form is in edit mode
// at all.
func (c *Controller) Editing() (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.editingID, c.editingID != ""
}

// Edit moves the form into Editing for the given post, pre-populating the
// draft with its current values. An edit already in progress is implicitly
// discarded. The stored image is kept unless a new file is chosen.
func (c *Controller) Edit(post models.Post) {
	c.mu.Lock()
	defer c.mu.Unlock()

	category := post.Category
	if category == "" {
		category = defaultDraftCategory
	}

	c.draft = Draft{
		Title:    post.Title,
		Author:   post.Author,
		Content:  post.Content,
		Category: category,
	}
	c.editingID = post.ID
}

// CancelEdit abandons the edit and resets the form to Creating.
func (c *Controller) CancelEdit() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.resetDraft()
}

// resetDraft must be called with the lock held.
func (c *Controller) resetDraft() {
	c.draft = Draft{Category: defaultDraftCategory}
	c.editingID = ""
}

// Submit validates the draft and sends it: an update when the form is in
// Editing, a create otherwise. On success the form resets to Creating and the
// feed refreshes. On failure the draft stays populated so nothing typed is
// lost.
func (c *Controller) Submit(ctx context.Context) error {
	c.mu.Lock()
	draft := c.draft
	editingID := c.editingID
	c.mu.Unlock()

	if errs := validateDraft(draft); len(errs) > 0 {
		return errs
	}

	var err error
	if editingID != "" {
		_, err = c.api.UpdatePost(ctx, editingID, draft)
	} else {
		_, err = c.api.CreatePost(ctx, draft)
	}
	if err != nil {
		c.log.WithError(err).Error("Error submitting post")
		return err
	}

	c.mu.Lock()
	c.resetDraft()
	c.mu.Unlock()

	c.Refresh(ctx)
	return nil
}

// Like sends a like for the given post and refreshes. There is no optimistic
// local increment, the count only moves once the round trip completes.
func (c *Controller) Like(ctx context.Context, postID string) error {
	if _, err := c.api.LikePost(ctx, postID); err != nil {
		c.log.WithError(err).Error("Error liking post")
		return err
	}

	c.Refresh(ctx)
	return nil
}

// Delete asks for confirmation, then permanently deletes the post and
// refreshes. Returns nil when the user backs out.
func (c *Controller) Delete(ctx context.Context, post models.Post) error {
	if c.confirm != nil && !c.confirm(post) {
		return nil
	}

	if err := c.api.DeletePost(ctx, post.ID); err != nil {
		c.log.WithError(err).Error("Error deleting post")
		return err
	}

	c.Refresh(ctx)
	return nil
}

func validateDraft(draft Draft) ValidationErrors {
	errs := ValidationErrors{}
	if strings.TrimSpace(draft.Title) == "" {
		errs["title"] = "Title is required"
	}
	if strings.TrimSpace(draft.Author) == "" {
		errs["author"] = "Author is required"
	}
	if strings.TrimSpace(draft.Content) == "" {
		errs["content"] = "Content is required"
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}
