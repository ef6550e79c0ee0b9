package client

import (
	"context"
	"sync"
	"time"

	"golang.org/x/exp/slog"

	"sharenotes/internal/domain/note"
)

// NotePage is one client-side slice of the current collection.
type NotePage struct {
	Items     []note.Note
	Page      int
	PageCount int
	Total     int
}

// NoteController owns the client-visible set of notes for the current
// filter. The collection is a cache of server-authoritative state: every
// successful fetch replaces it wholesale, every confirmed mutation edits
// it in place, and no method mutates it before the corresponding call
// resolves.
type NoteController struct {
	gw       *Gateway
	session  *SessionStore
	log      *slog.Logger
	pageSize int
	window   time.Duration

	mu    sync.RWMutex
	notes []note.Note
}

func NewNoteController(gw *Gateway, session *SessionStore, pageSize int, window time.Duration, log *slog.Logger) *NoteController {
	return &NoteController{
		gw:       gw,
		session:  session,
		log:      log,
		pageSize: pageSize,
		window:   window,
	}
}

// List fetches the server's matching set for filterTitle, replaces the
// local collection with it and returns the requested page. Page numbers
// out of range clamp to [1, pageCount]; an empty result yields one empty
// page. On failure the collection is left unmodified.
func (c *NoteController) List(ctx context.Context, filterTitle string, page int) (NotePage, error) {
	fetched, err := c.fetch(ctx, filterTitle)
	if err != nil {
		return NotePage{}, err
	}

	c.replace(fetched)
	return c.pageOf(page), nil
}

func (c *NoteController) fetch(ctx context.Context, filterTitle string) ([]note.Note, error) {
	if filterTitle == "" {
		return c.gw.ListNotes(ctx)
	}
	return c.gw.FilterNotes(ctx, filterTitle)
}

// Page re-slices the already-fetched collection without a network call.
func (c *NoteController) Page(page int) NotePage {
	return c.pageOf(page)
}

// Create validates and creates a note. The title check never reaches the
// network. The note is appended to the local collection only after the
// service confirms it.
func (c *NoteController) Create(ctx context.Context, req note.Request) (note.Note, error) {
	if err := req.Validate(); err != nil {
		return note.Note{}, err
	}

	sess, ok := c.session.Current()
	if !ok {
		return note.Note{}, ErrNotAuthenticated
	}
	req.UserID = sess.UserID

	created, err := c.gw.CreateNote(ctx, req)
	if err != nil {
		return note.Note{}, err
	}

	c.mu.Lock()
	c.notes = append(c.notes, created)
	c.mu.Unlock()

	return created, nil
}

// Update sends the complete record; the service applies replace
// semantics, not a partial patch.
func (c *NoteController) Update(ctx context.Context, id int64, req note.Request) (note.Note, error) {
	if err := req.Validate(); err != nil {
		return note.Note{}, err
	}

	sess, ok := c.session.Current()
	if !ok {
		return note.Note{}, ErrNotAuthenticated
	}
	req.UserID = sess.UserID

	updated, err := c.gw.UpdateNote(ctx, id, req)
	if err != nil {
		return note.Note{}, err
	}

	c.mu.Lock()
	for i := range c.notes {
		if c.notes[i].ID == id {
			c.notes[i] = updated
			break
		}
	}
	c.mu.Unlock()

	return updated, nil
}

// Delete removes the note remotely, then drops it from the local
// collection unconditionally.
func (c *NoteController) Delete(ctx context.Context, id int64) error {
	if err := c.gw.DeleteNote(ctx, id); err != nil {
		return err
	}

	c.mu.Lock()
	kept := c.notes[:0]
	for _, n := range c.notes {
		if n.ID != id {
			kept = append(kept, n)
		}
	}
	c.notes = kept
	c.mu.Unlock()

	return nil
}

// Get always re-fetches from the server. The local collection may be
// stale between fetches, so edit flows must never be fed from it.
func (c *NoteController) Get(ctx context.Context, id int64) (note.Note, error) {
	return c.gw.GetNote(ctx, id)
}

// Search returns a debounced live-search query bound to this controller:
// each surviving result replaces the collection and emits its first page
// through onResult. The staleness rule of DebouncedQuery guarantees a
// slow earlier search can never clobber a newer one.
func (c *NoteController) Search(onResult func(NotePage, error)) *DebouncedQuery[string, []note.Note] {
	return NewDebouncedQuery(
		c.window,
		func(ctx context.Context, title string) ([]note.Note, error) {
			return c.fetch(ctx, title)
		},
		func(fetched []note.Note, err error) {
			if err != nil {
				onResult(NotePage{}, err)
				return
			}
			c.replace(fetched)
			onResult(c.pageOf(1), nil)
		},
	)
}

func (c *NoteController) replace(notes []note.Note) {
	c.mu.Lock()
	c.notes = notes
	c.mu.Unlock()
	c.log.Debug("note collection replaced", "count", len(notes))
}

func (c *NoteController) pageOf(page int) NotePage {
	c.mu.RLock()
	defer c.mu.RUnlock()

	total := len(c.notes)
	pageCount := (total + c.pageSize - 1) / c.pageSize
	if pageCount == 0 {
		pageCount = 1
	}
	if page < 1 {
		page = 1
	}
	if page > pageCount {
		page = pageCount
	}

	start := (page - 1) * c.pageSize
	end := start + c.pageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	items := make([]note.Note, end-start)
	copy(items, c.notes[start:end])

	return NotePage{
		Items:     items,
		Page:      page,
		PageCount: pageCount,
		Total:     total,
	}
}
