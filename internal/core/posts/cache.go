package posts

import (
	"log/slog"
	"sync"
)

// Cache is the read cache consulted by the post service. Entries have no TTL:
// they stay valid until a write invalidates them, so a hit is always current.
//
// The generation methods exist to close the populate/invalidate race. A reader
// that misses takes the key's generation before going to the database and
// publishes with PutPost/PutList carrying that generation; if any invalidation
// landed in between, the stale value is discarded instead of cached. Without
// this, a slow read could resurrect a pre-write snapshot after the writer has
// already invalidated.
type Cache interface {
	GetPost(id int64) (*Post, bool)
	GetList() ([]*Post, bool)
	PostGeneration(id int64) uint64
	ListGeneration() uint64
	PutPost(id int64, gen uint64, post *Post)
	PutList(gen uint64, list []*Post)

	// Invalidate drops the single-post entry for id and the list entry.
	// Callers must invalidate before reporting a write as complete.
	Invalidate(id int64)

	// InvalidateAll drops every entry. Used when a cascade removes posts
	// whose ids the caller does not enumerate (user deletion).
	InvalidateAll()
}

type postEntry struct {
	post *Post
	gen  uint64
	ok   bool
}

type listEntry struct {
	list []*Post
	gen  uint64
	ok   bool
}

// PostCache is an in-memory Cache keyed by post id plus a single entry for
// the all-posts listing.
//
// Generations are values of a single monotonic clock that advances on every
// invalidation, and base is the clock value of the most recent InvalidateAll.
// Entries always carry a generation >= base, so a snapshot taken before a
// flush can never equal any generation handed out after it, whether or not
// the id had an entry when the snapshot was taken.
type PostCache struct {
	mu     sync.RWMutex
	posts  map[int64]*postEntry
	list   listEntry
	clock  uint64
	base   uint64
	logger *slog.Logger
}

// NewPostCache creates an empty post cache
func NewPostCache(logger *slog.Logger) *PostCache {
	if logger == nil {
		logger = slog.Default()
	}
	return &PostCache{
		posts:  make(map[int64]*postEntry),
		logger: logger,
	}
}

// GetPost returns the cached post for id, if present
func (c *PostCache) GetPost(id int64) (*Post, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, exists := c.posts[id]
	if !exists || !e.ok {
		return nil, false
	}
	return e.post, true
}

// GetList returns the cached all-posts listing, if present
func (c *PostCache) GetList() ([]*Post, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if !c.list.ok {
		return nil, false
	}
	return c.list.list, true
}

// PostGeneration returns the current generation for a post key. Unseen keys
// report the flush floor, so a snapshot taken before an InvalidateAll dies
// with it.
func (c *PostCache) PostGeneration(id int64) uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if e, exists := c.posts[id]; exists {
		return e.gen
	}
	return c.base
}

// ListGeneration returns the current generation for the listing key
func (c *PostCache) ListGeneration() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.list.gen
}

// PutPost stores a post fetched at generation gen. The value is discarded if
// the key was invalidated since gen was taken.
func (c *PostCache) PutPost(id int64, gen uint64, post *Post) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, exists := c.posts[id]
	if !exists {
		e = &postEntry{gen: c.base}
		c.posts[id] = e
	}
	if e.gen != gen {
		c.logger.Debug("stale post discarded", "postID", id, "gen", gen, "current", e.gen)
		return
	}
	e.post = post
	e.ok = true
}

// PutList stores the all-posts listing fetched at generation gen. The value
// is discarded if the listing was invalidated since gen was taken.
func (c *PostCache) PutList(gen uint64, list []*Post) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.list.gen != gen {
		c.logger.Debug("stale post list discarded", "gen", gen, "current", c.list.gen)
		return
	}
	c.list.list = list
	c.list.ok = true
}

// Invalidate drops the entry for id and the listing entry
func (c *PostCache) Invalidate(id int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, exists := c.posts[id]
	if !exists {
		// The generation must survive even before the first Put, so an
		// in-flight reader that snapshotted the key before it had an entry
		// cannot publish stale data.
		e = &postEntry{gen: c.base}
		c.posts[id] = e
	}
	c.clock++
	e.gen = c.clock
	e.post = nil
	e.ok = false

	c.clock++
	c.list.gen = c.clock
	c.list.list = nil
	c.list.ok = false
}

// InvalidateAll drops every entry and raises the flush floor. Any generation
// snapshotted before the flush, including for ids that never had an entry,
// is below the new floor and its put will be discarded.
func (c *PostCache) InvalidateAll() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.clock++
	c.base = c.clock
	c.posts = make(map[int64]*postEntry)

	c.clock++
	c.list.gen = c.clock
	c.list.list = nil
	c.list.ok = false
}
