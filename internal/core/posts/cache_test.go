package posts

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostCache_GetPutGet(t *testing.T) {
	cache := NewPostCache(nil)

	_, ok := cache.GetPost(1)
	assert.False(t, ok)

	gen := cache.PostGeneration(1)
	cache.PutPost(1, gen, &Post{ID: 1, Title: "hello"})

	post, ok := cache.GetPost(1)
	require.True(t, ok)
	assert.Equal(t, "hello", post.Title)
}

func TestPostCache_InvalidateDropsPostAndList(t *testing.T) {
	cache := NewPostCache(nil)

	cache.PutPost(1, cache.PostGeneration(1), &Post{ID: 1})
	cache.PutPost(2, cache.PostGeneration(2), &Post{ID: 2})
	cache.PutList(cache.ListGeneration(), []*Post{{ID: 1}, {ID: 2}})

	cache.Invalidate(1)

	_, ok := cache.GetPost(1)
	assert.False(t, ok)
	_, ok = cache.GetList()
	assert.False(t, ok)

	// Other post keys are untouched
	_, ok = cache.GetPost(2)
	assert.True(t, ok)
}

// A Put carrying a generation taken before an invalidation must be discarded.
// This is what keeps a slow reader from republishing a pre-write snapshot.
func TestPostCache_StalePutDiscarded(t *testing.T) {
	cache := NewPostCache(nil)

	gen := cache.PostGeneration(1)
	cache.Invalidate(1)
	cache.PutPost(1, gen, &Post{ID: 1, Title: "stale"})

	_, ok := cache.GetPost(1)
	assert.False(t, ok)

	// A put with the post-invalidation generation lands normally
	cache.PutPost(1, cache.PostGeneration(1), &Post{ID: 1, Title: "fresh"})
	post, ok := cache.GetPost(1)
	require.True(t, ok)
	assert.Equal(t, "fresh", post.Title)
}

func TestPostCache_StaleListPutDiscarded(t *testing.T) {
	cache := NewPostCache(nil)

	gen := cache.ListGeneration()
	cache.Invalidate(7)
	cache.PutList(gen, []*Post{{ID: 7, Title: "stale"}})

	_, ok := cache.GetList()
	assert.False(t, ok)
}

func TestPostCache_InvalidateAll(t *testing.T) {
	cache := NewPostCache(nil)

	cache.PutPost(1, cache.PostGeneration(1), &Post{ID: 1})
	cache.PutPost(2, cache.PostGeneration(2), &Post{ID: 2})
	cache.PutList(cache.ListGeneration(), []*Post{{ID: 1}, {ID: 2}})

	gen1 := cache.PostGeneration(1)
	cache.InvalidateAll()

	_, ok := cache.GetPost(1)
	assert.False(t, ok)
	_, ok = cache.GetPost(2)
	assert.False(t, ok)
	_, ok = cache.GetList()
	assert.False(t, ok)

	// Generations moved, so puts taken before the flush are dead
	cache.PutPost(1, gen1, &Post{ID: 1})
	_, ok = cache.GetPost(1)
	assert.False(t, ok)
}

// The flush must also kill snapshots for ids the cache has never seen: a
// reader fetching a post for the first time while a user-delete cascade runs
// must not publish the pre-delete row after the flush.
func TestPostCache_InvalidateAllDiscardsUnseenKeySnapshot(t *testing.T) {
	cache := NewPostCache(nil)

	gen := cache.PostGeneration(5)
	cache.InvalidateAll()
	cache.PutPost(5, gen, &Post{ID: 5, Title: "removed"})

	_, ok := cache.GetPost(5)
	assert.False(t, ok)

	// A fresh snapshot taken after the flush lands normally
	cache.PutPost(5, cache.PostGeneration(5), &Post{ID: 5, Title: "current"})
	post, ok := cache.GetPost(5)
	require.True(t, ok)
	assert.Equal(t, "current", post.Title)
}

// Per-key invalidations between flushes must not produce a generation that
// collides with the next flush floor.
func TestPostCache_FlushFloorAboveInvalidatedKeys(t *testing.T) {
	cache := NewPostCache(nil)

	cache.Invalidate(1)
	gen := cache.PostGeneration(1)

	cache.InvalidateAll()
	cache.PutPost(1, gen, &Post{ID: 1, Title: "stale"})

	_, ok := cache.GetPost(1)
	assert.False(t, ok)
}

func TestPostCache_ConcurrentAccess(t *testing.T) {
	cache := NewPostCache(nil)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(3)
		id := int64(i % 4)
		go func() {
			defer wg.Done()
			gen := cache.PostGeneration(id)
			cache.PutPost(id, gen, &Post{ID: id})
		}()
		go func() {
			defer wg.Done()
			cache.GetPost(id)
			cache.GetList()
		}()
		go func() {
			defer wg.Done()
			cache.Invalidate(id)
		}()
	}
	wg.Wait()
}
