package posts

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockPostRepository is a mock implementation of PostRepository
type MockPostRepository struct {
	mock.Mock
}

func (m *MockPostRepository) Create(ctx context.Context, post *Post) (*Post, error) {
	args := m.Called(ctx, post)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Post), args.Error(1)
}

func (m *MockPostRepository) GetByID(ctx context.Context, id int64) (*Post, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Post), args.Error(1)
}

func (m *MockPostRepository) GetAll(ctx context.Context) ([]*Post, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Post), args.Error(1)
}

func (m *MockPostRepository) GetByUser(ctx context.Context, userID int64) ([]*Post, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Post), args.Error(1)
}

func (m *MockPostRepository) Update(ctx context.Context, id int64, input UpdatePostInput) (*Post, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Post), args.Error(1)
}

func (m *MockPostRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPostRepository) AuthorExists(ctx context.Context, userID int64) (bool, error) {
	args := m.Called(ctx, userID)
	return args.Bool(0), args.Error(1)
}

// fakeCounters tracks per-post view counts and like sets in memory. Used
// instead of a testify mock where the test needs real counting semantics,
// especially under concurrency.
type fakeCounters struct {
	mu    sync.Mutex
	views map[int64]*atomic.Int64
	likes map[int64]map[int64]bool
	known map[int64]bool
}

func newFakeCounters(postIDs ...int64) *fakeCounters {
	f := &fakeCounters{
		views: make(map[int64]*atomic.Int64),
		likes: make(map[int64]map[int64]bool),
		known: make(map[int64]bool),
	}
	for _, id := range postIDs {
		f.views[id] = &atomic.Int64{}
		f.likes[id] = make(map[int64]bool)
		f.known[id] = true
	}
	return f
}

func (f *fakeCounters) IncrementViews(ctx context.Context, postID int64) error {
	f.mu.Lock()
	known := f.known[postID]
	f.mu.Unlock()
	if !known {
		return ErrPostNotFound
	}
	f.views[postID].Add(1)
	return nil
}

func (f *fakeCounters) ToggleLike(ctx context.Context, postID, userID int64) (*ToggleLikeResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if !f.known[postID] {
		return nil, ErrPostNotFound
	}

	set := f.likes[postID]
	liked := !set[userID]
	if liked {
		set[userID] = true
	} else {
		delete(set, userID)
	}
	return &ToggleLikeResult{Liked: liked, LikeCount: int64(len(set))}, nil
}

func (f *fakeCounters) viewCount(postID int64) int64 {
	return f.views[postID].Load()
}

func strPtr(s string) *string { return &s }

func TestCreatePost_Success(t *testing.T) {
	mockRepo := new(MockPostRepository)
	counters := newFakeCounters()
	service := NewService(mockRepo, counters, NewPostCache(nil), nil)

	created := &Post{ID: 1, UserID: 7, Title: "hello", Content: "world"}
	mockRepo.On("AuthorExists", mock.Anything, int64(7)).Return(true, nil)
	mockRepo.On("Create", mock.Anything, mock.Anything).Return(created, nil)

	post, err := service.CreatePost(context.Background(), CreatePostRequest{
		UserID: 7, Title: "hello", Content: "world",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), post.ID)
	mockRepo.AssertExpectations(t)
}

func TestCreatePost_EmptyTitle(t *testing.T) {
	mockRepo := new(MockPostRepository)
	service := NewService(mockRepo, newFakeCounters(), nil, nil)

	_, err := service.CreatePost(context.Background(), CreatePostRequest{
		UserID: 7, Title: "   ", Content: "body",
	})
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
	mockRepo.AssertNotCalled(t, "Create")
}

func TestCreatePost_AuthorMissing(t *testing.T) {
	mockRepo := new(MockPostRepository)
	service := NewService(mockRepo, newFakeCounters(), nil, nil)

	mockRepo.On("AuthorExists", mock.Anything, int64(99)).Return(false, nil)

	_, err := service.CreatePost(context.Background(), CreatePostRequest{
		UserID: 99, Title: "t", Content: "c",
	})
	assert.ErrorIs(t, err, ErrAuthorNotFound)
	mockRepo.AssertNotCalled(t, "Create")
}

func TestGetPost_IncrementsViewCount(t *testing.T) {
	mockRepo := new(MockPostRepository)
	counters := newFakeCounters(1)
	service := NewService(mockRepo, counters, NewPostCache(nil), nil)

	mockRepo.On("GetByID", mock.Anything, int64(1)).
		Return(&Post{ID: 1, UserID: 7, ViewCount: 1}, nil)

	post, err := service.GetPost(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), post.ID)
	assert.Equal(t, int64(1), counters.viewCount(1))
}

func TestGetPost_NotFound(t *testing.T) {
	mockRepo := new(MockPostRepository)
	service := NewService(mockRepo, newFakeCounters(), NewPostCache(nil), nil)

	_, err := service.GetPost(context.Background(), 42)
	assert.ErrorIs(t, err, ErrPostNotFound)
	mockRepo.AssertNotCalled(t, "GetByID")
}

// Concurrent reads must each land exactly one view increment.
func TestGetPost_ConcurrentViews(t *testing.T) {
	mockRepo := new(MockPostRepository)
	counters := newFakeCounters(1)
	service := NewService(mockRepo, counters, NewPostCache(nil), nil)

	mockRepo.On("GetByID", mock.Anything, int64(1)).
		Return(&Post{ID: 1, UserID: 7}, nil)

	const n = 50
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			_, err := service.GetPost(context.Background(), 1)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(n), counters.viewCount(1))
}

func TestGetAllPosts_CachesList(t *testing.T) {
	mockRepo := new(MockPostRepository)
	service := NewService(mockRepo, newFakeCounters(), NewPostCache(nil), nil)

	list := []*Post{{ID: 1}, {ID: 2}}
	mockRepo.On("GetAll", mock.Anything).Return(list, nil).Once()

	first, err := service.GetAllPosts(context.Background())
	require.NoError(t, err)
	second, err := service.GetAllPosts(context.Background())
	require.NoError(t, err)

	assert.Equal(t, first, second)
	mockRepo.AssertNumberOfCalls(t, "GetAll", 1)
}

// A read after an update must observe the updated fields, never a cached
// pre-update snapshot.
func TestUpdatePost_InvalidatesListCache(t *testing.T) {
	mockRepo := new(MockPostRepository)
	service := NewService(mockRepo, newFakeCounters(), NewPostCache(nil), nil)

	before := []*Post{{ID: 1, UserID: 7, Title: "old"}}
	after := []*Post{{ID: 1, UserID: 7, Title: "new"}}

	mockRepo.On("GetAll", mock.Anything).Return(before, nil).Once()
	mockRepo.On("GetByID", mock.Anything, int64(1)).
		Return(&Post{ID: 1, UserID: 7, Title: "old"}, nil)
	mockRepo.On("Update", mock.Anything, int64(1), mock.Anything).
		Return(&Post{ID: 1, UserID: 7, Title: "new"}, nil)
	mockRepo.On("GetAll", mock.Anything).Return(after, nil).Once()

	_, err := service.GetAllPosts(context.Background())
	require.NoError(t, err)

	_, err = service.UpdatePost(context.Background(), 1, 7, UpdatePostInput{Title: strPtr("new")})
	require.NoError(t, err)

	list, err := service.GetAllPosts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "new", list[0].Title)
	mockRepo.AssertNumberOfCalls(t, "GetAll", 2)
}

func TestUpdatePost_NotOwner(t *testing.T) {
	mockRepo := new(MockPostRepository)
	service := NewService(mockRepo, newFakeCounters(), NewPostCache(nil), nil)

	mockRepo.On("GetByID", mock.Anything, int64(1)).
		Return(&Post{ID: 1, UserID: 7, Title: "t"}, nil)

	_, err := service.UpdatePost(context.Background(), 1, 8, UpdatePostInput{Title: strPtr("x")})
	assert.ErrorIs(t, err, ErrNotPostOwner)
	mockRepo.AssertNotCalled(t, "Update")
}

func TestDeletePost_NotOwner(t *testing.T) {
	mockRepo := new(MockPostRepository)
	service := NewService(mockRepo, newFakeCounters(), NewPostCache(nil), nil)

	mockRepo.On("GetByID", mock.Anything, int64(1)).
		Return(&Post{ID: 1, UserID: 7}, nil)

	err := service.DeletePost(context.Background(), 1, 8)
	assert.ErrorIs(t, err, ErrNotPostOwner)
	mockRepo.AssertNotCalled(t, "Delete")
}

func TestDeletePost_Success(t *testing.T) {
	mockRepo := new(MockPostRepository)
	cache := NewPostCache(nil)
	service := NewService(mockRepo, newFakeCounters(), cache, nil)

	mockRepo.On("GetByID", mock.Anything, int64(1)).
		Return(&Post{ID: 1, UserID: 7}, nil)
	mockRepo.On("Delete", mock.Anything, int64(1)).Return(nil)

	// Seed the list cache, then check the delete dropped it
	mockRepo.On("GetAll", mock.Anything).Return([]*Post{{ID: 1, UserID: 7}}, nil).Once()
	_, err := service.GetAllPosts(context.Background())
	require.NoError(t, err)

	err = service.DeletePost(context.Background(), 1, 7)
	require.NoError(t, err)

	_, ok := cache.GetList()
	assert.False(t, ok)
	mockRepo.AssertExpectations(t)
}

// Toggling twice returns the like count to its starting value; an odd number
// of toggles moves it by exactly one.
func TestToggleLike_Toggles(t *testing.T) {
	mockRepo := new(MockPostRepository)
	counters := newFakeCounters(1)
	service := NewService(mockRepo, counters, NewPostCache(nil), nil)

	first, err := service.ToggleLike(context.Background(), 1, 7)
	require.NoError(t, err)
	assert.True(t, first.Liked)
	assert.Equal(t, int64(1), first.LikeCount)

	second, err := service.ToggleLike(context.Background(), 1, 7)
	require.NoError(t, err)
	assert.False(t, second.Liked)
	assert.Equal(t, int64(0), second.LikeCount)

	third, err := service.ToggleLike(context.Background(), 1, 7)
	require.NoError(t, err)
	assert.True(t, third.Liked)
	assert.Equal(t, int64(1), third.LikeCount)
}

func TestToggleLike_TwoUsersCountIndependently(t *testing.T) {
	mockRepo := new(MockPostRepository)
	service := NewService(mockRepo, newFakeCounters(1), NewPostCache(nil), nil)

	_, err := service.ToggleLike(context.Background(), 1, 7)
	require.NoError(t, err)
	result, err := service.ToggleLike(context.Background(), 1, 8)
	require.NoError(t, err)

	assert.Equal(t, int64(2), result.LikeCount)
}

func TestToggleLike_PostMissing(t *testing.T) {
	mockRepo := new(MockPostRepository)
	service := NewService(mockRepo, newFakeCounters(), NewPostCache(nil), nil)

	_, err := service.ToggleLike(context.Background(), 42, 7)
	assert.ErrorIs(t, err, ErrPostNotFound)
}

// With the cache disabled every read goes to the repository and behavior is
// otherwise identical.
func TestNilCache_PassThrough(t *testing.T) {
	mockRepo := new(MockPostRepository)
	counters := newFakeCounters(1)
	service := NewService(mockRepo, counters, nil, nil)

	mockRepo.On("GetByID", mock.Anything, int64(1)).
		Return(&Post{ID: 1, UserID: 7}, nil).Twice()
	mockRepo.On("GetAll", mock.Anything).Return([]*Post{{ID: 1}}, nil).Twice()

	for i := 0; i < 2; i++ {
		_, err := service.GetPost(context.Background(), 1)
		require.NoError(t, err)
		_, err = service.GetAllPosts(context.Background())
		require.NoError(t, err)
	}

	assert.Equal(t, int64(2), counters.viewCount(1))
	mockRepo.AssertExpectations(t)
}
