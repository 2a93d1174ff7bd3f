package comments

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockCommentRepository is a mock implementation of CommentRepository
type MockCommentRepository struct {
	mock.Mock
}

func (m *MockCommentRepository) Create(ctx context.Context, comment *Comment) (*Comment, error) {
	args := m.Called(ctx, comment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Comment), args.Error(1)
}

func (m *MockCommentRepository) GetByID(ctx context.Context, id int64) (*Comment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Comment), args.Error(1)
}

func (m *MockCommentRepository) GetByPost(ctx context.Context, postID int64) ([]*Comment, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Comment), args.Error(1)
}

func (m *MockCommentRepository) Update(ctx context.Context, id int64, content string) (*Comment, error) {
	args := m.Called(ctx, id, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Comment), args.Error(1)
}

func (m *MockCommentRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCommentRepository) PostExists(ctx context.Context, postID int64) (bool, error) {
	args := m.Called(ctx, postID)
	return args.Bool(0), args.Error(1)
}

func (m *MockCommentRepository) AuthorExists(ctx context.Context, userID int64) (bool, error) {
	args := m.Called(ctx, userID)
	return args.Bool(0), args.Error(1)
}

// fakeInvalidator records per-post invalidations
type fakeInvalidator struct {
	invalidated []int64
}

func (f *fakeInvalidator) Invalidate(postID int64) {
	f.invalidated = append(f.invalidated, postID)
}

func TestCreateComment_Success(t *testing.T) {
	mockRepo := new(MockCommentRepository)
	cache := &fakeInvalidator{}
	service := NewService(mockRepo, cache, nil)

	mockRepo.On("PostExists", mock.Anything, int64(3)).Return(true, nil)
	mockRepo.On("AuthorExists", mock.Anything, int64(7)).Return(true, nil)
	mockRepo.On("Create", mock.Anything, mock.Anything).
		Return(&Comment{ID: 1, PostID: 3, UserID: 7, Content: "nice"}, nil)

	comment, err := service.CreateComment(context.Background(), CreateCommentRequest{
		PostID: 3, UserID: 7, Content: "nice",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), comment.ID)

	// The post's comment count changed, so its cache entry must go
	assert.Equal(t, []int64{3}, cache.invalidated)
}

func TestCreateComment_EmptyContent(t *testing.T) {
	mockRepo := new(MockCommentRepository)
	service := NewService(mockRepo, nil, nil)

	_, err := service.CreateComment(context.Background(), CreateCommentRequest{
		PostID: 3, UserID: 7, Content: "   ",
	})
	assert.ErrorIs(t, err, ErrContentEmpty)
	mockRepo.AssertNotCalled(t, "Create")
}

func TestCreateComment_PostMissing(t *testing.T) {
	mockRepo := new(MockCommentRepository)
	cache := &fakeInvalidator{}
	service := NewService(mockRepo, cache, nil)

	mockRepo.On("PostExists", mock.Anything, int64(42)).Return(false, nil)

	_, err := service.CreateComment(context.Background(), CreateCommentRequest{
		PostID: 42, UserID: 7, Content: "nice",
	})
	assert.ErrorIs(t, err, ErrPostNotFound)
	assert.Empty(t, cache.invalidated)
	mockRepo.AssertNotCalled(t, "Create")
}

func TestCreateComment_AuthorMissing(t *testing.T) {
	mockRepo := new(MockCommentRepository)
	service := NewService(mockRepo, nil, nil)

	mockRepo.On("PostExists", mock.Anything, int64(3)).Return(true, nil)
	mockRepo.On("AuthorExists", mock.Anything, int64(99)).Return(false, nil)

	_, err := service.CreateComment(context.Background(), CreateCommentRequest{
		PostID: 3, UserID: 99, Content: "nice",
	})
	assert.ErrorIs(t, err, ErrAuthorNotFound)
	mockRepo.AssertNotCalled(t, "Create")
}

func TestUpdateComment_NotAuthor(t *testing.T) {
	mockRepo := new(MockCommentRepository)
	service := NewService(mockRepo, nil, nil)

	mockRepo.On("GetByID", mock.Anything, int64(1)).
		Return(&Comment{ID: 1, PostID: 3, UserID: 7}, nil)

	_, err := service.UpdateComment(context.Background(), 1, 8, "edited")
	assert.ErrorIs(t, err, ErrNotCommentAuthor)
	mockRepo.AssertNotCalled(t, "Update")
}

func TestUpdateComment_Success(t *testing.T) {
	mockRepo := new(MockCommentRepository)
	service := NewService(mockRepo, nil, nil)

	mockRepo.On("GetByID", mock.Anything, int64(1)).
		Return(&Comment{ID: 1, PostID: 3, UserID: 7, Content: "old"}, nil)
	mockRepo.On("Update", mock.Anything, int64(1), "edited").
		Return(&Comment{ID: 1, PostID: 3, UserID: 7, Content: "edited"}, nil)

	comment, err := service.UpdateComment(context.Background(), 1, 7, "edited")
	require.NoError(t, err)
	assert.Equal(t, "edited", comment.Content)
}

func TestDeleteComment_NotAuthor(t *testing.T) {
	mockRepo := new(MockCommentRepository)
	cache := &fakeInvalidator{}
	service := NewService(mockRepo, cache, nil)

	mockRepo.On("GetByID", mock.Anything, int64(1)).
		Return(&Comment{ID: 1, PostID: 3, UserID: 7}, nil)

	err := service.DeleteComment(context.Background(), 1, 8)
	assert.ErrorIs(t, err, ErrNotCommentAuthor)
	assert.Empty(t, cache.invalidated)
	mockRepo.AssertNotCalled(t, "Delete")
}

func TestDeleteComment_InvalidatesPost(t *testing.T) {
	mockRepo := new(MockCommentRepository)
	cache := &fakeInvalidator{}
	service := NewService(mockRepo, cache, nil)

	mockRepo.On("GetByID", mock.Anything, int64(1)).
		Return(&Comment{ID: 1, PostID: 3, UserID: 7}, nil)
	mockRepo.On("Delete", mock.Anything, int64(1)).Return(nil)

	err := service.DeleteComment(context.Background(), 1, 7)
	require.NoError(t, err)
	assert.Equal(t, []int64{3}, cache.invalidated)
}

func TestDeleteComment_NotFound(t *testing.T) {
	mockRepo := new(MockCommentRepository)
	service := NewService(mockRepo, nil, nil)

	mockRepo.On("GetByID", mock.Anything, int64(42)).Return(nil, ErrCommentNotFound)

	err := service.DeleteComment(context.Background(), 42, 7)
	assert.ErrorIs(t, err, ErrCommentNotFound)
}
