package likes

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockLikeRepo struct {
	mock.Mock
}

func (m *mockLikeRepo) Create(ctx context.Context, userID, postID int64) error {
	return m.Called(ctx, userID, postID).Error(0)
}

func (m *mockLikeRepo) Delete(ctx context.Context, userID, postID int64) error {
	return m.Called(ctx, userID, postID).Error(0)
}

func (m *mockLikeRepo) CountByPost(ctx context.Context, postID int64) (int, error) {
	args := m.Called(ctx, postID)
	return args.Int(0), args.Error(1)
}

type mockPostChecker struct {
	mock.Mock
}

func (m *mockPostChecker) Exists(ctx context.Context, postID int64) (bool, error) {
	args := m.Called(ctx, postID)
	return args.Bool(0), args.Error(1)
}

func TestLike(t *testing.T) {
	repo := new(mockLikeRepo)
	posts := new(mockPostChecker)
	svc := NewLikeService(repo, posts)
	ctx := context.Background()

	posts.On("Exists", ctx, int64(5)).Return(true, nil)
	repo.On("Create", ctx, int64(3), int64(5)).Return(nil)
	repo.On("CountByPost", ctx, int64(5)).Return(1, nil)

	// liking twice still yields a single like
	for i := 0; i < 2; i++ {
		got, err := svc.Like(ctx, 3, 5)
		require.NoError(t, err)
		assert.Equal(t, &LikeStatus{PostID: 5, Liked: true, LikeCount: 1}, got)
	}
	repo.AssertNumberOfCalls(t, "Create", 2)
}

func TestUnlike(t *testing.T) {
	repo := new(mockLikeRepo)
	posts := new(mockPostChecker)
	svc := NewLikeService(repo, posts)
	ctx := context.Background()

	posts.On("Exists", ctx, int64(5)).Return(true, nil)
	repo.On("Delete", ctx, int64(3), int64(5)).Return(nil)
	repo.On("CountByPost", ctx, int64(5)).Return(0, nil)

	got, err := svc.Unlike(ctx, 3, 5)
	require.NoError(t, err)
	assert.False(t, got.Liked)
	assert.Equal(t, 0, got.LikeCount)
}

func TestLike_PostMissing(t *testing.T) {
	repo := new(mockLikeRepo)
	posts := new(mockPostChecker)
	svc := NewLikeService(repo, posts)
	ctx := context.Background()

	posts.On("Exists", ctx, int64(404)).Return(false, nil)

	_, err := svc.Like(ctx, 3, 404)
	assert.ErrorIs(t, err, ErrPostNotFound)

	_, err = svc.Unlike(ctx, 3, 404)
	assert.ErrorIs(t, err, ErrPostNotFound)

	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything, mock.Anything)
}

func TestLike_Failures(t *testing.T) {
	ctx := context.Background()

	t.Run("existence check fails", func(t *testing.T) {
		repo := new(mockLikeRepo)
		posts := new(mockPostChecker)
		posts.On("Exists", ctx, int64(5)).Return(false, errors.New("db down"))

		_, err := NewLikeService(repo, posts).Like(ctx, 3, 5)
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrPostNotFound)
	})

	t.Run("insert fails", func(t *testing.T) {
		repo := new(mockLikeRepo)
		posts := new(mockPostChecker)
		posts.On("Exists", ctx, int64(5)).Return(true, nil)
		repo.On("Create", ctx, int64(3), int64(5)).Return(errors.New("db down"))

		_, err := NewLikeService(repo, posts).Like(ctx, 3, 5)
		assert.Error(t, err)
		repo.AssertNotCalled(t, "CountByPost", mock.Anything, mock.Anything)
	})
}
