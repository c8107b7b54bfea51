package comments

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/naatiworlds/Recetagrm-api/internal/core/users"
)

type mockCommentRepo struct {
	mock.Mock
}

func (m *mockCommentRepo) Create(ctx context.Context, comment *Comment) error {
	args := m.Called(ctx, comment)
	if args.Error(0) == nil {
		comment.ID = 11
	}
	return args.Error(0)
}

func (m *mockCommentRepo) GetByID(ctx context.Context, id int64) (*Comment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Comment), args.Error(1)
}

func (m *mockCommentRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockCommentRepo) ListByPost(ctx context.Context, postID int64) ([]*Comment, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Comment), args.Error(1)
}

type mockPostChecker struct {
	mock.Mock
}

func (m *mockPostChecker) Exists(ctx context.Context, postID int64) (bool, error) {
	args := m.Called(ctx, postID)
	return args.Bool(0), args.Error(1)
}

func TestAddComment_Success(t *testing.T) {
	repo := new(mockCommentRepo)
	posts := new(mockPostChecker)
	svc := NewCommentService(repo, posts)
	ctx := context.Background()

	posts.On("Exists", ctx, int64(5)).Return(true, nil)
	repo.On("Create", ctx, mock.MatchedBy(func(c *Comment) bool {
		return c.PostID == 5 && c.UserID == 3 && c.Content == "Delicious!"
	})).Return(nil)
	repo.On("GetByID", ctx, int64(11)).Return(&Comment{
		ID: 11, PostID: 5, UserID: 3, Content: "Delicious!",
		Author: &users.Summary{ID: 3, Name: "Ana"},
	}, nil)

	got, err := svc.AddComment(ctx, 5, 3, CreateCommentRequest{Content: "  Delicious!  "})
	require.NoError(t, err)

	assert.Equal(t, int64(11), got.ID)
	require.NotNil(t, got.Author)
	assert.Equal(t, "Ana", got.Author.Name)
	repo.AssertExpectations(t)
}

func TestAddComment_Validation(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{"empty", "", ErrContentEmpty},
		{"whitespace only", "   \n\t", ErrContentEmpty},
		{"too long", strings.Repeat("a", maxCommentGraphemes+1), ErrContentTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mockCommentRepo)
			posts := new(mockPostChecker)
			svc := NewCommentService(repo, posts)

			_, err := svc.AddComment(context.Background(), 5, 3, CreateCommentRequest{Content: tt.content})
			assert.ErrorIs(t, err, tt.wantErr)
			assert.True(t, IsValidationError(err))
			posts.AssertNotCalled(t, "Exists", mock.Anything, mock.Anything)
			repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestAddComment_CountsGraphemesNotBytes(t *testing.T) {
	repo := new(mockCommentRepo)
	posts := new(mockPostChecker)
	svc := NewCommentService(repo, posts)
	ctx := context.Background()

	// 1000 multi-byte characters is still within the limit
	content := strings.Repeat("ñ", maxCommentGraphemes)
	posts.On("Exists", ctx, int64(5)).Return(true, nil)
	repo.On("Create", ctx, mock.Anything).Return(nil)
	repo.On("GetByID", ctx, int64(11)).Return(&Comment{ID: 11, Content: content}, nil)

	_, err := svc.AddComment(ctx, 5, 3, CreateCommentRequest{Content: content})
	assert.NoError(t, err)
}

func TestAddComment_PostMissing(t *testing.T) {
	repo := new(mockCommentRepo)
	posts := new(mockPostChecker)
	svc := NewCommentService(repo, posts)
	ctx := context.Background()

	posts.On("Exists", ctx, int64(404)).Return(false, nil)

	_, err := svc.AddComment(ctx, 404, 3, CreateCommentRequest{Content: "hi"})
	assert.ErrorIs(t, err, ErrPostNotFound)
	assert.True(t, IsNotFound(err))
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAddComment_RepoFailure(t *testing.T) {
	repo := new(mockCommentRepo)
	posts := new(mockPostChecker)
	svc := NewCommentService(repo, posts)
	ctx := context.Background()

	posts.On("Exists", ctx, int64(5)).Return(true, nil)
	repo.On("Create", ctx, mock.Anything).Return(errors.New("db down"))

	_, err := svc.AddComment(ctx, 5, 3, CreateCommentRequest{Content: "hi"})
	require.Error(t, err)
	assert.False(t, IsNotFound(err))
	assert.False(t, IsValidationError(err))
}

func TestListComments(t *testing.T) {
	repo := new(mockCommentRepo)
	posts := new(mockPostChecker)
	svc := NewCommentService(repo, posts)
	ctx := context.Background()

	posts.On("Exists", ctx, int64(5)).Return(true, nil)
	posts.On("Exists", ctx, int64(6)).Return(true, nil)
	repo.On("ListByPost", ctx, int64(5)).Return([]*Comment{{ID: 1}, {ID: 2}}, nil)
	repo.On("ListByPost", ctx, int64(6)).Return(nil, nil)

	got, err := svc.ListComments(ctx, 5)
	require.NoError(t, err)
	assert.Len(t, got, 2)

	empty, err := svc.ListComments(ctx, 6)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestDeleteComment(t *testing.T) {
	ctx := context.Background()

	t.Run("author deletes", func(t *testing.T) {
		repo := new(mockCommentRepo)
		svc := NewCommentService(repo, new(mockPostChecker))

		repo.On("GetByID", ctx, int64(11)).Return(&Comment{ID: 11, UserID: 3, PostID: 5}, nil)
		repo.On("Delete", ctx, int64(11)).Return(nil)

		require.NoError(t, svc.DeleteComment(ctx, 11, 3))
		repo.AssertExpectations(t)
	})

	t.Run("other user denied", func(t *testing.T) {
		repo := new(mockCommentRepo)
		svc := NewCommentService(repo, new(mockPostChecker))

		repo.On("GetByID", ctx, int64(11)).Return(&Comment{ID: 11, UserID: 3}, nil)

		err := svc.DeleteComment(ctx, 11, 4)
		assert.ErrorIs(t, err, ErrNotAuthorized)
		repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("missing comment", func(t *testing.T) {
		repo := new(mockCommentRepo)
		svc := NewCommentService(repo, new(mockPostChecker))

		repo.On("GetByID", ctx, int64(99)).Return(nil, ErrCommentNotFound)

		err := svc.DeleteComment(ctx, 99, 3)
		assert.True(t, IsNotFound(err))
	})
}
