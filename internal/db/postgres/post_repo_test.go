package postgres

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/naatiworlds/Recetagrm-api/internal/core/comments"
	"github.com/naatiworlds/Recetagrm-api/internal/core/follows"
	"github.com/naatiworlds/Recetagrm-api/internal/core/posts"
)

func createTestPost(t *testing.T, repo *PostRepository, ownerID int64, title string) *posts.Post {
	t.Helper()

	p := &posts.Post{
		UserID:      ownerID,
		Title:       title,
		Description: title + " description",
		Ingredients: json.RawMessage(`["salt"]`),
	}
	require.NoError(t, repo.Create(context.Background(), p))
	return p
}

func TestPostRepo_CreateAndGet(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()
	owner := createTestUser(t, db, "ana", true)

	url := "https://res.cloudinary.com/demo/image/upload/v1/posts/abc.jpg"
	p := &posts.Post{
		UserID:      owner.ID,
		Title:       "Tacos",
		Description: "Quick tacos",
		ImageURL:    &url,
		Ingredients: json.RawMessage(`["corn","beef"]`),
	}
	require.NoError(t, repo.Create(ctx, p))
	assert.NotZero(t, p.ID)

	got, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Tacos", got.Title)
	require.NotNil(t, got.ImageURL)
	assert.Equal(t, url, *got.ImageURL)
	assert.JSONEq(t, `["corn","beef"]`, string(got.Ingredients))
}

func TestPostRepo_CreateWithoutOptionalFields(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()
	owner := createTestUser(t, db, "ana", true)

	p := &posts.Post{UserID: owner.ID, Title: "Soup", Description: "Warm"}
	require.NoError(t, repo.Create(ctx, p))

	got, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Nil(t, got.ImageURL)
	assert.Nil(t, got.Ingredients)
}

func TestPostRepo_CreateUnknownOwner(t *testing.T) {
	db := setupTestDB(t)

	err := NewPostRepository(db).Create(context.Background(), &posts.Post{UserID: 999999, Title: "x", Description: "y"})
	assert.Error(t, err)
}

func TestPostRepo_GetView_WithLikersAndComments(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	owner := createTestUser(t, db, "ana", true)
	fan := createTestUser(t, db, "leo", true)
	p := createTestPost(t, repo, owner.ID, "Tacos")

	require.NoError(t, NewLikeRepository(db).Create(ctx, fan.ID, p.ID))
	commentRepo := NewCommentRepository(db)
	require.NoError(t, commentRepo.Create(ctx, &comments.Comment{PostID: p.ID, UserID: fan.ID, Content: "first"}))
	require.NoError(t, commentRepo.Create(ctx, &comments.Comment{PostID: p.ID, UserID: owner.ID, Content: "second"}))

	view, err := repo.GetView(ctx, p.ID, true)
	require.NoError(t, err)

	assert.Equal(t, owner.ID, view.User.ID)
	assert.Equal(t, "ana", view.User.Name)
	assert.Equal(t, 1, view.LikeCount)
	assert.Equal(t, 2, view.CommentCount)
	require.Len(t, view.LikedBy, 1)
	assert.Equal(t, "leo", view.LikedBy[0].Name)
	require.Len(t, view.Comments, 2)
	assert.Equal(t, "first", view.Comments[0].Content)
	assert.Equal(t, "leo", view.Comments[0].Author.Name)

	again, err := repo.GetView(ctx, p.ID, true)
	require.NoError(t, err)
	assert.Equal(t, view, again)

	withoutComments, err := repo.GetView(ctx, p.ID, false)
	require.NoError(t, err)
	assert.Nil(t, withoutComments.Comments)
	assert.Equal(t, 2, withoutComments.CommentCount)
}

func TestPostRepo_GetView_NotFound(t *testing.T) {
	db := setupTestDB(t)

	_, err := NewPostRepository(db).GetView(context.Background(), 999999, true)
	assert.ErrorIs(t, err, posts.ErrNotFound)
}

func TestPostRepo_ListViews_NewestFirst(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()
	owner := createTestUser(t, db, "ana", true)

	first := createTestPost(t, repo, owner.ID, "first")
	second := createTestPost(t, repo, owner.ID, "second")

	list, err := repo.ListViews(ctx, posts.ListFilter{})
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID)
	assert.Equal(t, first.ID, list[1].ID)
	assert.NotNil(t, list[0].LikedBy)
}

func TestPostRepo_ListViews_PublicFeedTracksVisibility(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	userRepo := NewUserRepository(db)
	ctx := context.Background()

	public := createTestUser(t, db, "ana", true)
	private := createTestUser(t, db, "leo", false)
	createTestPost(t, repo, public.ID, "open")
	hidden := createTestPost(t, repo, private.ID, "hidden")

	feed, err := repo.ListViews(ctx, posts.ListFilter{PublicOnly: true})
	require.NoError(t, err)
	require.Len(t, feed, 1)
	assert.Equal(t, "open", feed[0].Title)

	_, err = userRepo.SetVisibility(ctx, private.ID, true)
	require.NoError(t, err)

	feed, err = repo.ListViews(ctx, posts.ListFilter{PublicOnly: true})
	require.NoError(t, err)
	require.Len(t, feed, 2)
	assert.Equal(t, hidden.ID, feed[0].ID)
}

func TestPostRepo_FollowingFeed_ExcludesPendingFollows(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	followRepo := NewFollowRepository(db)
	ctx := context.Background()

	viewer := createTestUser(t, db, "viewer", true)
	accepted := createTestUser(t, db, "ana", true)
	pending := createTestUser(t, db, "leo", false)
	createTestPost(t, repo, accepted.ID, "visible")
	createTestPost(t, repo, pending.ID, "not yet")

	require.NoError(t, followRepo.Create(ctx, &follows.Follow{FollowerID: viewer.ID, FollowingID: accepted.ID, Status: follows.StatusAccepted}))
	require.NoError(t, followRepo.Create(ctx, &follows.Follow{FollowerID: viewer.ID, FollowingID: pending.ID, Status: follows.StatusPending}))

	ids, err := followRepo.ListAcceptedFollowingIDs(ctx, viewer.ID)
	require.NoError(t, err)
	assert.Equal(t, []int64{accepted.ID}, ids)

	feed, err := repo.ListViews(ctx, posts.ListFilter{OwnerIDs: ids})
	require.NoError(t, err)
	require.Len(t, feed, 1)
	assert.Equal(t, "visible", feed[0].Title)

	empty, err := repo.ListViews(ctx, posts.ListFilter{OwnerIDs: []int64{}})
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestPostRepo_Update(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()
	owner := createTestUser(t, db, "ana", true)
	p := createTestPost(t, repo, owner.ID, "Tacos")

	p.Description = "Updated"
	p.Ingredients = json.RawMessage(`{"corn": 2}`)
	require.NoError(t, repo.Update(ctx, p))

	got, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Tacos", got.Title)
	assert.Equal(t, "Updated", got.Description)
	assert.JSONEq(t, `{"corn": 2}`, string(got.Ingredients))
	assert.False(t, got.UpdatedAt.Before(got.CreatedAt))

	err = repo.Update(ctx, &posts.Post{ID: 999999, Title: "x"})
	assert.ErrorIs(t, err, posts.ErrNotFound)
}

func TestPostRepo_DeleteCascades(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()
	owner := createTestUser(t, db, "ana", true)
	p := createTestPost(t, repo, owner.ID, "Tacos")

	require.NoError(t, NewLikeRepository(db).Create(ctx, owner.ID, p.ID))
	require.NoError(t, NewCommentRepository(db).Create(ctx, &comments.Comment{PostID: p.ID, UserID: owner.ID, Content: "hi"}))

	require.NoError(t, repo.Delete(ctx, p.ID))

	exists, err := repo.Exists(ctx, p.ID)
	require.NoError(t, err)
	assert.False(t, exists)

	var likeCount int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM likes WHERE post_id = $1`, p.ID).Scan(&likeCount))
	assert.Zero(t, likeCount)

	assert.ErrorIs(t, repo.Delete(ctx, p.ID), posts.ErrNotFound)
}

func TestPostRepo_OwnerOfAndListByOwner(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()
	ana := createTestUser(t, db, "ana", true)
	leo := createTestUser(t, db, "leo", true)
	p := createTestPost(t, repo, ana.ID, "Tacos")
	createTestPost(t, repo, leo.ID, "Soup")

	owner, found, err := repo.OwnerOf(ctx, p.ID)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, ana.ID, owner)

	_, found, err = repo.OwnerOf(ctx, 999999)
	require.NoError(t, err)
	assert.False(t, found)

	list, err := repo.ListByOwner(ctx, ana.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Tacos", list[0].Title)
}
