package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"

	"github.com/naatiworlds/Recetagrm-api/internal/core/comments"
	"github.com/naatiworlds/Recetagrm-api/internal/core/posts"
	"github.com/naatiworlds/Recetagrm-api/internal/core/users"
)

// postViewSelect loads a post with its owner summary and derived counts
const postViewSelect = `
	SELECT
		p.id, p.user_id, p.title, p.description, p.imagen, p.ingredients,
		p.created_at, p.updated_at,
		u.id, u.name, u.avatar,
		(SELECT COUNT(*) FROM likes l WHERE l.post_id = p.id) AS like_count,
		(SELECT COUNT(*) FROM comments c WHERE c.post_id = p.id) AS comment_count
	FROM posts p
	JOIN users u ON u.id = p.user_id
`

// PostRepository implements posts.Repository plus the post lookups
// used by likes, comments and the ownership middleware
type PostRepository struct {
	db *sql.DB
}

// NewPostRepository creates a new PostgreSQL post repository
func NewPostRepository(db *sql.DB) *PostRepository {
	return &PostRepository{db: db}
}

var _ posts.Repository = (*PostRepository)(nil)

// Create inserts a new post and fills in its id and timestamps
func (r *PostRepository) Create(ctx context.Context, post *posts.Post) error {
	query := `
		INSERT INTO posts (user_id, title, description, imagen, ingredients)
		VALUES ($1, $2, $3, $4, $5::jsonb)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRowContext(
		ctx, query,
		post.UserID, post.Title, post.Description, nullString(post.ImageURL), nullJSON(post.Ingredients),
	).Scan(&post.ID, &post.CreatedAt, &post.UpdatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "foreign_key_violation" {
			return fmt.Errorf("owner not found: %d", post.UserID)
		}
		return fmt.Errorf("failed to insert post: %w", err)
	}

	return nil
}

// GetByID retrieves the stored post row
func (r *PostRepository) GetByID(ctx context.Context, id int64) (*posts.Post, error) {
	query := `
		SELECT id, user_id, title, description, imagen, ingredients, created_at, updated_at
		FROM posts
		WHERE id = $1
	`

	post, err := scanPost(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, posts.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get post: %w", err)
	}
	return post, nil
}

// Update writes every mutable column and bumps updated_at
func (r *PostRepository) Update(ctx context.Context, post *posts.Post) error {
	query := `
		UPDATE posts
		SET title = $2, description = $3, imagen = $4, ingredients = $5::jsonb, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`

	err := r.db.QueryRowContext(
		ctx, query,
		post.ID, post.Title, post.Description, nullString(post.ImageURL), nullJSON(post.Ingredients),
	).Scan(&post.UpdatedAt)
	if err == sql.ErrNoRows {
		return posts.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to update post: %w", err)
	}
	return nil
}

// Delete removes a post; likes and comments go with it by cascade
func (r *PostRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if rowsAffected == 0 {
		return posts.ErrNotFound
	}
	return nil
}

// Exists reports whether a post row exists
func (r *PostRepository) Exists(ctx context.Context, postID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM posts WHERE id = $1)`, postID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check post existence: %w", err)
	}
	return exists, nil
}

// OwnerOf returns the owner of a post. found is false when the post doesn't exist.
func (r *PostRepository) OwnerOf(ctx context.Context, postID int64) (ownerID int64, found bool, err error) {
	err = r.db.QueryRowContext(ctx, `SELECT user_id FROM posts WHERE id = $1`, postID).Scan(&ownerID)
	if err == sql.ErrNoRows {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("failed to get post owner: %w", err)
	}
	return ownerID, true, nil
}

// GetView loads one post with owner, likers and counts.
// withComments additionally loads the comments with their authors.
func (r *PostRepository) GetView(ctx context.Context, id int64, withComments bool) (*posts.PostView, error) {
	view, err := scanPostView(r.db.QueryRowContext(ctx, postViewSelect+` WHERE p.id = $1`, id))
	if err == sql.ErrNoRows {
		return nil, posts.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get post view: %w", err)
	}

	views := []*posts.PostView{view}
	if err := r.attachLikers(ctx, views); err != nil {
		return nil, err
	}
	if withComments {
		if err := r.attachComments(ctx, views); err != nil {
			return nil, err
		}
	}
	return view, nil
}

// ListViews returns enriched posts newest first.
// Likers for the whole page are loaded in one query to avoid N+1 lookups.
func (r *PostRepository) ListViews(ctx context.Context, filter posts.ListFilter) ([]*posts.PostView, error) {
	var whereConditions []string
	var args []interface{}
	paramIndex := 1

	if filter.OwnerIDs != nil {
		whereConditions = append(whereConditions, fmt.Sprintf("p.user_id = ANY($%d)", paramIndex))
		args = append(args, pq.Array(filter.OwnerIDs))
		paramIndex++
	}
	if filter.PublicOnly {
		whereConditions = append(whereConditions, "u.is_public = TRUE")
	}

	query := postViewSelect
	if len(whereConditions) > 0 {
		query += " WHERE " + strings.Join(whereConditions, " AND ")
	}
	query += " ORDER BY p.created_at DESC, p.id DESC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	defer func() { _ = rows.Close() }()

	result := []*posts.PostView{}
	for rows.Next() {
		view, err := scanPostView(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan post: %w", err)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating posts: %w", err)
	}

	if err := r.attachLikers(ctx, result); err != nil {
		return nil, err
	}
	return result, nil
}

// ListByOwner returns the owner's plain posts, newest first
func (r *PostRepository) ListByOwner(ctx context.Context, ownerID int64) ([]*posts.Post, error) {
	query := `
		SELECT id, user_id, title, description, imagen, ingredients, created_at, updated_at
		FROM posts
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
	`

	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts by owner: %w", err)
	}
	defer func() { _ = rows.Close() }()

	result := []*posts.Post{}
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan post: %w", err)
		}
		result = append(result, post)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating posts: %w", err)
	}
	return result, nil
}

func (r *PostRepository) attachLikers(ctx context.Context, views []*posts.PostView) error {
	if len(views) == 0 {
		return nil
	}
	byID := indexViews(views)

	query := `
		SELECT l.post_id, u.id, u.name, u.avatar
		FROM likes l
		JOIN users u ON u.id = l.user_id
		WHERE l.post_id = ANY($1)
		ORDER BY l.created_at, l.user_id
	`
	rows, err := r.db.QueryContext(ctx, query, pq.Array(viewIDs(views)))
	if err != nil {
		return fmt.Errorf("failed to load likers: %w", err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var postID int64
		var liker users.Summary
		var avatar sql.NullString
		if err := rows.Scan(&postID, &liker.ID, &liker.Name, &avatar); err != nil {
			return fmt.Errorf("failed to scan liker: %w", err)
		}
		if avatar.Valid {
			liker.Avatar = &avatar.String
		}
		if v, ok := byID[postID]; ok {
			v.LikedBy = append(v.LikedBy, liker)
		}
	}
	return rows.Err()
}

func (r *PostRepository) attachComments(ctx context.Context, views []*posts.PostView) error {
	byID := indexViews(views)

	query := commentSelect + `
		WHERE c.post_id = ANY($1)
		ORDER BY c.created_at, c.id
	`
	rows, err := r.db.QueryContext(ctx, query, pq.Array(viewIDs(views)))
	if err != nil {
		return fmt.Errorf("failed to load comments: %w", err)
	}
	defer func() { _ = rows.Close() }()

	for _, v := range views {
		v.Comments = []*comments.Comment{}
	}
	for rows.Next() {
		c, err := scanComment(rows)
		if err != nil {
			return fmt.Errorf("failed to scan comment: %w", err)
		}
		if v, ok := byID[c.PostID]; ok {
			v.Comments = append(v.Comments, c)
		}
	}
	return rows.Err()
}

// rowScanner is satisfied by *sql.Row and *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanPost(row rowScanner) (*posts.Post, error) {
	var post posts.Post
	var imageURL, ingredients sql.NullString

	err := row.Scan(
		&post.ID, &post.UserID, &post.Title, &post.Description, &imageURL, &ingredients,
		&post.CreatedAt, &post.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if imageURL.Valid {
		post.ImageURL = &imageURL.String
	}
	if ingredients.Valid {
		post.Ingredients = json.RawMessage(ingredients.String)
	}
	return &post, nil
}

func scanPostView(row rowScanner) (*posts.PostView, error) {
	view := &posts.PostView{User: &users.Summary{}, LikedBy: []users.Summary{}}
	var imageURL, ingredients, avatar sql.NullString

	err := row.Scan(
		&view.ID, &view.UserID, &view.Title, &view.Description, &imageURL, &ingredients,
		&view.CreatedAt, &view.UpdatedAt,
		&view.User.ID, &view.User.Name, &avatar,
		&view.LikeCount, &view.CommentCount,
	)
	if err != nil {
		return nil, err
	}

	if imageURL.Valid {
		view.ImageURL = &imageURL.String
	}
	if ingredients.Valid {
		view.Ingredients = json.RawMessage(ingredients.String)
	}
	if avatar.Valid {
		view.User.Avatar = &avatar.String
	}
	return view, nil
}

func indexViews(views []*posts.PostView) map[int64]*posts.PostView {
	byID := make(map[int64]*posts.PostView, len(views))
	for _, v := range views {
		byID[v.ID] = v
	}
	return byID
}

func viewIDs(views []*posts.PostView) []int64 {
	ids := make([]int64, len(views))
	for i, v := range views {
		ids[i] = v.ID
	}
	return ids
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

// nullJSON passes JSON as text so the ::jsonb cast applies; lib/pq would send []byte as bytea
func nullJSON(raw json.RawMessage) sql.NullString {
	if len(raw) == 0 {
		return sql.NullString{}
	}
	return sql.NullString{String: string(raw), Valid: true}
}
