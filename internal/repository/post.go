package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"ggrecap/internal/model"
)

const postColumns = `p.id, p.user_id, p.title, p.summary, p.content, p.image_url, p.category, p.created_at, u.username AS author_name`

type postRepository struct {
	db *sqlx.DB
}

func NewPostRepository(db *sqlx.DB) PostRepository {
	return &postRepository{db: db}
}

// Create inserts a new post.
func (r *postRepository) Create(ctx context.Context, post *model.Post) error {
	query := `
		INSERT INTO posts (user_id, title, summary, content, image_url, category)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`
	row := r.db.QueryRowxContext(ctx, query,
		post.UserID, post.Title, post.Summary, post.Content, post.ImageURL, post.Category)
	if err := row.Scan(&post.ID, &post.CreatedAt); err != nil {
		return fmt.Errorf("insert post: %w", err)
	}
	return nil
}

// GetByID retrieves a single post with its author name.
func (r *postRepository) GetByID(ctx context.Context, id int64) (*model.Post, error) {
	query := `
		SELECT ` + postColumns + `
		FROM posts p
		JOIN users u ON u.id = p.user_id
		WHERE p.id = $1
	`
	var post model.Post
	err := r.db.GetContext(ctx, &post, query, id)
	if err == sql.ErrNoRows {
		return nil, model.ErrPostNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get post: %w", err)
	}
	return &post, nil
}

// Update overwrites the mutable fields. Ownership is checked by the service
// before this runs.
func (r *postRepository) Update(ctx context.Context, post *model.Post) error {
	query := `
		UPDATE posts
		SET title = $1, summary = $2, content = $3, image_url = $4, category = $5
		WHERE id = $6
	`
	result, err := r.db.ExecContext(ctx, query,
		post.Title, post.Summary, post.Content, post.ImageURL, post.Category, post.ID)
	if err != nil {
		return fmt.Errorf("update post: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}
	if rows == 0 {
		return model.ErrPostNotFound
	}
	return nil
}

// Delete removes a post and cascades to its comments and feedback. All three
// deletes happen in one transaction so a failure leaves everything in place.
func (r *postRepository) Delete(ctx context.Context, postID int64) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM post_feedback WHERE post_id = $1`, postID); err != nil {
		return fmt.Errorf("delete post feedback: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM post_comments WHERE post_id = $1`, postID); err != nil {
		return fmt.Errorf("delete post comments: %w", err)
	}

	result, err := tx.ExecContext(ctx, `DELETE FROM posts WHERE id = $1`, postID)
	if err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}
	if rows == 0 {
		return model.ErrPostNotFound
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// List returns posts matching the filter, newest first.
func (r *postRepository) List(ctx context.Context, filter model.PostFilter) ([]model.Post, error) {
	query, args := buildListQuery(filter)

	posts := []model.Post{}
	if err := r.db.SelectContext(ctx, &posts, query, args...); err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	return posts, nil
}

// buildListQuery composes the listing SQL. Category is an exact
// case-insensitive match; search is a case-insensitive substring over title,
// summary or content. Both combine with AND.
func buildListQuery(filter model.PostFilter) (string, []interface{}) {
	query := `
		SELECT ` + postColumns + `
		FROM posts p
		JOIN users u ON u.id = p.user_id
	`

	var conds []string
	var args []interface{}

	if filter.Category != "" {
		args = append(args, filter.Category)
		conds = append(conds, fmt.Sprintf("p.category ILIKE $%d", len(args)))
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		n := len(args)
		conds = append(conds, fmt.Sprintf("(p.title ILIKE $%d OR p.summary ILIKE $%d OR p.content ILIKE $%d)", n, n, n))
	}

	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY p.created_at DESC, p.id DESC"

	return query, args
}

// ListByUser returns a user's posts, newest first.
func (r *postRepository) ListByUser(ctx context.Context, userID int64) ([]model.Post, error) {
	query := `
		SELECT ` + postColumns + `
		FROM posts p
		JOIN users u ON u.id = p.user_id
		WHERE p.user_id = $1
		ORDER BY p.created_at DESC, p.id DESC
	`
	posts := []model.Post{}
	if err := r.db.SelectContext(ctx, &posts, query, userID); err != nil {
		return nil, fmt.Errorf("list posts by user: %w", err)
	}
	return posts, nil
}

// Categories returns the distinct non-null categories, for the filter UI.
func (r *postRepository) Categories(ctx context.Context) ([]string, error) {
	query := `
		SELECT DISTINCT category
		FROM posts
		WHERE category IS NOT NULL
		ORDER BY category
	`
	categories := []string{}
	if err := r.db.SelectContext(ctx, &categories, query); err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}

// Count returns the total number of posts.
func (r *postRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM posts`); err != nil {
		return 0, fmt.Errorf("count posts: %w", err)
	}
	return count, nil
}
