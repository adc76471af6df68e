package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"ggrecap/internal/model"
)

type commentRepository struct {
	db *sqlx.DB
}

func NewCommentRepository(db *sqlx.DB) CommentRepository {
	return &commentRepository{db: db}
}

// Create inserts a new comment.
func (r *commentRepository) Create(ctx context.Context, comment *model.Comment) error {
	query := `
		INSERT INTO post_comments (post_id, user_id, body)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`
	row := r.db.QueryRowxContext(ctx, query, comment.PostID, comment.UserID, comment.Body)
	if err := row.Scan(&comment.ID, &comment.CreatedAt); err != nil {
		return fmt.Errorf("insert comment: %w", err)
	}
	return nil
}

// ListByPost returns a post's comments, newest first.
func (r *commentRepository) ListByPost(ctx context.Context, postID int64) ([]model.Comment, error) {
	query := `
		SELECT c.id, c.post_id, c.user_id, c.body, c.created_at, u.username AS author_name
		FROM post_comments c
		JOIN users u ON u.id = c.user_id
		WHERE c.post_id = $1
		ORDER BY c.created_at DESC, c.id DESC
	`
	comments := []model.Comment{}
	if err := r.db.SelectContext(ctx, &comments, query, postID); err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	return comments, nil
}

// ListRecentByUser returns a user's most recent comments with their post
// titles, for the profile page.
func (r *commentRepository) ListRecentByUser(ctx context.Context, userID int64, limit int) ([]model.Comment, error) {
	query := `
		SELECT c.id, c.post_id, c.user_id, c.body, c.created_at,
		       u.username AS author_name, p.title AS post_title
		FROM post_comments c
		JOIN users u ON u.id = c.user_id
		JOIN posts p ON p.id = c.post_id
		WHERE c.user_id = $1
		ORDER BY c.created_at DESC, c.id DESC
		LIMIT $2
	`
	comments := []model.Comment{}
	if err := r.db.SelectContext(ctx, &comments, query, userID, limit); err != nil {
		return nil, fmt.Errorf("list recent comments: %w", err)
	}
	return comments, nil
}

// CountByUser returns how many comments a user has written.
func (r *commentRepository) CountByUser(ctx context.Context, userID int64) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM post_comments WHERE user_id = $1`, userID)
	if err != nil {
		return 0, fmt.Errorf("count comments by user: %w", err)
	}
	return count, nil
}

// Count returns the total number of comments.
func (r *commentRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM post_comments`); err != nil {
		return 0, fmt.Errorf("count comments: %w", err)
	}
	return count, nil
}
