package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"ggrecap/internal/model"
)

type feedbackRepository struct {
	db *sqlx.DB
}

func NewFeedbackRepository(db *sqlx.DB) FeedbackRepository {
	return &feedbackRepository{db: db}
}

// Upsert casts or overwrites a vote. The UNIQUE (post_id, user_id) constraint
// drives the conflict path, so concurrent votes from the same user resolve to
// last-write-wins with exactly one row.
func (r *feedbackRepository) Upsert(ctx context.Context, f *model.Feedback) error {
	query := `
		INSERT INTO post_feedback (post_id, user_id, helpful)
		VALUES ($1, $2, $3)
		ON CONFLICT (post_id, user_id) DO UPDATE SET helpful = EXCLUDED.helpful
		RETURNING id
	`
	row := r.db.QueryRowxContext(ctx, query, f.PostID, f.UserID, f.Helpful)
	if err := row.Scan(&f.ID); err != nil {
		return fmt.Errorf("upsert feedback: %w", err)
	}
	return nil
}

// Get returns the user's current vote on a post.
func (r *feedbackRepository) Get(ctx context.Context, postID, userID int64) (*model.Feedback, error) {
	query := `
		SELECT id, post_id, user_id, helpful
		FROM post_feedback
		WHERE post_id = $1 AND user_id = $2
	`
	var f model.Feedback
	err := r.db.GetContext(ctx, &f, query, postID, userID)
	if err == sql.ErrNoRows {
		return nil, model.ErrNoVote
	}
	if err != nil {
		return nil, fmt.Errorf("get feedback: %w", err)
	}
	return &f, nil
}

// TallyByPost counts the helpful and not-helpful votes on one post.
func (r *feedbackRepository) TallyByPost(ctx context.Context, postID int64) (model.VoteTally, error) {
	query := `
		SELECT COUNT(*) FILTER (WHERE helpful)     AS helpful,
		       COUNT(*) FILTER (WHERE NOT helpful) AS not_helpful
		FROM post_feedback
		WHERE post_id = $1
	`
	var tally model.VoteTally
	if err := r.db.GetContext(ctx, &tally, query, postID); err != nil {
		return model.VoteTally{}, fmt.Errorf("tally feedback by post: %w", err)
	}
	return tally, nil
}

// TallyByAuthor counts the votes received across all of an author's posts.
func (r *feedbackRepository) TallyByAuthor(ctx context.Context, authorID int64) (model.VoteTally, error) {
	query := `
		SELECT COUNT(*) FILTER (WHERE f.helpful)     AS helpful,
		       COUNT(*) FILTER (WHERE NOT f.helpful) AS not_helpful
		FROM post_feedback f
		JOIN posts p ON p.id = f.post_id
		WHERE p.user_id = $1
	`
	var tally model.VoteTally
	if err := r.db.GetContext(ctx, &tally, query, authorID); err != nil {
		return model.VoteTally{}, fmt.Errorf("tally feedback by author: %w", err)
	}
	return tally, nil
}
