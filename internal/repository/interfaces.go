package repository

import (
	"context"

	"ggrecap/internal/model"
)

type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	GetByID(ctx context.Context, id int64) (*model.User, error)
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	Count(ctx context.Context) (int, error)
}

type PostRepository interface {
	Create(ctx context.Context, post *model.Post) error
	GetByID(ctx context.Context, id int64) (*model.Post, error)
	Update(ctx context.Context, post *model.Post) error
	// Delete removes the post together with its comments and feedback in one
	// transaction.
	Delete(ctx context.Context, postID int64) error
	List(ctx context.Context, filter model.PostFilter) ([]model.Post, error)
	ListByUser(ctx context.Context, userID int64) ([]model.Post, error)
	// Categories returns the distinct non-null categories across all posts.
	Categories(ctx context.Context) ([]string, error)
	Count(ctx context.Context) (int, error)
}

type CommentRepository interface {
	Create(ctx context.Context, comment *model.Comment) error
	// ListByPost returns a post's comments, newest first.
	ListByPost(ctx context.Context, postID int64) ([]model.Comment, error)
	ListRecentByUser(ctx context.Context, userID int64, limit int) ([]model.Comment, error)
	CountByUser(ctx context.Context, userID int64) (int, error)
	Count(ctx context.Context) (int, error)
}

type FeedbackRepository interface {
	// Upsert inserts the vote or, when the (post, user) row already exists,
	// overwrites its boolean.
	Upsert(ctx context.Context, feedback *model.Feedback) error
	// Get returns model.ErrNoVote when the user has not voted on the post.
	Get(ctx context.Context, postID, userID int64) (*model.Feedback, error)
	TallyByPost(ctx context.Context, postID int64) (model.VoteTally, error)
	// TallyByAuthor sums the votes received across all of an author's posts.
	TallyByAuthor(ctx context.Context, authorID int64) (model.VoteTally, error)
}
