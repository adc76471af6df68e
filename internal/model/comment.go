package model

import (
	"errors"
	"time"
)

// Comment represents a comment on a post. Comments are never edited or
// deleted on their own; they only disappear when their post does.
type Comment struct {
	ID        int64     `db:"id"`
	PostID    int64     `db:"post_id"`
	UserID    int64     `db:"user_id"`
	Body      string    `db:"body"`
	CreatedAt time.Time `db:"created_at"`

	// AuthorName is joined from users in list queries.
	AuthorName string `db:"author_name"`

	// PostTitle is joined when listing a user's recent comments.
	PostTitle string `db:"post_title"`
}

// ErrBodyRequired is returned when a comment body is empty after trimming.
var ErrBodyRequired = errors.New("comment body is required")
