package model

import "errors"

// Form values accepted by the feedback endpoint.
const (
	ActionHelpful    = "helpful"
	ActionNotHelpful = "not_helpful"
)

// Feedback is one user's binary judgment on one post. At most one row exists
// per (post, user); casting again overwrites the boolean.
type Feedback struct {
	ID      int64 `db:"id"`
	PostID  int64 `db:"post_id"`
	UserID  int64 `db:"user_id"`
	Helpful bool  `db:"helpful"`
}

// VoteTally holds the helpful/not-helpful counts for a post or an author.
type VoteTally struct {
	Helpful    int `db:"helpful"`
	NotHelpful int `db:"not_helpful"`
}

// ParseFeedbackAction maps the submitted form value to the stored boolean.
func ParseFeedbackAction(action string) (bool, error) {
	switch action {
	case ActionHelpful:
		return true, nil
	case ActionNotHelpful:
		return false, nil
	default:
		return false, ErrInvalidFeedback
	}
}

var (
	ErrInvalidFeedback = errors.New("invalid feedback option")

	// ErrNoVote is returned when a user has not voted on a post.
	ErrNoVote = errors.New("no feedback recorded")
)
