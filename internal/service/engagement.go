package service

import (
	"context"
	"fmt"
	"log"
	"strings"

	"ggrecap/internal/model"
	"ggrecap/internal/repository"
)

// EngagementService handles comments and helpful/not-helpful feedback. Any
// authenticated user may engage with any post; ownership never matters here.
type EngagementService struct {
	posts    repository.PostRepository
	comments repository.CommentRepository
	feedback repository.FeedbackRepository
}

func NewEngagementService(
	posts repository.PostRepository,
	comments repository.CommentRepository,
	feedback repository.FeedbackRepository,
) *EngagementService {
	return &EngagementService{
		posts:    posts,
		comments: comments,
		feedback: feedback,
	}
}

// AddComment appends a comment to an existing post.
func (s *EngagementService) AddComment(ctx context.Context, postID, userID int64, body string) (*model.Comment, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		return nil, model.ErrBodyRequired
	}

	// Verify the post is live; comments must never outlive their post.
	if _, err := s.posts.GetByID(ctx, postID); err != nil {
		return nil, err
	}

	comment := &model.Comment{
		PostID: postID,
		UserID: userID,
		Body:   body,
	}
	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, err
	}

	log.Printf("[EngagementService] User %d commented on post %d", userID, postID)
	return comment, nil
}

// ListComments returns a post's comments, newest first.
func (s *EngagementService) ListComments(ctx context.Context, postID int64) ([]model.Comment, error) {
	return s.comments.ListByPost(ctx, postID)
}

// CastFeedback records a helpful/not-helpful vote. Repeating a vote is a
// no-op; flipping it overwrites the single existing row.
func (s *EngagementService) CastFeedback(ctx context.Context, postID, userID int64, action string) (*model.Feedback, error) {
	helpful, err := model.ParseFeedbackAction(action)
	if err != nil {
		return nil, err
	}

	if _, err := s.posts.GetByID(ctx, postID); err != nil {
		return nil, err
	}

	feedback := &model.Feedback{
		PostID:  postID,
		UserID:  userID,
		Helpful: helpful,
	}
	if err := s.feedback.Upsert(ctx, feedback); err != nil {
		return nil, fmt.Errorf("failed to cast feedback: %w", err)
	}

	return feedback, nil
}

// Votes returns the helpful/not-helpful tally for a post.
func (s *EngagementService) Votes(ctx context.Context, postID int64) (model.VoteTally, error) {
	return s.feedback.TallyByPost(ctx, postID)
}

// VoteOf returns the user's current vote on a post, or nil when they have
// not voted.
func (s *EngagementService) VoteOf(ctx context.Context, postID, userID int64) (*model.Feedback, error) {
	vote, err := s.feedback.Get(ctx, postID, userID)
	if err == model.ErrNoVote {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return vote, nil
}
