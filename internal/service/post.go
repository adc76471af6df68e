package service

import (
	"context"
	"log"

	"ggrecap/internal/model"
	"ggrecap/internal/repository"
)

// PostService handles content: publishing, editing, deleting and the
// filtered listing the home page shows.
type PostService struct {
	posts    repository.PostRepository
	comments repository.CommentRepository
	users    repository.UserRepository
}

func NewPostService(
	posts repository.PostRepository,
	comments repository.CommentRepository,
	users repository.UserRepository,
) *PostService {
	return &PostService{
		posts:    posts,
		comments: comments,
		users:    users,
	}
}

// Browse returns the home page view: posts matching the filter (newest
// first), the distinct categories for the filter UI, and the site counters.
func (s *PostService) Browse(ctx context.Context, filter model.PostFilter) (*model.HomeView, error) {
	posts, err := s.posts.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	categories, err := s.posts.Categories(ctx)
	if err != nil {
		return nil, err
	}

	postCount, err := s.posts.Count(ctx)
	if err != nil {
		return nil, err
	}
	commentCount, err := s.comments.Count(ctx)
	if err != nil {
		return nil, err
	}
	memberCount, err := s.users.Count(ctx)
	if err != nil {
		return nil, err
	}

	view := &model.HomeView{
		Posts:      posts,
		Categories: categories,
		Stats: model.SiteStats{
			Posts:    postCount,
			Comments: commentCount,
			Members:  memberCount,
		},
	}
	if len(posts) > 0 {
		view.Featured = &posts[0]
	}
	return view, nil
}

// Get retrieves one post.
func (s *PostService) Get(ctx context.Context, id int64) (*model.Post, error) {
	return s.posts.GetByID(ctx, id)
}

// Create publishes a new post for the authenticated author.
func (s *PostService) Create(ctx context.Context, authorID int64, form *model.PostForm) (*model.Post, error) {
	if err := form.Validate(); err != nil {
		return nil, err
	}

	post := &model.Post{
		UserID:   authorID,
		Title:    form.Title,
		Summary:  form.Summary,
		Content:  form.Content,
		ImageURL: optional(form.ImageURL),
		Category: optional(form.Category),
	}

	if err := s.posts.Create(ctx, post); err != nil {
		return nil, err
	}

	log.Printf("[PostService] User %d published post %d %q", authorID, post.ID, post.Title)
	return post, nil
}

// Update overwrites the mutable fields of a post. Only the author may.
func (s *PostService) Update(ctx context.Context, postID, userID int64, form *model.PostForm) (*model.Post, error) {
	post, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if !post.CanMutate(userID) {
		return nil, model.ErrNotPostOwner
	}

	if err := form.Validate(); err != nil {
		return nil, err
	}

	post.Title = form.Title
	post.Summary = form.Summary
	post.Content = form.Content
	post.ImageURL = optional(form.ImageURL)
	post.Category = optional(form.Category)

	if err := s.posts.Update(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// Delete removes a post and everything hanging off it. Only the author may.
func (s *PostService) Delete(ctx context.Context, postID, userID int64) error {
	post, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		return err
	}
	if !post.CanMutate(userID) {
		return model.ErrNotPostOwner
	}

	if err := s.posts.Delete(ctx, postID); err != nil {
		return err
	}

	log.Printf("[PostService] User %d deleted post %d", userID, postID)
	return nil
}

// optional maps an empty form field to NULL.
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
