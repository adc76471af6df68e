package model

import (
	"errors"
	"strings"
	"time"
)

// FallbackHeroImage is shown for posts published without an image reference.
const FallbackHeroImage = "https://images.unsplash.com/photo-1511512578047-dfb367046420?auto=format&fit=crop&w=1600&q=80"

// Post represents a published recap.
type Post struct {
	ID        int64     `db:"id"`
	UserID    int64     `db:"user_id"`
	Title     string    `db:"title"`
	Summary   string    `db:"summary"`
	Content   string    `db:"content"`
	ImageURL  *string   `db:"image_url"`
	Category  *string   `db:"category"`
	CreatedAt time.Time `db:"created_at"`

	// AuthorName is joined from users in list/detail queries.
	AuthorName string `db:"author_name"`
}

// HeroImage returns the post's image reference, or the fixed fallback when
// none was set. Presentation default only, never persisted.
func (p *Post) HeroImage() string {
	if p.ImageURL != nil && *p.ImageURL != "" {
		return *p.ImageURL
	}
	return FallbackHeroImage
}

// CanMutate reports whether userID may edit or delete this post. Only the
// author ever can.
func (p *Post) CanMutate(userID int64) bool {
	return userID != 0 && p.UserID == userID
}

// PostForm carries the create/edit fields as submitted.
type PostForm struct {
	Title    string
	Summary  string
	Content  string
	ImageURL string
	Category string
}

// Validate trims every field and checks the required ones.
func (f *PostForm) Validate() error {
	f.Title = strings.TrimSpace(f.Title)
	f.Summary = strings.TrimSpace(f.Summary)
	f.Content = strings.TrimSpace(f.Content)
	f.ImageURL = strings.TrimSpace(f.ImageURL)
	f.Category = strings.TrimSpace(f.Category)

	switch {
	case f.Title == "":
		return ErrTitleRequired
	case f.Summary == "":
		return ErrSummaryRequired
	case f.Content == "":
		return ErrContentRequired
	}
	return nil
}

// PostFilter narrows a listing. Zero value means "everything".
type PostFilter struct {
	// Search matches case-insensitively as a substring of title, summary or
	// content.
	Search string
	// Category matches case-insensitively but exactly.
	Category string
}

// SiteStats are the aggregate counters shown on the home page.
type SiteStats struct {
	Posts    int
	Comments int
	Members  int
}

// HomeView is everything the index page renders.
type HomeView struct {
	Posts      []Post
	Featured   *Post
	Categories []string
	Stats      SiteStats
}

var (
	ErrPostNotFound = errors.New("post not found")
	ErrNotPostOwner = errors.New("not the owner of this post")

	ErrTitleRequired   = errors.New("title is required")
	ErrSummaryRequired = errors.New("summary is required")
	ErrContentRequired = errors.New("content is required")
)
