package service

import (
	"context"
	"fmt"
	"log"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"ggrecap/internal/model"
	"ggrecap/internal/repository"
)

// dummyHash keeps login timing flat when the username does not exist: the
// handler still pays for one bcrypt comparison either way, so response time
// cannot be used to enumerate accounts.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("bcrypt timing placeholder"), bcrypt.DefaultCost)

// UserService handles identity: registration, login and public profiles.
type UserService struct {
	users    repository.UserRepository
	posts    repository.PostRepository
	comments repository.CommentRepository
	feedback repository.FeedbackRepository
}

func NewUserService(
	users repository.UserRepository,
	posts repository.PostRepository,
	comments repository.CommentRepository,
	feedback repository.FeedbackRepository,
) *UserService {
	return &UserService{
		users:    users,
		posts:    posts,
		comments: comments,
		feedback: feedback,
	}
}

// Register creates a new account. Usernames are stored lowercased, so "Admin"
// and "admin" collide.
func (s *UserService) Register(ctx context.Context, form *model.RegisterForm) (*model.User, error) {
	username := model.NormalizeUsername(form.Username)

	if username == "" {
		return nil, model.ErrUsernameRequired
	}
	if strings.TrimSpace(form.Password) == "" {
		return nil, model.ErrPasswordRequired
	}
	if form.Password != form.ConfirmPassword {
		return nil, model.ErrPasswordMismatch
	}

	exists, err := s.users.ExistsByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}
	if exists {
		return nil, model.ErrUsernameTaken
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(form.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		Username:       username,
		PasswordHashed: string(hashedPassword),
	}

	// The repository maps a unique-index violation to ErrUsernameTaken, which
	// closes the race between the existence check and the insert.
	if err := s.users.Create(ctx, user); err != nil {
		if err == model.ErrUsernameTaken {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	log.Printf("[UserService] Registered user %q", user.Username)
	return user, nil
}

// Login authenticates a user with username and password.
func (s *UserService) Login(ctx context.Context, form *model.LoginForm) (*model.User, error) {
	username := model.NormalizeUsername(form.Username)

	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if err != model.ErrUserNotFound {
			return nil, fmt.Errorf("failed to look up user: %w", err)
		}
		// Don't reveal whether the username exists. Burn a hash comparison so
		// both failure paths cost the same.
		_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(form.Password))
		return nil, model.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHashed), []byte(form.Password)); err != nil {
		return nil, model.ErrInvalidCredentials
	}

	return user, nil
}

// GetByID retrieves a user by ID. Used to resolve the session's current user.
func (s *UserService) GetByID(ctx context.Context, id int64) (*model.User, error) {
	return s.users.GetByID(ctx, id)
}

// Profile assembles the public profile page for a username: the user's posts,
// their most recent comments, and the vote totals their posts have received.
func (s *UserService) Profile(ctx context.Context, username string) (*model.ProfileView, error) {
	user, err := s.users.GetByUsername(ctx, model.NormalizeUsername(username))
	if err != nil {
		return nil, err
	}

	posts, err := s.posts.ListByUser(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list user posts: %w", err)
	}

	recent, err := s.comments.ListRecentByUser(ctx, user.ID, 6)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent comments: %w", err)
	}

	commentCount, err := s.comments.CountByUser(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to count user comments: %w", err)
	}

	received, err := s.feedback.TallyByAuthor(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to tally received feedback: %w", err)
	}

	return &model.ProfileView{
		User:           user,
		Posts:          posts,
		RecentComments: recent,
		Stats: model.ProfileStats{
			Posts:      len(posts),
			Comments:   commentCount,
			Helpful:    received.Helpful,
			NotHelpful: received.NotHelpful,
		},
	}, nil
}
