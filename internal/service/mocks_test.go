package service

import (
	"context"

	"ggrecap/internal/model"
)

// Hand-rolled mocks for the repository interfaces. Each test sets only the
// function fields it cares about; unset fields fall back to an empty-store
// default (not found / zero counts).

type mockUserRepository struct {
	createFn           func(ctx context.Context, user *model.User) error
	getByIDFn          func(ctx context.Context, id int64) (*model.User, error)
	getByUsernameFn    func(ctx context.Context, username string) (*model.User, error)
	existsByUsernameFn func(ctx context.Context, username string) (bool, error)
	countFn            func(ctx context.Context) (int, error)

	// Track calls for assertions
	createCalls []*model.User
}

func (m *mockUserRepository) Create(ctx context.Context, user *model.User) error {
	m.createCalls = append(m.createCalls, user)
	if m.createFn != nil {
		return m.createFn(ctx, user)
	}
	return nil
}

func (m *mockUserRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, model.ErrUserNotFound
}

func (m *mockUserRepository) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	if m.getByUsernameFn != nil {
		return m.getByUsernameFn(ctx, username)
	}
	return nil, model.ErrUserNotFound
}

func (m *mockUserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	if m.existsByUsernameFn != nil {
		return m.existsByUsernameFn(ctx, username)
	}
	return false, nil
}

func (m *mockUserRepository) Count(ctx context.Context) (int, error) {
	if m.countFn != nil {
		return m.countFn(ctx)
	}
	return 0, nil
}

type mockPostRepository struct {
	createFn     func(ctx context.Context, post *model.Post) error
	getByIDFn    func(ctx context.Context, id int64) (*model.Post, error)
	updateFn     func(ctx context.Context, post *model.Post) error
	deleteFn     func(ctx context.Context, postID int64) error
	listFn       func(ctx context.Context, filter model.PostFilter) ([]model.Post, error)
	listByUserFn func(ctx context.Context, userID int64) ([]model.Post, error)
	categoriesFn func(ctx context.Context) ([]string, error)
	countFn      func(ctx context.Context) (int, error)

	createCalls []*model.Post
	updateCalls []*model.Post
	deleteCalls []int64
}

func (m *mockPostRepository) Create(ctx context.Context, post *model.Post) error {
	m.createCalls = append(m.createCalls, post)
	if m.createFn != nil {
		return m.createFn(ctx, post)
	}
	post.ID = 1
	return nil
}

func (m *mockPostRepository) GetByID(ctx context.Context, id int64) (*model.Post, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, model.ErrPostNotFound
}

func (m *mockPostRepository) Update(ctx context.Context, post *model.Post) error {
	m.updateCalls = append(m.updateCalls, post)
	if m.updateFn != nil {
		return m.updateFn(ctx, post)
	}
	return nil
}

func (m *mockPostRepository) Delete(ctx context.Context, postID int64) error {
	m.deleteCalls = append(m.deleteCalls, postID)
	if m.deleteFn != nil {
		return m.deleteFn(ctx, postID)
	}
	return nil
}

func (m *mockPostRepository) List(ctx context.Context, filter model.PostFilter) ([]model.Post, error) {
	if m.listFn != nil {
		return m.listFn(ctx, filter)
	}
	return []model.Post{}, nil
}

func (m *mockPostRepository) ListByUser(ctx context.Context, userID int64) ([]model.Post, error) {
	if m.listByUserFn != nil {
		return m.listByUserFn(ctx, userID)
	}
	return []model.Post{}, nil
}

func (m *mockPostRepository) Categories(ctx context.Context) ([]string, error) {
	if m.categoriesFn != nil {
		return m.categoriesFn(ctx)
	}
	return []string{}, nil
}

func (m *mockPostRepository) Count(ctx context.Context) (int, error) {
	if m.countFn != nil {
		return m.countFn(ctx)
	}
	return 0, nil
}

type mockCommentRepository struct {
	createFn      func(ctx context.Context, comment *model.Comment) error
	listByPostFn  func(ctx context.Context, postID int64) ([]model.Comment, error)
	listRecentFn  func(ctx context.Context, userID int64, limit int) ([]model.Comment, error)
	countByUserFn func(ctx context.Context, userID int64) (int, error)
	countFn       func(ctx context.Context) (int, error)

	createCalls []*model.Comment
}

func (m *mockCommentRepository) Create(ctx context.Context, comment *model.Comment) error {
	m.createCalls = append(m.createCalls, comment)
	if m.createFn != nil {
		return m.createFn(ctx, comment)
	}
	comment.ID = int64(len(m.createCalls))
	return nil
}

func (m *mockCommentRepository) ListByPost(ctx context.Context, postID int64) ([]model.Comment, error) {
	if m.listByPostFn != nil {
		return m.listByPostFn(ctx, postID)
	}
	return []model.Comment{}, nil
}

func (m *mockCommentRepository) ListRecentByUser(ctx context.Context, userID int64, limit int) ([]model.Comment, error) {
	if m.listRecentFn != nil {
		return m.listRecentFn(ctx, userID, limit)
	}
	return []model.Comment{}, nil
}

func (m *mockCommentRepository) CountByUser(ctx context.Context, userID int64) (int, error) {
	if m.countByUserFn != nil {
		return m.countByUserFn(ctx, userID)
	}
	return 0, nil
}

func (m *mockCommentRepository) Count(ctx context.Context) (int, error) {
	if m.countFn != nil {
		return m.countFn(ctx)
	}
	return 0, nil
}

type mockFeedbackRepository struct {
	upsertFn        func(ctx context.Context, feedback *model.Feedback) error
	getFn           func(ctx context.Context, postID, userID int64) (*model.Feedback, error)
	tallyByPostFn   func(ctx context.Context, postID int64) (model.VoteTally, error)
	tallyByAuthorFn func(ctx context.Context, authorID int64) (model.VoteTally, error)
}

func (m *mockFeedbackRepository) Upsert(ctx context.Context, feedback *model.Feedback) error {
	if m.upsertFn != nil {
		return m.upsertFn(ctx, feedback)
	}
	return nil
}

func (m *mockFeedbackRepository) Get(ctx context.Context, postID, userID int64) (*model.Feedback, error) {
	if m.getFn != nil {
		return m.getFn(ctx, postID, userID)
	}
	return nil, model.ErrNoVote
}

func (m *mockFeedbackRepository) TallyByPost(ctx context.Context, postID int64) (model.VoteTally, error) {
	if m.tallyByPostFn != nil {
		return m.tallyByPostFn(ctx, postID)
	}
	return model.VoteTally{}, nil
}

func (m *mockFeedbackRepository) TallyByAuthor(ctx context.Context, authorID int64) (model.VoteTally, error) {
	if m.tallyByAuthorFn != nil {
		return m.tallyByAuthorFn(ctx, authorID)
	}
	return model.VoteTally{}, nil
}
