package usecase

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/endysusanto13/todo-backend/internal/domain/model"
)

// MockUserRepository is a mock implementation of repository.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Insert(ctx context.Context, user *model.User) (*model.User, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id int64) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

// MockListRepository is a mock implementation of repository.ListRepository
type MockListRepository struct {
	mock.Mock
}

func (m *MockListRepository) Insert(ctx context.Context, list *model.List) (*model.List, error) {
	args := m.Called(ctx, list)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.List), args.Error(1)
}

func (m *MockListRepository) FindByID(ctx context.Context, id int64) (*model.List, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.List), args.Error(1)
}

func (m *MockListRepository) FindByCreatorAndTitle(ctx context.Context, creatorID int64, title string) (*model.List, error) {
	args := m.Called(ctx, creatorID, title)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.List), args.Error(1)
}

func (m *MockListRepository) ListByCreator(ctx context.Context, creatorID int64) ([]model.List, error) {
	args := m.Called(ctx, creatorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.List), args.Error(1)
}

func (m *MockListRepository) UpdateTitle(ctx context.Context, userID int64, title string, id int64) (*model.List, error) {
	args := m.Called(ctx, userID, title, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.List), args.Error(1)
}

func (m *MockListRepository) MarkShared(ctx context.Context, id int64) (*model.List, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.List), args.Error(1)
}

func (m *MockListRepository) SoftDelete(ctx context.Context, userID, id int64) (*model.List, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.List), args.Error(1)
}

// MockTaskRepository is a mock implementation of repository.TaskRepository
type MockTaskRepository struct {
	mock.Mock
}

func (m *MockTaskRepository) Insert(ctx context.Context, task *model.Task) (*model.Task, error) {
	args := m.Called(ctx, task)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Task), args.Error(1)
}

func (m *MockTaskRepository) FindByID(ctx context.Context, id int64) (*model.Task, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Task), args.Error(1)
}

func (m *MockTaskRepository) FindByListAndTitle(ctx context.Context, listID int64, title string) (*model.Task, error) {
	args := m.Called(ctx, listID, title)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Task), args.Error(1)
}

func (m *MockTaskRepository) FindByListID(ctx context.Context, listID int64) ([]model.Task, error) {
	args := m.Called(ctx, listID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Task), args.Error(1)
}

func (m *MockTaskRepository) UpdateTitle(ctx context.Context, userID int64, title string, id int64) (*model.Task, error) {
	args := m.Called(ctx, userID, title, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Task), args.Error(1)
}

func (m *MockTaskRepository) SoftDelete(ctx context.Context, userID, id int64) (*model.Task, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Task), args.Error(1)
}

// MockShareRepository is a mock implementation of repository.ShareRepository
type MockShareRepository struct {
	mock.Mock
}

func (m *MockShareRepository) Insert(ctx context.Context, grant *model.ListShare) (*model.ListShare, error) {
	args := m.Called(ctx, grant)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ListShare), args.Error(1)
}

func (m *MockShareRepository) FindByListID(ctx context.Context, listID int64) ([]model.ListShare, error) {
	args := m.Called(ctx, listID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ListShare), args.Error(1)
}

func (m *MockShareRepository) FindBySharedByEmail(ctx context.Context, email string) ([]model.ListShare, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ListShare), args.Error(1)
}

func (m *MockShareRepository) FindBySharedWithEmail(ctx context.Context, email string) ([]model.ListShare, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ListShare), args.Error(1)
}

func (m *MockShareRepository) Revoke(ctx context.Context, listID int64, byEmail, withEmail string) (*model.ListShare, error) {
	args := m.Called(ctx, listID, byEmail, withEmail)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ListShare), args.Error(1)
}

// MockNotifier is a mock implementation of Notifier
type MockNotifier struct {
	mock.Mock

	done chan struct{}
}

// NewMockNotifier returns a notifier whose done channel receives after each
// Notify call, so tests can wait for the fire-and-forget goroutine.
func NewMockNotifier() *MockNotifier {
	return &MockNotifier{done: make(chan struct{}, 1)}
}

func (m *MockNotifier) Notify(ctx context.Context, notification *model.ShareNotification) error {
	args := m.Called(ctx, notification)
	if m.done != nil {
		m.done <- struct{}{}
	}
	return args.Error(0)
}
