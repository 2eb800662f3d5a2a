package access

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/endysusanto13/todo-backend/internal/domain/model"
)

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

func grant(listID int64, by, with string, deleted bool) model.ListShare {
	return model.ListShare{ListID: listID, SharedByEmail: by, SharedWithEmail: with, IsDeleted: deleted}
}

func TestCanAccess(t *testing.T) {
	list := &model.List{ID: 1, Title: "groceries", CreateUserID: 1}

	tests := []struct {
		name      string
		userID    int64
		userEmail string
		grants    []model.ListShare
		expected  Decision
	}{
		{
			name:      "creator is owner regardless of share state",
			userID:    1,
			userEmail: "a@x.com",
			grants:    nil,
			expected:  Owner,
		},
		{
			name:      "creator stays owner even when also named as recipient",
			userID:    1,
			userEmail: "a@x.com",
			grants:    []model.ListShare{grant(1, "b@x.com", "a@x.com", false)},
			expected:  Owner,
		},
		{
			name:      "non-deleted grant confers shared access",
			userID:    2,
			userEmail: "b@x.com",
			grants:    []model.ListShare{grant(1, "a@x.com", "b@x.com", false)},
			expected:  SharedRecipient,
		},
		{
			name:      "revoked grant confers nothing",
			userID:    2,
			userEmail: "b@x.com",
			grants:    []model.ListShare{grant(1, "a@x.com", "b@x.com", true)},
			expected:  None,
		},
		{
			name:      "revoked grant with a second live grant still grants access",
			userID:    2,
			userEmail: "b@x.com",
			grants: []model.ListShare{
				grant(1, "a@x.com", "b@x.com", true),
				grant(1, "c@x.com", "b@x.com", false),
			},
			expected: SharedRecipient,
		},
		{
			name:      "grant to a different email confers nothing",
			userID:    3,
			userEmail: "c@x.com",
			grants:    []model.ListShare{grant(1, "a@x.com", "b@x.com", false)},
			expected:  None,
		},
		{
			name:      "no grants and not creator",
			userID:    2,
			userEmail: "b@x.com",
			grants:    nil,
			expected:  None,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decision := CanAccess(tt.userID, tt.userEmail, list, tt.grants)
			assert.Equal(t, tt.expected, decision)
		})
	}
}

func TestCanAccess_NilList(t *testing.T) {
	assert.Equal(t, None, CanAccess(1, "a@x.com", nil, nil))
}

func TestIsSharedWith(t *testing.T) {
	grants := []model.ListShare{
		grant(1, "a@x.com", "b@x.com", false),
		grant(1, "a@x.com", "c@x.com", true),
	}

	assert.True(t, IsSharedWith(grants, "b@x.com"))
	assert.False(t, IsSharedWith(grants, "c@x.com"), "revoked grant must not count")
	assert.False(t, IsSharedWith(grants, "d@x.com"))
	assert.False(t, IsSharedWith(nil, "b@x.com"))
}

func TestChecker_Decide_OwnerSkipsGrantLookup(t *testing.T) {
	shares := new(MockShareRepository)
	checker := NewChecker(shares)

	user := &model.User{ID: 1, Email: "a@x.com"}
	list := &model.List{ID: 1, CreateUserID: 1, IsShared: true}

	decision, err := checker.Decide(context.Background(), user, list)

	assert.NoError(t, err)
	assert.Equal(t, Owner, decision)
	shares.AssertNotCalled(t, "FindByListID", mock.Anything, mock.Anything)
}

func TestChecker_Decide_NeverSharedSkipsGrantLookup(t *testing.T) {
	shares := new(MockShareRepository)
	checker := NewChecker(shares)

	user := &model.User{ID: 2, Email: "b@x.com"}
	list := &model.List{ID: 1, CreateUserID: 1, IsShared: false}

	decision, err := checker.Decide(context.Background(), user, list)

	assert.NoError(t, err)
	assert.Equal(t, None, decision)
	shares.AssertNotCalled(t, "FindByListID", mock.Anything, mock.Anything)
}

func TestChecker_Decide_Recipient(t *testing.T) {
	shares := new(MockShareRepository)
	shares.On("FindByListID", mock.Anything, int64(1)).
		Return([]model.ListShare{grant(1, "a@x.com", "b@x.com", false)}, nil)
	checker := NewChecker(shares)

	user := &model.User{ID: 2, Email: "b@x.com"}
	list := &model.List{ID: 1, CreateUserID: 1, IsShared: true}

	decision, err := checker.Decide(context.Background(), user, list)

	assert.NoError(t, err)
	assert.Equal(t, SharedRecipient, decision)
	shares.AssertExpectations(t)
}
