package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/endysusanto13/todo-backend/internal/apperrors"
	"github.com/endysusanto13/todo-backend/internal/domain/model"
)

const testSecret = "test-secret"

func newAuthFixture() (*MockUserRepository, *AuthUsecase) {
	users := new(MockUserRepository)
	return users, NewAuthUsecase(users, testSecret, time.Hour, zap.NewNop())
}

func parseTestToken(t *testing.T, signed string) jwt.MapClaims {
	t.Helper()
	token, err := jwt.Parse(signed, func(token *jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	})
	assert.NoError(t, err)
	assert.True(t, token.Valid)
	return token.Claims.(jwt.MapClaims)
}

func TestAuthUsecase_Register(t *testing.T) {
	t.Run("new user gets a token carrying their id", func(t *testing.T) {
		users, uc := newAuthFixture()
		users.On("FindByEmail", mock.Anything, "a@x.com").Return(nil, nil)
		users.On("FindByUsername", mock.Anything, "alice").Return(nil, nil)
		users.On("Insert", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
			if u.Username != "alice" || u.Email != "a@x.com" {
				return false
			}
			return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("hunter2")) == nil
		})).Return(&model.User{ID: 7, Username: "alice", Email: "a@x.com"}, nil)

		token, err := uc.Register(context.Background(), "alice", "a@x.com", "hunter2")

		assert.NoError(t, err)
		claims := parseTestToken(t, token)
		assert.Equal(t, float64(7), claims["user_id"])
		assert.NotNil(t, claims["exp"])
	})

	t.Run("duplicate email reported before duplicate username", func(t *testing.T) {
		users, uc := newAuthFixture()
		users.On("FindByEmail", mock.Anything, "a@x.com").
			Return(&model.User{ID: 1, Username: "alice", Email: "a@x.com"}, nil)

		_, err := uc.Register(context.Background(), "alice", "a@x.com", "hunter2")

		assert.True(t, apperrors.IsCode(err, apperrors.CodeEmailRegistered))
		assert.Equal(t, "Email a@x.com is already registered.", apperrors.MessageOf(err))
		users.AssertNotCalled(t, "FindByUsername", mock.Anything, mock.Anything)
	})

	t.Run("duplicate username", func(t *testing.T) {
		users, uc := newAuthFixture()
		users.On("FindByEmail", mock.Anything, "new@x.com").Return(nil, nil)
		users.On("FindByUsername", mock.Anything, "alice").
			Return(&model.User{ID: 1, Username: "alice", Email: "a@x.com"}, nil)

		_, err := uc.Register(context.Background(), "alice", "new@x.com", "hunter2")

		assert.True(t, apperrors.IsCode(err, apperrors.CodeUsernameTaken))
		assert.Equal(t, "Username alice is already used.", apperrors.MessageOf(err))
		users.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
	})
}

func TestAuthUsecase_Login(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	stored := &model.User{ID: 7, Username: "alice", Email: "a@x.com", PasswordHash: string(hash)}

	t.Run("valid credentials", func(t *testing.T) {
		users, uc := newAuthFixture()
		users.On("FindByEmail", mock.Anything, "a@x.com").Return(stored, nil)

		token, err := uc.Login(context.Background(), "a@x.com", "hunter2")

		assert.NoError(t, err)
		claims := parseTestToken(t, token)
		assert.Equal(t, float64(7), claims["user_id"])
	})

	t.Run("unknown email and wrong password are indistinguishable", func(t *testing.T) {
		users, uc := newAuthFixture()
		users.On("FindByEmail", mock.Anything, "ghost@x.com").Return(nil, nil)
		users.On("FindByEmail", mock.Anything, "a@x.com").Return(stored, nil)

		_, errUnknown := uc.Login(context.Background(), "ghost@x.com", "hunter2")
		_, errWrongPw := uc.Login(context.Background(), "a@x.com", "wrong")

		assert.True(t, apperrors.IsCode(errUnknown, apperrors.CodeInvalidCredentials))
		assert.True(t, apperrors.IsCode(errWrongPw, apperrors.CodeInvalidCredentials))
		assert.Equal(t, apperrors.MessageOf(errUnknown), apperrors.MessageOf(errWrongPw))
	})
}
