package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/endysusanto13/todo-backend/internal/apperrors"
	"github.com/endysusanto13/todo-backend/internal/domain/model"
	"github.com/endysusanto13/todo-backend/internal/domain/repository"
)

// AuthUsecase handles registration and login, returning signed JWTs.
type AuthUsecase struct {
	users     repository.UserRepository
	jwtSecret string
	jwtExpiry time.Duration
	logger    *zap.Logger
}

// NewAuthUsecase creates a new auth usecase.
func NewAuthUsecase(users repository.UserRepository, jwtSecret string, jwtExpiry time.Duration, logger *zap.Logger) *AuthUsecase {
	return &AuthUsecase{
		users:     users,
		jwtSecret: jwtSecret,
		jwtExpiry: jwtExpiry,
		logger:    logger,
	}
}

// Register creates an account and returns a token for the new user. Email
// and username must both be unused; email collisions are reported first.
func (u *AuthUsecase) Register(ctx context.Context, username, email, password string) (string, error) {
	byEmail, err := u.users.FindByEmail(ctx, email)
	if err != nil {
		return "", fmt.Errorf("failed to look up email: %w", err)
	}
	if byEmail != nil {
		return "", apperrors.Newf(apperrors.CodeEmailRegistered, "Email %s is already registered.", email)
	}

	byUsername, err := u.users.FindByUsername(ctx, username)
	if err != nil {
		return "", fmt.Errorf("failed to look up username: %w", err)
	}
	if byUsername != nil {
		return "", apperrors.Newf(apperrors.CodeUsernameTaken, "Username %s is already used.", username)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := u.users.Insert(ctx, &model.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
	})
	if err != nil {
		return "", fmt.Errorf("failed to create user: %w", err)
	}

	u.logger.Info("User registered",
		zap.Int64("user_id", user.ID),
		zap.String("username", username))
	return u.generateToken(user.ID)
}

// Login verifies credentials and returns a token. Unknown email and wrong
// password are indistinguishable to the caller.
func (u *AuthUsecase) Login(ctx context.Context, email, password string) (string, error) {
	user, err := u.users.FindByEmail(ctx, email)
	if err != nil {
		return "", fmt.Errorf("failed to look up email: %w", err)
	}
	if user == nil {
		return "", apperrors.New(apperrors.CodeInvalidCredentials, "Invalid login credentials.")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", apperrors.New(apperrors.CodeInvalidCredentials, "Invalid login credentials.")
	}

	return u.generateToken(user.ID)
}

func (u *AuthUsecase) generateToken(userID int64) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id": userID,
		"iat":     now.Unix(),
		"exp":     now.Add(u.jwtExpiry).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(u.jwtSecret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}
