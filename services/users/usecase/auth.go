package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	jwtpkg "github.com/greenbasket/greenbasket/internal/pkg/jwt"
	"github.com/greenbasket/greenbasket/internal/pkg/logger"
	"github.com/greenbasket/greenbasket/internal/pkg/models"
	"github.com/greenbasket/greenbasket/services/users"
	"github.com/greenbasket/greenbasket/services/users/repository"
)

// ErrInvalidCredentials is returned on a failed login. It never distinguishes
// an unknown email from a wrong password.
var ErrInvalidCredentials = errors.New("invalid email or password")

const minPasswordLength = 8

// userUC implements the users.UserUC interface
type userUC struct {
	cfg  *models.Config
	repo users.UserRepo
}

// NewUserUC creates a new user use case
func NewUserUC(cfg *models.Config, repo users.UserRepo) users.UserUC {
	return &userUC{
		cfg:  cfg,
		repo: repo,
	}
}

// Signup registers a new user. Credentials are stored bcrypt-hashed, never
// in plaintext.
func (uc *userUC) Signup(ctx context.Context, req *models.SignupRequest) (*models.User, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, fmt.Errorf("a valid email is required")
	}
	if strings.TrimSpace(req.FullName) == "" {
		return nil, fmt.Errorf("full name is required")
	}
	if len(req.Password) < minPasswordLength {
		return nil, fmt.Errorf("password must be at least %d characters", minPasswordLength)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Email:        email,
		FullName:     req.FullName,
		PasswordHash: string(hash),
		IsActive:     true,
	}

	if err := uc.repo.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	logger.Info("User registered",
		logger.String("user_id", user.ID.String()),
		logger.String("email", user.Email))

	return user, nil
}

// Login verifies credentials and issues a JWT
func (uc *userUC) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := uc.repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !user.IsActive {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, expiresAt, err := jwtpkg.GenerateToken(user.ID, user.Email, uc.cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &models.AuthResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		UserID:    user.ID.String(),
	}, nil
}

// GetProfile returns the user with their earned badge set
func (uc *userUC) GetProfile(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	user, err := uc.repo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	badges, err := uc.repo.GetBadges(ctx, userID)
	if err != nil {
		return nil, err
	}
	user.Badges = badges

	return user, nil
}
