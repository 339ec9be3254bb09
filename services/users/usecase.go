package users

import (
	"context"

	"github.com/google/uuid"

	"github.com/greenbasket/greenbasket/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/greenbasket/greenbasket/services/users UserUC

// UserUC represents the user usecase interface
type UserUC interface {
	// Signup registers a new user with bcrypt-hashed credentials
	Signup(ctx context.Context, req *models.SignupRequest) (*models.User, error)

	// Login verifies credentials and issues a JWT
	Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error)

	// GetProfile returns the user with their earned badge set
	GetProfile(ctx context.Context, userID uuid.UUID) (*models.User, error)
}
