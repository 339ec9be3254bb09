package users

import (
	"context"

	"github.com/google/uuid"

	"github.com/greenbasket/greenbasket/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/greenbasket/greenbasket/services/users UserRepo

// UserRepo defines the interface for user repository operations
type UserRepo interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetBadges(ctx context.Context, userID uuid.UUID) ([]string, error)
}
