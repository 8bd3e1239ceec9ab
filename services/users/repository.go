package users

import (
	"context"

	"github.com/piresc/campusride/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/campusride/services/users UserRepo

// UserRepo persists user profiles. Reads go through the profile cache.
type UserRepo interface {
	CreateUser(ctx context.Context, user models.User) (*models.User, error)
	GetUser(ctx context.Context, id string) (*models.User, error)
	GetUsersByIDs(ctx context.Context, ids []string) (map[string]models.User, error)
	UpdateUserName(ctx context.Context, id, name string) (*models.User, error)
	SetDeviceToken(ctx context.Context, id, token string) error
	DeleteUser(ctx context.Context, id string) error
}
