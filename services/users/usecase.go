package users

import (
	"context"

	"github.com/piresc/campusride/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/campusride/services/users UserUC

// UserUC represents the user usecase interface
type UserUC interface {
	// session
	ResolveSession(ctx context.Context, idToken string) (*models.Session, error)
	SignIn(ctx context.Context, req models.SignInRequest) (*models.SignInResult, error)
	SignOut(ctx context.Context, s *models.Session) error

	// profile
	GetProfile(ctx context.Context, s *models.Session, id string) (*models.User, error)
	UpdateProfile(ctx context.Context, s *models.Session, req models.UpdateUserRequest) (*models.User, error)
	RegisterDeviceToken(ctx context.Context, s *models.Session, req models.DeviceTokenRequest) error

	// provisioning
	Provision(ctx context.Context, s *models.Session, req models.ProvisionRequest) (*models.User, error)
	Deprovision(ctx context.Context, s *models.Session, id string) error
}
