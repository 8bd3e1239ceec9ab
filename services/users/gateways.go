package users

import (
	"context"

	"github.com/piresc/campusride/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/campusride/services/users IdentityGW

// IdentityGW defines the identity provider operations
type IdentityGW interface {
	// Admin SDK
	VerifyIDToken(ctx context.Context, idToken string) (*models.IdentityAccount, error)
	CreateAccount(ctx context.Context, email, password, name string) (*models.IdentityAccount, error)
	DeleteAccount(ctx context.Context, uid string) error
	RevokeSessions(ctx context.Context, uid string) error

	// Identity Toolkit REST
	SignInWithPassword(ctx context.Context, email, password string) (*models.IdentityTokens, error)
}
