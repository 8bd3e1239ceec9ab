package gateway

import (
	"context"

	"firebase.google.com/go/v4/auth"
	"github.com/piresc/campusride/internal/pkg/apperror"
	"github.com/piresc/campusride/internal/pkg/logger"
	"github.com/piresc/campusride/internal/pkg/models"
)

// AuthClient is the part of the Firebase Auth admin client the gateway uses
type AuthClient interface {
	VerifyIDTokenAndCheckRevoked(ctx context.Context, idToken string) (*auth.Token, error)
	CreateUser(ctx context.Context, user *auth.UserToCreate) (*auth.UserRecord, error)
	DeleteUser(ctx context.Context, uid string) error
	RevokeRefreshTokens(ctx context.Context, uid string) error
}

// VerifyIDToken checks the token signature, expiry and revocation
func (g *IdentityGW) VerifyIDToken(ctx context.Context, idToken string) (*models.IdentityAccount, error) {
	token, err := g.auth.VerifyIDTokenAndCheckRevoked(ctx, idToken)
	if err != nil {
		if isRejectedToken(err) {
			return nil, apperror.InvalidToken(err)
		}
		return nil, apperror.Internal("failed to verify token", err)
	}
	email, _ := token.Claims["email"].(string)
	return &models.IdentityAccount{UID: token.UID, Email: email}, nil
}

func isRejectedToken(err error) bool {
	return auth.IsIDTokenInvalid(err) ||
		auth.IsIDTokenExpired(err) ||
		auth.IsIDTokenRevoked(err) ||
		auth.IsUserDisabled(err) ||
		auth.IsUserNotFound(err)
}

func (g *IdentityGW) CreateAccount(ctx context.Context, email, password, name string) (*models.IdentityAccount, error) {
	params := (&auth.UserToCreate{}).Email(email).Password(password)
	if name != "" {
		params = params.DisplayName(name)
	}

	record, err := g.auth.CreateUser(ctx, params)
	if err != nil {
		if auth.IsEmailAlreadyExists(err) {
			return nil, apperror.Conflict("email is already in use")
		}
		logger.ErrorCtx(ctx, "Failed to create identity account", logger.String("email", email), logger.Err(err))
		return nil, apperror.Internal("failed to create account", err)
	}
	return &models.IdentityAccount{UID: record.UID, Email: record.Email}, nil
}

func (g *IdentityGW) DeleteAccount(ctx context.Context, uid string) error {
	if err := g.auth.DeleteUser(ctx, uid); err != nil {
		if auth.IsUserNotFound(err) {
			return apperror.NotFound("user")
		}
		return apperror.Internal("failed to delete account", err)
	}
	return nil
}

// RevokeSessions invalidates every refresh token issued to uid
func (g *IdentityGW) RevokeSessions(ctx context.Context, uid string) error {
	if err := g.auth.RevokeRefreshTokens(ctx, uid); err != nil {
		if auth.IsUserNotFound(err) {
			return apperror.NotFound("user")
		}
		return apperror.Internal("failed to sign out", err)
	}
	return nil
}
