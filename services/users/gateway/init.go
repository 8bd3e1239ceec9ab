package gateway

import (
	"context"

	"github.com/piresc/campusride/internal/pkg/models"
	"github.com/piresc/campusride/services/users"
	gateway_http "github.com/piresc/campusride/services/users/gateway/http"
)

// IdentityGW handles identity provider operations
type IdentityGW struct {
	auth    AuthClient
	toolkit *gateway_http.IdentityToolkit
}

// NewIdentityGW combines the Firebase Auth admin client with the Identity Toolkit REST client
func NewIdentityGW(authClient AuthClient, cfg models.FirebaseConfig) users.IdentityGW {
	return &IdentityGW{
		auth:    authClient,
		toolkit: gateway_http.NewIdentityToolkit(cfg.IdentityURL, cfg.WebAPIKey, cfg.RequestTimeout),
	}
}

func (g *IdentityGW) SignInWithPassword(ctx context.Context, email, password string) (*models.IdentityTokens, error) {
	return g.toolkit.SignInWithPassword(ctx, email, password)
}
