package gateway_http

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/piresc/campusride/internal/pkg/apperror"
	httpclient "github.com/piresc/campusride/internal/pkg/http"
	"github.com/piresc/campusride/internal/pkg/logger"
	"github.com/piresc/campusride/internal/pkg/models"
)

const DefaultIdentityURL = "https://identitytoolkit.googleapis.com"

// IdentityToolkit signs users in with email and password over the Identity Toolkit REST API.
// The admin SDK cannot do this; it only mints and verifies tokens.
type IdentityToolkit struct {
	client *httpclient.Client
	apiKey string
}

func NewIdentityToolkit(baseURL, apiKey string, timeout time.Duration) *IdentityToolkit {
	if baseURL == "" {
		baseURL = DefaultIdentityURL
	}
	return &IdentityToolkit{
		client: httpclient.NewClient(baseURL, timeout),
		apiKey: apiKey,
	}
}

type signInRequest struct {
	Email             string `json:"email"`
	Password          string `json:"password"`
	ReturnSecureToken bool   `json:"returnSecureToken"`
}

type signInResponse struct {
	LocalID      string `json:"localId"`
	Email        string `json:"email"`
	IDToken      string `json:"idToken"`
	RefreshToken string `json:"refreshToken"`
	ExpiresIn    string `json:"expiresIn"`
}

// SignInWithPassword exchanges credentials for an ID token and refresh token.
// Every 4xx answer is reported as invalid credentials.
func (t *IdentityToolkit) SignInWithPassword(ctx context.Context, email, password string) (*models.IdentityTokens, error) {
	var resp signInResponse
	err := t.client.PostJSON(ctx, "/v1/accounts:signInWithPassword", url.Values{"key": {t.apiKey}},
		signInRequest{Email: email, Password: password, ReturnSecureToken: true}, &resp)
	if err != nil {
		var se *httpclient.StatusError
		if errors.As(err, &se) && se.StatusCode >= http.StatusBadRequest && se.StatusCode < http.StatusInternalServerError {
			return nil, apperror.InvalidCredentials(err)
		}
		logger.ErrorCtx(ctx, "Identity toolkit sign-in failed", logger.Err(err))
		return nil, apperror.Internal("failed to sign in", err)
	}

	expiresIn, err := strconv.ParseInt(resp.ExpiresIn, 10, 64)
	if err != nil {
		expiresIn = 3600
	}
	return &models.IdentityTokens{
		UID:          resp.LocalID,
		IDToken:      resp.IDToken,
		RefreshToken: resp.RefreshToken,
		ExpiresIn:    expiresIn,
	}, nil
}
