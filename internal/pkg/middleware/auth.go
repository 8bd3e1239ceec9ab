package middleware

import (
	"context"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/piresc/campusride/internal/pkg/apperror"
	"github.com/piresc/campusride/internal/pkg/logger"
	"github.com/piresc/campusride/internal/pkg/models"
	"github.com/piresc/campusride/internal/utils"
)

const (
	sessionKey = "session"
	userIDKey  = "user_id"
)

// SessionResolver turns a bearer ID token into the caller's session
type SessionResolver interface {
	ResolveSession(ctx context.Context, idToken string) (*models.Session, error)
}

// RequireSession rejects requests without a valid bearer ID token
func RequireSession(resolver SessionResolver) echo.MiddlewareFunc {
	return sessionMiddleware(resolver, true)
}

// OptionalSession attaches a session when a valid token is present and otherwise passes through
func OptionalSession(resolver SessionResolver) echo.MiddlewareFunc {
	return sessionMiddleware(resolver, false)
}

func sessionMiddleware(resolver SessionResolver, required bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
			if !ok {
				if required {
					return utils.UnauthorizedResponse(c, "")
				}
				return next(c)
			}

			session, err := resolver.ResolveSession(c.Request().Context(), token)
			if err != nil {
				if apperror.KindOf(err) != apperror.KindUnauthenticated {
					logger.WarnCtx(c.Request().Context(), "Failed to resolve session", logger.Err(err))
					return utils.AppErrorResponse(c, err)
				}
				if required {
					return utils.AppErrorResponse(c, err)
				}
				return next(c)
			}

			c.Set(sessionKey, session)
			c.Set(userIDKey, session.UserID)
			return next(c)
		}
	}
}

// RequireRole allows only sessions holding one of roles. It must run after RequireSession.
func RequireRole(roles ...models.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			s := SessionFrom(c)
			if !s.Authenticated() {
				return utils.UnauthorizedResponse(c, "")
			}
			if !s.HasRole(roles...) {
				return utils.AppErrorResponse(c, apperror.Forbidden("insufficient permissions"))
			}
			return next(c)
		}
	}
}

// SessionFrom returns the session attached by the auth middleware, or nil
func SessionFrom(c echo.Context) *models.Session {
	s, _ := c.Get(sessionKey).(*models.Session)
	return s
}

// SetSession attaches s to c as the auth middleware would
func SetSession(c echo.Context, s *models.Session) {
	c.Set(sessionKey, s)
	if s != nil {
		c.Set(userIDKey, s.UserID)
	}
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
