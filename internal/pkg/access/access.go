// Package access holds the authorization checks shared by the use cases.
package access

import (
	"github.com/piresc/campusride/internal/pkg/apperror"
	"github.com/piresc/campusride/internal/pkg/models"
)

// RequireSession fails with KindUnauthenticated when s carries no caller
func RequireSession(s *models.Session) error {
	if !s.Authenticated() {
		return apperror.Unauthenticated()
	}
	return nil
}

// RequireRole fails unless the caller holds one of roles
func RequireRole(s *models.Session, roles []models.Role) error {
	if err := RequireSession(s); err != nil {
		return err
	}
	if !s.HasRole(roles...) {
		return apperror.Forbidden("insufficient permissions")
	}
	return nil
}

// RequireOwnerOrAdmin fails unless the caller is ownerID or an admin
func RequireOwnerOrAdmin(s *models.Session, ownerID string) error {
	if err := RequireSession(s); err != nil {
		return err
	}
	if s.IsAdmin() || s.UserID == ownerID {
		return nil
	}
	return apperror.Forbidden("you can only modify your own records")
}
