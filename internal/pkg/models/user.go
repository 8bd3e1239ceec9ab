package models

import (
	"strings"
	"time"
)

// Role is the account type recorded on a user profile
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleStudent Role = "student"
	RoleDriver  Role = "driver"
)

// ParseRole normalizes s case-insensitively and reports whether it names a known role
func ParseRole(s string) (Role, bool) {
	switch r := Role(strings.ToLower(strings.TrimSpace(s))); r {
	case RoleAdmin, RoleStudent, RoleDriver:
		return r, true
	default:
		return "", false
	}
}

// User is the profile stored for every account
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      Role      `json:"role"`
	FCMToken  string    `json:"-"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Session identifies the authenticated caller of an operation
type Session struct {
	UserID string
	Email  string
	Role   Role
}

// Authenticated reports whether s carries a caller identity
func (s *Session) Authenticated() bool {
	return s != nil && s.UserID != ""
}

// HasRole reports whether the caller holds one of roles
func (s *Session) HasRole(roles ...Role) bool {
	if !s.Authenticated() {
		return false
	}
	for _, r := range roles {
		if s.Role == r {
			return true
		}
	}
	return false
}

// IsAdmin reports whether the caller is an administrator
func (s *Session) IsAdmin() bool {
	return s.HasRole(RoleAdmin)
}

// ProvisionRequest creates an identity account plus its profile
type ProvisionRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Name     string `json:"name"`
	Role     string `json:"role" validate:"required"`
}

type UpdateUserRequest struct {
	ID   string `json:"-"`
	Name string `json:"name" validate:"required"`
}

type SignInRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// SignInResult carries the identity provider tokens for a password sign-in
type SignInResult struct {
	IDToken      string `json:"idToken"`
	RefreshToken string `json:"refreshToken"`
	ExpiresIn    int64  `json:"expiresIn"`
	User         *User  `json:"user"`
}

// IdentityTokens is the identity provider's answer to a password sign-in
type IdentityTokens struct {
	UID          string
	IDToken      string
	RefreshToken string
	ExpiresIn    int64 // seconds
}

// IdentityAccount is the subset of identity provider state the service reads
type IdentityAccount struct {
	UID   string
	Email string
}

type DeviceTokenRequest struct {
	Token string `json:"token" validate:"required"`
}
