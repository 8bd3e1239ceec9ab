package usecase

import (
	"context"
	"strings"

	"github.com/piresc/campusride/internal/pkg/access"
	"github.com/piresc/campusride/internal/pkg/apperror"
	"github.com/piresc/campusride/internal/pkg/logger"
	"github.com/piresc/campusride/internal/pkg/models"
	"github.com/piresc/campusride/internal/utils"
	"github.com/piresc/campusride/services/users"
)

// ProfileSelf is the path alias for the caller's own profile
const ProfileSelf = "me"

type UserUC struct {
	cfg        *models.Config
	userRepo   users.UserRepo
	identityGW users.IdentityGW
	validator  *utils.Validator
}

// NewUserUC creates a new user usecase instance
func NewUserUC(cfg *models.Config, userRepo users.UserRepo, identityGW users.IdentityGW) (users.UserUC, error) {
	return &UserUC{
		cfg:        cfg,
		userRepo:   userRepo,
		identityGW: identityGW,
		validator:  utils.NewValidator(),
	}, nil
}

// ResolveSession verifies idToken and loads the caller's profile.
// A valid token without a profile is not a usable session.
func (uc *UserUC) ResolveSession(ctx context.Context, idToken string) (*models.Session, error) {
	account, err := uc.identityGW.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, err
	}
	user, err := uc.userRepo.GetUser(ctx, account.UID)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, apperror.InvalidToken(err)
		}
		return nil, err
	}

	email := user.Email
	if email == "" {
		email = account.Email
	}
	return &models.Session{UserID: user.ID, Email: email, Role: user.Role}, nil
}

func (uc *UserUC) SignIn(ctx context.Context, req models.SignInRequest) (*models.SignInResult, error) {
	req.Email = normalizeEmail(req.Email)
	if err := uc.validator.Validate(req); err != nil {
		return nil, err
	}

	tokens, err := uc.identityGW.SignInWithPassword(ctx, req.Email, req.Password)
	if err != nil {
		return nil, err
	}
	user, err := uc.userRepo.GetUser(ctx, tokens.UID)
	if err != nil {
		if apperror.IsNotFound(err) {
			logger.WarnCtx(ctx, "Sign-in for account without profile", logger.String("user_id", tokens.UID))
			return nil, apperror.InvalidCredentials(err)
		}
		return nil, err
	}

	logger.InfoCtx(ctx, "User signed in", logger.String("user_id", user.ID), logger.String("role", string(user.Role)))
	return &models.SignInResult{
		IDToken:      tokens.IDToken,
		RefreshToken: tokens.RefreshToken,
		ExpiresIn:    tokens.ExpiresIn,
		User:         user,
	}, nil
}

// SignOut revokes the caller's refresh tokens; outstanding ID tokens stop verifying
func (uc *UserUC) SignOut(ctx context.Context, s *models.Session) error {
	if err := access.RequireSession(s); err != nil {
		return err
	}
	return uc.identityGW.RevokeSessions(ctx, s.UserID)
}

// GetProfile returns the profile for id, or the caller's when id is empty or "me"
func (uc *UserUC) GetProfile(ctx context.Context, s *models.Session, id string) (*models.User, error) {
	if err := access.RequireSession(s); err != nil {
		return nil, err
	}
	if id == "" || id == ProfileSelf {
		id = s.UserID
	}
	return uc.userRepo.GetUser(ctx, id)
}

func (uc *UserUC) UpdateProfile(ctx context.Context, s *models.Session, req models.UpdateUserRequest) (*models.User, error) {
	if err := access.RequireSession(s); err != nil {
		return nil, err
	}
	if req.ID == "" || req.ID == ProfileSelf {
		req.ID = s.UserID
	}
	if err := access.RequireOwnerOrAdmin(s, req.ID); err != nil {
		return nil, err
	}
	req.Name = strings.TrimSpace(req.Name)
	if err := uc.validator.Validate(req); err != nil {
		return nil, err
	}
	return uc.userRepo.UpdateUserName(ctx, req.ID, req.Name)
}

func (uc *UserUC) RegisterDeviceToken(ctx context.Context, s *models.Session, req models.DeviceTokenRequest) error {
	if err := access.RequireSession(s); err != nil {
		return err
	}
	req.Token = strings.TrimSpace(req.Token)
	if err := uc.validator.Validate(req); err != nil {
		return err
	}
	return uc.userRepo.SetDeviceToken(ctx, s.UserID, req.Token)
}

// Provision creates the identity account and then the profile, validating everything first.
// Without an admin session only student and driver accounts can be created.
// If the profile cannot be written the identity account is removed again.
func (uc *UserUC) Provision(ctx context.Context, s *models.Session, req models.ProvisionRequest) (*models.User, error) {
	req.Email = normalizeEmail(req.Email)
	req.Name = strings.TrimSpace(req.Name)
	if err := uc.validator.Validate(req); err != nil {
		return nil, err
	}
	role, ok := models.ParseRole(req.Role)
	if !ok {
		return nil, apperror.Validation("Invalid user role")
	}
	if role == models.RoleAdmin && !s.IsAdmin() {
		return nil, apperror.Forbidden("only administrators can create administrator accounts")
	}

	account, err := uc.identityGW.CreateAccount(ctx, req.Email, req.Password, req.Name)
	if err != nil {
		return nil, err
	}

	email := account.Email
	if email == "" {
		email = req.Email
	}
	user, err := uc.userRepo.CreateUser(ctx, models.User{
		ID:    account.UID,
		Email: email,
		Name:  req.Name,
		Role:  role,
	})
	if err != nil {
		logger.ErrorCtx(ctx, "Failed to create profile, removing identity account",
			logger.String("user_id", account.UID),
			logger.Err(err))
		if cerr := uc.identityGW.DeleteAccount(ctx, account.UID); cerr != nil {
			logger.ErrorCtx(ctx, "Failed to remove orphaned identity account",
				logger.String("user_id", account.UID),
				logger.Err(cerr))
		}
		return nil, err
	}

	logger.InfoCtx(ctx, "User provisioned",
		logger.String("user_id", user.ID),
		logger.String("role", string(user.Role)))
	return user, nil
}

// Deprovision removes the identity account and the profile. Records that
// reference the user are left in place.
func (uc *UserUC) Deprovision(ctx context.Context, s *models.Session, id string) error {
	if err := access.RequireSession(s); err != nil {
		return err
	}
	if id == "" || id == ProfileSelf {
		id = s.UserID
	}
	if err := access.RequireOwnerOrAdmin(s, id); err != nil {
		return err
	}

	accountErr := uc.identityGW.DeleteAccount(ctx, id)
	if accountErr != nil && !apperror.IsNotFound(accountErr) {
		return accountErr
	}
	if err := uc.userRepo.DeleteUser(ctx, id); err != nil {
		if !apperror.IsNotFound(err) || accountErr != nil {
			return err
		}
	}

	logger.InfoCtx(ctx, "User deprovisioned", logger.String("user_id", id), logger.String("by", s.UserID))
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
