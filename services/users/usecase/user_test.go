package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/piresc/campusride/internal/pkg/apperror"
	"github.com/piresc/campusride/internal/pkg/models"
	"github.com/piresc/campusride/services/users/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	adminSession   = &models.Session{UserID: "admin-1", Role: models.RoleAdmin}
	studentSession = &models.Session{UserID: "student-1", Role: models.RoleStudent}
)

type testDeps struct {
	uc   *UserUC
	repo *mocks.MockUserRepo
	gw   *mocks.MockIdentityGW
}

func setup(t *testing.T) testDeps {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := mocks.NewMockUserRepo(ctrl)
	gw := mocks.NewMockIdentityGW(ctrl)
	uc, err := NewUserUC(&models.Config{}, repo, gw)
	require.NoError(t, err)
	return testDeps{uc: uc.(*UserUC), repo: repo, gw: gw}
}

func TestUserUC_Provision_Success(t *testing.T) {
	// Arrange
	d := setup(t)
	d.gw.EXPECT().
		CreateAccount(gomock.Any(), "ada@campus.edu", "secret1", "Ada").
		Return(&models.IdentityAccount{UID: "uid-1", Email: "ada@campus.edu"}, nil)
	d.repo.EXPECT().
		CreateUser(gomock.Any(), models.User{ID: "uid-1", Email: "ada@campus.edu", Name: "Ada", Role: models.RoleStudent}).
		DoAndReturn(func(_ context.Context, u models.User) (*models.User, error) { return &u, nil })

	// Act
	user, err := d.uc.Provision(context.Background(), nil, models.ProvisionRequest{
		Email: " Ada@Campus.edu ", Password: "secret1", Name: "Ada", Role: "STUDENT",
	})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "uid-1", user.ID)
	assert.Equal(t, models.RoleStudent, user.Role)
}

func TestUserUC_Provision_ValidatesBeforeCreating(t *testing.T) {
	tests := []struct {
		name    string
		req     models.ProvisionRequest
		message string
	}{
		{"bad email", models.ProvisionRequest{Email: "nope", Password: "secret1", Role: "student"}, "Invalid email address"},
		{"short password", models.ProvisionRequest{Email: "a@b.co", Password: "123", Role: "student"}, "Password must be at least 6 characters"},
		{"missing role", models.ProvisionRequest{Email: "a@b.co", Password: "secret1"}, "role is required"},
		{"unknown role", models.ProvisionRequest{Email: "a@b.co", Password: "secret1", Role: "janitor"}, "Invalid user role"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := setup(t)

			_, err := d.uc.Provision(context.Background(), nil, tt.req)

			require.Error(t, err)
			assert.True(t, apperror.Is(err, apperror.KindValidation))
			assert.Equal(t, tt.message, apperror.Message(err))
		})
	}
}

func TestUserUC_Provision_AdminRequiresAdmin(t *testing.T) {
	req := models.ProvisionRequest{Email: "root@campus.edu", Password: "secret1", Role: "admin"}

	t.Run("public", func(t *testing.T) {
		d := setup(t)
		_, err := d.uc.Provision(context.Background(), nil, req)
		assert.True(t, apperror.Is(err, apperror.KindForbidden))
	})

	t.Run("student", func(t *testing.T) {
		d := setup(t)
		_, err := d.uc.Provision(context.Background(), studentSession, req)
		assert.True(t, apperror.Is(err, apperror.KindForbidden))
	})

	t.Run("admin", func(t *testing.T) {
		d := setup(t)
		d.gw.EXPECT().CreateAccount(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(&models.IdentityAccount{UID: "uid-9"}, nil)
		d.repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, u models.User) (*models.User, error) { return &u, nil })

		user, err := d.uc.Provision(context.Background(), adminSession, req)
		require.NoError(t, err)
		assert.Equal(t, models.RoleAdmin, user.Role)
		assert.Equal(t, "root@campus.edu", user.Email)
	})
}

func TestUserUC_Provision_CompensatesFailedProfileWrite(t *testing.T) {
	d := setup(t)
	writeErr := apperror.Persistence("create user", errors.New("deadline exceeded"))
	gomock.InOrder(
		d.gw.EXPECT().CreateAccount(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(&models.IdentityAccount{UID: "uid-1"}, nil),
		d.repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(nil, writeErr),
		d.gw.EXPECT().DeleteAccount(gomock.Any(), "uid-1").Return(nil),
	)

	_, err := d.uc.Provision(context.Background(), nil, models.ProvisionRequest{
		Email: "d@campus.edu", Password: "secret1", Role: "driver",
	})

	assert.ErrorIs(t, err, writeErr)
}

func TestUserUC_Provision_DuplicateEmail(t *testing.T) {
	d := setup(t)
	d.gw.EXPECT().CreateAccount(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, apperror.Conflict("email is already in use"))

	_, err := d.uc.Provision(context.Background(), nil, models.ProvisionRequest{
		Email: "d@campus.edu", Password: "secret1", Role: "driver",
	})

	assert.True(t, apperror.Is(err, apperror.KindConflict))
}

func TestUserUC_ResolveSession(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		d := setup(t)
		d.gw.EXPECT().VerifyIDToken(gomock.Any(), "tok").Return(&models.IdentityAccount{UID: "u-1", Email: "x@y.z"}, nil)
		d.repo.EXPECT().GetUser(gomock.Any(), "u-1").Return(&models.User{ID: "u-1", Role: models.RoleDriver}, nil)

		s, err := d.uc.ResolveSession(context.Background(), "tok")

		require.NoError(t, err)
		assert.Equal(t, &models.Session{UserID: "u-1", Email: "x@y.z", Role: models.RoleDriver}, s)
	})

	t.Run("no profile", func(t *testing.T) {
		d := setup(t)
		d.gw.EXPECT().VerifyIDToken(gomock.Any(), "tok").Return(&models.IdentityAccount{UID: "u-1"}, nil)
		d.repo.EXPECT().GetUser(gomock.Any(), "u-1").Return(nil, apperror.NotFound("user"))

		_, err := d.uc.ResolveSession(context.Background(), "tok")

		assert.True(t, apperror.Is(err, apperror.KindUnauthenticated))
	})

	t.Run("bad token", func(t *testing.T) {
		d := setup(t)
		d.gw.EXPECT().VerifyIDToken(gomock.Any(), "tok").Return(nil, apperror.InvalidToken(errors.New("expired")))

		_, err := d.uc.ResolveSession(context.Background(), "tok")

		assert.True(t, apperror.Is(err, apperror.KindUnauthenticated))
	})
}

func TestUserUC_SignIn(t *testing.T) {
	d := setup(t)
	d.gw.EXPECT().SignInWithPassword(gomock.Any(), "ada@campus.edu", "secret1").
		Return(&models.IdentityTokens{UID: "u-1", IDToken: "id", RefreshToken: "ref", ExpiresIn: 3600}, nil)
	d.repo.EXPECT().GetUser(gomock.Any(), "u-1").Return(&models.User{ID: "u-1", Role: models.RoleStudent}, nil)

	res, err := d.uc.SignIn(context.Background(), models.SignInRequest{Email: "ADA@campus.edu", Password: "secret1"})

	require.NoError(t, err)
	assert.Equal(t, "id", res.IDToken)
	assert.Equal(t, int64(3600), res.ExpiresIn)
	assert.Equal(t, "u-1", res.User.ID)
}

func TestUserUC_SignIn_InvalidCredentials(t *testing.T) {
	d := setup(t)
	d.gw.EXPECT().SignInWithPassword(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, apperror.InvalidCredentials(errors.New("400")))

	_, err := d.uc.SignIn(context.Background(), models.SignInRequest{Email: "a@b.co", Password: "wrong"})

	assert.True(t, apperror.Is(err, apperror.KindUnauthenticated))
}

func TestUserUC_SignOut(t *testing.T) {
	d := setup(t)
	d.gw.EXPECT().RevokeSessions(gomock.Any(), "student-1").Return(nil)

	require.NoError(t, d.uc.SignOut(context.Background(), studentSession))
	assert.True(t, apperror.Is(d.uc.SignOut(context.Background(), nil), apperror.KindUnauthenticated))
}

func TestUserUC_GetProfile_DefaultsToCaller(t *testing.T) {
	d := setup(t)
	d.repo.EXPECT().GetUser(gomock.Any(), "student-1").Return(&models.User{ID: "student-1"}, nil).Times(2)
	d.repo.EXPECT().GetUser(gomock.Any(), "other").Return(nil, apperror.NotFound("user"))

	_, err := d.uc.GetProfile(context.Background(), studentSession, "")
	require.NoError(t, err)
	_, err = d.uc.GetProfile(context.Background(), studentSession, ProfileSelf)
	require.NoError(t, err)
	_, err = d.uc.GetProfile(context.Background(), studentSession, "other")
	assert.True(t, apperror.IsNotFound(err))
}

func TestUserUC_UpdateProfile(t *testing.T) {
	t.Run("self", func(t *testing.T) {
		d := setup(t)
		d.repo.EXPECT().UpdateUserName(gomock.Any(), "student-1", "Ada L").Return(&models.User{ID: "student-1", Name: "Ada L"}, nil)

		user, err := d.uc.UpdateProfile(context.Background(), studentSession, models.UpdateUserRequest{ID: "me", Name: " Ada L "})
		require.NoError(t, err)
		assert.Equal(t, "Ada L", user.Name)
	})

	t.Run("someone else", func(t *testing.T) {
		d := setup(t)
		_, err := d.uc.UpdateProfile(context.Background(), studentSession, models.UpdateUserRequest{ID: "u-2", Name: "X"})
		assert.True(t, apperror.Is(err, apperror.KindForbidden))
	})

	t.Run("admin edits anyone", func(t *testing.T) {
		d := setup(t)
		d.repo.EXPECT().UpdateUserName(gomock.Any(), "u-2", "X").Return(&models.User{ID: "u-2"}, nil)
		_, err := d.uc.UpdateProfile(context.Background(), adminSession, models.UpdateUserRequest{ID: "u-2", Name: "X"})
		require.NoError(t, err)
	})

	t.Run("blank name", func(t *testing.T) {
		d := setup(t)
		_, err := d.uc.UpdateProfile(context.Background(), studentSession, models.UpdateUserRequest{Name: "  "})
		assert.True(t, apperror.Is(err, apperror.KindValidation))
	})
}

func TestUserUC_RegisterDeviceToken(t *testing.T) {
	d := setup(t)
	d.repo.EXPECT().SetDeviceToken(gomock.Any(), "student-1", "fcm-1").Return(nil)

	require.NoError(t, d.uc.RegisterDeviceToken(context.Background(), studentSession, models.DeviceTokenRequest{Token: "fcm-1"}))
	err := d.uc.RegisterDeviceToken(context.Background(), studentSession, models.DeviceTokenRequest{})
	assert.True(t, apperror.Is(err, apperror.KindValidation))
}

func TestUserUC_Deprovision(t *testing.T) {
	t.Run("self", func(t *testing.T) {
		d := setup(t)
		d.gw.EXPECT().DeleteAccount(gomock.Any(), "student-1").Return(nil)
		d.repo.EXPECT().DeleteUser(gomock.Any(), "student-1").Return(nil)

		require.NoError(t, d.uc.Deprovision(context.Background(), studentSession, ProfileSelf))
	})

	t.Run("profile already gone", func(t *testing.T) {
		d := setup(t)
		d.gw.EXPECT().DeleteAccount(gomock.Any(), "u-2").Return(nil)
		d.repo.EXPECT().DeleteUser(gomock.Any(), "u-2").Return(apperror.NotFound("user"))

		require.NoError(t, d.uc.Deprovision(context.Background(), adminSession, "u-2"))
	})

	t.Run("neither exists", func(t *testing.T) {
		d := setup(t)
		d.gw.EXPECT().DeleteAccount(gomock.Any(), "u-3").Return(apperror.NotFound("user"))
		d.repo.EXPECT().DeleteUser(gomock.Any(), "u-3").Return(apperror.NotFound("user"))

		assert.True(t, apperror.IsNotFound(d.uc.Deprovision(context.Background(), adminSession, "u-3")))
	})

	t.Run("other user", func(t *testing.T) {
		d := setup(t)
		assert.True(t, apperror.Is(d.uc.Deprovision(context.Background(), studentSession, "u-2"), apperror.KindForbidden))
	})
}
