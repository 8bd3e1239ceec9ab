package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/piresc/campusride/internal/pkg/apperror"
	"github.com/piresc/campusride/internal/pkg/middleware"
	"github.com/piresc/campusride/internal/pkg/models"
	"github.com/piresc/campusride/services/users/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var studentSession = &models.Session{UserID: "student-1", Role: models.RoleStudent}

func newContext(method, target, body string, s *models.Session) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, target, bytes.NewBufferString(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if s != nil {
		middleware.SetSession(c, s)
	}
	return c, rec
}

func TestUserHandler_SignUp_Anonymous(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserUC := mocks.NewMockUserUC(ctrl)
	handler := NewUserHandler(mockUserUC)
	req := models.ProvisionRequest{Email: "ada@campus.edu", Password: "secret1", Name: "Ada", Role: "student"}
	mockUserUC.EXPECT().
		Provision(gomock.Any(), (*models.Session)(nil), req).
		Return(&models.User{ID: "uid-1", Role: models.RoleStudent}, nil)

	body, _ := json.Marshal(req)
	c, rec := newContext(http.MethodPost, "/auth/signup", string(body), nil)

	require.NoError(t, handler.SignUp(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.NotContains(t, rec.Body.String(), "secret1")
}

func TestUserHandler_SignUp_ValidationError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserUC := mocks.NewMockUserUC(ctrl)
	handler := NewUserHandler(mockUserUC)
	mockUserUC.EXPECT().
		Provision(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, apperror.Validation("Invalid email address"))

	c, rec := newContext(http.MethodPost, "/auth/signup", `{"email":"x"}`, nil)

	require.NoError(t, handler.SignUp(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid email address")
}

func TestUserHandler_SignIn(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserUC := mocks.NewMockUserUC(ctrl)
	handler := NewUserHandler(mockUserUC)
	mockUserUC.EXPECT().
		SignIn(gomock.Any(), models.SignInRequest{Email: "ada@campus.edu", Password: "secret1"}).
		Return(&models.SignInResult{IDToken: "id-tok", ExpiresIn: 3600, User: &models.User{ID: "uid-1"}}, nil)

	c, rec := newContext(http.MethodPost, "/auth/login", `{"email":"ada@campus.edu","password":"secret1"}`, nil)

	require.NoError(t, handler.SignIn(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"idToken":"id-tok"`)
}

func TestUserHandler_SignIn_BadCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserUC := mocks.NewMockUserUC(ctrl)
	handler := NewUserHandler(mockUserUC)
	mockUserUC.EXPECT().SignIn(gomock.Any(), gomock.Any()).Return(nil, apperror.InvalidCredentials(nil))

	c, rec := newContext(http.MethodPost, "/auth/login", `{"email":"ada@campus.edu","password":"nope"}`, nil)

	require.NoError(t, handler.SignIn(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestUserHandler_GetProfile_Me(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserUC := mocks.NewMockUserUC(ctrl)
	handler := NewUserHandler(mockUserUC)
	mockUserUC.EXPECT().
		GetProfile(gomock.Any(), studentSession, "").
		Return(&models.User{ID: "student-1", FCMToken: "hidden"}, nil)

	c, rec := newContext(http.MethodGet, "/users/me", "", studentSession)

	require.NoError(t, handler.GetProfile(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "hidden")
}

func TestUserHandler_UpdateProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserUC := mocks.NewMockUserUC(ctrl)
	handler := NewUserHandler(mockUserUC)
	mockUserUC.EXPECT().
		UpdateProfile(gomock.Any(), studentSession, models.UpdateUserRequest{ID: "u-2", Name: "X"}).
		Return(nil, apperror.Forbidden("you can only modify your own records"))

	c, rec := newContext(http.MethodPatch, "/users/u-2", `{"name":"X"}`, studentSession)
	c.SetParamNames("id")
	c.SetParamValues("u-2")

	require.NoError(t, handler.UpdateProfile(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestUserHandler_DeviceTokenAndSignOut(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserUC := mocks.NewMockUserUC(ctrl)
	handler := NewUserHandler(mockUserUC)
	mockUserUC.EXPECT().RegisterDeviceToken(gomock.Any(), studentSession, models.DeviceTokenRequest{Token: "fcm-1"}).Return(nil)
	mockUserUC.EXPECT().SignOut(gomock.Any(), studentSession).Return(nil)

	c, rec := newContext(http.MethodPost, "/users/me/device-token", `{"token":"fcm-1"}`, studentSession)
	require.NoError(t, handler.RegisterDeviceToken(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	c, rec = newContext(http.MethodPost, "/auth/logout", "", studentSession)
	require.NoError(t, handler.SignOut(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUserHandler_Deprovision(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserUC := mocks.NewMockUserUC(ctrl)
	handler := NewUserHandler(mockUserUC)
	mockUserUC.EXPECT().Deprovision(gomock.Any(), studentSession, "student-1").Return(nil)

	c, rec := newContext(http.MethodDelete, "/users/student-1", "", studentSession)
	c.SetParamNames("id")
	c.SetParamValues("student-1")

	require.NoError(t, handler.DeprovisionUser(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}
