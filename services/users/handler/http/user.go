package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/campusride/internal/pkg/middleware"
	"github.com/piresc/campusride/internal/pkg/models"
	nrpkg "github.com/piresc/campusride/internal/pkg/newrelic"
	"github.com/piresc/campusride/internal/utils"
	"github.com/piresc/campusride/services/users"
)

// UserHandler handles authentication and profile requests
type UserHandler struct {
	userUC users.UserUC
}

func NewUserHandler(userUC users.UserUC) *UserHandler {
	return &UserHandler{userUC: userUC}
}

// SignUp provisions an account. Anonymous callers may only pick student or driver.
func (h *UserHandler) SignUp(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Auth.SignUp")

	var req models.ProvisionRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	user, err := h.userUC.Provision(c.Request().Context(), middleware.SessionFrom(c), req)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Account created successfully", user)
}

func (h *UserHandler) SignIn(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Auth.SignIn")

	var req models.SignInRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	result, err := h.userUC.SignIn(c.Request().Context(), req)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Signed in successfully", result)
}

func (h *UserHandler) SignOut(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Auth.SignOut")

	if err := h.userUC.SignOut(c.Request().Context(), middleware.SessionFrom(c)); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Signed out successfully", nil)
}

// GetProfile serves both /users/me and /users/:id
func (h *UserHandler) GetProfile(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Users.GetProfile")

	user, err := h.userUC.GetProfile(c.Request().Context(), middleware.SessionFrom(c), c.Param("id"))
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", user)
}

func (h *UserHandler) UpdateProfile(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Users.UpdateProfile")

	var req models.UpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}
	req.ID = c.Param("id")

	user, err := h.userUC.UpdateProfile(c.Request().Context(), middleware.SessionFrom(c), req)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Profile updated successfully", user)
}

func (h *UserHandler) ProvisionUser(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Users.Provision")

	var req models.ProvisionRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	user, err := h.userUC.Provision(c.Request().Context(), middleware.SessionFrom(c), req)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "User created successfully", user)
}

func (h *UserHandler) DeprovisionUser(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Users.Deprovision")

	if err := h.userUC.Deprovision(c.Request().Context(), middleware.SessionFrom(c), c.Param("id")); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "User deleted successfully", nil)
}

func (h *UserHandler) RegisterDeviceToken(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Users.RegisterDeviceToken")

	var req models.DeviceTokenRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := h.userUC.RegisterDeviceToken(c.Request().Context(), middleware.SessionFrom(c), req); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Device token registered", nil)
}
