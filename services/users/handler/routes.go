package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/campusride/internal/pkg/middleware"
	"github.com/piresc/campusride/internal/pkg/models"
	"github.com/piresc/campusride/services/users"
	httpHandler "github.com/piresc/campusride/services/users/handler/http"
)

type Handler struct {
	userHTTP *httpHandler.UserHandler
}

func NewHandler(userUC users.UserUC) *Handler {
	return &Handler{userHTTP: httpHandler.NewUserHandler(userUC)}
}

// RegisterRoutes mounts /auth and /users. Sign-up accepts an optional session so
// an admin token can create any role.
func (h *Handler) RegisterRoutes(api *echo.Group, auth, optionalAuth echo.MiddlewareFunc) {
	authGroup := api.Group("/auth")
	authGroup.POST("/signup", h.userHTTP.SignUp, optionalAuth)
	authGroup.POST("/login", h.userHTTP.SignIn)
	authGroup.POST("/logout", h.userHTTP.SignOut, auth)

	usersGroup := api.Group("/users", auth)
	usersGroup.POST("", h.userHTTP.ProvisionUser, middleware.RequireRole(models.RoleAdmin))
	usersGroup.GET("/me", h.userHTTP.GetProfile)
	usersGroup.POST("/me/device-token", h.userHTTP.RegisterDeviceToken)
	usersGroup.GET("/:id", h.userHTTP.GetProfile)
	usersGroup.PATCH("/:id", h.userHTTP.UpdateProfile)
	usersGroup.DELETE("/:id", h.userHTTP.DeprovisionUser)
}
