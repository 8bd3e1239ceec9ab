package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/campusride/services/route"
	httpHandler "github.com/piresc/campusride/services/route/handler/http"
)

type Handler struct {
	routeHTTP *httpHandler.RouteHandler
}

func NewHandler(routeUC route.RouteUC) *Handler {
	return &Handler{routeHTTP: httpHandler.NewRouteHandler(routeUC)}
}

// RegisterRoutes mounts /routes under api; every endpoint requires a session
func (h *Handler) RegisterRoutes(api *echo.Group, auth echo.MiddlewareFunc) {
	routes := api.Group("/routes", auth)
	routes.GET("", h.routeHTTP.ListRoutes)
	routes.POST("", h.routeHTTP.CreateRoute)
	routes.GET("/:id", h.routeHTTP.GetRoute)
	routes.PATCH("/:id", h.routeHTTP.UpdateRoute)
	routes.DELETE("/:id", h.routeHTTP.DeleteRoute)
}
