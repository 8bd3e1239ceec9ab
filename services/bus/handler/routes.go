package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/campusride/services/bus"
	httpHandler "github.com/piresc/campusride/services/bus/handler/http"
)

type Handler struct {
	busHTTP *httpHandler.BusHandler
}

func NewHandler(busUC bus.BusUC) *Handler {
	return &Handler{busHTTP: httpHandler.NewBusHandler(busUC)}
}

func (h *Handler) RegisterRoutes(api *echo.Group, auth echo.MiddlewareFunc) {
	buses := api.Group("/buses", auth)
	buses.GET("", h.busHTTP.ListBuses)
	buses.POST("", h.busHTTP.CreateBus)
	buses.GET("/:id", h.busHTTP.GetBus)
	buses.PATCH("/:id", h.busHTTP.UpdateBus)
	buses.DELETE("/:id", h.busHTTP.DeleteBus)
}
