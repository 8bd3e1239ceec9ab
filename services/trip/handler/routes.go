package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/campusride/services/trip"
	httpHandler "github.com/piresc/campusride/services/trip/handler/http"
)

type Handler struct {
	tripHTTP *httpHandler.TripHandler
}

func NewHandler(tripUC trip.TripUC) *Handler {
	return &Handler{tripHTTP: httpHandler.NewTripHandler(tripUC)}
}

func (h *Handler) RegisterRoutes(api *echo.Group, auth echo.MiddlewareFunc) {
	trips := api.Group("/trips", auth)
	trips.GET("", h.tripHTTP.ListTrips)
	trips.POST("", h.tripHTTP.CreateTrip)
	trips.GET("/:id", h.tripHTTP.GetTrip)
	trips.PATCH("/:id", h.tripHTTP.UpdateTrip)
	trips.DELETE("/:id", h.tripHTTP.DeleteTrip)
	trips.POST("/:id/join", h.tripHTTP.JoinTrip)
}
