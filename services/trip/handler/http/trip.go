package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/campusride/internal/pkg/middleware"
	"github.com/piresc/campusride/internal/pkg/models"
	nrpkg "github.com/piresc/campusride/internal/pkg/newrelic"
	"github.com/piresc/campusride/internal/utils"
	"github.com/piresc/campusride/services/trip"
)

// TripHandler handles HTTP requests for trips and seat reservations
type TripHandler struct {
	tripUC trip.TripUC
}

func NewTripHandler(tripUC trip.TripUC) *TripHandler {
	return &TripHandler{tripUC: tripUC}
}

func (h *TripHandler) CreateTrip(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Trips.CreateTrip")

	var req models.CreateTripRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	created, err := h.tripUC.CreateTrip(c.Request().Context(), middleware.SessionFrom(c), req)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Trip created successfully", created)
}

func (h *TripHandler) UpdateTrip(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Trips.UpdateTrip")

	var req models.UpdateTripRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}
	req.ID = c.Param("id")

	updated, err := h.tripUC.UpdateTrip(c.Request().Context(), middleware.SessionFrom(c), req)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Trip updated successfully", updated)
}

// JoinTrip reserves a seat. An empty body joins the caller.
func (h *TripHandler) JoinTrip(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Trips.JoinTrip")

	var req models.JoinTripRequest
	if c.Request().ContentLength != 0 {
		if err := c.Bind(&req); err != nil {
			return utils.BadRequestResponse(c, "Invalid request body")
		}
	}
	req.ID = c.Param("id")

	joined, err := h.tripUC.JoinTrip(c.Request().Context(), middleware.SessionFrom(c), req)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Joined trip successfully", joined)
}

func (h *TripHandler) GetTrip(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Trips.GetTrip")

	found, err := h.tripUC.GetTrip(c.Request().Context(), middleware.SessionFrom(c), c.Param("id"))
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", found)
}

func (h *TripHandler) ListTrips(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Trips.ListTrips")

	var filter models.TripFilter
	if err := c.Bind(&filter); err != nil {
		return utils.BadRequestResponse(c, "Invalid query parameters")
	}

	result, err := h.tripUC.ListTrips(c.Request().Context(), middleware.SessionFrom(c), filter)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *TripHandler) DeleteTrip(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Trips.DeleteTrip")

	if err := h.tripUC.DeleteTrip(c.Request().Context(), middleware.SessionFrom(c), c.Param("id")); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Trip deleted successfully", nil)
}
