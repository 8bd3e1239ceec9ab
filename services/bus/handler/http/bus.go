package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/campusride/internal/pkg/middleware"
	"github.com/piresc/campusride/internal/pkg/models"
	nrpkg "github.com/piresc/campusride/internal/pkg/newrelic"
	"github.com/piresc/campusride/internal/utils"
	"github.com/piresc/campusride/services/bus"
)

// BusHandler handles HTTP requests for the bus registry
type BusHandler struct {
	busUC bus.BusUC
}

func NewBusHandler(busUC bus.BusUC) *BusHandler {
	return &BusHandler{busUC: busUC}
}

func (h *BusHandler) CreateBus(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Buses.CreateBus")

	var req models.CreateBusRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	created, err := h.busUC.CreateBus(c.Request().Context(), middleware.SessionFrom(c), req)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Bus registered successfully", created)
}

func (h *BusHandler) UpdateBus(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Buses.UpdateBus")

	var req models.UpdateBusRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}
	req.ID = c.Param("id")

	updated, err := h.busUC.UpdateBus(c.Request().Context(), middleware.SessionFrom(c), req)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Bus updated successfully", updated)
}

func (h *BusHandler) GetBus(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Buses.GetBus")

	found, err := h.busUC.GetBus(c.Request().Context(), middleware.SessionFrom(c), c.Param("id"))
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", found)
}

func (h *BusHandler) ListBuses(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Buses.ListBuses")

	var filter models.BusFilter
	if err := c.Bind(&filter); err != nil {
		return utils.BadRequestResponse(c, "Invalid query parameters")
	}

	result, err := h.busUC.ListBuses(c.Request().Context(), middleware.SessionFrom(c), filter)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *BusHandler) DeleteBus(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Buses.DeleteBus")

	if err := h.busUC.DeleteBus(c.Request().Context(), middleware.SessionFrom(c), c.Param("id")); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Bus deleted successfully", nil)
}
