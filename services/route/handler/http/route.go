package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/campusride/internal/pkg/middleware"
	"github.com/piresc/campusride/internal/pkg/models"
	nrpkg "github.com/piresc/campusride/internal/pkg/newrelic"
	"github.com/piresc/campusride/internal/utils"
	"github.com/piresc/campusride/services/route"
)

// RouteHandler handles HTTP requests for the route catalog
type RouteHandler struct {
	routeUC route.RouteUC
}

func NewRouteHandler(routeUC route.RouteUC) *RouteHandler {
	return &RouteHandler{routeUC: routeUC}
}

func (h *RouteHandler) CreateRoute(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Routes.CreateRoute")

	var req models.CreateRouteRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	created, err := h.routeUC.CreateRoute(c.Request().Context(), middleware.SessionFrom(c), req)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Route created successfully", created)
}

func (h *RouteHandler) UpdateRoute(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Routes.UpdateRoute")

	var req models.UpdateRouteRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}
	req.ID = c.Param("id")

	updated, err := h.routeUC.UpdateRoute(c.Request().Context(), middleware.SessionFrom(c), req)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Route updated successfully", updated)
}

func (h *RouteHandler) GetRoute(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Routes.GetRoute")

	found, err := h.routeUC.GetRoute(c.Request().Context(), middleware.SessionFrom(c), c.Param("id"))
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", found)
}

func (h *RouteHandler) ListRoutes(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Routes.ListRoutes")

	var page models.PageRequest
	if err := c.Bind(&page); err != nil {
		return utils.BadRequestResponse(c, "Invalid pagination parameters")
	}

	result, err := h.routeUC.ListRoutes(c.Request().Context(), middleware.SessionFrom(c), page)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *RouteHandler) DeleteRoute(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Routes.DeleteRoute")

	if err := h.routeUC.DeleteRoute(c.Request().Context(), middleware.SessionFrom(c), c.Param("id")); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Route deleted successfully", nil)
}
