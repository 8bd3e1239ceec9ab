package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/piresc/campusride/internal/pkg/apperror"
	"github.com/piresc/campusride/internal/pkg/middleware"
	"github.com/piresc/campusride/internal/pkg/models"
	"github.com/piresc/campusride/services/route/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var adminSession = &models.Session{UserID: "admin-1", Role: models.RoleAdmin}

func newContext(method, target string, body []byte) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	middleware.SetSession(c, adminSession)
	return c, rec
}

func TestNewRouteHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRouteUC := mocks.NewMockRouteUC(ctrl)
	handler := NewRouteHandler(mockRouteUC)

	assert.NotNil(t, handler)
	assert.Equal(t, mockRouteUC, handler.routeUC)
}

func TestRouteHandler_CreateRoute_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRouteUC := mocks.NewMockRouteUC(ctrl)
	handler := NewRouteHandler(mockRouteUC)

	req := models.CreateRouteRequest{Route: "Main Gate", Cost: 200}
	mockRouteUC.EXPECT().
		CreateRoute(gomock.Any(), adminSession, req).
		Return(&models.Route{ID: "r-1", Route: "Main Gate", Cost: 200}, nil).
		Times(1)

	body, _ := json.Marshal(req)
	c, rec := newContext(http.MethodPost, "/routes", body)

	err := handler.CreateRoute(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		Success bool         `json:"success"`
		Data    models.Route `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "r-1", resp.Data.ID)
}

func TestRouteHandler_CreateRoute_InvalidBody(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler := NewRouteHandler(mocks.NewMockRouteUC(ctrl))
	c, rec := newContext(http.MethodPost, "/routes", []byte("invalid json"))

	err := handler.CreateRoute(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRouteHandler_CreateRoute_UseCaseErrors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"validation", apperror.Validation("cost must be at least 100"), http.StatusBadRequest},
		{"forbidden", apperror.Forbidden("insufficient permissions"), http.StatusForbidden},
		{"unauthenticated", apperror.Unauthenticated(), http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRouteUC := mocks.NewMockRouteUC(ctrl)
			handler := NewRouteHandler(mockRouteUC)
			mockRouteUC.EXPECT().CreateRoute(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, tt.err)

			c, rec := newContext(http.MethodPost, "/routes", []byte(`{"route":"Gate","cost":1}`))

			require.NoError(t, handler.CreateRoute(c))
			assert.Equal(t, tt.status, rec.Code)
			assert.Contains(t, rec.Body.String(), apperror.Message(tt.err))
		})
	}
}

func TestRouteHandler_UpdateRoute_UsesPathID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRouteUC := mocks.NewMockRouteUC(ctrl)
	handler := NewRouteHandler(mockRouteUC)

	mockRouteUC.EXPECT().
		UpdateRoute(gomock.Any(), adminSession, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *models.Session, req models.UpdateRouteRequest) (*models.Route, error) {
			assert.Equal(t, "r-9", req.ID)
			require.NotNil(t, req.Cost)
			assert.Nil(t, req.Route)
			return &models.Route{ID: req.ID, Cost: *req.Cost}, nil
		})

	c, rec := newContext(http.MethodPatch, "/routes/r-9", []byte(`{"cost":250}`))
	c.SetParamNames("id")
	c.SetParamValues("r-9")

	require.NoError(t, handler.UpdateRoute(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouteHandler_GetRoute_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRouteUC := mocks.NewMockRouteUC(ctrl)
	handler := NewRouteHandler(mockRouteUC)
	mockRouteUC.EXPECT().GetRoute(gomock.Any(), adminSession, "missing").Return(nil, apperror.NotFound("route"))

	c, rec := newContext(http.MethodGet, "/routes/missing", nil)
	c.SetParamNames("id")
	c.SetParamValues("missing")

	require.NoError(t, handler.GetRoute(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "route doesn't exist")
}

func TestRouteHandler_ListRoutes_BindsPagination(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRouteUC := mocks.NewMockRouteUC(ctrl)
	handler := NewRouteHandler(mockRouteUC)
	mockRouteUC.EXPECT().
		ListRoutes(gomock.Any(), adminSession, models.PageRequest{Page: 2, Limit: 5}).
		Return(&models.Page[models.Route]{Data: []models.Route{}}, nil)

	c, rec := newContext(http.MethodGet, "/routes?page=2&limit=5", nil)

	require.NoError(t, handler.ListRoutes(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouteHandler_DeleteRoute(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRouteUC := mocks.NewMockRouteUC(ctrl)
	handler := NewRouteHandler(mockRouteUC)
	mockRouteUC.EXPECT().DeleteRoute(gomock.Any(), adminSession, "r-1").Return(nil)

	c, rec := newContext(http.MethodDelete, "/routes/r-1", nil)
	c.SetParamNames("id")
	c.SetParamValues("r-1")

	require.NoError(t, handler.DeleteRoute(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}
