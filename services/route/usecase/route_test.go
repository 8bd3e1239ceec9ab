package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/piresc/campusride/internal/pkg/apperror"
	"github.com/piresc/campusride/internal/pkg/models"
	"github.com/piresc/campusride/services/route/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *models.Config {
	return &models.Config{
		Fare:   models.FareConfig{Min: 100, Currency: "NGN"},
		Access: models.AccessConfig{RouteWriteRoles: []models.Role{models.RoleAdmin}},
		Trip:   models.TripConfig{DefaultPageSize: 20, MaxPageSize: 100},
	}
}

var (
	adminSession   = &models.Session{UserID: "admin-1", Role: models.RoleAdmin}
	studentSession = &models.Session{UserID: "student-1", Role: models.RoleStudent}
)

func newTestUC(t *testing.T) (*routeUC, *mocks.MockRouteRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := mocks.NewMockRouteRepo(ctrl)
	uc, err := NewRouteUC(testConfig(), repo)
	require.NoError(t, err)
	return uc.(*routeUC), repo
}

func TestRouteUC_CreateRoute_Success(t *testing.T) {
	// Arrange
	uc, repo := newTestUC(t)
	repo.EXPECT().
		CreateRoute(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, r models.Route) (*models.Route, error) {
			assert.NotEmpty(t, r.ID)
			assert.Equal(t, "Main Gate", r.Route)
			assert.Equal(t, int64(200), r.Cost)
			return &r, nil
		})

	// Act
	created, err := uc.CreateRoute(context.Background(), adminSession, models.CreateRouteRequest{Route: "  Main Gate ", Cost: 200})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "Main Gate", created.Route)
}

func TestRouteUC_CreateRoute_BelowMinimumFare(t *testing.T) {
	uc, _ := newTestUC(t)

	// no repository call is expected
	_, err := uc.CreateRoute(context.Background(), adminSession, models.CreateRouteRequest{Route: "Hostel", Cost: 50})

	require.Error(t, err)
	assert.True(t, apperror.Is(err, apperror.KindValidation))
	assert.Equal(t, "cost must be at least 100", apperror.Message(err))
}

func TestRouteUC_CreateRoute_NonPositiveFareWithoutMinimum(t *testing.T) {
	ctrl := gomock.NewController(t)
	cfg := testConfig()
	cfg.Fare.Min = 0
	uc, err := NewRouteUC(cfg, mocks.NewMockRouteRepo(ctrl))
	require.NoError(t, err)

	for _, cost := range []int64{0, -100} {
		_, err := uc.CreateRoute(context.Background(), adminSession, models.CreateRouteRequest{Route: "Hostel", Cost: cost})
		assert.True(t, apperror.Is(err, apperror.KindValidation))
		assert.Equal(t, "cost must be at least 1", apperror.Message(err))
	}
}

func TestRouteUC_CreateRoute_Authorization(t *testing.T) {
	tests := []struct {
		name    string
		session *models.Session
		kind    apperror.Kind
	}{
		{"no session", nil, apperror.KindUnauthenticated},
		{"empty session", &models.Session{}, apperror.KindUnauthenticated},
		{"student", studentSession, apperror.KindForbidden},
		{"driver", &models.Session{UserID: "d-1", Role: models.RoleDriver}, apperror.KindForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, _ := newTestUC(t)
			_, err := uc.CreateRoute(context.Background(), tt.session, models.CreateRouteRequest{Route: "Library", Cost: 150})
			assert.True(t, apperror.Is(err, tt.kind))
		})
	}
}

func TestRouteUC_CreateRoute_EmptyName(t *testing.T) {
	uc, _ := newTestUC(t)
	_, err := uc.CreateRoute(context.Background(), adminSession, models.CreateRouteRequest{Route: "   ", Cost: 150})
	assert.True(t, apperror.Is(err, apperror.KindValidation))
}

func TestRouteUC_CreateRoute_RepositoryError(t *testing.T) {
	uc, repo := newTestUC(t)
	repoErr := apperror.Persistence("create route", errors.New("unavailable"))
	repo.EXPECT().CreateRoute(gomock.Any(), gomock.Any()).Return(nil, repoErr)

	_, err := uc.CreateRoute(context.Background(), adminSession, models.CreateRouteRequest{Route: "Library", Cost: 150})

	assert.ErrorIs(t, err, repoErr)
}

func TestRouteUC_UpdateRoute(t *testing.T) {
	t.Run("partial update", func(t *testing.T) {
		uc, repo := newTestUC(t)
		cost := int64(300)
		repo.EXPECT().
			UpdateRoute(gomock.Any(), models.UpdateRouteRequest{ID: "r-1", Cost: &cost}).
			Return(&models.Route{ID: "r-1", Route: "Library", Cost: 300}, nil)

		updated, err := uc.UpdateRoute(context.Background(), adminSession, models.UpdateRouteRequest{ID: "r-1", Cost: &cost})

		require.NoError(t, err)
		assert.Equal(t, int64(300), updated.Cost)
	})

	t.Run("cost below minimum", func(t *testing.T) {
		uc, _ := newTestUC(t)
		cost := int64(10)
		_, err := uc.UpdateRoute(context.Background(), adminSession, models.UpdateRouteRequest{ID: "r-1", Cost: &cost})
		assert.True(t, apperror.Is(err, apperror.KindValidation))
	})

	t.Run("blank name", func(t *testing.T) {
		uc, _ := newTestUC(t)
		name := " "
		_, err := uc.UpdateRoute(context.Background(), adminSession, models.UpdateRouteRequest{ID: "r-1", Route: &name})
		assert.True(t, apperror.Is(err, apperror.KindValidation))
	})

	t.Run("missing route", func(t *testing.T) {
		uc, repo := newTestUC(t)
		name := "Science Block"
		repo.EXPECT().UpdateRoute(gomock.Any(), gomock.Any()).Return(nil, apperror.NotFound("route"))

		_, err := uc.UpdateRoute(context.Background(), adminSession, models.UpdateRouteRequest{ID: "nope", Route: &name})
		assert.True(t, apperror.IsNotFound(err))
	})

	t.Run("student forbidden", func(t *testing.T) {
		uc, _ := newTestUC(t)
		name := "Science Block"
		_, err := uc.UpdateRoute(context.Background(), studentSession, models.UpdateRouteRequest{ID: "r-1", Route: &name})
		assert.True(t, apperror.Is(err, apperror.KindForbidden))
	})
}

func TestRouteUC_GetRoute(t *testing.T) {
	uc, repo := newTestUC(t)
	repo.EXPECT().GetRoute(gomock.Any(), "r-1").Return(&models.Route{ID: "r-1", Route: "Library", Cost: 150}, nil)

	found, err := uc.GetRoute(context.Background(), studentSession, "r-1")
	require.NoError(t, err)
	assert.Equal(t, "Library", found.Route)

	_, err = uc.GetRoute(context.Background(), nil, "r-1")
	assert.True(t, apperror.Is(err, apperror.KindUnauthenticated))
}

func TestRouteUC_ListRoutes(t *testing.T) {
	t.Run("empty catalog", func(t *testing.T) {
		uc, repo := newTestUC(t)
		repo.EXPECT().
			ListRoutes(gomock.Any(), models.PageRequest{Page: 1, Limit: 20}).
			Return(nil, int64(0), nil)

		page, err := uc.ListRoutes(context.Background(), studentSession, models.PageRequest{})

		require.NoError(t, err)
		assert.NotNil(t, page.Data)
		assert.Empty(t, page.Data)
		assert.Equal(t, int64(0), page.Pagination.Total)
		assert.Equal(t, 0, page.Pagination.TotalPages)
	})

	t.Run("limit is clamped", func(t *testing.T) {
		uc, repo := newTestUC(t)
		routes := []models.Route{{ID: "r-1"}, {ID: "r-2"}}
		repo.EXPECT().
			ListRoutes(gomock.Any(), models.PageRequest{Page: 2, Limit: 100}).
			Return(routes, int64(102), nil)

		page, err := uc.ListRoutes(context.Background(), studentSession, models.PageRequest{Page: 2, Limit: 500})

		require.NoError(t, err)
		assert.Len(t, page.Data, 2)
		assert.Equal(t, 2, page.Pagination.TotalPages)
	})
}

func TestRouteUC_DeleteRoute(t *testing.T) {
	uc, repo := newTestUC(t)
	repo.EXPECT().DeleteRoute(gomock.Any(), "r-1").Return(nil)

	require.NoError(t, uc.DeleteRoute(context.Background(), adminSession, "r-1"))
	assert.True(t, apperror.Is(uc.DeleteRoute(context.Background(), studentSession, "r-1"), apperror.KindForbidden))
}
