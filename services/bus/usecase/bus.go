package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/piresc/campusride/internal/pkg/access"
	"github.com/piresc/campusride/internal/pkg/apperror"
	"github.com/piresc/campusride/internal/pkg/logger"
	"github.com/piresc/campusride/internal/pkg/models"
	"github.com/piresc/campusride/services/bus"
)

type busUC struct {
	cfg     *models.Config
	busRepo bus.BusRepo
}

// NewBusUC creates the bus registry use case
func NewBusUC(cfg *models.Config, busRepo bus.BusRepo) (bus.BusUC, error) {
	return &busUC{cfg: cfg, busRepo: busRepo}, nil
}

func validateSeats(seats int) error {
	if seats < 1 {
		return apperror.Validation("seats must be at least 1")
	}
	return nil
}

// CreateBus registers a bus owned by the caller
func (uc *busUC) CreateBus(ctx context.Context, s *models.Session, req models.CreateBusRequest) (*models.Bus, error) {
	if err := access.RequireRole(s, uc.cfg.Access.BusWriteRoles); err != nil {
		return nil, err
	}
	if err := validateSeats(req.Seats); err != nil {
		return nil, err
	}

	created, err := uc.busRepo.CreateBus(ctx, models.Bus{
		ID:       uuid.NewString(),
		Seats:    req.Seats,
		DriverID: s.UserID,
	})
	if err != nil {
		logger.ErrorCtx(ctx, "Failed to create bus", logger.String("driver_id", s.UserID), logger.Err(err))
		return nil, err
	}

	logger.Info("Bus registered",
		logger.String("bus_id", created.ID),
		logger.String("driver_id", created.DriverID),
		logger.Int("seats", created.Seats))
	return created, nil
}

// authorizeOwner loads the bus and checks the caller may modify it
func (uc *busUC) authorizeOwner(ctx context.Context, s *models.Session, id string) error {
	if err := access.RequireSession(s); err != nil {
		return err
	}
	existing, err := uc.busRepo.GetBus(ctx, id)
	if err != nil {
		return err
	}
	return access.RequireOwnerOrAdmin(s, existing.DriverID)
}

func (uc *busUC) UpdateBus(ctx context.Context, s *models.Session, req models.UpdateBusRequest) (*models.Bus, error) {
	if err := validateSeats(req.Seats); err != nil {
		return nil, err
	}
	if err := uc.authorizeOwner(ctx, s, req.ID); err != nil {
		return nil, err
	}
	return uc.busRepo.UpdateBus(ctx, req)
}

func (uc *busUC) GetBus(ctx context.Context, s *models.Session, id string) (*models.Bus, error) {
	if err := access.RequireSession(s); err != nil {
		return nil, err
	}
	return uc.busRepo.GetBus(ctx, id)
}

// ListBuses returns every bus unless the filter names a driver, whatever the caller's role
func (uc *busUC) ListBuses(ctx context.Context, s *models.Session, filter models.BusFilter) (*models.Page[models.Bus], error) {
	if err := access.RequireSession(s); err != nil {
		return nil, err
	}
	filter.PageRequest = filter.PageRequest.Normalize(uc.cfg.Trip.DefaultPageSize, uc.cfg.Trip.MaxPageSize)

	buses, total, err := uc.busRepo.ListBuses(ctx, filter)
	if err != nil {
		return nil, err
	}
	if buses == nil {
		buses = []models.Bus{}
	}
	return &models.Page[models.Bus]{Data: buses, Pagination: models.NewPagination(total, filter.PageRequest)}, nil
}

func (uc *busUC) DeleteBus(ctx context.Context, s *models.Session, id string) error {
	if err := uc.authorizeOwner(ctx, s, id); err != nil {
		return err
	}
	if err := uc.busRepo.DeleteBus(ctx, id); err != nil {
		return err
	}
	logger.Info("Bus deleted", logger.String("bus_id", id), logger.String("user_id", s.UserID))
	return nil
}
