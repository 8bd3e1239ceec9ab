package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/campusride/internal/pkg/access"
	"github.com/piresc/campusride/internal/pkg/apperror"
	"github.com/piresc/campusride/internal/pkg/logger"
	"github.com/piresc/campusride/internal/pkg/models"
	"github.com/piresc/campusride/internal/utils"
	"github.com/piresc/campusride/services/bus"
	"github.com/piresc/campusride/services/route"
	"github.com/piresc/campusride/services/trip"
	"github.com/piresc/campusride/services/users"
)

type tripUC struct {
	cfg       *models.Config
	tripRepo  trip.TripRepo
	routeRepo route.RouteRepo
	busRepo   bus.BusRepo
	userRepo  users.UserRepo
	tripGW    trip.TripGW
	validator *utils.Validator
}

// NewTripUC creates the trip use case. Routes, buses and users are read through
// their repositories to resolve trip references.
func NewTripUC(
	cfg *models.Config,
	tripRepo trip.TripRepo,
	routeRepo route.RouteRepo,
	busRepo bus.BusRepo,
	userRepo users.UserRepo,
	tripGW trip.TripGW,
) (trip.TripUC, error) {
	return &tripUC{
		cfg:       cfg,
		tripRepo:  tripRepo,
		routeRepo: routeRepo,
		busRepo:   busRepo,
		userRepo:  userRepo,
		tripGW:    tripGW,
		validator: utils.NewValidator(),
	}, nil
}

// CreateTrip records the caller as driver of a new, empty trip on one of their buses
func (uc *tripUC) CreateTrip(ctx context.Context, s *models.Session, req models.CreateTripRequest) (*models.Trip, error) {
	if err := access.RequireRole(s, uc.cfg.Access.TripCreateRoles); err != nil {
		return nil, err
	}
	if err := uc.validator.Validate(req); err != nil {
		return nil, err
	}
	if _, err := uc.routeRepo.GetRoute(ctx, req.DestinationID); err != nil {
		return nil, err
	}
	if _, err := uc.ownedBus(ctx, s, req.BusID); err != nil {
		return nil, err
	}

	rec, err := uc.tripRepo.CreateTrip(ctx, models.TripRecord{
		ID:            uuid.NewString(),
		DestinationID: req.DestinationID,
		BusID:         req.BusID,
		DriverID:      s.UserID,
		OccupantIDs:   []string{},
	})
	if err != nil {
		logger.ErrorCtx(ctx, "Failed to create trip", logger.String("driver_id", s.UserID), logger.Err(err))
		return nil, err
	}

	if err := uc.tripGW.PublishTripCreated(ctx, &models.TripCreatedEvent{
		TripID:        rec.ID,
		DriverID:      rec.DriverID,
		DestinationID: rec.DestinationID,
		BusID:         rec.BusID,
		CreatedAt:     rec.CreatedAt,
	}); err != nil {
		logger.WarnCtx(ctx, "Failed to publish trip created event", logger.String("trip_id", rec.ID), logger.Err(err))
	}

	return uc.resolveOne(ctx, rec)
}

// ownedBus loads busID and checks a non-admin caller drives it
func (uc *tripUC) ownedBus(ctx context.Context, s *models.Session, busID string) (*models.Bus, error) {
	b, err := uc.busRepo.GetBus(ctx, busID)
	if err != nil {
		return nil, err
	}
	if !s.IsAdmin() && b.DriverID != s.UserID {
		return nil, apperror.Forbidden("you can only use your own bus")
	}
	return b, nil
}

func (uc *tripUC) UpdateTrip(ctx context.Context, s *models.Session, req models.UpdateTripRequest) (*models.Trip, error) {
	if err := access.RequireSession(s); err != nil {
		return nil, err
	}
	if req.DestinationID == nil && req.BusID == nil {
		return nil, apperror.Validation("destinationId or busId is required")
	}
	existing, err := uc.tripRepo.GetTrip(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	if err := access.RequireOwnerOrAdmin(s, existing.DriverID); err != nil {
		return nil, err
	}

	if req.DestinationID != nil {
		if _, err := uc.routeRepo.GetRoute(ctx, *req.DestinationID); err != nil {
			return nil, err
		}
	}
	if req.BusID != nil {
		b, err := uc.ownedBus(ctx, s, *req.BusID)
		if err != nil {
			return nil, err
		}
		if uc.cfg.Trip.EnforceCapacity && len(existing.OccupantIDs) > b.Seats {
			return nil, apperror.Conflict(fmt.Sprintf("bus has %d seats but the trip has %d occupants", b.Seats, len(existing.OccupantIDs)))
		}
	}

	rec, err := uc.tripRepo.UpdateTrip(ctx, req)
	if err != nil {
		return nil, err
	}
	return uc.resolveOne(ctx, rec)
}

// JoinTrip reserves a seat for the student, defaulting to the caller. Joining
// a trip the student is already on succeeds without writing.
func (uc *tripUC) JoinTrip(ctx context.Context, s *models.Session, req models.JoinTripRequest) (*models.Trip, error) {
	if err := access.RequireSession(s); err != nil {
		return nil, err
	}
	studentID := req.StudentID
	if studentID == "" {
		studentID = s.UserID
	}
	if studentID != s.UserID && !s.IsAdmin() {
		return nil, apperror.Forbidden("you can only join a trip yourself")
	}

	student, err := uc.userRepo.GetUser(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if student.Role != models.RoleStudent {
		return nil, apperror.Forbidden("only students can join trips")
	}

	rec, joined, err := uc.tripRepo.JoinTrip(ctx, req.ID, studentID, uc.cfg.Trip.EnforceCapacity)
	if err != nil {
		return nil, err
	}

	resolved, err := uc.resolveOne(ctx, rec)
	if err != nil {
		return nil, err
	}
	if joined {
		logger.InfoCtx(ctx, "Student joined trip",
			logger.String("trip_id", rec.ID),
			logger.String("student_id", studentID),
			logger.Int("occupants", len(rec.OccupantIDs)))
		uc.announceJoin(ctx, resolved, student)
	}
	return resolved, nil
}

// announceJoin publishes the join and notifies the driver. Failures are logged only.
func (uc *tripUC) announceJoin(ctx context.Context, t *models.Trip, student *models.User) {
	if err := uc.tripGW.PublishTripJoined(ctx, &models.TripJoinedEvent{
		TripID:    t.ID,
		DriverID:  t.Driver.ID,
		StudentID: student.ID,
		Occupants: len(t.Occupants),
		JoinedAt:  time.Now().UTC(),
	}); err != nil {
		logger.WarnCtx(ctx, "Failed to publish trip joined event", logger.String("trip_id", t.ID), logger.Err(err))
	}

	if t.Driver.FCMToken == "" {
		return
	}
	name := student.Name
	if name == "" {
		name = "A student"
	}
	if err := uc.tripGW.Notify(ctx, &models.Notification{
		Token: t.Driver.FCMToken,
		Title: "New passenger",
		Body:  fmt.Sprintf("%s joined your trip to %s", name, t.Destination.Route),
		Data:  map[string]string{"tripId": t.ID, "studentId": student.ID},
	}); err != nil {
		logger.WarnCtx(ctx, "Failed to notify driver", logger.String("trip_id", t.ID), logger.Err(err))
	}
}

func (uc *tripUC) GetTrip(ctx context.Context, s *models.Session, id string) (*models.Trip, error) {
	if err := access.RequireSession(s); err != nil {
		return nil, err
	}
	rec, err := uc.tripRepo.GetTrip(ctx, id)
	if err != nil {
		return nil, err
	}
	return uc.resolveOne(ctx, rec)
}

// ListTrips resolves the whole page in one batch per collection. The total
// counts stored trips, including any dropped for dangling references.
func (uc *tripUC) ListTrips(ctx context.Context, s *models.Session, filter models.TripFilter) (*models.Page[models.Trip], error) {
	if err := access.RequireSession(s); err != nil {
		return nil, err
	}
	filter.PageRequest = filter.PageRequest.Normalize(uc.cfg.Trip.DefaultPageSize, uc.cfg.Trip.MaxPageSize)

	records, total, err := uc.tripRepo.ListTrips(ctx, filter)
	if err != nil {
		return nil, err
	}
	trips, err := uc.resolveMany(ctx, records)
	if err != nil {
		return nil, err
	}
	return &models.Page[models.Trip]{Data: trips, Pagination: models.NewPagination(total, filter.PageRequest)}, nil
}

func (uc *tripUC) DeleteTrip(ctx context.Context, s *models.Session, id string) error {
	if err := access.RequireSession(s); err != nil {
		return err
	}
	existing, err := uc.tripRepo.GetTrip(ctx, id)
	if err != nil {
		return err
	}
	if err := access.RequireOwnerOrAdmin(s, existing.DriverID); err != nil {
		return err
	}
	if err := uc.tripRepo.DeleteTrip(ctx, id); err != nil {
		return err
	}
	logger.InfoCtx(ctx, "Trip deleted", logger.String("trip_id", id), logger.String("user_id", s.UserID))
	return nil
}

func (uc *tripUC) GetTripsByIDs(ctx context.Context, ids []string) (map[string]models.Trip, error) {
	found, err := uc.tripRepo.GetTripsByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	records := make([]models.TripRecord, 0, len(found))
	for _, rec := range found {
		records = append(records, rec)
	}
	trips, err := uc.resolveMany(ctx, records)
	if err != nil {
		return nil, err
	}
	out := make(map[string]models.Trip, len(trips))
	for _, t := range trips {
		out[t.ID] = t
	}
	return out, nil
}
