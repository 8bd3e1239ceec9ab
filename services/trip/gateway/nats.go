package gateway

import (
	"context"
	"fmt"

	"github.com/piresc/campusride/internal/pkg/constants"
	"github.com/piresc/campusride/internal/pkg/logger"
	"github.com/piresc/campusride/internal/pkg/models"
)

// PublishTripCreated publishes a trip created event to NATS
func (g *TripGW) PublishTripCreated(ctx context.Context, event *models.TripCreatedEvent) error {
	if err := g.natsClient.PublishJSON(constants.SubjectTripCreated, event); err != nil {
		return fmt.Errorf("failed to publish trip created event: %w", err)
	}
	logger.InfoCtx(ctx, "Published trip created event",
		logger.String("trip_id", event.TripID),
		logger.String("driver_id", event.DriverID))
	return nil
}

// PublishTripJoined publishes a trip joined event to NATS
func (g *TripGW) PublishTripJoined(ctx context.Context, event *models.TripJoinedEvent) error {
	if err := g.natsClient.PublishJSON(constants.SubjectTripJoined, event); err != nil {
		return fmt.Errorf("failed to publish trip joined event: %w", err)
	}
	logger.InfoCtx(ctx, "Published trip joined event",
		logger.String("trip_id", event.TripID),
		logger.String("student_id", event.StudentID),
		logger.Int("occupants", event.Occupants))
	return nil
}
