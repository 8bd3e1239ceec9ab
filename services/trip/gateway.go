package trip

import (
	"context"

	"github.com/piresc/campusride/internal/pkg/models"
)

// go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/campusride/services/trip TripGW

// TripGW publishes trip events and push notifications
type TripGW interface {
	PublishTripCreated(ctx context.Context, event *models.TripCreatedEvent) error
	PublishTripJoined(ctx context.Context, event *models.TripJoinedEvent) error
	Notify(ctx context.Context, n *models.Notification) error
}
