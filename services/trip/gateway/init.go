package gateway

import (
	natspkg "github.com/piresc/campusride/internal/pkg/nats"
	"github.com/piresc/campusride/services/trip"
)

// TripGW handles trip event publishing and driver notifications
type TripGW struct {
	natsClient *natspkg.Client
	messenger  Messenger
}

// NewTripGW creates a new trip gateway. A nil messenger disables push notifications.
func NewTripGW(client *natspkg.Client, messenger Messenger) trip.TripGW {
	return &TripGW{
		natsClient: client,
		messenger:  messenger,
	}
}
