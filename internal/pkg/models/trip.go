package models

import "time"

// TripRecord is a trip as stored, with references reduced to document ids
type TripRecord struct {
	ID            string
	DestinationID string
	BusID         string
	DriverID      string
	OccupantIDs   []string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// HasOccupant reports whether userID already holds a seat
func (t *TripRecord) HasOccupant(userID string) bool {
	for _, id := range t.OccupantIDs {
		if id == userID {
			return true
		}
	}
	return false
}

// Trip is a trip with every reference resolved
type Trip struct {
	ID          string    `json:"id"`
	Destination Route     `json:"destination"`
	Bus         Bus       `json:"bus"`
	Driver      User      `json:"driver"`
	Occupants   []User    `json:"occupants"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type CreateTripRequest struct {
	DestinationID string `json:"destinationId" validate:"required"`
	BusID         string `json:"busId" validate:"required"`
}

// UpdateTripRequest reassigns only the references that are set
type UpdateTripRequest struct {
	ID            string  `json:"-"`
	DestinationID *string `json:"destinationId,omitempty"`
	BusID         *string `json:"busId,omitempty"`
}

// JoinTripRequest adds StudentID, or the caller when empty, to a trip
type JoinTripRequest struct {
	ID        string `json:"-"`
	StudentID string `json:"studentId"`
}

// TripFilter selects trips by occupant first, then by driver
type TripFilter struct {
	StudentID string `query:"studentId"`
	DriverID  string `query:"driverId"`
	PageRequest
}
