package models

import "time"

type TripCreatedEvent struct {
	TripID        string    `json:"trip_id"`
	DriverID      string    `json:"driver_id"`
	DestinationID string    `json:"destination_id"`
	BusID         string    `json:"bus_id"`
	CreatedAt     time.Time `json:"created_at"`
}

type TripJoinedEvent struct {
	TripID    string    `json:"trip_id"`
	DriverID  string    `json:"driver_id"`
	StudentID string    `json:"student_id"`
	Occupants int       `json:"occupants"`
	JoinedAt  time.Time `json:"joined_at"`
}

type TransactionRecordedEvent struct {
	TransactionID string    `json:"transaction_id"`
	TripID        string    `json:"trip_id"`
	DriverID      string    `json:"driver_id"`
	StudentID     string    `json:"student_id"`
	Amount        int64     `json:"amount"`
	Reference     string    `json:"reference,omitempty"`
	RecordedAt    time.Time `json:"recorded_at"`
}

// Notification is a push message addressed to one device
type Notification struct {
	Token string
	Title string
	Body  string
	Data  map[string]string
}
