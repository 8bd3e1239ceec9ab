package models

import "time"

type Bus struct {
	ID        string    `json:"id"`
	Seats     int       `json:"seats"`
	DriverID  string    `json:"driver"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type CreateBusRequest struct {
	Seats int `json:"seats"`
}

type UpdateBusRequest struct {
	ID    string `json:"-"`
	Seats int    `json:"seats"`
}

// BusFilter narrows a bus listing to one driver when DriverID is set
type BusFilter struct {
	DriverID string `query:"driverId"`
	PageRequest
}
