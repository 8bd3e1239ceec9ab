package models

import "time"

// Route is a named destination with a fixed fare in whole currency units
type Route struct {
	ID        string    `json:"id"`
	Route     string    `json:"route"`
	Cost      int64     `json:"cost"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type CreateRouteRequest struct {
	Route string `json:"route" validate:"required"`
	Cost  int64  `json:"cost"`
}

// UpdateRouteRequest changes only the fields that are set
type UpdateRouteRequest struct {
	ID    string  `json:"-"`
	Route *string `json:"route,omitempty"`
	Cost  *int64  `json:"cost,omitempty"`
}
