package models

import "time"

// TransactionRecord is a payment record as stored
type TransactionRecord struct {
	ID        string
	DriverID  string
	StudentID string
	TripID    string
	Amount    int64
	Reference string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Transaction is a payment record with its parties and trip resolved
type Transaction struct {
	ID        string    `json:"id"`
	Driver    User      `json:"driver"`
	Student   User      `json:"student"`
	Trip      Trip      `json:"trip"`
	Amount    int64     `json:"amount"`
	Reference string    `json:"reference,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type CreateTransactionRequest struct {
	DriverID  string `json:"driverId" validate:"required"`
	StudentID string `json:"studentId" validate:"required"`
	TripID    string `json:"tripId" validate:"required"`
	Amount    int64  `json:"amount" validate:"gt=0"`
}

// TransactionQuery locates one transaction. TrnxID wins over StudentID, which wins over DriverID.
type TransactionQuery struct {
	TrnxID    string `query:"trnxId"`
	StudentID string `query:"studentId"`
	DriverID  string `query:"driverId"`
}

// TransactionFilter selects transactions by student first, then by driver
type TransactionFilter struct {
	StudentID string `query:"studentId"`
	DriverID  string `query:"driverId"`
	PageRequest
}

// CheckoutRequest records a verified payment and reserves the seat it paid for
type CheckoutRequest struct {
	TripID    string `json:"tripId" validate:"required"`
	Reference string `json:"reference" validate:"required"`
}

// CheckoutResult reports the recorded transaction and whether this call created it
type CheckoutResult struct {
	Transaction Transaction `json:"transaction"`
	Created     bool        `json:"created"`
}

// RecordedCheckout is the outcome of recording a paid seat. Joined is false
// when the student already held the seat.
type RecordedCheckout struct {
	Transaction TransactionRecord
	Created     bool
	Joined      bool
	Occupants   int
}
