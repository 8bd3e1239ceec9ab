package constants

// Firestore collections
const (
	CollectionUsers        = "users"
	CollectionRoutes       = "routes"
	CollectionBuses        = "buses"
	CollectionTrips        = "trips"
	CollectionTransactions = "transactions"
)

// Firestore field paths used in queries and partial updates
const (
	FieldID          = "id"
	FieldDriver      = "driver"
	FieldStudent     = "student"
	FieldTrip        = "trip"
	FieldOccupants   = "occupants"
	FieldDestination = "destination"
	FieldBus         = "bus"
	FieldSeats       = "seats"
	FieldRoute       = "route"
	FieldCost        = "cost"
	FieldName        = "name"
	FieldFCMToken    = "fcmToken"
	FieldCreatedAt   = "createdAt"
	FieldUpdatedAt   = "updatedAt"
)
