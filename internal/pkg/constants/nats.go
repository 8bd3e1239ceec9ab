package constants

// NATS Subjects
const (
	SubjectTripCreated         = "trip.created"
	SubjectTripJoined          = "trip.joined"
	SubjectTransactionRecorded = "transaction.recorded"
)
