package constants

// Redis key formats
const (
	KeyUserProfile = "user:profile:%s" // Format: user:profile:{user_id}
)
