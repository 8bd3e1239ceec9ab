package models

import "time"

// Config represents application configuration
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Firebase FirebaseConfig
	Redis    RedisConfig
	NATS     NATSConfig
	NewRelic NewRelicConfig
	Logger   LoggerConfig
	Paystack PaystackConfig
	Fare     FareConfig
	Access   AccessConfig
	Trip     TripConfig
	Cache    CacheConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
	MaxUploadBytes  int64
}

// FirebaseConfig points at the project and its service account.
// CredentialsFile wins over CredentialsBase64 when both are set.
type FirebaseConfig struct {
	ProjectID         string
	CredentialsFile   string
	CredentialsBase64 string
	StorageBucket     string
	WebAPIKey         string
	IdentityURL       string
	RequestTimeout    time.Duration
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NATSConfig contains NATS connection configuration
type NATSConfig struct {
	URL string
}

type NewRelicConfig struct {
	LicenseKey  string
	AppName     string
	Enabled     bool
	ForwardLogs bool
}

type LoggerConfig struct {
	Level    string
	FilePath string
}

// PaystackConfig configures server-side payment verification
type PaystackConfig struct {
	BaseURL        string
	SecretKey      string
	Subunit        int64 // minor units per whole currency unit, 100 for kobo
	RequestTimeout time.Duration
	MaxRetries     int
}

// FareConfig holds fare bounds in whole currency units
type FareConfig struct {
	Min      int64
	Currency string
}

// AccessConfig lists the roles allowed to perform privileged writes
type AccessConfig struct {
	RouteWriteRoles []Role
	BusWriteRoles   []Role
	TripCreateRoles []Role
}

type TripConfig struct {
	EnforceCapacity bool
	DefaultPageSize int
	MaxPageSize     int
}

type CacheConfig struct {
	ProfileTTL time.Duration
}
