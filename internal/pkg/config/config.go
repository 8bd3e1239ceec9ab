package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/piresc/campusride/internal/pkg/models"
)

// InitConfig loads configPath into the environment when running locally, then reads the environment
func InitConfig(configPath string) *models.Config {
	if GetEnv("APP_ENV", "local") == "local" {
		if err := godotenv.Load(configPath); err != nil {
			log.Println("error loading config from file", err)
		}
	}
	return loadConfigFromEnv()
}

func loadConfigFromEnv() *models.Config {
	configs := &models.Config{}

	configs.App.Name = GetEnv("APP_NAME", "campusride")
	configs.App.Environment = GetEnv("APP_ENV", "local")
	configs.App.Debug = GetEnvAsBool("APP_DEBUG", false)
	configs.App.Version = GetEnv("APP_VERSION", "")

	configs.Server.Host = GetEnv("SERVER_HOST", "")
	configs.Server.Port = GetEnvAsInt("SERVER_PORT", 8080)
	configs.Server.ReadTimeout = GetEnvAsInt("SERVER_READ_TIMEOUT", 15)
	configs.Server.WriteTimeout = GetEnvAsInt("SERVER_WRITE_TIMEOUT", 15)
	configs.Server.ShutdownTimeout = GetEnvAsInt("SERVER_SHUTDOWN_TIMEOUT", 10)
	configs.Server.MaxUploadBytes = GetEnvAsInt64("SERVER_MAX_UPLOAD_BYTES", 5<<20)

	configs.Firebase.ProjectID = GetEnv("FIREBASE_PROJECT_ID", "")
	configs.Firebase.CredentialsFile = GetEnv("FIREBASE_CREDENTIALS_FILE", "")
	configs.Firebase.CredentialsBase64 = GetEnv("FIREBASE_CREDENTIALS_BASE64", "")
	configs.Firebase.StorageBucket = GetEnv("FIREBASE_STORAGE_BUCKET", "")
	configs.Firebase.WebAPIKey = GetEnv("FIREBASE_WEB_API_KEY", "")
	configs.Firebase.IdentityURL = GetEnv("FIREBASE_IDENTITY_URL", "https://identitytoolkit.googleapis.com")
	configs.Firebase.RequestTimeout = GetEnvAsDuration("FIREBASE_REQUEST_TIMEOUT", 10*time.Second)

	configs.Redis.Host = GetEnv("REDIS_HOST", "localhost")
	configs.Redis.Port = GetEnvAsInt("REDIS_PORT", 6379)
	configs.Redis.Password = GetEnv("REDIS_PASSWORD", "")
	configs.Redis.DB = GetEnvAsInt("REDIS_DB", 0)
	configs.Redis.PoolSize = GetEnvAsInt("REDIS_POOL_SIZE", 10)

	configs.NATS.URL = GetEnv("NATS_URL", "nats://localhost:4222")

	configs.NewRelic.LicenseKey = GetEnv("NEW_RELIC_LICENSE_KEY", "")
	configs.NewRelic.AppName = GetEnv("NEW_RELIC_APP_NAME", configs.App.Name)
	configs.NewRelic.Enabled = GetEnvAsBool("NEW_RELIC_ENABLED", false)
	configs.NewRelic.ForwardLogs = GetEnvAsBool("NEW_RELIC_FORWARD_LOGS", false)

	configs.Logger.Level = GetEnv("LOG_LEVEL", "info")
	configs.Logger.FilePath = GetEnv("LOG_FILE_PATH", "")

	configs.Paystack.BaseURL = GetEnv("PAYSTACK_BASE_URL", "https://api.paystack.co")
	configs.Paystack.SecretKey = GetEnv("PAYSTACK_SECRET_KEY", "")
	configs.Paystack.Subunit = GetEnvAsInt64("PAYSTACK_SUBUNIT", 100)
	configs.Paystack.RequestTimeout = GetEnvAsDuration("PAYSTACK_REQUEST_TIMEOUT", 10*time.Second)
	configs.Paystack.MaxRetries = GetEnvAsInt("PAYSTACK_MAX_RETRIES", 3)

	configs.Fare.Min = GetEnvAsInt64("FARE_MIN", 100)
	if configs.Fare.Min < 1 {
		log.Printf("Warning: FARE_MIN must be at least 1, got %d, using 1", configs.Fare.Min)
		configs.Fare.Min = 1
	}
	configs.Fare.Currency = GetEnv("FARE_CURRENCY", "NGN")

	configs.Access.RouteWriteRoles = GetEnvAsRoles("ACCESS_ROUTE_WRITE_ROLES", []models.Role{models.RoleAdmin})
	configs.Access.BusWriteRoles = GetEnvAsRoles("ACCESS_BUS_WRITE_ROLES", []models.Role{models.RoleDriver, models.RoleAdmin})
	configs.Access.TripCreateRoles = GetEnvAsRoles("ACCESS_TRIP_CREATE_ROLES", []models.Role{models.RoleDriver})

	configs.Trip.EnforceCapacity = GetEnvAsBool("TRIP_ENFORCE_CAPACITY", true)
	configs.Trip.DefaultPageSize = GetEnvAsInt("TRIP_DEFAULT_PAGE_SIZE", 10)
	configs.Trip.MaxPageSize = GetEnvAsInt("TRIP_MAX_PAGE_SIZE", 100)

	configs.Cache.ProfileTTL = GetEnvAsDuration("CACHE_PROFILE_TTL", 10*time.Minute)

	return configs
}

func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer value for %s, using default: %d", key, defaultValue)
		return defaultValue
	}
	return value
}

func GetEnvAsInt64(key string, defaultValue int64) int64 {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseInt(valueStr, 10, 64)
	if err != nil {
		log.Printf("Warning: Invalid int64 value for %s, using default: %d", key, defaultValue)
		return defaultValue
	}
	return value
}

func GetEnvAsBool(key string, defaultValue bool) bool {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid boolean value for %s, using default: %v", key, defaultValue)
		return defaultValue
	}
	return value
}

// GetEnvAsDuration accepts Go duration strings such as "30s" or "5m"
func GetEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid duration value for %s, using default: %s", key, defaultValue)
		return defaultValue
	}
	return value
}

// GetEnvAsStrings splits a comma separated list, dropping empty items
func GetEnvAsStrings(key string, defaultValue []string) []string {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(valueStr, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}

// GetEnvAsRoles reads a comma separated role list. Unknown roles are skipped.
func GetEnvAsRoles(key string, defaultValue []models.Role) []models.Role {
	var roles []models.Role
	for _, s := range GetEnvAsStrings(key, nil) {
		r, ok := models.ParseRole(s)
		if !ok {
			log.Printf("Warning: Unknown role %q in %s, skipping", s, key)
			continue
		}
		roles = append(roles, r)
	}
	if len(roles) == 0 {
		return defaultValue
	}
	return roles
}
