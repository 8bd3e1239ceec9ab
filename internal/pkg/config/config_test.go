package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/piresc/campusride/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigFromEnv_Defaults(t *testing.T) {
	cfg := loadConfigFromEnv()

	assert.Equal(t, int64(100), cfg.Fare.Min)
	assert.Equal(t, int64(100), cfg.Paystack.Subunit)
	assert.True(t, cfg.Trip.EnforceCapacity)
	assert.Equal(t, []models.Role{models.RoleAdmin}, cfg.Access.RouteWriteRoles)
	assert.Equal(t, []models.Role{models.RoleDriver}, cfg.Access.TripCreateRoles)
	assert.Equal(t, 10*time.Minute, cfg.Cache.ProfileTTL)
}

func TestLoadConfigFromEnv_Overrides(t *testing.T) {
	t.Setenv("FARE_MIN", "250")
	t.Setenv("TRIP_ENFORCE_CAPACITY", "false")
	t.Setenv("ACCESS_TRIP_CREATE_ROLES", "Driver, ADMIN, pilot")
	t.Setenv("CACHE_PROFILE_TTL", "30s")

	cfg := loadConfigFromEnv()

	assert.Equal(t, int64(250), cfg.Fare.Min)
	assert.False(t, cfg.Trip.EnforceCapacity)
	assert.Equal(t, []models.Role{models.RoleDriver, models.RoleAdmin}, cfg.Access.TripCreateRoles)
	assert.Equal(t, 30*time.Second, cfg.Cache.ProfileTTL)
}

func TestLoadConfigFromEnv_FareMinAtLeastOne(t *testing.T) {
	for _, v := range []string{"0", "-5"} {
		t.Run(v, func(t *testing.T) {
			t.Setenv("FARE_MIN", v)

			cfg := loadConfigFromEnv()

			assert.Equal(t, int64(1), cfg.Fare.Min)
		})
	}
}

func TestGetEnvHelpers_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("TEST_INT", "abc")
	t.Setenv("TEST_BOOL", "maybe")
	t.Setenv("TEST_DURATION", "soon")

	assert.Equal(t, 7, GetEnvAsInt("TEST_INT", 7))
	assert.True(t, GetEnvAsBool("TEST_BOOL", true))
	assert.Equal(t, time.Second, GetEnvAsDuration("TEST_DURATION", time.Second))
}

func TestGetEnvAsStrings(t *testing.T) {
	t.Setenv("TEST_LIST", " a, ,b ,c")
	assert.Equal(t, []string{"a", "b", "c"}, GetEnvAsStrings("TEST_LIST", nil))

	t.Setenv("TEST_LIST", " , ")
	assert.Equal(t, []string{"x"}, GetEnvAsStrings("TEST_LIST", []string{"x"}))
}

func TestInitConfig_LoadsEnvFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("FARE_CURRENCY=GHS\n"), 0o600))
	t.Setenv("APP_ENV", "local")
	t.Cleanup(func() { os.Unsetenv("FARE_CURRENCY") })

	cfg := InitConfig(path)

	assert.Equal(t, "GHS", cfg.Fare.Currency)
}
