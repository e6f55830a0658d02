package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultValues(t *testing.T) {
	os.Clearenv()

	cfg, err := Load()
	require.NoError(t, err)
	assert.NotNil(t, cfg)

	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "postgres", cfg.Database.User)
	assert.Equal(t, "shramik", cfg.Database.Database)
	assert.Equal(t, "disable", cfg.Database.SSLMode)

	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, "", cfg.Redis.Password)
	assert.Equal(t, 0, cfg.Redis.DB)

	assert.Equal(t, "surveillance:reports", cfg.Surveillance.ReportStream)
	assert.Equal(t, "surveillance-group", cfg.Surveillance.ConsumerGroup)
	assert.Equal(t, 24, cfg.Surveillance.WindowHours)
	assert.Equal(t, 5, cfg.Surveillance.MinReports)
	assert.Equal(t, 2, cfg.Surveillance.MinSevereCritical)
	assert.Equal(t, 3, cfg.Surveillance.CriticalThreshold)
	assert.Equal(t, 10.0, cfg.Surveillance.HotspotScoreGate)
	assert.Equal(t, 0, cfg.Surveillance.HotspotStaleAfterHours)

	assert.Equal(t, "health:alerts", cfg.Alerts.Stream)
	assert.Equal(t, "shramik/alerts/", cfg.Alerts.TopicPrefix)
	assert.False(t, cfg.Alerts.SMSEnabled)

	assert.Equal(t, "en", cfg.Catalog.DefaultLanguage)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoad_EnvironmentVariables(t *testing.T) {
	os.Setenv("DB_HOST", "test-host")
	os.Setenv("DB_USER", "test-user")
	os.Setenv("DB_NAME", "test-db")
	os.Setenv("REDIS_ADDR", "test-redis:6380")
	os.Setenv("SURVEILLANCE_WINDOW_HOURS", "48")
	os.Setenv("SURVEILLANCE_HOTSPOT_SCORE_GATE", "12.5")
	os.Setenv("SMS_GATEWAY_URL", "https://sms.example.test/send")
	os.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)
	assert.NotNil(t, cfg)

	assert.Equal(t, "test-host", cfg.Database.Host)
	assert.Equal(t, "test-user", cfg.Database.User)
	assert.Equal(t, "test-db", cfg.Database.Database)

	assert.Equal(t, "test-redis:6380", cfg.Redis.Addr)

	assert.Equal(t, 48, cfg.Surveillance.WindowHours)
	assert.Equal(t, 12.5, cfg.Surveillance.HotspotScoreGate)

	assert.True(t, cfg.Alerts.SMSEnabled)
	assert.Equal(t, "https://sms.example.test/send", cfg.Alerts.SMSGatewayURL)

	assert.Equal(t, "debug", cfg.Log.Level)

	os.Clearenv()
}

func TestLoad_InvalidIntFallsBackToDefault(t *testing.T) {
	os.Clearenv()
	os.Setenv("SURVEILLANCE_WINDOW_HOURS", "not-a-number")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 24, cfg.Surveillance.WindowHours)

	os.Clearenv()
}

func TestGetEnv(t *testing.T) {
	os.Clearenv()
	value := getEnv("TEST_KEY", "default-value")
	assert.Equal(t, "default-value", value)

	os.Setenv("TEST_KEY", "env-value")
	value = getEnv("TEST_KEY", "default-value")
	assert.Equal(t, "env-value", value)

	os.Unsetenv("TEST_KEY")
}

func TestParseContacts(t *testing.T) {
	contacts := parseContacts("Ernakulam=+911234567890, Kollam=+919876543210")
	assert.Equal(t, map[string]string{
		"Ernakulam": "+911234567890",
		"Kollam":    "+919876543210",
	}, contacts)

	assert.Empty(t, parseContacts(""))

	// Malformed entries are skipped, valid ones kept.
	contacts = parseContacts("Ernakulam=+911234567890,broken,=x,y=")
	assert.Equal(t, map[string]string{"Ernakulam": "+911234567890"}, contacts)
}
