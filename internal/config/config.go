package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
	SSLMode  string
	MaxConns int
	MaxIdle  int
}

// GetDSN builds the lib/pq connection string.
func (c *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Database, c.SSLMode)
}

// RedisConfig holds Redis connection settings.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// MQTTConfig holds MQTT broker settings for alert fan-out.
type MQTTConfig struct {
	Broker   string
	ClientID string
	Username string
	Password string
	QoS      byte
}

// Config is the configuration for the surveillance engine.
type Config struct {
	Database DatabaseConfig
	Redis    RedisConfig
	MQTT     MQTTConfig

	// Surveillance pipeline configuration
	Surveillance struct {
		// Redis Streams used to decouple report intake from outbreak
		// detection. Submission publishes, the worker consumes.
		ReportStream  string // e.g. "surveillance:reports"
		ConsumerGroup string // e.g. "surveillance-group"
		ConsumerName  string // e.g. "surveillance-1"
		BatchSize     int    // messages per read, default 10

		// Trailing window (hours) scanned when evaluating a district.
		WindowHours int

		// Hotspot activation thresholds
		MinReports         int     // total reports threshold, default 5
		MinSevereCritical  int     // severe/critical threshold, default 2
		CriticalThreshold  int     // severe/critical count for critical level, default 3
		HotspotScoreGate   float64 // aggregated contribution threshold, default 10

		// Hotspot staleness (hours). 0 disables the sweep: hotspots then
		// stay active until deactivated externally.
		HotspotStaleAfterHours int

		// Cache of active hotspots for dashboards
		HotspotCachePrefix string // e.g. "surveillance:hotspot:"
		HotspotCacheTTL    int    // seconds, default 300
	}

	// Alert dispatch configuration
	Alerts struct {
		Stream      string // alert event stream, e.g. "health:alerts"
		TopicPrefix string // MQTT topic prefix, e.g. "shramik/alerts/"

		// SMS gateway for health-authority notifications
		SMSGatewayURL string
		SMSAPIKey     string
		SMSEnabled    bool

		// Per-district health authority contact numbers, parsed from
		// "district=number,district=number".
		AuthorityContacts map[string]string
	}

	// Catalog configuration. When WorkbookPath is empty the compiled-in
	// reference catalogs are used.
	Catalog struct {
		WorkbookPath    string
		DefaultLanguage string
	}

	Log struct {
		Level  string
		Format string
	}
}

// Load reads configuration from environment variables with defaults.
func Load() (*Config, error) {
	cfg := &Config{}

	cfg.Database.Host = getEnv("DB_HOST", "localhost")
	cfg.Database.Port = getEnvInt("DB_PORT", 5432)
	cfg.Database.User = getEnv("DB_USER", "postgres")
	cfg.Database.Password = getEnv("DB_PASSWORD", "postgres")
	cfg.Database.Database = getEnv("DB_NAME", "shramik")
	cfg.Database.SSLMode = getEnv("DB_SSLMODE", "disable")
	cfg.Database.MaxConns = getEnvInt("DB_MAX_CONNS", 10)
	cfg.Database.MaxIdle = getEnvInt("DB_MAX_IDLE", 5)

	cfg.Redis.Addr = getEnv("REDIS_ADDR", "localhost:6379")
	cfg.Redis.Password = getEnv("REDIS_PASSWORD", "")
	cfg.Redis.DB = getEnvInt("REDIS_DB", 0)

	cfg.MQTT.Broker = getEnv("MQTT_BROKER", "tcp://localhost:1883")
	cfg.MQTT.ClientID = getEnv("MQTT_CLIENT_ID", "shramik-surveillance")
	cfg.MQTT.Username = getEnv("MQTT_USERNAME", "")
	cfg.MQTT.Password = getEnv("MQTT_PASSWORD", "")
	cfg.MQTT.QoS = 1

	cfg.Surveillance.ReportStream = getEnv("SURVEILLANCE_REPORT_STREAM", "surveillance:reports")
	cfg.Surveillance.ConsumerGroup = getEnv("SURVEILLANCE_CONSUMER_GROUP", "surveillance-group")
	cfg.Surveillance.ConsumerName = getEnv("SURVEILLANCE_CONSUMER_NAME", "surveillance-1")
	cfg.Surveillance.BatchSize = getEnvInt("SURVEILLANCE_BATCH_SIZE", 10)
	cfg.Surveillance.WindowHours = getEnvInt("SURVEILLANCE_WINDOW_HOURS", 24)
	cfg.Surveillance.MinReports = getEnvInt("SURVEILLANCE_MIN_REPORTS", 5)
	cfg.Surveillance.MinSevereCritical = getEnvInt("SURVEILLANCE_MIN_SEVERE_CRITICAL", 2)
	cfg.Surveillance.CriticalThreshold = getEnvInt("SURVEILLANCE_CRITICAL_THRESHOLD", 3)
	cfg.Surveillance.HotspotScoreGate = getEnvFloat("SURVEILLANCE_HOTSPOT_SCORE_GATE", 10)
	cfg.Surveillance.HotspotStaleAfterHours = getEnvInt("SURVEILLANCE_HOTSPOT_STALE_AFTER_HOURS", 0)
	cfg.Surveillance.HotspotCachePrefix = getEnv("SURVEILLANCE_HOTSPOT_CACHE_PREFIX", "surveillance:hotspot:")
	cfg.Surveillance.HotspotCacheTTL = getEnvInt("SURVEILLANCE_HOTSPOT_CACHE_TTL", 300)

	cfg.Alerts.Stream = getEnv("ALERTS_STREAM", "health:alerts")
	cfg.Alerts.TopicPrefix = getEnv("ALERTS_TOPIC_PREFIX", "shramik/alerts/")
	cfg.Alerts.SMSGatewayURL = getEnv("SMS_GATEWAY_URL", "")
	cfg.Alerts.SMSAPIKey = getEnv("SMS_API_KEY", "")
	cfg.Alerts.SMSEnabled = cfg.Alerts.SMSGatewayURL != ""
	cfg.Alerts.AuthorityContacts = parseContacts(getEnv("ALERTS_AUTHORITY_CONTACTS", ""))

	cfg.Catalog.WorkbookPath = getEnv("CATALOG_WORKBOOK_PATH", "")
	cfg.Catalog.DefaultLanguage = getEnv("CATALOG_DEFAULT_LANGUAGE", "en")

	cfg.Log.Level = getEnv("LOG_LEVEL", "info")
	cfg.Log.Format = getEnv("LOG_FORMAT", "json")

	return cfg, nil
}

// parseContacts parses "Ernakulam=+911234,Kollam=+915678" into a map.
// Malformed entries are skipped.
func parseContacts(raw string) map[string]string {
	contacts := make(map[string]string)
	if raw == "" {
		return contacts
	}

	for _, entry := range strings.Split(raw, ",") {
		parts := strings.SplitN(strings.TrimSpace(entry), "=", 2)
		if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
			continue
		}
		contacts[parts[0]] = parts[1]
	}

	return contacts
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if v, err := strconv.Atoi(value); err == nil {
			return v
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if v, err := strconv.ParseFloat(value, 64); err == nil {
			return v
		}
	}
	return defaultValue
}
