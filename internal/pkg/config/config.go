package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server    ServerConfig
	DB        DBConfig
	CORS      CORSConfig
	Log       LogConfig
	Cron      CronConfig
	Notify    NotifyConfig
	Push      PushConfig
	Ephemeris EphemerisConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

// CronConfig governs the dispatch endpoints and the optional in-process
// scheduler. CRON_SECRET empty disables bearer auth (local development only).
type CronConfig struct {
	Secret          string `envconfig:"CRON_SECRET" default:""`
	SweepTopN       int    `envconfig:"CRON_SWEEP_TOP_N" default:"2"`
	DigestTopN      int    `envconfig:"CRON_DIGEST_TOP_N" default:"5"`
	PreviewTopN     int    `envconfig:"CRON_PREVIEW_TOP_N" default:"5"`
	KeepDays        int    `envconfig:"CRON_KEEP_DAYS" default:"1"`
	EnableScheduler bool   `envconfig:"CRON_ENABLE_SCHEDULER" default:"false"`
	SweepSpec       string `envconfig:"CRON_SWEEP_SPEC" default:"0 */4 * * *"`
	DigestSpec      string `envconfig:"CRON_DIGEST_SPEC" default:"0 9 * * *"`
	QuietHours      bool   `envconfig:"CRON_QUIET_HOURS" default:"false"`
	QuietStartHour  int    `envconfig:"CRON_QUIET_START_HOUR" default:"22"`
	QuietEndHour    int    `envconfig:"CRON_QUIET_END_HOUR" default:"8"`
}

// NotifyConfig exposes the knobs the dispatch call sites historically
// disagreed on.
type NotifyConfig struct {
	Priority8Scope     string `envconfig:"NOTIFY_PRIORITY8_SCOPE" default:"seasonal"`
	IngressPriority    int    `envconfig:"NOTIFY_INGRESS_PRIORITY" default:"4"`
	RetrogradePriority int    `envconfig:"NOTIFY_RETROGRADE_PRIORITY" default:"6"`
}

type PushConfig struct {
	BaseURL string        `envconfig:"PUSH_BASE_URL" required:"true"`
	Timeout time.Duration `envconfig:"PUSH_TIMEOUT" default:"10s"`
}

type EphemerisConfig struct {
	BaseURL string        `envconfig:"EPHEMERIS_BASE_URL" required:"true"`
	Timeout time.Duration `envconfig:"EPHEMERIS_TIMEOUT" default:"10s"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
		Cron: CronConfig{
			Secret:      "test-cron-secret",
			SweepTopN:   2,
			DigestTopN:  5,
			PreviewTopN: 5,
			KeepDays:    1,
		},
		Notify: NotifyConfig{
			Priority8Scope:     "seasonal",
			IngressPriority:    4,
			RetrogradePriority: 6,
		},
		Push: PushConfig{
			BaseURL: "http://localhost:18081",
			Timeout: 2 * time.Second,
		},
		Ephemeris: EphemerisConfig{
			BaseURL: "http://localhost:18082",
			Timeout: 2 * time.Second,
		},
	}
}
