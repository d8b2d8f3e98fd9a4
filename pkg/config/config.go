// Package config reads the process settings from the environment, after
// loading an optional .env file.
package config

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	z "github.com/Oudwins/zog"
	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"

	"liyu1981.xyz/glucose-tracker/pkg/common"
)

const (
	DefaultHTTPHostPort   = ":1080"
	DefaultDBType         = "file"
	DefaultRate           = 10.0
	DefaultBurst          = 20
	DefaultEventQueueSize = 64
	DefaultLogLevel       = "info"
)

type Config struct {
	DBType string `zog:"db_type"`
	DBDSN  string `zog:"db_dsn"`

	HTTPHostPort string `zog:"http_host_port"`
	GRPCHostPort string `zog:"grpc_host_port"`

	DefaultRate  float64 `zog:"default_rate"`
	DefaultBurst int     `zog:"default_burst"`

	ExactAlarms    bool   `zog:"exact_alarms"`
	Notifications  bool   `zog:"notifications"`
	Timezone       string `zog:"timezone"`
	EventQueueSize int    `zog:"event_queue_size"`

	LogDir        string `zog:"log_dir"`
	LogLevel      string `zog:"log_level"`
	LogMaxSizeMB  int    `zog:"log_max_size_mb"`
	LogMaxBackups int    `zog:"log_max_backups"`
	LogMaxAgeDays int    `zog:"log_max_age_days"`

	Location *time.Location
}

var configSchema = z.Struct(z.Shape{
	"DBType":         z.String().OneOf([]string{"file", "pure", "memory", "postgres"}).Required(),
	"DBDSN":          z.String(),
	"HTTPHostPort":   z.String().Min(1).Required(),
	"GRPCHostPort":   z.String(),
	"DefaultRate":    z.Float64().GT(0).Required(),
	"DefaultBurst":   z.Int().GTE(1).Required(),
	"ExactAlarms":    z.Bool(),
	"Notifications":  z.Bool(),
	"Timezone":       z.String(),
	"EventQueueSize": z.Int().GTE(1).Required(),
	"LogDir":         z.String(),
	"LogLevel":       z.String().OneOf([]string{"debug", "info", "warn", "error"}).Required(),
	"LogMaxSizeMB":   z.Int().GTE(1).Required(),
	"LogMaxBackups":  z.Int().GTE(0),
	"LogMaxAgeDays":  z.Int().GTE(0),
})

func getEnvOrDefault(key, fallback string) string {
	if v, found := os.LookupEnv(key); found && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	return fallback
}

// Load reads .env when present, then the environment. Unset keys take their
// defaults; values that are set must be valid.
func Load() (*Config, error) {
	// a missing .env is fine, the environment may carry everything
	_ = godotenv.Load()
	return FromEnv()
}

func FromEnv() (*Config, error) {
	logDefaults := common.DefaultLogOptions()
	data := map[string]any{
		"db_type":          getEnvOrDefault(common.EnvKeyHealthDBType, DefaultDBType),
		"db_dsn":           getEnvOrDefault(common.EnvKeyHealthDbDSN, ""),
		"http_host_port":   getEnvOrDefault(common.EnvKeyHealthHttpHostPort, DefaultHTTPHostPort),
		"grpc_host_port":   getEnvOrDefault(common.EnvKeyHealthGrpcHostPort, ""),
		"default_rate":     getEnvOrDefault(common.EnvKeyHealthDefaultRate, fmt.Sprint(DefaultRate)),
		"default_burst":    getEnvOrDefault(common.EnvKeyHealthDefaultBurst, fmt.Sprint(DefaultBurst)),
		"exact_alarms":     getEnvOrDefault(common.EnvKeyHealthExactAlarms, "true"),
		"notifications":    getEnvOrDefault(common.EnvKeyHealthNotifications, "true"),
		"timezone":         getEnvOrDefault(common.EnvKeyHealthTimezone, ""),
		"event_queue_size": getEnvOrDefault(common.EnvKeyHealthEventQueue, fmt.Sprint(DefaultEventQueueSize)),
		"log_dir":          logDefaults.Dir,
		"log_level":        getEnvOrDefault(common.EnvKeyHealthLogLevel, DefaultLogLevel),
		"log_max_size_mb":  getEnvOrDefault(common.EnvKeyHealthLogMaxSizeMB, fmt.Sprint(logDefaults.MaxSizeMB)),
		"log_max_backups":  getEnvOrDefault(common.EnvKeyHealthLogMaxBackups, fmt.Sprint(logDefaults.MaxBackups)),
		"log_max_age_days": getEnvOrDefault(common.EnvKeyHealthLogMaxAgeDays, fmt.Sprint(logDefaults.MaxAgeDays)),
	}

	var cfg Config
	if issues := configSchema.Parse(data, &cfg); issues != nil {
		return nil, common.NewError(common.ErrorTypeValidation, "INVALID_CONFIG", "invalid configuration: "+issuesMessage(issues))
	}

	if cfg.DBType == "postgres" && cfg.DBDSN == "" {
		return nil, common.NewError(common.ErrorTypeValidation, "INVALID_CONFIG",
			fmt.Sprintf("%s is required when %s=postgres", common.EnvKeyHealthDbDSN, common.EnvKeyHealthDBType))
	}

	cfg.Location = time.Local
	if cfg.Timezone != "" {
		loc, err := time.LoadLocation(cfg.Timezone)
		if err != nil {
			return nil, common.WrapError(err, common.ErrorTypeValidation, "INVALID_CONFIG",
				fmt.Sprintf("unknown %s %q", common.EnvKeyHealthTimezone, cfg.Timezone))
		}
		cfg.Location = loc
	}

	return &cfg, nil
}

// LogOptions turns the log settings into what common.InitLogger takes.
func (c *Config) LogOptions() common.LogOptions {
	level, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		level = zapcore.InfoLevel
	}
	return common.LogOptions{
		Dir:        c.LogDir,
		Level:      level,
		MaxSizeMB:  c.LogMaxSizeMB,
		MaxBackups: c.LogMaxBackups,
		MaxAgeDays: c.LogMaxAgeDays,
	}
}

func issuesMessage(issues z.ZogIssueMap) string {
	keys := make([]string, 0, len(issues))
	for key := range issues {
		// zog keeps a copy of the first issue under "$first"
		if strings.HasPrefix(key, "$") {
			continue
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		for _, issue := range issues[key] {
			parts = append(parts, key+": "+issue.Message)
		}
	}
	return strings.Join(parts, "; ")
}
