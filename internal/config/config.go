package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Log    LogConfig
	Queue  QueueConfig
	Import ImportConfig
	Export ExportConfig
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// QueueConfig holds import queue worker settings.
type QueueConfig struct {
	PollIntervalSecs int `mapstructure:"poll_interval_secs"`
	Concurrency      int `mapstructure:"concurrency"`
}

// PollInterval returns the poll interval as a duration.
func (q *QueueConfig) PollInterval() time.Duration {
	return time.Duration(q.PollIntervalSecs) * time.Second
}

// ImportConfig holds estimate ingestion settings.
type ImportConfig struct {
	Bucket        string `mapstructure:"bucket"`
	MaxFileSizeMB int64  `mapstructure:"max_file_size_mb"`
}

// ExportConfig holds export output settings.
type ExportConfig struct {
	// Format is the default CLI output: json, csv or xlsx.
	Format string `mapstructure:"format"`
	Dir    string `mapstructure:"dir"`
}

// Load reads configuration from environment variables with the
// COLLISIONOS_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("COLLISIONOS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// Queue defaults
	v.SetDefault("queue.poll_interval_secs", 5)
	v.SetDefault("queue.concurrency", 4)

	// Import defaults
	v.SetDefault("import.bucket", "collisionos-uploads")
	v.SetDefault("import.max_file_size_mb", 25)

	// Export defaults
	v.SetDefault("export.format", "json")
	v.SetDefault("export.dir", ".")

	// Explicit env bindings so AutomaticEnv sees nested keys.
	for key, env := range map[string]string{
		"log.level":                "COLLISIONOS_LOG_LEVEL",
		"log.format":               "COLLISIONOS_LOG_FORMAT",
		"queue.poll_interval_secs": "COLLISIONOS_QUEUE_POLL_INTERVAL_SECS",
		"queue.concurrency":        "COLLISIONOS_QUEUE_CONCURRENCY",
		"import.bucket":            "COLLISIONOS_IMPORT_BUCKET",
		"import.max_file_size_mb":  "COLLISIONOS_IMPORT_MAX_FILE_SIZE_MB",
		"export.format":            "COLLISIONOS_EXPORT_FORMAT",
		"export.dir":               "COLLISIONOS_EXPORT_DIR",
	} {
		if err := v.BindEnv(key, env); err != nil {
			return nil, err
		}
	}

	cfg := &Config{
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
		},
		Queue: QueueConfig{
			PollIntervalSecs: v.GetInt("queue.poll_interval_secs"),
			Concurrency:      v.GetInt("queue.concurrency"),
		},
		Import: ImportConfig{
			Bucket:        v.GetString("import.bucket"),
			MaxFileSizeMB: v.GetInt64("import.max_file_size_mb"),
		},
		Export: ExportConfig{
			Format: v.GetString("export.format"),
			Dir:    v.GetString("export.dir"),
		},
	}
	return cfg, nil
}
