package config

import (
	"time"

	"github.com/spf13/viper"
)

type (
	Config struct {
		HTTP
		Global
		Database
		Export
		TrashPurge
		AI
	}

	HTTP struct {
		Port int32
		Host string
	}
	Global struct {
		ShutdownTimeoutInSeconds int
	}
	Database struct {
		DataDir  string
		PageSize int
	}
	Export struct {
		Dir string // Directory for markdown exports
	}
	TrashPurge struct {
		Enabled   bool
		Schedule  string        // Cron format: "0 3 * * *" = daily at 03:00
		Retention time.Duration // How long trash items are kept
	}
	AI struct {
		APIKey  string
		BaseURL string
		Model   string
	}
)

func NewConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("port", 8190)
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("shutdown_timeout_in_seconds", 2)
	v.SetDefault("data_dir", DefaultDataDir)
	v.SetDefault("page_size", DefaultPageSize)
	v.SetDefault("export_dir", DefaultExportDir)

	// Trash auto-purge defaults
	v.SetDefault("trash_purge_enabled", false)
	v.SetDefault("trash_purge_schedule", "0 3 * * *") // Daily at 03:00
	v.SetDefault("trash_retention", "720h")           // 30 days

	// AI generation defaults
	v.SetDefault("ai_api_key", "")
	v.SetDefault("ai_base_url", "")
	v.SetDefault("ai_model", "")

	return &Config{
		HTTP: HTTP{
			Port: v.GetInt32("PORT"),
			Host: v.GetString("HOST"),
		},
		Global: Global{
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
		},
		Database: Database{
			DataDir:  v.GetString("DATA_DIR"),
			PageSize: v.GetInt("PAGE_SIZE"),
		},
		Export: Export{
			Dir: v.GetString("EXPORT_DIR"),
		},
		TrashPurge: TrashPurge{
			Enabled:   v.GetBool("TRASH_PURGE_ENABLED"),
			Schedule:  v.GetString("TRASH_PURGE_SCHEDULE"),
			Retention: v.GetDuration("TRASH_RETENTION"),
		},
		AI: AI{
			APIKey:  v.GetString("AI_API_KEY"),
			BaseURL: v.GetString("AI_BASE_URL"),
			Model:   v.GetString("AI_MODEL"),
		},
	}
}
