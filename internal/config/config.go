package config

import (
	"errors"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
	"gopkg.in/yaml.v3"
)

type Config struct {
	DiscordToken    string           `yaml:"discord_token"`
	DataDir         string           `yaml:"data_dir"`
	LogLevel        string           `yaml:"log_level"`
	LogFile         string           `yaml:"log_file"`
	DefaultLanguage string           `yaml:"default_language"`
	Health          HealthConfig     `yaml:"health"`
	Pagination      PaginationConfig `yaml:"pagination"`
	TempChannels    TempConfig       `yaml:"temp_channels"`
	Updates         UpdateConfig     `yaml:"updates"`
	EmbedColors     EmbedColors      `yaml:"embed_colors"`
}

type HealthConfig struct {
	Enabled bool   `yaml:"enabled"`
	Addr    string `yaml:"addr"`
}

type PaginationConfig struct {
	BansPerPage        int `yaml:"bans_per_page"`
	ViewTimeoutSeconds int `yaml:"view_timeout_seconds"`
	DeleteDelaySeconds int `yaml:"delete_delay_seconds"`
}

type TempConfig struct {
	MinDurationMinutes     int `yaml:"min_duration_minutes"`
	MaxDurationMinutes     int `yaml:"max_duration_minutes"`
	CleanupIntervalSeconds int `yaml:"cleanup_interval_seconds"`
}

type UpdateConfig struct {
	Enabled       bool   `yaml:"enabled"`
	Repository    string `yaml:"repository"`
	IntervalHours int    `yaml:"interval_hours"`
	ChannelID     string `yaml:"channel_id"`
}

type EmbedColors struct {
	Info    int `yaml:"info"`
	Success int `yaml:"success"`
	Warning int `yaml:"warning"`
	Error   int `yaml:"error"`
}

func DefaultConfig() Config {
	return Config{
		DataDir:         "data",
		LogLevel:        "info",
		LogFile:         "",
		DefaultLanguage: "fr",
		Health:          HealthConfig{Enabled: false, Addr: ":8080"},
		Pagination: PaginationConfig{
			BansPerPage:        5,
			ViewTimeoutSeconds: 180,
			DeleteDelaySeconds: 60,
		},
		TempChannels: TempConfig{
			MinDurationMinutes:     1,
			MaxDurationMinutes:     7 * 24 * 60,
			CleanupIntervalSeconds: 60,
		},
		Updates: UpdateConfig{
			Enabled:       false,
			Repository:    "TifouDragon/Slimboy-Bot",
			IntervalHours: 6,
			ChannelID:     "",
		},
		EmbedColors: EmbedColors{
			Info:    0x3498DB,
			Success: 0x2ECC71,
			Warning: 0xE67E22,
			Error:   0xED4245,
		},
	}
}

func Load() (Config, error) {
	cfg := DefaultConfig()

	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = "config.yaml"
	}
	if data, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, err
		}
	}

	applyEnv(&cfg)
	if cfg.DiscordToken == "" {
		return Config{}, errors.New("DISCORD_TOKEN is required")
	}
	if cfg.Pagination.BansPerPage <= 0 {
		cfg.Pagination.BansPerPage = 5
	}
	if cfg.Pagination.ViewTimeoutSeconds <= 0 {
		cfg.Pagination.ViewTimeoutSeconds = 180
	}
	if cfg.Pagination.DeleteDelaySeconds <= 0 {
		cfg.Pagination.DeleteDelaySeconds = 60
	}

	return cfg, nil
}

func applyEnv(cfg *Config) {
	cfg.DiscordToken = envString("DISCORD_TOKEN", cfg.DiscordToken)
	cfg.DataDir = envString("DATA_DIR", cfg.DataDir)
	cfg.LogLevel = envString("LOG_LEVEL", cfg.LogLevel)
	cfg.LogFile = envString("LOG_FILE", cfg.LogFile)
	cfg.DefaultLanguage = envString("DEFAULT_LANGUAGE", cfg.DefaultLanguage)
	cfg.Health.Enabled = envBool("HEALTH_ENABLED", cfg.Health.Enabled)
	cfg.Health.Addr = envString("HEALTH_ADDR", cfg.Health.Addr)
	cfg.Pagination.BansPerPage = envInt("BANS_PER_PAGE", cfg.Pagination.BansPerPage)
	cfg.Pagination.ViewTimeoutSeconds = envInt("VIEW_TIMEOUT_SECONDS", cfg.Pagination.ViewTimeoutSeconds)
	cfg.Pagination.DeleteDelaySeconds = envInt("DELETE_DELAY_SECONDS", cfg.Pagination.DeleteDelaySeconds)
	cfg.Updates.Enabled = envBool("UPDATES_ENABLED", cfg.Updates.Enabled)
	cfg.Updates.Repository = envString("UPDATES_REPOSITORY", cfg.Updates.Repository)
	cfg.Updates.IntervalHours = envInt("UPDATES_INTERVAL_HOURS", cfg.Updates.IntervalHours)
	cfg.Updates.ChannelID = envString("UPDATES_CHANNEL_ID", cfg.Updates.ChannelID)
}

func BuildLogger(level, file string) (*zap.Logger, error) {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "time"
	encoderCfg.MessageKey = "message"
	encoderCfg.LevelKey = "level"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	atomic := zap.NewAtomicLevelAt(parseLevel(strings.ToLower(level)))

	if file == "" {
		cfg := zap.NewProductionConfig()
		cfg.Encoding = "json"
		cfg.EncoderConfig = encoderCfg
		cfg.Level = atomic
		return cfg.Build()
	}

	rotating := zapcore.AddSync(&lumberjack.Logger{
		Filename:   file,
		MaxSize:    20,
		MaxBackups: 5,
		MaxAge:     30,
	})
	core := zapcore.NewTee(
		zapcore.NewCore(zapcore.NewJSONEncoder(encoderCfg), zapcore.AddSync(os.Stdout), atomic),
		zapcore.NewCore(zapcore.NewJSONEncoder(encoderCfg), rotating, atomic),
	)
	return zap.New(core), nil
}

func parseLevel(level string) zapcore.Level {
	switch level {
	case "debug":
		return zapcore.DebugLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

func envString(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if value := os.Getenv(key); value != "" {
		lower := strings.ToLower(value)
		return lower == "1" || lower == "true" || lower == "yes"
	}
	return fallback
}
