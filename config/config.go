package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Routine bot specifics
	Redis          RedisConfig
	Slack          SlackConfig
	Routine        RoutineConfig
	GoogleCalendar GoogleCalendarConfig

	// Webhooks
	Webhook WebhookConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type RedisConfig struct {
	Addr         string
	Password     string
	DB           int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type SlackConfig struct {
	BotToken      string
	SigningSecret string
	ChannelID     string
	BotUserID     string // the bot's own user id, filtered out of the event stream
	TeamMention   string // mention tag appended to reminder messages
}

// RoutineConfig holds the daily routine engine settings.
type RoutineConfig struct {
	Timezone string
	Reminder ReminderConfig
}

// ReminderConfig carries the reminder-run thresholds. At exactly
// CutoffHour, tasks whose deadline hour is at or after LateBoundaryHour
// are left out of the reminder entirely.
type ReminderConfig struct {
	CutoffHour       int
	LateBoundaryHour int
}

type GoogleCalendarConfig struct {
	Enabled         bool
	CredentialsPath string
	CalendarID      string
}

type WebhookConfig struct {
	RateLimitPerMin int
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Redis
	cfg.Redis.Addr = viper.GetString("redis.addr")
	cfg.Redis.Password = viper.GetString("redis.password")
	cfg.Redis.DB = viper.GetInt("redis.db")
	cfg.Redis.DialTimeout = viper.GetDuration("redis.dial_timeout")
	cfg.Redis.ReadTimeout = viper.GetDuration("redis.read_timeout")
	cfg.Redis.WriteTimeout = viper.GetDuration("redis.write_timeout")
	if redisAddr := viper.GetString("redis_addr"); redisAddr != "" {
		cfg.Redis.Addr = redisAddr
	}

	// Slack
	cfg.Slack.BotToken = viper.GetString("slack.bot_token")
	cfg.Slack.SigningSecret = viper.GetString("slack.signing_secret")
	cfg.Slack.ChannelID = viper.GetString("slack.channel_id")
	cfg.Slack.BotUserID = viper.GetString("slack.bot_user_id")
	cfg.Slack.TeamMention = viper.GetString("slack.team_mention")
	if botToken := viper.GetString("slack_bot_token"); botToken != "" {
		cfg.Slack.BotToken = botToken
	}
	if signingSecret := viper.GetString("slack_signing_secret"); signingSecret != "" {
		cfg.Slack.SigningSecret = signingSecret
	}
	if channelID := viper.GetString("slack_channel_id"); channelID != "" {
		cfg.Slack.ChannelID = channelID
	}

	// Routine engine
	cfg.Routine.Timezone = viper.GetString("routine.timezone")
	cfg.Routine.Reminder.CutoffHour = viper.GetInt("routine.reminder.cutoff_hour")
	cfg.Routine.Reminder.LateBoundaryHour = viper.GetInt("routine.reminder.late_boundary_hour")

	// Google Calendar (optional deadline mirroring)
	cfg.GoogleCalendar.Enabled = viper.GetBool("google_calendar.enabled")
	cfg.GoogleCalendar.CredentialsPath = viper.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.CalendarID = viper.GetString("google_calendar.calendar_id")
	if googleCreds := viper.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}

	// Webhooks
	cfg.Webhook.RateLimitPerMin = viper.GetInt("webhook.rate_limit_per_min")

	if cfg.Slack.ChannelID == "" && cfg.Environment.Name == string("production") {
		return nil, fmt.Errorf("slack.channel_id is required in production")
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("redis.addr", "localhost:6379")
	viper.SetDefault("redis.db", 0)
	viper.SetDefault("redis.dial_timeout", "5s")
	viper.SetDefault("redis.read_timeout", "3s")
	viper.SetDefault("redis.write_timeout", "3s")
	viper.SetDefault("routine.timezone", "Europe/Riga")
	viper.SetDefault("routine.reminder.cutoff_hour", 13)
	viper.SetDefault("routine.reminder.late_boundary_hour", 16)
	viper.SetDefault("webhook.rate_limit_per_min", 60)
}
