package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Environment.Name != "development" {
		t.Fatalf("environment = %q", cfg.Environment.Name)
	}
	if cfg.HTTPServer.Port != 8080 {
		t.Fatalf("port = %d", cfg.HTTPServer.Port)
	}
	if cfg.Routine.Timezone != "Europe/Riga" {
		t.Fatalf("timezone = %q", cfg.Routine.Timezone)
	}
	if cfg.Routine.Reminder.CutoffHour != 13 || cfg.Routine.Reminder.LateBoundaryHour != 16 {
		t.Fatalf("reminder thresholds = %+v", cfg.Routine.Reminder)
	}
	if cfg.Redis.Addr != "localhost:6379" {
		t.Fatalf("redis addr = %q", cfg.Redis.Addr)
	}
	if cfg.Redis.DialTimeout != 5*time.Second {
		t.Fatalf("redis dial timeout = %s", cfg.Redis.DialTimeout)
	}
	if cfg.Webhook.RateLimitPerMin != 60 {
		t.Fatalf("rate limit = %d", cfg.Webhook.RateLimitPerMin)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("SLACK_BOT_TOKEN", "xoxb-from-env")
	t.Setenv("SLACK_CHANNEL_ID", "C-FROM-ENV")
	t.Setenv("REDIS_ADDR", "redis:6379")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Slack.BotToken != "xoxb-from-env" {
		t.Fatalf("bot token = %q", cfg.Slack.BotToken)
	}
	if cfg.Slack.ChannelID != "C-FROM-ENV" {
		t.Fatalf("channel id = %q", cfg.Slack.ChannelID)
	}
	if cfg.Redis.Addr != "redis:6379" {
		t.Fatalf("redis addr = %q", cfg.Redis.Addr)
	}
}
