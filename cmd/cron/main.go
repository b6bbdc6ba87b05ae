package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"slack-routine-bot/config"
	"slack-routine-bot/config/redis"
	"slack-routine-bot/internal/checklist"
	"slack-routine-bot/internal/model"
	"slack-routine-bot/internal/routine"
	redisRepo "slack-routine-bot/internal/routine/repository/redis"
	"slack-routine-bot/internal/routine/usecase"
	"slack-routine-bot/pkg/daytime"
	"slack-routine-bot/pkg/gcalendar"
	"slack-routine-bot/pkg/log"
	pkgSlack "slack-routine-bot/pkg/slack"
)

// main is the entry point for the daily checklist opener. It is meant to
// run once per morning from an external scheduler (cron, systemd timer,
// Kubernetes CronJob): open the production session, post the checklist,
// exit. Weekends are skipped.
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting checklist opener...")

	clock, err := daytime.NewClock(cfg.Routine.Timezone)
	if err != nil {
		logger.Error(ctx, "Invalid timezone: ", err)
		os.Exit(1)
	}

	now := clock.Now()
	if clock.IsWeekend(now) {
		logger.Infof(ctx, "Weekend (%s), no checklist today", clock.Weekday(now))
		return
	}

	redisClient, err := redis.Connect(ctx, cfg.Redis)
	if err != nil {
		logger.Error(ctx, "Failed to connect to Redis: ", err)
		os.Exit(1)
	}
	defer redis.Disconnect()

	var calendarClient *gcalendar.Client
	if cfg.GoogleCalendar.Enabled && cfg.GoogleCalendar.CredentialsPath != "" {
		calendarClient, err = gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if err != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", err)
			calendarClient = nil
		}
	}

	repo := redisRepo.New(redisClient, logger)
	uc := usecase.New(
		logger,
		repo, repo, repo,
		pkgSlack.NewClient(cfg.Slack.BotToken),
		calendarMirror(calendarClient),
		checklist.New(),
		clock,
		cfg.Slack.ChannelID,
		cfg.GoogleCalendar.CalendarID,
		cfg.Routine.Reminder,
	)

	out, err := uc.OpenSession(ctx, model.ModeProduction, now, "")
	if err != nil {
		logger.Error(ctx, "Failed to open session: ", err)
		os.Exit(1)
	}

	logger.Infof(ctx, "Checklist for %s posted, thread %s, %d task(s)",
		out.Checklist.Date, out.ThreadTS, len(out.Checklist.Flatten()))
}

// calendarMirror keeps the mirror interface nil when no client is
// configured; a typed nil would defeat the engine's nil check.
func calendarMirror(c *gcalendar.Client) routine.CalendarMirror {
	if c == nil {
		return nil
	}
	return c
}
