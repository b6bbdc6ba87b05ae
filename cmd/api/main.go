package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"slack-routine-bot/config"
	"slack-routine-bot/config/redis"
	_ "slack-routine-bot/docs" // Swagger docs
	"slack-routine-bot/internal/checklist"
	"slack-routine-bot/internal/httpserver"
	"slack-routine-bot/internal/middleware"
	"slack-routine-bot/internal/routine"
	adminHTTP "slack-routine-bot/internal/routine/delivery/http"
	slackDelivery "slack-routine-bot/internal/routine/delivery/slack"
	redisRepo "slack-routine-bot/internal/routine/repository/redis"
	"slack-routine-bot/internal/routine/usecase"
	"slack-routine-bot/pkg/daytime"
	"slack-routine-bot/pkg/gcalendar"
	"slack-routine-bot/pkg/log"
	pkgSlack "slack-routine-bot/pkg/slack"
)

// @title       Slack Routine Bot API
// @description Scheduled routine checklists in Slack with deadline tracking, Redis-backed sessions, and Google Calendar mirroring.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Slack Routine Bot API...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Infrastructure
	redisClient, err := redis.Connect(ctx, cfg.Redis)
	if err != nil {
		logger.Error(ctx, "Failed to connect to Redis: ", err)
		return
	}
	defer redis.Disconnect()

	clock, err := daytime.NewClock(cfg.Routine.Timezone)
	if err != nil {
		logger.Error(ctx, "Invalid timezone: ", err)
		return
	}

	slackClient := pkgSlack.NewClient(cfg.Slack.BotToken)

	// Google Calendar mirroring (optional)
	var calendarClient *gcalendar.Client
	if cfg.GoogleCalendar.Enabled && cfg.GoogleCalendar.CredentialsPath != "" {
		calendarClient, err = gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if err != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", err)
			calendarClient = nil
		} else {
			logger.Info(ctx, "Google Calendar initialized")
		}
	}

	// 4. Routine engine
	repo := redisRepo.New(redisClient, logger)

	uc := usecase.New(
		logger,
		repo, repo, repo,
		slackClient,
		calendarMirror(calendarClient),
		checklist.New(),
		clock,
		cfg.Slack.ChannelID,
		cfg.GoogleCalendar.CalendarID,
		cfg.Routine.Reminder,
	)

	// 5. Delivery
	slackHandler := slackDelivery.New(logger, uc, slackClient, clock, cfg.Slack.ChannelID, cfg.Slack.BotUserID)
	adminHandler := adminHTTP.New(logger, uc, clock)
	mw := middleware.New(logger, cfg.Slack.SigningSecret, cfg.Webhook.RateLimitPerMin, cfg)

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:         cfg.HTTPServer.Port,
		Mode:         cfg.HTTPServer.Mode,
		Environment:  cfg.Environment.Name,
		Middleware:   mw,
		SlackHandler: slackHandler,
		AdminHandler: adminHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

// calendarMirror keeps the mirror interface nil when no client is
// configured; a typed nil would defeat the engine's nil check.
func calendarMirror(c *gcalendar.Client) routine.CalendarMirror {
	if c == nil {
		return nil
	}
	return c
}
