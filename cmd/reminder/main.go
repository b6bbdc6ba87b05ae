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
	redisRepo "slack-routine-bot/internal/routine/repository/redis"
	"slack-routine-bot/internal/routine/usecase"
	"slack-routine-bot/pkg/daytime"
	"slack-routine-bot/pkg/log"
	pkgSlack "slack-routine-bot/pkg/slack"
)

// main is the entry point for the reminder run, scheduled hourly during
// working hours. It evaluates the production session, posts one reminder
// into the checklist thread when something is outstanding, and exits.
// With everything done (or on weekends) it stays silent.
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

	clock, err := daytime.NewClock(cfg.Routine.Timezone)
	if err != nil {
		logger.Error(ctx, "Invalid timezone: ", err)
		os.Exit(1)
	}

	now := clock.Now()
	if clock.IsWeekend(now) {
		logger.Infof(ctx, "Weekend (%s), no reminders today", clock.Weekday(now))
		return
	}

	redisClient, err := redis.Connect(ctx, cfg.Redis)
	if err != nil {
		logger.Error(ctx, "Failed to connect to Redis: ", err)
		os.Exit(1)
	}
	defer redis.Disconnect()

	slackClient := pkgSlack.NewClient(cfg.Slack.BotToken)
	formatter := checklist.New()

	repo := redisRepo.New(redisClient, logger)
	uc := usecase.New(
		logger,
		repo, repo, repo,
		slackClient,
		nil,
		formatter,
		clock,
		cfg.Slack.ChannelID,
		"",
		cfg.Routine.Reminder,
	)

	out, err := uc.ComputeOutstanding(ctx, model.ModeProduction, now)
	if err != nil {
		logger.Error(ctx, "Failed to compute outstanding tasks: ", err)
		os.Exit(1)
	}

	message := formatter.FormatReminder(
		out,
		clock.HourMinute(now).String(),
		clock.DateHeader(now),
		cfg.Slack.TeamMention,
	)
	if message == "" {
		logger.Info(ctx, "Nothing outstanding, no reminder sent")
		return
	}

	// The reminder lands in the checklist thread when one is open and as a
	// standalone channel message otherwise.
	_, threadTS := uc.ResolveMode(ctx, "")

	if _, err := slackClient.PostMessage(ctx, pkgSlack.PostMessageRequest{
		Channel:  cfg.Slack.ChannelID,
		Text:     message,
		ThreadTS: threadTS,
	}); err != nil {
		logger.Error(ctx, "Failed to post reminder: ", err)
		os.Exit(1)
	}

	logger.Infof(ctx, "Reminder posted: %d overdue, %d pending", len(out.Overdue), len(out.Pending))
}
