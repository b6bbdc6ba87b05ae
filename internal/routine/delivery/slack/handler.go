package slack

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin"

	"slack-routine-bot/internal/model"
	"slack-routine-bot/internal/routine"
	"slack-routine-bot/internal/routine/repository"
	pkgResponse "slack-routine-bot/pkg/response"
	pkgSlack "slack-routine-bot/pkg/slack"
)

const checkmarkReaction = "white_check_mark"

// mentionPattern strips <@U123> tokens so command words can be matched.
var mentionPattern = regexp.MustCompile(`<@[^>]+>`)

// HandleEvent is the Gin handler for Slack Events API callbacks. It
// responds with HTTP 200 immediately and processes the event in a
// background goroutine: Slack retries any delivery not acknowledged
// within 3 seconds, and our pipeline talks to Redis and chat.postMessage.
func (h *handler) HandleEvent(c *gin.Context) {
	ctx := c.Request.Context()

	var cb pkgSlack.EventCallback
	if err := c.ShouldBindJSON(&cb); err != nil {
		h.l.Errorf(ctx, "slack handler: failed to parse event callback: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	// Slack verifies the endpoint by echoing a challenge back.
	if cb.Type == "url_verification" {
		c.JSON(200, gin.H{"challenge": cb.Challenge})
		return
	}

	if cb.Type != "event_callback" || cb.Event == nil || !h.relevant(*cb.Event) {
		pkgResponse.OK(c, map[string]string{"status": "ignored"})
		return
	}

	// Snapshot the event before spawning goroutine to avoid data races on
	// gin context.
	ev := *cb.Event

	go func() {
		bgCtx := context.Background()
		defer func() {
			if r := recover(); r != nil {
				h.l.Errorf(bgCtx, "slack handler: panic in event processing: %v", r)
			}
		}()
		if err := h.processEvent(bgCtx, ev); err != nil {
			h.l.Errorf(bgCtx, "slack handler: background processEvent failed: %v", err)
			h.reply(bgCtx, ev, msgProcessingFailed)
		}
	}()

	pkgResponse.OK(c, map[string]string{"status": "accepted"})
}

// relevant filters out event types and sources the bot must not react to:
// non-message events, other channels, and the bot's own posts (which would
// otherwise loop).
func (h *handler) relevant(ev pkgSlack.Event) bool {
	if ev.Type != "message" && ev.Type != "app_mention" {
		return false
	}
	if ev.User == "" || ev.User == h.botUserID {
		return false
	}
	if h.channelID != "" && ev.Channel != "" && ev.Channel != h.channelID {
		return false
	}
	return ev.Text != ""
}

// processEvent handles a single message event.
func (h *handler) processEvent(ctx context.Context, ev pkgSlack.Event) error {
	now := h.clock.Now()

	// Mentions carrying the debug command open a simulated session instead
	// of recording a completion.
	if ev.Type == "app_mention" {
		if dayOverride, ok := debugCommand(ev.Text); ok {
			_, err := h.uc.OpenSession(ctx, model.ModeDebug, now, dayOverride)
			if err != nil {
				return fmt.Errorf("open debug session: %w", err)
			}
			h.l.Infof(ctx, "slack handler: %s opened a debug session (day=%q)", ev.User, dayOverride)
			h.replyInThread(ctx, ev.Channel, "", ev.TS, debugOpenedConfirmation(ev.User))
			return nil
		}
	}

	mode, anchor := h.uc.ResolveMode(ctx, ev.ThreadTS)

	sc := model.Scope{UserID: ev.User}
	res, err := h.uc.RecordTaskDone(ctx, sc, mode, ev.Text, now)
	if err != nil {
		return err
	}

	switch res.Status {
	case routine.StatusOnTime:
		if res.ReactionNeeded {
			if rErr := h.bot.AddReaction(ctx, ev.Channel, ev.TS, checkmarkReaction); rErr != nil {
				h.l.Warnf(ctx, "slack handler: add reaction failed: %v", rErr)
			}
		}
	case routine.StatusLate:
		h.replyInThread(ctx, ev.Channel, anchor, ev.TS, lateNotice(ev.User, res.Task.Name))
	case routine.StatusRejected:
		// A no-match on a plain thread message is just chatter; only a
		// direct mention earns the guidance reply.
		if errors.Is(res.Reason, routine.ErrNoTaskMatch) && ev.Type != "app_mention" {
			return nil
		}
		h.replyInThread(ctx, ev.Channel, anchor, ev.TS, rejectionMessage(res.Reason))
	}
	return nil
}

func (h *handler) reply(ctx context.Context, ev pkgSlack.Event, text string) {
	threadTS := ev.ThreadTS
	if threadTS == "" {
		threadTS = ev.TS
	}
	h.replyInThread(ctx, ev.Channel, threadTS, ev.TS, text)
}

// replyInThread posts into the session thread when one is known, falling
// back to the triggering message's own thread.
func (h *handler) replyInThread(ctx context.Context, channel, anchor, fallbackTS, text string) {
	if text == "" {
		return
	}
	threadTS := anchor
	if threadTS == "" {
		threadTS = fallbackTS
	}
	if _, err := h.bot.PostMessage(ctx, pkgSlack.PostMessageRequest{
		Channel:  channel,
		Text:     text,
		ThreadTS: threadTS,
	}); err != nil {
		h.l.Warnf(ctx, "slack handler: reply failed: %v", err)
	}
}

// debugCommand parses "debug [weekday]" out of a mention text. The mention
// token itself is stripped first.
func debugCommand(text string) (dayOverride string, ok bool) {
	cleaned := strings.TrimSpace(mentionPattern.ReplaceAllString(text, ""))
	fields := strings.Fields(strings.ToLower(cleaned))
	if len(fields) == 0 || fields[0] != "debug" {
		return "", false
	}
	if len(fields) > 1 {
		return fields[1], true
	}
	return "", true
}

func debugOpenedConfirmation(user string) string {
	return fmt.Sprintf("<@%s> тестовый чеклист отправлен ✅", user)
}

func lateNotice(user, taskName string) string {
	return fmt.Sprintf("<@%s> %s было сделано поздно!", user, taskName)
}

func rejectionMessage(reason error) string {
	switch {
	case reason == nil:
		return ""
	case errors.Is(reason, routine.ErrNoTaskMatch):
		return msgNoTaskMatch
	case errors.Is(reason, repository.ErrStaleSession):
		return msgStaleSession
	case errors.Is(reason, repository.ErrAlreadyCompleted):
		return msgAlreadyCompleted
	default:
		return msgProcessingFailed
	}
}
