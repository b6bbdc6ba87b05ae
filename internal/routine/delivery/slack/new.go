package slack

import (
	"github.com/gin-gonic/gin"

	"slack-routine-bot/internal/routine"
	"slack-routine-bot/pkg/daytime"
	pkgLog "slack-routine-bot/pkg/log"
	pkgSlack "slack-routine-bot/pkg/slack"
)

// Handler is the interface for the Slack events delivery handler.
type Handler interface {
	HandleEvent(c *gin.Context)
}

type handler struct {
	l     pkgLog.Logger
	uc    routine.UseCase
	bot   *pkgSlack.Client
	clock *daytime.Clock

	channelID string
	botUserID string
}

// New creates a new Slack events delivery handler. channelID limits
// processing to the routine channel; botUserID filters the bot's own
// messages out of the event stream.
func New(l pkgLog.Logger, uc routine.UseCase, bot *pkgSlack.Client, clock *daytime.Clock, channelID, botUserID string) Handler {
	return &handler{
		l:         l,
		uc:        uc,
		bot:       bot,
		clock:     clock,
		channelID: channelID,
		botUserID: botUserID,
	}
}
