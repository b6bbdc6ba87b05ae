package middleware

import (
	"slack-routine-bot/config"
	pkgLog "slack-routine-bot/pkg/log"
)

type Middleware struct {
	l             pkgLog.Logger
	signingSecret string
	rateLimiter   *rateLimiter
	config        *config.Config
}

func New(l pkgLog.Logger, signingSecret string, rateLimitPerMin int, cfg *config.Config) Middleware {
	return Middleware{
		l:             l,
		signingSecret: signingSecret,
		rateLimiter:   newRateLimiter(rateLimitPerMin),
		config:        cfg,
	}
}
