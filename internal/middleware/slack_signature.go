package middleware

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"slack-routine-bot/pkg/response"
)

// Slack rejects replays older than 5 minutes; so do we.
const signatureMaxAge = 5 * time.Minute

// SlackSignature verifies the X-Slack-Signature header against the raw
// request body. The body is restored for downstream binding.
func (m Middleware) SlackSignature() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			m.l.Warnf(ctx, "middleware.SlackSignature read body: %v", err)
			response.Error(c, fmt.Errorf("failed to read request body"), nil)
			c.Abort()
			return
		}
		c.Request.Body = io.NopCloser(bytes.NewBuffer(body))

		if err := verifySlackSignature(
			m.signingSecret,
			c.GetHeader("X-Slack-Request-Timestamp"),
			c.GetHeader("X-Slack-Signature"),
			body,
			time.Now(),
		); err != nil {
			m.l.Warnf(ctx, "middleware.SlackSignature: %v", err)
			response.Unauthorized(c)
			c.Abort()
			return
		}

		c.Next()
	}
}

// verifySlackSignature implements Slack's signing scheme: the signature is
// "v0=" + hex(HMAC-SHA256(secret, "v0:<timestamp>:<body>")).
func verifySlackSignature(secret, timestamp, signature string, body []byte, now time.Time) error {
	if secret == "" {
		return fmt.Errorf("signing secret not configured")
	}

	ts, err := strconv.ParseInt(timestamp, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid timestamp header: %w", err)
	}
	age := now.Sub(time.Unix(ts, 0))
	if age > signatureMaxAge || age < -signatureMaxAge {
		return fmt.Errorf("timestamp outside tolerance window")
	}

	if !strings.HasPrefix(signature, "v0=") {
		return fmt.Errorf("invalid signature format")
	}
	expectedSig, err := hex.DecodeString(signature[3:])
	if err != nil {
		return fmt.Errorf("invalid signature hex encoding: %w", err)
	}

	mac := hmac.New(sha256.New, []byte(secret))
	fmt.Fprintf(mac, "v0:%s:", timestamp)
	mac.Write(body)

	if !hmac.Equal(expectedSig, mac.Sum(nil)) {
		return fmt.Errorf("signature verification failed")
	}
	return nil
}

// RateLimit throttles inbound webhook traffic per source IP.
func (m Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := m.rateLimiter.Allow(extractIP(c.Request)); err != nil {
			m.l.Warnf(c.Request.Context(), "middleware.RateLimit: %v", err)
			c.AbortWithStatusJSON(http.StatusTooManyRequests, response.Resp{
				ErrorCode: http.StatusTooManyRequests,
				Message:   "rate limit exceeded",
			})
			return
		}
		c.Next()
	}
}
