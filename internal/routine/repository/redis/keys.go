package redis

import "slack-routine-bot/internal/model"

// Well-known keys. Production and debug sessions live under distinct keys,
// as do the catalog and the assignment overlay.
const (
	keyStateProduction = "routine:state:production"
	keyStateDebug      = "routine:state:debug"
	keyTaskBase        = "routine:task_base"
	keyAssignments     = "routine:assignments"
)

func stateKey(mode model.Mode) string {
	if mode == model.ModeDebug {
		return keyStateDebug
	}
	return keyStateProduction
}
