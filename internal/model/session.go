package model

// Mode selects which isolated session a request operates on. Debug and
// production sessions never share state.
type Mode string

const (
	ModeProduction Mode = "production"
	ModeDebug      Mode = "debug"
)

// Completion records one user marking a task done within a session.
type Completion struct {
	User string `json:"user"`
	Time string `json:"time"` // "HH:MM", local
}

// Session is the single active tracking record for one mode on one
// calendar date. Opening a new session fully replaces the prior one.
type Session struct {
	Date      string                `json:"date"`      // ISO date the session covers
	ThreadTS  string                `json:"thread_ts"` // opaque thread anchor of the day's checklist message
	Completed map[string]Completion `json:"completed"` // normalized task name → completion
}

// CoversDate reports whether the session is still valid for completions.
func (s Session) CoversDate(today string) bool {
	return s.Date == today
}
