package slack

// EventCallback is the outer envelope Slack posts to the events endpoint.
type EventCallback struct {
	Token     string `json:"token"`
	Type      string `json:"type"` // "url_verification" or "event_callback"
	Challenge string `json:"challenge,omitempty"`
	TeamID    string `json:"team_id,omitempty"`
	Event     *Event `json:"event,omitempty"`
}

// Event is an inner event from the Events API.
type Event struct {
	Type     string `json:"type"` // e.g. "app_mention"
	Text     string `json:"text,omitempty"`
	User     string `json:"user,omitempty"`
	TS       string `json:"ts"`
	ThreadTS string `json:"thread_ts,omitempty"`
	Channel  string `json:"channel,omitempty"`
}

// PostMessageRequest is the payload for chat.postMessage.
type PostMessageRequest struct {
	Channel  string `json:"channel"`
	Text     string `json:"text"`
	ThreadTS string `json:"thread_ts,omitempty"`
}

// reactionRequest is the payload for reactions.add.
type reactionRequest struct {
	Channel   string `json:"channel"`
	Timestamp string `json:"timestamp"`
	Name      string `json:"name"`
}

// apiResponse is the generic Slack Web API response wrapper.
// TS is set on chat.postMessage and anchors replies to the new message.
type apiResponse struct {
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
	TS    string `json:"ts,omitempty"`
}
