package slack

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// Client is the Slack Web API client.
type Client struct {
	token      string
	apiURL     string
	httpClient *http.Client
}

// NewClient creates a new Slack Web API client with the given bot token.
func NewClient(token string) *Client {
	return &Client{
		token:      token,
		apiURL:     "https://slack.com/api",
		httpClient: &http.Client{},
	}
}

// SetAPIURL overrides the default Slack API URL for testing purposes.
func (c *Client) SetAPIURL(url string) {
	c.apiURL = url
}

// PostMessage sends a message via chat.postMessage and returns the new
// message's ts, which anchors later replies into its thread.
func (c *Client) PostMessage(ctx context.Context, req PostMessageRequest) (string, error) {
	var resp apiResponse
	if err := c.call(ctx, "chat.postMessage", req, &resp); err != nil {
		return "", err
	}
	if !resp.OK {
		return "", fmt.Errorf("slack chat.postMessage failed: %s", resp.Error)
	}
	return resp.TS, nil
}

// AddReaction adds an emoji reaction to the message identified by timestamp.
func (c *Client) AddReaction(ctx context.Context, channel, timestamp, name string) error {
	var resp apiResponse
	req := reactionRequest{Channel: channel, Timestamp: timestamp, Name: name}
	if err := c.call(ctx, "reactions.add", req, &resp); err != nil {
		return err
	}
	if !resp.OK {
		return fmt.Errorf("slack reactions.add failed: %s", resp.Error)
	}
	return nil
}

// call posts a JSON payload to a Slack Web API method and decodes the response.
func (c *Client) call(ctx context.Context, method string, payload any, out *apiResponse) error {
	url := fmt.Sprintf("%s/%s", c.apiURL, method)

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal %s payload: %w", method, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("failed to build %s request: %w", method, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.token))

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to call slack %s: %w", method, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("slack %s API error %d: %s", method, resp.StatusCode, string(raw))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode slack %s response: %w", method, err)
	}
	return nil
}
