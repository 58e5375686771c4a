// Package slack is a minimal Slack Web API client for posting messages to
// channels and to users looked up by e-mail.
package slack

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	sharedConfig "art/internal/shared/config"
	"art/internal/shared/logger"
)

// apiResponse is the envelope every Web API method returns.
type apiResponse struct {
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

type postMessageRequest struct {
	Channel string `json:"channel"`
	Text    string `json:"text"`
}

type lookupByEmailResponse struct {
	apiResponse
	User struct {
		ID string `json:"id"`
	} `json:"user"`
}

// APIError is returned when Slack answers with ok=false.
type APIError struct {
	Method string
	Code   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("slack %s failed: %s", e.Method, e.Code)
}

type Client struct {
	httpClient *resty.Client
	logger     logger.Interface
}

func NewClient(cfg sharedConfig.SlackConfig, logger logger.Interface) *Client {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(timeout).
		SetRetryCount(2).
		SetRetryWaitTime(500 * time.Millisecond).
		SetRetryMaxWaitTime(3 * time.Second).
		SetAuthToken(cfg.BotToken).
		SetHeader("Content-Type", "application/json; charset=utf-8").
		SetHeader("Accept", "application/json")

	return &Client{httpClient: client, logger: logger}
}

// PostMessage posts text to a channel name, channel id or user id.
func (c *Client) PostMessage(ctx context.Context, channel, text string) error {
	var out apiResponse
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(postMessageRequest{Channel: channel, Text: text}).
		SetResult(&out).
		Post("/chat.postMessage")
	if err != nil {
		c.logger.Errorw("slack chat.postMessage call failed", "channel", channel, "error", err)
		return fmt.Errorf("failed to call slack chat.postMessage: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("slack chat.postMessage returned HTTP %d", resp.StatusCode())
	}
	if !out.OK {
		c.logger.Warnw("slack rejected message", "channel", channel, "error", out.Error)
		return &APIError{Method: "chat.postMessage", Code: out.Error}
	}
	return nil
}

// LookupUserByEmail returns the Slack user id registered for email.
func (c *Client) LookupUserByEmail(ctx context.Context, email string) (string, error) {
	var out lookupByEmailResponse
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetQueryParam("email", email).
		SetResult(&out).
		Get("/users.lookupByEmail")
	if err != nil {
		return "", fmt.Errorf("failed to call slack users.lookupByEmail: %w", err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("slack users.lookupByEmail returned HTTP %d", resp.StatusCode())
	}
	if !out.OK {
		return "", &APIError{Method: "users.lookupByEmail", Code: out.Error}
	}
	return out.User.ID, nil
}

// DirectMessage looks up the Slack account of email and messages it.
func (c *Client) DirectMessage(ctx context.Context, email, text string) error {
	userID, err := c.LookupUserByEmail(ctx, email)
	if err != nil {
		return err
	}
	return c.PostMessage(ctx, userID, text)
}
