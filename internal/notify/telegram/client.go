// Package telegram posts booking notifications through the Telegram Bot API.
package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/BruksfildServices01/appointment-relay/internal/notify"
)

const (
	DefaultBaseURL = "https://api.telegram.org"
	parseMode      = "Markdown"
	maxBodyBytes   = 1 << 16
)

type sendMessageRequest struct {
	ChatID    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode,omitempty"`
}

// apiResponse is the envelope every Bot API method answers with.
type apiResponse struct {
	OK          bool   `json:"ok"`
	ErrorCode   int    `json:"error_code,omitempty"`
	Description string `json:"description,omitempty"`
}

// Client implements notify.Sink against sendMessage.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

var _ notify.Sink = (*Client)(nil)

// Send posts msg.Text to msg.ChatID. Returned errors never contain the bot
// token.
func (c *Client) Send(ctx context.Context, msg notify.Message) error {
	body, err := json.Marshal(sendMessageRequest{
		ChatID:    msg.ChatID,
		Text:      msg.Text,
		ParseMode: parseMode,
	})
	if err != nil {
		return fmt.Errorf("encoding sendMessage: %w", err)
	}

	endpoint := fmt.Sprintf("%s/bot%s/sendMessage", c.baseURL, msg.BotToken)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.New("building sendMessage request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// *url.Error carries the request URL, and with it the token
		var ue *url.Error
		if errors.As(err, &ue) {
			return fmt.Errorf("calling sendMessage: %w", ue.Err)
		}
		return fmt.Errorf("calling sendMessage: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return fmt.Errorf("reading sendMessage response: %w", err)
	}

	var tgResp apiResponse
	if err := json.Unmarshal(raw, &tgResp); err != nil {
		return fmt.Errorf("parsing sendMessage response (status=%d): %w", resp.StatusCode, err)
	}

	if resp.StatusCode >= http.StatusBadRequest || !tgResp.OK {
		return fmt.Errorf("telegram API error: status=%d code=%d description=%s",
			resp.StatusCode, tgResp.ErrorCode, tgResp.Description)
	}

	return nil
}
