// Package telegram delivers wallet activity notifications through the
// Telegram Bot API. Users are identified by their chat id.
package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/gabapcia/swapwatch/internal/activity"
	transporthttp "github.com/gabapcia/swapwatch/internal/pkg/transport/http"
	"github.com/gabapcia/swapwatch/internal/walletmonitor"
	"github.com/gabapcia/swapwatch/internal/watchlist"

	"github.com/hashicorp/go-retryablehttp"
)

const (
	defaultBaseURL        = "https://api.telegram.org"
	defaultExplorerURL    = "https://dexscreener.com/ethereum/"
	parseModeMarkdown     = "Markdown"
	explorerButtonCaption = "Open on Dexscreener"
)

var _ walletmonitor.NotificationSink = (*client)(nil)

type config struct {
	baseURL     string
	explorerURL string
}

// Option customizes the Telegram client.
type Option func(*config)

// WithBaseURL overrides the Bot API root. Default: https://api.telegram.org.
func WithBaseURL(url string) Option {
	return func(c *config) {
		c.baseURL = url
	}
}

// WithExplorerURL sets the prefix of the token link attached to each
// message. The token address is appended to it.
// Default: https://dexscreener.com/ethereum/.
func WithExplorerURL(url string) Option {
	return func(c *config) {
		c.explorerURL = url
	}
}

type client struct {
	httpClient *retryablehttp.Client
	token      string
	cfg        config
}

// NewClient returns a sink that sends messages as the bot identified by
// token. The HTTP client should not retry: a retried message that was in
// fact delivered shows up twice.
func NewClient(httpClient *retryablehttp.Client, token string, opts ...Option) *client {
	cfg := config{
		baseURL:     defaultBaseURL,
		explorerURL: defaultExplorerURL,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &client{
		httpClient: httpClient,
		token:      token,
		cfg:        cfg,
	}
}

type inlineButton struct {
	Text string `json:"text"`
	URL  string `json:"url"`
}

type replyMarkup struct {
	InlineKeyboard [][]inlineButton `json:"inline_keyboard"`
}

type sendMessageRequest struct {
	ChatID      int64        `json:"chat_id"`
	Text        string       `json:"text"`
	ParseMode   string       `json:"parse_mode"`
	ReplyMarkup *replyMarkup `json:"reply_markup,omitempty"`
}

type apiResponse struct {
	OK          bool   `json:"ok"`
	ErrorCode   int    `json:"error_code"`
	Description string `json:"description"`
}

func (c *client) sendMessage(ctx context.Context, body sendMessageRequest) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", strings.TrimRight(c.cfg.baseURL, "/"), c.token)
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}

	var out apiResponse
	if err := transporthttp.DecodeJSON(res, &out); err != nil {
		return err
	}

	if !out.OK {
		return fmt.Errorf("telegram error %d: %s", out.ErrorCode, out.Description)
	}

	return nil
}

// Notify sends e to the chat identified by user.
func (c *client) Notify(ctx context.Context, user watchlist.UserID, e activity.Event) error {
	req := sendMessageRequest{
		ChatID:    int64(user),
		Text:      FormatEvent(e),
		ParseMode: parseModeMarkdown,
	}

	if !e.TokenAddress.IsZero() && c.cfg.explorerURL != "" {
		req.ReplyMarkup = &replyMarkup{
			InlineKeyboard: [][]inlineButton{{
				{Text: explorerButtonCaption, URL: c.cfg.explorerURL + e.TokenAddress.String()},
			}},
		}
	}

	if err := c.sendMessage(ctx, req); err != nil {
		return fmt.Errorf("%w: %w", walletmonitor.ErrDeliveryFailed, err)
	}

	return nil
}
