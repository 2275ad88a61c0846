package alerter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"log/slog"
)

const telegramAPIBase = "https://api.telegram.org"

// Client клиент для отправки алертов через Telegram
type Client struct {
	httpClient      *http.Client
	botToken        string
	chatID          int64
	messageThreadID *int64
	log             *slog.Logger
}

// NewClient создаёт новый клиент для отправки алертов.
// Возвращает nil при отсутствии конфигурации: алерты отключены.
func NewClient(cfg *Config, log *slog.Logger) *Client {
	if cfg == nil || cfg.BotToken == "" {
		return nil
	}

	return &Client{
		httpClient:      &http.Client{Timeout: 10 * time.Second},
		botToken:        cfg.BotToken,
		chatID:          cfg.ChatID,
		messageThreadID: cfg.MessageThreadID,
		log:             log,
	}
}

type sendMessageRequest struct {
	ChatID          int64  `json:"chat_id"`
	Text            string `json:"text"`
	MessageThreadID *int64 `json:"message_thread_id,omitempty"`
}

// SendAlert отправляет алерт в Telegram группу (или топик форума)
func (c *Client) SendAlert(ctx context.Context, message string) error {
	if c == nil || c.httpClient == nil {
		return fmt.Errorf("alerter client is not initialized")
	}

	body, err := json.Marshal(sendMessageRequest{
		ChatID:          c.chatID,
		Text:            message,
		MessageThreadID: c.messageThreadID,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal alert message: %w", err)
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", telegramAPIBase, c.botToken)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build alert request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Warn("failed to send alert",
			"error", err,
			"chat_id", c.chatID,
		)
		return fmt.Errorf("failed to send alert: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		c.log.Warn("telegram api returned non-200",
			"status", resp.StatusCode,
			"body", string(respBody),
		)
		return fmt.Errorf("telegram api status %d", resp.StatusCode)
	}

	c.log.Debug("alert sent successfully",
		"chat_id", c.chatID,
		"message_thread_id", c.messageThreadID,
	)
	return nil
}
