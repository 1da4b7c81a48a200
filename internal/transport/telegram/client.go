package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"
)

var (
	ErrNotConfigured = errors.New("telegram bot token is not configured")
	ErrEmptyChatID   = errors.New("telegram chat id is empty")
)

// placeholderToken is the value shipped in sample configs.
const placeholderToken = "CHANGE_ME"

type Client struct {
	logger     *slog.Logger
	httpClient *http.Client

	apiURL       string
	token        string
	chatUsername string
}

// New creates a Bot API client. chatUsername is the last resort when a numeric chat id is not found.
func New(logger *slog.Logger, apiURL, token, chatUsername string, timeout time.Duration) *Client {
	return &Client{
		logger:       logger.With("component", "telegram"),
		httpClient:   &http.Client{Timeout: timeout},
		apiURL:       strings.TrimRight(apiURL, "/"),
		token:        token,
		chatUsername: chatUsername,
	}
}

type sendMessageRequest struct {
	ChatID any    `json:"chat_id"`
	Text   string `json:"text"`
}

type apiResponse struct {
	Ok          bool   `json:"ok"`
	ErrorCode   int    `json:"error_code,omitempty"`
	Description string `json:"description,omitempty"`
}

type APIError struct {
	StatusCode  int
	Description string
}

func (that *APIError) Error() string {
	return fmt.Sprintf("telegram API error (status %d): %s", that.StatusCode, that.Description)
}

func (that *APIError) chatNotFound() bool {
	return strings.Contains(strings.ToLower(that.Description), "chat not found")
}

// SendMessage posts text to chatID. A positive numeric id that Telegram does not know is retried
// as a group id, a supergroup id and finally as the configured chat username.
func (that *Client) SendMessage(ctx context.Context, chatID, text string) error {
	log := that.logger.With("method", "SendMessage", "chat_id", chatID)

	if that.token == "" || that.token == placeholderToken {
		return ErrNotConfigured
	}

	chatID = strings.TrimSpace(chatID)
	if chatID == "" {
		return ErrEmptyChatID
	}

	target := normalizeChatID(chatID)

	err := that.send(ctx, target, text)
	if err == nil {
		log.Info("message sent", "text_length", len(text))
		return nil
	}

	var apiErr *APIError
	numericID, isNumeric := target.(int64)
	if !errors.As(err, &apiErr) || !apiErr.chatNotFound() || !isNumeric || numericID <= 0 {
		return err
	}

	for _, variant := range that.fallbackTargets(numericID) {
		variantErr := that.send(ctx, variant, text)
		if variantErr == nil {
			log.Info("message sent to fallback chat", "fallback_chat_id", variant)
			return nil
		}

		log.Debug("fallback chat failed", "fallback_chat_id", variant, "error", variantErr)
	}

	return err
}

func (that *Client) fallbackTargets(id int64) []any {
	targets := []any{-id}

	if supergroup, err := strconv.ParseInt("-100"+strconv.FormatInt(id, 10), 10, 64); err == nil {
		targets = append(targets, supergroup)
	}

	if username := strings.TrimSpace(that.chatUsername); username != "" {
		if !strings.HasPrefix(username, "@") {
			username = "@" + username
		}
		targets = append(targets, username)
	}

	return targets
}

func (that *Client) send(ctx context.Context, chatID any, text string) error {
	body, err := json.Marshal(sendMessageRequest{ChatID: chatID, Text: text})
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	endpoint := fmt.Sprintf("%s/bot%s/sendMessage", that.apiURL, that.token)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := that.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}
	defer resp.Body.Close()

	var result apiResponse
	if err = json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return &APIError{StatusCode: resp.StatusCode, Description: "undecodable response"}
	}

	if resp.StatusCode != http.StatusOK || !result.Ok {
		return &APIError{StatusCode: resp.StatusCode, Description: result.Description}
	}

	return nil
}

// normalizeChatID sends numeric ids as numbers and everything else, such as @channel, as a string.
func normalizeChatID(chatID string) any {
	if strings.HasPrefix(chatID, "@") {
		return chatID
	}

	if id, err := strconv.ParseInt(chatID, 10, 64); err == nil {
		return id
	}

	return chatID
}
