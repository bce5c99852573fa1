package telegram

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Notifier posts free-text messages to a Telegram chat via the Bot API.
// It is the human-relay side channel for payment and sms-code data: callers
// must never await it on a response path.
type Notifier struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

func NewNotifier(token string, timeout time.Duration) *Notifier {
	return &Notifier{
		baseURL:    "https://api.telegram.org",
		token:      token,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// NewNotifierWithBaseURL is used by tests to point at a fake Bot API.
func NewNotifierWithBaseURL(baseURL, token string, timeout time.Duration) *Notifier {
	n := NewNotifier(token, timeout)
	n.baseURL = baseURL
	return n
}

func (n *Notifier) Notify(ctx context.Context, chatID, text string) error {
	form := url.Values{}
	form.Set("chat_id", chatID)
	form.Set("text", text)

	endpoint := fmt.Sprintf("%s/bot%s/sendMessage", n.baseURL, n.token)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := n.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("telegram returned status %d", resp.StatusCode)
	}

	var body struct {
		OK bool `json:"ok"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return err
	}
	if !body.OK {
		return fmt.Errorf("telegram rejected message")
	}
	return nil
}
