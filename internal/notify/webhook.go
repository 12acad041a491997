package notify

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"premise-hub/utils"
)

// Webhook is a Sender that POSTs events as JSON to callback URLs the
// parties registered beforehand. Events for parties without a callback
// are logged and dropped.
type Webhook struct {
	client *http.Client

	mu        sync.RWMutex
	callbacks map[string]string // party identity -> callback URL
}

// NewWebhook creates a webhook transport with a short request timeout so
// a slow subscriber cannot back up the dispatcher worker.
func NewWebhook() *Webhook {
	return &Webhook{
		client:    &http.Client{Timeout: 5 * time.Second},
		callbacks: make(map[string]string),
	}
}

// Subscribe registers (or replaces) a party's callback URL.
func (w *Webhook) Subscribe(party, callbackURL string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.callbacks[party] = callbackURL
}

// Send delivers one event to the party's callback, if registered.
func (w *Webhook) Send(to string, kind Kind, payload any) error {
	w.mu.RLock()
	url, ok := w.callbacks[to]
	w.mu.RUnlock()

	if !ok {
		utils.Debug("no callback registered, dropping event", map[string]any{
			"to":   to,
			"kind": string(kind),
		})
		return nil
	}

	body, err := json.Marshal(Notification{To: to, Kind: kind, Payload: payload})
	if err != nil {
		return fmt.Errorf("webhook send to %s: %w", to, err)
	}

	resp, err := w.client.Post(url, "application/json", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("webhook send to %s: %w", to, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("webhook send to %s: callback returned %d", to, resp.StatusCode)
	}
	return nil
}
