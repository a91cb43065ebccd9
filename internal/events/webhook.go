package events

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/GlebRadaev/gridbill/pkg/clients"
)

// WebhookPublisher POSTs each event as JSON to a fixed URL.
type WebhookPublisher struct {
	url    string
	client clients.HTTPClientI
}

func NewWebhookPublisher(url string, client clients.HTTPClientI) *WebhookPublisher {
	return &WebhookPublisher{url: url, client: client}
}

func (w *WebhookPublisher) Publish(ctx context.Context, e Event) error {
	body, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}
	headers := http.Header{}
	headers.Set("Content-Type", "application/json")
	headers.Set("X-Event-Id", e.ID)
	headers.Set("X-Event-Type", e.Type)

	status, _, err := w.client.Post(ctx, w.url, headers, body)
	if err != nil {
		return fmt.Errorf("webhook %s: %w", e.Type, err)
	}
	if status < 200 || status >= 300 {
		return fmt.Errorf("webhook %s: unexpected status %d", e.Type, status)
	}
	return nil
}

func (w *WebhookPublisher) Close() error { return nil }
