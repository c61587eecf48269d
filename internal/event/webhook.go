package event

import (
	"context"
	"log/slog"
	"time"

	"github.com/go-resty/resty/v2"
)

// Webhook POSTs change notifications to a configured endpoint. Delivery
// failures are logged and dropped.
type Webhook struct {
	http *resty.Client
	url  string
}

func NewWebhook(url string, timeout time.Duration) *Webhook {
	return &Webhook{
		http: resty.New().SetTimeout(timeout),
		url:  url,
	}
}

func (w *Webhook) Emit(ctx context.Context, c Change) {
	if c.OccurredAt.IsZero() {
		c.OccurredAt = time.Now()
	}

	resp, err := w.http.R().
		SetContext(ctx).
		SetBody(c).
		Post(w.url)
	if err != nil {
		slog.Warn("event delivery failed", "entity", c.Entity, "id", c.ID, "error", err)
		return
	}

	if !resp.IsSuccess() {
		slog.Warn("event delivery rejected", "entity", c.Entity, "id", c.ID, "status", resp.StatusCode())
	}
}
