package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"tvgt-news/internal/httpclient"
	"tvgt-news/internal/logger"
)

const userAgent = "TVGT-USA-Webhook/1.0"

// Config gates webhook delivery. It is passed explicitly at
// construction instead of being read from the environment at call
// sites.
type Config struct {
	// WebhookURL is the delivery destination. Empty makes Dispatch a
	// logged no-op.
	WebhookURL string

	// Development suppresses delivery unless EnableInDev is set.
	Development bool
	EnableInDev bool
}

// Dispatcher performs one best-effort webhook delivery per dispatch.
// No retries and no queue: the upstream publish trigger has no
// guaranteed-delivery contract either, so a local one gains nothing.
type Dispatcher struct {
	cfg        Config
	httpClient *http.Client
}

// New builds a Dispatcher. A nil httpClient falls back to the shared
// default client.
func New(cfg Config, httpClient *http.Client) *Dispatcher {
	if httpClient == nil {
		httpClient = httpclient.NewDefault()
	}
	return &Dispatcher{cfg: cfg, httpClient: httpClient}
}

// wireBody is the payload plus the construction-time timestamp.
type wireBody struct {
	Payload
	Timestamp string `json:"timestamp"`
}

// Dispatch performs exactly one POST of the payload and reports
// whether it was delivered. Every failure mode (gating, bad config,
// transport error, non-2xx) collapses to false so the caller can
// always answer its trigger without handling errors.
func (d *Dispatcher) Dispatch(ctx context.Context, p Payload) bool {
	if d.cfg.Development && !d.cfg.EnableInDev {
		logger.Log.Info("notifier: delivery disabled in development")
		return false
	}
	if d.cfg.WebhookURL == "" {
		logger.Log.Warn("notifier: MAKE_WEBHOOK_URL not configured")
		return false
	}

	body, err := json.Marshal(wireBody{
		Payload:   p,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		logger.Log.Errorf("notifier: encode payload: %v", err)
		return false
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.cfg.WebhookURL, bytes.NewReader(body))
	if err != nil {
		logger.Log.Errorf("notifier: build request: %v", err)
		return false
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := d.httpClient.Do(req)
	if err != nil {
		logger.Log.Errorf("notifier: webhook delivery failed: %v", err)
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		logger.Log.Infof("notifier: webhook delivered status=%d url=%s", resp.StatusCode, p.URL)
		return true
	}

	snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
	logger.Log.Errorf("notifier: webhook rejected status=%d body=%s", resp.StatusCode, string(snippet))
	return false
}
