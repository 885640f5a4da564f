package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/johnquangdev/teamsync/pkg/config"
)

// Message is a single outbound email
type Message struct {
	To      string
	Subject string
	HTML    string
}

// Result reports the outcome of one delivery attempt. Delivery is best-effort:
// callers inspect the result and log, they never fail their own work on Err.
type Result struct {
	Delivered bool
	MessageID string
	Err       error
}

// Sender delivers email. The Result return (instead of a bare error) keeps the
// absorb-and-log contract visible in the signature.
type Sender interface {
	Send(ctx context.Context, msg Message) Result
}

// ResendClient is a minimal client for the Resend email API
type ResendClient struct {
	apiKey  string
	baseURL string
	from    string
	client  *http.Client
}

// NewResendClient creates a Resend client using values from the provided config.
// Pass a nil config to fall back to environment variables.
func NewResendClient(cfg *config.ResendConfig) *ResendClient {
	var apiKey string
	if cfg != nil {
		apiKey = cfg.APIKey
	}
	if apiKey == "" {
		apiKey = os.Getenv("RESEND_API_KEY")
	}

	var base string
	if cfg != nil && cfg.BaseURL != "" {
		base = cfg.BaseURL
	} else {
		base = os.Getenv("RESEND_API_URL")
		if base == "" {
			base = "https://api.resend.com"
		}
	}

	from := "TeamSync <onboarding@resend.dev>"
	timeout := 15 * time.Second
	if cfg != nil {
		if cfg.FromAddress != "" {
			from = cfg.FromAddress
		}
		if cfg.Timeout > 0 {
			timeout = cfg.Timeout
		}
	}

	return &ResendClient{
		apiKey:  apiKey,
		baseURL: base,
		from:    from,
		client:  &http.Client{Timeout: timeout},
	}
}

type sendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

type sendResponse struct {
	ID    string `json:"id"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// Send delivers one email via Resend
func (r *ResendClient) Send(ctx context.Context, msg Message) Result {
	reqBody := sendRequest{
		From:    r.from,
		To:      []string{msg.To},
		Subject: msg.Subject,
		HTML:    msg.HTML,
	}

	b, err := json.Marshal(reqBody)
	if err != nil {
		return Result{Err: err}
	}

	endpoint := r.baseURL + "/emails"
	req, err := http.NewRequestWithContext(ctx, "POST", endpoint, bytes.NewReader(b))
	if err != nil {
		return Result{Err: err}
	}
	req.Header.Set("Authorization", "Bearer "+r.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return Result{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return Result{Err: fmt.Errorf("resend returned status %d", resp.StatusCode)}
	}

	var sr sendResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		return Result{Err: err}
	}
	if sr.Error != nil {
		return Result{Err: fmt.Errorf("resend api error: %s", sr.Error.Message)}
	}

	return Result{Delivered: true, MessageID: sr.ID}
}
