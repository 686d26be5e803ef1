package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"portfolio-site/internal/domain"
)

const (
	ContactTitle = "New Contact Form Submission"
	ContactColor = 0x00ff00 // green
)

// Field is a labeled value inside an embed.
type Field struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Embed is a titled structured message rendered by Discord.
type Embed struct {
	Title  string  `json:"title"`
	Fields []Field `json:"fields"`
	Color  int     `json:"color"`
}

// Payload is the JSON body accepted by a Discord webhook.
type Payload struct {
	Embeds []Embed `json:"embeds"`
}

// NewContactPayload projects a contact submission into a single embed.
func NewContactPayload(sub domain.Submission) Payload {
	return Payload{
		Embeds: []Embed{{
			Title: ContactTitle,
			Fields: []Field{
				{Name: "Name", Value: sub.Name},
				{Name: "Email", Value: sub.Email},
				{Name: "Message", Value: sub.Message},
			},
			Color: ContactColor,
		}},
	}
}

// StatusError is returned when the webhook answers with a non-2xx status.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("discord webhook returned status %d", e.StatusCode)
}

func (e *StatusError) Unwrap() error {
	return domain.ErrDeliveryFailed
}

// Client posts payloads to Discord webhooks.
type Client struct {
	httpClient *http.Client
}

// NewClient creates a webhook client whose calls are bounded by timeout.
func NewClient(timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
	}
}

// NewClientWithHTTP allows injecting a custom http.Client (mostly for tests)
func NewClientWithHTTP(httpClient *http.Client) *Client {
	return &Client{httpClient: httpClient}
}

// Send makes exactly one POST of payload to webhookURL.
func (c *Client) Send(ctx context.Context, webhookURL string, payload Payload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode webhook payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, webhookURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrDeliveryFailed, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{StatusCode: resp.StatusCode}
	}
	return nil
}
