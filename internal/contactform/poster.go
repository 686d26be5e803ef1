package contactform

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"portfolio-site/internal/domain"
)

// SubmitPath is the route of the submission handler.
const SubmitPath = "/api/sendtodiscord"

// Poster sends a submission to the submission handler and reports the HTTP status.
type Poster interface {
	Post(ctx context.Context, sub domain.Submission) (int, error)
}

// HTTPPoster posts submissions as JSON to a running site.
type HTTPPoster struct {
	endpoint   string
	httpClient *http.Client
}

// NewHTTPPoster targets baseURL (e.g. https://xivn.dev). A nil client uses http.DefaultClient.
func NewHTTPPoster(baseURL string, httpClient *http.Client) *HTTPPoster {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &HTTPPoster{
		endpoint:   strings.TrimRight(baseURL, "/") + SubmitPath,
		httpClient: httpClient,
	}
}

func (p *HTTPPoster) Post(ctx context.Context, sub domain.Submission) (int, error) {
	body, err := json.Marshal(sub)
	if err != nil {
		return 0, fmt.Errorf("failed to encode submission: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return 0, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	return resp.StatusCode, nil
}
