// Package client fetches GeekNews listing pages over HTTP.
package client

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"geeknews/internal/config"
	"geeknews/internal/model"
)

// UpstreamError reports a failed listing fetch. Status is zero when the
// failure happened before a response arrived (network error, timeout).
type UpstreamError struct {
	Status int
	Err    error
}

func (e *UpstreamError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("upstream returned status %d", e.Status)
	}
	return fmt.Sprintf("upstream request failed: %v", e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// Client handles listing page fetches
type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	logger     *logrus.Logger
}

// New creates a listing client from the loaded configuration
func New(cfg *config.Config, logger *logrus.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.RequestTimeout) * time.Second,
		},
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		userAgent: cfg.UserAgent,
		logger:    logger,
	}
}

// FetchListing fetches the raw listing HTML for one category. No
// retries: failures surface immediately as *UpstreamError.
func (c *Client) FetchListing(ctx context.Context, category model.Category) (string, error) {
	pageURL := c.baseURL + category.Path()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}

	// Sites may reject default client signatures, so send a browser-like
	// header set.
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")
	req.Header.Set("Accept-Language", "ko, en;q=0.8")

	c.logger.WithFields(logrus.Fields{
		"url":      pageURL,
		"category": category,
	}).Debug("fetching listing")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &UpstreamError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &UpstreamError{Status: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &UpstreamError{Err: fmt.Errorf("reading response body: %w", err)}
	}

	return string(body), nil
}
