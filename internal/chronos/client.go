package chronos

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/clusterkit/chronos-janitor/pkg/httpclient"
)

// Client talks to the Chronos scheduler API.
//
// Chronos answers deletes with 204 No Content, so callers should treat a nil
// error as the only success signal and never inspect response payloads.
type Client struct {
	baseURL  string
	user     string
	password string
	http     *httpclient.Client
	logger   *slog.Logger
}

// ClientConfig holds configuration for creating a Client
type ClientConfig struct {
	BaseURL  string
	User     string
	Password string
	Timeout  time.Duration
	SkipTLS  bool
	Logger   *slog.Logger
}

// NewClient creates a new Chronos API client
func NewClient(cfg ClientConfig) *Client {
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}

	httpCfg := httpclient.Config{
		Timeout:         cfg.Timeout,
		MaxIdleConns:    10,
		IdleConnTimeout: 90 * time.Second,
		SkipTLSVerify:   cfg.SkipTLS,
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		baseURL:  strings.TrimRight(cfg.BaseURL, "/"),
		user:     cfg.User,
		password: cfg.Password,
		http:     httpclient.New(httpCfg),
		logger:   logger.With("component", "chronos"),
	}
}

// ListJobs retrieves every job definition currently registered with Chronos
func (c *Client) ListJobs(ctx context.Context) ([]Job, error) {
	var jobs []Job
	if err := c.request(ctx, http.MethodGet, "/scheduler/jobs", &jobs); err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}

	c.logger.DebugContext(ctx, "retrieved job list", "count", len(jobs))

	return jobs, nil
}

// DeleteJob removes a job definition from the scheduler
func (c *Client) DeleteJob(ctx context.Context, name string) error {
	path := "/scheduler/job/" + url.PathEscape(name)
	if err := c.request(ctx, http.MethodDelete, path, nil); err != nil {
		return fmt.Errorf("delete job %s: %w", name, err)
	}

	c.logger.DebugContext(ctx, "deleted job", "job", name)

	return nil
}

// DeleteTasks kills all in-flight tasks spawned by a job
func (c *Client) DeleteTasks(ctx context.Context, name string) error {
	path := "/scheduler/task/kill/" + url.PathEscape(name)
	if err := c.request(ctx, http.MethodDelete, path, nil); err != nil {
		return fmt.Errorf("delete tasks for job %s: %w", name, err)
	}

	c.logger.DebugContext(ctx, "deleted tasks", "job", name)

	return nil
}

// request executes an API request with authentication and error handling
func (c *Client) request(ctx context.Context, method, path string, result any) error {
	fullURL := c.baseURL + path

	req, err := http.NewRequestWithContext(ctx, method, fullURL, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	if c.user != "" {
		req.SetBasicAuth(c.user, c.password)
	}
	req.Header.Set("Accept", "application/json")

	c.logger.DebugContext(ctx, "API request",
		"method", method,
		"url", fullURL)

	resp, err := c.http.Do(ctx, req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	// Handle non-2xx status codes
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		bodyBytes, _ := io.ReadAll(resp.Body)
		c.logger.ErrorContext(ctx, "API error response",
			"status", resp.StatusCode,
			"body", string(bodyBytes))
		return fmt.Errorf("API returned status %d: %s", resp.StatusCode, string(bodyBytes))
	}

	// Deletes return 204 No Content; nothing to decode
	if result == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}

// Close closes the underlying HTTP client connections
func (c *Client) Close() {
	c.http.Close()
}
