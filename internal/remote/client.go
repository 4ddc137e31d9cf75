// Package remote reads live report data from the hosted backend's RPC
// interface.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Procedure names exposed by the backend.
const (
	ProcEntities        = "get_v6_entities"
	ProcEntityDetail    = "get_v6_entity_detail"
	ProcEcosystemTotals = "get_v6_ecosystem_totals"
)

// ErrNotConfigured is returned when no backend URL or key is set.
var ErrNotConfigured = errors.New("remote backend not configured")

// Error is an error reported by the backend. It is returned as-is.
type Error struct {
	Status  int    `json:"-"`
	Message string `json:"message"`
	Code    string `json:"code"`
	Details string `json:"details"`
	Hint    string `json:"hint"`
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Message)
	if e.Code != "" {
		fmt.Fprintf(&b, " (code %s)", e.Code)
	}
	if e.Details != "" {
		b.WriteString(": " + e.Details)
	}
	return b.String()
}

// Config holds the backend location and credentials.
type Config struct {
	URL     string
	AnonKey string
	Timeout time.Duration
}

// Client calls backend procedures. It never retries.
type Client struct {
	baseURL string
	key     string
	client  *http.Client
}

// NewClient creates a Client. A zero timeout defaults to 10s.
func NewClient(cfg Config) (*Client, error) {
	if cfg.URL == "" || cfg.AnonKey == "" {
		return nil, ErrNotConfigured
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.URL, "/"),
		key:     cfg.AnonKey,
		client:  &http.Client{Timeout: timeout},
	}, nil
}

// Entities returns every entity as the backend stores it.
func (c *Client) Entities(ctx context.Context) (json.RawMessage, error) {
	return c.call(ctx, ProcEntities, nil)
}

// EntityDetail returns one entity with its streams and metrics.
func (c *Client) EntityDetail(ctx context.Context, slug string) (json.RawMessage, error) {
	return c.call(ctx, ProcEntityDetail, map[string]string{"p_slug": slug})
}

// EcosystemTotals returns the consortium-wide totals.
func (c *Client) EcosystemTotals(ctx context.Context) (json.RawMessage, error) {
	return c.call(ctx, ProcEcosystemTotals, nil)
}

// URL returns the backend base URL.
func (c *Client) URL() string { return c.baseURL }

func (c *Client) call(ctx context.Context, proc string, args any) (json.RawMessage, error) {
	if args == nil {
		args = struct{}{}
	}
	body, err := json.Marshal(args)
	if err != nil {
		return nil, fmt.Errorf("marshalling %s arguments: %w", proc, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/rest/v1/rpc/"+proc, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("apikey", c.key)
	req.Header.Set("Authorization", "Bearer "+c.key)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling %s: %w", proc, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading %s response: %w", proc, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &Error{Status: resp.StatusCode}
		if err := json.Unmarshal(respBody, apiErr); err != nil || apiErr.Message == "" {
			apiErr.Message = strings.TrimSpace(string(respBody))
			if apiErr.Message == "" {
				apiErr.Message = http.StatusText(resp.StatusCode)
			}
		}
		return nil, apiErr
	}

	if !json.Valid(respBody) {
		return nil, fmt.Errorf("%s returned invalid JSON", proc)
	}
	return json.RawMessage(respBody), nil
}
