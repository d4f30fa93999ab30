package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/november7co/memberqa/internal/config"
	"github.com/november7co/memberqa/internal/core"
)

const maxResponseSize = 8 << 20 // 8MB limit

// Client fetches the member message collection from the upstream endpoint
// and normalizes it into core.Message values. It implements
// core.MessageSource. Every call hits the network: the service is
// deliberately stateless, so there is no cache between requests.
type Client struct {
	client *http.Client
	url    string
}

func NewClient(cfg *config.UpstreamConfig) *Client {
	return &Client{
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
		url: cfg.URL,
	}
}

// NewClientWithTimeout is a convenience for callers that configure the
// endpoint directly, such as tests and the inspect command.
func NewClientWithTimeout(url string, timeout time.Duration) *Client {
	return NewClient(&config.UpstreamConfig{URL: url, Timeout: timeout})
}

func (c *Client) Fetch(ctx context.Context) ([]core.Message, error) {
	body, err := c.get(ctx)
	if err != nil {
		return nil, err
	}
	return Normalize(body)
}

// FetchRaw returns the decoded upstream items without dropping unusable
// entries. The inspect report uses it to count data-quality problems that
// Normalize would silently discard.
func (c *Client) FetchRaw(ctx context.Context) ([]map[string]any, error) {
	body, err := c.get(ctx)
	if err != nil {
		return nil, err
	}

	items, err := decodeItems(body)
	if err != nil {
		return nil, err
	}
	out := make([]map[string]any, 0, len(items))
	for _, it := range items {
		m := map[string]any{}
		if err := json.Unmarshal(it, &m); err != nil {
			continue
		}
		out = append(out, m)
	}
	return out, nil
}

func (c *Client) get(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: create request: %v", core.ErrUpstream, err)
	}
	req.Header.Set("User-Agent", core.ServiceUserAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", core.ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("%w: HTTP %d: %s", core.ErrUpstream, resp.StatusCode, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", core.ErrUpstream, err)
	}
	return body, nil
}
