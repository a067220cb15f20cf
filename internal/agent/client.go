package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sirupsen/logrus"
)

// Client talks to a Mastra agent service: directory lookups plus the chat
// stream endpoint.
type Client struct {
	baseURL string
	http    *resty.Client
	sse     *resty.Client
	log     *logrus.Logger
}

type ClientOption func(*Client)

// WithLogger replaces the client's logger.
func WithLogger(log *logrus.Logger) ClientOption {
	return func(c *Client) {
		if log != nil {
			c.log = log
		}
	}
}

// WithTimeout sets the request timeout for directory calls. Streaming
// requests are exempt; their lifetime is bounded by the caller's context.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		c.http.SetTimeout(d)
	}
}

func NewClient(baseURL string, opts ...ClientOption) *Client {
	httpClient := resty.New()
	httpClient.SetBaseURL(baseURL)
	httpClient.SetHeader("User-Agent", "vargos-cli/1.0")

	// Streaming uses its own client: no timeout (streams are long-lived,
	// bounded by the caller's context) and the body is consumed raw.
	sseClient := resty.New()
	sseClient.SetBaseURL(baseURL)
	sseClient.SetHeader("User-Agent", "vargos-cli/1.0")
	sseClient.SetDoNotParseResponse(true)

	c := &Client{
		baseURL: baseURL,
		http:    httpClient,
		sse:     sseClient,
		log:     logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ListAgents fetches the agent collection from the directory.
func (c *Client) ListAgents(ctx context.Context) ([]Agent, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		Get("/api/agents")
	if err != nil {
		return nil, fmt.Errorf("list agents: %w", err)
	}
	if !resp.IsSuccess() {
		return nil, &DirectoryError{StatusCode: resp.StatusCode()}
	}

	var agents []Agent
	if err := json.Unmarshal(resp.Body(), &agents); err != nil {
		return nil, fmt.Errorf("decode agent list: %w", err)
	}

	c.log.WithField("count", len(agents)).Debug("listed agents")
	return agents, nil
}

// GetAgent fetches metadata for a single agent by name.
func (c *Client) GetAgent(ctx context.Context, name string) (*Agent, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		Get("/api/agents/" + url.PathEscape(name))
	if err != nil {
		return nil, fmt.Errorf("get agent %q: %w", name, err)
	}
	if !resp.IsSuccess() {
		return nil, &DirectoryError{Name: name, StatusCode: resp.StatusCode()}
	}

	var agent Agent
	if err := json.Unmarshal(resp.Body(), &agent); err != nil {
		return nil, fmt.Errorf("decode agent %q: %w", name, err)
	}
	return &agent, nil
}

// ValidateAgent reports whether the agent exists. Every failure, not-found
// and network alike, collapses to false; callers that need to tell them
// apart use GetAgent directly.
func (c *Client) ValidateAgent(ctx context.Context, name string) bool {
	_, err := c.GetAgent(ctx, name)
	return err == nil
}
