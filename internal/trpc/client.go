package trpc

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/cleared-dev/spliit/internal/buildinfo"
)

// RequestIDHeader carries a per-request correlation ID.
const RequestIDHeader = "X-Request-Id"

// Client issues batched tRPC requests against a base URL such as
// https://spliit.app/api/trpc. It holds no mutable state.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *slog.Logger
}

// NewClient creates a Client. A nil httpClient uses http.DefaultClient and a
// nil logger uses slog.Default().
func NewClient(baseURL string, httpClient *http.Client, logger *slog.Logger) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
		logger:  logger,
	}
}

// Query performs a GET of procedure with the batch as the `input` parameter
// and decodes the first element's payload into out.
func (c *Client) Query(ctx context.Context, procedure string, input Batch, out any) error {
	encoded, err := input.Encode()
	if err != nil {
		return err
	}

	u, err := c.procedureURL(procedure)
	if err != nil {
		return err
	}
	u.RawQuery = url.Values{"batch": {"1"}, "input": {encoded}}.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return fmt.Errorf("building %s request: %w", procedure, err)
	}

	body, err := c.do(req, procedure)
	if err != nil {
		return err
	}
	return DecodeFirst(procedure, body, out)
}

// Mutate POSTs the batch as a JSON body and returns the raw response body.
func (c *Client) Mutate(ctx context.Context, procedure string, input Batch) ([]byte, error) {
	payload, err := json.Marshal(input)
	if err != nil {
		return nil, fmt.Errorf("encoding %s body: %w", procedure, err)
	}

	u, err := c.procedureURL(procedure)
	if err != nil {
		return nil, err
	}
	u.RawQuery = url.Values{"batch": {"1"}}.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.String(), bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("building %s request: %w", procedure, err)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, procedure)
}

func (c *Client) procedureURL(procedure string) (*url.URL, error) {
	u, err := url.Parse(c.baseURL + "/" + procedure)
	if err != nil {
		return nil, fmt.Errorf("parsing URL for %s: %w", procedure, err)
	}
	return u, nil
}

func (c *Client) do(req *http.Request, procedure string) ([]byte, error) {
	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", buildinfo.UserAgent())
	req.Header.Set(RequestIDHeader, requestID)

	log := c.logger.With("procedure", procedure, "request_id", requestID, "method", req.Method)
	start := time.Now()

	resp, err := c.http.Do(req)
	if err != nil {
		log.DebugContext(req.Context(), "request failed", "error", err)
		return nil, fmt.Errorf("%s %s: %w", req.Method, procedure, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading %s response: %w", procedure, err)
	}

	log.DebugContext(req.Context(), "request completed",
		"status", resp.StatusCode,
		"duration_ms", time.Since(start).Milliseconds(),
		"bytes", len(body))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &TransportError{
			Method:     req.Method,
			URL:        withoutQuery(req.URL),
			StatusCode: resp.StatusCode,
			Message:    errorMessage(body),
			Body:       body,
		}
	}
	return body, nil
}

func withoutQuery(u *url.URL) string {
	stripped := *u
	stripped.RawQuery = ""
	return stripped.Redacted()
}
