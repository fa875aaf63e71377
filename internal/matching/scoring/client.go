package scoring

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"
)

var (
	// ErrUnavailable means the connection to the scoring service could not
	// be established. Callers surface it as a distinct status; everything
	// else collapses into ErrService.
	ErrUnavailable = errors.New("scoring service unavailable")
	ErrService     = errors.New("scoring service error")
)

type Item struct {
	ID   int64  `json:"id"`
	Text string `json:"text"`
}

type Request struct {
	QueryText string `json:"query_text"`
	Items     []Item `json:"items"`
}

// Pair is one ranked result from the scoring service. The service's own
// rank order is preserved unchanged through the whole pipeline.
type Pair struct {
	ID    int64   `json:"id"`
	Score float64 `json:"score"`
}

type Client interface {
	Score(ctx context.Context, req Request) ([]Pair, error)
}

type httpClient struct {
	endpoint string
	client   *http.Client
	logger   *log.Logger
}

type scoreResponse struct {
	Matches []Pair `json:"matches"`
}

// NewHTTPClient builds a client for the external scoring service. No
// retries are performed here; a single attempt either succeeds or maps
// onto the two-way failure taxonomy.
func NewHTTPClient(baseURL string, timeout time.Duration, logger *log.Logger) Client {
	baseURL = strings.TrimSpace(baseURL)
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &httpClient{
		endpoint: strings.TrimRight(baseURL, "/") + "/match",
		client:   &http.Client{Timeout: timeout},
		logger:   logger,
	}
}

func (c *httpClient) Score(ctx context.Context, req Request) ([]Pair, error) {
	if c == nil || c.client == nil {
		return nil, errors.New("nil scoring client")
	}

	b, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(httpReq)
	if err != nil {
		if c.logger != nil {
			c.logger.Printf("[Scoring] connect failed endpoint=%s err=%v", c.endpoint, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		rb, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		bodyStr := strings.TrimSpace(string(rb))
		if c.logger != nil {
			c.logger.Printf("[Scoring] request failed endpoint=%s status=%d body=%q", c.endpoint, resp.StatusCode, bodyStr)
		}
		return nil, fmt.Errorf("%w: status=%d body=%s", ErrService, resp.StatusCode, bodyStr)
	}

	var out scoreResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("%w: malformed response: %v", ErrService, err)
	}
	return out.Matches, nil
}

var _ Client = (*httpClient)(nil)
