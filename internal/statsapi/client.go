package statsapi

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/dghubble/sling"
	"github.com/pfrederiksen/nhl-streams/internal/gamedate"
	"github.com/pfrederiksen/nhl-streams/internal/logger"
)

const (
	DefaultBaseURL = "https://statsapi.web.nhl.com/api/v1/"
	UserAgent      = "nhl-streams/1.0 (github.com/pfrederiksen/nhl-streams)"
	Timeout        = 30 * time.Second
)

// Client fetches schedules and game content from the stats API
type Client struct {
	sling *sling.Sling
}

// scheduleParams is encoded into the /schedule query string
type scheduleParams struct {
	Date string `url:"date"`
}

// NewClient creates a Client for baseURL. An empty baseURL means the public
// API and a non-positive timeout means Timeout.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	// paths are resolved relative to the base, which needs a trailing slash
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	if timeout <= 0 {
		timeout = Timeout
	}

	httpClient := &http.Client{Timeout: timeout}
	return &Client{
		sling: sling.New().
			Client(httpClient).
			Base(baseURL).
			Set("User-Agent", UserAgent).
			Set("Accept", "application/json"),
	}
}

// GetScheduleFor fetches the games scheduled on date
func (c *Client) GetScheduleFor(ctx context.Context, date time.Time) (*Schedule, error) {
	var resp scheduleResponse
	req := c.sling.New().Get("schedule").QueryStruct(&scheduleParams{Date: gamedate.Format(date)})
	if err := c.do(ctx, "statsapi.schedule", req, &resp); err != nil {
		return nil, err
	}
	return resp.forDate(date)
}

// GetGameContent fetches the media content descriptor for a game
func (c *Client) GetGameContent(ctx context.Context, gamePk int64) (*GameContent, error) {
	var content GameContent
	req := c.sling.New().Get(fmt.Sprintf("game/%d/content", gamePk))
	if err := c.do(ctx, "statsapi.content", req, &content); err != nil {
		return nil, err
	}
	return &content, nil
}

// do sends the request and decodes a 2xx body into successV. Other statuses
// come back as *APIError.
func (c *Client) do(ctx context.Context, metric string, s *sling.Sling, successV interface{}) error {
	req, err := s.Request()
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req = req.WithContext(ctx)

	logger.Debug("Requesting stats API", logger.Fields{"url": req.URL.String()})
	logger.IncrCounter(metric + ".requests")

	start := time.Now()
	apiErr := new(APIError)
	resp, err := s.Do(req, successV, apiErr)
	logger.RecordTiming(metric, time.Since(start))

	if resp != nil && (resp.StatusCode < 200 || resp.StatusCode > 299) {
		apiErr.StatusCode = resp.StatusCode
		return apiErr
	}
	if err != nil {
		return fmt.Errorf("requesting %s: %w", req.URL.Path, err)
	}
	return nil
}
