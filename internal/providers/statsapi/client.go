package statsapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Config controls how the statsapi client reaches the upstream API.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
}

// Client fetches schedule, standings, box score and roster payloads from
// the MLB Stats API. It performs no normalization beyond JSON decoding.
type Client struct {
	baseURL    string
	httpClient httpDoer
	now        func() time.Time
}

// NewClient constructs a statsapi client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		httpClient: resolveHTTPClient(cfg.HTTPClient),
		now:        time.Now,
	}
}

// FetchSchedule retrieves the raw schedule payload for a YYYY-MM-DD date.
func (c *Client) FetchSchedule(ctx context.Context, date string) (*SchedulePayload, error) {
	q := url.Values{}
	q.Set("sportId", sportID)
	q.Set("date", c.resolveDate(date))
	q.Set("hydrate", scheduleHydrate)

	var payload SchedulePayload
	if err := c.getJSON(ctx, "/schedule", q, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// FetchStandings retrieves regular-season standings as of the given date.
func (c *Client) FetchStandings(ctx context.Context, date string) (*StandingsPayload, error) {
	resolved := c.resolveDate(date)

	q := url.Values{}
	q.Set("leagueId", leagueIDs)
	q.Set("season", resolved[:4])
	q.Set("date", resolved)
	q.Set("standingsTypes", "regularSeason")

	var payload StandingsPayload
	if err := c.getJSON(ctx, "/standings", q, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// FetchBoxScore retrieves the detailed box score for a game.
func (c *Client) FetchBoxScore(ctx context.Context, gameID int64) (*BoxScorePayload, error) {
	var payload BoxScorePayload
	path := fmt.Sprintf("/game/%d/boxscore", gameID)
	if err := c.getJSON(ctx, path, nil, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// FetchRoster retrieves a team's active roster.
func (c *Client) FetchRoster(ctx context.Context, teamID int64) (*RosterPayload, error) {
	q := url.Values{}
	q.Set("rosterType", "active")

	var payload RosterPayload
	path := fmt.Sprintf("/teams/%d/roster", teamID)
	if err := c.getJSON(ctx, path, q, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// FetchPlayerStats retrieves a player's season pitching stats.
func (c *Client) FetchPlayerStats(ctx context.Context, playerID int64) (*PlayerStatsPayload, error) {
	q := url.Values{}
	q.Set("stats", "season")
	q.Set("group", "pitching")

	var payload PlayerStatsPayload
	path := fmt.Sprintf("/people/%d/stats", playerID)
	if err := c.getJSON(ctx, path, q, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

func (c *Client) getJSON(ctx context.Context, path string, query url.Values, target any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	if query != nil {
		req.URL.RawQuery = query.Encode()
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return &RateLimitError{
			Provider:   ProviderName,
			StatusCode: resp.StatusCode,
			RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After")),
		}
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &StatusError{
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	return json.NewDecoder(resp.Body).Decode(target)
}

func (c *Client) resolveDate(date string) string {
	if date != "" {
		if _, err := time.Parse("2006-01-02", date); err == nil {
			return date
		}
	}
	return c.now().UTC().Format("2006-01-02")
}
