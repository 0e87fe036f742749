// Package player is the device side of a bingo night: it loads the resolved
// game list from the server and keeps the device's cards.
package player

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"video-bingo/internal/eventconfig"
)

var ErrEventNotFound = errors.New("event_not_found")

type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

type resolvedEnvelope struct {
	OK    bool                  `json:"ok"`
	Error string                `json:"error"`
	Event *eventconfig.Resolved `json:"event"`
}

// Resolved fetches the playable game list for an event. Unknown and inactive
// events both report ErrEventNotFound.
func (c *Client) Resolved(ctx context.Context, eventCode string) (*eventconfig.Resolved, error) {
	u := c.baseURL + "/api/public/events/" + url.PathEscape(eventCode) + "/resolved"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch event %s: %w", eventCode, err)
	}
	defer resp.Body.Close()

	var env resolvedEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("decode event %s (status %d): %w", eventCode, resp.StatusCode, err)
	}
	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("%w: %s", ErrEventNotFound, env.Error)
	case resp.StatusCode != http.StatusOK || !env.OK:
		return nil, fmt.Errorf("fetch event %s: status %d: %s", eventCode, resp.StatusCode, env.Error)
	case env.Event == nil:
		return nil, fmt.Errorf("fetch event %s: empty response", eventCode)
	}
	return env.Event, nil
}
