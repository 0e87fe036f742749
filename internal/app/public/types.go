package public

import (
	"time"

	"video-bingo/internal/eventconfig"
)

type ActiveEvent struct {
	EventCode string    `json:"event_code"`
	StartAt   time.Time `json:"start_at"`
}

type ActiveEventResponse struct {
	Event *ActiveEvent `json:"event"`
}

type EventGame struct {
	GameNumber  int    `json:"game_number"`
	PlaylistKey string `json:"playlist_key"`
	DisplayMode string `json:"display_mode"`
	PatternID   *int   `json:"pattern_id"`
}

type EventConfigEvent struct {
	ID         string      `json:"id"`
	EventCode  string      `json:"event_code"`
	StartAt    time.Time   `json:"start_at"`
	Status     string      `json:"status"`
	VenueID    string      `json:"venue_id"`
	EventGames []EventGame `json:"event_games"`
}

type PatternItem struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Cells []int  `json:"cells"`
}

// EventConfigResponse has a nil Event and no patterns unless the event is active.
type EventConfigResponse struct {
	Event    *EventConfigEvent `json:"event"`
	Patterns []PatternItem     `json:"patterns"`
}

type Venue struct {
	ID   string `json:"id"`
	Slug string `json:"slug"`
	Name string `json:"name"`
}

type VenueResponse struct {
	Venue *Venue `json:"venue"`
}

type ResolvedResponse struct {
	Event *eventconfig.Resolved `json:"event"`
}
