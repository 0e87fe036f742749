package host

import "time"

type GameInput struct {
	GameNumber  int    `json:"gameNumber"`
	PlaylistKey string `json:"playlistKey"`
	DisplayMode string `json:"displayMode,omitempty"`
	PatternID   *int   `json:"patternId"`
}

type CreateEventInput struct {
	VenueSlug  string `json:"venueSlug"`
	EventDate  string `json:"eventDate"`
	ConfigKey  string `json:"configKey,omitempty"`
	Name       string `json:"name,omitempty"`
	MakeActive bool   `json:"makeActive"`
	// Games is optional. When present it replaces the event's games.
	Games []GameInput `json:"games,omitempty"`
}

type EventRow struct {
	ID        string    `json:"id"`
	VenueID   string    `json:"venue_id"`
	EventCode string    `json:"event_code"`
	Status    string    `json:"status"`
	ConfigKey *string   `json:"config_key"`
	Name      string    `json:"name"`
	StartAt   time.Time `json:"start_at"`
}

type GameRow struct {
	EventID     string `json:"event_id,omitempty"`
	GameNumber  int    `json:"game_number"`
	PlaylistKey string `json:"playlist_key"`
	DisplayMode string `json:"display_mode"`
	PatternID   *int   `json:"pattern_id"`
}

type Bonus struct {
	PlaylistKey string `json:"playlist_key"`
	DisplayMode string `json:"display_mode"`
}

type GameConfigResponse struct {
	Games []GameRow `json:"games"`
	Bonus *Bonus    `json:"bonus"`
}

type VenueItem struct {
	ID       string `json:"id"`
	Slug     string `json:"slug"`
	Name     string `json:"name"`
	TimeZone string `json:"time_zone"`
}

type DashboardResponse struct {
	Venue      VenueItem  `json:"venue"`
	Events     []EventRow `json:"events"`
	EventGames []GameRow  `json:"eventGames"`
}

type PatternItem struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Cells []int  `json:"cells"`
}
