package store

import "time"

const (
	EventScheduled = "scheduled"
	EventActive    = "active"
	EventCompleted = "completed"

	BonusGameNumber = 6
)

type Venue struct {
	ID        string
	Slug      string
	Name      string
	TimeZone  string
	CreatedAt time.Time
}

type Event struct {
	ID        string
	VenueID   string
	EventCode string
	Name      string
	StartAt   time.Time
	Status    string
	ConfigKey string
	CreatedAt time.Time
}

type EventGame struct {
	EventID     string
	GameNumber  int
	PlaylistKey string
	DisplayMode string
	PatternID   *int
}

func (g EventGame) IsBonus() bool { return g.GameNumber == BonusGameNumber }

type UpsertEventParams struct {
	VenueID   string
	EventCode string
	Name      string
	StartAt   time.Time
	Status    string
	ConfigKey string
	// Games replaces the event's game rows in the same transaction when
	// non-nil.
	Games []EventGame
}
