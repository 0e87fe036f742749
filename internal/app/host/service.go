// Package host implements the host-facing event operations: activation,
// game configuration and the read views behind the host dashboard.
package host

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"video-bingo/internal/catalog"
	"video-bingo/internal/config"
	"video-bingo/internal/store"

	"github.com/rs/zerolog/log"
)

type Repository interface {
	GetVenueBySlug(ctx context.Context, slug string) (*store.Venue, error)
	ListVenues(ctx context.Context) ([]store.Venue, error)

	GetEventByCode(ctx context.Context, eventCode string) (*store.Event, error)
	GetLatestActiveEvent(ctx context.Context, venueID string) (*store.Event, error)
	ListEventsByVenue(ctx context.Context, venueID string, limit int) ([]store.Event, error)
	UpsertEvent(ctx context.Context, p store.UpsertEventParams) (*store.Event, error)
	ActivateEvent(ctx context.Context, venueID, eventCode string) (*store.Event, error)
	CompleteActiveEvents(ctx context.Context, venueID string) (int64, error)

	ListEventGames(ctx context.Context, eventID string) ([]store.EventGame, error)
	ListEventGamesForEvents(ctx context.Context, eventIDs []string) ([]store.EventGame, error)
	GetEventGame(ctx context.Context, eventID string, gameNumber int) (*store.EventGame, error)
	ReplaceEventGames(ctx context.Context, eventID string, games []store.EventGame) (bool, error)
	UpsertEventGame(ctx context.Context, g store.EventGame) error
	DeleteEventGame(ctx context.Context, eventID string, gameNumber int) (bool, error)
}

// ConfigKeys reports whether a legacy config key names a curated event.
type ConfigKeys interface {
	Has(key string) bool
}

const dashboardEventLimit = 25

type Service struct {
	repo        Repository
	patterns    catalog.PatternCatalog
	configKeys  ConfigKeys
	defaultLoc  *time.Location
	maxPlaylist int
	startHour   int
	now         func() time.Time
}

func NewService(repo Repository, patterns catalog.PatternCatalog, configKeys ConfigKeys, cfg config.ServerConfig) (*Service, error) {
	loc, err := time.LoadLocation(cfg.DefaultTimeZone)
	if err != nil {
		return nil, fmt.Errorf("load time zone %q: %w", cfg.DefaultTimeZone, err)
	}
	return &Service{
		repo:        repo,
		patterns:    patterns,
		configKeys:  configKeys,
		defaultLoc:  loc,
		maxPlaylist: cfg.MaxPlaylistNumber,
		startHour:   cfg.EventStartHour,
		now:         time.Now,
	}, nil
}

func (s *Service) venue(ctx context.Context, slug string) (*store.Venue, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return nil, invalidf("Missing venueSlug.")
	}
	v, err := s.repo.GetVenueBySlug(ctx, slug)
	if errors.Is(err, store.ErrNotFound) {
		return nil, notFound("Venue not found.")
	}
	if err != nil {
		return nil, fmt.Errorf("venue lookup: %w", err)
	}
	return v, nil
}

// location is the venue's own zone when it has a valid one.
func (s *Service) location(v *store.Venue) *time.Location {
	if v.TimeZone == "" {
		return s.defaultLoc
	}
	loc, err := time.LoadLocation(v.TimeZone)
	if err != nil {
		log.Warn().Err(err).Str("venue", v.Slug).Str("time_zone", v.TimeZone).Msg("venue time zone invalid, using default")
		return s.defaultLoc
	}
	return loc
}

// venueEvent resolves an event code that must belong to the venue.
func (s *Service) venueEvent(ctx context.Context, v *store.Venue, eventCode string) (*store.Event, error) {
	eventCode = strings.TrimSpace(eventCode)
	if eventCode == "" {
		return nil, invalidf("Missing eventCode.")
	}
	ev, err := s.repo.GetEventByCode(ctx, eventCode)
	if errors.Is(err, store.ErrNotFound) {
		return nil, notFound("Event not found for this venue.")
	}
	if err != nil {
		return nil, fmt.Errorf("event lookup: %w", err)
	}
	if ev.VenueID != v.ID {
		return nil, notFound("Event not found for this venue.")
	}
	return ev, nil
}

func toEventRow(e *store.Event) *EventRow {
	row := &EventRow{
		ID:        e.ID,
		VenueID:   e.VenueID,
		EventCode: e.EventCode,
		Status:    e.Status,
		Name:      e.Name,
		StartAt:   e.StartAt.UTC(),
	}
	if e.ConfigKey != "" {
		key := e.ConfigKey
		row.ConfigKey = &key
	}
	return row
}

func toGameRow(g store.EventGame) GameRow {
	mode := g.DisplayMode
	if mode == "" {
		mode = string(catalog.DisplayTitle)
	}
	return GameRow{
		EventID:     g.EventID,
		GameNumber:  g.GameNumber,
		PlaylistKey: g.PlaylistKey,
		DisplayMode: mode,
		PatternID:   g.PatternID,
	}
}

func mapStoreWriteErr(op string, err error) error {
	if errors.Is(err, store.ErrActiveConflict) {
		return fmt.Errorf("%w: another event became active for this venue", ErrActivationConflict)
	}
	return fmt.Errorf("%s: %w", op, err)
}
