// Package public serves the read-only lookups a player's device makes before
// and during an event.
package public

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"video-bingo/internal/catalog"
	"video-bingo/internal/eventconfig"
	"video-bingo/internal/store"
)

type Repository interface {
	GetVenueBySlug(ctx context.Context, slug string) (*store.Venue, error)
	GetEventByCode(ctx context.Context, eventCode string) (*store.Event, error)
	GetLatestActiveEvent(ctx context.Context, venueID string) (*store.Event, error)
	ListEventGames(ctx context.Context, eventID string) ([]store.EventGame, error)
}

type PlayResolver interface {
	ResolveForPlay(ctx context.Context, id string) (*eventconfig.Resolved, error)
}

type Service struct {
	repo     Repository
	patterns catalog.PatternCatalog
	resolver PlayResolver
}

func NewService(repo Repository, patterns catalog.PatternCatalog, resolver PlayResolver) *Service {
	return &Service{repo: repo, patterns: patterns, resolver: resolver}
}

// ActiveEvent returns the venue's most recent active event, or a nil event
// when there is none.
func (s *Service) ActiveEvent(ctx context.Context, venueID string) (*ActiveEventResponse, error) {
	venueID = strings.TrimSpace(venueID)
	if venueID == "" {
		return nil, ErrInvalidRequest
	}
	ev, err := s.repo.GetLatestActiveEvent(ctx, venueID)
	if errors.Is(err, store.ErrNotFound) {
		return &ActiveEventResponse{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("active event lookup: %w", err)
	}
	return &ActiveEventResponse{Event: &ActiveEvent{EventCode: ev.EventCode, StartAt: ev.StartAt.UTC()}}, nil
}

// EventConfig returns the stored games of an active event with the full
// pattern catalog ordered by name.
func (s *Service) EventConfig(ctx context.Context, eventCode string) (*EventConfigResponse, error) {
	eventCode = strings.TrimSpace(eventCode)
	if eventCode == "" {
		return nil, ErrInvalidRequest
	}
	empty := &EventConfigResponse{Patterns: []PatternItem{}}
	ev, err := s.repo.GetEventByCode(ctx, eventCode)
	if errors.Is(err, store.ErrNotFound) {
		return empty, nil
	}
	if err != nil {
		return nil, fmt.Errorf("event lookup: %w", err)
	}
	if !strings.EqualFold(ev.Status, store.EventActive) {
		return empty, nil
	}

	rows, err := s.repo.ListEventGames(ctx, ev.ID)
	if err != nil {
		return nil, fmt.Errorf("event games lookup: %w", err)
	}
	patterns, err := s.patterns.ListPatterns(ctx)
	if err != nil {
		return nil, fmt.Errorf("list patterns: %w", err)
	}

	out := &EventConfigResponse{
		Event: &EventConfigEvent{
			ID:         ev.ID,
			EventCode:  ev.EventCode,
			StartAt:    ev.StartAt.UTC(),
			Status:     ev.Status,
			VenueID:    ev.VenueID,
			EventGames: make([]EventGame, 0, len(rows)),
		},
		Patterns: make([]PatternItem, 0, len(patterns)),
	}
	for _, g := range rows {
		mode := g.DisplayMode
		if mode == "" {
			mode = string(catalog.DisplayTitle)
		}
		out.Event.EventGames = append(out.Event.EventGames, EventGame{
			GameNumber:  g.GameNumber,
			PlaylistKey: g.PlaylistKey,
			DisplayMode: mode,
			PatternID:   g.PatternID,
		})
	}
	for _, p := range patterns {
		out.Patterns = append(out.Patterns, PatternItem{ID: p.ID, Name: p.Name, Cells: append([]int{}, p.Cells...)})
	}
	sort.SliceStable(out.Patterns, func(i, j int) bool { return out.Patterns[i].Name < out.Patterns[j].Name })
	return out, nil
}

func (s *Service) Venue(ctx context.Context, slug string) (*VenueResponse, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return nil, ErrInvalidRequest
	}
	v, err := s.repo.GetVenueBySlug(ctx, slug)
	if errors.Is(err, store.ErrNotFound) {
		return &VenueResponse{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("venue lookup: %w", err)
	}
	return &VenueResponse{Venue: &Venue{ID: v.ID, Slug: v.Slug, Name: v.Name}}, nil
}

// Resolved is the player's game list for an event after local, database and
// legacy precedence. Stored events must be active.
func (s *Service) Resolved(ctx context.Context, eventCode string) (*ResolvedResponse, error) {
	eventCode = strings.TrimSpace(eventCode)
	if eventCode == "" {
		return nil, ErrInvalidRequest
	}
	res, err := s.resolver.ResolveForPlay(ctx, eventCode)
	switch {
	case errors.Is(err, eventconfig.ErrNotConfigured):
		return nil, ErrEventNotFound
	case errors.Is(err, eventconfig.ErrNotActive):
		return nil, ErrEventNotActive
	case err != nil:
		return nil, fmt.Errorf("resolve event: %w", err)
	}
	return &ResolvedResponse{Event: res}, nil
}
