package host

import (
	"context"
	"fmt"
)

func (s *Service) ListVenues(ctx context.Context) ([]VenueItem, error) {
	venues, err := s.repo.ListVenues(ctx)
	if err != nil {
		return nil, fmt.Errorf("list venues: %w", err)
	}
	out := make([]VenueItem, 0, len(venues))
	for _, v := range venues {
		out = append(out, VenueItem{ID: v.ID, Slug: v.Slug, Name: v.Name, TimeZone: v.TimeZone})
	}
	return out, nil
}

// VenueDashboard returns the venue with its latest events and their games.
func (s *Service) VenueDashboard(ctx context.Context, venueSlug string) (*DashboardResponse, error) {
	v, err := s.venue(ctx, venueSlug)
	if err != nil {
		return nil, err
	}
	events, err := s.repo.ListEventsByVenue(ctx, v.ID, dashboardEventLimit)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	out := &DashboardResponse{
		Venue:      VenueItem{ID: v.ID, Slug: v.Slug, Name: v.Name, TimeZone: v.TimeZone},
		Events:     make([]EventRow, 0, len(events)),
		EventGames: []GameRow{},
	}
	ids := make([]string, 0, len(events))
	for i := range events {
		out.Events = append(out.Events, *toEventRow(&events[i]))
		ids = append(ids, events[i].ID)
	}
	games, err := s.repo.ListEventGamesForEvents(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("list event games: %w", err)
	}
	for _, g := range games {
		out.EventGames = append(out.EventGames, toGameRow(g))
	}
	return out, nil
}

func (s *Service) ListPatterns(ctx context.Context) ([]PatternItem, error) {
	patterns, err := s.patterns.ListPatterns(ctx)
	if err != nil {
		return nil, fmt.Errorf("list patterns: %w", err)
	}
	out := make([]PatternItem, 0, len(patterns))
	for _, p := range patterns {
		out = append(out, PatternItem{ID: p.ID, Name: p.Name, Cells: append([]int{}, p.Cells...)})
	}
	return out, nil
}
