package host

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"video-bingo/internal/catalog"
	"video-bingo/internal/store"

	"github.com/rs/zerolog/log"
)

// Bonus returns the event's bonus game, or nil when it has none.
func (s *Service) Bonus(ctx context.Context, venueSlug, eventCode string) (*Bonus, error) {
	v, err := s.venue(ctx, venueSlug)
	if err != nil {
		return nil, err
	}
	ev, err := s.venueEvent(ctx, v, eventCode)
	if err != nil {
		return nil, err
	}
	g, err := s.repo.GetEventGame(ctx, ev.ID, store.BonusGameNumber)
	if errors.Is(err, store.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("bonus lookup: %w", err)
	}
	row := toGameRow(*g)
	return &Bonus{PlaylistKey: row.PlaylistKey, DisplayMode: row.DisplayMode}, nil
}

// SetBonus writes the bonus game alone, leaving games 1–5 untouched.
func (s *Service) SetBonus(ctx context.Context, venueSlug, eventCode, playlistKey, displayMode string) (*Bonus, error) {
	if strings.TrimSpace(playlistKey) == "" {
		return nil, invalidf("Missing playlistKey.")
	}
	key, err := catalog.ParsePlaylistKey(playlistKey, s.maxPlaylist)
	if err != nil {
		return nil, invalidf("%v", err)
	}
	mode, ok := catalog.ParseDisplayMode(displayMode)
	if !ok {
		return nil, invalidf("Invalid displayMode. Use 'title' or 'artist'.")
	}
	v, err := s.venue(ctx, venueSlug)
	if err != nil {
		return nil, err
	}
	ev, err := s.venueEvent(ctx, v, eventCode)
	if err != nil {
		return nil, err
	}
	if err := s.repo.UpsertEventGame(ctx, store.EventGame{
		EventID:     ev.ID,
		GameNumber:  store.BonusGameNumber,
		PlaylistKey: key,
		DisplayMode: string(mode),
	}); err != nil {
		return nil, fmt.Errorf("save bonus game: %w", err)
	}
	log.Info().Str("venue", v.Slug).Str("event_code", ev.EventCode).Str("playlist_key", key).Msg("bonus game saved")
	return &Bonus{PlaylistKey: key, DisplayMode: string(mode)}, nil
}

func (s *Service) ClearBonus(ctx context.Context, venueSlug, eventCode string) error {
	v, err := s.venue(ctx, venueSlug)
	if err != nil {
		return err
	}
	ev, err := s.venueEvent(ctx, v, eventCode)
	if err != nil {
		return err
	}
	removed, err := s.repo.DeleteEventGame(ctx, ev.ID, store.BonusGameNumber)
	if err != nil {
		return fmt.Errorf("remove bonus game: %w", err)
	}
	if removed {
		log.Info().Str("venue", v.Slug).Str("event_code", ev.EventCode).Msg("bonus game removed")
	}
	return nil
}
