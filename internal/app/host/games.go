package host

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"video-bingo/internal/catalog"
	"video-bingo/internal/store"

	"github.com/rs/zerolog/log"
)

const (
	minPatternID = 1
	maxPatternID = 25
)

// normalizeGames validates a game list and returns store rows sorted by game
// number. Game 1 never keeps a pattern.
func (s *Service) normalizeGames(in []GameInput) ([]store.EventGame, error) {
	out := make([]store.EventGame, 0, len(in))
	seen := map[int]bool{}
	for _, g := range in {
		if g.GameNumber < 1 || g.GameNumber > store.BonusGameNumber {
			return nil, invalidf("Invalid gameNumber: %d", g.GameNumber)
		}
		if seen[g.GameNumber] {
			return nil, invalidf("Duplicate gameNumber: %d", g.GameNumber)
		}
		seen[g.GameNumber] = true

		if strings.TrimSpace(g.PlaylistKey) == "" {
			return nil, invalidf("Missing playlistKey for game %d", g.GameNumber)
		}
		key, err := catalog.ParsePlaylistKey(g.PlaylistKey, s.maxPlaylist)
		if err != nil {
			return nil, invalidf("Game %d: %v", g.GameNumber, err)
		}
		mode, ok := catalog.ParseDisplayMode(g.DisplayMode)
		if !ok {
			return nil, invalidf("Invalid displayMode for game %d", g.GameNumber)
		}

		var patternID *int
		if g.PatternID != nil {
			id := *g.PatternID
			if id < minPatternID || id > maxPatternID {
				return nil, invalidf("Invalid patternId for game %d", g.GameNumber)
			}
			if g.GameNumber != 1 {
				patternID = &id
			}
		}
		out = append(out, store.EventGame{
			GameNumber:  g.GameNumber,
			PlaylistKey: key,
			DisplayMode: string(mode),
			PatternID:   patternID,
		})
	}
	for n := 1; n <= 5; n++ {
		if !seen[n] {
			return nil, invalidf("games must include gameNumber 1–5.")
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].GameNumber < out[j].GameNumber })
	return out, nil
}

// assertPatternsExist rejects pattern ids missing from the catalog, naming
// them in ascending order.
func (s *Service) assertPatternsExist(ctx context.Context, games []store.EventGame) error {
	want := map[int]bool{}
	for _, g := range games {
		if g.PatternID != nil {
			want[*g.PatternID] = true
		}
	}
	if len(want) == 0 {
		return nil
	}
	ids := make([]int, 0, len(want))
	for id := range want {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	found, err := s.patterns.PatternsByIDs(ctx, ids)
	if err != nil {
		return fmt.Errorf("pattern lookup: %w", err)
	}
	have := map[int]bool{}
	for _, p := range found {
		have[p.ID] = true
	}
	missing := []string{}
	for _, id := range ids {
		if !have[id] {
			missing = append(missing, strconv.Itoa(id))
		}
	}
	if len(missing) > 0 {
		return invalidf("Unknown pattern id(s): %s", strings.Join(missing, ", "))
	}
	return nil
}

// SetGames writes games 1–5 and the optional bonus for the named event, or
// for the venue's current active event when eventCode is empty. It returns
// the code of the event written.
func (s *Service) SetGames(ctx context.Context, venueSlug, eventCode string, games []GameInput) (string, error) {
	if strings.TrimSpace(venueSlug) == "" {
		return "", invalidf("Missing venueSlug.")
	}
	rows, err := s.normalizeGames(games)
	if err != nil {
		return "", err
	}
	if err := s.assertPatternsExist(ctx, rows); err != nil {
		return "", err
	}
	v, err := s.venue(ctx, venueSlug)
	if err != nil {
		return "", err
	}

	var ev *store.Event
	if strings.TrimSpace(eventCode) != "" {
		if ev, err = s.venueEvent(ctx, v, eventCode); err != nil {
			return "", err
		}
	} else {
		ev, err = s.repo.GetLatestActiveEvent(ctx, v.ID)
		if errors.Is(err, store.ErrNotFound) {
			return "", notFound("No active event found for this venue.")
		}
		if err != nil {
			return "", fmt.Errorf("event lookup: %w", err)
		}
	}

	cleared, err := s.repo.ReplaceEventGames(ctx, ev.ID, rows)
	if err != nil {
		return "", fmt.Errorf("update event games: %w", err)
	}
	logEvt := log.Info().Str("venue", v.Slug).Str("event_code", ev.EventCode).Int("games", len(rows))
	if cleared {
		logEvt = logEvt.Bool("bonus_cleared", true)
	}
	logEvt.Msg("event games saved")
	return ev.EventCode, nil
}

// GameConfig is the host's view of an event's games 1–5 and its bonus.
func (s *Service) GameConfig(ctx context.Context, venueSlug, eventCode string) (*GameConfigResponse, error) {
	if strings.TrimSpace(venueSlug) == "" {
		return nil, invalidf("Missing venueSlug.")
	}
	if strings.TrimSpace(eventCode) == "" {
		return nil, invalidf("Missing eventCode.")
	}
	v, err := s.venue(ctx, venueSlug)
	if err != nil {
		return nil, err
	}
	ev, err := s.repo.GetEventByCode(ctx, strings.TrimSpace(eventCode))
	if errors.Is(err, store.ErrNotFound) {
		return nil, notFound("Event not found (by eventCode).")
	}
	if err != nil {
		return nil, fmt.Errorf("event lookup: %w", err)
	}
	if ev.VenueID != v.ID {
		return nil, notFound("Event not found for this venue.")
	}

	rows, err := s.repo.ListEventGames(ctx, ev.ID)
	if err != nil {
		return nil, fmt.Errorf("event games lookup: %w", err)
	}
	out := &GameConfigResponse{Games: []GameRow{}}
	for _, g := range rows {
		row := toGameRow(g)
		row.EventID = ""
		switch {
		case g.GameNumber >= 1 && g.GameNumber <= 5:
			out.Games = append(out.Games, row)
		case g.IsBonus() && g.PlaylistKey != "":
			out.Bonus = &Bonus{PlaylistKey: row.PlaylistKey, DisplayMode: row.DisplayMode}
		}
	}
	return out, nil
}
