package eventconfig

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"video-bingo/internal/catalog"
	"video-bingo/internal/store"

	"github.com/rs/zerolog/log"
)

// Database builds the configuration from event_games rows.
type Database struct {
	repo     Repository
	patterns catalog.PatternCatalog
}

func NewDatabase(repo Repository, patterns catalog.PatternCatalog) *Database {
	return &Database{repo: repo, patterns: patterns}
}

func (d *Database) Resolve(ctx context.Context, id string) (*Resolved, bool, error) {
	ev, err := d.repo.GetEventByCode(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("load event %s: %w", id, err)
	}
	rows, err := d.repo.ListEventGames(ctx, ev.ID)
	if err != nil {
		return nil, false, fmt.Errorf("load games for %s: %w", id, err)
	}
	scored := make([]store.EventGame, 0, len(rows))
	for _, g := range rows {
		if g.GameNumber >= 1 && g.GameNumber <= 5 {
			scored = append(scored, g)
		}
	}
	if len(scored) == 0 {
		return nil, false, nil
	}

	all := scored
	bonus, err := d.repo.GetEventGame(ctx, ev.ID, store.BonusGameNumber)
	switch {
	case err == nil && strings.TrimSpace(bonus.PlaylistKey) != "":
		all = append(all, *bonus)
	case err != nil && !errors.Is(err, store.ErrNotFound):
		log.Warn().Err(err).Str("event_code", id).Msg("bonus game lookup failed")
	}

	byID, err := d.patternIndex(ctx, all)
	if err != nil {
		return nil, false, fmt.Errorf("load patterns for %s: %w", id, err)
	}

	name, err := d.eventName(ctx, ev)
	if err != nil {
		return nil, false, err
	}
	out := &Resolved{ID: ev.EventCode, Name: name, Source: SourceDatabase, Status: ev.Status, Games: make([]Game, 0, len(all))}
	for _, g := range all {
		mode, ok := catalog.ParseDisplayMode(g.DisplayMode)
		if !ok {
			mode = catalog.DisplayTitle
		}
		game := Game{
			ID:           gameID(g.GameNumber),
			Name:         gameName(g.GameNumber),
			GameNumber:   g.GameNumber,
			PlaylistKey:  g.PlaylistKey,
			DisplayMode:  mode,
			PatternID:    g.PatternID,
			PatternCells: []int{},
			IsBonus:      g.IsBonus(),
		}
		if g.PatternID != nil {
			if p, ok := byID[*g.PatternID]; ok {
				game.PatternName = p.Name
				game.PatternCells = append([]int(nil), p.Cells...)
			}
		}
		out.Games = append(out.Games, game)
	}
	return out, true, nil
}

func (d *Database) patternIndex(ctx context.Context, games []store.EventGame) (map[int]catalog.Pattern, error) {
	ids := []int{}
	for _, g := range games {
		if g.PatternID != nil {
			ids = append(ids, *g.PatternID)
		}
	}
	out := map[int]catalog.Pattern{}
	if len(ids) == 0 || d.patterns == nil {
		return out, nil
	}
	found, err := d.patterns.PatternsByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, p := range found {
		out[p.ID] = p
	}
	return out, nil
}

func (d *Database) eventName(ctx context.Context, ev *store.Event) (string, error) {
	if name := strings.TrimSpace(ev.Name); name != "" {
		return name, nil
	}
	venue, err := d.repo.GetVenueByID(ctx, ev.VenueID)
	if errors.Is(err, store.ErrNotFound) {
		return ev.EventCode, nil
	}
	if err != nil {
		return "", fmt.Errorf("load venue for %s: %w", ev.EventCode, err)
	}
	return DefaultEventName(venue, ev.EventCode), nil
}

// DefaultEventName is the name given to events created without one.
func DefaultEventName(v *store.Venue, suffix string) string {
	label := strings.TrimSpace(v.Name)
	if label == "" {
		label = v.Slug
	}
	return label + " — " + suffix
}
