// Package memstore is an in-memory stand-in for the Postgres store, used by
// service and handler tests.
package memstore

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"video-bingo/internal/catalog"
	"video-bingo/internal/store"
)

type gameKey struct {
	eventID    string
	gameNumber int
}

type Store struct {
	mu       sync.Mutex
	now      func() time.Time
	venues   map[string]store.Venue
	events   map[string]store.Event
	games    map[gameKey]store.EventGame
	patterns map[int]catalog.Pattern

	// FailNext makes the next mutating call return this error.
	FailNext error
}

func New() *Store {
	return &Store{
		now:      time.Now,
		venues:   map[string]store.Venue{},
		events:   map[string]store.Event{},
		games:    map[gameKey]store.EventGame{},
		patterns: map[int]catalog.Pattern{},
	}
}

func (s *Store) takeFailure() error {
	err := s.FailNext
	s.FailNext = nil
	return err
}

func (s *Store) CreateVenue(_ context.Context, slug, name, timeZone string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	slug = strings.TrimSpace(slug)
	for _, v := range s.venues {
		if v.Slug == slug {
			return "", errors.New("duplicate venue slug")
		}
	}
	id := store.NewID()
	s.venues[id] = store.Venue{ID: id, Slug: slug, Name: name, TimeZone: timeZone, CreatedAt: s.now()}
	return id, nil
}

func (s *Store) GetVenueBySlug(_ context.Context, slug string) (*store.Venue, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, v := range s.venues {
		if v.Slug == slug {
			out := v
			return &out, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *Store) GetVenueByID(_ context.Context, id string) (*store.Venue, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.venues[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &v, nil
}

func (s *Store) ListVenues(_ context.Context) ([]store.Venue, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]store.Venue, 0, len(s.venues))
	for _, v := range s.venues {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *Store) eventByCode(code string) (store.Event, bool) {
	for _, e := range s.events {
		if e.EventCode == code {
			return e, true
		}
	}
	return store.Event{}, false
}

func (s *Store) GetEventByCode(_ context.Context, eventCode string) (*store.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.eventByCode(eventCode)
	if !ok {
		return nil, store.ErrNotFound
	}
	return &e, nil
}

func (s *Store) GetLatestActiveEvent(_ context.Context, venueID string) (*store.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var best *store.Event
	for _, e := range s.events {
		if e.VenueID != venueID || e.Status != store.EventActive {
			continue
		}
		if best == nil || e.StartAt.After(best.StartAt) {
			cp := e
			best = &cp
		}
	}
	if best == nil {
		return nil, store.ErrNotFound
	}
	return best, nil
}

func (s *Store) ListEventsByVenue(_ context.Context, venueID string, limit int) ([]store.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if limit <= 0 {
		limit = 25
	}
	out := []store.Event{}
	for _, e := range s.events {
		if e.VenueID == venueID {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartAt.After(out[j].StartAt) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *Store) completeActive(venueID, exceptCode string) int64 {
	var n int64
	for id, e := range s.events {
		if e.VenueID == venueID && e.Status == store.EventActive && e.EventCode != exceptCode {
			e.Status = store.EventCompleted
			s.events[id] = e
			n++
		}
	}
	return n
}

func (s *Store) UpsertEvent(_ context.Context, p store.UpsertEventParams) (*store.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.takeFailure(); err != nil {
		return nil, err
	}
	if p.Games != nil {
		if err := s.checkPatterns(p.Games); err != nil {
			return nil, err
		}
	}
	if p.Status == store.EventActive {
		s.completeActive(p.VenueID, p.EventCode)
	}
	e, ok := s.eventByCode(p.EventCode)
	if !ok {
		e = store.Event{ID: store.NewID(), EventCode: p.EventCode, CreatedAt: s.now()}
	}
	e.VenueID = p.VenueID
	e.Name = p.Name
	e.StartAt = p.StartAt.UTC()
	e.Status = p.Status
	e.ConfigKey = p.ConfigKey
	s.events[e.ID] = e
	if p.Games != nil {
		s.replaceGames(e.ID, p.Games)
	}
	return &e, nil
}

func (s *Store) ActivateEvent(_ context.Context, venueID, eventCode string) (*store.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.takeFailure(); err != nil {
		return nil, err
	}
	e, ok := s.eventByCode(eventCode)
	if !ok || e.VenueID != venueID {
		return nil, store.ErrNotFound
	}
	s.completeActive(venueID, eventCode)
	e.Status = store.EventActive
	s.events[e.ID] = e
	return &e, nil
}

func (s *Store) CompleteActiveEvents(_ context.Context, venueID string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.takeFailure(); err != nil {
		return 0, err
	}
	return s.completeActive(venueID, ""), nil
}

func (s *Store) gamesFor(eventID string) []store.EventGame {
	out := []store.EventGame{}
	for k, g := range s.games {
		if k.eventID == eventID {
			out = append(out, g)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].GameNumber < out[j].GameNumber })
	return out
}

func (s *Store) ListEventGames(_ context.Context, eventID string) ([]store.EventGame, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gamesFor(eventID), nil
}

func (s *Store) ListEventGamesForEvents(_ context.Context, eventIDs []string) ([]store.EventGame, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := append([]string(nil), eventIDs...)
	sort.Strings(ids)
	out := []store.EventGame{}
	for _, id := range ids {
		out = append(out, s.gamesFor(id)...)
	}
	return out, nil
}

func (s *Store) GetEventGame(_ context.Context, eventID string, gameNumber int) (*store.EventGame, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	g, ok := s.games[gameKey{eventID, gameNumber}]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &g, nil
}

func (s *Store) checkPatterns(games []store.EventGame) error {
	for _, g := range games {
		if g.PatternID == nil {
			continue
		}
		if _, ok := s.patterns[*g.PatternID]; !ok {
			return errors.New("event_games pattern_id violates foreign key")
		}
	}
	return nil
}

func (s *Store) replaceGames(eventID string, games []store.EventGame) bool {
	hasBonus := false
	for _, g := range games {
		g.EventID = eventID
		if g.PatternID != nil {
			id := *g.PatternID
			g.PatternID = &id
		}
		if g.IsBonus() {
			hasBonus = true
		}
		s.games[gameKey{eventID, g.GameNumber}] = g
	}
	if hasBonus {
		return false
	}
	key := gameKey{eventID, store.BonusGameNumber}
	if _, ok := s.games[key]; ok {
		delete(s.games, key)
		return true
	}
	return false
}

func (s *Store) ReplaceEventGames(_ context.Context, eventID string, games []store.EventGame) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.takeFailure(); err != nil {
		return false, err
	}
	if err := s.checkPatterns(games); err != nil {
		return false, err
	}
	return s.replaceGames(eventID, games), nil
}

func (s *Store) UpsertEventGame(_ context.Context, g store.EventGame) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.takeFailure(); err != nil {
		return err
	}
	if err := s.checkPatterns([]store.EventGame{g}); err != nil {
		return err
	}
	s.games[gameKey{g.EventID, g.GameNumber}] = g
	return nil
}

func (s *Store) DeleteEventGame(_ context.Context, eventID string, gameNumber int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.takeFailure(); err != nil {
		return false, err
	}
	key := gameKey{eventID, gameNumber}
	_, ok := s.games[key]
	delete(s.games, key)
	return ok, nil
}

func (s *Store) ListPatterns(_ context.Context) ([]catalog.Pattern, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]catalog.Pattern, 0, len(s.patterns))
	for _, p := range s.patterns {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *Store) PatternsByIDs(_ context.Context, ids []int) ([]catalog.Pattern, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	seen := map[int]bool{}
	out := []catalog.Pattern{}
	for _, id := range ids {
		p, ok := s.patterns[id]
		if !ok || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *Store) EnsureDefaultPatterns(_ context.Context, defaults []catalog.Pattern) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range defaults {
		if err := catalog.ValidatePattern(p); err != nil {
			return err
		}
		if _, ok := s.patterns[p.ID]; !ok {
			s.patterns[p.ID] = p
		}
	}
	return nil
}
