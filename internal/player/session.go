package player

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"video-bingo/internal/card"
	"video-bingo/internal/catalog"
	"video-bingo/internal/eventconfig"

	"github.com/rs/zerolog/log"
)

var (
	ErrUnknownGame    = errors.New("unknown_game")
	ErrNoGameChosen   = errors.New("no_game_selected")
	ErrNoPlayableGame = errors.New("no_playable_game")
)

// Game is a resolved game whose playlist is available on this device.
type Game struct {
	eventconfig.Game
	Playlist *catalog.Playlist
	Pattern  card.PatternCells
}

// Session holds one device's cards for one event. Every change is saved.
type Session struct {
	eventCode string
	games     []Game
	persist   *card.Persistence
	rng       *rand.Rand
	selected  string
	cards     map[string]card.Card
}

// NewSession binds the event's games to local playlists and restores any
// saved cards. Games whose playlist is missing are left out.
func NewSession(ctx context.Context, eventCode string, ev *eventconfig.Resolved, playlists catalog.PlaylistCatalog, persist *card.Persistence, rng *rand.Rand) (*Session, error) {
	s := &Session{
		eventCode: eventCode,
		persist:   persist,
		rng:       rng,
		cards:     map[string]card.Card{},
	}
	for _, g := range ev.Games {
		pl, err := playlists.Playlist(ctx, g.PlaylistKey)
		if err != nil {
			log.Warn().Err(err).Str("event_code", eventCode).Str("game", g.ID).Msg("playlist unavailable, game hidden")
			continue
		}
		s.games = append(s.games, Game{Game: g, Playlist: pl, Pattern: card.NewPatternCells(g.PatternCells)})
	}
	if len(s.games) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoPlayableGame, eventCode)
	}

	if state, ok := persist.Restore(eventCode); ok {
		for id, c := range state.CardsByGameID {
			if s.game(id) != nil {
				s.cards[id] = c
			}
		}
		if _, ok := s.cards[state.SelectedGameID]; ok {
			s.selected = state.SelectedGameID
		}
	}
	return s, nil
}

func (s *Session) game(id string) *Game {
	for i := range s.games {
		if s.games[i].ID == id {
			return &s.games[i]
		}
	}
	return nil
}

func (s *Session) Games() []Game {
	return s.games
}

// Current returns the selected game and its card.
func (s *Session) Current() (*Game, *card.Card, bool) {
	g := s.game(s.selected)
	if g == nil {
		return nil, nil, false
	}
	c := s.cards[s.selected]
	return g, &c, true
}

// Select switches games. A game played before keeps its card; otherwise a
// new one is dealt.
func (s *Session) Select(gameID string) error {
	g := s.game(gameID)
	if g == nil {
		return fmt.Errorf("%w: %s", ErrUnknownGame, gameID)
	}
	if _, ok := s.cards[gameID]; !ok {
		c, err := card.Generate(g.Playlist.Items, s.rng)
		if err != nil {
			return fmt.Errorf("deal %s: %w", gameID, err)
		}
		s.cards[gameID] = c
	}
	s.selected = gameID
	s.save()
	return nil
}

func (s *Session) Toggle(index int) (bool, error) {
	c, ok := s.cards[s.selected]
	if !ok {
		return false, ErrNoGameChosen
	}
	changed := c.Toggle(index)
	s.cards[s.selected] = c
	if changed {
		s.save()
	}
	return changed, nil
}

// ResetProgress clears the marks of the selected card and keeps its layout.
func (s *Session) ResetProgress() error {
	c, ok := s.cards[s.selected]
	if !ok {
		return ErrNoGameChosen
	}
	c.ResetProgress()
	s.cards[s.selected] = c
	s.save()
	return nil
}

// Regenerate deals a fresh card for the selected game.
func (s *Session) Regenerate() error {
	g := s.game(s.selected)
	if g == nil {
		return ErrNoGameChosen
	}
	c, err := card.Generate(g.Playlist.Items, s.rng)
	if err != nil {
		return fmt.Errorf("deal %s: %w", g.ID, err)
	}
	s.cards[s.selected] = c
	s.save()
	return nil
}

// Squares grades the selected card against its game's pattern.
func (s *Session) Squares() ([card.Size]card.Square, error) {
	g, c, ok := s.Current()
	if !ok {
		return [card.Size]card.Square{}, ErrNoGameChosen
	}
	return card.Grade(*c, g.Pattern), nil
}

func (s *Session) save() {
	s.persist.Save(s.eventCode, s.selected, s.cards)
}
