// Package eventconfig resolves the game list a player sees for an event. It
// tries a curated local table first, then the database, then the event's
// legacy config key.
package eventconfig

import (
	"context"
	"errors"
	"fmt"

	"video-bingo/internal/catalog"
	"video-bingo/internal/store"
)

var (
	ErrNotConfigured = errors.New("event_not_configured")
	ErrNotActive     = errors.New("event_not_active")
)

type Source string

const (
	SourceLocal    Source = "local"
	SourceDatabase Source = "database"
	SourceLegacy   Source = "legacy"
)

type Game struct {
	ID           string              `json:"id"`
	Name         string              `json:"name"`
	GameNumber   int                 `json:"game_number"`
	PlaylistKey  string              `json:"playlist_key"`
	DisplayMode  catalog.DisplayMode `json:"display_mode"`
	PatternID    *int                `json:"pattern_id"`
	PatternName  string              `json:"pattern_name,omitempty"`
	PatternCells []int               `json:"pattern_cells"`
	IsBonus      bool                `json:"is_bonus"`
}

type Resolved struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Source Source `json:"source"`
	// Status is the event row's status. Local overrides have none.
	Status string `json:"status,omitempty"`
	Games  []Game `json:"games"`
}

// Playable reports whether players may use the configuration. Database and
// legacy results need an active event.
func (r *Resolved) Playable() bool {
	if r.Source == SourceLocal {
		return true
	}
	return r.Status == store.EventActive
}

// Resolver is one tier of the chain. A miss is (nil, false, nil).
type Resolver interface {
	Resolve(ctx context.Context, id string) (*Resolved, bool, error)
}

// Repository is the store surface the database and legacy tiers read.
type Repository interface {
	GetEventByCode(ctx context.Context, eventCode string) (*store.Event, error)
	GetVenueByID(ctx context.Context, id string) (*store.Venue, error)
	ListEventGames(ctx context.Context, eventID string) ([]store.EventGame, error)
	GetEventGame(ctx context.Context, eventID string, gameNumber int) (*store.EventGame, error)
}

// Chain tries each resolver in order and stops at the first hit.
type Chain []Resolver

// NewChain builds the standard local, database, legacy precedence.
func NewChain(local *Local, repo Repository, patterns catalog.PatternCatalog) Chain {
	return Chain{
		local,
		NewDatabase(repo, patterns),
		NewLegacy(repo, local),
	}
}

func (c Chain) Resolve(ctx context.Context, id string) (*Resolved, error) {
	for _, r := range c {
		res, ok, err := r.Resolve(ctx, id)
		if err != nil {
			return nil, err
		}
		if ok {
			return res, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrNotConfigured, id)
}

// ResolveForPlay is Resolve restricted to configurations players may use.
func (c Chain) ResolveForPlay(ctx context.Context, id string) (*Resolved, error) {
	res, err := c.Resolve(ctx, id)
	if err != nil {
		return nil, err
	}
	if !res.Playable() {
		return nil, fmt.Errorf("%w: %s is %s", ErrNotActive, id, res.Status)
	}
	return res, nil
}

func gameID(n int) string { return fmt.Sprintf("game%d", n) }

func gameName(n int) string {
	if n == store.BonusGameNumber {
		return "Bonus Game"
	}
	return fmt.Sprintf("Game %d", n)
}
