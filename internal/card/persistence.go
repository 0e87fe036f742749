package card

import (
	"bytes"
	"encoding/json"
	"time"

	"video-bingo/internal/devicestore"

	"github.com/rs/zerolog/log"
)

const (
	StateVersion = 1
	keyPrefix    = "mvbingo:v1:"
)

type PersistedState struct {
	Version        int             `json:"version"`
	EventCode      string          `json:"eventCode"`
	SelectedGameID string          `json:"selectedGameId"`
	CardsByGameID  map[string]Card `json:"cardsByGameId"`
	SavedAt        time.Time       `json:"savedAt"`
}

func StorageKey(eventCode string) string {
	return keyPrefix + eventCode
}

type PersistenceOption func(*Persistence)

func WithClock(now func() time.Time) PersistenceOption {
	return func(p *Persistence) {
		if now != nil {
			p.now = now
		}
	}
}

// Persistence keeps one device's cards per event. It is not safe for
// concurrent use; a device has a single UI loop.
type Persistence struct {
	kv   devicestore.KV
	now  func() time.Time
	last map[string][]byte
}

func NewPersistence(kv devicestore.KV, opts ...PersistenceOption) *Persistence {
	p := &Persistence{kv: kv, now: time.Now, last: map[string][]byte{}}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Save writes the state unless it matches the last payload written for the
// event. It reports whether a write happened. Storage failures are logged and
// dropped so the next Save retries.
func (p *Persistence) Save(eventCode, selectedGameID string, cards map[string]Card) bool {
	state := PersistedState{
		Version:        StateVersion,
		EventCode:      eventCode,
		SelectedGameID: selectedGameID,
		CardsByGameID:  normalizeCards(cards),
	}
	fingerprint, err := json.Marshal(state)
	if err != nil {
		log.Debug().Err(err).Str("event_code", eventCode).Msg("card state encode failed")
		return false
	}
	if prev, ok := p.last[eventCode]; ok && bytes.Equal(prev, fingerprint) {
		return false
	}

	state.SavedAt = p.now().UTC()
	payload, err := json.Marshal(state)
	if err != nil {
		log.Debug().Err(err).Str("event_code", eventCode).Msg("card state encode failed")
		return false
	}
	if err := p.kv.Set(StorageKey(eventCode), payload); err != nil {
		log.Debug().Err(err).Str("event_code", eventCode).Msg("card state write failed")
		return false
	}
	p.last[eventCode] = fingerprint
	return true
}

// Restore returns the saved state for an event. Missing, unreadable, foreign
// or malformed records all read as absent.
func (p *Persistence) Restore(eventCode string) (*PersistedState, bool) {
	raw, ok, err := p.kv.Get(StorageKey(eventCode))
	if err != nil {
		log.Debug().Err(err).Str("event_code", eventCode).Msg("card state read failed")
		return nil, false
	}
	if !ok {
		return nil, false
	}
	var state PersistedState
	if err := json.Unmarshal(raw, &state); err != nil {
		return nil, false
	}
	if state.Version != StateVersion || state.EventCode != eventCode || state.CardsByGameID == nil {
		return nil, false
	}
	for _, c := range state.CardsByGameID {
		if len(c.Entries) != Size {
			return nil, false
		}
	}
	state.CardsByGameID = normalizeCards(state.CardsByGameID)

	fingerprint, err := json.Marshal(PersistedState{
		Version:        state.Version,
		EventCode:      state.EventCode,
		SelectedGameID: state.SelectedGameID,
		CardsByGameID:  state.CardsByGameID,
	})
	if err == nil {
		p.last[eventCode] = fingerprint
	}
	return &state, true
}

func normalizeCards(cards map[string]Card) map[string]Card {
	out := make(map[string]Card, len(cards))
	for gameID, c := range cards {
		c = c.clone()
		c.normalize()
		out[gameID] = c
	}
	return out
}
