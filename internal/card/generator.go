package card

import (
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"video-bingo/internal/catalog"

	"github.com/google/uuid"
)

var (
	ErrNotEnoughItems = errors.New("not_enough_playlist_items")
	ErrDuplicateItem  = errors.New("duplicate_playlist_item")
)

var (
	defaultRand   = rand.New(rand.NewSource(time.Now().UnixNano()))
	defaultRandMu sync.Mutex
)

// Generate builds a fresh card from a playlist. A nil rng uses a shared,
// time-seeded source. Playlists with fewer than ItemsPerCard distinct items
// are rejected instead of repeating squares.
func Generate(items []catalog.PlaylistItem, rng *rand.Rand) (Card, error) {
	if len(items) < ItemsPerCard {
		return Card{}, fmt.Errorf("%w: have %d, need %d", ErrNotEnoughItems, len(items), ItemsPerCard)
	}
	seen := make(map[int]bool, len(items))
	for _, it := range items {
		if it.ID == FreeItemID || seen[it.ID] {
			return Card{}, fmt.Errorf("%w: id %d", ErrDuplicateItem, it.ID)
		}
		seen[it.ID] = true
	}

	pool := make([]catalog.PlaylistItem, len(items))
	copy(pool, items)
	if rng == nil {
		defaultRandMu.Lock()
		shuffle(pool, defaultRand)
		defaultRandMu.Unlock()
	} else {
		shuffle(pool, rng)
	}

	entries := make([]Entry, 0, Size)
	for _, it := range pool[:ItemsPerCard] {
		if len(entries) == FreeSlot {
			entries = append(entries, Entry{PlaylistItem: FreeItem, Selected: true})
		}
		entries = append(entries, Entry{PlaylistItem: it})
	}
	return Card{ID: uuid.NewString(), Entries: entries}, nil
}

// shuffle is Fisher–Yates: walk down from the last index, swapping each
// position with a uniform pick from [0, i].
func shuffle(pool []catalog.PlaylistItem, rng *rand.Rand) {
	for i := len(pool) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		pool[i], pool[j] = pool[j], pool[i]
	}
}
