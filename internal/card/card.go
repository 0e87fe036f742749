// Package card generates 5x5 bingo cards from a playlist, grades taps against
// an optional winning pattern, and keeps per-device card state.
package card

import "video-bingo/internal/catalog"

const (
	Size         = 25
	FreeSlot     = 12
	ItemsPerCard = Size - 1
	FreeItemID   = -1
)

var FreeItem = catalog.PlaylistItem{ID: FreeItemID, Title: "FREE", Artist: "FREE"}

type Entry struct {
	PlaylistItem catalog.PlaylistItem `json:"playlistItem"`
	Selected     bool                 `json:"selected"`
}

// Card entries are laid out left-to-right, top-to-bottom. A valid card always
// has Size entries with FreeItem at FreeSlot.
type Card struct {
	ID      string  `json:"id"`
	Entries []Entry `json:"entries"`
}

// Toggle flips the selection of a square. The FREE square and out-of-range
// indices are ignored.
func (c *Card) Toggle(index int) bool {
	if index < 0 || index >= len(c.Entries) || index == FreeSlot {
		return false
	}
	c.Entries[index].Selected = !c.Entries[index].Selected
	return true
}

// ResetProgress clears every selection but keeps the layout.
func (c *Card) ResetProgress() {
	for i := range c.Entries {
		c.Entries[i].Selected = false
	}
	c.normalize()
}

func (c *Card) Selections() [Size]bool {
	var out [Size]bool
	for i := 0; i < Size && i < len(c.Entries); i++ {
		out[i] = c.Entries[i].Selected
	}
	out[FreeSlot] = true
	return out
}

// Label is the text shown on a square for the game's display mode.
func (c *Card) Label(index int, mode catalog.DisplayMode) string {
	if index < 0 || index >= len(c.Entries) {
		return ""
	}
	item := c.Entries[index].PlaylistItem
	if index == FreeSlot {
		return FreeItem.Title
	}
	if mode == catalog.DisplayArtist {
		return item.Artist
	}
	return item.Title
}

func (c *Card) normalize() {
	if len(c.Entries) != Size {
		return
	}
	c.Entries[FreeSlot] = Entry{PlaylistItem: FreeItem, Selected: true}
}

func (c Card) clone() Card {
	entries := make([]Entry, len(c.Entries))
	copy(entries, c.Entries)
	c.Entries = entries
	return c
}
