package card

import (
	"errors"
	"fmt"
	"math/rand"
	"testing"

	"video-bingo/internal/catalog"
)

func testItems(n int) []catalog.PlaylistItem {
	items := make([]catalog.PlaylistItem, n)
	for i := range items {
		items[i] = catalog.PlaylistItem{ID: i + 1, Title: fmt.Sprintf("Song %d", i+1), Artist: fmt.Sprintf("Artist %d", i+1)}
	}
	return items
}

func TestGenerateLayout(t *testing.T) {
	c, err := Generate(testItems(30), rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if c.ID == "" {
		t.Fatal("expected card id")
	}
	if len(c.Entries) != Size {
		t.Fatalf("expected %d entries, got %d", Size, len(c.Entries))
	}
	free := c.Entries[FreeSlot]
	if free.PlaylistItem.ID != FreeItemID || !free.Selected {
		t.Fatalf("expected selected FREE at slot %d, got %+v", FreeSlot, free)
	}
	seen := map[int]bool{}
	for i, e := range c.Entries {
		if i == FreeSlot {
			continue
		}
		if e.PlaylistItem.ID == FreeItemID {
			t.Fatalf("FREE sentinel at slot %d", i)
		}
		if seen[e.PlaylistItem.ID] {
			t.Fatalf("duplicate item %d", e.PlaylistItem.ID)
		}
		if e.Selected {
			t.Fatalf("slot %d starts selected", i)
		}
		seen[e.PlaylistItem.ID] = true
	}
	if len(seen) != ItemsPerCard {
		t.Fatalf("expected %d distinct items, got %d", ItemsPerCard, len(seen))
	}
}

func TestGenerateExactly24Items(t *testing.T) {
	items := testItems(ItemsPerCard)
	c, err := Generate(items, rand.New(rand.NewSource(7)))
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	seen := map[int]bool{}
	for i, e := range c.Entries {
		if i != FreeSlot {
			seen[e.PlaylistItem.ID] = true
		}
	}
	for _, it := range items {
		if !seen[it.ID] {
			t.Fatalf("item %d missing from card", it.ID)
		}
	}
}

func TestGenerateRejectsBadPlaylists(t *testing.T) {
	dup := testItems(25)
	dup[3].ID = dup[4].ID

	cases := []struct {
		name  string
		items []catalog.PlaylistItem
		want  error
	}{
		{name: "empty", items: nil, want: ErrNotEnoughItems},
		{name: "short", items: testItems(23), want: ErrNotEnoughItems},
		{name: "duplicate", items: dup, want: ErrDuplicateItem},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Generate(tc.items, rand.New(rand.NewSource(1)))
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestGenerateDoesNotMutateInput(t *testing.T) {
	items := testItems(30)
	before := make([]catalog.PlaylistItem, len(items))
	copy(before, items)
	if _, err := Generate(items, rand.New(rand.NewSource(3))); err != nil {
		t.Fatalf("generate: %v", err)
	}
	for i := range items {
		if items[i] != before[i] {
			t.Fatalf("input reordered at %d", i)
		}
	}
}

func TestGenerateDeterministicWithSeed(t *testing.T) {
	a, err := Generate(testItems(40), rand.New(rand.NewSource(42)))
	if err != nil {
		t.Fatalf("generate a: %v", err)
	}
	b, err := Generate(testItems(40), rand.New(rand.NewSource(42)))
	if err != nil {
		t.Fatalf("generate b: %v", err)
	}
	for i := range a.Entries {
		if a.Entries[i].PlaylistItem.ID != b.Entries[i].PlaylistItem.ID {
			t.Fatalf("slot %d differs: %d vs %d", i, a.Entries[i].PlaylistItem.ID, b.Entries[i].PlaylistItem.ID)
		}
	}
	if a.ID == b.ID {
		t.Fatal("card ids should be unique")
	}
}

func TestGenerateNilRand(t *testing.T) {
	if _, err := Generate(testItems(24), nil); err != nil {
		t.Fatalf("generate: %v", err)
	}
}

func TestGenerateInclusionIsUniform(t *testing.T) {
	const (
		playlistLen = 30
		runs        = 6000
	)
	rng := rand.New(rand.NewSource(99))
	items := testItems(playlistLen)
	counts := map[int]int{}
	slotCounts := map[int]int{}
	for i := 0; i < runs; i++ {
		c, err := Generate(items, rng)
		if err != nil {
			t.Fatalf("generate: %v", err)
		}
		for slot, e := range c.Entries {
			if slot == FreeSlot {
				continue
			}
			counts[e.PlaylistItem.ID]++
			if slot == 0 {
				slotCounts[e.PlaylistItem.ID]++
			}
		}
	}
	want := float64(ItemsPerCard) / float64(playlistLen)
	for _, it := range items {
		got := float64(counts[it.ID]) / runs
		if got < want-0.04 || got > want+0.04 {
			t.Fatalf("item %d inclusion rate %.3f, want about %.3f", it.ID, got, want)
		}
		first := float64(slotCounts[it.ID]) / runs
		if first < 0.015 || first > 0.055 {
			t.Fatalf("item %d lands in slot 0 at rate %.3f, want about %.3f", it.ID, first, 1.0/playlistLen)
		}
	}
}

func TestToggleAndReset(t *testing.T) {
	c, err := Generate(testItems(24), rand.New(rand.NewSource(5)))
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if c.Toggle(FreeSlot) {
		t.Fatal("FREE square must not toggle")
	}
	if c.Toggle(-1) || c.Toggle(Size) {
		t.Fatal("out-of-range toggle must be a no-op")
	}
	if !c.Toggle(0) || !c.Entries[0].Selected {
		t.Fatal("expected slot 0 selected")
	}
	if !c.Toggle(0) || c.Entries[0].Selected {
		t.Fatal("expected slot 0 cleared")
	}
	c.Toggle(3)
	c.Toggle(24)
	layout := make([]int, Size)
	for i, e := range c.Entries {
		layout[i] = e.PlaylistItem.ID
	}
	c.ResetProgress()
	for i, e := range c.Entries {
		if e.PlaylistItem.ID != layout[i] {
			t.Fatalf("reset changed layout at %d", i)
		}
		if i == FreeSlot && !e.Selected {
			t.Fatal("FREE must stay selected after reset")
		}
		if i != FreeSlot && e.Selected {
			t.Fatalf("slot %d still selected after reset", i)
		}
	}
}

func TestLabelFollowsDisplayMode(t *testing.T) {
	c, err := Generate(testItems(24), rand.New(rand.NewSource(5)))
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	item := c.Entries[0].PlaylistItem
	if got := c.Label(0, catalog.DisplayTitle); got != item.Title {
		t.Fatalf("title label = %q, want %q", got, item.Title)
	}
	if got := c.Label(0, catalog.DisplayArtist); got != item.Artist {
		t.Fatalf("artist label = %q, want %q", got, item.Artist)
	}
	if got := c.Label(FreeSlot, catalog.DisplayArtist); got != "FREE" {
		t.Fatalf("free label = %q", got)
	}
}
