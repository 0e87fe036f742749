package card

import (
	"encoding/json"
	"errors"
	"math/rand"
	"testing"
	"time"

	"video-bingo/internal/devicestore"
)

type failingKV struct {
	devicestore.KV
	failSet bool
	failGet bool
	sets    int
}

func (f *failingKV) Get(key string) ([]byte, bool, error) {
	if f.failGet {
		return nil, false, errors.New("get failed")
	}
	return f.KV.Get(key)
}

func (f *failingKV) Set(key string, value []byte) error {
	f.sets++
	if f.failSet {
		return errors.New("quota exceeded")
	}
	return f.KV.Set(key, value)
}

func fixedClock() func() time.Time {
	ts := time.Date(2025, 12, 22, 2, 0, 0, 0, time.UTC)
	return func() time.Time {
		ts = ts.Add(time.Second)
		return ts
	}
}

func testCards(t *testing.T) map[string]Card {
	t.Helper()
	rng := rand.New(rand.NewSource(11))
	cards := map[string]Card{}
	for _, id := range []string{"game-1", "game-2"} {
		c, err := Generate(testItems(30), rng)
		if err != nil {
			t.Fatalf("generate: %v", err)
		}
		cards[id] = c
	}
	return cards
}

func TestPersistenceRoundTrip(t *testing.T) {
	kv := devicestore.NewMemory()
	p := NewPersistence(kv, WithClock(fixedClock()))
	cards := testCards(t)
	c := cards["game-2"]
	c.Toggle(6)
	cards["game-2"] = c

	if !p.Save("pub-x--2025-12-22", "game-2", cards) {
		t.Fatal("expected first save to write")
	}
	if _, ok, _ := kv.Get("mvbingo:v1:pub-x--2025-12-22"); !ok {
		t.Fatal("expected versioned storage key")
	}

	state, ok := NewPersistence(kv).Restore("pub-x--2025-12-22")
	if !ok {
		t.Fatal("expected restore")
	}
	if state.SelectedGameID != "game-2" || state.Version != StateVersion {
		t.Fatalf("unexpected state %+v", state)
	}
	got := state.CardsByGameID["game-2"]
	if got.ID != cards["game-2"].ID || !got.Entries[6].Selected {
		t.Fatal("selection not restored")
	}
	if state.SavedAt.IsZero() {
		t.Fatal("expected savedAt")
	}
}

func TestPersistenceDebouncesIdenticalState(t *testing.T) {
	kv := &failingKV{KV: devicestore.NewMemory()}
	p := NewPersistence(kv, WithClock(fixedClock()))
	cards := testCards(t)

	if !p.Save("ev", "game-1", cards) {
		t.Fatal("expected write")
	}
	if p.Save("ev", "game-1", cards) {
		t.Fatal("identical state should not be rewritten")
	}
	if !p.Save("ev", "game-2", cards) {
		t.Fatal("changed selection should be written")
	}
	if kv.sets != 2 {
		t.Fatalf("expected 2 writes, got %d", kv.sets)
	}
}

func TestPersistenceRestoreSeedsDebounce(t *testing.T) {
	kv := devicestore.NewMemory()
	cards := testCards(t)
	if !NewPersistence(kv).Save("ev", "game-1", cards) {
		t.Fatal("expected write")
	}
	p := NewPersistence(kv)
	state, ok := p.Restore("ev")
	if !ok {
		t.Fatal("expected restore")
	}
	if p.Save("ev", state.SelectedGameID, state.CardsByGameID) {
		t.Fatal("restored state should not be rewritten")
	}
}

func TestPersistenceSwallowsWriteFailure(t *testing.T) {
	kv := &failingKV{KV: devicestore.NewMemory(), failSet: true}
	p := NewPersistence(kv)
	cards := testCards(t)
	if p.Save("ev", "game-1", cards) {
		t.Fatal("failed write reported as written")
	}
	kv.failSet = false
	if !p.Save("ev", "game-1", cards) {
		t.Fatal("state must be retried after a failed write")
	}
}

func TestPersistenceRestoreAbsent(t *testing.T) {
	valid := func(t *testing.T, eventCode string) []byte {
		raw, err := json.Marshal(PersistedState{
			Version:        StateVersion,
			EventCode:      eventCode,
			SelectedGameID: "game-1",
			CardsByGameID:  testCards(t),
		})
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		return raw
	}
	short := testCards(t)
	c := short["game-1"]
	c.Entries = c.Entries[:24]
	short["game-1"] = c
	shortRaw, _ := json.Marshal(PersistedState{Version: StateVersion, EventCode: "ev", CardsByGameID: short})

	cases := []struct {
		name string
		raw  []byte
	}{
		{name: "garbage", raw: []byte("{not json")},
		{name: "other event", raw: valid(t, "someone-else")},
		{name: "no cards", raw: []byte(`{"version":1,"eventCode":"ev"}`)},
		{name: "wrong version", raw: []byte(`{"version":2,"eventCode":"ev","cardsByGameId":{}}`)},
		{name: "short card", raw: shortRaw},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			kv := devicestore.NewMemory()
			if err := kv.Set(StorageKey("ev"), tc.raw); err != nil {
				t.Fatalf("set: %v", err)
			}
			if state, ok := NewPersistence(kv).Restore("ev"); ok || state != nil {
				t.Fatalf("expected absent, got %+v", state)
			}
		})
	}

	if _, ok := NewPersistence(devicestore.NewMemory()).Restore("ev"); ok {
		t.Fatal("expected absent for missing key")
	}
	if _, ok := NewPersistence(&failingKV{KV: devicestore.NewMemory(), failGet: true}).Restore("ev"); ok {
		t.Fatal("expected absent on read failure")
	}
}

func TestPersistenceNormalizesFreeSlot(t *testing.T) {
	cards := testCards(t)
	c := cards["game-1"]
	c.Entries[FreeSlot].Selected = false
	c.Entries[FreeSlot].PlaylistItem.Title = "tampered"
	cards["game-1"] = c

	raw, err := json.Marshal(PersistedState{Version: StateVersion, EventCode: "ev", CardsByGameID: cards})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	kv := devicestore.NewMemory()
	if err := kv.Set(StorageKey("ev"), raw); err != nil {
		t.Fatalf("set: %v", err)
	}
	state, ok := NewPersistence(kv).Restore("ev")
	if !ok {
		t.Fatal("expected restore")
	}
	free := state.CardsByGameID["game-1"].Entries[FreeSlot]
	if free.PlaylistItem != FreeItem || !free.Selected {
		t.Fatalf("FREE slot not normalized: %+v", free)
	}
}

func TestSaveDoesNotMutateCallerCards(t *testing.T) {
	cards := testCards(t)
	c := cards["game-1"]
	c.Entries[FreeSlot].Selected = false
	cards["game-1"] = c
	NewPersistence(devicestore.NewMemory()).Save("ev", "game-1", cards)
	if cards["game-1"].Entries[FreeSlot].Selected {
		t.Fatal("save mutated caller card")
	}
}
