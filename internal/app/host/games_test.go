package host

import (
	"context"
	"testing"

	"video-bingo/internal/store"
)

func (f *fixture) activeEvent(t *testing.T) string {
	t.Helper()
	row, err := f.svc.CreateOrActivate(context.Background(), CreateEventInput{VenueSlug: "pub-x", EventDate: "2025-12-22", MakeActive: true})
	if err != nil {
		t.Fatalf("activate: %v", err)
	}
	return row.EventCode
}

func TestSetGamesRequiredScoredGames(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	code := f.activeEvent(t)

	_, err := f.svc.SetGames(ctx, "pub-x", code, scoredInput()[:4])
	expectInvalid(t, err, "games must include gameNumber 1–5")

	got, err := f.svc.SetGames(ctx, "pub-x", code, scoredInput())
	if err != nil || got != code {
		t.Fatalf("five games: %q %v", got, err)
	}
	if rows := f.games(t, code); len(rows) != 5 {
		t.Fatalf("expected 5 rows, got %d", len(rows))
	}

	if _, err := f.svc.SetGames(ctx, "pub-x", code, withBonus(scoredInput())); err != nil {
		t.Fatalf("with bonus: %v", err)
	}
	rows := f.games(t, code)
	if len(rows) != 6 || !rows[5].IsBonus() || rows[5].PlaylistKey != "p9" {
		t.Fatalf("bonus not persisted: %+v", rows)
	}
}

func TestSetGamesClearsBonusOnOmission(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	code := f.activeEvent(t)
	if _, err := f.svc.SetGames(ctx, "pub-x", code, withBonus(scoredInput())); err != nil {
		t.Fatalf("with bonus: %v", err)
	}
	if _, err := f.svc.SetGames(ctx, "pub-x", code, scoredInput()); err != nil {
		t.Fatalf("without bonus: %v", err)
	}
	for _, g := range f.games(t, code) {
		if g.GameNumber == store.BonusGameNumber {
			t.Fatal("stale bonus row survived")
		}
	}
}

func TestSetGamesGameOnePatternSuppressed(t *testing.T) {
	f := newFixture(t)
	code := f.activeEvent(t)
	games := scoredInput()
	games[0].PatternID = intPtr(4)
	if _, err := f.svc.SetGames(context.Background(), "pub-x", code, games); err != nil {
		t.Fatalf("set games: %v", err)
	}
	rows := f.games(t, code)
	if rows[0].GameNumber != 1 || rows[0].PatternID != nil {
		t.Fatalf("game 1 kept a pattern: %+v", rows[0])
	}
	if rows[1].PatternID == nil || *rows[1].PatternID != 1 {
		t.Fatalf("game 2 pattern lost: %+v", rows[1])
	}
}

func TestSetGamesNormalizesInput(t *testing.T) {
	f := newFixture(t)
	code := f.activeEvent(t)
	games := []GameInput{
		{GameNumber: 5, PlaylistKey: " P05 "},
		{GameNumber: 3, PlaylistKey: "p3", DisplayMode: "ARTIST"},
		{GameNumber: 1, PlaylistKey: "p1"},
		{GameNumber: 4, PlaylistKey: "p4"},
		{GameNumber: 2, PlaylistKey: "p20"},
	}
	if _, err := f.svc.SetGames(context.Background(), "pub-x", code, games); err != nil {
		t.Fatalf("set games: %v", err)
	}
	rows := f.games(t, code)
	if rows[4].PlaylistKey != "p5" || rows[4].DisplayMode != "title" {
		t.Fatalf("game 5 not normalized: %+v", rows[4])
	}
	if rows[2].DisplayMode != "artist" {
		t.Fatalf("game 3 display mode: %+v", rows[2])
	}
}

func TestSetGamesValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	code := f.activeEvent(t)

	mutate := func(fn func([]GameInput) []GameInput) []GameInput { return fn(scoredInput()) }
	tests := []struct {
		name     string
		games    []GameInput
		contains string
	}{
		{name: "game number zero", games: mutate(func(g []GameInput) []GameInput { return append(g, GameInput{GameNumber: 0, PlaylistKey: "p1"}) }), contains: "Invalid gameNumber: 0"},
		{name: "game number seven", games: mutate(func(g []GameInput) []GameInput { return append(g, GameInput{GameNumber: 7, PlaylistKey: "p1"}) }), contains: "Invalid gameNumber: 7"},
		{name: "duplicate", games: mutate(func(g []GameInput) []GameInput { return append(g, GameInput{GameNumber: 2, PlaylistKey: "p1"}) }), contains: "Duplicate gameNumber: 2"},
		{name: "missing playlist", games: mutate(func(g []GameInput) []GameInput { g[1].PlaylistKey = " "; return g }), contains: "Missing playlistKey for game 2"},
		{name: "playlist out of range", games: mutate(func(g []GameInput) []GameInput { g[1].PlaylistKey = "p21"; return g }), contains: "Game 2"},
		{name: "playlist zero", games: mutate(func(g []GameInput) []GameInput { g[1].PlaylistKey = "p0"; return g }), contains: "p1–p20"},
		{name: "playlist garbage", games: mutate(func(g []GameInput) []GameInput { g[1].PlaylistKey = "playlist-2"; return g }), contains: "Game 2"},
		{name: "display mode", games: mutate(func(g []GameInput) []GameInput { g[2].DisplayMode = "year"; return g }), contains: "Invalid displayMode for game 3"},
		{name: "pattern range", games: mutate(func(g []GameInput) []GameInput { g[3].PatternID = intPtr(26); return g }), contains: "Invalid patternId for game 4"},
		{name: "unknown patterns", games: mutate(func(g []GameInput) []GameInput {
			g[3].PatternID = intPtr(22)
			g[4].PatternID = intPtr(17)
			g[1].PatternID = intPtr(22)
			return g
		}), contains: "Unknown pattern id(s): 17, 22"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.svc.SetGames(ctx, "pub-x", code, tt.games)
			expectInvalid(t, err, tt.contains)
		})
	}
	if rows := f.games(t, code); len(rows) != 0 {
		t.Fatalf("rejected writes must not persist rows, got %d", len(rows))
	}
}

func TestSetGamesEventResolution(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.SetGames(ctx, "pub-x", "", scoredInput())
	expectNotFound(t, err, "No active event found for this venue")

	code := f.activeEvent(t)
	got, err := f.svc.SetGames(ctx, "pub-x", "", scoredInput())
	if err != nil || got != code {
		t.Fatalf("current active: %q %v", got, err)
	}

	if _, err := f.svc.CreateOrActivate(ctx, CreateEventInput{VenueSlug: "pub-y", EventDate: "2025-12-22"}); err != nil {
		t.Fatalf("seed pub-y: %v", err)
	}
	_, err = f.svc.SetGames(ctx, "pub-x", "pub-y--2025-12-22", scoredInput())
	expectNotFound(t, err, "Event not found for this venue")

	_, err = f.svc.SetGames(ctx, "nowhere", code, scoredInput())
	expectNotFound(t, err, "Venue not found")
}

func TestGameConfig(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	code := f.activeEvent(t)
	if _, err := f.svc.SetGames(ctx, "pub-x", code, withBonus(scoredInput())); err != nil {
		t.Fatalf("set games: %v", err)
	}

	cfg, err := f.svc.GameConfig(ctx, "pub-x", code)
	if err != nil {
		t.Fatalf("game config: %v", err)
	}
	if len(cfg.Games) != 5 || cfg.Games[0].GameNumber != 1 || cfg.Games[4].GameNumber != 5 {
		t.Fatalf("unexpected games %+v", cfg.Games)
	}
	if cfg.Bonus == nil || cfg.Bonus.PlaylistKey != "p9" || cfg.Bonus.DisplayMode != "artist" {
		t.Fatalf("unexpected bonus %+v", cfg.Bonus)
	}

	if _, err := f.svc.SetGames(ctx, "pub-x", code, scoredInput()); err != nil {
		t.Fatalf("clear bonus: %v", err)
	}
	cfg, err = f.svc.GameConfig(ctx, "pub-x", code)
	if err != nil || cfg.Bonus != nil {
		t.Fatalf("expected null bonus, got %+v %v", cfg, err)
	}

	_, err = f.svc.GameConfig(ctx, "pub-x", "pub-x--1999-01-01")
	expectNotFound(t, err, "Event not found (by eventCode)")
	if _, err := f.svc.CreateOrActivate(ctx, CreateEventInput{VenueSlug: "pub-y", EventDate: "2025-12-22"}); err != nil {
		t.Fatalf("seed pub-y: %v", err)
	}
	_, err = f.svc.GameConfig(ctx, "pub-x", "pub-y--2025-12-22")
	expectNotFound(t, err, "Event not found for this venue")
}

func TestBonusLifecycle(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	code := f.activeEvent(t)

	b, err := f.svc.Bonus(ctx, "pub-x", code)
	if err != nil || b != nil {
		t.Fatalf("expected no bonus, got %+v %v", b, err)
	}
	_, err = f.svc.SetBonus(ctx, "pub-x", code, "p99", "title")
	expectInvalid(t, err, "p1–p20")
	_, err = f.svc.SetBonus(ctx, "pub-x", code, "p7", "lyrics")
	expectInvalid(t, err, "displayMode")

	b, err = f.svc.SetBonus(ctx, "pub-x", code, "P7", "")
	if err != nil || b.PlaylistKey != "p7" || b.DisplayMode != "title" {
		t.Fatalf("set bonus: %+v %v", b, err)
	}
	b, err = f.svc.Bonus(ctx, "pub-x", code)
	if err != nil || b == nil || b.PlaylistKey != "p7" {
		t.Fatalf("read bonus: %+v %v", b, err)
	}
	if err := f.svc.ClearBonus(ctx, "pub-x", code); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if err := f.svc.ClearBonus(ctx, "pub-x", code); err != nil {
		t.Fatalf("clear twice: %v", err)
	}
	if b, _ := f.svc.Bonus(ctx, "pub-x", code); b != nil {
		t.Fatalf("bonus survived clear: %+v", b)
	}
}
