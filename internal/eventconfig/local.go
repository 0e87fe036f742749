package eventconfig

import (
	"context"

	"video-bingo/internal/catalog"
)

type LocalGame struct {
	Name         string
	PlaylistKey  string
	DisplayMode  catalog.DisplayMode
	PatternCells []int
}

type LocalEvent struct {
	ID    string
	Name  string
	Games []LocalGame
}

// Local is the curated override table. It never touches the database.
type Local struct {
	events map[string]LocalEvent
}

func NewLocal(events ...LocalEvent) *Local {
	l := &Local{events: make(map[string]LocalEvent, len(events))}
	for _, ev := range events {
		l.events[ev.ID] = ev
	}
	return l
}

// Has reports whether key names a curated event.
func (l *Local) Has(key string) bool {
	_, ok := l.events[key]
	return ok
}

func (l *Local) Resolve(_ context.Context, id string) (*Resolved, bool, error) {
	ev, ok := l.events[id]
	if !ok {
		return nil, false, nil
	}
	return ev.resolved(SourceLocal), true, nil
}

func (ev LocalEvent) resolved(source Source) *Resolved {
	out := &Resolved{ID: ev.ID, Name: ev.Name, Source: source, Games: make([]Game, 0, len(ev.Games))}
	for i, g := range ev.Games {
		n := i + 1
		name := g.Name
		if name == "" {
			name = gameName(n)
		}
		mode := g.DisplayMode
		if mode == "" {
			mode = catalog.DisplayTitle
		}
		out.Games = append(out.Games, Game{
			ID:           gameID(n),
			Name:         name,
			GameNumber:   n,
			PlaylistKey:  g.PlaylistKey,
			DisplayMode:  mode,
			PatternCells: append([]int(nil), g.PatternCells...),
		})
	}
	return out
}

// DefaultLocal holds the hand-curated nights that predate database config.
func DefaultLocal() *Local {
	return NewLocal(
		LocalEvent{
			ID:   "jan-06-2026",
			Name: "Music Video Bingo — Jan 6, 2026",
			Games: []LocalGame{
				{PlaylistKey: "p11", DisplayMode: catalog.DisplayArtist},
				{PlaylistKey: "p12", DisplayMode: catalog.DisplayTitle, PatternCells: []int{2, 4, 22, 24}},
				{PlaylistKey: "p13", DisplayMode: catalog.DisplayArtist, PatternCells: []int{6, 10, 16, 20}},
				{PlaylistKey: "p14", DisplayMode: catalog.DisplayTitle, PatternCells: []int{3, 7, 9, 17, 19, 23}},
				{PlaylistKey: "p15", DisplayMode: catalog.DisplayArtist, PatternCells: []int{6, 10, 12, 14, 16, 20}},
			},
		},
		LocalEvent{
			ID:   "dec-30-2025",
			Name: "Windfall Music Video Bingo",
			Games: []LocalGame{
				{PlaylistKey: "p1", DisplayMode: catalog.DisplayArtist},
				{PlaylistKey: "p6", DisplayMode: catalog.DisplayTitle, PatternCells: []int{7, 9, 17, 19}},
				{PlaylistKey: "p3", DisplayMode: catalog.DisplayArtist, PatternCells: []int{3, 11, 15, 23}},
				{PlaylistKey: "p4", DisplayMode: catalog.DisplayTitle, PatternCells: []int{5, 9, 11, 15, 17, 21}},
				{PlaylistKey: "p5", DisplayMode: catalog.DisplayArtist, PatternCells: []int{2, 6, 8, 18, 20, 24}},
			},
		},
		LocalEvent{
			ID:   "second-demo",
			Name: "Second Demo Night at Pub Y",
			Games: []LocalGame{
				{Name: "Early Game – Titles", PlaylistKey: "p3", DisplayMode: catalog.DisplayTitle},
				{Name: "Main Game – Artists", PlaylistKey: "p2", DisplayMode: catalog.DisplayArtist},
				{Name: "Throwback – Titles", PlaylistKey: "p1", DisplayMode: catalog.DisplayTitle},
				{Name: "Wildcard – Artists", PlaylistKey: "p4", DisplayMode: catalog.DisplayArtist},
				{Name: "Late Game – Titles", PlaylistKey: "p5", DisplayMode: catalog.DisplayTitle},
			},
		},
		LocalEvent{
			ID:   "dec-22-2025",
			Name: "Music Video Bingo – Dec 22, 2025",
			Games: []LocalGame{
				{PlaylistKey: "p6", DisplayMode: catalog.DisplayTitle},
				{PlaylistKey: "p7", DisplayMode: catalog.DisplayArtist},
				{PlaylistKey: "p8", DisplayMode: catalog.DisplayTitle},
				{PlaylistKey: "p9", DisplayMode: catalog.DisplayArtist},
				{PlaylistKey: "p10", DisplayMode: catalog.DisplayTitle},
			},
		},
	)
}
