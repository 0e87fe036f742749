package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"sync"
)

type MemoryPlaylists struct {
	mu    sync.RWMutex
	byKey map[string]Playlist
}

func NewMemoryPlaylists(playlists ...Playlist) *MemoryPlaylists {
	m := &MemoryPlaylists{byKey: make(map[string]Playlist, len(playlists))}
	for _, p := range playlists {
		m.byKey[p.Key] = p
	}
	return m
}

func (m *MemoryPlaylists) Playlist(_ context.Context, key string) (*Playlist, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, ok := m.byKey[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrPlaylistNotFound, key)
	}
	items := make([]PlaylistItem, len(p.Items))
	copy(items, p.Items)
	p.Items = items
	return &p, nil
}

func (m *MemoryPlaylists) Keys() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]string, 0, len(m.byKey))
	for k := range m.byKey {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// LoadPlaylistsJSON reads a JSON array of playlists.
func LoadPlaylistsJSON(r io.Reader) (*MemoryPlaylists, error) {
	var playlists []Playlist
	if err := json.NewDecoder(r).Decode(&playlists); err != nil {
		return nil, fmt.Errorf("decode playlists: %w", err)
	}
	for i, p := range playlists {
		if p.Key == "" {
			return nil, fmt.Errorf("playlist %d: missing key", i)
		}
		mode, ok := ParseDisplayMode(string(p.DisplayMode))
		if !ok {
			return nil, fmt.Errorf("playlist %s: invalid display_mode %q", p.Key, p.DisplayMode)
		}
		playlists[i].DisplayMode = mode
	}
	return NewMemoryPlaylists(playlists...), nil
}

func LoadPlaylistsFile(path string) (*MemoryPlaylists, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return LoadPlaylistsJSON(f)
}

type MemoryPatterns struct {
	byID map[int]Pattern
}

func NewMemoryPatterns(patterns ...Pattern) *MemoryPatterns {
	m := &MemoryPatterns{byID: make(map[int]Pattern, len(patterns))}
	for _, p := range patterns {
		m.byID[p.ID] = p
	}
	return m
}

func (m *MemoryPatterns) ListPatterns(_ context.Context) ([]Pattern, error) {
	out := make([]Pattern, 0, len(m.byID))
	for _, p := range m.byID {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// PatternsByIDs returns the patterns that exist; unknown ids are skipped.
func (m *MemoryPatterns) PatternsByIDs(_ context.Context, ids []int) ([]Pattern, error) {
	out := make([]Pattern, 0, len(ids))
	seen := make(map[int]bool, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		if p, ok := m.byID[id]; ok {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
