// Package catalog holds the read-only reference data games are built from:
// playlists of music videos and the winning-shape patterns.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

type DisplayMode string

const (
	DisplayTitle  DisplayMode = "title"
	DisplayArtist DisplayMode = "artist"
)

// ParseDisplayMode defaults an empty value to title.
func ParseDisplayMode(v string) (DisplayMode, bool) {
	switch DisplayMode(strings.ToLower(strings.TrimSpace(v))) {
	case "", DisplayTitle:
		return DisplayTitle, true
	case DisplayArtist:
		return DisplayArtist, true
	default:
		return "", false
	}
}

type PlaylistItem struct {
	ID     int    `json:"id"`
	Title  string `json:"title"`
	Artist string `json:"artist"`
}

type Playlist struct {
	Key         string         `json:"key"`
	Name        string         `json:"name"`
	DisplayMode DisplayMode    `json:"display_mode"`
	Items       []PlaylistItem `json:"items"`
}

type Pattern struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Cells []int  `json:"cells"`
}

var ErrPlaylistNotFound = errors.New("playlist_not_found")

type PlaylistCatalog interface {
	Playlist(ctx context.Context, key string) (*Playlist, error)
}

type PatternCatalog interface {
	ListPatterns(ctx context.Context) ([]Pattern, error)
	PatternsByIDs(ctx context.Context, ids []int) ([]Pattern, error)
}

var playlistKeyPattern = regexp.MustCompile(`^p(\d+)$`)

// ParsePlaylistKey accepts "p<n>" with 1 <= n <= max and returns the
// normalized key ("P06" becomes "p6").
func ParsePlaylistKey(raw string, max int) (string, error) {
	key := strings.ToLower(strings.TrimSpace(raw))
	m := playlistKeyPattern.FindStringSubmatch(key)
	if m == nil {
		return "", fmt.Errorf("invalid playlistKey %q. Use p1–p%d", raw, max)
	}
	n, err := strconv.Atoi(m[1])
	if err != nil || n < 1 || n > max {
		return "", fmt.Errorf("invalid playlistKey %q. Use p1–p%d", raw, max)
	}
	return "p" + strconv.Itoa(n), nil
}
