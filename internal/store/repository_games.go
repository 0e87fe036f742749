package store

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const eventGameColumns = `event_id, game_number, playlist_key, display_mode, pattern_id`

func scanEventGames(rows pgx.Rows) ([]EventGame, error) {
	defer rows.Close()
	out := []EventGame{}
	for rows.Next() {
		var g EventGame
		var patternID pgtype.Int4
		if err := rows.Scan(&g.EventID, &g.GameNumber, &g.PlaylistKey, &g.DisplayMode, &patternID); err != nil {
			return nil, err
		}
		g.PatternID = intPtrVal(patternID)
		out = append(out, g)
	}
	return out, rows.Err()
}

// ListEventGames returns all game rows of an event, bonus included, ordered by
// game number.
func (s *Store) ListEventGames(ctx context.Context, eventID string) ([]EventGame, error) {
	rows, err := s.q.db.Query(ctx, `
		SELECT `+eventGameColumns+` FROM event_games
		WHERE event_id = $1
		ORDER BY game_number ASC
	`, eventID)
	if err != nil {
		return nil, err
	}
	return scanEventGames(rows)
}

func (s *Store) ListEventGamesForEvents(ctx context.Context, eventIDs []string) ([]EventGame, error) {
	if len(eventIDs) == 0 {
		return []EventGame{}, nil
	}
	rows, err := s.q.db.Query(ctx, `
		SELECT `+eventGameColumns+` FROM event_games
		WHERE event_id = ANY($1)
		ORDER BY event_id ASC, game_number ASC
	`, eventIDs)
	if err != nil {
		return nil, err
	}
	return scanEventGames(rows)
}

func (s *Store) GetEventGame(ctx context.Context, eventID string, gameNumber int) (*EventGame, error) {
	rows, err := s.q.db.Query(ctx, `
		SELECT `+eventGameColumns+` FROM event_games
		WHERE event_id = $1 AND game_number = $2
	`, eventID, gameNumber)
	if err != nil {
		return nil, err
	}
	games, err := scanEventGames(rows)
	if err != nil {
		return nil, err
	}
	if len(games) == 0 {
		return nil, ErrNotFound
	}
	return &games[0], nil
}

// ReplaceEventGames upserts the rows by (event, game number). When the set has
// no bonus game the stored bonus row is removed; the return value reports
// whether one was.
func (s *Store) ReplaceEventGames(ctx context.Context, eventID string, games []EventGame) (bool, error) {
	tx, err := s.Pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return false, err
	}
	defer tx.Rollback(ctx)

	cleared, err := s.q.withTx(tx).replaceEventGames(ctx, eventID, games)
	if err != nil {
		return false, err
	}
	if err := tx.Commit(ctx); err != nil {
		return false, err
	}
	return cleared, nil
}

func (s *Store) UpsertEventGame(ctx context.Context, g EventGame) error {
	return s.q.upsertEventGame(ctx, g)
}

func (s *Store) DeleteEventGame(ctx context.Context, eventID string, gameNumber int) (bool, error) {
	n, err := s.q.deleteEventGame(ctx, eventID, gameNumber)
	return n > 0, err
}
