package store

import (
	"context"

	"github.com/jackc/pgx/v5"
)

func (s *Store) GetEventByCode(ctx context.Context, eventCode string) (*Event, error) {
	e, err := scanEvent(s.q.db.QueryRow(ctx, `SELECT `+eventColumns+` FROM events WHERE event_code = $1`, eventCode))
	if err != nil {
		return nil, mapNotFound(err)
	}
	return e, nil
}

// GetLatestActiveEvent returns the venue's active event with the latest
// start time.
func (s *Store) GetLatestActiveEvent(ctx context.Context, venueID string) (*Event, error) {
	e, err := scanEvent(s.q.db.QueryRow(ctx, `
		SELECT `+eventColumns+` FROM events
		WHERE venue_id = $1 AND status = 'active'
		ORDER BY start_at DESC
		LIMIT 1
	`, venueID))
	if err != nil {
		return nil, mapNotFound(err)
	}
	return e, nil
}

func (s *Store) ListEventsByVenue(ctx context.Context, venueID string, limit int) ([]Event, error) {
	if limit <= 0 {
		limit = 25
	}
	rows, err := s.q.db.Query(ctx, `
		SELECT `+eventColumns+` FROM events
		WHERE venue_id = $1
		ORDER BY start_at DESC
		LIMIT $2
	`, venueID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []Event{}
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *e)
	}
	return out, rows.Err()
}

// UpsertEvent writes an event keyed by its code. An active event first
// completes every other active event of the venue; both steps and any game
// rows commit together.
func (s *Store) UpsertEvent(ctx context.Context, p UpsertEventParams) (*Event, error) {
	tx, err := s.Pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	qtx := s.q.withTx(tx)
	if p.Status == EventActive {
		if _, err := qtx.completeActiveEvents(ctx, p.VenueID, p.EventCode); err != nil {
			return nil, err
		}
	}
	ev, err := qtx.upsertEvent(ctx, p)
	if err != nil {
		return nil, mapActiveConflict(err)
	}
	if p.Games != nil {
		if _, err := qtx.replaceEventGames(ctx, ev.ID, p.Games); err != nil {
			return nil, err
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, mapActiveConflict(err)
	}
	return ev, nil
}

// ActivateEvent makes an existing event of the venue the active one.
func (s *Store) ActivateEvent(ctx context.Context, venueID, eventCode string) (*Event, error) {
	tx, err := s.Pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	qtx := s.q.withTx(tx)
	if _, err := qtx.completeActiveEvents(ctx, venueID, eventCode); err != nil {
		return nil, err
	}
	ev, err := qtx.setEventActive(ctx, venueID, eventCode)
	if err != nil {
		return nil, mapActiveConflict(mapNotFound(err))
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, mapActiveConflict(err)
	}
	return ev, nil
}

// CompleteActiveEvents ends every active event of the venue.
func (s *Store) CompleteActiveEvents(ctx context.Context, venueID string) (int64, error) {
	return s.q.completeActiveEvents(ctx, venueID, "")
}
