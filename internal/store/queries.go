package store

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
)

// dbtx is satisfied by both *pgxpool.Pool and pgx.Tx.
type dbtx interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type queries struct {
	db dbtx
}

func (q *queries) withTx(tx pgx.Tx) *queries {
	return &queries{db: tx}
}

const venueColumns = `id, slug, name, time_zone, created_at`

func scanVenue(row pgx.Row) (*Venue, error) {
	var v Venue
	var tz pgtype.Text
	if err := row.Scan(&v.ID, &v.Slug, &v.Name, &tz, &v.CreatedAt); err != nil {
		return nil, err
	}
	v.TimeZone = textVal(tz)
	return &v, nil
}

const eventColumns = `id, venue_id, event_code, name, start_at, status, config_key, created_at`

func scanEvent(row pgx.Row) (*Event, error) {
	var e Event
	var configKey pgtype.Text
	if err := row.Scan(&e.ID, &e.VenueID, &e.EventCode, &e.Name, &e.StartAt, &e.Status, &configKey, &e.CreatedAt); err != nil {
		return nil, err
	}
	e.StartAt = e.StartAt.UTC()
	e.ConfigKey = textVal(configKey)
	return &e, nil
}

func (q *queries) completeActiveEvents(ctx context.Context, venueID, exceptCode string) (int64, error) {
	tag, err := q.db.Exec(ctx, `
		UPDATE events SET status = 'completed'
		WHERE venue_id = $1 AND status = 'active' AND event_code <> $2
	`, venueID, exceptCode)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (q *queries) upsertEvent(ctx context.Context, p UpsertEventParams) (*Event, error) {
	row := q.db.QueryRow(ctx, `
		INSERT INTO events (id, venue_id, event_code, name, start_at, status, config_key)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
		ON CONFLICT (event_code) DO UPDATE
		SET venue_id = EXCLUDED.venue_id,
		    name = EXCLUDED.name,
		    start_at = EXCLUDED.start_at,
		    status = EXCLUDED.status,
		    config_key = EXCLUDED.config_key
		RETURNING `+eventColumns,
		NewID(), p.VenueID, p.EventCode, p.Name, p.StartAt, p.Status, textParam(p.ConfigKey))
	return scanEvent(row)
}

func (q *queries) setEventActive(ctx context.Context, venueID, eventCode string) (*Event, error) {
	row := q.db.QueryRow(ctx, `
		UPDATE events SET status = 'active'
		WHERE venue_id = $1 AND event_code = $2
		RETURNING `+eventColumns, venueID, eventCode)
	return scanEvent(row)
}

func (q *queries) upsertEventGame(ctx context.Context, g EventGame) error {
	_, err := q.db.Exec(ctx, `
		INSERT INTO event_games (event_id, game_number, playlist_key, display_mode, pattern_id)
		VALUES ($1,$2,$3,$4,$5)
		ON CONFLICT (event_id, game_number) DO UPDATE
		SET playlist_key = EXCLUDED.playlist_key,
		    display_mode = EXCLUDED.display_mode,
		    pattern_id = EXCLUDED.pattern_id,
		    updated_at = now()
	`, g.EventID, g.GameNumber, g.PlaylistKey, g.DisplayMode, int4PtrParam(g.PatternID))
	return err
}

func (q *queries) deleteEventGame(ctx context.Context, eventID string, gameNumber int) (int64, error) {
	tag, err := q.db.Exec(ctx, `DELETE FROM event_games WHERE event_id = $1 AND game_number = $2`, eventID, gameNumber)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// replaceEventGames writes the given rows and drops the bonus row when the
// set has none.
func (q *queries) replaceEventGames(ctx context.Context, eventID string, games []EventGame) (bonusCleared bool, err error) {
	hasBonus := false
	for _, g := range games {
		g.EventID = eventID
		if g.IsBonus() {
			hasBonus = true
		}
		if err := q.upsertEventGame(ctx, g); err != nil {
			return false, err
		}
	}
	if hasBonus {
		return false, nil
	}
	n, err := q.deleteEventGame(ctx, eventID, BonusGameNumber)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
