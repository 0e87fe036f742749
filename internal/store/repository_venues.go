package store

import (
	"context"
	"strings"
)

func (s *Store) GetVenueBySlug(ctx context.Context, slug string) (*Venue, error) {
	v, err := scanVenue(s.q.db.QueryRow(ctx, `SELECT `+venueColumns+` FROM venues WHERE slug = $1`, slug))
	if err != nil {
		return nil, mapNotFound(err)
	}
	return v, nil
}

func (s *Store) GetVenueByID(ctx context.Context, id string) (*Venue, error) {
	v, err := scanVenue(s.q.db.QueryRow(ctx, `SELECT `+venueColumns+` FROM venues WHERE id = $1`, id))
	if err != nil {
		return nil, mapNotFound(err)
	}
	return v, nil
}

func (s *Store) ListVenues(ctx context.Context) ([]Venue, error) {
	rows, err := s.q.db.Query(ctx, `SELECT `+venueColumns+` FROM venues ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []Venue{}
	for rows.Next() {
		v, err := scanVenue(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *v)
	}
	return out, rows.Err()
}

func (s *Store) CreateVenue(ctx context.Context, slug, name, timeZone string) (string, error) {
	id := NewID()
	_, err := s.q.db.Exec(ctx, `INSERT INTO venues (id, slug, name, time_zone) VALUES ($1,$2,$3,$4)`,
		id, strings.TrimSpace(slug), name, textParam(timeZone))
	return id, err
}

func (s *Store) CountVenues(ctx context.Context) (int, error) {
	var c int
	if err := s.q.db.QueryRow(ctx, `SELECT COUNT(1) FROM venues`).Scan(&c); err != nil {
		return 0, err
	}
	return c, nil
}
