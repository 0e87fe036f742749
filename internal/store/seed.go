package store

import (
	"context"
	"fmt"

	"video-bingo/internal/catalog"
)

// EnsureDefaultPatterns inserts any built-in pattern missing from the table.
// Stored patterns are left as they are.
func (s *Store) EnsureDefaultPatterns(ctx context.Context, defaults []catalog.Pattern) error {
	for _, p := range defaults {
		if err := catalog.ValidatePattern(p); err != nil {
			return err
		}
		_, err := s.q.db.Exec(ctx, `
			INSERT INTO patterns (id, name, cells) VALUES ($1,$2,$3)
			ON CONFLICT (id) DO NOTHING
		`, p.ID, p.Name, int32sParam(p.Cells))
		if err != nil {
			return fmt.Errorf("seed pattern %d: %w", p.ID, err)
		}
	}
	return nil
}

// EnsureDemoVenue creates a demo venue when the table is empty.
func (s *Store) EnsureDemoVenue(ctx context.Context) error {
	c, err := s.CountVenues(ctx)
	if err != nil {
		return err
	}
	if c > 0 {
		return nil
	}
	_, err = s.CreateVenue(ctx, "demo-pub", "Demo Pub", "")
	return err
}
