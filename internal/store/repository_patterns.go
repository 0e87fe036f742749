package store

import (
	"context"

	"video-bingo/internal/catalog"

	"github.com/jackc/pgx/v5"
)

func scanPatterns(rows pgx.Rows) ([]catalog.Pattern, error) {
	defer rows.Close()
	out := []catalog.Pattern{}
	for rows.Next() {
		var p catalog.Pattern
		var cells []int32
		if err := rows.Scan(&p.ID, &p.Name, &cells); err != nil {
			return nil, err
		}
		p.Cells = intsVal(cells)
		out = append(out, p)
	}
	return out, rows.Err()
}

// ListPatterns returns the pattern catalog ordered by id.
func (s *Store) ListPatterns(ctx context.Context) ([]catalog.Pattern, error) {
	rows, err := s.q.db.Query(ctx, `SELECT id, name, cells FROM patterns ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	return scanPatterns(rows)
}

// PatternsByIDs returns the patterns that exist among ids. Unknown ids are
// simply absent from the result.
func (s *Store) PatternsByIDs(ctx context.Context, ids []int) ([]catalog.Pattern, error) {
	if len(ids) == 0 {
		return []catalog.Pattern{}, nil
	}
	rows, err := s.q.db.Query(ctx, `SELECT id, name, cells FROM patterns WHERE id = ANY($1) ORDER BY id ASC`, int32sParam(ids))
	if err != nil {
		return nil, err
	}
	return scanPatterns(rows)
}

func (s *Store) UpsertPattern(ctx context.Context, p catalog.Pattern) error {
	_, err := s.q.db.Exec(ctx, `
		INSERT INTO patterns (id, name, cells) VALUES ($1,$2,$3)
		ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, cells = EXCLUDED.cells
	`, p.ID, p.Name, int32sParam(p.Cells))
	return err
}

var _ catalog.PatternCatalog = (*Store)(nil)
