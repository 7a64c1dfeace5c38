// README: Trip store backed by PostgreSQL.
package trip

import (
	"context"
	"errors"
	"math"

	"github.com/jackc/pgx/v5"

	"tripkit/internal/infra"
	"tripkit/internal/types"
)

type Store struct {
	db infra.DB
}

func NewStore(db infra.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Create(ctx context.Context, t *Trip) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO trips (id, name, destination, start_date, end_date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		string(t.ID), t.Name, t.Destination, t.StartDate, t.EndDate, t.CreatedAt,
	)
	return err
}

func (s *Store) Get(ctx context.Context, id types.ID) (*Trip, error) {
	row := s.db.QueryRow(ctx, `
		SELECT id, name, destination, start_date, end_date, created_at
		FROM trips
		WHERE id = $1`, string(id),
	)

	var t Trip
	err := row.Scan(&t.ID, &t.Name, &t.Destination, &t.StartDate, &t.EndDate, &t.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// List returns all trips, newest first.
func (s *Store) List(ctx context.Context) ([]*Trip, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, name, destination, start_date, end_date, created_at
		FROM trips
		ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*Trip
	for rows.Next() {
		var t Trip
		if err := rows.Scan(&t.ID, &t.Name, &t.Destination, &t.StartDate, &t.EndDate, &t.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, &t)
	}
	return out, rows.Err()
}

func (s *Store) Update(ctx context.Context, t *Trip) error {
	tag, err := s.db.Exec(ctx, `
		UPDATE trips
		SET name = $1, destination = $2, start_date = $3, end_date = $4
		WHERE id = $5`,
		t.Name, t.Destination, t.StartDate, t.EndDate, string(t.ID),
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes the trip; child records go with it via FK cascade.
func (s *Store) Delete(ctx context.Context, id types.ID) error {
	tag, err := s.db.Exec(ctx, `DELETE FROM trips WHERE id = $1`, string(id))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Progress computes checklist, packing and wishlist completion for a trip in
// one round trip. Empty categories report 0, never a division error.
func (s *Store) Progress(ctx context.Context, id types.ID) (Progress, error) {
	row := s.db.QueryRow(ctx, `
		SELECT
			(SELECT COUNT(*) FROM checklists WHERE trip_id = $1),
			(SELECT COUNT(*) FROM checklists WHERE trip_id = $1 AND is_completed),
			(SELECT COUNT(*) FROM items WHERE trip_id = $1),
			(SELECT COUNT(*) FROM items WHERE trip_id = $1 AND is_packed),
			(SELECT COUNT(*) FROM wishlists WHERE trip_id = $1),
			(SELECT COUNT(*) FROM wishlists WHERE trip_id = $1 AND is_visited)`,
		string(id),
	)

	var checkTotal, checkDone, itemTotal, itemDone, wishTotal, wishDone int
	if err := row.Scan(&checkTotal, &checkDone, &itemTotal, &itemDone, &wishTotal, &wishDone); err != nil {
		return Progress{}, err
	}

	return Progress{
		Checklist: percent(checkDone, checkTotal),
		Packing:   percent(itemDone, itemTotal),
		Wishlist:  percent(wishDone, wishTotal),
	}, nil
}

func percent(done, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(done)/float64(total)*1000) / 10
}
