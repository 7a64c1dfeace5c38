// README: Maps generated content into child-record rows inside one transaction.
package trip

import (
	"context"
	"time"

	"tripkit/internal/modules/planner"
	"tripkit/internal/types"
)

// ApplyContent inserts every generated record for a trip in a single
// transaction. Missing fields get per-kind defaults; any insert error rolls
// the whole batch back so a trip never ends up with partial starter content.
func (s *Store) ApplyContent(ctx context.Context, tripID types.ID, content planner.Content) error {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	now := time.Now()

	for _, f := range content.Checklists {
		title := fieldString(f, "title", "")
		if title == "" {
			continue
		}
		_, err := tx.Exec(ctx, `
			INSERT INTO checklists (id, trip_id, category, title, description, is_completed, priority, created_at)
			VALUES ($1, $2, $3, $4, $5, false, $6, $7)`,
			string(types.NewID()), string(tripID),
			fieldString(f, "category", "출발 전"),
			title,
			fieldStringPtr(f, "description"),
			fieldString(f, "priority", "medium"),
			now,
		)
		if err != nil {
			return err
		}
	}

	for _, f := range content.Items {
		name := fieldString(f, "name", "")
		if name == "" {
			continue
		}
		_, err := tx.Exec(ctx, `
			INSERT INTO items (id, trip_id, category, name, quantity, is_packed, notes, created_at)
			VALUES ($1, $2, $3, $4, $5, false, $6, $7)`,
			string(types.NewID()), string(tripID),
			fieldString(f, "category", "기타"),
			name,
			fieldInt(f, "quantity", 1),
			fieldStringPtr(f, "notes"),
			now,
		)
		if err != nil {
			return err
		}
	}

	for _, f := range content.LocalInfos {
		title := fieldString(f, "title", "")
		if title == "" {
			continue
		}
		_, err := tx.Exec(ctx, `
			INSERT INTO local_infos (id, trip_id, category, title, content, address, phone, website, rating, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
			string(types.NewID()), string(tripID),
			fieldString(f, "category", "기타"),
			title,
			fieldString(f, "content", ""),
			fieldStringPtr(f, "address"),
			fieldStringPtr(f, "phone"),
			fieldStringPtr(f, "website"),
			fieldFloatPtr(f, "rating"),
			now,
		)
		if err != nil {
			return err
		}
	}

	for _, f := range content.Wishlists {
		placeName := fieldString(f, "place_name", "")
		if placeName == "" {
			continue
		}
		_, err := tx.Exec(ctx, `
			INSERT INTO wishlists (id, trip_id, place_name, category, address, description, priority, is_visited, rating, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, false, $8, $9)`,
			string(types.NewID()), string(tripID),
			placeName,
			fieldString(f, "category", "관광지"),
			fieldStringPtr(f, "address"),
			fieldStringPtr(f, "description"),
			fieldString(f, "priority", "medium"),
			fieldFloatPtr(f, "rating"),
			now,
		)
		if err != nil {
			return err
		}
	}

	for _, f := range content.Expenses {
		_, err := tx.Exec(ctx, `
			INSERT INTO expenses (id, trip_id, category, amount, currency, description, expense_date, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			string(types.NewID()), string(tripID),
			fieldString(f, "category", "기타"),
			fieldFloat(f, "amount", 0),
			fieldString(f, "currency", "KRW"),
			fieldStringPtr(f, "description"),
			fieldDate(f, "expense_date", now),
			now,
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func fieldString(f planner.Fields, key, def string) string {
	if v, ok := f[key].(string); ok && v != "" {
		return v
	}
	return def
}

func fieldStringPtr(f planner.Fields, key string) *string {
	if v, ok := f[key].(string); ok && v != "" {
		return &v
	}
	return nil
}

// fieldInt accepts both int (templates) and float64 (decoded JSON).
func fieldInt(f planner.Fields, key string, def int) int {
	switch v := f[key].(type) {
	case int:
		if v > 0 {
			return v
		}
	case float64:
		if v > 0 {
			return int(v)
		}
	}
	return def
}

func fieldFloat(f planner.Fields, key string, def float64) float64 {
	switch v := f[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	}
	return def
}

func fieldFloatPtr(f planner.Fields, key string) *float64 {
	switch v := f[key].(type) {
	case float64:
		return &v
	case int:
		fv := float64(v)
		return &fv
	}
	return nil
}

func fieldDate(f planner.Fields, key string, def time.Time) time.Time {
	if v, ok := f[key].(string); ok {
		if t, err := time.Parse("2006-01-02", v); err == nil {
			return t
		}
	}
	return def
}
