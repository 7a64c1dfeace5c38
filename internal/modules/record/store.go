// README: Child-record store: per-kind inserts, lists, toggles, and generic delete.
package record

import (
	"context"
	"time"

	"tripkit/internal/infra"
	"tripkit/internal/types"
)

type Store struct {
	db infra.DB
}

func NewStore(db infra.DB) *Store {
	return &Store{db: db}
}

var kindTables = map[Kind]string{
	KindChecklist: "checklists",
	KindItem:      "items",
	KindLocalInfo: "local_infos",
	KindExpense:   "expenses",
	KindWishlist:  "wishlists",
	KindMemory:    "memories",
}

func (s *Store) CreateChecklist(ctx context.Context, c *Checklist) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO checklists (id, trip_id, category, title, description, is_completed, priority, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		string(c.ID), string(c.TripID), c.Category, c.Title, c.Description, c.IsCompleted, c.Priority, c.CreatedAt,
	)
	return err
}

func (s *Store) CreateItem(ctx context.Context, i *Item) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO items (id, trip_id, category, name, quantity, is_packed, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		string(i.ID), string(i.TripID), i.Category, i.Name, i.Quantity, i.IsPacked, i.Notes, i.CreatedAt,
	)
	return err
}

func (s *Store) CreateLocalInfo(ctx context.Context, li *LocalInfo) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO local_infos (id, trip_id, category, title, content, address, phone, website, rating, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		string(li.ID), string(li.TripID), li.Category, li.Title, li.Content, li.Address, li.Phone, li.Website, li.Rating, li.CreatedAt,
	)
	return err
}

func (s *Store) CreateExpense(ctx context.Context, e *Expense) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO expenses (id, trip_id, category, amount, currency, description, expense_date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		string(e.ID), string(e.TripID), e.Category, e.Amount, e.Currency, e.Description, e.ExpenseDate, e.CreatedAt,
	)
	return err
}

func (s *Store) CreateWishlist(ctx context.Context, w *Wishlist) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO wishlists (id, trip_id, place_name, category, address, description, priority, is_visited, visit_date, rating, review, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		string(w.ID), string(w.TripID), w.PlaceName, w.Category, w.Address, w.Description, w.Priority, w.IsVisited, w.VisitDate, w.Rating, w.Review, w.CreatedAt,
	)
	return err
}

func (s *Store) CreateMemory(ctx context.Context, m *Memory) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO memories (id, trip_id, title, content, photo_path, memory_date, location, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		string(m.ID), string(m.TripID), m.Title, m.Content, m.PhotoPath, m.MemoryDate, m.Location, m.CreatedAt,
	)
	return err
}

// Delete removes one record of the given kind. ErrNotFound when nothing
// matched.
func (s *Store) Delete(ctx context.Context, kind Kind, id types.ID) error {
	table, ok := kindTables[kind]
	if !ok {
		return ErrBadRequest
	}
	tag, err := s.db.Exec(ctx, `DELETE FROM `+table+` WHERE id = $1`, string(id))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// ToggleChecklist flips is_completed atomically and returns the new value.
func (s *Store) ToggleChecklist(ctx context.Context, id types.ID) (bool, error) {
	row := s.db.QueryRow(ctx, `
		UPDATE checklists
		SET is_completed = NOT is_completed
		WHERE id = $1
		RETURNING is_completed`, string(id),
	)
	var completed bool
	if err := row.Scan(&completed); err != nil {
		return false, mapNoRows(err)
	}
	return completed, nil
}

// ToggleItem flips is_packed atomically and returns the new value.
func (s *Store) ToggleItem(ctx context.Context, id types.ID) (bool, error) {
	row := s.db.QueryRow(ctx, `
		UPDATE items
		SET is_packed = NOT is_packed
		WHERE id = $1
		RETURNING is_packed`, string(id),
	)
	var packed bool
	if err := row.Scan(&packed); err != nil {
		return false, mapNoRows(err)
	}
	return packed, nil
}

// ToggleWishlist flips is_visited and keeps visit_date in lockstep: set to
// the given date when the place becomes visited, cleared when unvisited.
// The CASE reads the pre-update value.
func (s *Store) ToggleWishlist(ctx context.Context, id types.ID, visitDate time.Time) (bool, error) {
	row := s.db.QueryRow(ctx, `
		UPDATE wishlists
		SET is_visited = NOT is_visited,
		    visit_date = CASE WHEN NOT is_visited THEN $2 ELSE NULL END
		WHERE id = $1
		RETURNING is_visited`, string(id), visitDate,
	)
	var visited bool
	if err := row.Scan(&visited); err != nil {
		return false, mapNoRows(err)
	}
	return visited, nil
}

func (s *Store) ListChecklists(ctx context.Context, tripID types.ID) ([]*Checklist, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, trip_id, category, title, description, is_completed, priority, created_at
		FROM checklists
		WHERE trip_id = $1
		ORDER BY created_at, id`, string(tripID),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*Checklist
	for rows.Next() {
		var c Checklist
		if err := rows.Scan(&c.ID, &c.TripID, &c.Category, &c.Title, &c.Description, &c.IsCompleted, &c.Priority, &c.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, &c)
	}
	return out, rows.Err()
}

func (s *Store) ListItems(ctx context.Context, tripID types.ID) ([]*Item, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, trip_id, category, name, quantity, is_packed, notes, created_at
		FROM items
		WHERE trip_id = $1
		ORDER BY created_at, id`, string(tripID),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*Item
	for rows.Next() {
		var i Item
		if err := rows.Scan(&i.ID, &i.TripID, &i.Category, &i.Name, &i.Quantity, &i.IsPacked, &i.Notes, &i.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, &i)
	}
	return out, rows.Err()
}

func (s *Store) ListLocalInfos(ctx context.Context, tripID types.ID) ([]*LocalInfo, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, trip_id, category, title, content, address, phone, website, rating, created_at
		FROM local_infos
		WHERE trip_id = $1
		ORDER BY created_at, id`, string(tripID),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*LocalInfo
	for rows.Next() {
		var li LocalInfo
		if err := rows.Scan(&li.ID, &li.TripID, &li.Category, &li.Title, &li.Content, &li.Address, &li.Phone, &li.Website, &li.Rating, &li.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, &li)
	}
	return out, rows.Err()
}

func (s *Store) ListExpenses(ctx context.Context, tripID types.ID) ([]*Expense, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, trip_id, category, amount, currency, description, expense_date, created_at
		FROM expenses
		WHERE trip_id = $1
		ORDER BY expense_date, id`, string(tripID),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*Expense
	for rows.Next() {
		var e Expense
		if err := rows.Scan(&e.ID, &e.TripID, &e.Category, &e.Amount, &e.Currency, &e.Description, &e.ExpenseDate, &e.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, &e)
	}
	return out, rows.Err()
}

func (s *Store) ListWishlists(ctx context.Context, tripID types.ID) ([]*Wishlist, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, trip_id, place_name, category, address, description, priority, is_visited, visit_date, rating, review, created_at
		FROM wishlists
		WHERE trip_id = $1
		ORDER BY created_at, id`, string(tripID),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*Wishlist
	for rows.Next() {
		var w Wishlist
		if err := rows.Scan(&w.ID, &w.TripID, &w.PlaceName, &w.Category, &w.Address, &w.Description, &w.Priority, &w.IsVisited, &w.VisitDate, &w.Rating, &w.Review, &w.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, &w)
	}
	return out, rows.Err()
}

func (s *Store) ListMemories(ctx context.Context, tripID types.ID) ([]*Memory, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, trip_id, title, content, photo_path, memory_date, location, created_at
		FROM memories
		WHERE trip_id = $1
		ORDER BY memory_date DESC, id`, string(tripID),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*Memory
	for rows.Next() {
		var m Memory
		if err := rows.Scan(&m.ID, &m.TripID, &m.Title, &m.Content, &m.PhotoPath, &m.MemoryDate, &m.Location, &m.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, &m)
	}
	return out, rows.Err()
}
