// README: Record service: add/delete by kind, completion toggles, photo uploads.
package record

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"tripkit/internal/logger"
	"tripkit/internal/types"
)

var (
	ErrNotFound   = errors.New("record not found")
	ErrBadRequest = errors.New("bad request")
)

func mapNoRows(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

// Photo extensions accepted for memory uploads.
var allowedPhotoExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".webp": true,
}

type Service struct {
	store     *Store
	uploadDir string
	log       *zap.SugaredLogger
	now       func() time.Time
}

func NewService(store *Store, uploadDir string) *Service {
	return &Service{
		store:     store,
		uploadDir: uploadDir,
		log:       logger.GetLogger(),
		now:       time.Now,
	}
}

func (s *Service) AddChecklist(ctx context.Context, c *Checklist) (*Checklist, error) {
	c.Title = strings.TrimSpace(c.Title)
	if c.TripID == "" || c.Title == "" {
		return nil, ErrBadRequest
	}
	if c.Category == "" {
		c.Category = DefaultChecklistCategory
	}
	if c.Priority == "" {
		c.Priority = DefaultPriority
	}
	c.ID = types.NewID()
	c.CreatedAt = s.now()
	if err := s.store.CreateChecklist(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *Service) AddItem(ctx context.Context, i *Item) (*Item, error) {
	i.Name = strings.TrimSpace(i.Name)
	if i.TripID == "" || i.Name == "" {
		return nil, ErrBadRequest
	}
	if i.Category == "" {
		i.Category = DefaultItemCategory
	}
	if i.Quantity <= 0 {
		i.Quantity = 1
	}
	i.ID = types.NewID()
	i.CreatedAt = s.now()
	if err := s.store.CreateItem(ctx, i); err != nil {
		return nil, err
	}
	return i, nil
}

func (s *Service) AddLocalInfo(ctx context.Context, li *LocalInfo) (*LocalInfo, error) {
	li.Title = strings.TrimSpace(li.Title)
	if li.TripID == "" || li.Title == "" || li.Content == "" {
		return nil, ErrBadRequest
	}
	if li.Category == "" {
		li.Category = DefaultInfoCategory
	}
	li.ID = types.NewID()
	li.CreatedAt = s.now()
	if err := s.store.CreateLocalInfo(ctx, li); err != nil {
		return nil, err
	}
	return li, nil
}

func (s *Service) AddExpense(ctx context.Context, e *Expense) (*Expense, error) {
	if e.TripID == "" || e.Amount <= 0 {
		return nil, ErrBadRequest
	}
	if e.Category == "" {
		e.Category = DefaultExpenseCategory
	}
	if e.Currency == "" {
		e.Currency = DefaultCurrency
	}
	if e.ExpenseDate.IsZero() {
		e.ExpenseDate = s.now()
	}
	e.ID = types.NewID()
	e.CreatedAt = s.now()
	if err := s.store.CreateExpense(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *Service) AddWishlist(ctx context.Context, w *Wishlist) (*Wishlist, error) {
	w.PlaceName = strings.TrimSpace(w.PlaceName)
	if w.TripID == "" || w.PlaceName == "" {
		return nil, ErrBadRequest
	}
	if w.Category == "" {
		w.Category = DefaultWishlistCategory
	}
	if w.Priority == "" {
		w.Priority = DefaultPriority
	}
	w.ID = types.NewID()
	w.CreatedAt = s.now()
	if err := s.store.CreateWishlist(ctx, w); err != nil {
		return nil, err
	}
	return w, nil
}

// AddMemory stores a memory and, when photo is non-nil, saves the upload
// under the configured directory with a generated filename.
func (s *Service) AddMemory(ctx context.Context, m *Memory, photo io.Reader, filename string) (*Memory, error) {
	m.Title = strings.TrimSpace(m.Title)
	if m.TripID == "" || m.Title == "" {
		return nil, ErrBadRequest
	}
	if m.MemoryDate.IsZero() {
		m.MemoryDate = s.now()
	}
	if photo != nil {
		path, err := s.savePhoto(photo, filename)
		if err != nil {
			return nil, err
		}
		m.PhotoPath = &path
	}
	m.ID = types.NewID()
	m.CreatedAt = s.now()
	if err := s.store.CreateMemory(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *Service) savePhoto(r io.Reader, filename string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedPhotoExts[ext] {
		return "", fmt.Errorf("%w: unsupported photo type %q", ErrBadRequest, ext)
	}
	if err := os.MkdirAll(s.uploadDir, 0o755); err != nil {
		return "", err
	}

	path := filepath.Join(s.uploadDir, uuid.NewString()+ext)
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(path)
		return "", err
	}
	s.log.Debugw("photo saved", "path", path)
	return path, nil
}

// Delete removes a record of any kind.
func (s *Service) Delete(ctx context.Context, kind Kind, id types.ID) error {
	if !ValidKind(kind) || id == "" {
		return ErrBadRequest
	}
	return s.store.Delete(ctx, kind, id)
}

func (s *Service) ToggleChecklist(ctx context.Context, id types.ID) (bool, error) {
	return s.store.ToggleChecklist(ctx, id)
}

func (s *Service) ToggleItem(ctx context.Context, id types.ID) (bool, error) {
	return s.store.ToggleItem(ctx, id)
}

// ToggleWishlist stamps today's date when a place becomes visited and clears
// it when unvisited.
func (s *Service) ToggleWishlist(ctx context.Context, id types.ID) (bool, error) {
	year, month, dd := s.now().Date()
	today := time.Date(year, month, dd, 0, 0, 0, 0, time.UTC)
	return s.store.ToggleWishlist(ctx, id, today)
}

// ListByTrip loads every child record of a trip for the detail view.
func (s *Service) ListByTrip(ctx context.Context, tripID types.ID) (*Lists, error) {
	checklists, err := s.store.ListChecklists(ctx, tripID)
	if err != nil {
		return nil, err
	}
	items, err := s.store.ListItems(ctx, tripID)
	if err != nil {
		return nil, err
	}
	infos, err := s.store.ListLocalInfos(ctx, tripID)
	if err != nil {
		return nil, err
	}
	expenses, err := s.store.ListExpenses(ctx, tripID)
	if err != nil {
		return nil, err
	}
	wishlists, err := s.store.ListWishlists(ctx, tripID)
	if err != nil {
		return nil, err
	}
	memories, err := s.store.ListMemories(ctx, tripID)
	if err != nil {
		return nil, err
	}

	return &Lists{
		Checklists: checklists,
		Items:      items,
		LocalInfos: infos,
		Expenses:   expenses,
		Wishlists:  wishlists,
		Memories:   memories,
	}, nil
}
