// README: Child-record kinds hanging off a trip, plus their defaults.
package record

import (
	"time"

	"tripkit/internal/types"
)

// Kind discriminates the child-record tables behind the generic add/delete
// API.
type Kind string

const (
	KindChecklist Kind = "checklist"
	KindItem      Kind = "item"
	KindLocalInfo Kind = "localinfo"
	KindExpense   Kind = "expense"
	KindWishlist  Kind = "wishlist"
	KindMemory    Kind = "memory"
)

// Defaults applied when an add request omits the field.
const (
	DefaultPriority          = "medium"
	DefaultChecklistCategory = "출발 전"
	DefaultItemCategory      = "기타"
	DefaultInfoCategory      = "기타"
	DefaultExpenseCategory   = "기타"
	DefaultWishlistCategory  = "관광지"
	DefaultCurrency          = "KRW"
)

func ValidKind(k Kind) bool {
	switch k {
	case KindChecklist, KindItem, KindLocalInfo, KindExpense, KindWishlist, KindMemory:
		return true
	}
	return false
}

type Checklist struct {
	ID          types.ID  `json:"id"`
	TripID      types.ID  `json:"trip_id"`
	Category    string    `json:"category"`
	Title       string    `json:"title"`
	Description *string   `json:"description,omitempty"`
	IsCompleted bool      `json:"is_completed"`
	Priority    string    `json:"priority"`
	CreatedAt   time.Time `json:"created_at"`
}

type Item struct {
	ID        types.ID  `json:"id"`
	TripID    types.ID  `json:"trip_id"`
	Category  string    `json:"category"`
	Name      string    `json:"name"`
	Quantity  int       `json:"quantity"`
	IsPacked  bool      `json:"is_packed"`
	Notes     *string   `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type LocalInfo struct {
	ID        types.ID  `json:"id"`
	TripID    types.ID  `json:"trip_id"`
	Category  string    `json:"category"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Address   *string   `json:"address,omitempty"`
	Phone     *string   `json:"phone,omitempty"`
	Website   *string   `json:"website,omitempty"`
	Rating    *float64  `json:"rating,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type Expense struct {
	ID          types.ID  `json:"id"`
	TripID      types.ID  `json:"trip_id"`
	Category    string    `json:"category"`
	Amount      float64   `json:"amount"`
	Currency    string    `json:"currency"`
	Description *string   `json:"description,omitempty"`
	ExpenseDate time.Time `json:"expense_date"`
	CreatedAt   time.Time `json:"created_at"`
}

type Wishlist struct {
	ID          types.ID   `json:"id"`
	TripID      types.ID   `json:"trip_id"`
	PlaceName   string     `json:"place_name"`
	Category    string     `json:"category"`
	Address     *string    `json:"address,omitempty"`
	Description *string    `json:"description,omitempty"`
	Priority    string     `json:"priority"`
	IsVisited   bool       `json:"is_visited"`
	VisitDate   *time.Time `json:"visit_date,omitempty"`
	Rating      *float64   `json:"rating,omitempty"`
	Review      *string    `json:"review,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

type Memory struct {
	ID         types.ID  `json:"id"`
	TripID     types.ID  `json:"trip_id"`
	Title      string    `json:"title"`
	Content    *string   `json:"content,omitempty"`
	PhotoPath  *string   `json:"photo_path,omitempty"`
	MemoryDate time.Time `json:"memory_date"`
	Location   *string   `json:"location,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// Lists groups every child record of one trip for the detail view.
type Lists struct {
	Checklists []*Checklist `json:"checklists"`
	Items      []*Item      `json:"items"`
	LocalInfos []*LocalInfo `json:"local_infos"`
	Expenses   []*Expense   `json:"expenses"`
	Wishlists  []*Wishlist  `json:"wishlists"`
	Memories   []*Memory    `json:"memories"`
}
