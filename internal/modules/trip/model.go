// README: Trip aggregate and progress summary.
package trip

import (
	"time"

	"tripkit/internal/types"
)

type Trip struct {
	ID          types.ID
	Name        string
	Destination string
	StartDate   time.Time
	EndDate     time.Time
	CreatedAt   time.Time
}

// Days returns the inclusive trip length. A trip starting and ending on the
// same day is one day; inverted ranges clamp to one.
func (t *Trip) Days() int {
	d := int(t.EndDate.Sub(t.StartDate).Hours()/24) + 1
	if d < 1 {
		return 1
	}
	return d
}

// Progress holds completion percentages for the detail view, each 0-100
// rounded to one decimal. Empty lists report 0.
type Progress struct {
	Checklist float64 `json:"checklist"`
	Packing   float64 `json:"packing"`
	Wishlist  float64 `json:"wishlist"`
}
