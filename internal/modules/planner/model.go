// README: Generated-content model shared by the AI orchestrator and the template fallback.
package planner

// Fields is a loosely typed record as produced by the vendor response parser
// or the static templates. The persistence mapper applies per-kind defaults
// for anything missing.
type Fields map[string]any

// Content maps the generated categories to ordered record lists. Order is
// whatever the vendor or template produced; it is never re-sorted.
type Content struct {
	Checklists []Fields
	Items      []Fields
	LocalInfos []Fields
	Wishlists  []Fields
	Expenses   []Fields
}

// Empty reports whether no category produced anything. Used to decide whether
// a vendor result is worth adopting.
func (c Content) Empty() bool {
	return len(c.Checklists) == 0 && len(c.Items) == 0 && len(c.LocalInfos) == 0 && len(c.Wishlists) == 0
}

// Summary holds per-category insert counts reported back to the caller.
type Summary struct {
	Checklists int `json:"checklists"`
	Items      int `json:"items"`
	LocalInfos int `json:"local_infos"`
	Wishlists  int `json:"wishlists"`
	Expenses   int `json:"expenses"`
}

// Summarize counts the entries per category.
func (c Content) Summarize() Summary {
	return Summary{
		Checklists: len(c.Checklists),
		Items:      len(c.Items),
		LocalInfos: len(c.LocalInfos),
		Wishlists:  len(c.Wishlists),
		Expenses:   len(c.Expenses),
	}
}
