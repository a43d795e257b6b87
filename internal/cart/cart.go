// Package cart holds the customer ordering state of one browser session: the item dialog that is
// currently open, the variations selected in it, and the confirmed cart entries.
package cart

import (
	"sync"
	"time"

	"platra/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// IDGenerator produces cart-local entry ids.
type IDGenerator func() string

// Selection is an open item dialog: one menu item plus the set of variations ticked in it.
type Selection struct {
	item     model.MenuItem
	selected map[string]model.MenuItemVariation
}

// NewSelection opens item with no variations selected.
func NewSelection(item model.MenuItem) *Selection {
	return &Selection{
		item:     item,
		selected: make(map[string]model.MenuItemVariation),
	}
}

// Item returns the open menu item.
func (s *Selection) Item() model.MenuItem {
	return s.item
}

// Toggle selects the variation if it is not selected and deselects it otherwise.
// Ids that do not belong to the item are ignored.
func (s *Selection) Toggle(variationID string) bool {
	if _, ok := s.selected[variationID]; ok {
		delete(s.selected, variationID)
		return false
	}
	v, ok := s.item.Variation(variationID)
	if !ok {
		return false
	}
	s.selected[variationID] = v
	return true
}

// IsSelected reports whether the variation is currently selected.
func (s *Selection) IsSelected(variationID string) bool {
	_, ok := s.selected[variationID]
	return ok
}

// Selected returns a copy of the selected variations keyed by id.
func (s *Selection) Selected() map[string]model.MenuItemVariation {
	out := make(map[string]model.MenuItemVariation, len(s.selected))
	for k, v := range s.selected {
		out[k] = v
	}
	return out
}

// Total is the item's base price plus the modifiers of the selected variations.
func (s *Selection) Total() decimal.Decimal {
	total := s.item.Price
	for _, v := range s.selected {
		total = total.Add(v.PriceModifier)
	}
	return total
}

// Cart is the ordered list of confirmed entries plus the currently open selection.
// It is safe for concurrent use.
type Cart struct {
	mu      sync.Mutex
	entries []model.CartEntry
	open    *Selection
	newID   IDGenerator
	now     func() time.Time
}

// Option configures a Cart.
type Option func(*Cart)

// WithIDGenerator replaces the default uuid-based entry id generator.
func WithIDGenerator(gen IDGenerator) Option {
	return func(c *Cart) {
		c.newID = gen
	}
}

// WithClock replaces time.Now for entry timestamps.
func WithClock(now func() time.Time) Option {
	return func(c *Cart) {
		c.now = now
	}
}

// New creates an empty cart.
func New(opts ...Option) *Cart {
	c := &Cart{
		newID: uuid.NewString,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Open starts a fresh selection for item, discarding any previously open one.
func (c *Cart) Open(item model.MenuItem) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.open = NewSelection(item)
}

// Close discards the open selection without adding it.
func (c *Cart) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.open = nil
}

// Toggle flips a variation of the open item and returns the resulting view.
func (c *Cart) Toggle(variationID string) (SelectionView, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.open == nil {
		return SelectionView{}, model.ErrNoOpenItem
	}
	c.open.Toggle(variationID)
	return viewOf(c.open), nil
}

// Selection returns a view of the open item, or ErrNoOpenItem.
func (c *Cart) Selection() (SelectionView, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.open == nil {
		return SelectionView{}, model.ErrNoOpenItem
	}
	return viewOf(c.open), nil
}

// Confirm snapshots the open selection into a new cart entry and closes the dialog.
func (c *Cart) Confirm() (model.CartEntry, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.open == nil {
		return model.CartEntry{}, model.ErrNoOpenItem
	}
	if !c.open.item.IsAvailable {
		return model.CartEntry{}, model.ErrItemUnavailable
	}

	entry := model.CartEntry{
		ID:                 c.newID(),
		Item:               c.open.item,
		SelectedVariations: c.open.Selected(),
		TotalPrice:         c.open.Total(),
		AddedAt:            c.now(),
	}
	c.entries = append(c.entries, entry)
	c.open = nil
	return entry, nil
}

// Remove drops the entry with the given id. Unknown ids leave the cart untouched and
// report false.
func (c *Cart) Remove(entryID string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	kept := make([]model.CartEntry, 0, len(c.entries))
	removed := false
	for _, e := range c.entries {
		if e.ID == entryID {
			removed = true
			continue
		}
		kept = append(kept, e)
	}
	if removed {
		c.entries = kept
	}
	return removed
}

// Entries returns a copy of the cart entries in insertion order.
func (c *Cart) Entries() []model.CartEntry {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]model.CartEntry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Len is the number of entries.
func (c *Cart) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Total sums the stored entry totals.
func (c *Cart) Total() decimal.Decimal {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Sum(c.entries)
}

// Clear empties the cart and closes any open selection.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = nil
	c.open = nil
}

// Sum adds up the TotalPrice of entries.
func Sum(entries []model.CartEntry) decimal.Decimal {
	total := decimal.Zero
	for _, e := range entries {
		total = total.Add(e.TotalPrice)
	}
	return total
}
