package cart

import (
	"sort"

	"restaurant-ordering-api/models"
)

// Store maintains the cart lines for one order context. All mutations
// go through the Store so the running total and the persistence
// invariants stay intact; persisted records exist only while the cart
// is non-empty (an absent record doubles as the "no cart yet" state).
type Store struct {
	storage Storage
	context models.OrderContext
	items   []models.CartItem
	total   float64
}

// NewStore loads the persisted cart for the given context, or starts
// empty when none exists.
func NewStore(storage Storage, ctx models.OrderContext) (*Store, error) {
	s := &Store{storage: storage, context: ctx}
	if err := s.reload(); err != nil {
		return nil, err
	}
	return s, nil
}

// Add merges the item into an existing line with the same identity
// (id plus variation set) by incrementing its quantity, or appends a
// new line at quantity 1. The incoming quantity field is ignored.
func (s *Store) Add(item models.CartItem) error {
	for i := range s.items {
		if sameLine(s.items[i], item.ID, item.Variations) {
			s.items[i].Quantity++
			return s.commit()
		}
	}
	item.Quantity = 1
	s.items = append(s.items, item)
	return s.commit()
}

// Remove drops every line matching (id, variations). A nil variations
// argument matches only lines that themselves carry no variations.
func (s *Store) Remove(id string, variations []string) error {
	kept := s.items[:0]
	for _, line := range s.items {
		if !sameLine(line, id, variations) {
			kept = append(kept, line)
		}
	}
	s.items = kept
	return s.commit()
}

// UpdateQuantity sets the quantity for matching lines, floored at 1.
// There is no remove-via-zero path; removal is an explicit action.
func (s *Store) UpdateQuantity(id string, quantity int, variations []string) error {
	if quantity < 1 {
		quantity = 1
	}
	for i := range s.items {
		if sameLine(s.items[i], id, variations) {
			s.items[i].Quantity = quantity
		}
	}
	return s.commit()
}

// Clear empties the cart for the current context only.
func (s *Store) Clear() error {
	s.items = nil
	return s.commit()
}

// SwitchContext repoints the store at another context's persisted cart.
// Carts are isolated per context; switching never merges or deletes.
func (s *Store) SwitchContext(ctx models.OrderContext) error {
	s.context = ctx
	return s.reload()
}

// Items returns a copy of the current cart lines.
func (s *Store) Items() []models.CartItem {
	return append([]models.CartItem{}, s.items...)
}

// TotalAmount is the running sum of price times quantity.
func (s *Store) TotalAmount() float64 {
	return s.total
}

// Context returns the order context the store is currently bound to.
func (s *Store) Context() models.OrderContext {
	return s.context
}

func (s *Store) reload() error {
	items, _, err := s.storage.Load(s.context.StorageKey())
	if err != nil {
		return err
	}
	s.items = items
	s.recalc()
	return nil
}

func (s *Store) commit() error {
	s.recalc()
	key := s.context.StorageKey()
	if len(s.items) == 0 {
		return s.storage.Delete(key)
	}
	return s.storage.Save(key, s.items)
}

func (s *Store) recalc() {
	s.total = 0
	for _, line := range s.items {
		s.total += line.Price * float64(line.Quantity)
	}
}

// sameLine compares merge identity: same base id and the same set of
// variations. Variation lists are compared as sorted sets so the order
// options were picked in cannot split one logical line into two.
func sameLine(line models.CartItem, id string, variations []string) bool {
	if line.ID != id {
		return false
	}
	return sameVariations(line.Variations, variations)
}

func sameVariations(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	as := append([]string{}, a...)
	bs := append([]string{}, b...)
	sort.Strings(as)
	sort.Strings(bs)
	for i := range as {
		if as[i] != bs[i] {
			return false
		}
	}
	return true
}
