// Package cart owns the session's shopping cart: the mapping from product id
// to (product snapshot, quantity) plus the derived money totals. All state
// lives behind a narrow mutation API; callers never touch entries directly.
package cart

import "github.com/mdanwarhossen/emajohn/internal/domain"

// Entry is one cart line: a product snapshot and a quantity.
// Quantity is always > 0; an entry that would reach 0 is removed instead.
type Entry struct {
	Product  domain.Product
	Quantity int
}

// Store holds the cart entries in insertion order. Display order is
// first-added-first-shown; totals do not depend on order.
//
// Store is not safe for concurrent use. The engine serializes all access.
type Store struct {
	entries map[string]*Entry
	order   []string
}

// NewStore creates an empty cart.
func NewStore() *Store {
	return &Store{entries: make(map[string]*Entry)}
}

// AddOne inserts the product with quantity 1, or increments an existing
// entry. The returned flag reports whether the increment was clamped at the
// product's stock limit.
func (s *Store) AddOne(p domain.Product) (limited bool) {
	if entry, ok := s.entries[p.ID]; ok {
		entry.Quantity, limited = clampQuantity(entry.Quantity+1, entry.Product.Stock)
		return limited
	}

	s.entries[p.ID] = &Entry{Product: p, Quantity: 1}
	s.order = append(s.order, p.ID)
	return false
}

// AdjustQuantity adds delta (typically ±1) to an entry's quantity.
// Unknown ids are a no-op: the reference may be stale UI state, not an
// error. A resulting quantity ≤ 0 removes the entry entirely. The returned
// flag reports a clamp at the stock limit.
func (s *Store) AdjustQuantity(productID string, delta int) (limited bool) {
	entry, ok := s.entries[productID]
	if !ok {
		return false
	}

	next := entry.Quantity + delta
	if next <= 0 {
		s.remove(productID)
		return false
	}

	entry.Quantity, limited = clampQuantity(next, entry.Product.Stock)
	return limited
}

// clampQuantity bounds qty to [1, stock] when stock is known and positive.
// A stock of 0 carries no upper bound: the feed historically used 0 both for
// "out of stock" and "unknown", and increments were only ever clamped
// against a positive stock. Preserved as documented behavior.
func clampQuantity(qty, stock int) (int, bool) {
	if stock > 0 && qty > stock {
		return stock, true
	}
	return qty, false
}

func (s *Store) remove(productID string) {
	delete(s.entries, productID)
	for i, id := range s.order {
		if id == productID {
			s.order = append(s.order[:i], s.order[i+1:]...)
			return
		}
	}
}

// Entries returns the cart lines in insertion order.
func (s *Store) Entries() []Entry {
	out := make([]Entry, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, *s.entries[id])
	}
	return out
}

// Totals recomputes subtotal, shipping and total from the current entries.
// Always derived, never cached, so it can never drift from the entries.
func (s *Store) Totals() domain.Totals {
	var t domain.Totals
	for _, entry := range s.entries {
		qty := float64(entry.Quantity)
		t.Subtotal += entry.Product.Price * qty
		t.Shipping += entry.Product.ShippingCost * qty
	}
	t.Total = t.Subtotal + t.Shipping
	return t
}

// Size returns the number of distinct entries, used for the cart badge.
func (s *Store) Size() int {
	return len(s.entries)
}

// Clear removes every entry.
func (s *Store) Clear() {
	s.entries = make(map[string]*Entry)
	s.order = nil
}
