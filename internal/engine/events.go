package engine

import "github.com/mdanwarhossen/emajohn/internal/domain"

// EventType discriminates renderer events.
type EventType string

const (
	EventSearch    EventType = "search"
	EventSetSort   EventType = "set_sort"
	EventAddToCart EventType = "add_to_cart"
	EventAdjustQty EventType = "adjust_qty"
	EventResize    EventType = "resize"
)

// Event is one inbound user action. The renderer is decoupled from the core
// entirely: whatever widget callback produced the action, it arrives here as
// a plain typed value.
type Event struct {
	Type      EventType
	Text      string
	Sort      domain.SortMode
	ProductID string
	Delta     int
	WidthPx   int
}

// Search builds a search-text event.
func Search(text string) Event {
	return Event{Type: EventSearch, Text: text}
}

// SetSort builds a sort-mode event.
func SetSort(mode domain.SortMode) Event {
	return Event{Type: EventSetSort, Sort: mode}
}

// AddToCart builds an add-to-cart event for a catalog product id.
func AddToCart(productID string) Event {
	return Event{Type: EventAddToCart, ProductID: productID}
}

// AdjustQty builds a quantity adjustment event (delta is signed, usually ±1).
func AdjustQty(productID string, delta int) Event {
	return Event{Type: EventAdjustQty, ProductID: productID, Delta: delta}
}

// Resize builds a viewport resize event.
func Resize(widthPx int) Event {
	return Event{Type: EventResize, WidthPx: widthPx}
}
