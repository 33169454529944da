package domain

// =============================================================================
// VIEW MODEL TYPES (derived, render-ready)
// =============================================================================

// Breakpoint is the responsive layout mode selected by viewport width.
type Breakpoint string

const (
	BreakpointMobile  Breakpoint = "mobile"
	BreakpointTablet  Breakpoint = "tablet"
	BreakpointDesktop Breakpoint = "desktop"
)

// Layout describes the active responsive layout: which breakpoint is live,
// the fraction of the viewport the product column occupies, and the pixel
// size product images should render at.
type Layout struct {
	Breakpoint  Breakpoint `json:"breakpoint"`
	ColumnShare float64    `json:"columnShare"`
	ImageSizePx int        `json:"imageSizePx"`
}

// Totals aggregates the cart money columns. Never stored; always recomputed
// from the current entries.
type Totals struct {
	Subtotal float64 `json:"subtotal"`
	Shipping float64 `json:"shipping"`
	Total    float64 `json:"total"`
}

// ProductCard is one displayed product with its render-ready decorations.
type ProductCard struct {
	Product
	PriceLabel string `json:"priceLabel"`
	Stars      string `json:"stars"`
}

// CartRow is one cart line item with per-row totals.
type CartRow struct {
	ProductID   string  `json:"productId"`
	Name        string  `json:"name"`
	DisplayName string  `json:"displayName"`
	ImageURL    string  `json:"imageUrl"`
	UnitPrice   float64 `json:"unitPrice"`
	Quantity    int     `json:"quantity"`
	LineTotal   float64 `json:"lineTotal"`
}

// ViewModel is the complete snapshot handed to the renderer. It is rebuilt
// as a whole after every event; partial updates are never emitted.
type ViewModel struct {
	DisplayedProducts []ProductCard `json:"displayedProducts"`
	CartRows          []CartRow     `json:"cartRows"`
	Totals            Totals        `json:"totals"`
	Layout            Layout        `json:"layout"`
	CartBadgeCount    int           `json:"cartBadgeCount"`
	CatalogCount      int           `json:"catalogCount"`
	Query             QueryState    `json:"query"`

	// Notice carries the one-shot "stock limit reached" advisory. Empty on
	// snapshots produced by events that did not clamp a quantity.
	Notice string `json:"notice,omitempty"`
}
