package domain

// =============================================================================
// CATALOG DOMAIN TYPES
// =============================================================================

// Product is a single catalog item. The catalog is loaded once per session
// and products are never mutated afterwards.
type Product struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Price        float64 `json:"price"`
	ImageURL     string  `json:"imageUrl"`
	Category     string  `json:"category"`
	Seller       string  `json:"seller"`
	Stock        int     `json:"stock"`
	Rating       float64 `json:"rating"`
	RatingCount  int     `json:"ratingCount"`
	ShippingCost float64 `json:"shippingCost"`
}

// SortMode selects the ordering applied to the displayed product list.
type SortMode string

const (
	SortRelevance SortMode = "relevance"
	SortPriceAsc  SortMode = "price_asc"
	SortPriceDesc SortMode = "price_desc"
	SortTopRated  SortMode = "top_rated"
)

// ParseSortMode validates a sort mode received from the renderer.
func ParseSortMode(s string) (SortMode, error) {
	switch SortMode(s) {
	case SortRelevance, SortPriceAsc, SortPriceDesc, SortTopRated:
		return SortMode(s), nil
	}
	return "", Invalid("query.parse_sort", "unknown sort mode: "+s)
}

// QueryState holds the transient search/sort selection. It is replaced
// wholesale on every search or sort event.
type QueryState struct {
	SearchText string   `json:"searchText"`
	Sort       SortMode `json:"sort"`
}

// DefaultQueryState matches the initial UI: empty search, relevance order.
func DefaultQueryState() QueryState {
	return QueryState{Sort: SortRelevance}
}

// ViewportState holds the renderer's last reported width.
type ViewportState struct {
	WidthPx int `json:"widthPx"`
}
