// Package query turns the full catalog plus the current search/sort
// selection into the ordered product list to display.
package query

import (
	"sort"
	"strings"

	"github.com/mdanwarhossen/emajohn/internal/domain"
)

// Apply filters the catalog by the search text and orders the result by the
// sort mode. It is a pure function: the catalog is never mutated and
// identical inputs always yield identical output.
//
// A product matches when the search text is empty, or the lower-cased text
// is a substring of the lower-cased name or category. All sorts are stable;
// ties keep catalog order. Relevance is the identity order.
func Apply(catalog []domain.Product, state domain.QueryState) []domain.Product {
	needle := strings.ToLower(strings.TrimSpace(state.SearchText))

	filtered := make([]domain.Product, 0, len(catalog))
	for _, p := range catalog {
		if needle == "" || matches(p, needle) {
			filtered = append(filtered, p)
		}
	}

	switch state.Sort {
	case domain.SortPriceAsc:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Price < filtered[j].Price
		})
	case domain.SortPriceDesc:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Price > filtered[j].Price
		})
	case domain.SortTopRated:
		sort.SliceStable(filtered, func(i, j int) bool {
			if filtered[i].Rating != filtered[j].Rating {
				return filtered[i].Rating > filtered[j].Rating
			}
			return filtered[i].RatingCount > filtered[j].RatingCount
		})
	}

	return filtered
}

func matches(p domain.Product, needle string) bool {
	return strings.Contains(strings.ToLower(p.Name), needle) ||
		strings.Contains(strings.ToLower(p.Category), needle)
}
