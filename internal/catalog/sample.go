package catalog

import "github.com/mdanwarhossen/emajohn/internal/domain"

// Fallback returns the fixed sample catalog served when the remote feed is
// unreachable. Returned fresh on every call so callers can never mutate a
// shared copy.
func Fallback() []domain.Product {
	return []domain.Product{
		{
			ID:           "f1",
			Name:         "Headphones",
			Price:        19.99,
			ImageURL:     "https://via.placeholder.com/220x160?text=Headphones",
			Stock:        10,
			Rating:       4.2,
			RatingCount:  34,
			ShippingCost: 2.5,
		},
		{
			ID:           "f2",
			Name:         "Mug",
			Price:        7.5,
			ImageURL:     "https://via.placeholder.com/220x160?text=Mug",
			Stock:        15,
			Rating:       4.6,
			RatingCount:  80,
			ShippingCost: 1.5,
		},
	}
}
