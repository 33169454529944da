package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/mdanwarhossen/emajohn/internal/domain"
)

// DefaultTimeout bounds the single catalog fetch attempt.
const DefaultTimeout = 8 * time.Second

// Loader fetches the remote product feed and normalizes it into the
// canonical Product shape. Load never fails: any fetch or decode problem is
// logged and the fixed fallback catalog is returned instead, so a session
// never starts with zero products because of a transient network issue.
type Loader struct {
	url    string
	client *http.Client
	logger *slog.Logger
}

// NewLoader creates a Loader for the given feed URL. A timeout of zero
// selects DefaultTimeout.
func NewLoader(url string, timeout time.Duration, logger *slog.Logger) *Loader {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{
		url:    url,
		client: &http.Client{Timeout: timeout},
		logger: logger,
	}
}

// Load fetches and normalizes the catalog, falling back on failure.
func (l *Loader) Load(ctx context.Context) []domain.Product {
	products, err := l.fetch(ctx)
	if err != nil {
		l.logger.Warn("failed to load remote products, using fallback catalog",
			"url", l.url,
			"error", err,
		)
		return Fallback()
	}
	return products
}

func (l *Loader) fetch(ctx context.Context) ([]domain.Product, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build catalog request: %w", err)
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch catalog: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("catalog fetch returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog body: %w", err)
	}

	var raw []map[string]any
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode catalog payload: %w", err)
	}

	return Normalize(raw), nil
}

// Normalize converts raw feed records into Products using a fixed precedence
// order per field. Duplicate ids resolve deterministically: the last record
// wins, keeping the position of the first occurrence so catalog order stays
// stable.
func Normalize(raw []map[string]any) []domain.Product {
	products := make([]domain.Product, 0, len(raw))
	position := make(map[string]int, len(raw))

	for i, rec := range raw {
		p := normalizeRecord(rec, i)
		if at, seen := position[p.ID]; seen {
			products[at] = p
			continue
		}
		position[p.ID] = len(products)
		products = append(products, p)
	}

	return products
}

// Field precedence, matching the feed's historical spellings:
//
//	id           "id", else positional index
//	name         "name", else "Unnamed product"
//	price        "price"
//	image        "img", then "image"
//	stock        "stock", then "quantity"; absent means 10, explicit 0 stays 0
//	rating       "ratings", then "rating"
//	rating count "ratingsCount", then "ratingCount"
//	shipping     "shipping"
func normalizeRecord(rec map[string]any, index int) domain.Product {
	id := stringField(rec, "id")
	if id == "" {
		id = strconv.Itoa(index)
	}

	name := stringField(rec, "name")
	if name == "" {
		name = "Unnamed product"
	}

	return domain.Product{
		ID:           id,
		Name:         name,
		Price:        floatField(rec, 0, "price"),
		ImageURL:     stringField(rec, "img", "image"),
		Category:     stringField(rec, "category"),
		Seller:       stringField(rec, "seller"),
		Stock:        intField(rec, 10, "stock", "quantity"),
		Rating:       floatField(rec, 0, "ratings", "rating"),
		RatingCount:  intField(rec, 0, "ratingsCount", "ratingCount"),
		ShippingCost: floatField(rec, 0, "shipping"),
	}
}

// stringField returns the first present key rendered as a string.
// Numeric ids in the feed become their decimal representation.
func stringField(rec map[string]any, keys ...string) string {
	for _, key := range keys {
		v, ok := rec[key]
		if !ok || v == nil {
			continue
		}
		switch s := v.(type) {
		case string:
			if s != "" {
				return s
			}
		case float64:
			return strconv.FormatFloat(s, 'f', -1, 64)
		}
	}
	return ""
}

// floatField returns the first present key coerced to a non-negative float.
// Unparseable or negative values fall through to the next key, then to the
// default.
func floatField(rec map[string]any, def float64, keys ...string) float64 {
	for _, key := range keys {
		v, ok := rec[key]
		if !ok || v == nil {
			continue
		}
		switch n := v.(type) {
		case float64:
			if n >= 0 {
				return n
			}
		case string:
			if f, err := strconv.ParseFloat(n, 64); err == nil && f >= 0 {
				return f
			}
		}
	}
	return def
}

// intField is floatField truncated to int. An explicit zero counts as
// present, so "stock": 0 is honored rather than defaulted.
func intField(rec map[string]any, def int, keys ...string) int {
	for _, key := range keys {
		v, ok := rec[key]
		if !ok || v == nil {
			continue
		}
		switch n := v.(type) {
		case float64:
			if n >= 0 {
				return int(n)
			}
		case string:
			if f, err := strconv.ParseFloat(n, 64); err == nil && f >= 0 {
				return int(f)
			}
		}
	}
	return def
}
