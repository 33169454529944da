package storefront

import (
	"net/http"

	"github.com/mdanwarhossen/emajohn/internal/domain"
)

// Page is a static informational page rendered by the client.
type Page struct {
	Slug  string   `json:"slug"`
	Title string   `json:"title"`
	Lines []string `json:"lines"`
}

var pages = map[string]Page{
	"about": {
		Slug:  "about",
		Title: "About Us",
		Lines: []string{
			"EMA-John is a demo e-commerce platform.",
			"We aim to provide a fully responsive and interactive shopping experience.",
		},
	},
	"contact": {
		Slug:  "contact",
		Title: "Contact Us",
		Lines: []string{
			"Email: support@example.com",
			"Phone: +123456789",
			"Address: 123 Main St, City, Country",
		},
	},
}

// PageHandler serves the static About/Contact content.
type PageHandler struct{}

// NewPageHandler creates a new page handler.
func NewPageHandler() *PageHandler {
	return &PageHandler{}
}

// ServeHTTP handles GET /api/pages/{page}
func (h *PageHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("page")

	page, ok := pages[slug]
	if !ok {
		respondError(w, domain.NotFound("pages.get", "page", slug))
		return
	}

	respondJSON(w, http.StatusOK, page)
}
