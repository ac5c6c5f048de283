// Package collector defines core types shared across the collection pipeline.
package collector

// Provider endpoints and pagination constants.
const (
	// BaseURL is the provider origin, also used to absolutize relative links.
	BaseURL = "https://www.walmart.ca"
	// SearchURL is the public catalog search endpoint.
	SearchURL = BaseURL + "/api/seo/catalog/search"
	// PageSize is the number of items requested per page. A page that comes
	// back shorter than this is treated as the end of results.
	PageSize = 24
)

// Store is one fixed Walmart location targeted by a run.
type Store struct {
	Slug       string `json:"slug"`
	Name       string `json:"name"`
	City       string `json:"city"`
	PostalCode string `json:"postal_code"`
	StoreID    string `json:"store_id"`
}

// RawItem is one product record exactly as returned by the search API.
// The provider does not commit to a shape, so logical fields are resolved
// through ordered fallback accessors rather than a fixed struct.
type RawItem map[string]any

// SearchPage is the decoded body of one search API response. A missing
// items array decodes to nil and is treated as an empty page.
type SearchPage struct {
	Items []RawItem `json:"items"`
}

// Item is the canonical output record for one product. Price, Was, and Pct
// are pointers so absent values serialize as JSON null instead of zero.
type Item struct {
	SKU          string   `json:"sku"`
	Title        string   `json:"title"`
	Store        string   `json:"store"`
	City         string   `json:"city"`
	Price        *float64 `json:"price"`
	Was          *float64 `json:"was"`
	Pct          *int     `json:"pct"`
	URL          string   `json:"url"`
	Image        string   `json:"image"`
	Availability string   `json:"availability"`
}

// Payload is the JSON artifact persisted for one run.
type Payload struct {
	GeneratedAt string  `json:"generated_at"`
	Source      string  `json:"source"`
	Query       string  `json:"query"`
	Stores      []Store `json:"stores"`
	Items       []Item  `json:"items"`
}
