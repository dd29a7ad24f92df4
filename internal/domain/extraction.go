package domain

// DetailField is one heading/value row from the product detail tables.
// Kept as a slice element rather than a map entry so document order survives.
type DetailField struct {
	Heading string
	Value   string
}

// ExtractedText holds the plain-text sections pulled from a product page
// before any model involvement. Empty string means "not found", never an
// error. Created once per request and discarded after prompt composition.
type ExtractedText struct {
	Title          string
	Price          string
	Description    string
	ProductDetails []DetailField
	Thumbnail      string
}

// IsEmpty reports whether no section was found at all.
func (e *ExtractedText) IsEmpty() bool {
	return e.Title == "" && e.Price == "" && e.Description == "" &&
		len(e.ProductDetails) == 0 && e.Thumbnail == ""
}

// Detail returns the value for a heading, or "" when absent.
func (e *ExtractedText) Detail(heading string) string {
	for _, f := range e.ProductDetails {
		if f.Heading == heading {
			return f.Value
		}
	}
	return ""
}

// ExtractRequest is an ingestion request. At least one of URL, ASIN or HTML
// must be set; HTML short-circuits the page fetch.
type ExtractRequest struct {
	URL  string `json:"url,omitempty"`
	ASIN string `json:"asin,omitempty"`
	HTML string `json:"html,omitempty"`
}

// ExtractResult is the ingestion response: the normalized record plus the
// advisory validation outcome.
type ExtractResult struct {
	Product    *ProductRecord `json:"product"`
	Violations []string       `json:"violations,omitempty"`
	Source     string         `json:"source"` // "llm" or "cache"
}
