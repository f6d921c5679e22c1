package llm

import "context"

// SectionRequest carries everything one structured-extraction call needs:
// the section's recognized text, its response schema, and the enum subset
// relevant to that section (never the whole registry, to keep the payload
// bounded and the prompt unambiguous).
type SectionRequest struct {
	DocumentID  string
	NaccID      int
	Section     string
	SourceText  string
	PageIndex   int // 1-based; 0 in combined mode
	PageCount   int
	EnumContext string
	Schema      map[string]any
}

// Envelope is the wire shape every section response must decode into.
type Envelope struct {
	Fields     map[string]any   `json:"fields,omitempty"`
	Rows       []map[string]any `json:"rows,omitempty"`
	Confidence float64          `json:"confidence,omitempty"`
}

// SectionClient is the interface the extractor depends on. Implementations
// return the raw JSON document produced by the reasoning service; parsing,
// schema validation and field validation belong to the caller.
type SectionClient interface {
	ExtractSection(ctx context.Context, req SectionRequest) ([]byte, error)
}
