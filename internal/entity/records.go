package entity

import (
	"github.com/opennacc/declaration-extractor/constants"
)

// RawSection is the immutable input to extraction: one section's worth of
// recognized text for one document (or one page of it in per-page mode).
type RawSection struct {
	DocumentID string
	NaccID     int
	Section    constants.Section
	SourceText string
	PageIndex  int // 1-based; 0 in combined mode
	PageCount  int
}

// FieldAnomaly records a field-level problem (unresolved enum, bad number,
// ambiguous date, discarded merge conflict). Anomalies degrade a record to
// partial instead of discarding it.
type FieldAnomaly struct {
	Field     string `json:"field"`
	Value     string `json:"value"`
	Reason    string `json:"reason"`
	PageIndex int    `json:"page_index,omitempty"`
}

// CandidateRecord is the validated output of one extraction request.
// Scalar fields live in Fields; repeating sections carry Rows. A section may
// have both (e.g. the tax section: scalar tax figures plus statement totals).
type CandidateRecord struct {
	DocumentID string
	Section    constants.Section
	PageIndex  int
	Fields     map[string]any
	Rows       []map[string]any
	Anomalies  []FieldAnomaly
	Confidence float64
	Status     constants.ExtractionStatus
	Error      string // last error when Status is failed
}

// MergedRecord is exactly one record per section per document, produced by
// the page reconciler (or pass-through in combined mode).
type MergedRecord struct {
	DocumentID string
	Section    constants.Section
	Fields     map[string]any
	Rows       []map[string]any
	Provenance []int // contributing page indexes, ascending
	Confidence float64
	Anomalies  []FieldAnomaly
}

// Row is one output table row, column name to value.
type Row map[string]any

// RecordSet is the full relational projection for one document, ready for
// tabular serialization. Tables are keyed by canonical table name; iteration
// should follow assemble.TableOrder (parent before child).
type RecordSet struct {
	DocumentID string
	NaccID     int
	Tables     map[string][]Row
}

// Verdict is the outcome of one consistency rule for one document.
type Verdict struct {
	DocumentID string
	Rule       string
	Severity   Severity
	Passed     bool
	Detail     string
}

// Severity decides how a failing rule affects the document status.
type Severity string

const (
	SeverityMandatory Severity = "mandatory"
	SeverityAdvisory  Severity = "advisory"
)

// DocumentResult is everything the pipeline produces for one document.
type DocumentResult struct {
	DocumentID string
	NaccID     int
	Mode       constants.ExtractionMode
	Status     constants.ExtractionStatus
	Confidence float64
	Sections   []MergedRecord
	Records    *RecordSet // nil when assembly failed
	Verdicts   []Verdict
	Error      string // set when the document was excluded from output
}
