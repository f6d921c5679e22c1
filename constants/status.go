package constants

// ExtractionStatus is the status carried by candidate and merged records,
// and by the final per-document result.
type ExtractionStatus string

const (
	StatusSuccess ExtractionStatus = "success"
	StatusPartial ExtractionStatus = "partial"
	StatusFailed  ExtractionStatus = "failed"
)

var statusRank = map[ExtractionStatus]int{
	StatusFailed:  0,
	StatusPartial: 1,
	StatusSuccess: 2,
}

// Worse returns the lower of two statuses (failed < partial < success).
func Worse(a, b ExtractionStatus) ExtractionStatus {
	if statusRank[a] <= statusRank[b] {
		return a
	}
	return b
}

// JobStatus is the canonical status for rows in extract_job.
type JobStatus string

// Stable values (store these exact strings in DB).
const (
	JobStatusQueued    JobStatus = "QUEUED"
	JobStatusRunning   JobStatus = "RUNNING"
	JobStatusValidated JobStatus = "VALIDATED" // consistency rules evaluated, terminal
	JobStatusFailed    JobStatus = "FAILED"    // terminal failure
)

// ExtractionMode selects whether a document is parsed in one request or
// page by page with a merge step.
type ExtractionMode string

const (
	ModeCombined ExtractionMode = "combined"
	ModePerPage  ExtractionMode = "per_page"
)
