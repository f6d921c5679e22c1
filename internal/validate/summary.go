package validate

import "github.com/opennacc/declaration-extractor/internal/entity"

// RuleCount aggregates one rule's outcomes across a batch.
type RuleCount struct {
	Rule     string
	Severity entity.Severity
	Passed   int
	Failed   int
}

// Summary aggregates verdicts across documents for batch reporting.
type Summary struct {
	Documents     int
	DocumentsFail int // at least one mandatory rule failed
	byRule        map[string]*RuleCount
	failedDocs    map[string]struct{}
}

func NewSummary() *Summary {
	return &Summary{
		byRule:     make(map[string]*RuleCount, len(RuleOrder)),
		failedDocs: make(map[string]struct{}),
	}
}

// Add folds one document's verdicts into the summary.
func (s *Summary) Add(verdicts []entity.Verdict) {
	s.Documents++
	for _, v := range verdicts {
		rc, ok := s.byRule[v.Rule]
		if !ok {
			rc = &RuleCount{Rule: v.Rule, Severity: v.Severity}
			s.byRule[v.Rule] = rc
		}
		if v.Passed {
			rc.Passed++
			continue
		}
		rc.Failed++
		if v.Severity == entity.SeverityMandatory {
			if _, seen := s.failedDocs[v.DocumentID]; !seen {
				s.failedDocs[v.DocumentID] = struct{}{}
				s.DocumentsFail++
			}
		}
	}
}

// Rules returns per-rule counts in RuleOrder, skipping rules never evaluated.
func (s *Summary) Rules() []RuleCount {
	out := make([]RuleCount, 0, len(s.byRule))
	for _, rule := range RuleOrder {
		if rc, ok := s.byRule[rule]; ok {
			out = append(out, *rc)
		}
	}
	return out
}
