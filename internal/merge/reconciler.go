package merge

import (
	"fmt"
	"sort"
	"strings"

	"github.com/opennacc/declaration-extractor/constants"
	"github.com/opennacc/declaration-extractor/internal/entity"
	"github.com/opennacc/declaration-extractor/internal/llm"
)

// Merge reconciles per-page candidates for one section into exactly one
// record. It is deterministic: candidates are ordered by page index first, so
// the same inputs always produce the same output regardless of completion
// order.
//
// Scalars take the value from the highest-confidence candidate, earliest page
// on ties. Rows are unioned by the section's natural key; when two pages
// disagree on the same key, the higher-confidence row wins and the loser is
// kept as an anomaly rather than silently dropped.
func Merge(documentID string, section constants.Section, candidates []entity.CandidateRecord) entity.MergedRecord {
	out := entity.MergedRecord{
		DocumentID: documentID,
		Section:    section,
	}

	ordered := make([]entity.CandidateRecord, 0, len(candidates))
	for _, c := range candidates {
		if c.Status == constants.StatusFailed {
			continue
		}
		ordered = append(ordered, c)
	}
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].PageIndex < ordered[j].PageIndex })
	if len(ordered) == 0 {
		return out
	}

	def, _ := llm.SectionFor(section)

	// scalar fields: best candidate per field
	type pick struct {
		value      any
		confidence float64
		page       int
	}
	picks := make(map[string]pick)
	for _, c := range ordered {
		for name, v := range c.Fields {
			cur, seen := picks[name]
			better := c.Confidence > cur.confidence ||
				(c.Confidence == cur.confidence && c.PageIndex < cur.page)
			if !seen || better {
				picks[name] = pick{value: v, confidence: c.Confidence, page: c.PageIndex}
			}
		}
	}
	if len(picks) > 0 {
		out.Fields = make(map[string]any, len(picks))
		for name, p := range picks {
			out.Fields[name] = p.value
		}
	}

	// rows: union by natural key
	type slot struct {
		row        map[string]any
		confidence float64
		page       int
	}
	var order []string
	slots := make(map[string]*slot)
	for _, c := range ordered {
		for _, row := range c.Rows {
			key := RowKey(def.RowKey, row)
			existing, seen := slots[key]
			if !seen {
				slots[key] = &slot{row: row, confidence: c.Confidence, page: c.PageIndex}
				order = append(order, key)
				continue
			}
			if rowsEqual(row, existing.row) {
				continue
			}
			winner, loser := existing, &slot{row: row, confidence: c.Confidence, page: c.PageIndex}
			if loser.confidence > winner.confidence {
				winner, loser = loser, winner
				slots[key] = winner
			}
			out.Anomalies = append(out.Anomalies, entity.FieldAnomaly{
				Field:     strings.Join(def.RowKey, "+"),
				Value:     key,
				Reason:    fmt.Sprintf("conflicting row dropped in favor of page %d", winner.page),
				PageIndex: loser.page,
			})
		}
	}
	for _, key := range order {
		out.Rows = append(out.Rows, slots[key].row)
	}

	// provenance, carried anomalies, weighted confidence
	var weight, sum float64
	seenPages := make(map[int]struct{})
	for _, c := range ordered {
		out.Anomalies = append(out.Anomalies, c.Anomalies...)
		units := float64(len(c.Fields) + len(c.Rows))
		if units == 0 {
			units = 0.1 // empty-but-successful pages barely move the average
		}
		weight += units
		sum += units * c.Confidence
		// anomaly-only pages contributed evidence too, even when every value
		// they carried was dropped
		if len(c.Fields) > 0 || len(c.Rows) > 0 || len(c.Anomalies) > 0 {
			if _, dup := seenPages[c.PageIndex]; !dup {
				seenPages[c.PageIndex] = struct{}{}
				out.Provenance = append(out.Provenance, c.PageIndex)
			}
		}
	}
	sort.Ints(out.Provenance)
	if weight > 0 {
		out.Confidence = sum / weight
	}
	return out
}

// FromSingle wraps a combined-mode candidate as a merged record without
// touching its content.
func FromSingle(c entity.CandidateRecord) entity.MergedRecord {
	out := entity.MergedRecord{
		DocumentID: c.DocumentID,
		Section:    c.Section,
		Fields:     c.Fields,
		Rows:       c.Rows,
		Anomalies:  c.Anomalies,
		Confidence: c.Confidence,
	}
	if c.PageIndex > 0 && c.Status != constants.StatusFailed {
		out.Provenance = []int{c.PageIndex}
	}
	return out
}

// RowKey renders a row's natural key as a normalized string. Missing key
// fields render as "-" so partially-keyed rows still compare stably.
func RowKey(keyFields []string, row map[string]any) string {
	parts := make([]string, 0, len(keyFields))
	for _, f := range keyFields {
		v, ok := row[f]
		if !ok || v == nil {
			parts = append(parts, "-")
			continue
		}
		switch t := v.(type) {
		case string:
			s := strings.ToLower(strings.TrimSpace(t))
			parts = append(parts, strings.Join(strings.Fields(s), " "))
		default:
			parts = append(parts, fmt.Sprintf("%v", t))
		}
	}
	return strings.Join(parts, "|")
}

func rowsEqual(a, b map[string]any) bool {
	if len(a) != len(b) {
		return false
	}
	for k, av := range a {
		bv, ok := b[k]
		if !ok || fmt.Sprintf("%v", av) != fmt.Sprintf("%v", bv) {
			return false
		}
	}
	return true
}
