package enums

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/opennacc/declaration-extractor/constants"
)

// Entry is one (id, label) pair of a closed vocabulary.
type Entry struct {
	ID    int
	Label string
}

// Registry holds every enum vocabulary used to constrain extraction.
// It is loaded once before extraction begins and is read-only afterwards,
// so concurrent readers need no locking.
type Registry struct {
	domains map[string][]Entry
	byID    map[string]map[int]struct{}
	byLabel map[string]map[string]int
}

// New builds a registry from an in-memory vocabulary mapping. Labels are
// indexed under case/whitespace normalization; alternate labels for the same
// id can be supplied as additional entries.
func New(domains map[string][]Entry) *Registry {
	r := &Registry{
		domains: make(map[string][]Entry, len(domains)),
		byID:    make(map[string]map[int]struct{}, len(domains)),
		byLabel: make(map[string]map[string]int, len(domains)),
	}
	for name, entries := range domains {
		es := make([]Entry, len(entries))
		copy(es, entries)
		sort.SliceStable(es, func(i, j int) bool { return es[i].ID < es[j].ID })
		r.domains[name] = es

		ids := make(map[int]struct{}, len(es))
		labels := make(map[string]int, len(es))
		for _, e := range es {
			ids[e.ID] = struct{}{}
			if key := normalizeLabel(e.Label); key != "" {
				if _, dup := labels[key]; !dup {
					labels[key] = e.ID
				}
			}
		}
		r.byID[name] = ids
		r.byLabel[name] = labels
	}
	return r
}

// Load reads one CSV per domain from dir (e.g. relationship.csv with columns
// relationship_id,relationship_name). Extra columns are indexed as alternate
// labels for the same id. Every domain in constants.AllDomains must load.
func Load(dir string, logger *slog.Logger) (*Registry, error) {
	if logger == nil {
		logger = slog.Default()
	}
	domains := make(map[string][]Entry, len(constants.AllDomains))
	for _, domain := range constants.AllDomains {
		path := filepath.Join(dir, domain+".csv")
		entries, err := loadCSV(path)
		if err != nil {
			return nil, fmt.Errorf("load enum domain %s: %w", domain, err)
		}
		domains[domain] = entries
		logger.Info("enums.domain_loaded", "domain", domain, "entries", len(entries))
	}
	return New(domains), nil
}

func loadCSV(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rd := csv.NewReader(f)
	rd.FieldsPerRecord = -1
	records, err := rd.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("no data rows in %s", filepath.Base(path))
	}

	var entries []Entry
	for _, rec := range records[1:] { // skip header
		if len(rec) < 2 {
			continue
		}
		id, err := strconv.Atoi(strings.TrimSpace(rec[0]))
		if err != nil {
			return nil, fmt.Errorf("bad id %q: %w", rec[0], err)
		}
		entries = append(entries, Entry{ID: id, Label: strings.TrimSpace(rec[1])})
		// remaining columns are alternate labels (e.g. sub-category names)
		for _, alt := range rec[2:] {
			if alt = strings.TrimSpace(alt); alt != "" {
				entries = append(entries, Entry{ID: id, Label: alt})
			}
		}
	}
	return entries, nil
}

// Resolve maps a candidate id or label to a known enum id. It fails closed:
// only an exact id match or a case/whitespace-normalized label match counts,
// never a nearest-match guess.
func (r *Registry) Resolve(domain, candidate string) (int, bool) {
	candidate = strings.TrimSpace(candidate)
	if candidate == "" {
		return 0, false
	}
	ids, ok := r.byID[domain]
	if !ok {
		return 0, false
	}
	if id, err := strconv.Atoi(candidate); err == nil {
		if _, known := ids[id]; known {
			return id, true
		}
		return 0, false
	}
	if id, known := r.byLabel[domain][normalizeLabel(candidate)]; known {
		return id, true
	}
	return 0, false
}

// ResolveID reports whether id is a member of domain.
func (r *Registry) ResolveID(domain string, id int) bool {
	_, ok := r.byID[domain][id]
	return ok
}

// Domain returns the ordered entries of one vocabulary. The returned slice
// must not be mutated.
func (r *Registry) Domain(domain string) []Entry {
	return r.domains[domain]
}

// PromptContext renders the given domains as an id=label reference block for
// inclusion in extraction prompts.
func (r *Registry) PromptContext(domains ...string) string {
	var b strings.Builder
	for _, domain := range domains {
		entries, ok := r.domains[domain]
		if !ok {
			continue
		}
		b.WriteString(domain)
		b.WriteString(":\n")
		seen := make(map[int]struct{}, len(entries))
		for _, e := range entries {
			if _, dup := seen[e.ID]; dup {
				continue
			}
			seen[e.ID] = struct{}{}
			fmt.Fprintf(&b, "  %d = %s\n", e.ID, e.Label)
		}
	}
	return b.String()
}

func normalizeLabel(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.Join(strings.Fields(s), " ")
}
