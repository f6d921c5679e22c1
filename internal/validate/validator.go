package validate

import (
	"fmt"
	"log/slog"
	"math"
	"sort"
	"strings"

	"github.com/opennacc/declaration-extractor/constants"
	"github.com/opennacc/declaration-extractor/internal/entity"
	"github.com/opennacc/declaration-extractor/internal/enums"
)

// DefaultTolerance is the absolute slack, in currency units, allowed when
// comparing a statement total against the sum of its line items.
const DefaultTolerance = 0.05

// Validator runs every consistency rule against an assembled RecordSet and
// emits one verdict per rule. Verdicts are data: a failing rule never stops
// the pipeline.
type Validator struct {
	log       *slog.Logger
	registry  *enums.Registry
	tolerance float64
}

func NewValidator(registry *enums.Registry, tolerance float64, logger *slog.Logger) *Validator {
	if logger == nil {
		logger = slog.Default()
	}
	if tolerance <= 0 {
		tolerance = DefaultTolerance
	}
	return &Validator{log: logger, registry: registry, tolerance: tolerance}
}

// Validate evaluates all rules in RuleOrder.
func (v *Validator) Validate(rs *entity.RecordSet) []entity.Verdict {
	checks := map[string]func(*entity.RecordSet) []string{
		RuleForeignKeys:     v.checkForeignKeys,
		RuleEnumValid:       v.checkEnums,
		RuleMoneyNonNeg:     v.checkMoney,
		RuleDatesValid:      v.checkDates,
		RuleStatementTotals: v.checkStatementTotals,
		RuleDateRanges:      v.checkDateRanges,
	}

	verdicts := make([]entity.Verdict, 0, len(RuleOrder))
	for _, rule := range RuleOrder {
		failures := checks[rule](rs)
		verdict := entity.Verdict{
			DocumentID: rs.DocumentID,
			Rule:       rule,
			Severity:   ruleSeverity[rule],
			Passed:     len(failures) == 0,
			Detail:     describe(failures),
		}
		if !verdict.Passed {
			v.log.Warn("validate.rule_failed",
				"doc_id", rs.DocumentID,
				"rule", rule,
				"severity", verdict.Severity,
				"violations", len(failures),
			)
		}
		verdicts = append(verdicts, verdict)
	}
	return verdicts
}

// Status folds verdicts into the validation contribution to the document
// status: a failed mandatory rule fails the document, a failed advisory rule
// degrades it to partial.
func Status(verdicts []entity.Verdict) constants.ExtractionStatus {
	status := constants.StatusSuccess
	for _, vd := range verdicts {
		if vd.Passed {
			continue
		}
		if vd.Severity == entity.SeverityMandatory {
			return constants.StatusFailed
		}
		status = constants.Worse(status, constants.StatusPartial)
	}
	return status
}

func (v *Validator) checkForeignKeys(rs *entity.RecordSet) []string {
	var failures []string
	for _, ref := range foreignKeys {
		children := rs.Tables[ref.childTable]
		if len(children) == 0 {
			continue
		}
		parents := make(map[int]struct{})
		for _, row := range rs.Tables[ref.parentTable] {
			if id, ok := intVal(row[ref.parentCol]); ok {
				parents[id] = struct{}{}
			}
		}
		for i, row := range children {
			id, ok := intVal(row[ref.childCol])
			if !ok {
				failures = append(failures, fmt.Sprintf("%s[%d].%s missing", ref.childTable, i, ref.childCol))
				continue
			}
			if _, found := parents[id]; !found {
				failures = append(failures, fmt.Sprintf("%s[%d].%s=%d has no %s row", ref.childTable, i, ref.childCol, id, ref.parentTable))
			}
		}
	}
	return failures
}

func (v *Validator) checkEnums(rs *entity.RecordSet) []string {
	var failures []string
	for _, table := range TableNames(rs) {
		for i, row := range rs.Tables[table] {
			for col, domain := range enumColumns {
				val, present := row[col]
				if !present || val == nil {
					continue
				}
				id, ok := intVal(val)
				if !ok || !v.registry.ResolveID(domain, id) {
					failures = append(failures, fmt.Sprintf("%s[%d].%s=%v not in %s", table, i, col, val, domain))
				}
			}
		}
	}
	return failures
}

func (v *Validator) checkMoney(rs *entity.RecordSet) []string {
	var failures []string
	for _, table := range TableNames(rs) {
		for i, row := range rs.Tables[table] {
			for col, val := range row {
				if val == nil || !isMoneyColumn(col) {
					continue
				}
				f, ok := floatVal(val)
				if !ok {
					failures = append(failures, fmt.Sprintf("%s[%d].%s=%v is not numeric", table, i, col, val))
					continue
				}
				if f < 0 {
					failures = append(failures, fmt.Sprintf("%s[%d].%s=%v is negative", table, i, col, val))
				}
			}
		}
	}
	return failures
}

func (v *Validator) checkDates(rs *entity.RecordSet) []string {
	var failures []string
	for _, table := range TableNames(rs) {
		for i, row := range rs.Tables[table] {
			for col, val := range row {
				if val == nil {
					continue
				}
				var lo, hi int
				switch {
				case strings.HasSuffix(col, "_date"):
					lo, hi = 1, 31
				case strings.HasSuffix(col, "_month"):
					lo, hi = 1, 12
				case strings.HasSuffix(col, "_year"):
					lo, hi = 2400, 2700
				default:
					continue
				}
				n, ok := intVal(val)
				if !ok || n < lo || n > hi {
					failures = append(failures, fmt.Sprintf("%s[%d].%s=%v outside [%d,%d]", table, i, col, val, lo, hi))
				}
			}
		}
	}
	return failures
}

func (v *Validator) checkStatementTotals(rs *entity.RecordSet) []string {
	details := rs.Tables["statement_detail"]
	var failures []string
	for i, stmt := range rs.Tables["statement"] {
		typeID, ok := intVal(stmt["statement_type_id"])
		if !ok {
			continue
		}
		group := statementDetailGroups[typeID]
		if group == nil {
			continue
		}
		for _, col := range []string{"valuation_submitter", "valuation_spouse", "valuation_child"} {
			total, ok := floatVal(stmt[col])
			if !ok {
				continue
			}
			var sum float64
			counted := 0
			for _, d := range details {
				dt, ok := intVal(d["statement_detail_type_id"])
				if !ok || !containsInt(group, dt) {
					continue
				}
				if f, ok := floatVal(d[col]); ok {
					sum += f
					counted++
				}
			}
			if counted == 0 {
				continue
			}
			if math.Abs(total-sum) > v.tolerance {
				failures = append(failures, fmt.Sprintf(
					"statement[%d] type %d %s: total %.2f vs detail sum %.2f (tolerance %.2f)",
					i, typeID, col, total, sum, v.tolerance))
			}
		}
	}
	return failures
}

func (v *Validator) checkDateRanges(rs *entity.RecordSet) []string {
	var failures []string
	for _, check := range dateRangeChecks {
		for i, row := range rs.Tables[check.table] {
			sy, syOK := intVal(row[check.start+"_year"])
			ey, eyOK := intVal(row[check.end+"_year"])
			if !syOK || !eyOK {
				continue
			}
			if ey != sy {
				if ey < sy {
					failures = append(failures, fmt.Sprintf("%s[%d]: %s_year %d before %s_year %d", check.table, i, check.end, ey, check.start, sy))
				}
				continue
			}
			sm, smOK := intVal(row[check.start+"_month"])
			em, emOK := intVal(row[check.end+"_month"])
			if !smOK || !emOK {
				continue
			}
			if em != sm {
				if em < sm {
					failures = append(failures, fmt.Sprintf("%s[%d]: ends month %d before month %d of same year", check.table, i, em, sm))
				}
				continue
			}
			sd, sdOK := intVal(row[check.start+"_date"])
			ed, edOK := intVal(row[check.end+"_date"])
			if sdOK && edOK && ed < sd {
				failures = append(failures, fmt.Sprintf("%s[%d]: ends day %d before day %d of same month", check.table, i, ed, sd))
			}
		}
	}
	return failures
}

// TableNames returns the populated tables of rs in deterministic order.
func TableNames(rs *entity.RecordSet) []string {
	names := make([]string, 0, len(rs.Tables))
	for name := range rs.Tables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func isMoneyColumn(col string) bool {
	if _, ok := moneyColumns[col]; ok {
		return true
	}
	return strings.HasPrefix(col, "valuation")
}

func describe(failures []string) string {
	const max = 5
	if len(failures) == 0 {
		return ""
	}
	shown := failures
	suffix := ""
	if len(failures) > max {
		shown = failures[:max]
		suffix = fmt.Sprintf(" (+%d more)", len(failures)-max)
	}
	return strings.Join(shown, "; ") + suffix
}

func intVal(v any) (int, bool) {
	switch t := v.(type) {
	case int:
		return t, true
	case int64:
		return int(t), true
	case float64:
		return int(t), true
	default:
		return 0, false
	}
}

func floatVal(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case int:
		return float64(t), true
	case int64:
		return float64(t), true
	default:
		return 0, false
	}
}

func containsInt(ss []int, n int) bool {
	for _, x := range ss {
		if x == n {
			return true
		}
	}
	return false
}
