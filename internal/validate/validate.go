// Package validate runs the post-load integrity report against the
// analytics store: row counts, required-column nulls, foreign key orphans,
// date ranges and business-logic sanity bands. Violations are reported,
// never repaired.
package validate

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/foodline-labs/foodline/internal/database"
)

// Section is one numbered block of the report.
type Section struct {
	Title  string
	Lines  []string
	Issues []string
}

// Report is the full validation result.
type Report struct {
	Sections []Section
}

// Issues flattens every issue across sections.
func (r *Report) Issues() []string {
	var all []string
	for _, s := range r.Sections {
		all = append(all, s.Issues...)
	}
	return all
}

// Validator checks one loaded store against the generation horizon.
type Validator struct {
	store      *database.Store
	start, end time.Time
}

func New(store *database.Store, start, end time.Time) *Validator {
	return &Validator{store: store, start: start, end: end}
}

// Run executes every section in order.
func (v *Validator) Run(ctx context.Context) (*Report, error) {
	report := &Report{}

	sections := []func(context.Context) (Section, error){
		v.rowCounts,
		v.nullChecks,
		v.foreignKeys,
		v.dateRanges,
		v.businessLogic,
	}
	for _, section := range sections {
		s, err := section(ctx)
		if err != nil {
			return nil, err
		}
		report.Sections = append(report.Sections, s)
	}
	return report, nil
}

func (v *Validator) countQuery(ctx context.Context, b sq.SelectBuilder) (int64, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build query: %w", err)
	}
	var n int64
	if err := v.store.DB.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to run %q: %w", query, err)
	}
	return n, nil
}

func (v *Validator) rowCounts(ctx context.Context) (Section, error) {
	s := Section{Title: "1. Table row counts"}

	for _, t := range database.Tables {
		n, err := v.countQuery(ctx, v.store.Builder().Select("COUNT(*)").From(t.Name))
		if err != nil {
			return s, err
		}
		s.Lines = append(s.Lines, fmt.Sprintf("%-15s %10d rows", t.Name, n))
		if n == 0 {
			s.Issues = append(s.Issues, fmt.Sprintf("table %s is empty", t.Name))
		}
	}
	return s, nil
}

// requiredColumns are the columns that must never be NULL after a load.
var requiredColumns = map[string][]string{
	"distributors":  {"distributor_name", "distributor_type", "territory_id"},
	"products":      {"product_name", "category", "standard_price", "cost"},
	"sales_reps":    {"rep_name", "territory_id", "quota_annual", "rep_tier"},
	"operators":     {"operator_name", "territory_id", "annual_revenue_tier", "primary_distributor_id"},
	"accounts":      {"operator_id", "account_type", "owner_id", "created_date"},
	"opportunities": {"account_id", "stage", "amount", "close_date", "owner_id"},
	"activities":    {"account_id", "owner_id", "activity_type", "activity_date"},
	"shipments":     {"distributor_id", "operator_id", "product_id", "quantity", "net_sales"},
}

func (v *Validator) nullChecks(ctx context.Context) (Section, error) {
	s := Section{Title: "2. Required column null checks"}

	for _, t := range database.Tables {
		cols, ok := requiredColumns[t.Name]
		if !ok {
			continue
		}
		for _, col := range cols {
			n, err := v.countQuery(ctx, v.store.Builder().
				Select("COUNT(*)").From(t.Name).Where(col+" IS NULL"))
			if err != nil {
				return s, err
			}
			if n > 0 {
				s.Issues = append(s.Issues, fmt.Sprintf("%s.%s has %d NULL values", t.Name, col, n))
			}
		}
		s.Lines = append(s.Lines, fmt.Sprintf("%-15s %d required columns checked", t.Name, len(cols)))
	}
	return s, nil
}

type fkCheck struct {
	child, childCol   string
	parent, parentCol string
}

// Rows with a NULL FK (standalone activities, Directors without managers)
// are skipped by the IS NOT NULL guard on the child column.
var fkChecks = []fkCheck{
	{"distributors", "territory_id", "territories", "territory_id"},
	{"operators", "territory_id", "territories", "territory_id"},
	{"operators", "primary_distributor_id", "distributors", "distributor_id"},
	{"sales_reps", "territory_id", "territories", "territory_id"},
	{"accounts", "operator_id", "operators", "operator_id"},
	{"accounts", "owner_id", "sales_reps", "rep_id"},
	{"opportunities", "account_id", "accounts", "account_id"},
	{"opportunities", "owner_id", "sales_reps", "rep_id"},
	{"activities", "account_id", "accounts", "account_id"},
	{"activities", "opportunity_id", "opportunities", "opportunity_id"},
	{"shipments", "distributor_id", "distributors", "distributor_id"},
	{"shipments", "operator_id", "operators", "operator_id"},
	{"shipments", "product_id", "products", "product_id"},
}

func (v *Validator) foreignKeys(ctx context.Context) (Section, error) {
	s := Section{Title: "3. Foreign key integrity"}

	for _, check := range fkChecks {
		b := v.store.Builder().
			Select("COUNT(*)").
			From(check.child + " c").
			LeftJoin(fmt.Sprintf("%s p ON c.%s = p.%s", check.parent, check.childCol, check.parentCol)).
			Where(fmt.Sprintf("c.%s IS NOT NULL AND p.%s IS NULL", check.childCol, check.parentCol))

		n, err := v.countQuery(ctx, b)
		if err != nil {
			return s, err
		}
		s.Lines = append(s.Lines, fmt.Sprintf("%s.%s → %s: %d orphans",
			check.child, check.childCol, check.parent, n))
		if n > 0 {
			s.Issues = append(s.Issues, fmt.Sprintf("%s.%s has %d orphaned references to %s",
				check.child, check.childCol, n, check.parent))
		}
	}
	return s, nil
}

func (v *Validator) dateRanges(ctx context.Context) (Section, error) {
	s := Section{Title: "4. Date ranges"}

	checks := []struct {
		table, col string
	}{
		{"shipments", "shipment_date"},
		{"shipments", "week_ending"},
		{"accounts", "created_date"},
		{"opportunities", "created_date"},
		{"opportunities", "close_date"},
		{"activities", "activity_date"},
	}

	lo := v.start.Format("2006-01-02")
	hi := v.end.Format("2006-01-02")

	for _, check := range checks {
		query, args, err := v.store.Builder().
			Select(fmt.Sprintf("MIN(%s), MAX(%s)", check.col, check.col)).
			From(check.table).ToSql()
		if err != nil {
			return s, fmt.Errorf("failed to build query: %w", err)
		}

		var minDate, maxDate sql.NullString
		if err := v.store.DB.QueryRowContext(ctx, query, args...).Scan(&minDate, &maxDate); err != nil {
			return s, fmt.Errorf("failed to read date range of %s.%s: %w", check.table, check.col, err)
		}
		if !minDate.Valid {
			continue
		}

		lowest := minDate.String[:10]
		highest := maxDate.String[:10]
		s.Lines = append(s.Lines, fmt.Sprintf("%s.%s: %s .. %s", check.table, check.col, lowest, highest))

		if highest > hi {
			s.Issues = append(s.Issues, fmt.Sprintf("%s.%s extends past horizon end (%s > %s)",
				check.table, check.col, highest, hi))
		}
		// Account/opportunity dates never precede the horizon start; shipment
		// weeks start at the first Saturday at or after it.
		if lowest < lo {
			s.Issues = append(s.Issues, fmt.Sprintf("%s.%s precedes horizon start (%s < %s)",
				check.table, check.col, lowest, lo))
		}
	}
	return s, nil
}

func (v *Validator) scanFloat(ctx context.Context, query string) (float64, error) {
	var val sql.NullFloat64
	if err := v.store.DB.QueryRowContext(ctx, query).Scan(&val); err != nil {
		return 0, fmt.Errorf("failed to run %q: %w", query, err)
	}
	return val.Float64, nil
}

func (v *Validator) businessLogic(ctx context.Context) (Section, error) {
	s := Section{Title: "5. Business logic"}

	winRate, err := v.scanFloat(ctx, `
		SELECT SUM(CASE WHEN stage = 'Closed Won' THEN 1 ELSE 0 END) * 1.0 /
		       NULLIF(SUM(CASE WHEN stage IN ('Closed Won', 'Closed Lost') THEN 1 ELSE 0 END), 0)
		FROM opportunities`)
	if err != nil {
		return s, err
	}
	s.Lines = append(s.Lines, fmt.Sprintf("closed-deal win rate: %.1f%%", winRate*100))
	if winRate < 0.25 || winRate > 0.55 {
		s.Issues = append(s.Issues, fmt.Sprintf("win rate %.1f%% outside expected band 25%%-55%%", winRate*100))
	}

	netRatio, err := v.scanFloat(ctx, `
		SELECT SUM(net_sales) / NULLIF(SUM(gross_sales), 0) FROM shipments`)
	if err != nil {
		return s, err
	}
	s.Lines = append(s.Lines, fmt.Sprintf("net sales as %% of gross: %.1f%%", netRatio*100))
	if netRatio < 0.80 || netRatio > 1.0 {
		s.Issues = append(s.Issues, fmt.Sprintf("net/gross ratio %.1f%% outside expected band 80%%-100%%", netRatio*100))
	}

	avgWon, err := v.scanFloat(ctx, `
		SELECT AVG(amount) FROM opportunities WHERE stage = 'Closed Won'`)
	if err != nil {
		return s, err
	}
	s.Lines = append(s.Lines, fmt.Sprintf("average won deal: $%.2f", avgWon))
	if avgWon < 5_000 || avgWon > 200_000 {
		s.Issues = append(s.Issues, fmt.Sprintf("average won deal $%.2f outside expected band $5,000-$200,000", avgWon))
	}

	return s, nil
}
