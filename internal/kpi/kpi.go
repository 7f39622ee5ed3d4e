// Package kpi computes the dashboard views off the analytics store and
// exports each as a JSON records file. Views that are assembled from parts
// use squirrel; the CTE-heavy views are raw SQL with provider-specific
// date expressions from the store.
package kpi

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/foodline-labs/foodline/internal/database"
)

// Export reports one written KPI file.
type Export struct {
	Name string
	File string
	Rows int
}

// Exporter runs every KPI view against the store.
type Exporter struct {
	store  *database.Store
	outDir string
}

func New(store *database.Store, outDir string) *Exporter {
	return &Exporter{store: store, outDir: outDir}
}

type view struct {
	name  string
	file  string
	query func() string
}

func (e *Exporter) views() []view {
	return []view{
		{"executive summary", "executive_summary.json", e.executiveSummaryQuery},
		{"yoy growth by distributor", "yoy_growth.json", e.yoyGrowthQuery},
		{"distributor scorecard", "distributor_scorecard.json", e.distributorScorecardQuery},
		{"rep performance rankings", "rep_rankings.json", e.repRankingsQuery},
		{"territory summary", "territory_summary.json", e.territorySummaryQuery},
		{"pipeline health", "pipeline_health.json", e.pipelineHealthQuery},
		{"monthly trends", "monthly_trends.json", e.monthlyTrendsQuery},
		{"activity-revenue correlation", "activity_correlation.json", e.activityCorrelationQuery},
	}
}

// ExportAll computes every view and writes it under the output directory.
func (e *Exporter) ExportAll(ctx context.Context) ([]Export, error) {
	if err := os.MkdirAll(e.outDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create kpi output directory: %w", err)
	}

	exports := make([]Export, 0, len(e.views()))
	for _, v := range e.views() {
		records, err := e.queryRecords(ctx, v.query())
		if err != nil {
			return nil, fmt.Errorf("failed to compute %s: %w", v.name, err)
		}

		path := filepath.Join(e.outDir, v.file)
		if err := writeJSON(path, records); err != nil {
			return nil, err
		}
		exports = append(exports, Export{Name: v.name, File: path, Rows: len(records)})
	}
	return exports, nil
}

// queryRecords runs a query and renders every row as a column→value map,
// preserving the records orientation of the JSON exports.
func (e *Exporter) queryRecords(ctx context.Context, query string) ([]map[string]any, error) {
	rows, err := e.store.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	var records []map[string]any
	for rows.Next() {
		values := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}

		record := make(map[string]any, len(cols))
		for i, col := range cols {
			record[col] = normalize(values[i])
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

func normalize(v any) any {
	switch val := v.(type) {
	case []byte:
		return string(val)
	case sql.RawBytes:
		return string(val)
	default:
		return v
	}
}

func writeJSON(path string, records []map[string]any) error {
	if records == nil {
		records = []map[string]any{}
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", path, err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

func (e *Exporter) executiveSummaryQuery() string {
	return `
		SELECT
			(SELECT SUM(net_sales) FROM shipments)                              AS total_net_sales,
			(SELECT COUNT(*) FROM shipments)                                    AS total_shipments,
			(SELECT COUNT(DISTINCT operator_id) FROM shipments)                 AS operators_served,
			(SELECT AVG(net_sales) FROM shipments)                              AS avg_shipment_value,
			(SELECT SUM(amount) FROM opportunities)                             AS total_pipeline_value,
			(SELECT SUM(amount) FROM opportunities WHERE stage = 'Closed Won')  AS won_revenue,
			(SELECT SUM(CASE WHEN stage = 'Closed Won' THEN 1 ELSE 0 END) * 1.0 /
			        NULLIF(SUM(CASE WHEN stage IN ('Closed Won', 'Closed Lost')
			               THEN 1 ELSE 0 END), 0)
			   FROM opportunities)                                              AS win_rate,
			(SELECT SUM(amount) FROM opportunities
			  WHERE stage NOT IN ('Closed Won', 'Closed Lost'))                 AS open_pipeline_value`
}

func (e *Exporter) yoyGrowthQuery() string {
	year := e.store.YearExpr("s.week_ending")
	return fmt.Sprintf(`
		WITH yearly AS (
			SELECT s.distributor_id,
			       d.distributor_name,
			       %s AS sales_year,
			       SUM(s.net_sales) AS net_sales
			FROM shipments s
			JOIN distributors d ON s.distributor_id = d.distributor_id
			GROUP BY s.distributor_id, d.distributor_name, %s
		)
		SELECT cur.distributor_id,
		       cur.distributor_name,
		       cur.sales_year,
		       cur.net_sales,
		       prev.net_sales AS prior_year_sales,
		       (cur.net_sales - prev.net_sales) * 100.0 / NULLIF(prev.net_sales, 0) AS yoy_growth_pct
		FROM yearly cur
		LEFT JOIN yearly prev
		  ON prev.distributor_id = cur.distributor_id
		 AND prev.sales_year = cur.sales_year - 1
		ORDER BY cur.distributor_id, cur.sales_year`, year, year)
}

func (e *Exporter) distributorScorecardQuery() string {
	return `
		SELECT d.distributor_id,
		       d.distributor_name,
		       d.distributor_type,
		       COUNT(s.shipment_id)               AS shipment_count,
		       COUNT(DISTINCT s.operator_id)      AS operators_served,
		       SUM(s.net_sales)                   AS total_net_sales,
		       AVG(s.net_sales)                   AS avg_order_value,
		       SUM(s.net_sales - s.cost_of_goods) AS gross_margin
		FROM distributors d
		LEFT JOIN shipments s ON s.distributor_id = d.distributor_id
		GROUP BY d.distributor_id, d.distributor_name, d.distributor_type
		ORDER BY total_net_sales DESC`
}

func (e *Exporter) repRankingsQuery() string {
	return `
		SELECT r.rep_id,
		       r.rep_name,
		       r.rep_tier,
		       r.quota_annual,
		       COUNT(o.opportunity_id)                                         AS won_deals,
		       COALESCE(SUM(o.amount), 0)                                      AS won_revenue,
		       COALESCE(SUM(o.amount), 0) * 100.0 / NULLIF(r.quota_annual, 0)  AS quota_attainment_pct
		FROM sales_reps r
		LEFT JOIN opportunities o
		  ON o.owner_id = r.rep_id AND o.stage = 'Closed Won'
		WHERE r.rep_tier <> 'Director'
		GROUP BY r.rep_id, r.rep_name, r.rep_tier, r.quota_annual
		ORDER BY won_revenue DESC`
}

func (e *Exporter) territorySummaryQuery() string {
	return `
		SELECT t.territory_id,
		       t.territory_name,
		       t.region,
		       COUNT(DISTINCT op.operator_id)  AS operator_count,
		       COUNT(DISTINCT a.account_id)    AS account_count,
		       COALESCE(SUM(s.net_sales), 0)   AS total_net_sales
		FROM territories t
		LEFT JOIN operators op ON op.territory_id = t.territory_id
		LEFT JOIN accounts a ON a.operator_id = op.operator_id
		LEFT JOIN shipments s ON s.operator_id = op.operator_id
		GROUP BY t.territory_id, t.territory_name, t.region
		ORDER BY total_net_sales DESC`
}

func (e *Exporter) pipelineHealthQuery() string {
	return `
		SELECT stage,
		       COUNT(*)                            AS deal_count,
		       SUM(amount)                         AS total_value,
		       SUM(amount * probability / 100.0)   AS weighted_value,
		       AVG(amount)                         AS avg_deal_size
		FROM opportunities
		WHERE stage NOT IN ('Closed Won', 'Closed Lost')
		GROUP BY stage
		ORDER BY MIN(probability)`
}

func (e *Exporter) monthlyTrendsQuery() string {
	year := e.store.YearExpr("week_ending")
	month := e.store.MonthExpr("week_ending")
	return fmt.Sprintf(`
		SELECT %s AS sales_year,
		       %s AS sales_month,
		       COUNT(*)                      AS shipment_count,
		       SUM(quantity)                 AS total_quantity,
		       SUM(net_sales)                AS net_sales,
		       COUNT(DISTINCT operator_id)   AS active_operators
		FROM shipments
		GROUP BY %s, %s
		ORDER BY sales_year, sales_month`, year, month, year, month)
}

func (e *Exporter) activityCorrelationQuery() string {
	return `
		SELECT r.rep_id,
		       r.rep_name,
		       COUNT(DISTINCT act.activity_id)  AS activity_count,
		       COALESCE(won.won_revenue, 0)     AS won_revenue,
		       COALESCE(won.won_deals, 0)       AS won_deals
		FROM sales_reps r
		LEFT JOIN activities act ON act.owner_id = r.rep_id
		LEFT JOIN (
			SELECT owner_id,
			       SUM(amount)  AS won_revenue,
			       COUNT(*)     AS won_deals
			FROM opportunities
			WHERE stage = 'Closed Won'
			GROUP BY owner_id
		) won ON won.owner_id = r.rep_id
		WHERE r.rep_tier <> 'Director'
		GROUP BY r.rep_id, r.rep_name, won.won_revenue, won.won_deals
		ORDER BY won_revenue DESC`
}
