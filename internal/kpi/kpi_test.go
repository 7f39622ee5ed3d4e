package kpi

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foodline-labs/foodline/internal/database"
)

func seedStore(t *testing.T) *database.Store {
	t.Helper()
	ctx := context.Background()

	store, err := database.Connect(ctx, "sqlite", filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	require.NoError(t, store.CreateTables(ctx))

	insert := func(table string, values ...any) {
		def, ok := database.TableByName(table)
		require.True(t, ok)
		query, args, err := store.Builder().
			Insert(table).Columns(def.ColumnNames()...).Values(values...).ToSql()
		require.NoError(t, err)
		_, err = store.DB.ExecContext(ctx, query, args...)
		require.NoError(t, err, "insert into %s", table)
	}

	insert("territories", "TERR-001", "Metro New York", "Northeast", "NY", "America/New_York")
	insert("distributors", "DIST-001", "Summit Foods", "National", "NY", "TERR-001", "2008-04-12")
	insert("products", "PROD-00001", "Chicken Breast", "Gordon Choice", "Proteins", "Poultry", "LB", 24.50, 15.90, 1)
	insert("sales_reps", "REP-MGR-001", "Dana Walker", "dana.walker1@salescorp.net", "2012-05-01", "TERR-001", nil, 3_000_000.0, "Director")
	insert("sales_reps", "REP-001", "Chris Lee", "chris.lee2@salescorp.net", "2016-09-15", "TERR-001", "REP-MGR-001", 100_000.0, "Senior")
	insert("operators", "OP-000001", "Harbor Grill", "Restaurant", "American", "Brooklyn", "NY", "Kings County", "11201", "TERR-001", "2010-06-01", "Medium", "DIST-001")
	insert("accounts", "ACC-000001", "OP-000001", "Harbor Grill", "Customer", "Foodservice", "REP-001", "2018-03-10", "2024-11-02", "Active")

	insert("opportunities", "OPP-0000001", "ACC-000001", "Harbor Grill - Proteins Deal", "Closed Won", 60_000.0, 100, "2019-02-01", "2018-11-01", "REP-001", "Referral", "Proteins", nil, nil)
	insert("opportunities", "OPP-0000002", "ACC-000001", "Harbor Grill - Dairy Deal", "Closed Lost", 20_000.0, 0, "2020-06-15", "2020-03-01", "REP-001", "Website", "Dairy", "Sysco", "Price")
	insert("opportunities", "OPP-0000003", "ACC-000001", "Harbor Grill - Produce Deal", "Negotiation", 30_000.0, 80, "2025-09-01", "2025-06-10", "REP-001", "Cold Call", "Produce", nil, nil)

	insert("activities", "ACT-00000001", "ACC-000001", "OPP-0000001", "REP-001", "Call", "2018-12-01", 30, "Call: Harbor Grill - Proteins Deal", "Connected", nil)
	insert("activities", "ACT-00000002", "ACC-000001", nil, "REP-001", "Email", "2019-05-14", 10, "Email: General check-in", "Completed", nil)

	// Two shipment years for the YoY self-join.
	insert("shipments", "SHIP-0000000001", "2019-03-14", "2019-03-16", "DIST-001", "OP-000001", "PROD-00001", 12, 294.00, 0.0, 0.0, 294.00, 190.80)
	insert("shipments", "SHIP-0000000002", "2020-03-18", "2020-03-21", "DIST-001", "OP-000001", "PROD-00001", 8, 196.00, 0.0, 0.0, 196.00, 127.20)

	return store
}

func readRecords(t *testing.T, path string) []map[string]any {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var records []map[string]any
	require.NoError(t, json.Unmarshal(data, &records))
	return records
}

func TestExportAll(t *testing.T) {
	store := seedStore(t)
	outDir := filepath.Join(t.TempDir(), "dashboards")

	exports, err := New(store, outDir).ExportAll(context.Background())
	require.NoError(t, err)
	require.Len(t, exports, 8)

	for _, e := range exports {
		assert.FileExists(t, e.File)
	}
}

func TestExecutiveSummary(t *testing.T) {
	store := seedStore(t)
	outDir := t.TempDir()

	_, err := New(store, outDir).ExportAll(context.Background())
	require.NoError(t, err)

	records := readRecords(t, filepath.Join(outDir, "executive_summary.json"))
	require.Len(t, records, 1)

	summary := records[0]
	assert.InDelta(t, 490.0, summary["total_net_sales"].(float64), 0.01)
	assert.EqualValues(t, 2, summary["total_shipments"])
	assert.InDelta(t, 0.5, summary["win_rate"].(float64), 0.001, "one won, one lost")
	assert.InDelta(t, 30_000.0, summary["open_pipeline_value"].(float64), 0.01)
}

func TestYoYGrowth(t *testing.T) {
	store := seedStore(t)
	outDir := t.TempDir()

	_, err := New(store, outDir).ExportAll(context.Background())
	require.NoError(t, err)

	records := readRecords(t, filepath.Join(outDir, "yoy_growth.json"))
	require.Len(t, records, 2)

	first := records[0]
	assert.EqualValues(t, 2019, first["sales_year"])
	assert.Nil(t, first["yoy_growth_pct"], "no prior year for the first year")

	second := records[1]
	assert.EqualValues(t, 2020, second["sales_year"])
	assert.InDelta(t, (196.0-294.0)*100/294.0, second["yoy_growth_pct"].(float64), 0.01)
}

func TestRepRankingsExcludeDirectors(t *testing.T) {
	store := seedStore(t)
	outDir := t.TempDir()

	_, err := New(store, outDir).ExportAll(context.Background())
	require.NoError(t, err)

	records := readRecords(t, filepath.Join(outDir, "rep_rankings.json"))
	require.Len(t, records, 1, "directors never appear in the rankings")

	rep := records[0]
	assert.Equal(t, "REP-001", rep["rep_id"])
	assert.InDelta(t, 60_000.0, rep["won_revenue"].(float64), 0.01)
	assert.InDelta(t, 60.0, rep["quota_attainment_pct"].(float64), 0.01)
}

func TestPipelineHealth(t *testing.T) {
	store := seedStore(t)
	outDir := t.TempDir()

	_, err := New(store, outDir).ExportAll(context.Background())
	require.NoError(t, err)

	records := readRecords(t, filepath.Join(outDir, "pipeline_health.json"))
	require.Len(t, records, 1, "only open stages appear")

	stage := records[0]
	assert.Equal(t, "Negotiation", stage["stage"])
	assert.InDelta(t, 30_000.0*0.8, stage["weighted_value"].(float64), 0.01)
}

func TestEmptyStoreExportsEmptyRecords(t *testing.T) {
	ctx := context.Background()
	store, err := database.Connect(ctx, "sqlite", filepath.Join(t.TempDir(), "empty.db"))
	require.NoError(t, err)
	defer store.Close()
	require.NoError(t, store.CreateTables(ctx))

	outDir := t.TempDir()
	exports, err := New(store, outDir).ExportAll(ctx)
	require.NoError(t, err)
	require.Len(t, exports, 8)

	records := readRecords(t, filepath.Join(outDir, "monthly_trends.json"))
	assert.Empty(t, records)
}
