package validate

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foodline-labs/foodline/internal/database"
)

var (
	start = time.Date(2015, 1, 1, 0, 0, 0, 0, time.UTC)
	end   = time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)
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
	insert("sales_reps", "REP-001", "Chris Lee", "chris.lee2@salescorp.net", "2016-09-15", "TERR-001", "REP-MGR-001", 900_000.0, "Senior")
	insert("operators", "OP-000001", "Harbor Grill", "Restaurant", "American", "Brooklyn", "NY", "Kings County", "11201", "TERR-001", "2010-06-01", "Medium", "DIST-001")
	insert("accounts", "ACC-000001", "OP-000001", "Harbor Grill", "Customer", "Foodservice", "REP-001", "2018-03-10", "2024-11-02", "Active")

	// Two won, three lost: 40% win rate, inside the 25-55% band.
	insert("opportunities", "OPP-0000001", "ACC-000001", "Harbor Grill - Proteins Deal", "Closed Won", 60_000.0, 100, "2019-02-01", "2018-11-01", "REP-001", "Referral", "Proteins", nil, nil)
	insert("opportunities", "OPP-0000002", "ACC-000001", "Harbor Grill - Dairy Deal", "Closed Won", 40_000.0, 100, "2020-06-15", "2020-03-01", "REP-001", "Website", "Dairy", nil, nil)
	insert("opportunities", "OPP-0000003", "ACC-000001", "Harbor Grill - Produce Deal", "Closed Lost", 25_000.0, 0, "2021-04-01", "2021-01-10", "REP-001", "Cold Call", "Produce", "Sysco", "Price")
	insert("opportunities", "OPP-0000004", "ACC-000001", "Harbor Grill - Frozen Deal", "Closed Lost", 30_000.0, 0, "2022-08-01", "2022-05-20", "REP-001", "Partner", "Frozen", "US Foods", "Timing")
	insert("opportunities", "OPP-0000005", "ACC-000001", "Harbor Grill - Beverages Deal", "Closed Lost", 20_000.0, 0, "2023-03-01", "2022-12-05", "REP-001", "Trade Show", "Beverages", "Local Supplier", "Budget Constraints")

	insert("activities", "ACT-00000001", "ACC-000001", "OPP-0000001", "REP-001", "Call", "2018-12-01", 30, "Call: Harbor Grill - Proteins Deal", "Connected", "Prepare contract draft")
	insert("activities", "ACT-00000002", "ACC-000001", nil, "REP-001", "Email", "2019-05-14", 10, "Email: General check-in", "Completed", nil)

	// Net sales at 95% of gross.
	insert("shipments", "SHIP-0000000001", "2019-03-14", "2019-03-16", "DIST-001", "OP-000001", "PROD-00001", 12, 294.00, 14.70, 0.0, 279.30, 190.80)
	insert("shipments", "SHIP-0000000002", "2019-03-20", "2019-03-23", "DIST-001", "OP-000001", "PROD-00001", 8, 196.00, 0.0, 9.80, 186.20, 127.20)

	return store
}

func TestRunCleanStore(t *testing.T) {
	store := seedStore(t)

	report, err := New(store, start, end).Run(context.Background())
	require.NoError(t, err)

	require.Len(t, report.Sections, 5)
	assert.Empty(t, report.Issues(), "consistent dataset yields no issues: %v", report.Issues())
}

func TestRunDetectsOrphans(t *testing.T) {
	store := seedStore(t)
	ctx := context.Background()

	_, err := store.DB.ExecContext(ctx, `
		INSERT INTO shipments VALUES
		('SHIP-9999999999', '2019-04-01', '2019-04-06', 'DIST-001', 'OP-999999',
		 'PROD-00001', 5, 100.0, 0.0, 0.0, 100.0, 75.0)`)
	require.NoError(t, err)

	report, err := New(store, start, end).Run(ctx)
	require.NoError(t, err)

	issues := report.Issues()
	require.NotEmpty(t, issues)
	assert.Contains(t, issues[0], "shipments.operator_id")
}

func TestRunDetectsEmptyTables(t *testing.T) {
	store := seedStore(t)
	ctx := context.Background()

	_, err := store.DB.ExecContext(ctx, "DELETE FROM activities")
	require.NoError(t, err)

	report, err := New(store, start, end).Run(ctx)
	require.NoError(t, err)

	found := false
	for _, issue := range report.Issues() {
		if issue == "table activities is empty" {
			found = true
		}
	}
	assert.True(t, found, "empty table must be reported: %v", report.Issues())
}

func TestRunDetectsDateOverrun(t *testing.T) {
	store := seedStore(t)
	ctx := context.Background()

	_, err := store.DB.ExecContext(ctx, `
		INSERT INTO shipments VALUES
		('SHIP-9999999998', '2026-02-01', '2026-02-07', 'DIST-001', 'OP-000001',
		 'PROD-00001', 5, 100.0, 0.0, 0.0, 95.0, 75.0)`)
	require.NoError(t, err)

	report, err := New(store, start, end).Run(ctx)
	require.NoError(t, err)

	found := false
	for _, issue := range report.Issues() {
		if strings.Contains(issue, "extends past horizon end") {
			found = true
		}
	}
	assert.True(t, found, "out-of-horizon date must be reported: %v", report.Issues())
}

func TestRunDetectsWinRateDrift(t *testing.T) {
	store := seedStore(t)
	ctx := context.Background()

	// Flip every loss to a win: 100% win rate breaches the band.
	_, err := store.DB.ExecContext(ctx,
		"UPDATE opportunities SET stage = 'Closed Won', probability = 100")
	require.NoError(t, err)

	report, err := New(store, start, end).Run(ctx)
	require.NoError(t, err)

	found := false
	for _, issue := range report.Issues() {
		if strings.Contains(issue, "win rate") {
			found = true
		}
	}
	assert.True(t, found, "win rate drift must be reported: %v", report.Issues())
}
