package database

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

// Column types are abstract and mapped per provider. Key columns are
// VARCHAR so MySQL can index them; money columns are double precision
// because the source values are already rounded to cents.
const (
	colKey   = "key"
	colText  = "text"
	colDate  = "date"
	colInt   = "int"
	colMoney = "money"
)

type column struct {
	name string
	kind string
}

// Table describes one analytics table. Columns are ordered exactly like the
// corresponding flat-file header so loads can bind by position.
type Table struct {
	Name    string
	PK      string
	Columns []column
}

// Tables lists every analytics table in load order: parents before children
// so foreign keys always resolve.
var Tables = []Table{
	{
		Name: "territories", PK: "territory_id",
		Columns: []column{
			{"territory_id", colKey}, {"territory_name", colText}, {"region", colText},
			{"state", colText}, {"timezone", colText},
		},
	},
	{
		Name: "distributors", PK: "distributor_id",
		Columns: []column{
			{"distributor_id", colKey}, {"distributor_name", colText}, {"distributor_type", colText},
			{"headquarters_state", colText}, {"territory_id", colKey}, {"active_since", colDate},
		},
	},
	{
		Name: "products", PK: "product_id",
		Columns: []column{
			{"product_id", colKey}, {"product_name", colText}, {"brand", colText},
			{"category", colText}, {"subcategory", colText}, {"unit_of_measure", colText},
			{"standard_price", colMoney}, {"cost", colMoney}, {"active", colInt},
		},
	},
	{
		Name: "sales_reps", PK: "rep_id",
		Columns: []column{
			{"rep_id", colKey}, {"rep_name", colText}, {"email", colText},
			{"hire_date", colDate}, {"territory_id", colKey}, {"manager_id", colKey},
			{"quota_annual", colMoney}, {"rep_tier", colText},
		},
	},
	{
		Name: "operators", PK: "operator_id",
		Columns: []column{
			{"operator_id", colKey}, {"operator_name", colText}, {"operator_type", colText},
			{"cuisine_type", colText}, {"city", colText}, {"state", colText},
			{"county", colText}, {"zip_code", colText}, {"territory_id", colKey},
			{"opening_date", colDate}, {"annual_revenue_tier", colText},
			{"primary_distributor_id", colKey},
		},
	},
	{
		Name: "accounts", PK: "account_id",
		Columns: []column{
			{"account_id", colKey}, {"operator_id", colKey}, {"account_name", colText},
			{"account_type", colText}, {"industry", colText}, {"owner_id", colKey},
			{"created_date", colDate}, {"last_activity_date", colDate}, {"account_status", colText},
		},
	},
	{
		Name: "opportunities", PK: "opportunity_id",
		Columns: []column{
			{"opportunity_id", colKey}, {"account_id", colKey}, {"opportunity_name", colText},
			{"stage", colText}, {"amount", colMoney}, {"probability", colInt},
			{"close_date", colDate}, {"created_date", colDate}, {"owner_id", colKey},
			{"lead_source", colText}, {"product_interest", colText}, {"competitor", colText},
			{"loss_reason", colText},
		},
	},
	{
		Name: "activities", PK: "activity_id",
		Columns: []column{
			{"activity_id", colKey}, {"account_id", colKey}, {"opportunity_id", colKey},
			{"owner_id", colKey}, {"activity_type", colText}, {"activity_date", colDate},
			{"duration_minutes", colInt}, {"subject", colText}, {"outcome", colText},
			{"next_steps", colText},
		},
	},
	{
		Name: "shipments", PK: "shipment_id",
		Columns: []column{
			{"shipment_id", colKey}, {"shipment_date", colDate}, {"week_ending", colDate},
			{"distributor_id", colKey}, {"operator_id", colKey}, {"product_id", colKey},
			{"quantity", colInt}, {"gross_sales", colMoney}, {"discounts", colMoney},
			{"returns", colMoney}, {"net_sales", colMoney}, {"cost_of_goods", colMoney},
		},
	},
}

// TableByName looks up one table definition.
func TableByName(name string) (Table, bool) {
	for _, t := range Tables {
		if t.Name == name {
			return t, true
		}
	}
	return Table{}, false
}

// ColumnNames returns the ordered column names.
func (t Table) ColumnNames() []string {
	names := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		names[i] = c.name
	}
	return names
}

// BindRow converts one flat-file row into driver-typed arguments: ints and
// floats are parsed, dates stay as ISO strings, and empty optional values
// become NULL.
func (t Table) BindRow(row []string) ([]any, error) {
	if len(row) != len(t.Columns) {
		return nil, fmt.Errorf("table %s: expected %d columns, got %d", t.Name, len(t.Columns), len(row))
	}

	args := make([]any, len(row))
	for i, c := range t.Columns {
		raw := row[i]
		if raw == "" {
			if c.name == t.PK {
				return nil, fmt.Errorf("table %s: empty primary key %s", t.Name, t.PK)
			}
			args[i] = nil
			continue
		}

		switch c.kind {
		case colInt:
			v, err := strconv.Atoi(raw)
			if err != nil {
				return nil, fmt.Errorf("table %s: column %s: %w", t.Name, c.name, err)
			}
			args[i] = v
		case colMoney:
			v, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return nil, fmt.Errorf("table %s: column %s: %w", t.Name, c.name, err)
			}
			args[i] = v
		default:
			args[i] = raw
		}
	}
	return args, nil
}

func (s *Store) columnType(kind string) string {
	switch kind {
	case colKey:
		return "VARCHAR(64)"
	case colDate:
		return "DATE"
	case colInt:
		return "INTEGER"
	case colMoney:
		return "DOUBLE PRECISION"
	default:
		if s.Provider == "mysql" {
			// MySQL TEXT columns cannot carry defaults or index cleanly.
			return "VARCHAR(255)"
		}
		return "TEXT"
	}
}

func (s *Store) createTableSQL(t Table) string {
	defs := make([]string, 0, len(t.Columns))
	for _, c := range t.Columns {
		def := c.name + " " + s.columnType(c.kind)
		if c.name == t.PK {
			def += " PRIMARY KEY"
		}
		defs = append(defs, def)
	}
	return fmt.Sprintf("CREATE TABLE %s (%s)", t.Name, strings.Join(defs, ", "))
}

// CreateTables drops and recreates every analytics table. Loads are always
// full refreshes; there is no incremental path.
func (s *Store) CreateTables(ctx context.Context) error {
	if err := s.DropTables(ctx); err != nil {
		return err
	}
	for _, t := range Tables {
		if _, err := s.DB.ExecContext(ctx, s.createTableSQL(t)); err != nil {
			return fmt.Errorf("failed to create table %s: %w", t.Name, err)
		}
	}
	return nil
}

// DropTables removes every analytics table, children first.
func (s *Store) DropTables(ctx context.Context) error {
	for i := len(Tables) - 1; i >= 0; i-- {
		query := fmt.Sprintf("DROP TABLE IF EXISTS %s", Tables[i].Name)
		if _, err := s.DB.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("failed to drop table %s: %w", Tables[i].Name, err)
		}
	}
	return nil
}
