package model

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// Round2 rounds a currency value to 2 decimal places.
func Round2(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return f
}

// money renders a currency value with at most 2 decimals, no trailing zeros.
func money(v float64) string {
	return decimal.NewFromFloat(v).Round(2).String()
}

func day(t time.Time) string {
	return t.Format("2006-01-02")
}

func boolFlag(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

// Column headers, in the exact order rows are written.
var (
	TerritoryHeader = []string{"territory_id", "territory_name", "region", "state", "timezone"}

	DistributorHeader = []string{"distributor_id", "distributor_name", "distributor_type",
		"headquarters_state", "territory_id", "active_since"}

	ProductHeader = []string{"product_id", "product_name", "brand", "category", "subcategory",
		"unit_of_measure", "standard_price", "cost", "active"}

	SalesRepHeader = []string{"rep_id", "rep_name", "email", "hire_date", "territory_id",
		"manager_id", "quota_annual", "rep_tier"}

	OperatorHeader = []string{"operator_id", "operator_name", "operator_type", "cuisine_type",
		"city", "state", "county", "zip_code", "territory_id", "opening_date",
		"annual_revenue_tier", "primary_distributor_id"}

	AccountHeader = []string{"account_id", "operator_id", "account_name", "account_type",
		"industry", "owner_id", "created_date", "last_activity_date", "account_status"}

	OpportunityHeader = []string{"opportunity_id", "account_id", "opportunity_name", "stage",
		"amount", "probability", "close_date", "created_date", "owner_id", "lead_source",
		"product_interest", "competitor", "loss_reason"}

	ActivityHeader = []string{"activity_id", "account_id", "opportunity_id", "owner_id",
		"activity_type", "activity_date", "duration_minutes", "subject", "outcome", "next_steps"}

	ShipmentHeader = []string{"shipment_id", "shipment_date", "week_ending", "distributor_id",
		"operator_id", "product_id", "quantity", "gross_sales", "discounts", "returns",
		"net_sales", "cost_of_goods"}

	MonthlySummaryHeader = []string{"year", "month", "shipment_count", "total_quantity",
		"gross_sales", "net_sales", "returns", "active_operators", "active_distributors"}
)

func (t Territory) Row() []string {
	return []string{t.ID, t.Name, t.Region, t.State, t.Timezone}
}

func (d Distributor) Row() []string {
	return []string{d.ID, d.Name, d.Type, d.HQState, d.TerritoryID, day(d.ActiveSince)}
}

func (p Product) Row() []string {
	return []string{p.ID, p.Name, p.Brand, p.Category, p.Subcategory, p.UnitOfMeasure,
		money(p.StandardPrice), money(p.Cost), boolFlag(p.Active)}
}

func (r SalesRep) Row() []string {
	return []string{r.ID, r.Name, r.Email, day(r.HireDate), r.TerritoryID, r.ManagerID,
		money(r.QuotaAnnual), r.Tier}
}

func (o Operator) Row() []string {
	return []string{o.ID, o.Name, o.Type, o.CuisineType, o.City, o.State, o.County,
		o.ZipCode, o.TerritoryID, day(o.OpeningDate), o.RevenueTier, o.PrimaryDistributorID}
}

func (a Account) Row() []string {
	return []string{a.ID, a.OperatorID, a.Name, a.Type, a.Industry, a.OwnerID,
		day(a.CreatedDate), day(a.LastActivityDate), a.Status}
}

func (o Opportunity) Row() []string {
	return []string{o.ID, o.AccountID, o.Name, o.Stage, money(o.Amount),
		strconv.Itoa(o.Probability), day(o.CloseDate), day(o.CreatedDate), o.OwnerID,
		o.LeadSource, o.ProductInterest, o.Competitor, o.LossReason}
}

func (a Activity) Row() []string {
	return []string{a.ID, a.AccountID, a.OpportunityID, a.OwnerID, a.Type, day(a.Date),
		strconv.Itoa(a.DurationMinutes), a.Subject, a.Outcome, a.NextSteps}
}

func (s Shipment) Row() []string {
	return []string{s.ID, day(s.Date), day(s.WeekEnding), s.DistributorID, s.OperatorID,
		s.ProductID, strconv.Itoa(s.Quantity), money(s.GrossSales), money(s.Discounts),
		money(s.Returns), money(s.NetSales), money(s.CostOfGoods)}
}

func (m MonthlySummary) Row() []string {
	return []string{strconv.Itoa(m.Year), strconv.Itoa(m.Month), strconv.Itoa(m.ShipmentCount),
		strconv.Itoa(m.TotalQuantity), money(m.GrossSales), money(m.NetSales),
		money(m.Returns), strconv.Itoa(m.ActiveOperators), strconv.Itoa(m.ActiveDistributors)}
}
