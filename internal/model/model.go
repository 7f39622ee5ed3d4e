// Package model defines the generated entity records and their flat-file
// encoding. All identifiers are stable human-readable composite keys
// (DIST-003, OPP-0004521) and every record is write-once: generated in a
// single pass and never mutated afterward.
package model

import "time"

// Distributor types.
const (
	DistNational  = "National"
	DistRegional  = "Regional"
	DistSpecialty = "Specialty"
)

// Sales rep tiers.
const (
	TierDirector = "Director"
	TierSenior   = "Senior"
	TierJunior   = "Junior"
)

// Operator revenue tiers.
const (
	RevenueSmall      = "Small"
	RevenueMedium     = "Medium"
	RevenueLarge      = "Large"
	RevenueEnterprise = "Enterprise"
)

// Account types and statuses.
const (
	AccountCustomer = "Customer"
	AccountProspect = "Prospect"
	AccountFormer   = "Former Customer"

	StatusActive  = "Active"
	StatusChurned = "Churned"
)

// Territory is an immutable geographic sales coverage area.
type Territory struct {
	ID       string
	Name     string
	Region   string
	State    string
	Timezone string
}

// Distributor is a foodservice wholesaler. Immutable after generation.
type Distributor struct {
	ID          string
	Name        string
	Type        string
	HQState     string
	TerritoryID string
	ActiveSince time.Time
}

// Product is one catalog item. Cost is always below the standard price; the
// ratio is sampled once at generation time.
type Product struct {
	ID            string
	Name          string
	Brand         string
	Category      string
	Subcategory   string
	UnitOfMeasure string
	StandardPrice float64
	Cost          float64
	Active        bool
}

// SalesRep is a seller. Directors have no manager; individual contributors
// report to the Director of their own region.
type SalesRep struct {
	ID          string
	Name        string
	Email       string
	HireDate    time.Time
	TerritoryID string
	ManagerID   string
	QuotaAnnual float64
	Tier        string
}

// Operator is a foodservice establishment that buys from distributors.
type Operator struct {
	ID                   string
	Name                 string
	Type                 string
	CuisineType          string
	City                 string
	State                string
	County               string
	ZipCode              string
	TerritoryID          string
	OpeningDate          time.Time
	RevenueTier          string
	PrimaryDistributorID string
}

// Account is the CRM record for an operator. Roughly 80% of operators have
// one; the rest are deliberately absent from CRM.
type Account struct {
	ID               string
	OperatorID       string
	Name             string
	Type             string
	Industry         string
	OwnerID          string
	CreatedDate      time.Time
	LastActivityDate time.Time
	Status           string
}

// Opportunity is one deal in the pipeline.
type Opportunity struct {
	ID              string
	AccountID       string
	Name            string
	Stage           string
	Amount          float64
	Probability     int
	CloseDate       time.Time
	CreatedDate     time.Time
	OwnerID         string
	LeadSource      string
	ProductInterest string
	Competitor      string
	LossReason      string
}

// Activity is one discrete rep interaction. OpportunityID is empty for
// account-level relationship-maintenance contacts.
type Activity struct {
	ID              string
	AccountID       string
	OpportunityID   string
	OwnerID         string
	Type            string
	Date            time.Time
	DurationMinutes int
	Subject         string
	Outcome         string
	NextSteps       string
}

// Shipment is one priced line item shipped to an operator in a given week.
// WeekEnding is always a Saturday.
type Shipment struct {
	ID            string
	Date          time.Time
	WeekEnding    time.Time
	DistributorID string
	OperatorID    string
	ProductID     string
	Quantity      int
	GrossSales    float64
	Discounts     float64
	Returns       float64
	NetSales      float64
	CostOfGoods   float64
}

// MonthlySummary aggregates shipments for one (year, month) bucket.
type MonthlySummary struct {
	Year               int
	Month              int
	ShipmentCount      int
	TotalQuantity      int
	GrossSales         float64
	NetSales           float64
	Returns            float64
	ActiveOperators    int
	ActiveDistributors int
}
