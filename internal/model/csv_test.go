package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRound2(t *testing.T) {
	assert.Equal(t, 12.35, Round2(12.345))
	assert.Equal(t, 12.34, Round2(12.344))
	assert.Equal(t, 0.0, Round2(0))
	assert.Equal(t, -3.15, Round2(-3.149))
}

func TestMoney(t *testing.T) {
	assert.Equal(t, "12.5", money(12.50))
	assert.Equal(t, "100", money(100.004))
	assert.Equal(t, "0.99", money(0.99))
}

func TestRowArityMatchesHeaders(t *testing.T) {
	now := time.Date(2020, 5, 1, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name   string
		header []string
		row    []string
	}{
		{"territory", TerritoryHeader, Territory{}.Row()},
		{"distributor", DistributorHeader, Distributor{ActiveSince: now}.Row()},
		{"product", ProductHeader, Product{}.Row()},
		{"sales_rep", SalesRepHeader, SalesRep{HireDate: now}.Row()},
		{"operator", OperatorHeader, Operator{OpeningDate: now}.Row()},
		{"account", AccountHeader, Account{CreatedDate: now, LastActivityDate: now}.Row()},
		{"opportunity", OpportunityHeader, Opportunity{CreatedDate: now, CloseDate: now}.Row()},
		{"activity", ActivityHeader, Activity{Date: now}.Row()},
		{"shipment", ShipmentHeader, Shipment{Date: now, WeekEnding: now}.Row()},
		{"monthly_summary", MonthlySummaryHeader, MonthlySummary{}.Row()},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Len(t, tc.row, len(tc.header))
		})
	}
}

func TestShipmentRow(t *testing.T) {
	s := Shipment{
		ID:            "SHIP-0000000001",
		Date:          time.Date(2019, 3, 14, 0, 0, 0, 0, time.UTC),
		WeekEnding:    time.Date(2019, 3, 16, 0, 0, 0, 0, time.UTC),
		DistributorID: "DIST-001",
		OperatorID:    "OP-000001",
		ProductID:     "PROD-00001",
		Quantity:      12,
		GrossSales:    294.0,
		Discounts:     14.70,
		Returns:       0,
		NetSales:      279.30,
		CostOfGoods:   190.80,
	}

	assert.Equal(t, []string{
		"SHIP-0000000001", "2019-03-14", "2019-03-16", "DIST-001", "OP-000001",
		"PROD-00001", "12", "294", "14.7", "0", "279.3", "190.8",
	}, s.Row())
}
