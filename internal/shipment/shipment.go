// Package shipment simulates weekly distributor shipments over the
// generation horizon. It walks every week-ending Saturday, samples the
// operators active that week, and emits priced, discounted, returned line
// items scaled by the temporal trend model.
package shipment

import (
	"fmt"
	"sort"
	"time"

	"github.com/foodline-labs/foodline/internal/assign"
	"github.com/foodline-labs/foodline/internal/model"
	"github.com/foodline-labs/foodline/internal/sample"
	"github.com/foodline-labs/foodline/internal/trend"
)

// EmitFunc receives each generated shipment in order. Implementations
// stream rows to the year-partitioned files.
type EmitFunc func(model.Shipment) error

// Result summarizes one simulation pass.
type Result struct {
	Weeks            int
	TotalShipments   int
	TotalQuantity    int64
	TotalNetSales    float64
	MonthlySummaries []model.MonthlySummary
}

// Simulator generates shipments for a fixed master-data snapshot.
type Simulator struct {
	stream      *sample.Stream
	trend       *trend.Model
	operators   []model.Operator
	products    []model.Product
	assignments *assign.Assignments
	start, end  time.Time
}

func New(stream *sample.Stream, trendModel *trend.Model, operators []model.Operator,
	products []model.Product, assignments *assign.Assignments, start, end time.Time) (*Simulator, error) {

	if len(operators) == 0 {
		return nil, fmt.Errorf("operator table is empty")
	}
	if len(products) == 0 {
		return nil, fmt.Errorf("product table is empty")
	}
	if end.Before(start) {
		return nil, fmt.Errorf("invalid horizon: end %s before start %s",
			end.Format("2006-01-02"), start.Format("2006-01-02"))
	}

	return &Simulator{
		stream:      stream,
		trend:       trendModel,
		operators:   operators,
		products:    products,
		assignments: assignments,
		start:       sample.Midnight(start),
		end:         sample.Midnight(end),
	}, nil
}

// WeekEndings returns every Saturday in [start, end].
func WeekEndings(start, end time.Time) []time.Time {
	var weeks []time.Time
	current := sample.Midnight(start)
	for current.Weekday() != time.Saturday {
		current = current.AddDate(0, 0, 1)
	}
	for !current.After(sample.Midnight(end)) {
		weeks = append(weeks, current)
		current = current.AddDate(0, 0, 7)
	}
	return weeks
}

type monthKey struct {
	year  int
	month int
}

type monthAccumulator struct {
	summary      model.MonthlySummary
	operators    map[string]bool
	distributors map[string]bool
}

// Run walks the weekly calendar and emits every shipment. Rows are emitted
// in generation order; nothing is retained beyond running aggregates.
func (s *Simulator) Run(emit EmitFunc) (*Result, error) {
	weeks := WeekEndings(s.start, s.end)
	months := make(map[monthKey]*monthAccumulator)

	result := &Result{Weeks: len(weeks)}
	shipmentSeq := 1

	for _, weekEnding := range weeks {
		multiplier, err := s.trend.Multiplier(weekEnding.Year(), weekEnding.Month())
		if err != nil {
			return nil, err
		}

		activeFrac := s.stream.FloatBetween(0.30, 0.45)
		active := sample.Subset(s.stream, s.operators, activeFrac)

		key := monthKey{year: weekEnding.Year(), month: int(weekEnding.Month())}
		acc := months[key]
		if acc == nil {
			acc = &monthAccumulator{
				summary:      model.MonthlySummary{Year: key.year, Month: key.month},
				operators:    map[string]bool{},
				distributors: map[string]bool{},
			}
			months[key] = acc
		}

		for _, op := range active {
			distributorID := s.pickDistributor(op)

			numProducts := s.stream.IntBetween(3, 15)
			ordered := sample.PickN(s.stream, s.products, numProducts)

			for _, product := range ordered {
				shipment := s.buildShipment(shipmentSeq, weekEnding, op, distributorID, product, multiplier)
				shipmentSeq++

				if err := emit(shipment); err != nil {
					return nil, err
				}

				result.TotalShipments++
				result.TotalQuantity += int64(shipment.Quantity)
				result.TotalNetSales += shipment.NetSales

				acc.summary.ShipmentCount++
				acc.summary.TotalQuantity += shipment.Quantity
				acc.summary.GrossSales += shipment.GrossSales
				acc.summary.NetSales += shipment.NetSales
				acc.summary.Returns += shipment.Returns
				acc.operators[op.ID] = true
				acc.distributors[distributorID] = true
			}
		}
	}

	result.MonthlySummaries = collectSummaries(months)
	return result, nil
}

// pickDistributor draws from the operator's frozen distributor set: 80% on
// the primary, the remaining 20% split evenly among secondaries.
func (s *Simulator) pickDistributor(op model.Operator) string {
	ids := s.assignments.DistributorsByOperator[op.ID]
	if len(ids) == 0 {
		return op.PrimaryDistributorID
	}
	if len(ids) == 1 {
		return ids[0]
	}

	weights := make([]float64, len(ids))
	weights[0] = 0.8
	secondary := 0.2 / float64(len(ids)-1)
	for i := 1; i < len(ids); i++ {
		weights[i] = secondary
	}
	return sample.ChooseFrom(s.stream, ids, weights)
}

// baseQuantity returns the size-tiered order quantity before trend scaling.
func (s *Simulator) baseQuantity(tier string) int {
	switch tier {
	case model.RevenueEnterprise:
		return s.stream.IntBetween(20, 200)
	case model.RevenueLarge:
		return s.stream.IntBetween(10, 100)
	case model.RevenueMedium:
		return s.stream.IntBetween(5, 50)
	default:
		return s.stream.IntBetween(2, 20)
	}
}

func (s *Simulator) buildShipment(seq int, weekEnding time.Time, op model.Operator,
	distributorID string, product model.Product, multiplier float64) model.Shipment {

	baseQty := s.baseQuantity(op.RevenueTier)
	quantity := int(float64(baseQty) * multiplier)
	if quantity < 1 {
		quantity = 1
	}

	unitPrice := product.StandardPrice * s.stream.FloatBetween(0.9, 1.1)
	grossSales := model.Round2(float64(quantity) * unitPrice)

	discountRate := 0.0
	switch {
	case quantity >= 50:
		discountRate = s.stream.FloatBetween(0.05, 0.15)
	case quantity >= 20:
		discountRate = s.stream.FloatBetween(0.02, 0.08)
	}
	discounts := model.Round2(grossSales * discountRate)

	returns := 0.0
	if s.stream.Chance(0.10) {
		returns = model.Round2(grossSales * s.stream.FloatBetween(0, 0.03))
	}

	// The first week ending can fall within six days of the horizon start;
	// ship dates never precede it.
	date := weekEnding.AddDate(0, 0, -s.stream.IntBetween(1, 6))
	if date.Before(s.start) {
		date = s.start
	}

	return model.Shipment{
		ID:            fmt.Sprintf("SHIP-%010d", seq),
		Date:          date,
		WeekEnding:    weekEnding,
		DistributorID: distributorID,
		OperatorID:    op.ID,
		ProductID:     product.ID,
		Quantity:      quantity,
		GrossSales:    grossSales,
		Discounts:     discounts,
		Returns:       returns,
		NetSales:      model.Round2(grossSales - discounts - returns),
		CostOfGoods:   model.Round2(float64(quantity) * product.Cost),
	}
}

func collectSummaries(months map[monthKey]*monthAccumulator) []model.MonthlySummary {
	keys := make([]monthKey, 0, len(months))
	for k := range months {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].year != keys[j].year {
			return keys[i].year < keys[j].year
		}
		return keys[i].month < keys[j].month
	})

	summaries := make([]model.MonthlySummary, 0, len(keys))
	for _, k := range keys {
		acc := months[k]
		acc.summary.ActiveOperators = len(acc.operators)
		acc.summary.ActiveDistributors = len(acc.distributors)
		acc.summary.GrossSales = model.Round2(acc.summary.GrossSales)
		acc.summary.NetSales = model.Round2(acc.summary.NetSales)
		acc.summary.Returns = model.Round2(acc.summary.Returns)
		summaries = append(summaries, acc.summary)
	}
	return summaries
}
