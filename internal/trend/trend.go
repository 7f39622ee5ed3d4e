// Package trend models demand over the generation horizon as the product of
// monthly seasonality and compounded year-over-year growth.
package trend

import (
	"fmt"
	"time"
)

// seasonality holds the month-indexed demand multipliers observed in
// foodservice: post-holiday slowdown in January through the December peak.
var seasonality = map[time.Month]float64{
	time.January:   0.85,
	time.February:  0.90,
	time.March:     0.95,
	time.April:     1.00,
	time.May:       1.05,
	time.June:      1.10,
	time.July:      1.15,
	time.August:    1.10,
	time.September: 1.00,
	time.October:   1.00,
	time.November:  1.15,
	time.December:  1.20,
}

// yoyGrowth holds the year-over-year factors, including the 2020 demand
// shock and the partial 2021 recovery.
var yoyGrowth = map[int]float64{
	2015: 1.00,
	2016: 1.03,
	2017: 1.05,
	2018: 1.04,
	2019: 1.06,
	2020: 0.65,
	2021: 0.85,
	2022: 1.10,
	2023: 1.08,
	2024: 1.06,
	2025: 1.04,
}

// Model maps (year, month) to a positive demand multiplier. It is pure and
// stateless: identical input gives identical output regardless of call
// order, which keeps the simulation reproducible.
type Model struct {
	firstYear int
	lastYear  int
}

// NewModel builds a model covering [firstYear, lastYear]. Every year in the
// range must have a growth factor.
func NewModel(firstYear, lastYear int) (*Model, error) {
	if lastYear < firstYear {
		return nil, fmt.Errorf("invalid horizon: last year %d before first year %d", lastYear, firstYear)
	}
	for y := firstYear; y <= lastYear; y++ {
		if _, ok := yoyGrowth[y]; !ok {
			return nil, fmt.Errorf("no growth factor defined for year %d", y)
		}
	}
	return &Model{firstYear: firstYear, lastYear: lastYear}, nil
}

// Seasonality returns the multiplier for the given month.
func (m *Model) Seasonality(month time.Month) (float64, error) {
	f, ok := seasonality[month]
	if !ok {
		return 0, fmt.Errorf("invalid month: %d", month)
	}
	return f, nil
}

// CumulativeGrowth compounds the year-over-year factors from the year after
// the first horizon year through the given year, so a year's own factor
// applies to that year. The first horizon year is exactly 1.0.
func (m *Model) CumulativeGrowth(year int) (float64, error) {
	if year < m.firstYear || year > m.lastYear {
		return 0, fmt.Errorf("year %d outside horizon [%d, %d]", year, m.firstYear, m.lastYear)
	}
	growth := 1.0
	for y := m.firstYear + 1; y <= year; y++ {
		growth *= yoyGrowth[y]
	}
	return growth, nil
}

// Multiplier returns seasonality(month) × cumulative growth(year).
func (m *Model) Multiplier(year int, month time.Month) (float64, error) {
	s, err := m.Seasonality(month)
	if err != nil {
		return 0, err
	}
	g, err := m.CumulativeGrowth(year)
	if err != nil {
		return 0, err
	}
	return s * g, nil
}
