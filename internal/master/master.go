// Package master builds the immutable reference tables every downstream
// stage samples from: territories, distributors, products, sales reps and
// operators. Curated catalogs come from the catalog package; synthetic
// entities are drawn from the run's single seeded stream, in a fixed order,
// so reruns with the same seed are byte-identical.
package master

import (
	"fmt"
	"strings"
	"time"

	"github.com/foodline-labs/foodline/internal/catalog"
	"github.com/foodline-labs/foodline/internal/model"
	"github.com/foodline-labs/foodline/internal/sample"
)

// Data is the complete master reference graph for one run.
type Data struct {
	Territories  []model.Territory
	Distributors []model.Distributor
	Products     []model.Product
	SalesReps    []model.SalesRep
	Operators    []model.Operator
}

// Generator produces master data from one seeded stream.
type Generator struct {
	stream     *sample.Stream
	horizonEnd time.Time
}

func New(stream *sample.Stream, horizonEnd time.Time) *Generator {
	return &Generator{stream: stream, horizonEnd: horizonEnd}
}

// GenerateAll builds every master table in dependency order.
func (g *Generator) GenerateAll(operatorCount, repCount int) (*Data, error) {
	territories, err := g.Territories()
	if err != nil {
		return nil, err
	}

	distributors, err := g.Distributors(territories)
	if err != nil {
		return nil, err
	}

	data := &Data{
		Territories:  territories,
		Distributors: distributors,
		Products:     g.Products(),
		SalesReps:    g.SalesReps(territories, repCount),
	}

	operators, err := g.Operators(territories, distributors, operatorCount)
	if err != nil {
		return nil, err
	}
	data.Operators = operators

	return data, nil
}

// Territories loads the fixed curated catalog.
func (g *Generator) Territories() ([]model.Territory, error) {
	seeds, err := catalog.Territories()
	if err != nil {
		return nil, err
	}

	territories := make([]model.Territory, 0, len(seeds))
	for _, seed := range seeds {
		territories = append(territories, model.Territory{
			ID:       seed.ID,
			Name:     seed.Name,
			Region:   seed.Region,
			State:    seed.State,
			Timezone: seed.Timezone,
		})
	}
	return territories, nil
}

// Distributors builds the curated distributor catalog. Each distributor is
// assigned the first territory matching its headquarters state, falling
// back to a uniformly random territory if none matches.
func (g *Generator) Distributors(territories []model.Territory) ([]model.Distributor, error) {
	seeds, err := catalog.Distributors()
	if err != nil {
		return nil, err
	}

	distributors := make([]model.Distributor, 0, len(seeds))
	for i, seed := range seeds {
		territoryID := ""
		for _, t := range territories {
			if t.State == seed.HQState {
				territoryID = t.ID
				break
			}
		}
		if territoryID == "" {
			territoryID = sample.Pick(g.stream, territories).ID
		}

		distributors = append(distributors, model.Distributor{
			ID:          fmt.Sprintf("DIST-%03d", i+1),
			Name:        seed.Name,
			Type:        seed.Type,
			HQState:     seed.HQState,
			TerritoryID: territoryID,
			ActiveSince: g.stream.DateBetween(g.horizonEnd.AddDate(-20, 0, 0), g.horizonEnd.AddDate(-5, 0, 0)),
		})
	}
	return distributors, nil
}

// Products walks the fixed taxonomy and prices each leaf item. Cost is a
// sampled fraction of price, so cost < standard price holds by construction.
func (g *Generator) Products() []model.Product {
	items := catalog.ProductTaxonomy()

	products := make([]model.Product, 0, len(items))
	for i, item := range items {
		price := model.Round2(g.stream.FloatBetween(5, 150))
		cost := model.Round2(price * g.stream.FloatBetween(0.55, 0.75))

		products = append(products, model.Product{
			ID:            fmt.Sprintf("PROD-%05d", i+1),
			Name:          item.Name,
			Brand:         sample.Pick(g.stream, catalog.Brands),
			Category:      item.Category,
			Subcategory:   item.Subcategory,
			UnitOfMeasure: sample.Pick(g.stream, catalog.UnitsOfMeasure),
			StandardPrice: price,
			Cost:          cost,
			Active:        true,
		})
	}
	return products
}

var repTierPool = []string{model.TierJunior, model.TierSenior, model.TierSenior, model.TierSenior}

// SalesReps creates exactly one Director per distinct region, then n
// individual contributors assigned to a random territory and managed by
// that territory's regional Director.
func (g *Generator) SalesReps(territories []model.Territory, n int) []model.SalesRep {
	var regions []string
	seen := map[string]bool{}
	for _, t := range territories {
		if !seen[t.Region] {
			seen[t.Region] = true
			regions = append(regions, t.Region)
		}
	}

	directorByRegion := make(map[string]string, len(regions))
	reps := make([]model.SalesRep, 0, len(regions)+n)

	for i, region := range regions {
		var territoryID string
		for _, t := range territories {
			if t.Region == region {
				territoryID = t.ID
				break
			}
		}

		id := fmt.Sprintf("REP-MGR-%03d", i+1)
		directorByRegion[region] = id
		reps = append(reps, model.SalesRep{
			ID:          id,
			Name:        g.personName(),
			Email:       g.email(i + 1),
			HireDate:    g.stream.DateBetween(g.horizonEnd.AddDate(-15, 0, 0), g.horizonEnd.AddDate(-5, 0, 0)),
			TerritoryID: territoryID,
			QuotaAnnual: model.Round2(g.stream.FloatBetween(2_000_000, 5_000_000)),
			Tier:        model.TierDirector,
		})
	}

	for i := 0; i < n; i++ {
		territory := sample.Pick(g.stream, territories)
		reps = append(reps, model.SalesRep{
			ID:          fmt.Sprintf("REP-%03d", i+1),
			Name:        g.personName(),
			Email:       g.email(len(regions) + i + 1),
			HireDate:    g.stream.DateBetween(g.horizonEnd.AddDate(-10, 0, 0), g.horizonEnd.AddDate(0, -6, 0)),
			TerritoryID: territory.ID,
			ManagerID:   directorByRegion[territory.Region],
			QuotaAnnual: model.Round2(g.stream.FloatBetween(500_000, 1_500_000)),
			Tier:        sample.Pick(g.stream, repTierPool),
		})
	}

	return reps
}

var operatorTypes = sample.NewWeighted(
	sample.Option[string]{Value: "Restaurant", Weight: 4},
	sample.Option[string]{Value: "Hotel", Weight: 1},
	sample.Option[string]{Value: "Hospital", Weight: 1},
	sample.Option[string]{Value: "School", Weight: 1},
	sample.Option[string]{Value: "Corporate Cafeteria", Weight: 1},
	sample.Option[string]{Value: "Sports Venue", Weight: 1},
	sample.Option[string]{Value: "Catering", Weight: 1},
	sample.Option[string]{Value: "Country Club", Weight: 1},
)

var revenueTiers = sample.NewWeighted(
	sample.Option[string]{Value: model.RevenueSmall, Weight: 0.50},
	sample.Option[string]{Value: model.RevenueMedium, Weight: 0.30},
	sample.Option[string]{Value: model.RevenueLarge, Weight: 0.15},
	sample.Option[string]{Value: model.RevenueEnterprise, Weight: 0.05},
)

// Operators creates n foodservice establishments. Primary distributors are
// restricted to National-type distributors.
func (g *Generator) Operators(territories []model.Territory, distributors []model.Distributor, n int) ([]model.Operator, error) {
	var nationals []model.Distributor
	for _, d := range distributors {
		if d.Type == model.DistNational {
			nationals = append(nationals, d)
		}
	}
	if len(nationals) == 0 {
		return nil, fmt.Errorf("no National distributors available for primary assignment")
	}

	operators := make([]model.Operator, 0, n)
	for i := 0; i < n; i++ {
		territory := sample.Pick(g.stream, territories)

		opType := operatorTypes.Choose(g.stream)
		cuisine := ""
		var name string
		if opType == "Restaurant" {
			name, cuisine = g.restaurantName()
		} else {
			name = fmt.Sprintf("%s %s %s",
				sample.Pick(g.stream, catalog.CompanyWords),
				sample.Pick(g.stream, catalog.CompanySuffixes),
				opType)
		}

		cities, ok := catalog.CitiesByState[territory.State]
		if !ok {
			cities = []string{"Metro Area"}
		}

		operators = append(operators, model.Operator{
			ID:                   fmt.Sprintf("OP-%06d", i+1),
			Name:                 name,
			Type:                 opType,
			CuisineType:          cuisine,
			City:                 sample.Pick(g.stream, cities),
			State:                territory.State,
			County:               sample.Pick(g.stream, catalog.CompanyWords) + " County",
			ZipCode:              fmt.Sprintf("%05d", g.stream.Intn(100000)),
			TerritoryID:          territory.ID,
			OpeningDate:          g.stream.DateBetween(g.horizonEnd.AddDate(-25, 0, 0), g.horizonEnd.AddDate(-1, 0, 0)),
			RevenueTier:          revenueTiers.Choose(g.stream),
			PrimaryDistributorID: sample.Pick(g.stream, nationals).ID,
		})
	}
	return operators, nil
}

func (g *Generator) personName() string {
	return sample.Pick(g.stream, catalog.FirstNames) + " " + sample.Pick(g.stream, catalog.LastNames)
}

func (g *Generator) email(seq int) string {
	first := strings.ToLower(sample.Pick(g.stream, catalog.FirstNames))
	last := strings.ToLower(sample.Pick(g.stream, catalog.LastNames))
	return fmt.Sprintf("%s.%s%d@%s", first, last, seq, sample.Pick(g.stream, catalog.EmailDomains))
}

func (g *Generator) restaurantName() (name, cuisine string) {
	cuisine = sample.Pick(g.stream, catalog.CuisineTypes)

	switch g.stream.Intn(6) {
	case 0:
		name = sample.Pick(g.stream, catalog.LastNames) + "'s " + cuisine
	case 1:
		name = "The " + sample.Pick(g.stream, catalog.CompanyWords) + " Kitchen"
	case 2:
		name = cuisine + " House"
	case 3:
		name = sample.Pick(g.stream, catalog.LastNames) + " & Co."
	case 4:
		name = "Cafe " + sample.Pick(g.stream, catalog.CompanyWords)
	default:
		name = sample.Pick(g.stream, catalog.OperatorNameStyles) + " " + sample.Pick(g.stream, catalog.OperatorNameVenues)
	}
	return name, cuisine
}
