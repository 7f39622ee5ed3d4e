// Package assign derives the cross-entity associations that must stay
// consistent for a whole generation run. The operator→distributor mapping
// is computed once and held immutable so the shipment simulator never
// switches an operator's distributor set between years.
package assign

import (
	"fmt"

	"github.com/foodline-labs/foodline/internal/model"
	"github.com/foodline-labs/foodline/internal/sample"
)

// Assignments is the frozen relationship map for one run.
type Assignments struct {
	// DistributorsByOperator holds, per operator id, an ordered list of
	// 1–3 distributor ids: the primary first, then 0–2 secondaries.
	DistributorsByOperator map[string][]string
}

// Build computes the operator→distributor sets. Each operator gets its
// primary plus 0–2 additional distinct distributors sampled without
// replacement; when fewer distributors exist than requested the sampled
// count is silently reduced.
func Build(stream *sample.Stream, operators []model.Operator, distributors []model.Distributor) (*Assignments, error) {
	if len(operators) == 0 {
		return nil, fmt.Errorf("operator table is empty")
	}
	if len(distributors) == 0 {
		return nil, fmt.Errorf("distributor table is empty")
	}

	byOperator := make(map[string][]string, len(operators))
	for _, op := range operators {
		others := make([]string, 0, len(distributors)-1)
		for _, d := range distributors {
			if d.ID != op.PrimaryDistributorID {
				others = append(others, d.ID)
			}
		}

		numSecondary := stream.IntBetween(0, 2)
		secondary := sample.PickN(stream, others, numSecondary)

		byOperator[op.ID] = append([]string{op.PrimaryDistributorID}, secondary...)
	}

	return &Assignments{DistributorsByOperator: byOperator}, nil
}

// Index builds an id→record lookup so downstream stages resolve foreign
// keys without repeated linear scans.
func Index[T any](items []T, key func(T) string) map[string]T {
	idx := make(map[string]T, len(items))
	for _, item := range items {
		idx[key(item)] = item
	}
	return idx
}
