package assign

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foodline-labs/foodline/internal/master"
	"github.com/foodline-labs/foodline/internal/model"
	"github.com/foodline-labs/foodline/internal/sample"
)

func TestBuild(t *testing.T) {
	stream := sample.NewStream(42)
	end := time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)
	data, err := master.New(stream, end).GenerateAll(100, 8)
	require.NoError(t, err)

	assignments, err := Build(stream, data.Operators, data.Distributors)
	require.NoError(t, err)

	require.Len(t, assignments.DistributorsByOperator, len(data.Operators))

	for _, op := range data.Operators {
		ids := assignments.DistributorsByOperator[op.ID]
		require.NotEmpty(t, ids)
		assert.LessOrEqual(t, len(ids), 3)
		assert.Equal(t, op.PrimaryDistributorID, ids[0], "primary comes first")

		seen := map[string]bool{}
		for _, id := range ids {
			assert.False(t, seen[id], "operator %s has duplicate distributor %s", op.ID, id)
			seen[id] = true
		}
	}
}

func TestBuildEmptyInputs(t *testing.T) {
	stream := sample.NewStream(1)

	_, err := Build(stream, nil, []model.Distributor{{ID: "DIST-001"}})
	assert.Error(t, err)

	_, err = Build(stream, []model.Operator{{ID: "OP-000001"}}, nil)
	assert.Error(t, err)
}

func TestIndex(t *testing.T) {
	products := []model.Product{
		{ID: "PROD-00001", Name: "Chicken Breast"},
		{ID: "PROD-00002", Name: "Salmon Fillet"},
	}

	idx := Index(products, func(p model.Product) string { return p.ID })
	require.Len(t, idx, 2)
	assert.Equal(t, "Salmon Fillet", idx["PROD-00002"].Name)
}
