package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTerritories(t *testing.T) {
	territories, err := Territories()
	require.NoError(t, err)
	assert.Len(t, territories, 22)

	seen := map[string]bool{}
	for _, tr := range territories {
		assert.NotEmpty(t, tr.ID)
		assert.NotEmpty(t, tr.Region)
		assert.NotEmpty(t, tr.State)
		assert.False(t, seen[tr.ID], "duplicate territory id %s", tr.ID)
		seen[tr.ID] = true
	}
}

func TestDistributors(t *testing.T) {
	distributors, err := Distributors()
	require.NoError(t, err)
	assert.Len(t, distributors, 13)

	byType := map[string]int{}
	for _, d := range distributors {
		assert.NotEmpty(t, d.Name)
		assert.NotEmpty(t, d.HQState)
		byType[d.Type]++
	}
	assert.Equal(t, 4, byType["National"])
	assert.Equal(t, 6, byType["Regional"])
	assert.Equal(t, 3, byType["Specialty"])
}

func TestProductTaxonomy(t *testing.T) {
	items := ProductTaxonomy()
	require.NotEmpty(t, items)

	categories := map[string]bool{}
	for _, item := range items {
		assert.NotEmpty(t, item.Name)
		assert.NotEmpty(t, item.Subcategory)
		categories[item.Category] = true
	}
	assert.Len(t, categories, 6)

	// Flattening order is fixed so product ids stay stable across runs.
	again := ProductTaxonomy()
	assert.Equal(t, items, again)
}

func TestCategories(t *testing.T) {
	assert.Equal(t, []string{"Proteins", "Dairy", "Produce", "Beverages", "Dry Goods", "Frozen"}, Categories())
}
