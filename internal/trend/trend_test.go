package trend

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewModel(t *testing.T) {
	t.Run("accepts the full horizon", func(t *testing.T) {
		_, err := NewModel(2015, 2025)
		assert.NoError(t, err)
	})

	t.Run("rejects years without growth factors", func(t *testing.T) {
		_, err := NewModel(2015, 2030)
		assert.Error(t, err)
	})

	t.Run("rejects inverted range", func(t *testing.T) {
		_, err := NewModel(2025, 2015)
		assert.Error(t, err)
	})
}

func TestSeasonality(t *testing.T) {
	m, err := NewModel(2015, 2025)
	require.NoError(t, err)

	t.Run("december beats january", func(t *testing.T) {
		dec, err := m.Seasonality(time.December)
		require.NoError(t, err)
		jan, err := m.Seasonality(time.January)
		require.NoError(t, err)
		assert.Greater(t, dec, jan)
	})

	t.Run("rejects invalid months", func(t *testing.T) {
		_, err := m.Seasonality(time.Month(0))
		assert.Error(t, err)
		_, err = m.Seasonality(time.Month(13))
		assert.Error(t, err)
	})
}

func TestCumulativeGrowth(t *testing.T) {
	m, err := NewModel(2015, 2025)
	require.NoError(t, err)

	t.Run("first year is exactly one", func(t *testing.T) {
		g, err := m.CumulativeGrowth(2015)
		require.NoError(t, err)
		assert.Equal(t, 1.0, g)
	})

	t.Run("contraction hits 2020", func(t *testing.T) {
		g2019, err := m.CumulativeGrowth(2019)
		require.NoError(t, err)
		g2020, err := m.CumulativeGrowth(2020)
		require.NoError(t, err)
		assert.Less(t, g2020, g2019)
	})

	t.Run("recovery resumes by 2022", func(t *testing.T) {
		g2021, err := m.CumulativeGrowth(2021)
		require.NoError(t, err)
		g2022, err := m.CumulativeGrowth(2022)
		require.NoError(t, err)
		assert.Greater(t, g2022, g2021)
	})

	t.Run("rejects years outside the horizon", func(t *testing.T) {
		_, err := m.CumulativeGrowth(2014)
		assert.Error(t, err)
		_, err = m.CumulativeGrowth(2026)
		assert.Error(t, err)
	})
}

func TestMultiplier(t *testing.T) {
	m, err := NewModel(2015, 2025)
	require.NoError(t, err)

	t.Run("july 2020 below july 2019", func(t *testing.T) {
		before, err := m.Multiplier(2019, time.July)
		require.NoError(t, err)
		during, err := m.Multiplier(2020, time.July)
		require.NoError(t, err)
		assert.Less(t, during, before)
	})

	t.Run("is seasonality times growth", func(t *testing.T) {
		s, err := m.Seasonality(time.March)
		require.NoError(t, err)
		g, err := m.CumulativeGrowth(2018)
		require.NoError(t, err)
		got, err := m.Multiplier(2018, time.March)
		require.NoError(t, err)
		assert.InDelta(t, s*g, got, 1e-12)
	})

	t.Run("always positive across the horizon", func(t *testing.T) {
		for year := 2015; year <= 2025; year++ {
			for month := time.January; month <= time.December; month++ {
				mult, err := m.Multiplier(year, month)
				require.NoError(t, err)
				assert.Greater(t, mult, 0.0)
			}
		}
	})
}
