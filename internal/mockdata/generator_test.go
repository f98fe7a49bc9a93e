package mockdata

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)

func newTestGenerator(seed uint64) *Generator {
	return NewGenerator(rand.NewPCG(seed, seed+1), WithClock(func() time.Time { return fixedNow }))
}

func TestGenerateDailySeries_Length(t *testing.T) {
	g := newTestGenerator(1)
	for _, count := range []int{0, 1, 7, 30, 90} {
		assert.Len(t, g.GenerateDailySeries(count, 100, DefaultVolatility), count, "count=%d", count)
	}
}

func TestGenerateDailySeries_EmptyAndNegative(t *testing.T) {
	g := newTestGenerator(1)

	empty := g.GenerateDailySeries(0, 100, 0.1)
	require.NotNil(t, empty)
	assert.Empty(t, empty)

	assert.Empty(t, g.GenerateDailySeries(-5, 100, 0.1))
}

func TestGenerateDailySeries_Bounds(t *testing.T) {
	g := newTestGenerator(42)
	points := g.GenerateDailySeries(500, 25000, DefaultVolatility)

	for _, p := range points {
		assert.GreaterOrEqual(t, p.Actual, 0.0)
		assert.GreaterOrEqual(t, p.Confidence, 0.85)
		assert.Less(t, p.Confidence, 1.0)

		require.Greater(t, p.Actual, 0.0)
		ratio := p.Predicted / p.Actual
		assert.GreaterOrEqual(t, ratio, 0.95-1e-4, "point %s", p.Timestamp)
		assert.LessOrEqual(t, ratio, 1.05+1e-4, "point %s", p.Timestamp)
	}
}

func TestGenerateDailySeries_FloorsAtZero(t *testing.T) {
	g := newTestGenerator(7)
	// Шум в разы больше тренда: часть значений уходит в минус и должна обрезаться
	points := g.GenerateDailySeries(200, 10, 5)

	zeros := 0
	for _, p := range points {
		assert.GreaterOrEqual(t, p.Actual, 0.0)
		assert.GreaterOrEqual(t, p.Predicted, 0.0)
		if p.Actual == 0 {
			zeros++
			assert.Zero(t, p.Predicted)
		}
	}
	assert.Positive(t, zeros)
}

func TestGenerateDailySeries_Dates(t *testing.T) {
	g := newTestGenerator(3)
	points := g.GenerateDailySeries(30, 450, DefaultVolatility)
	require.Len(t, points, 30)

	prev, err := time.Parse(dateLayout, points[0].Timestamp)
	require.NoError(t, err)
	assert.Equal(t, "2026-02-08", points[0].Timestamp)

	for _, p := range points[1:] {
		cur, err := time.Parse(dateLayout, p.Timestamp)
		require.NoError(t, err)
		assert.Equal(t, prev.AddDate(0, 0, 1), cur)
		prev = cur
	}
	assert.Equal(t, fixedNow.AddDate(0, 0, -1).Format(dateLayout), points[29].Timestamp)
}

func TestGenerateDailySeries_ZeroVolatilityFollowsTrend(t *testing.T) {
	g := newTestGenerator(9)

	single := g.GenerateDailySeries(1, 100, 0)
	require.Len(t, single, 1)
	assert.Equal(t, 100.00, single[0].Actual)

	points := g.GenerateDailySeries(10, 100, 0)
	for i, p := range points {
		want := round2(100 * (1 + float64(i)/10*0.2))
		assert.InDelta(t, want, p.Actual, 1e-9, "i=%d", i)
	}
	assert.InDelta(t, 118.0, points[9].Actual, 1e-9)
}

func TestGenerateDailySeries_SameSeedSameSeries(t *testing.T) {
	a := newTestGenerator(11).GenerateDailySeries(30, 25000, DefaultVolatility)
	b := newTestGenerator(11).GenerateDailySeries(30, 25000, DefaultVolatility)
	c := newTestGenerator(12).GenerateDailySeries(30, 25000, DefaultVolatility)

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}

func TestNewSeededGenerator_RandomWhenZero(t *testing.T) {
	a := NewSeededGenerator(0).GenerateDailySeries(30, 25000, DefaultVolatility)
	b := NewSeededGenerator(0).GenerateDailySeries(30, 25000, DefaultVolatility)
	assert.NotEqual(t, a, b)
}
