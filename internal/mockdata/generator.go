// Package mockdata генерирует синтетические ряды и отраслевые наборы для дашборда.
//
// Прогнозов здесь нет: "predicted" - это фактическое значение,
// случайно сдвинутое в пределах ±5%.
package mockdata

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/xela07ax/predictaflow/internal/domain"
)

const (
	// DefaultVolatility - амплитуда шума относительно baseline.
	DefaultVolatility = 0.1
	// SeriesLength - длина основного ряда каждой отрасли.
	SeriesLength = 30

	dateLayout = "2006-01-02"
	growth     = 0.2 // рост тренда за весь ряд: baseline -> 1.2*baseline
)

// Generator держит источник случайности и часы.
// Не потокобезопасен: собираем данные один раз при старте.
type Generator struct {
	rng *rand.Rand
	now func() time.Time
}

type Option func(*Generator)

// WithClock подменяет текущее время (для тестов).
func WithClock(now func() time.Time) Option {
	return func(g *Generator) { g.now = now }
}

// NewGenerator создает генератор поверх переданного источника.
func NewGenerator(src rand.Source, opts ...Option) *Generator {
	g := &Generator{
		rng: rand.New(src),
		now: time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// NewSeededGenerator: seed == 0 означает случайный seed (поведение "без фиксированного зерна").
func NewSeededGenerator(seed uint64, opts ...Option) *Generator {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return NewGenerator(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15), opts...)
}

// GenerateDailySeries строит count дневных точек, от самой старой до вчерашней.
func (g *Generator) GenerateDailySeries(count int, baseline, volatility float64) []domain.TimeSeriesPoint {
	if count < 0 {
		count = 0
	}
	points := make([]domain.TimeSeriesPoint, 0, count)
	today := g.now()

	for i := 0; i < count; i++ {
		date := today.AddDate(0, 0, -(count - i))

		trend := baseline * (1 + (float64(i)/float64(count))*growth)
		noise := (g.rng.Float64() - 0.5) * volatility * baseline
		actual := math.Max(0, trend+noise)
		// Множитель считаем от неокругленного actual
		predicted := actual * (0.95 + g.rng.Float64()*0.1)

		points = append(points, domain.TimeSeriesPoint{
			Timestamp:  date.Format(dateLayout),
			Actual:     round2(actual),
			Predicted:  round2(predicted),
			Confidence: 0.85 + g.rng.Float64()*0.15,
		})
	}
	return points
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
