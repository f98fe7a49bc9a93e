package mockdata

import (
	"math"
	"time"

	"github.com/xela07ax/predictaflow/internal/domain"
)

const (
	forecastNoise      = 0.05 // шум относительно последнего факта
	forecastConfStart  = 0.88
	forecastConfDecay  = 0.012
	forecastConfJitter = 0.02
	forecastConfFloor  = 0.5
)

// Forecast продолжает историю на horizon дней вперед.
// Последние window точек истории идут с фактом, будущие - с Actual == nil.
func (g *Generator) Forecast(history []domain.TimeSeriesPoint, window, horizon int) []domain.ForecastPoint {
	if len(history) == 0 {
		return []domain.ForecastPoint{}
	}
	if window <= 0 || window > len(history) {
		window = len(history)
	}
	if horizon < 0 {
		horizon = 0
	}
	tail := history[len(history)-window:]

	out := make([]domain.ForecastPoint, 0, window+horizon)
	for _, p := range tail {
		actual := p.Actual
		out = append(out, domain.ForecastPoint{
			Timestamp:  p.Timestamp,
			Actual:     &actual,
			Predicted:  p.Predicted,
			Confidence: p.Confidence,
		})
	}

	first, last := tail[0], tail[len(tail)-1]
	var drift float64
	if len(tail) > 1 {
		drift = (last.Actual - first.Actual) / float64(len(tail)-1)
	}

	lastDate, err := time.Parse(dateLayout, last.Timestamp)
	if err != nil {
		// Битая дата в истории: считаем от "вчера" по часам генератора
		lastDate = g.now().AddDate(0, 0, -1)
	}

	for k := 1; k <= horizon; k++ {
		noise := (g.rng.Float64() - 0.5) * forecastNoise * last.Actual
		predicted := math.Max(0, last.Actual+drift*float64(k)+noise)
		conf := forecastConfStart - forecastConfDecay*float64(k) - g.rng.Float64()*forecastConfJitter

		out = append(out, domain.ForecastPoint{
			Timestamp:  lastDate.AddDate(0, 0, k).Format(dateLayout),
			Predicted:  round2(predicted),
			Confidence: math.Max(forecastConfFloor, conf),
		})
	}
	return out
}
