package domain

// TimeSeriesPoint - дневная точка синтетического ряда.
type TimeSeriesPoint struct {
	Timestamp  string  `json:"timestamp" yaml:"timestamp"` // YYYY-MM-DD
	Actual     float64 `json:"actual" yaml:"actual"`
	Predicted  float64 `json:"predicted" yaml:"predicted"`
	Confidence float64 `json:"confidence" yaml:"confidence"` // [0.85, 1.0)
}

// ForecastPoint - точка прогноза. Для будущих дат Actual == nil.
type ForecastPoint struct {
	Timestamp  string   `json:"timestamp" yaml:"timestamp"`
	Actual     *float64 `json:"actual" yaml:"actual"`
	Predicted  float64  `json:"predicted" yaml:"predicted"`
	Confidence float64  `json:"confidence" yaml:"confidence"`
}
