package domain

type AccuracyPeriod struct {
	Period     string  `json:"period" yaml:"period"`
	Accuracy   float64 `json:"accuracy" yaml:"accuracy"`
	Confidence float64 `json:"confidence" yaml:"confidence"`
}

type Anomaly struct {
	Date     string   `json:"date" yaml:"date"`
	Value    float64  `json:"value" yaml:"value"`
	Severity Severity `json:"severity" yaml:"severity"`
}

type ModelStatus string

const (
	ModelActive   ModelStatus = "active"
	ModelTraining ModelStatus = "training"
)

type ModelMetric struct {
	Name        string      `json:"name" yaml:"name"`
	Accuracy    float64     `json:"accuracy" yaml:"accuracy"`
	LastTrained string      `json:"last_trained" yaml:"last_trained"`
	Status      ModelStatus `json:"status" yaml:"status"`
}

type FeatureWeight struct {
	Feature    string  `json:"feature" yaml:"feature"`
	Importance float64 `json:"importance" yaml:"importance"`
}

// AnalyticsReport - данные страницы расширенной аналитики.
type AnalyticsReport struct {
	Industry          Industry         `json:"industry" yaml:"industry"`
	Forecast          []ForecastPoint  `json:"forecast" yaml:"forecast"`
	Accuracy          []AccuracyPeriod `json:"accuracy" yaml:"accuracy"`
	Anomalies         []Anomaly        `json:"anomalies" yaml:"anomalies"`
	Models            []ModelMetric    `json:"models" yaml:"models"`
	FeatureImportance []FeatureWeight  `json:"feature_importance" yaml:"feature_importance"`
}
