package mockdata

import "github.com/xela07ax/predictaflow/internal/domain"

// Статические таблицы страницы аналитики. Одинаковы для всех отраслей.

func PredictionAccuracy() []domain.AccuracyPeriod {
	return []domain.AccuracyPeriod{
		{Period: "Week 1", Accuracy: 87.2, Confidence: 0.92},
		{Period: "Week 2", Accuracy: 89.1, Confidence: 0.89},
		{Period: "Week 3", Accuracy: 91.5, Confidence: 0.94},
		{Period: "Week 4", Accuracy: 88.7, Confidence: 0.91},
	}
}

func Anomalies() []domain.Anomaly {
	return []domain.Anomaly{
		{Date: "2024-01-15", Value: 32000, Severity: domain.SeverityHigh},
		{Date: "2024-01-18", Value: 18000, Severity: domain.SeverityMedium},
		{Date: "2024-01-22", Value: 35000, Severity: domain.SeverityLow},
		{Date: "2024-01-28", Value: 15000, Severity: domain.SeverityHigh},
	}
}

func ModelMetrics() []domain.ModelMetric {
	return []domain.ModelMetric{
		{Name: "Sales Forecast", Accuracy: 91.2, LastTrained: "2024-01-15", Status: domain.ModelActive},
		{Name: "Inventory Prediction", Accuracy: 87.8, LastTrained: "2024-01-14", Status: domain.ModelActive},
		{Name: "Customer Behavior", Accuracy: 84.5, LastTrained: "2024-01-13", Status: domain.ModelTraining},
		{Name: "Price Optimization", Accuracy: 89.1, LastTrained: "2024-01-12", Status: domain.ModelActive},
	}
}

func FeatureImportance() []domain.FeatureWeight {
	return []domain.FeatureWeight{
		{Feature: "Historical Sales", Importance: 0.34},
		{Feature: "Seasonality", Importance: 0.28},
		{Feature: "Marketing Spend", Importance: 0.19},
		{Feature: "Product Category", Importance: 0.12},
		{Feature: "Customer Segments", Importance: 0.07},
	}
}
