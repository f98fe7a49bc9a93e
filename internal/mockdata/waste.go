package mockdata

import "github.com/xela07ax/predictaflow/internal/domain"

// Объем вывоза в тоннах в день.
const wasteBaseline = 450

func (g *Generator) buildWaste() domain.IndustryDataset {
	return domain.IndustryDataset{
		Industry: domain.IndustryWaste,
		KPIs: []domain.KPI{
			{ID: "1", Title: "Collection Efficiency", Value: "94.2%", Change: 3.5, Trend: domain.TrendUp, Unit: "%"},
			// Расход топлива снизился - для парка это рост, поэтому trend up
			{ID: "2", Title: "Fuel Consumption", Value: "1,247L", Change: -8.1, Trend: domain.TrendUp, Unit: "L"},
			{ID: "3", Title: "Route Optimization", Value: "87.3%", Change: 12.4, Trend: domain.TrendUp, Unit: "%"},
			{ID: "4", Title: "Customer Satisfaction", Value: "4.4/5", Change: 6.7, Trend: domain.TrendUp, Unit: "/5"},
		},
		SeriesName: "volumeTrend",
		Series:     g.GenerateDailySeries(SeriesLength, wasteBaseline, DefaultVolatility),
		TopLabel:   "Waste Types",
		Top: []domain.CategoryDatum{
			{Name: "Residential", Value: 52, Change: 3.2},
			{Name: "Commercial", Value: 31, Change: 8.1},
			{Name: "Industrial", Value: 12, Change: -2.5},
			{Name: "Recycling", Value: 5, Change: 15.3},
		},
		BreakLabel: "Route Performance",
		Breakdown: []domain.CategoryDatum{
			{Name: "Route A", Value: 95, Fill: "#10b981"},
			{Name: "Route B", Value: 88, Fill: "#3b82f6"},
			{Name: "Route C", Value: 92, Fill: "#8b5cf6"},
			{Name: "Route D", Value: 79, Fill: "#ef4444"},
		},
		Alerts: []domain.Alert{
			domain.MaintenanceAlert{Vehicle: "Truck #003", Issue: "Engine Check", Priority: domain.SeverityHigh, DueDate: "2024-02-10"},
			domain.MaintenanceAlert{Vehicle: "Truck #007", Issue: "Brake Inspection", Priority: domain.SeverityMedium, DueDate: "2024-02-15"},
			domain.MaintenanceAlert{Vehicle: "Truck #012", Issue: "Oil Change", Priority: domain.SeverityLow, DueDate: "2024-02-20"},
		},
	}
}
