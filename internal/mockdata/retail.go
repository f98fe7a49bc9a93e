package mockdata

import "github.com/xela07ax/predictaflow/internal/domain"

const retailBaseline = 25000

func (g *Generator) buildRetail() domain.IndustryDataset {
	return domain.IndustryDataset{
		Industry: domain.IndustryRetail,
		KPIs: []domain.KPI{
			{ID: "1", Title: "Revenue", Value: "$847,329", Change: 12.5, Trend: domain.TrendUp, Unit: "$", Icon: "dollar-sign"},
			{ID: "2", Title: "Units Sold", Value: "23,467", Change: 8.2, Trend: domain.TrendUp, Unit: "units"},
			{ID: "3", Title: "Avg Order Value", Value: "$67.43", Change: -2.1, Trend: domain.TrendDown, Unit: "$"},
			{ID: "4", Title: "Inventory Turnover", Value: "4.2x", Change: 15.3, Trend: domain.TrendUp, Unit: "x"},
		},
		SeriesName: "salesTrend",
		Series:     g.GenerateDailySeries(SeriesLength, retailBaseline, DefaultVolatility),
		TopLabel:   "Top Products",
		Top: []domain.CategoryDatum{
			{Name: "Wireless Headphones", Value: 1250, Change: 15.2},
			{Name: "Smart Watch", Value: 987, Change: 8.7},
			{Name: "Laptop Stand", Value: 743, Change: -2.3},
			{Name: "USB-C Hub", Value: 621, Change: 22.1},
			{Name: "Bluetooth Speaker", Value: 534, Change: 5.9},
		},
		BreakLabel: "Category Breakdown",
		Breakdown: []domain.CategoryDatum{
			{Name: "Electronics", Value: 42, Fill: "#3b82f6"},
			{Name: "Accessories", Value: 28, Fill: "#ef4444"},
			{Name: "Home & Garden", Value: 18, Fill: "#10b981"},
			{Name: "Clothing", Value: 12, Fill: "#f59e0b"},
		},
		Alerts: []domain.Alert{
			domain.InventoryAlert{Product: "iPhone Cases", CurrentStock: 23, ReorderPoint: 50, Urgency: domain.SeverityHigh},
			domain.InventoryAlert{Product: "Laptop Chargers", CurrentStock: 67, ReorderPoint: 100, Urgency: domain.SeverityMedium},
			domain.InventoryAlert{Product: "Wireless Mice", CurrentStock: 89, ReorderPoint: 120, Urgency: domain.SeverityMedium},
		},
	}
}
