package mockdata

import "github.com/xela07ax/predictaflow/internal/domain"

// Загрузка номеров - доля, baseline 0.75 = 75%.
const hospitalityBaseline = 0.75

func (g *Generator) buildHospitality() domain.IndustryDataset {
	return domain.IndustryDataset{
		Industry: domain.IndustryHospitality,
		KPIs: []domain.KPI{
			{ID: "1", Title: "Occupancy Rate", Value: "78.5%", Change: 5.2, Trend: domain.TrendUp, Unit: "%"},
			{ID: "2", Title: "ADR", Value: "$189.43", Change: 3.1, Trend: domain.TrendUp, Unit: "$"},
			{ID: "3", Title: "RevPAR", Value: "$148.71", Change: 8.7, Trend: domain.TrendUp, Unit: "$"},
			{ID: "4", Title: "Guest Satisfaction", Value: "4.6/5", Change: 2.3, Trend: domain.TrendUp, Unit: "/5"},
		},
		SeriesName: "occupancyTrend",
		Series:     clampRate(g.GenerateDailySeries(SeriesLength, hospitalityBaseline, DefaultVolatility)),
		TopLabel:   "Room Types",
		Top: []domain.CategoryDatum{
			{Name: "Standard", Value: 145, Change: 8.2},
			{Name: "Deluxe", Value: 89, Change: 12.1},
			{Name: "Suite", Value: 34, Change: -5.3},
			{Name: "Executive", Value: 28, Change: 15.7},
		},
		BreakLabel: "Revenue Channels",
		Breakdown: []domain.CategoryDatum{
			{Name: "Direct Booking", Value: 45, Fill: "#3b82f6"},
			{Name: "OTA", Value: 32, Fill: "#ef4444"},
			{Name: "Corporate", Value: 15, Fill: "#10b981"},
			{Name: "Travel Agents", Value: 8, Fill: "#f59e0b"},
		},
		Alerts: []domain.Alert{
			domain.BookingEvent{Event: "Tech Conference", Date: "2024-02-15", Rooms: 120, Impact: domain.SeverityHigh},
			domain.BookingEvent{Event: "Wedding Season", Date: "2024-03-01", Rooms: 80, Impact: domain.SeverityMedium},
			domain.BookingEvent{Event: "Holiday Weekend", Date: "2024-02-18", Rooms: 200, Impact: domain.SeverityHigh},
		},
	}
}

// clampRate обрезает доли сверху единицей. Снизу ряд уже ограничен нулем.
func clampRate(points []domain.TimeSeriesPoint) []domain.TimeSeriesPoint {
	for i := range points {
		if points[i].Actual > 1 {
			points[i].Actual = 1
		}
		if points[i].Predicted > 1 {
			points[i].Predicted = 1
		}
	}
	return points
}
