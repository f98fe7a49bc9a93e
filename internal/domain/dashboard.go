package domain

import (
	"encoding/json"
	"fmt"
)

type Trend string

const (
	TrendUp     Trend = "up"
	TrendDown   Trend = "down"
	TrendStable Trend = "stable"
)

// KPI - карточка показателя на дашборде. Value уже отформатирован для показа.
type KPI struct {
	ID     string  `json:"id" yaml:"id"`
	Title  string  `json:"title" yaml:"title"`
	Value  string  `json:"value" yaml:"value"`
	Change float64 `json:"change" yaml:"change"` // % к прошлому месяцу
	Trend  Trend   `json:"trend" yaml:"trend"`
	Unit   string  `json:"unit,omitempty" yaml:"unit,omitempty"`
	Icon   string  `json:"icon,omitempty" yaml:"icon,omitempty"`
}

// CategoryDatum - элемент рейтинга (Value - количество) или доли (Value - проценты).
type CategoryDatum struct {
	Name   string  `json:"name" yaml:"name"`
	Value  float64 `json:"value" yaml:"value"`
	Change float64 `json:"change,omitempty" yaml:"change,omitempty"`
	Fill   string  `json:"fill,omitempty" yaml:"fill,omitempty"`
}

// IndustryDataset - полный отраслевой набор для дашборда.
type IndustryDataset struct {
	Industry   Industry          `json:"industry" yaml:"industry"`
	KPIs       []KPI             `json:"kpis" yaml:"kpis"`
	SeriesName string            `json:"series_name" yaml:"series_name"`
	Series     []TimeSeriesPoint `json:"series" yaml:"series"`
	TopLabel   string            `json:"top_label" yaml:"top_label"`
	Top        []CategoryDatum   `json:"top" yaml:"top"`
	BreakLabel string            `json:"breakdown_label" yaml:"breakdown_label"`
	Breakdown  []CategoryDatum   `json:"breakdown" yaml:"breakdown"`
	Alerts     []Alert           `json:"alerts" yaml:"alerts"`
}

// UnmarshalJSON нужен для снапшота из Redis: алерты приходят с дискриминатором kind.
func (d *IndustryDataset) UnmarshalJSON(data []byte) error {
	type plain IndustryDataset
	aux := struct {
		*plain
		Alerts []json.RawMessage `json:"alerts"`
	}{plain: (*plain)(d)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	d.Alerts = make([]Alert, 0, len(aux.Alerts))
	for i, raw := range aux.Alerts {
		a, err := DecodeAlert(raw)
		if err != nil {
			return fmt.Errorf("alert %d: %w", i, err)
		}
		d.Alerts = append(d.Alerts, a)
	}
	return nil
}
