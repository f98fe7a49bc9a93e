package domain

import "strings"

// Industry - ключ отраслевого набора данных.
type Industry string

const (
	IndustryRetail      Industry = "retail"
	IndustryHospitality Industry = "hospitality"
	IndustryWaste       Industry = "waste"
)

// DefaultIndustry используется, когда ключ не распознан.
const DefaultIndustry = IndustryRetail

// AllIndustries возвращает поддерживаемые отрасли в фиксированном порядке.
func AllIndustries() []Industry {
	return []Industry{IndustryRetail, IndustryHospitality, IndustryWaste}
}

// ParseIndustry приводит строку к известному ключу.
// Неизвестный ключ - не ошибка: возвращаем retail и ok=false,
// чтобы вызывающий мог залогировать подмену.
func ParseIndustry(s string) (Industry, bool) {
	switch Industry(strings.ToLower(strings.TrimSpace(s))) {
	case IndustryRetail:
		return IndustryRetail, true
	case IndustryHospitality:
		return IndustryHospitality, true
	case IndustryWaste:
		return IndustryWaste, true
	default:
		return DefaultIndustry, false
	}
}

func (i Industry) Valid() bool {
	switch i {
	case IndustryRetail, IndustryHospitality, IndustryWaste:
		return true
	}
	return false
}

// IndustryProfile - описание отрасли для онбординга и шапки дашборда.
type IndustryProfile struct {
	Industry       Industry `json:"industry" yaml:"industry"`
	Name           string   `json:"name" yaml:"name"`
	DashboardTitle string   `json:"dashboard_title" yaml:"dashboard_title"`
	PrimaryColor   string   `json:"primary_color" yaml:"primary_color"`
	DataSources    []string `json:"data_sources" yaml:"data_sources"`
	KPINames       []string `json:"kpi_names" yaml:"kpi_names"`
}
