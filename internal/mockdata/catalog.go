package mockdata

import "github.com/xela07ax/predictaflow/internal/domain"

// BuildDataset собирает набор одной отрасли. Статическая часть литеральная,
// ряд генерируется заново при каждом вызове.
func (g *Generator) BuildDataset(industry domain.Industry) domain.IndustryDataset {
	switch industry {
	case domain.IndustryHospitality:
		return g.buildHospitality()
	case domain.IndustryWaste:
		return g.buildWaste()
	default:
		return g.buildRetail()
	}
}

// Catalog - наборы всех отраслей, собранные один раз.
// После сборки не меняется, поэтому читается без блокировок.
type Catalog struct {
	Day      string                                     `json:"day"` // дата генерации, YYYY-MM-DD
	Datasets map[domain.Industry]domain.IndustryDataset `json:"datasets"`
}

// BuildCatalog - явная точка "собрать один раз и переиспользовать".
func BuildCatalog(g *Generator) *Catalog {
	c := &Catalog{
		Day:      g.now().Format(dateLayout),
		Datasets: make(map[domain.Industry]domain.IndustryDataset, 3),
	}
	for _, ind := range domain.AllIndustries() {
		c.Datasets[ind] = g.BuildDataset(ind)
	}
	return c
}

// Lookup возвращает набор по ключу; ok=false означает подмену на retail.
func (c *Catalog) Lookup(key string) (domain.IndustryDataset, bool) {
	ind, ok := domain.ParseIndustry(key)
	return c.Datasets[ind], ok
}

// Select - тотальное отображение ключа в набор, неизвестное -> retail.
func (c *Catalog) Select(key string) domain.IndustryDataset {
	ds, _ := c.Lookup(key)
	return ds
}

func (c *Catalog) Industries() []domain.Industry {
	return domain.AllIndustries()
}

// Complete проверяет, что в каталоге есть все отрасли (например, после чтения снапшота).
func (c *Catalog) Complete() bool {
	if c == nil {
		return false
	}
	for _, ind := range domain.AllIndustries() {
		ds, ok := c.Datasets[ind]
		if !ok || len(ds.Series) != SeriesLength || len(ds.KPIs) == 0 {
			return false
		}
	}
	return true
}
