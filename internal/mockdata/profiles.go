package mockdata

import "github.com/xela07ax/predictaflow/internal/domain"

// Profiles - карточки отраслей для онбординга и заголовков дашборда.
func Profiles() []domain.IndustryProfile {
	return []domain.IndustryProfile{
		{
			Industry:       domain.IndustryRetail,
			Name:           "Retail",
			DashboardTitle: "Retail Analytics",
			PrimaryColor:   "#3b82f6",
			DataSources:    []string{"POS Systems", "Inventory Management", "E-commerce Platforms", "CRM Systems"},
			KPINames:       []string{"Sales Revenue", "Inventory Turnover", "Customer Retention", "Average Order Value"},
		},
		{
			Industry:       domain.IndustryHospitality,
			Name:           "Hospitality",
			DashboardTitle: "Hospitality Intelligence",
			PrimaryColor:   "#8b5cf6",
			DataSources:    []string{"Property Management Systems", "Booking Engines", "Guest Reviews", "Revenue Management"},
			KPINames:       []string{"Occupancy Rate", "RevPAR", "Guest Satisfaction", "Average Daily Rate"},
		},
		{
			Industry:       domain.IndustryWaste,
			Name:           "Waste Management",
			DashboardTitle: "Waste Management",
			PrimaryColor:   "#10b981",
			DataSources:    []string{"Fleet Management", "Route Planning", "Waste Tracking", "Customer Management"},
			KPINames:       []string{"Collection Efficiency", "Route Optimization", "Fuel Consumption", "Customer Satisfaction"},
		},
	}
}

// Integrations - демонстрационный список подключений.
func Integrations() []domain.Integration {
	return []domain.Integration{
		{
			ID: "1", Name: "Shopify", Type: "E-commerce",
			Status:   domain.IntegrationConnected,
			LastSync: "2024-01-15T10:30:00Z",
			Config:   map[string]string{"store_url": "mystore.shopify.com"},
		},
		{
			ID: "2", Name: "Salesforce", Type: "CRM",
			Status:   domain.IntegrationConnected,
			LastSync: "2024-01-15T09:15:00Z",
			Config:   map[string]string{"instance_url": "company.salesforce.com"},
		},
		{
			ID: "3", Name: "Google Analytics", Type: "Analytics",
			Status: domain.IntegrationDisconnected,
			Config: map[string]string{"property_id": "GA4-123456789"},
		},
		{
			ID: "4", Name: "PostgreSQL Database", Type: "Database",
			Status:   domain.IntegrationError,
			LastSync: "2024-01-14T18:45:00Z",
			Config:   map[string]string{"host": "db.company.com", "database": "analytics"},
		},
	}
}
