package domain

type IntegrationStatus string

const (
	IntegrationConnected    IntegrationStatus = "connected"
	IntegrationDisconnected IntegrationStatus = "disconnected"
	IntegrationError        IntegrationStatus = "error"
)

// Integration - демонстрационный источник данных на странице интеграций.
type Integration struct {
	ID       string            `json:"id" yaml:"id"`
	Name     string            `json:"name" yaml:"name"`
	Type     string            `json:"type" yaml:"type"`
	Status   IntegrationStatus `json:"status" yaml:"status"`
	LastSync string            `json:"last_sync,omitempty" yaml:"last_sync,omitempty"` // RFC3339
	Config   map[string]string `json:"config,omitempty" yaml:"config,omitempty"`
}
