package domain

import (
	"encoding/json"
	"fmt"
)

// AlertKind - дискриминатор варианта алерта в JSON.
type AlertKind string

const (
	AlertKindInventory   AlertKind = "inventory"
	AlertKindBooking     AlertKind = "booking_event"
	AlertKindMaintenance AlertKind = "maintenance"
)

// Severity - общая шкала срочности (urgency / impact / priority).
type Severity string

const (
	SeverityHigh   Severity = "high"
	SeverityMedium Severity = "medium"
	SeverityLow    Severity = "low"
)

// Alert - закрытое множество отраслевых алертов.
// У каждой отрасли своя форма записи, общий у них только уровень.
type Alert interface {
	Kind() AlertKind
	Level() Severity
}

// InventoryAlert - розница: товар ниже точки дозаказа.
type InventoryAlert struct {
	Product      string   `json:"product" yaml:"product"`
	CurrentStock int      `json:"current_stock" yaml:"current_stock"`
	ReorderPoint int      `json:"reorder_point" yaml:"reorder_point"`
	Urgency      Severity `json:"urgency" yaml:"urgency"`
}

func (InventoryAlert) Kind() AlertKind   { return AlertKindInventory }
func (a InventoryAlert) Level() Severity { return a.Urgency }

func (a InventoryAlert) MarshalJSON() ([]byte, error) {
	type plain InventoryAlert
	return json.Marshal(struct {
		Kind AlertKind `json:"kind"`
		plain
	}{a.Kind(), plain(a)})
}

func (a InventoryAlert) MarshalYAML() (interface{}, error) {
	// yaml.v3 не читает поля через неэкспортируемый embedded-тип
	type Fields InventoryAlert
	return struct {
		Kind   AlertKind `yaml:"kind"`
		Fields `yaml:",inline"`
	}{a.Kind(), Fields(a)}, nil
}

// BookingEvent - гостиницы: событие, влияющее на загрузку.
type BookingEvent struct {
	Event  string   `json:"event" yaml:"event"`
	Date   string   `json:"date" yaml:"date"`
	Rooms  int      `json:"rooms" yaml:"rooms"`
	Impact Severity `json:"impact" yaml:"impact"`
}

func (BookingEvent) Kind() AlertKind   { return AlertKindBooking }
func (e BookingEvent) Level() Severity { return e.Impact }

func (e BookingEvent) MarshalJSON() ([]byte, error) {
	type plain BookingEvent
	return json.Marshal(struct {
		Kind AlertKind `json:"kind"`
		plain
	}{e.Kind(), plain(e)})
}

func (e BookingEvent) MarshalYAML() (interface{}, error) {
	type Fields BookingEvent
	return struct {
		Kind   AlertKind `yaml:"kind"`
		Fields `yaml:",inline"`
	}{e.Kind(), Fields(e)}, nil
}

// MaintenanceAlert - вывоз отходов: обслуживание техники.
type MaintenanceAlert struct {
	Vehicle  string   `json:"vehicle" yaml:"vehicle"`
	Issue    string   `json:"issue" yaml:"issue"`
	Priority Severity `json:"priority" yaml:"priority"`
	DueDate  string   `json:"due_date" yaml:"due_date"`
}

func (MaintenanceAlert) Kind() AlertKind   { return AlertKindMaintenance }
func (a MaintenanceAlert) Level() Severity { return a.Priority }

func (a MaintenanceAlert) MarshalJSON() ([]byte, error) {
	type plain MaintenanceAlert
	return json.Marshal(struct {
		Kind AlertKind `json:"kind"`
		plain
	}{a.Kind(), plain(a)})
}

func (a MaintenanceAlert) MarshalYAML() (interface{}, error) {
	type Fields MaintenanceAlert
	return struct {
		Kind   AlertKind `yaml:"kind"`
		Fields `yaml:",inline"`
	}{a.Kind(), Fields(a)}, nil
}

// DecodeAlert восстанавливает конкретный тип алерта по полю kind.
func DecodeAlert(data []byte) (Alert, error) {
	var head struct {
		Kind AlertKind `json:"kind"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return nil, fmt.Errorf("decode alert kind: %w", err)
	}

	switch head.Kind {
	case AlertKindInventory:
		var a InventoryAlert
		err := json.Unmarshal(data, &a)
		return a, err
	case AlertKindBooking:
		var e BookingEvent
		err := json.Unmarshal(data, &e)
		return e, err
	case AlertKindMaintenance:
		var a MaintenanceAlert
		err := json.Unmarshal(data, &a)
		return a, err
	default:
		return nil, fmt.Errorf("unknown alert kind %q", head.Kind)
	}
}
