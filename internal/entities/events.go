package entities

import "time"

// FreightStatusChangedEvent публикуется после коммита перехода статуса.
type FreightStatusChangedEvent struct {
	FreightID   int64              `json:"frete_id"`
	PublicCode  string             `json:"codigo_publico"`
	ServiceType FreightServiceType `json:"tipo_servico"`
	Previous    FreightStatusType  `json:"status_anterior"`
	Next        FreightStatusType  `json:"status_novo"`
	DriverCPF   string             `json:"cpf_motorista"`
	OccurredAt  time.Time          `json:"occurred_at"`
}
