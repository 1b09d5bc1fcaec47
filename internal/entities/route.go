package entities

import (
	"math"
	"time"
)

type RouteStatusType string

const (
	RoutePlanned    RouteStatusType = "PLANEJADA"
	RouteInProgress RouteStatusType = "EM_ANDAMENTO"
	RouteCompleted  RouteStatusType = "CONCLUIDA"
	RouteCancelled  RouteStatusType = "CANCELADA"
)

func (s RouteStatusType) String() string {
	return string(s)
}

type RouteExecStatusType string

const (
	RouteExecPending    RouteExecStatusType = "PENDENTE"
	RouteExecInProgress RouteExecStatusType = "EM_EXECUCAO"
	RouteExecDone       RouteExecStatusType = "CONCLUIDO"
)

func (s RouteExecStatusType) String() string {
	return string(s)
}

type Route struct {
	ID          int64
	Name        string
	DriverID    int64
	Status      RouteStatusType
	StartedAt   *time.Time
	CompletedAt *time.Time
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// RouteFreight связка маршрута с фрахтом; ordem уникален в рамках маршрута
// и задает единственный порядок исполнения.
type RouteFreight struct {
	ID              int64
	RouteID         int64
	FreightID       int64
	Order           int
	ExecStatus      RouteExecStatusType
	ExecStartedAt   *time.Time
	ExecCompletedAt *time.Time
}

type RouteProgressItem struct {
	FreightID       int64
	FreightName     string
	PublicCode      string
	ServiceType     FreightServiceType
	Status          FreightStatusType
	Order           int
	ExecStatus      RouteExecStatusType
	ExecStartedAt   *time.Time
	ExecCompletedAt *time.Time
}

type RouteProgress struct {
	RouteID     int64
	Name        string
	Status      RouteStatusType
	StartedAt   *time.Time
	CompletedAt *time.Time
	Total       int
	Done        int
	Percent     float64
	Items       []RouteProgressItem
}

// Recalculate пересчитывает счетчики и процент готовности по элементам.
func (p *RouteProgress) Recalculate() {
	p.Total = len(p.Items)
	p.Done = 0
	for _, item := range p.Items {
		if item.ExecStatus == RouteExecDone {
			p.Done++
		}
	}
	if p.Total == 0 {
		p.Percent = 0
		return
	}
	p.Percent = math.Round(float64(p.Done)/float64(p.Total)*100*100) / 100
}
