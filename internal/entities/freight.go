package entities

import "time"

type FreightServiceType string

const (
	ServiceTransport   FreightServiceType = "TRANSPORTE"
	ServiceCraneLoad   FreightServiceType = "MUNCK_CARGA"
	ServiceCraneUnload FreightServiceType = "MUNCK_DESCARGA"
)

func (t FreightServiceType) String() string {
	return string(t)
}

type FreightStatusType string

const (
	FreightNotStarted          FreightStatusType = "NAO_INICIADO"
	FreightAwaitingLoad        FreightStatusType = "AGUARDANDO_CARGA"
	FreightInTransit           FreightStatusType = "EM_TRANSITO"
	FreightUnloadingAtClient   FreightStatusType = "EM_DESCARGA_CLIENTE"
	FreightFinalized           FreightStatusType = "FINALIZADO"
	FreightLoadingNotStarted   FreightStatusType = "CARREGAMENTO_NAO_INICIADO"
	FreightLoadingStarted      FreightStatusType = "CARREGAMENTO_INICIADO"
	FreightLoadingDone         FreightStatusType = "CARREGAMENTO_CONCLUIDO"
	FreightUnloadingNotStarted FreightStatusType = "DESCARREGAMENTO_NAO_INICIADO"
	FreightUnloadingStarted    FreightStatusType = "DESCARREGAMENTO_INICIADO"
	FreightUnloadingDone       FreightStatusType = "DESCARREGAMENTO_CONCLUIDO"
)

func (s FreightStatusType) String() string {
	return string(s)
}

// IsTerminal сообщает, закрывает ли статус исполнение фрахта внутри маршрута.
func (s FreightStatusType) IsTerminal() bool {
	switch s {
	case FreightFinalized, FreightLoadingDone, FreightUnloadingDone:
		return true
	default:
		return false
	}
}

type transitionEdge struct {
	From FreightStatusType
	To   FreightStatusType
}

// freightTransitions - единственные легальные переходы статусов по типу услуги.
// Статусы, не участвующие ни в одном ребре своего типа, непереходимы.
var freightTransitions = map[FreightServiceType][]transitionEdge{
	ServiceTransport: {
		{From: FreightNotStarted, To: FreightAwaitingLoad},
		{From: FreightAwaitingLoad, To: FreightInTransit},
		{From: FreightInTransit, To: FreightUnloadingAtClient},
		{From: FreightUnloadingAtClient, To: FreightFinalized},
	},
	ServiceCraneLoad: {
		{From: FreightLoadingNotStarted, To: FreightLoadingStarted},
		{From: FreightLoadingStarted, To: FreightLoadingDone},
	},
	ServiceCraneUnload: {
		{From: FreightUnloadingNotStarted, To: FreightUnloadingStarted},
		{From: FreightUnloadingStarted, To: FreightUnloadingDone},
	},
}

// CanTransition проверяет ребро (from -> to) по таблице переходов типа услуги.
func (t FreightServiceType) CanTransition(from, to FreightStatusType) bool {
	for _, edge := range freightTransitions[t] {
		if edge.From == from && edge.To == to {
			return true
		}
	}
	return false
}

// InitialStatus статус нового фрахта данного типа услуги.
func (t FreightServiceType) InitialStatus() FreightStatusType {
	switch t {
	case ServiceCraneLoad:
		return FreightLoadingNotStarted
	case ServiceCraneUnload:
		return FreightUnloadingNotStarted
	default:
		return FreightNotStarted
	}
}

func (t FreightServiceType) Known() bool {
	switch t {
	case ServiceTransport, ServiceCraneLoad, ServiceCraneUnload:
		return true
	default:
		return false
	}
}

type Freight struct {
	ID                int64
	Name              string
	InvoiceNumber     *string
	PublicCode        string
	ClientID          int64
	DriverID          *int64
	ServiceType       FreightServiceType
	Origin            string
	Destination       string
	ScheduledAt       *time.Time
	Status            FreightStatusType
	ArrivedForLoadAt  *time.Time
	TripStartedAt     *time.Time
	ArrivedAtClientAt *time.Time
	FinalizedAt       *time.Time
	CraneStartedAt    *time.Time
	CraneEndedAt      *time.Time
	Notes             *string
	Active            bool
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

type FreightModify struct {
	ID            *int64
	Name          *string
	InvoiceNumber *string
	ClientID      *int64
	DriverID      *int64
	ServiceType   *FreightServiceType
	Origin        *string
	Destination   *string
	ScheduledAt   *time.Time
	Notes         *string
}
