//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=freight_test
package freight

import (
	"context"
	"time"

	"fretes/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, freightModifyEntity entities.FreightModify, publicCode string, initialStatus entities.FreightStatusType) (*entities.Freight, error)
	GetForUpdate(ctx context.Context, id int64) (*entities.Freight, error)
	ApplyStatus(ctx context.Context, id int64, next entities.FreightStatusType, stampedAt time.Time) (*entities.Freight, error)
	InsertHistory(ctx context.Context, historyModifyEntity entities.StatusHistoryModify) error
	GetRouteLink(ctx context.Context, freightID int64) (*entities.RouteFreight, int64, error)
	UpdateRouteExecution(ctx context.Context, routeFreightID int64, execStatus entities.RouteExecStatusType, at time.Time) error
	GetActiveByDriver(ctx context.Context, driverID int64) ([]entities.Freight, error)
	AppendLocation(ctx context.Context, freightID, driverID int64, lat, lng float64, timestamp time.Time) (*entities.FreightLocation, error)
}

type DriverService interface {
	GetActiveDriver(ctx context.Context, cpf string) (*entities.Driver, error)
}

// EventPublisher шлет доменные события после коммита; ошибки доставки
// не влияют на результат операции.
type EventPublisher interface {
	StatusChanged(ctx context.Context, event entities.FreightStatusChangedEvent)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
