//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=route_test
package route

import (
	"context"
	"time"

	"fretes/internal/entities"
)

type Repository interface {
	GetForUpdate(ctx context.Context, id int64) (*entities.Route, error)
	GetByID(ctx context.Context, id int64) (*entities.Route, error)
	Start(ctx context.Context, id int64, at time.Time) (*entities.Route, error)
	Complete(ctx context.Context, id int64, at time.Time) (*entities.Route, error)
	ArmFirstFreight(ctx context.Context, routeID int64, at time.Time) error
	CountUnfinished(ctx context.Context, routeID int64) (int, error)
	GetProgressItems(ctx context.Context, routeID int64) ([]entities.RouteProgressItem, error)
	GetActiveByDriver(ctx context.Context, driverID int64) ([]entities.Route, error)
}

type DriverService interface {
	GetActiveDriver(ctx context.Context, cpf string) (*entities.Driver, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
