//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=driver_test
package driver

import (
	"context"
	"time"

	"fretes/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, driverModifyEntity entities.DriverModify) (int64, error)
	Update(ctx context.Context, driverModifyEntity entities.DriverModify) (*entities.Driver, error)
	GetByCPF(ctx context.Context, cpf string) (*entities.Driver, error)
	GetLastActivity(ctx context.Context, driverID int64) (*time.Time, error)
}
