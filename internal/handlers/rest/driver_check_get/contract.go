//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=driver_check_get_test
package driver_check_get

import (
	"context"

	"fretes/internal/entities"
	"fretes/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	CheckDriver(ctx context.Context, cpf string) (*entities.DriverCheck, error)
}
