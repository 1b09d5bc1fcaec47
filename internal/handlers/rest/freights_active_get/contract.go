//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=freights_active_get_test
package freights_active_get

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
	ActiveFreightsForDriver(ctx context.Context, cpf string) ([]entities.Freight, error)
}
