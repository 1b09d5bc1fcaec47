//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=freight_status_post_test
package freight_status_post

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
	AdvanceStatus(ctx context.Context, freightID int64, cpf string, next entities.FreightStatusType, note *string) (*entities.Freight, error)
}
