//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=route_start_post_test
package route_start_post

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
	StartRoute(ctx context.Context, routeID int64, cpf string) (*entities.Route, error)
}
