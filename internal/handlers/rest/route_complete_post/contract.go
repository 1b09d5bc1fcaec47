//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=route_complete_post_test
package route_complete_post

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
	CompleteRoute(ctx context.Context, routeID int64, cpf string) (*entities.Route, error)
}
