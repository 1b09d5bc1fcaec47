//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=trip_end_post_test
package trip_end_post

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
	EndTrip(ctx context.Context, cpf string, lat, lng float64, distanceKm *float64) (*entities.DriverTrip, error)
}
