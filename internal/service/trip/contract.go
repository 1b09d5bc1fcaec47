//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=trip_test
package trip

import (
	"context"
	"time"

	"fretes/internal/entities"
)

type Repository interface {
	CreateTrip(ctx context.Context, driverID int64, lat, lng float64, startedAt time.Time) (*entities.DriverTrip, error)
	GetActiveTripForUpdate(ctx context.Context, driverID int64) (*entities.DriverTrip, error)
	UpdateTripPosition(ctx context.Context, tripID int64, lat, lng float64) error
	UpdateTrip(ctx context.Context, tripModifyEntity entities.DriverTripModify) (*entities.DriverTrip, error)
	CreateLocation(ctx context.Context, driverID int64, sample entities.LocationSample, timestamp time.Time) (*entities.DriverLocation, error)
	CountOpenTrips(ctx context.Context) (int64, error)
	CountActiveDrivers(ctx context.Context, window time.Duration) (int64, error)
}

type DriverService interface {
	GetActiveDriver(ctx context.Context, cpf string) (*entities.Driver, error)
}

type FreightService interface {
	AppendLocation(ctx context.Context, freightID, driverID int64, lat, lng float64, timestamp time.Time) (*entities.FreightLocation, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
