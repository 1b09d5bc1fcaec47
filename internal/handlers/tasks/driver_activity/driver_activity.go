package driver_activity

import (
	"context"
	"time"

	"fretes/internal/entities"
	"fretes/pkg/logger"
)

type Service interface {
	ActivitySnapshot(ctx context.Context, window time.Duration) (*entities.ActivitySnapshot, error)
}

// DriverActivity только читает агрегаты и выставляет gauge-метрики,
// бизнес-данные из фона не меняются.
type DriverActivity struct {
	log      logger.Logger
	service  Service
	interval time.Duration
	window   time.Duration
}

func NewDriverActivity(log logger.Logger, service Service, interval, window time.Duration) *DriverActivity {
	return &DriverActivity{
		log:      log,
		service:  service,
		interval: interval,
		window:   window,
	}
}

func (d *DriverActivity) TTL() time.Duration {
	return d.interval
}

func (d *DriverActivity) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, d.interval)
	defer cancel()

	snapshot, err := d.service.ActivitySnapshot(ctxWithTimeout, d.window)
	if err != nil {
		return err
	}

	ActiveDriversGauge.Set(float64(snapshot.ActiveDrivers))
	OpenTripsGauge.Set(float64(snapshot.OpenTrips))

	return nil
}

func (d *DriverActivity) Info() string {
	return "driver activity"
}
