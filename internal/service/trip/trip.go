package trip

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fretes/internal/entities"
	"github.com/AlekSi/pointer"
)

type Trip struct {
	repository     Repository
	driverService  DriverService
	freightService FreightService
	txManager      TxManager
}

func New(
	repository Repository,
	driverService DriverService,
	freightService FreightService,
	txManager TxManager,
) *Trip {
	return &Trip{
		repository:     repository,
		driverService:  driverService,
		freightService: freightService,
		txManager:      txManager,
	}
}

func (s *Trip) StartTrip(ctx context.Context, cpf string, lat, lng float64) (*entities.DriverTrip, error) {
	if !isValidLatitude(lat) {
		return nil, ErrInvalidLatitude
	}
	if !isValidLongitude(lng) {
		return nil, ErrInvalidLongitude
	}

	driver, err := s.driverService.GetActiveDriver(ctx, cpf)
	if err != nil {
		return nil, fmt.Errorf("start trip: %w", err)
	}

	trip, err := s.repository.CreateTrip(ctx, driver.ID, lat, lng, time.Now())
	if err != nil {
		if errors.Is(err, ErrTripAlreadyActive) {
			return nil, ErrTripAlreadyActive
		}
		return nil, fmt.Errorf("start trip: %w", err)
	}

	return trip, nil
}

func (s *Trip) EndTrip(ctx context.Context, cpf string, lat, lng float64, distanceKm *float64) (*entities.DriverTrip, error) {
	if !isValidLatitude(lat) {
		return nil, ErrInvalidLatitude
	}
	if !isValidLongitude(lng) {
		return nil, ErrInvalidLongitude
	}
	if distanceKm != nil && *distanceKm < 0 {
		return nil, ErrInvalidDistance
	}

	driver, err := s.driverService.GetActiveDriver(ctx, cpf)
	if err != nil {
		return nil, fmt.Errorf("end trip: %w", err)
	}

	var ended *entities.DriverTrip
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		active, err := s.repository.GetActiveTripForUpdate(ctx, driver.ID)
		if err != nil {
			return err
		}

		now := time.Now()
		// длительность округляется вниз до целых минут
		duration := int(now.Sub(active.StartedAt).Minutes())

		completed := entities.TripCompleted
		ended, err = s.repository.UpdateTrip(ctx, entities.DriverTripModify{
			ID:               pointer.ToInt64(active.ID),
			EndLatitude:      pointer.ToFloat64(lat),
			EndLongitude:     pointer.ToFloat64(lng),
			CurrentLatitude:  pointer.ToFloat64(lat),
			CurrentLongitude: pointer.ToFloat64(lng),
			Status:           &completed,
			DistanceKm:       distanceKm,
			DurationMinutes:  pointer.ToInt(duration),
			CompletedAt:      pointer.ToTime(now),
		})
		return err
	})
	if err != nil {
		if errors.Is(err, ErrNoActiveTrip) {
			return nil, ErrNoActiveTrip
		}
		return nil, fmt.Errorf("end trip: %w", err)
	}

	return ended, nil
}

// RecordLocation пишет замер, двигает текущую позицию открытой поездки
// (если она есть) и опционально добавляет точку в трек фрахта.
func (s *Trip) RecordLocation(ctx context.Context, cpf string, sample entities.LocationSample) (*entities.DriverLocation, error) {
	if !isValidLatitude(sample.Latitude) {
		return nil, ErrInvalidLatitude
	}
	if !isValidLongitude(sample.Longitude) {
		return nil, ErrInvalidLongitude
	}
	if sample.Speed != nil && !isValidSpeed(*sample.Speed) {
		return nil, ErrInvalidSpeed
	}
	if sample.BatteryLevel != nil && !isValidBattery(*sample.BatteryLevel) {
		return nil, ErrInvalidBattery
	}

	driver, err := s.driverService.GetActiveDriver(ctx, cpf)
	if err != nil {
		return nil, fmt.Errorf("record location: %w", err)
	}

	var location *entities.DriverLocation
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		now := time.Now()

		location, err = s.repository.CreateLocation(ctx, driver.ID, sample, now)
		if err != nil {
			return err
		}

		active, err := s.repository.GetActiveTripForUpdate(ctx, driver.ID)
		switch {
		case err == nil:
			err = s.repository.UpdateTripPosition(ctx, active.ID, sample.Latitude, sample.Longitude)
			if err != nil {
				return err
			}
		case errors.Is(err, ErrNoActiveTrip):
			// замер вне поездки допустим
		default:
			return err
		}

		if sample.FreightID != nil {
			_, err = s.freightService.AppendLocation(ctx, *sample.FreightID, driver.ID, sample.Latitude, sample.Longitude, now)
			if err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("record location: %w", err)
	}

	return location, nil
}

func (s *Trip) ActivitySnapshot(ctx context.Context, window time.Duration) (*entities.ActivitySnapshot, error) {
	activeDrivers, err := s.repository.CountActiveDrivers(ctx, window)
	if err != nil {
		return nil, fmt.Errorf("activity snapshot: %w", err)
	}

	openTrips, err := s.repository.CountOpenTrips(ctx)
	if err != nil {
		return nil, fmt.Errorf("activity snapshot: %w", err)
	}

	return &entities.ActivitySnapshot{
		ActiveDrivers: activeDrivers,
		OpenTrips:     openTrips,
	}, nil
}
