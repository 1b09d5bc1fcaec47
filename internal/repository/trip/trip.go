package trip

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fretes/internal/entities"
	"fretes/internal/repository"
	"fretes/internal/service/trip"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type Querier interface {
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

const tripColumns = `id, driver_id, start_latitude, start_longitude, current_latitude, current_longitude,
		end_latitude, end_longitude, status, distance_km, duration_minutes,
		started_at, completed_at, created_at, updated_at`

func (r *Repository) CreateTrip(ctx context.Context, driverID int64, lat, lng float64, startedAt time.Time) (*entities.DriverTrip, error) {
	query := `
		INSERT INTO driver_trips (driver_id, start_latitude, start_longitude, current_latitude, current_longitude, status, started_at)
		VALUES ($1, $2, $3, $2, $3, 'started', $4)
		RETURNING ` + tripColumns

	var tripDB TripDB
	err := scanTrip(r.querier.QueryRow(ctx, query, driverID, lat, lng, startedAt), &tripDB)
	if err != nil {
		// частичный уникальный индекс на (driver_id) WHERE status = 'started'
		// закрывает гонку двух одновременных start_trip
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, trip.ErrTripAlreadyActive
		}
		return nil, fmt.Errorf("unexpected trip repository create error: %w", err)
	}

	return ToDomain(&tripDB), nil
}

func (r *Repository) GetActiveTripForUpdate(ctx context.Context, driverID int64) (*entities.DriverTrip, error) {
	query := `
		SELECT ` + tripColumns + `
		FROM driver_trips
		WHERE driver_id = $1 AND status = 'started'
		ORDER BY started_at DESC
		LIMIT 1
		FOR UPDATE`

	var tripDB TripDB
	err := scanTrip(r.querier.QueryRow(ctx, query, driverID), &tripDB)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, trip.ErrNoActiveTrip
		}
		return nil, fmt.Errorf("unexpected trip repository get active error: %w", err)
	}

	return ToDomain(&tripDB), nil
}

func (r *Repository) UpdateTripPosition(ctx context.Context, tripID int64, lat, lng float64) error {
	query := `
		UPDATE driver_trips
		SET current_latitude = $2,
		    current_longitude = $3,
		    updated_at = NOW()
		WHERE id = $1
	`

	result, err := r.querier.Exec(ctx, query, tripID, lat, lng)
	if err != nil {
		return fmt.Errorf("unexpected trip repository update position error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return trip.ErrNoActiveTrip
	}

	return nil
}

func (r *Repository) UpdateTrip(ctx context.Context, tripModifyEntity entities.DriverTripModify) (*entities.DriverTrip, error) {
	tripModifyModel := FromDomainModify(&tripModifyEntity)

	builder := qb.
		Update("driver_trips")

	if tripModifyModel.EndLatitude != nil {
		builder = builder.Set("end_latitude", tripModifyModel.EndLatitude)
	}
	if tripModifyModel.EndLongitude != nil {
		builder = builder.Set("end_longitude", tripModifyModel.EndLongitude)
	}
	if tripModifyModel.CurrentLatitude != nil {
		builder = builder.Set("current_latitude", tripModifyModel.CurrentLatitude)
	}
	if tripModifyModel.CurrentLongitude != nil {
		builder = builder.Set("current_longitude", tripModifyModel.CurrentLongitude)
	}
	if tripModifyModel.Status != nil {
		builder = builder.Set("status", tripModifyModel.Status)
	}
	if tripModifyModel.DistanceKm != nil {
		builder = builder.Set("distance_km", tripModifyModel.DistanceKm)
	}
	if tripModifyModel.DurationMinutes != nil {
		builder = builder.Set("duration_minutes", tripModifyModel.DurationMinutes)
	}
	if tripModifyModel.CompletedAt != nil {
		builder = builder.Set("completed_at", tripModifyModel.CompletedAt)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": tripModifyModel.ID}).
		Suffix("RETURNING " + tripColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected trip repository update error: %w", err)
	}

	var tripDB TripDB
	err = scanTrip(r.querier.QueryRow(ctx, query, args...), &tripDB)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, trip.ErrNoActiveTrip
		}
		return nil, fmt.Errorf("unexpected trip repository update error: %w", err)
	}

	return ToDomain(&tripDB), nil
}

func (r *Repository) CreateLocation(ctx context.Context, driverID int64, sample entities.LocationSample, timestamp time.Time) (*entities.DriverLocation, error) {
	query := `
		INSERT INTO driver_locations (driver_id, latitude, longitude, accuracy, speed, battery_level, timestamp)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, driver_id, latitude, longitude, accuracy, speed, battery_level, timestamp, created_at
	`

	var locationDB LocationDB
	err := r.querier.QueryRow(
		ctx,
		query,
		driverID,
		sample.Latitude,
		sample.Longitude,
		sample.Accuracy,
		sample.Speed,
		sample.BatteryLevel,
		timestamp,
	).Scan(
		&locationDB.ID,
		&locationDB.DriverID,
		&locationDB.Latitude,
		&locationDB.Longitude,
		&locationDB.Accuracy,
		&locationDB.Speed,
		&locationDB.BatteryLevel,
		&locationDB.Timestamp,
		&locationDB.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("unexpected trip repository create location error: %w", err)
	}

	return ToLocationDomain(&locationDB), nil
}

func (r *Repository) CountOpenTrips(ctx context.Context) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM driver_trips
		WHERE status = 'started'
	`

	var count int64
	err := r.querier.QueryRow(ctx, query).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("unexpected trip repository count open trips error: %w", err)
	}

	return count, nil
}

func (r *Repository) CountActiveDrivers(ctx context.Context, window time.Duration) (int64, error) {
	query := `
		SELECT COUNT(DISTINCT driver_id)
		FROM driver_locations
		WHERE timestamp >= NOW() - $1::interval
	`

	var count int64
	err := r.querier.QueryRow(ctx, query, window.String()).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("unexpected trip repository count active drivers error: %w", err)
	}

	return count, nil
}

func scanTrip(row pgx.Row, tripDB *TripDB) error {
	return row.Scan(
		&tripDB.ID,
		&tripDB.DriverID,
		&tripDB.StartLatitude,
		&tripDB.StartLongitude,
		&tripDB.CurrentLatitude,
		&tripDB.CurrentLongitude,
		&tripDB.EndLatitude,
		&tripDB.EndLongitude,
		&tripDB.Status,
		&tripDB.DistanceKm,
		&tripDB.DurationMinutes,
		&tripDB.StartedAt,
		&tripDB.CompletedAt,
		&tripDB.CreatedAt,
		&tripDB.UpdatedAt,
	)
}
