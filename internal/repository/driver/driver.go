package driver

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fretes/internal/entities"
	"fretes/internal/repository"
	"fretes/internal/service/driver"
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

func (r *Repository) Create(ctx context.Context, driverModifyEntity entities.DriverModify) (int64, error) {
	driverModifyModel := FromDomainModify(&driverModifyEntity)
	query := `INSERT INTO drivers (cpf, name, phone, is_active)
		VALUES ($1, $2, $3, COALESCE($4, TRUE))
		RETURNING id`

	var id int64
	err := r.querier.QueryRow(
		ctx,
		query,
		driverModifyModel.CPF,
		driverModifyModel.Name,
		driverModifyModel.Phone,
		driverModifyModel.Active,
	).Scan(&id)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return 0, driver.ErrConflict
		}
		return 0, fmt.Errorf("unexpected driver repository create error: %w", err)
	}

	return id, nil
}

func (r *Repository) Update(ctx context.Context, driverModifyEntity entities.DriverModify) (*entities.Driver, error) {
	driverModifyModel := FromDomainModify(&driverModifyEntity)

	builder := qb.
		Update("drivers")

	// опциональные поля
	if driverModifyModel.Name != nil {
		builder = builder.Set("name", driverModifyModel.Name)
	}
	if driverModifyModel.Phone != nil {
		builder = builder.Set("phone", driverModifyModel.Phone)
	}
	if driverModifyModel.Active != nil {
		builder = builder.Set("is_active", driverModifyModel.Active)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": driverModifyModel.ID}).
		Suffix("RETURNING id, cpf, name, phone, is_active, created_at, updated_at")

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected driver repository update error: %w", err)
	}

	var driverModel DriverDB
	err = r.querier.QueryRow(ctx, query, args...).
		Scan(
			&driverModel.ID,
			&driverModel.CPF,
			&driverModel.Name,
			&driverModel.Phone,
			&driverModel.Active,
			&driverModel.CreatedAt,
			&driverModel.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, driver.ErrDriverNotFound
		}

		return nil, fmt.Errorf("unexpected driver repository update error: %w", err)
	}

	return ToDomain(&driverModel), nil
}

func (r *Repository) GetByCPF(ctx context.Context, cpf string) (*entities.Driver, error) {
	query := `SELECT id, cpf, name, phone, is_active, created_at, updated_at
		FROM drivers
		WHERE cpf = $1`

	var driverModel DriverDB
	err := r.querier.QueryRow(ctx, query, cpf).
		Scan(
			&driverModel.ID,
			&driverModel.CPF,
			&driverModel.Name,
			&driverModel.Phone,
			&driverModel.Active,
			&driverModel.CreatedAt,
			&driverModel.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, driver.ErrDriverNotFound
		}

		return nil, fmt.Errorf("unexpected driver repository getbycpf error: %w", err)
	}

	return ToDomain(&driverModel), nil
}

func (r *Repository) GetLastActivity(ctx context.Context, driverID int64) (*time.Time, error) {
	query := `
		SELECT MAX(timestamp)
		FROM driver_locations
		WHERE driver_id = $1
	`

	var lastActivity *time.Time
	err := r.querier.QueryRow(ctx, query, driverID).Scan(&lastActivity)
	if err != nil {
		return nil, fmt.Errorf("unexpected driver repository get last activity error: %w", err)
	}

	return lastActivity, nil
}
