package route

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fretes/internal/entities"
	"fretes/internal/service/route"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

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

const routeColumns = `id, nome, motorista_id, status, data_inicio, data_conclusao, ativo, data_criacao, data_atualizacao`

func (r *Repository) GetForUpdate(ctx context.Context, id int64) (*entities.Route, error) {
	query := `
		SELECT ` + routeColumns + `
		FROM rotas
		WHERE id = $1
		FOR UPDATE`

	var routeDB RouteDB
	err := scanRoute(r.querier.QueryRow(ctx, query, id), &routeDB)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, route.ErrRouteNotFound
		}
		return nil, fmt.Errorf("unexpected route repository get error: %w", err)
	}

	return ToDomain(&routeDB), nil
}

func (r *Repository) Start(ctx context.Context, id int64, at time.Time) (*entities.Route, error) {
	query := `
		UPDATE rotas
		SET status = 'EM_ANDAMENTO', data_inicio = $2, data_atualizacao = NOW()
		WHERE id = $1
		RETURNING ` + routeColumns

	var routeDB RouteDB
	err := scanRoute(r.querier.QueryRow(ctx, query, id, at), &routeDB)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, route.ErrRouteNotFound
		}
		return nil, fmt.Errorf("unexpected route repository start error: %w", err)
	}

	return ToDomain(&routeDB), nil
}

func (r *Repository) Complete(ctx context.Context, id int64, at time.Time) (*entities.Route, error) {
	query := `
		UPDATE rotas
		SET status = 'CONCLUIDA', data_conclusao = $2, data_atualizacao = NOW()
		WHERE id = $1
		RETURNING ` + routeColumns

	var routeDB RouteDB
	err := scanRoute(r.querier.QueryRow(ctx, query, id, at), &routeDB)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, route.ErrRouteNotFound
		}
		return nil, fmt.Errorf("unexpected route repository complete error: %w", err)
	}

	return ToDomain(&routeDB), nil
}

// ArmFirstFreight переводит в EM_EXECUCAO фрахт с наименьшим ordem, но только
// если он еще PENDENTE. Если первый уже тронут, запрос никого не затрагивает.
func (r *Repository) ArmFirstFreight(ctx context.Context, routeID int64, at time.Time) error {
	query := `
		UPDATE rota_fretes
		SET status_rota = 'EM_EXECUCAO', data_inicio_execucao = $2
		WHERE id = (
			SELECT id FROM rota_fretes
			WHERE rota_id = $1
			ORDER BY ordem
			LIMIT 1
		) AND status_rota = 'PENDENTE'
	`

	_, err := r.querier.Exec(ctx, query, routeID, at)
	if err != nil {
		return fmt.Errorf("unexpected route repository arm first freight error: %w", err)
	}

	return nil
}

func (r *Repository) CountUnfinished(ctx context.Context, routeID int64) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM rota_fretes
		WHERE rota_id = $1 AND status_rota <> 'CONCLUIDO'
	`

	var count int
	err := r.querier.QueryRow(ctx, query, routeID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("unexpected route repository count unfinished error: %w", err)
	}

	return count, nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Route, error) {
	query := `
		SELECT ` + routeColumns + `
		FROM rotas
		WHERE id = $1`

	var routeDB RouteDB
	err := scanRoute(r.querier.QueryRow(ctx, query, id), &routeDB)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, route.ErrRouteNotFound
		}
		return nil, fmt.Errorf("unexpected route repository get error: %w", err)
	}

	return ToDomain(&routeDB), nil
}

func (r *Repository) GetProgressItems(ctx context.Context, routeID int64) ([]entities.RouteProgressItem, error) {
	query := `
		SELECT f.id, f.nome_frete, f.codigo_publico, f.tipo_servico, f.status_atual,
		       rf.ordem, rf.status_rota, rf.data_inicio_execucao, rf.data_conclusao_execucao
		FROM rota_fretes rf
		JOIN fretes f ON f.id = rf.frete_id
		WHERE rf.rota_id = $1
		ORDER BY rf.ordem
	`

	rows, err := r.querier.Query(ctx, query, routeID)
	if err != nil {
		return nil, fmt.Errorf("unexpected route repository get progress error: %w", err)
	}
	defer rows.Close()

	itemModels := make([]ProgressItemDB, 0, 8)
	for rows.Next() {
		var itemDB ProgressItemDB
		err := rows.Scan(
			&itemDB.FreightID,
			&itemDB.FreightName,
			&itemDB.PublicCode,
			&itemDB.ServiceType,
			&itemDB.Status,
			&itemDB.Order,
			&itemDB.ExecStatus,
			&itemDB.ExecStartedAt,
			&itemDB.ExecCompletedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected route repository get progress error: %w", err)
		}
		itemModels = append(itemModels, itemDB)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected route repository get progress error: %w", err)
	}

	return ToProgressItemsDomain(itemModels), nil
}

func (r *Repository) GetActiveByDriver(ctx context.Context, driverID int64) ([]entities.Route, error) {
	query := `
		SELECT ` + routeColumns + `
		FROM rotas
		WHERE motorista_id = $1
		  AND ativo
		  AND status IN ('PLANEJADA', 'EM_ANDAMENTO')
		ORDER BY data_criacao DESC`

	rows, err := r.querier.Query(ctx, query, driverID)
	if err != nil {
		return nil, fmt.Errorf("unexpected route repository get active error: %w", err)
	}
	defer rows.Close()

	routeModels := make([]RouteDB, 0, 4)
	for rows.Next() {
		var routeDB RouteDB
		err := scanRoute(rows, &routeDB)
		if err != nil {
			return nil, fmt.Errorf("unexpected route repository get active error: %w", err)
		}
		routeModels = append(routeModels, routeDB)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected route repository get active error: %w", err)
	}

	return ToDomainList(routeModels), nil
}

func scanRoute(row pgx.Row, routeDB *RouteDB) error {
	return row.Scan(
		&routeDB.ID,
		&routeDB.Name,
		&routeDB.DriverID,
		&routeDB.Status,
		&routeDB.StartedAt,
		&routeDB.CompletedAt,
		&routeDB.Active,
		&routeDB.CreatedAt,
		&routeDB.UpdatedAt,
	)
}
