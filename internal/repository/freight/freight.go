package freight

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fretes/internal/entities"
	"fretes/internal/repository"
	"fretes/internal/service/freight"
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

const freightColumns = `id, nome_frete, numero_nota_fiscal, codigo_publico, cliente_id, motorista_id,
		tipo_servico, origem, destino, data_agendamento, status_atual,
		data_chegada_cd, data_inicio_viagem, data_chegada_destino, data_finalizacao,
		data_inicio_operacao_munck, data_fim_operacao_munck,
		observacoes, ativo, data_criacao, data_atualizacao`

func (r *Repository) Create(ctx context.Context, freightModifyEntity entities.FreightModify, publicCode string, initialStatus entities.FreightStatusType) (*entities.Freight, error) {
	freightModifyModel := FromDomainModify(&freightModifyEntity)

	query := `
		INSERT INTO fretes (nome_frete, numero_nota_fiscal, codigo_publico, cliente_id, motorista_id,
			tipo_servico, origem, destino, data_agendamento, status_atual, observacoes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING ` + freightColumns

	var freightDB FreightDB
	err := scanFreight(r.querier.QueryRow(
		ctx,
		query,
		freightModifyModel.Name,
		freightModifyModel.InvoiceNumber,
		publicCode,
		freightModifyModel.ClientID,
		freightModifyModel.DriverID,
		freightModifyModel.ServiceType,
		freightModifyModel.Origin,
		freightModifyModel.Destination,
		freightModifyModel.ScheduledAt,
		initialStatus.String(),
		freightModifyModel.Notes,
	), &freightDB)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, freight.ErrPublicCodeTaken
		}
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return nil, freight.ErrUnknownReference
		}
		return nil, fmt.Errorf("unexpected freight repository create error: %w", err)
	}

	return ToDomain(&freightDB), nil
}

func (r *Repository) GetForUpdate(ctx context.Context, id int64) (*entities.Freight, error) {
	query := `
		SELECT ` + freightColumns + `
		FROM fretes
		WHERE id = $1
		FOR UPDATE`

	var freightDB FreightDB
	err := scanFreight(r.querier.QueryRow(ctx, query, id), &freightDB)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, freight.ErrFreightNotFound
		}
		return nil, fmt.Errorf("unexpected freight repository get error: %w", err)
	}

	return ToDomain(&freightDB), nil
}

// ApplyStatus записывает новый статус и штампует соответствующее ему поле времени.
func (r *Repository) ApplyStatus(ctx context.Context, id int64, next entities.FreightStatusType, stampedAt time.Time) (*entities.Freight, error) {
	builder := qb.
		Update("fretes").
		Set("status_atual", next.String())

	if column := statusTimestampColumn(next); column != "" {
		builder = builder.Set(column, stampedAt)
	}

	builder = builder.Set("data_atualizacao", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + freightColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected freight repository apply status error: %w", err)
	}

	var freightDB FreightDB
	err = scanFreight(r.querier.QueryRow(ctx, query, args...), &freightDB)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, freight.ErrFreightNotFound
		}
		return nil, fmt.Errorf("unexpected freight repository apply status error: %w", err)
	}

	return ToDomain(&freightDB), nil
}

func (r *Repository) InsertHistory(ctx context.Context, historyModifyEntity entities.StatusHistoryModify) error {
	query := `
		INSERT INTO historico_status (frete_id, status_anterior, status_novo, usuario_cpf, observacoes, data_alteracao)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.querier.Exec(
		ctx,
		query,
		historyModifyEntity.FreightID,
		historyModifyEntity.Previous,
		historyModifyEntity.Next,
		historyModifyEntity.ChangedBy,
		historyModifyEntity.Note,
		historyModifyEntity.ChangedAt,
	)
	if err != nil {
		return fmt.Errorf("unexpected freight repository insert history error: %w", err)
	}

	return nil
}

// GetRouteLink возвращает связку маршрута, владеющего фрахтом, и ID водителя маршрута.
func (r *Repository) GetRouteLink(ctx context.Context, freightID int64) (*entities.RouteFreight, int64, error) {
	query := `
		SELECT rf.id, rf.rota_id, rf.frete_id, rf.ordem, rf.status_rota,
		       rf.data_inicio_execucao, rf.data_conclusao_execucao,
		       r.motorista_id
		FROM rota_fretes rf
		JOIN rotas r ON r.id = rf.rota_id
		WHERE rf.frete_id = $1 AND r.ativo
	`

	var linkDB RouteLinkDB
	err := r.querier.QueryRow(ctx, query, freightID).Scan(
		&linkDB.ID,
		&linkDB.RouteID,
		&linkDB.FreightID,
		&linkDB.Order,
		&linkDB.ExecStatus,
		&linkDB.ExecStartedAt,
		&linkDB.ExecCompletedAt,
		&linkDB.RouteDriverID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, 0, freight.ErrFreightNotRouted
		}
		return nil, 0, fmt.Errorf("unexpected freight repository get route link error: %w", err)
	}

	return ToRouteLinkDomain(&linkDB), linkDB.RouteDriverID, nil
}

func (r *Repository) UpdateRouteExecution(ctx context.Context, routeFreightID int64, execStatus entities.RouteExecStatusType, at time.Time) error {
	query := `
		UPDATE rota_fretes
		SET status_rota = $2,
		    data_inicio_execucao = COALESCE(data_inicio_execucao, $3),
		    data_conclusao_execucao = CASE WHEN $2 = 'CONCLUIDO' THEN $3 ELSE data_conclusao_execucao END
		WHERE id = $1
	`

	result, err := r.querier.Exec(ctx, query, routeFreightID, execStatus.String(), at)
	if err != nil {
		return fmt.Errorf("unexpected freight repository update route execution error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return freight.ErrFreightNotRouted
	}

	return nil
}

func (r *Repository) GetActiveByDriver(ctx context.Context, driverID int64) ([]entities.Freight, error) {
	query := `
		SELECT ` + freightColumns + `
		FROM fretes
		WHERE motorista_id = $1
		  AND ativo
		  AND status_atual NOT IN ('FINALIZADO', 'CARREGAMENTO_CONCLUIDO', 'DESCARREGAMENTO_CONCLUIDO')
		ORDER BY data_criacao DESC`

	rows, err := r.querier.Query(ctx, query, driverID)
	if err != nil {
		return nil, fmt.Errorf("unexpected freight repository get active error: %w", err)
	}
	defer rows.Close()

	freightModels := make([]FreightDB, 0, 8)
	for rows.Next() {
		var freightDB FreightDB
		err := scanFreight(rows, &freightDB)
		if err != nil {
			return nil, fmt.Errorf("unexpected freight repository get active error: %w", err)
		}
		freightModels = append(freightModels, freightDB)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected freight repository get active error: %w", err)
	}

	return ToDomainList(freightModels), nil
}

// AppendLocation добавляет точку трека; вставка проходит только если фрахт
// активен и назначен данному водителю.
func (r *Repository) AppendLocation(ctx context.Context, freightID, driverID int64, lat, lng float64, timestamp time.Time) (*entities.FreightLocation, error) {
	query := `
		INSERT INTO pontos_localizacao (frete_id, latitude, longitude, timestamp)
		SELECT f.id, $3, $4, $5
		FROM fretes f
		WHERE f.id = $1 AND f.motorista_id = $2 AND f.ativo
		RETURNING id, frete_id, latitude, longitude, timestamp
	`

	var locationDB FreightLocationDB
	err := r.querier.QueryRow(ctx, query, freightID, driverID, lat, lng, timestamp).Scan(
		&locationDB.ID,
		&locationDB.FreightID,
		&locationDB.Latitude,
		&locationDB.Longitude,
		&locationDB.Timestamp,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, freight.ErrFreightNotFound
		}
		return nil, fmt.Errorf("unexpected freight repository append location error: %w", err)
	}

	return ToFreightLocationDomain(&locationDB), nil
}

func statusTimestampColumn(status entities.FreightStatusType) string {
	switch status {
	case entities.FreightAwaitingLoad:
		return "data_chegada_cd"
	case entities.FreightInTransit:
		return "data_inicio_viagem"
	case entities.FreightUnloadingAtClient:
		return "data_chegada_destino"
	case entities.FreightFinalized:
		return "data_finalizacao"
	case entities.FreightLoadingStarted, entities.FreightUnloadingStarted:
		return "data_inicio_operacao_munck"
	case entities.FreightLoadingDone, entities.FreightUnloadingDone:
		return "data_fim_operacao_munck"
	default:
		return ""
	}
}

func scanFreight(row pgx.Row, freightDB *FreightDB) error {
	return row.Scan(
		&freightDB.ID,
		&freightDB.Name,
		&freightDB.InvoiceNumber,
		&freightDB.PublicCode,
		&freightDB.ClientID,
		&freightDB.DriverID,
		&freightDB.ServiceType,
		&freightDB.Origin,
		&freightDB.Destination,
		&freightDB.ScheduledAt,
		&freightDB.Status,
		&freightDB.ArrivedForLoadAt,
		&freightDB.TripStartedAt,
		&freightDB.ArrivedAtClientAt,
		&freightDB.FinalizedAt,
		&freightDB.CraneStartedAt,
		&freightDB.CraneEndedAt,
		&freightDB.Notes,
		&freightDB.Active,
		&freightDB.CreatedAt,
		&freightDB.UpdatedAt,
	)
}
