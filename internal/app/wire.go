//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"time"

	"fretes/internal/gateway/kafka/statusevents"
	driver_check_get "fretes/internal/handlers/rest/driver_check_get"
	driver_post "fretes/internal/handlers/rest/driver_post"
	driver_put "fretes/internal/handlers/rest/driver_put"
	freight_post "fretes/internal/handlers/rest/freight_post"
	freight_status_post "fretes/internal/handlers/rest/freight_status_post"
	freights_active_get "fretes/internal/handlers/rest/freights_active_get"
	location_post "fretes/internal/handlers/rest/location_post"
	route_complete_post "fretes/internal/handlers/rest/route_complete_post"
	route_progress_get "fretes/internal/handlers/rest/route_progress_get"
	route_start_post "fretes/internal/handlers/rest/route_start_post"
	routes_active_get "fretes/internal/handlers/rest/routes_active_get"
	trip_end_post "fretes/internal/handlers/rest/trip_end_post"
	trip_start_post "fretes/internal/handlers/rest/trip_start_post"
	"fretes/internal/handlers/tasks/driver_activity"
	"fretes/internal/pkg/config"
	"fretes/internal/pkg/kafka"

	driverRepo "fretes/internal/repository/driver"
	freightRepo "fretes/internal/repository/freight"
	routeRepo "fretes/internal/repository/route"
	tripRepo "fretes/internal/repository/trip"
	driverService "fretes/internal/service/driver"
	freightService "fretes/internal/service/freight"
	routeService "fretes/internal/service/route"
	tripService "fretes/internal/service/trip"

	"fretes/pkg/background"
	"fretes/pkg/logger"
	"fretes/pkg/querier"
	"fretes/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

type (
	ActivityInterval time.Duration
	ActivityWindow   time.Duration
)

type Application struct {
	ServiceDriver     ServiceDriver
	ServiceTrip       ServiceTrip
	ServiceFreight    ServiceFreight
	ServiceRoute      ServiceRoute
	BackgroundWorkers *background.Worker
}

type ServiceDriver interface {
	driver_check_get.Service
	driver_post.Service
	driver_put.Service
}

type ServiceTrip interface {
	location_post.Service
	trip_start_post.Service
	trip_end_post.Service
}

type ServiceFreight interface {
	freight_post.Service
	freights_active_get.Service
	freight_status_post.Service
}

type ServiceRoute interface {
	routes_active_get.Service
	route_start_post.Service
	route_complete_post.Service
	route_progress_get.Service
}

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	producer *kafka.Producer,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideActivityInterval,
		provideActivityWindow,

		provideDriverRepository,
		provideTripRepository,
		provideFreightRepository,
		provideRouteRepository,

		provideServiceDriver,
		provideServiceTrip,
		provideServiceFreight,
		provideServiceRoute,
		provideStatusEventsGateway,

		provideDriverActivityTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceDriver), new(*driverService.Driver)),
		wire.Bind(new(ServiceTrip), new(*tripService.Trip)),
		wire.Bind(new(ServiceFreight), new(*freightService.Freight)),
		wire.Bind(new(ServiceRoute), new(*routeService.Route)),

		wire.Bind(new(driverService.Repository), new(*driverRepo.Repository)),
		wire.Bind(new(tripService.Repository), new(*tripRepo.Repository)),
		wire.Bind(new(freightService.Repository), new(*freightRepo.Repository)),
		wire.Bind(new(routeService.Repository), new(*routeRepo.Repository)),

		wire.Bind(new(tripService.DriverService), new(*driverService.Driver)),
		wire.Bind(new(freightService.DriverService), new(*driverService.Driver)),
		wire.Bind(new(routeService.DriverService), new(*driverService.Driver)),
		wire.Bind(new(tripService.FreightService), new(*freightService.Freight)),
		wire.Bind(new(freightService.EventPublisher), new(*statusevents.Gateway)),

		wire.Bind(new(tripService.TxManager), new(*tx.Manager)),
		wire.Bind(new(freightService.TxManager), new(*tx.Manager)),
		wire.Bind(new(routeService.TxManager), new(*tx.Manager)),

		wire.Bind(new(driver_activity.Service), new(*tripService.Trip)),
	)
	return &Application{}, nil
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideDriverRepository(querier *querier.Querier) *driverRepo.Repository {
	return driverRepo.New(querier)
}

func provideTripRepository(querier *querier.Querier) *tripRepo.Repository {
	return tripRepo.New(querier)
}

func provideFreightRepository(querier *querier.Querier) *freightRepo.Repository {
	return freightRepo.New(querier)
}

func provideRouteRepository(querier *querier.Querier) *routeRepo.Repository {
	return routeRepo.New(querier)
}

func provideServiceDriver(repository driverService.Repository) *driverService.Driver {
	return driverService.New(repository)
}

func provideServiceTrip(
	repository tripService.Repository,
	drivers tripService.DriverService,
	freights tripService.FreightService,
	txManager tripService.TxManager,
) *tripService.Trip {
	return tripService.New(repository, drivers, freights, txManager)
}

func provideServiceFreight(
	repository freightService.Repository,
	drivers freightService.DriverService,
	publisher freightService.EventPublisher,
	txManager freightService.TxManager,
) *freightService.Freight {
	return freightService.New(repository, drivers, publisher, txManager)
}

func provideServiceRoute(
	repository routeService.Repository,
	drivers routeService.DriverService,
	txManager routeService.TxManager,
) *routeService.Route {
	return routeService.New(repository, drivers, txManager)
}

func provideStatusEventsGateway(log logger.Logger, producer *kafka.Producer, cfg *config.Config) *statusevents.Gateway {
	return statusevents.New(log, producer, cfg.Kafka.Topic)
}

func provideActivityInterval(cfg *config.Config) ActivityInterval {
	return ActivityInterval(cfg.Tasks.DriverActivityInterval)
}

func provideActivityWindow(cfg *config.Config) ActivityWindow {
	return ActivityWindow(cfg.Tasks.DriverActivityWindow)
}

func provideDriverActivityTask(
	log logger.Logger,
	tripService driver_activity.Service,
	interval ActivityInterval,
	window ActivityWindow,
) *driver_activity.DriverActivity {
	return driver_activity.NewDriverActivity(log, tripService, time.Duration(interval), time.Duration(window))
}

func provideTaskList(
	driverActivityTask *driver_activity.DriverActivity,
) []background.Task {
	return []background.Task{
		driverActivityTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
