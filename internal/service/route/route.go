package route

import (
	"context"
	"fmt"
	"time"

	"fretes/internal/entities"
)

type Route struct {
	repository    Repository
	driverService DriverService
	txManager     TxManager
}

func New(repository Repository, driverService DriverService, txManager TxManager) *Route {
	return &Route{
		repository:    repository,
		driverService: driverService,
		txManager:     txManager,
	}
}

// StartRoute переводит маршрут в EM_ANDAMENTO и взводит первый фрахт.
// Если первый фрахт уже не PENDENTE, взвод ничего не меняет.
func (s *Route) StartRoute(ctx context.Context, routeID int64, cpf string) (*entities.Route, error) {
	if routeID <= 0 {
		return nil, ErrInvalidRouteID
	}

	driver, err := s.driverService.GetActiveDriver(ctx, cpf)
	if err != nil {
		return nil, fmt.Errorf("start route: %w", err)
	}

	var started *entities.Route
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		route, err := s.repository.GetForUpdate(ctx, routeID)
		if err != nil {
			return err
		}

		if route.DriverID != driver.ID {
			return ErrRouteNotOwned
		}
		if route.Status != entities.RoutePlanned {
			return ErrRouteNotPlanned
		}

		now := time.Now()

		started, err = s.repository.Start(ctx, routeID, now)
		if err != nil {
			return err
		}

		return s.repository.ArmFirstFreight(ctx, routeID, now)
	})
	if err != nil {
		return nil, fmt.Errorf("start route: %w", err)
	}

	return started, nil
}

func (s *Route) CompleteRoute(ctx context.Context, routeID int64, cpf string) (*entities.Route, error) {
	if routeID <= 0 {
		return nil, ErrInvalidRouteID
	}

	driver, err := s.driverService.GetActiveDriver(ctx, cpf)
	if err != nil {
		return nil, fmt.Errorf("complete route: %w", err)
	}

	var completed *entities.Route
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		route, err := s.repository.GetForUpdate(ctx, routeID)
		if err != nil {
			return err
		}

		if route.DriverID != driver.ID {
			return ErrRouteNotOwned
		}
		if route.Status != entities.RouteInProgress {
			return ErrRouteNotInProgress
		}

		unfinished, err := s.repository.CountUnfinished(ctx, routeID)
		if err != nil {
			return err
		}
		if unfinished > 0 {
			return fmt.Errorf("%d freights left: %w", unfinished, ErrRouteHasUnfinishedFreights)
		}

		completed, err = s.repository.Complete(ctx, routeID, time.Now())
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("complete route: %w", err)
	}

	return completed, nil
}

func (s *Route) Progress(ctx context.Context, routeID int64, cpf string) (*entities.RouteProgress, error) {
	if routeID <= 0 {
		return nil, ErrInvalidRouteID
	}

	driver, err := s.driverService.GetActiveDriver(ctx, cpf)
	if err != nil {
		return nil, fmt.Errorf("route progress: %w", err)
	}

	route, err := s.repository.GetByID(ctx, routeID)
	if err != nil {
		return nil, fmt.Errorf("route progress: %w", err)
	}

	if route.DriverID != driver.ID {
		return nil, ErrRouteNotOwned
	}

	items, err := s.repository.GetProgressItems(ctx, routeID)
	if err != nil {
		return nil, fmt.Errorf("route progress: %w", err)
	}

	progress := &entities.RouteProgress{
		RouteID:     route.ID,
		Name:        route.Name,
		Status:      route.Status,
		StartedAt:   route.StartedAt,
		CompletedAt: route.CompletedAt,
		Items:       items,
	}
	progress.Recalculate()

	return progress, nil
}

func (s *Route) ActiveRoutesForDriver(ctx context.Context, cpf string) ([]entities.Route, error) {
	driver, err := s.driverService.GetActiveDriver(ctx, cpf)
	if err != nil {
		return nil, fmt.Errorf("get active routes: %w", err)
	}

	routes, err := s.repository.GetActiveByDriver(ctx, driver.ID)
	if err != nil {
		return nil, fmt.Errorf("get active routes: %w", err)
	}

	return routes, nil
}
