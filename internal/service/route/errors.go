package route

import "errors"

var (
	ErrInvalidRouteID = errors.New("invalid route id")

	ErrRouteNotFound              = errors.New("route not found")
	ErrRouteNotOwned              = errors.New("route belongs to another driver")
	ErrRouteNotPlanned            = errors.New("route is not in planned status")
	ErrRouteNotInProgress         = errors.New("route is not in progress")
	ErrRouteHasUnfinishedFreights = errors.New("route has unfinished freights")
)
