package route

import "fretes/internal/entities"

func ToDomain(r *RouteDB) *entities.Route {
	if r == nil {
		return nil
	}
	return &entities.Route{
		ID:          r.ID,
		Name:        r.Name,
		DriverID:    r.DriverID,
		Status:      entities.RouteStatusType(r.Status),
		StartedAt:   r.StartedAt,
		CompletedAt: r.CompletedAt,
		Active:      r.Active,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func ToDomainList(models []RouteDB) []entities.Route {
	routes := make([]entities.Route, 0, len(models))
	for i := range models {
		routes = append(routes, *ToDomain(&models[i]))
	}
	return routes
}

func ToProgressItemsDomain(models []ProgressItemDB) []entities.RouteProgressItem {
	items := make([]entities.RouteProgressItem, 0, len(models))
	for _, m := range models {
		items = append(items, entities.RouteProgressItem{
			FreightID:       m.FreightID,
			FreightName:     m.FreightName,
			PublicCode:      m.PublicCode,
			ServiceType:     entities.FreightServiceType(m.ServiceType),
			Status:          entities.FreightStatusType(m.Status),
			Order:           m.Order,
			ExecStatus:      entities.RouteExecStatusType(m.ExecStatus),
			ExecStartedAt:   m.ExecStartedAt,
			ExecCompletedAt: m.ExecCompletedAt,
		})
	}
	return items
}
