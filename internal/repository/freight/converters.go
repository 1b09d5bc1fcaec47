package freight

import "fretes/internal/entities"

func ToDomain(f *FreightDB) *entities.Freight {
	if f == nil {
		return nil
	}
	return &entities.Freight{
		ID:                f.ID,
		Name:              f.Name,
		InvoiceNumber:     f.InvoiceNumber,
		PublicCode:        f.PublicCode,
		ClientID:          f.ClientID,
		DriverID:          f.DriverID,
		ServiceType:       entities.FreightServiceType(f.ServiceType),
		Origin:            f.Origin,
		Destination:       f.Destination,
		ScheduledAt:       f.ScheduledAt,
		Status:            entities.FreightStatusType(f.Status),
		ArrivedForLoadAt:  f.ArrivedForLoadAt,
		TripStartedAt:     f.TripStartedAt,
		ArrivedAtClientAt: f.ArrivedAtClientAt,
		FinalizedAt:       f.FinalizedAt,
		CraneStartedAt:    f.CraneStartedAt,
		CraneEndedAt:      f.CraneEndedAt,
		Notes:             f.Notes,
		Active:            f.Active,
		CreatedAt:         f.CreatedAt,
		UpdatedAt:         f.UpdatedAt,
	}
}

func ToDomainList(models []FreightDB) []entities.Freight {
	freights := make([]entities.Freight, 0, len(models))
	for i := range models {
		freights = append(freights, *ToDomain(&models[i]))
	}
	return freights
}

func FromDomainModify(f *entities.FreightModify) *FreightModifyDB {
	if f == nil {
		return nil
	}
	freightModifyDB := &FreightModifyDB{
		ID:            f.ID,
		Name:          f.Name,
		InvoiceNumber: f.InvoiceNumber,
		ClientID:      f.ClientID,
		DriverID:      f.DriverID,
		Origin:        f.Origin,
		Destination:   f.Destination,
		ScheduledAt:   f.ScheduledAt,
		Notes:         f.Notes,
	}

	if f.ServiceType != nil {
		serviceType := f.ServiceType.String()
		freightModifyDB.ServiceType = &serviceType
	}

	return freightModifyDB
}

func ToRouteLinkDomain(l *RouteLinkDB) *entities.RouteFreight {
	if l == nil {
		return nil
	}
	return &entities.RouteFreight{
		ID:              l.ID,
		RouteID:         l.RouteID,
		FreightID:       l.FreightID,
		Order:           l.Order,
		ExecStatus:      entities.RouteExecStatusType(l.ExecStatus),
		ExecStartedAt:   l.ExecStartedAt,
		ExecCompletedAt: l.ExecCompletedAt,
	}
}

func ToFreightLocationDomain(l *FreightLocationDB) *entities.FreightLocation {
	if l == nil {
		return nil
	}
	return &entities.FreightLocation{
		ID:        l.ID,
		FreightID: l.FreightID,
		Latitude:  l.Latitude,
		Longitude: l.Longitude,
		Timestamp: l.Timestamp,
	}
}
