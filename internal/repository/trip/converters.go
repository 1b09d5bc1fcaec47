package trip

import "fretes/internal/entities"

func ToDomain(t *TripDB) *entities.DriverTrip {
	if t == nil {
		return nil
	}
	return &entities.DriverTrip{
		ID:               t.ID,
		DriverID:         t.DriverID,
		StartLatitude:    t.StartLatitude,
		StartLongitude:   t.StartLongitude,
		CurrentLatitude:  t.CurrentLatitude,
		CurrentLongitude: t.CurrentLongitude,
		EndLatitude:      t.EndLatitude,
		EndLongitude:     t.EndLongitude,
		Status:           entities.TripStatusType(t.Status),
		DistanceKm:       t.DistanceKm,
		DurationMinutes:  t.DurationMinutes,
		StartedAt:        t.StartedAt,
		CompletedAt:      t.CompletedAt,
		CreatedAt:        t.CreatedAt,
		UpdatedAt:        t.UpdatedAt,
	}
}

func FromDomainModify(t *entities.DriverTripModify) *TripModifyDB {
	if t == nil {
		return nil
	}
	tripModifyDB := &TripModifyDB{
		ID:               t.ID,
		EndLatitude:      t.EndLatitude,
		EndLongitude:     t.EndLongitude,
		CurrentLatitude:  t.CurrentLatitude,
		CurrentLongitude: t.CurrentLongitude,
		DistanceKm:       t.DistanceKm,
		DurationMinutes:  t.DurationMinutes,
		CompletedAt:      t.CompletedAt,
	}

	if t.Status != nil {
		status := t.Status.String()
		tripModifyDB.Status = &status
	}

	return tripModifyDB
}

func ToLocationDomain(l *LocationDB) *entities.DriverLocation {
	if l == nil {
		return nil
	}
	return &entities.DriverLocation{
		ID:           l.ID,
		DriverID:     l.DriverID,
		Latitude:     l.Latitude,
		Longitude:    l.Longitude,
		Accuracy:     l.Accuracy,
		Speed:        l.Speed,
		BatteryLevel: l.BatteryLevel,
		Timestamp:    l.Timestamp,
		CreatedAt:    l.CreatedAt,
	}
}
