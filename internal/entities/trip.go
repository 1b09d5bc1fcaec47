package entities

import "time"

type TripStatusType string

const (
	TripStarted   TripStatusType = "started"
	TripCompleted TripStatusType = "completed"
	TripCancelled TripStatusType = "cancelled"
)

func (t TripStatusType) String() string {
	return string(t)
}

type DriverTrip struct {
	ID               int64
	DriverID         int64
	StartLatitude    float64
	StartLongitude   float64
	CurrentLatitude  float64
	CurrentLongitude float64
	EndLatitude      *float64
	EndLongitude     *float64
	Status           TripStatusType
	DistanceKm       *float64
	DurationMinutes  *int
	StartedAt        time.Time
	CompletedAt      *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// ActivitySnapshot агрегаты для фоновых метрик активности водителей.
type ActivitySnapshot struct {
	ActiveDrivers int64
	OpenTrips     int64
}

type DriverTripModify struct {
	ID               *int64
	EndLatitude      *float64
	EndLongitude     *float64
	CurrentLatitude  *float64
	CurrentLongitude *float64
	Status           *TripStatusType
	DistanceKm       *float64
	DurationMinutes  *int
	CompletedAt      *time.Time
}
