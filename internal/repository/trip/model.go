package trip

import "time"

type TripDB struct {
	ID               int64
	DriverID         int64
	StartLatitude    float64
	StartLongitude   float64
	CurrentLatitude  float64
	CurrentLongitude float64
	EndLatitude      *float64
	EndLongitude     *float64
	Status           string
	DistanceKm       *float64
	DurationMinutes  *int
	StartedAt        time.Time
	CompletedAt      *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

type TripModifyDB struct {
	ID               *int64
	EndLatitude      *float64
	EndLongitude     *float64
	CurrentLatitude  *float64
	CurrentLongitude *float64
	Status           *string
	DistanceKm       *float64
	DurationMinutes  *int
	CompletedAt      *time.Time
}

type LocationDB struct {
	ID           int64
	DriverID     int64
	Latitude     float64
	Longitude    float64
	Accuracy     *float64
	Speed        *float64
	BatteryLevel *int
	Timestamp    time.Time
	CreatedAt    time.Time
}
