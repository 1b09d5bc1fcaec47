package entities

import "time"

type DriverLocation struct {
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

// LocationSample входные данные одного замера позиции.
type LocationSample struct {
	Latitude     float64
	Longitude    float64
	Accuracy     *float64
	Speed        *float64
	BatteryLevel *int
	FreightID    *int64
}

// FreightLocation точка трека конкретного фрахта.
type FreightLocation struct {
	ID        int64
	FreightID int64
	Latitude  float64
	Longitude float64
	Timestamp time.Time
}
