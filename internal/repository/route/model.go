package route

import "time"

type RouteDB struct {
	ID          int64
	Name        string
	DriverID    int64
	Status      string
	StartedAt   *time.Time
	CompletedAt *time.Time
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type ProgressItemDB struct {
	FreightID       int64
	FreightName     string
	PublicCode      string
	ServiceType     string
	Status          string
	Order           int
	ExecStatus      string
	ExecStartedAt   *time.Time
	ExecCompletedAt *time.Time
}
