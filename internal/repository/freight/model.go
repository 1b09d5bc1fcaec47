package freight

import "time"

type FreightDB struct {
	ID                int64
	Name              string
	InvoiceNumber     *string
	PublicCode        string
	ClientID          int64
	DriverID          *int64
	ServiceType       string
	Origin            string
	Destination       string
	ScheduledAt       *time.Time
	Status            string
	ArrivedForLoadAt  *time.Time
	TripStartedAt     *time.Time
	ArrivedAtClientAt *time.Time
	FinalizedAt       *time.Time
	CraneStartedAt    *time.Time
	CraneEndedAt      *time.Time
	Notes             *string
	Active            bool
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

type FreightModifyDB struct {
	ID            *int64
	Name          *string
	InvoiceNumber *string
	ClientID      *int64
	DriverID      *int64
	ServiceType   *string
	Origin        *string
	Destination   *string
	ScheduledAt   *time.Time
	Notes         *string
}

type RouteLinkDB struct {
	ID              int64
	RouteID         int64
	FreightID       int64
	Order           int
	ExecStatus      string
	ExecStartedAt   *time.Time
	ExecCompletedAt *time.Time
	RouteDriverID   int64
}

type FreightLocationDB struct {
	ID        int64
	FreightID int64
	Latitude  float64
	Longitude float64
	Timestamp time.Time
}
