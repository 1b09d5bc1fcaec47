package entities

import "time"

// StatusHistory append-only запись аудита перехода статуса фрахта.
type StatusHistory struct {
	ID        int64
	FreightID int64
	Previous  FreightStatusType
	Next      FreightStatusType
	ChangedBy *string
	Note      *string
	ChangedAt time.Time
}

type StatusHistoryModify struct {
	FreightID *int64
	Previous  *FreightStatusType
	Next      *FreightStatusType
	ChangedBy *string
	Note      *string
	ChangedAt *time.Time
}
