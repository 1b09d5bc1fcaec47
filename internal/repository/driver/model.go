package driver

import "time"

type DriverDB struct {
	ID        int64
	CPF       string
	Name      string
	Phone     string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

type DriverModifyDB struct {
	ID     *int64
	CPF    *string
	Name   *string
	Phone  *string
	Active *bool
}
