package entities

import (
	"time"
)

type Driver struct {
	ID        int64
	CPF       string
	Name      string
	Phone     string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

type DriverModify struct {
	ID     *int64
	CPF    *string
	Name   *string
	Phone  *string
	Active *bool
}

// DriverCheck результат проверки регистрации по CPF.
type DriverCheck struct {
	CPF          string
	Registered   bool
	Driver       *Driver
	LastActivity *time.Time
}
