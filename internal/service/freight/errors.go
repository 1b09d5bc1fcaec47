package freight

import (
	"errors"
	"fmt"

	"fretes/internal/entities"
)

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidFreightID      = errors.New("invalid freight id")
	ErrInvalidServiceType    = errors.New("invalid service type")
	ErrInvalidStatus         = errors.New("invalid status")

	ErrFreightNotFound  = errors.New("freight not found")
	ErrFreightNotRouted = errors.New("freight is not part of an active route")
	ErrFreightNotOwned  = errors.New("freight route belongs to another driver")
	ErrPublicCodeTaken  = errors.New("public code already taken")
	ErrUnknownReference = errors.New("referenced entity does not exist")
)

// IllegalTransitionError переход, отсутствующий в таблице переходов типа услуги.
type IllegalTransitionError struct {
	ServiceType entities.FreightServiceType
	From        entities.FreightStatusType
	To          entities.FreightStatusType
}

func (e *IllegalTransitionError) Error() string {
	return fmt.Sprintf("illegal transition %s -> %s for service type %s", e.From, e.To, e.ServiceType)
}
