package trip

import "errors"

var (
	ErrInvalidLatitude  = errors.New("invalid latitude")
	ErrInvalidLongitude = errors.New("invalid longitude")
	ErrInvalidSpeed     = errors.New("invalid speed")
	ErrInvalidBattery   = errors.New("invalid battery level")
	ErrInvalidDistance  = errors.New("invalid distance")

	ErrTripAlreadyActive = errors.New("driver already has an active trip")
	ErrNoActiveTrip      = errors.New("driver has no active trip")
)
