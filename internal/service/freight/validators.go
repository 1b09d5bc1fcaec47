package freight

import (
	"strings"

	"fretes/internal/entities"
)

func isValidName(name string) bool {
	return strings.TrimSpace(name) != ""
}

func isKnownStatus(status entities.FreightStatusType) bool {
	switch status {
	case entities.FreightNotStarted,
		entities.FreightAwaitingLoad,
		entities.FreightInTransit,
		entities.FreightUnloadingAtClient,
		entities.FreightFinalized,
		entities.FreightLoadingNotStarted,
		entities.FreightLoadingStarted,
		entities.FreightLoadingDone,
		entities.FreightUnloadingNotStarted,
		entities.FreightUnloadingStarted,
		entities.FreightUnloadingDone:
		return true
	default:
		return false
	}
}
