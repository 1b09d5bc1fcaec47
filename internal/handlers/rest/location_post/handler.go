package location_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"fretes/internal/entities"
	"fretes/internal/generated/dto"
	"fretes/internal/service/driver"
	"fretes/internal/service/freight"
	"fretes/internal/service/trip"
	"fretes/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var locationCreateDTO dto.LocationCreate
	err := json.NewDecoder(r.Body).Decode(&locationCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	sample := entities.LocationSample{
		Latitude:     locationCreateDTO.Latitude,
		Longitude:    locationCreateDTO.Longitude,
		Accuracy:     locationCreateDTO.Accuracy,
		Speed:        locationCreateDTO.Speed,
		BatteryLevel: locationCreateDTO.BatteryLevel,
		FreightID:    locationCreateDTO.FreteID,
	}

	location, err := h.service.RecordLocation(r.Context(), locationCreateDTO.CPF, sample)
	if err != nil {
		switch {
		case errors.Is(err, driver.ErrInvalidCPF),
			errors.Is(err, trip.ErrInvalidLatitude),
			errors.Is(err, trip.ErrInvalidLongitude),
			errors.Is(err, trip.ErrInvalidSpeed),
			errors.Is(err, trip.ErrInvalidBattery):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, driver.ErrDriverNotFound),
			errors.Is(err, freight.ErrFreightNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, driver.ErrDriverInactive):
			w.WriteHeader(http.StatusForbidden)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	locationDTO := dto.Location{
		ID:        location.ID,
		DriverID:  location.DriverID,
		Latitude:  location.Latitude,
		Longitude: location.Longitude,
		Timestamp: location.Timestamp,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(locationDTO)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
