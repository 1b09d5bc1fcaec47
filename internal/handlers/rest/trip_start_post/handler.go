package trip_start_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"fretes/internal/generated/dto"
	"fretes/internal/service/driver"
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
	var tripStartDTO dto.TripStart
	err := json.NewDecoder(r.Body).Decode(&tripStartDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	started, err := h.service.StartTrip(r.Context(), tripStartDTO.CPF, tripStartDTO.Latitude, tripStartDTO.Longitude)
	if err != nil {
		switch {
		case errors.Is(err, driver.ErrInvalidCPF),
			errors.Is(err, trip.ErrInvalidLatitude),
			errors.Is(err, trip.ErrInvalidLongitude):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, driver.ErrDriverNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, driver.ErrDriverInactive):
			w.WriteHeader(http.StatusForbidden)
		case errors.Is(err, trip.ErrTripAlreadyActive):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	tripDTO := dto.Trip{
		ID:             started.ID,
		DriverID:       started.DriverID,
		Status:         started.Status.String(),
		StartLatitude:  started.StartLatitude,
		StartLongitude: started.StartLongitude,
		StartedAt:      started.StartedAt,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(tripDTO)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
