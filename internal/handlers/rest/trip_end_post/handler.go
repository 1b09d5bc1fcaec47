package trip_end_post

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
	var tripEndDTO dto.TripEnd
	err := json.NewDecoder(r.Body).Decode(&tripEndDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	ended, err := h.service.EndTrip(r.Context(), tripEndDTO.CPF, tripEndDTO.Latitude, tripEndDTO.Longitude, tripEndDTO.DistanceKm)
	if err != nil {
		switch {
		case errors.Is(err, driver.ErrInvalidCPF),
			errors.Is(err, trip.ErrInvalidLatitude),
			errors.Is(err, trip.ErrInvalidLongitude),
			errors.Is(err, trip.ErrInvalidDistance):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, driver.ErrDriverNotFound),
			errors.Is(err, trip.ErrNoActiveTrip):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, driver.ErrDriverInactive):
			w.WriteHeader(http.StatusForbidden)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	tripDTO := dto.Trip{
		ID:              ended.ID,
		DriverID:        ended.DriverID,
		Status:          ended.Status.String(),
		StartLatitude:   ended.StartLatitude,
		StartLongitude:  ended.StartLongitude,
		EndLatitude:     ended.EndLatitude,
		EndLongitude:    ended.EndLongitude,
		DistanceKm:      ended.DistanceKm,
		DurationMinutes: ended.DurationMinutes,
		StartedAt:       ended.StartedAt,
		CompletedAt:     ended.CompletedAt,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(tripDTO)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
