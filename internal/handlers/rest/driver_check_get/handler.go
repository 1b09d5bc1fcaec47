package driver_check_get

import (
	"encoding/json"
	"errors"
	"net/http"

	"fretes/internal/generated/dto"
	"fretes/internal/service/driver"
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
	cpf := r.URL.Query().Get("cpf")
	if cpf == "" {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	check, err := h.service.CheckDriver(r.Context(), cpf)
	if err != nil {
		switch {
		case errors.Is(err, driver.ErrInvalidCPF):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	checkDTO := dto.DriverCheckResponse{
		CPF:          check.CPF,
		Registered:   check.Registered,
		LastActivity: check.LastActivity,
	}
	if check.Driver != nil {
		checkDTO.Driver = &dto.Driver{
			ID:        check.Driver.ID,
			CPF:       check.Driver.CPF,
			Name:      check.Driver.Name,
			Phone:     check.Driver.Phone,
			IsActive:  check.Driver.Active,
			CreatedAt: check.Driver.CreatedAt,
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(checkDTO)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
