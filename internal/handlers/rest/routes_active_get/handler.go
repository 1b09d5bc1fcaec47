package routes_active_get

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

	routeEntities, err := h.service.ActiveRoutesForDriver(r.Context(), cpf)
	if err != nil {
		switch {
		case errors.Is(err, driver.ErrInvalidCPF):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, driver.ErrDriverNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, driver.ErrDriverInactive):
			w.WriteHeader(http.StatusForbidden)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	routeDTOs := make([]dto.Route, len(routeEntities))
	for i, route := range routeEntities {
		routeDTOs[i].ID = route.ID
		routeDTOs[i].Nome = route.Name
		routeDTOs[i].MotoristaID = route.DriverID
		routeDTOs[i].Status = route.Status.String()
		routeDTOs[i].DataInicio = route.StartedAt
		routeDTOs[i].DataConclusao = route.CompletedAt
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(routeDTOs)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
