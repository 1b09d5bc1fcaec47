package route_complete_post

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"fretes/internal/generated/dto"
	"fretes/internal/service/driver"
	"fretes/internal/service/route"
	"fretes/pkg/logger"
	"github.com/gorilla/mux"
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
	idStr := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var routeActionDTO dto.RouteAction
	err = json.NewDecoder(r.Body).Decode(&routeActionDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	completed, err := h.service.CompleteRoute(r.Context(), id, routeActionDTO.CPF)
	if err != nil {
		switch {
		case errors.Is(err, route.ErrInvalidRouteID),
			errors.Is(err, driver.ErrInvalidCPF),
			errors.Is(err, route.ErrRouteNotInProgress),
			errors.Is(err, route.ErrRouteHasUnfinishedFreights):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, route.ErrRouteNotFound),
			errors.Is(err, driver.ErrDriverNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, driver.ErrDriverInactive),
			errors.Is(err, route.ErrRouteNotOwned):
			w.WriteHeader(http.StatusForbidden)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	routeDTO := dto.Route{
		ID:            completed.ID,
		Nome:          completed.Name,
		MotoristaID:   completed.DriverID,
		Status:        completed.Status.String(),
		DataInicio:    completed.StartedAt,
		DataConclusao: completed.CompletedAt,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(routeDTO)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
