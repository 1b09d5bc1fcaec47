package route_progress_get

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

	cpf := r.URL.Query().Get("cpf")
	if cpf == "" {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	progress, err := h.service.Progress(r.Context(), id, cpf)
	if err != nil {
		switch {
		case errors.Is(err, route.ErrInvalidRouteID),
			errors.Is(err, driver.ErrInvalidCPF):
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

	items := make([]dto.RouteProgressItem, len(progress.Items))
	for i, item := range progress.Items {
		items[i] = dto.RouteProgressItem{
			FreteID:               item.FreightID,
			NomeFrete:             item.FreightName,
			CodigoPublico:         item.PublicCode,
			TipoServico:           item.ServiceType.String(),
			Status:                item.Status.String(),
			Ordem:                 item.Order,
			StatusRota:            item.ExecStatus.String(),
			DataInicioExecucao:    item.ExecStartedAt,
			DataConclusaoExecucao: item.ExecCompletedAt,
		}
	}

	progressDTO := dto.RouteProgress{
		RotaID:              progress.RouteID,
		Nome:                progress.Name,
		Status:              progress.Status.String(),
		DataInicio:          progress.StartedAt,
		DataConclusao:       progress.CompletedAt,
		TotalFretes:         progress.Total,
		FretesConcluidos:    progress.Done,
		PercentualConclusao: progress.Percent,
		Fretes:              items,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(progressDTO)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
