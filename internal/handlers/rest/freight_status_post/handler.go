package freight_status_post

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"fretes/internal/entities"
	"fretes/internal/generated/dto"
	"fretes/internal/service/driver"
	"fretes/internal/service/freight"
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

	var statusUpdateDTO dto.FreightStatusUpdate
	err = json.NewDecoder(r.Body).Decode(&statusUpdateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	next := entities.FreightStatusType(statusUpdateDTO.Status)

	updated, err := h.service.AdvanceStatus(r.Context(), id, statusUpdateDTO.CPF, next, statusUpdateDTO.Observacoes)
	if err != nil {
		var illegalTransition *freight.IllegalTransitionError
		switch {
		case errors.Is(err, freight.ErrInvalidFreightID),
			errors.Is(err, freight.ErrInvalidStatus),
			errors.Is(err, driver.ErrInvalidCPF),
			errors.As(err, &illegalTransition):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, freight.ErrFreightNotFound),
			errors.Is(err, driver.ErrDriverNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, driver.ErrDriverInactive),
			errors.Is(err, freight.ErrFreightNotOwned),
			errors.Is(err, freight.ErrFreightNotRouted):
			w.WriteHeader(http.StatusForbidden)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	freightDTO := toFreightDTO(updated)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(freightDTO)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func toFreightDTO(f *entities.Freight) dto.Freight {
	return dto.Freight{
		ID:                     f.ID,
		NomeFrete:              f.Name,
		NumeroNotaFiscal:       f.InvoiceNumber,
		CodigoPublico:          f.PublicCode,
		ClienteID:              f.ClientID,
		MotoristaID:            f.DriverID,
		TipoServico:            f.ServiceType.String(),
		Origem:                 f.Origin,
		Destino:                f.Destination,
		DataAgendamento:        f.ScheduledAt,
		StatusAtual:            f.Status.String(),
		DataChegadaCD:          f.ArrivedForLoadAt,
		DataInicioViagem:       f.TripStartedAt,
		DataChegadaDestino:     f.ArrivedAtClientAt,
		DataFinalizacao:        f.FinalizedAt,
		DataInicioOperacaoMunk: f.CraneStartedAt,
		DataFimOperacaoMunk:    f.CraneEndedAt,
		Observacoes:            f.Notes,
		Ativo:                  f.Active,
	}
}
