package freights_active_get

import (
	"encoding/json"
	"errors"
	"net/http"

	"fretes/internal/entities"
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

	freightEntities, err := h.service.ActiveFreightsForDriver(r.Context(), cpf)
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

	freightDTOs := make([]dto.Freight, len(freightEntities))
	for i := range freightEntities {
		freightDTOs[i] = toFreightDTO(&freightEntities[i])
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(freightDTOs)
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
