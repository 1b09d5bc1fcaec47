package freight_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"fretes/internal/entities"
	"fretes/internal/generated/dto"
	"fretes/internal/service/freight"
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
	var freightCreateDTO dto.FreightCreate
	err := json.NewDecoder(r.Body).Decode(&freightCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	serviceType := entities.FreightServiceType(freightCreateDTO.TipoServico)
	freightModifyEntity := entities.FreightModify{
		Name:          &freightCreateDTO.NomeFrete,
		InvoiceNumber: freightCreateDTO.NumeroNotaFiscal,
		ClientID:      &freightCreateDTO.ClienteID,
		DriverID:      freightCreateDTO.MotoristaID,
		ServiceType:   &serviceType,
		Origin:        &freightCreateDTO.Origem,
		Destination:   &freightCreateDTO.Destino,
		ScheduledAt:   freightCreateDTO.DataAgendamento,
		Notes:         freightCreateDTO.Observacoes,
	}

	freightEntity, err := h.service.CreateFreight(r.Context(), freightModifyEntity)
	if err != nil {
		switch {
		case errors.Is(err, freight.ErrMissingRequiredFields),
			errors.Is(err, freight.ErrInvalidServiceType):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, freight.ErrUnknownReference):
			w.WriteHeader(http.StatusUnprocessableEntity)
		case errors.Is(err, freight.ErrPublicCodeTaken):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.FreightCreateResponse{
		ID:            freightEntity.ID,
		CodigoPublico: freightEntity.PublicCode,
		StatusAtual:   freightEntity.Status.String(),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
