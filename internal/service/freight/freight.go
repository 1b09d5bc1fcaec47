package freight

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"fretes/internal/entities"
)

const (
	publicCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	publicCodeLength   = 8
	publicCodeAttempts = 5
)

type Freight struct {
	repository    Repository
	driverService DriverService
	publisher     EventPublisher
	txManager     TxManager
}

func New(
	repository Repository,
	driverService DriverService,
	publisher EventPublisher,
	txManager TxManager,
) *Freight {
	return &Freight{
		repository:    repository,
		driverService: driverService,
		publisher:     publisher,
		txManager:     txManager,
	}
}

func (s *Freight) CreateFreight(ctx context.Context, freightModify entities.FreightModify) (*entities.Freight, error) {
	if freightModify.Name == nil ||
		freightModify.ClientID == nil ||
		freightModify.ServiceType == nil ||
		freightModify.Origin == nil ||
		freightModify.Destination == nil {
		return nil, ErrMissingRequiredFields
	}

	if !isValidName(*freightModify.Name) {
		return nil, ErrMissingRequiredFields
	}
	if !freightModify.ServiceType.Known() {
		return nil, ErrInvalidServiceType
	}

	initialStatus := freightModify.ServiceType.InitialStatus()

	// при коллизии кода пробуем еще раз с новым кодом
	for attempt := 0; attempt < publicCodeAttempts; attempt++ {
		publicCode, err := generatePublicCode()
		if err != nil {
			return nil, fmt.Errorf("create freight: %w", err)
		}

		freight, err := s.repository.Create(ctx, freightModify, publicCode, initialStatus)
		if err != nil {
			if errors.Is(err, ErrPublicCodeTaken) {
				continue
			}
			return nil, fmt.Errorf("create freight: %w", err)
		}

		return freight, nil
	}

	return nil, fmt.Errorf("create freight: %w", ErrPublicCodeTaken)
}

// AdvanceStatus атомарно двигает статус фрахта, штампует время, пишет
// аудит и синхронизирует статус исполнения в маршруте. Событие уходит
// только после коммита.
func (s *Freight) AdvanceStatus(ctx context.Context, freightID int64, cpf string, next entities.FreightStatusType, note *string) (*entities.Freight, error) {
	if freightID <= 0 {
		return nil, ErrInvalidFreightID
	}
	if !isKnownStatus(next) {
		return nil, ErrInvalidStatus
	}

	driver, err := s.driverService.GetActiveDriver(ctx, cpf)
	if err != nil {
		return nil, fmt.Errorf("advance status: %w", err)
	}

	var (
		updated *entities.Freight
		event   entities.FreightStatusChangedEvent
	)
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		freight, err := s.repository.GetForUpdate(ctx, freightID)
		if err != nil {
			return err
		}
		if !freight.Active {
			return ErrFreightNotFound
		}

		link, routeDriverID, err := s.repository.GetRouteLink(ctx, freightID)
		if err != nil {
			return err
		}
		if routeDriverID != driver.ID {
			return ErrFreightNotOwned
		}

		if !freight.ServiceType.CanTransition(freight.Status, next) {
			return &IllegalTransitionError{
				ServiceType: freight.ServiceType,
				From:        freight.Status,
				To:          next,
			}
		}

		now := time.Now()

		updated, err = s.repository.ApplyStatus(ctx, freightID, next, now)
		if err != nil {
			return err
		}

		previous := freight.Status
		err = s.repository.InsertHistory(ctx, entities.StatusHistoryModify{
			FreightID: &freightID,
			Previous:  &previous,
			Next:      &next,
			ChangedBy: &cpf,
			Note:      note,
			ChangedAt: &now,
		})
		if err != nil {
			return err
		}

		execStatus := entities.RouteExecInProgress
		if next.IsTerminal() {
			execStatus = entities.RouteExecDone
		}
		if link.ExecStatus != execStatus {
			err = s.repository.UpdateRouteExecution(ctx, link.ID, execStatus, now)
			if err != nil {
				return err
			}
		}

		event = entities.FreightStatusChangedEvent{
			FreightID:   freight.ID,
			PublicCode:  freight.PublicCode,
			ServiceType: freight.ServiceType,
			Previous:    previous,
			Next:        next,
			DriverCPF:   cpf,
			OccurredAt:  now,
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("advance status: %w", err)
	}

	s.publisher.StatusChanged(ctx, event)

	return updated, nil
}

func (s *Freight) ActiveFreightsForDriver(ctx context.Context, cpf string) ([]entities.Freight, error) {
	driver, err := s.driverService.GetActiveDriver(ctx, cpf)
	if err != nil {
		return nil, fmt.Errorf("get active freights: %w", err)
	}

	freights, err := s.repository.GetActiveByDriver(ctx, driver.ID)
	if err != nil {
		return nil, fmt.Errorf("get active freights: %w", err)
	}

	return freights, nil
}

func (s *Freight) AppendLocation(ctx context.Context, freightID, driverID int64, lat, lng float64, timestamp time.Time) (*entities.FreightLocation, error) {
	location, err := s.repository.AppendLocation(ctx, freightID, driverID, lat, lng, timestamp)
	if err != nil {
		return nil, fmt.Errorf("append freight location: %w", err)
	}

	return location, nil
}

func generatePublicCode() (string, error) {
	code := make([]byte, publicCodeLength)
	for i := range code {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(publicCodeAlphabet))))
		if err != nil {
			return "", fmt.Errorf("generate public code: %w", err)
		}
		code[i] = publicCodeAlphabet[n.Int64()]
	}
	return string(code), nil
}
