package driver

import (
	"context"
	"errors"
	"fmt"

	"fretes/internal/entities"
)

type Driver struct {
	repository Repository
}

func New(repository Repository) *Driver {
	return &Driver{
		repository: repository,
	}
}

func (s *Driver) CreateDriver(ctx context.Context, driverModify entities.DriverModify) (int64, error) {
	if driverModify.CPF == nil ||
		driverModify.Name == nil ||
		driverModify.Phone == nil {
		return 0, ErrMissingRequiredFields
	}

	if !isValidCPF(*driverModify.CPF) {
		return 0, ErrInvalidCPF
	}
	if !isValidName(*driverModify.Name) {
		return 0, ErrInvalidName
	}
	if !isValidPhone(*driverModify.Phone) {
		return 0, ErrInvalidPhone
	}

	id, err := s.repository.Create(ctx, driverModify)
	if err != nil {
		return 0, fmt.Errorf("create driver: %w", err)
	}

	return id, nil
}

func (s *Driver) UpdateDriver(ctx context.Context, driverModify entities.DriverModify) (*entities.Driver, error) {
	if driverModify.ID == nil || *driverModify.ID <= 0 {
		return nil, ErrInvalidDriverID
	}

	if driverModify.Name == nil &&
		driverModify.Phone == nil &&
		driverModify.Active == nil {
		return nil, fmt.Errorf("no fields to update: %w", ErrMissingRequiredFields)
	}

	if driverModify.Name != nil && !isValidName(*driverModify.Name) {
		return nil, ErrInvalidName
	}
	if driverModify.Phone != nil && !isValidPhone(*driverModify.Phone) {
		return nil, ErrInvalidPhone
	}

	driver, err := s.repository.Update(ctx, driverModify)
	if err != nil {
		return nil, fmt.Errorf("failed to update driver: %w", err)
	}
	return driver, nil
}

// CheckDriver незарегистрированный CPF не ошибка, а Registered=false.
func (s *Driver) CheckDriver(ctx context.Context, cpf string) (*entities.DriverCheck, error) {
	if !isValidCPF(cpf) {
		return nil, ErrInvalidCPF
	}

	driver, err := s.repository.GetByCPF(ctx, cpf)
	if err != nil {
		if errors.Is(err, ErrDriverNotFound) {
			return &entities.DriverCheck{
				CPF:        cpf,
				Registered: false,
			}, nil
		}
		return nil, fmt.Errorf("failed to check driver: %w", err)
	}

	lastActivity, err := s.repository.GetLastActivity(ctx, driver.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to check driver: %w", err)
	}

	return &entities.DriverCheck{
		CPF:          cpf,
		Registered:   true,
		Driver:       driver,
		LastActivity: lastActivity,
	}, nil
}

// GetActiveDriver возвращает водителя по CPF, отклоняя деактивированных.
func (s *Driver) GetActiveDriver(ctx context.Context, cpf string) (*entities.Driver, error) {
	if !isValidCPF(cpf) {
		return nil, ErrInvalidCPF
	}

	driver, err := s.repository.GetByCPF(ctx, cpf)
	if err != nil {
		return nil, fmt.Errorf("failed to get driver: %w", err)
	}

	if !driver.Active {
		return nil, ErrDriverInactive
	}

	return driver, nil
}
