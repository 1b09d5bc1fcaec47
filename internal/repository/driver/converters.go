package driver

import "fretes/internal/entities"

func ToDomain(d *DriverDB) *entities.Driver {
	if d == nil {
		return nil
	}
	return &entities.Driver{
		ID:        d.ID,
		CPF:       d.CPF,
		Name:      d.Name,
		Phone:     d.Phone,
		Active:    d.Active,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

func FromDomainModify(d *entities.DriverModify) *DriverModifyDB {
	if d == nil {
		return nil
	}
	driverModifyDB := &DriverModifyDB{}

	if d.ID != nil {
		driverModifyDB.ID = d.ID
	}
	if d.CPF != nil {
		driverModifyDB.CPF = d.CPF
	}
	if d.Name != nil {
		driverModifyDB.Name = d.Name
	}
	if d.Phone != nil {
		driverModifyDB.Phone = d.Phone
	}
	if d.Active != nil {
		driverModifyDB.Active = d.Active
	}

	return driverModifyDB
}
