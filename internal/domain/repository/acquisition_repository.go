package repository

import "github.com/quentinhasdavovo/quentinhas-api/internal/domain/entity"

// AcquisitionRepository porta de persistência para aquisições de créditos.
type AcquisitionRepository interface {
	Create(acq *entity.Acquisition) error
	GetByID(id string) (*entity.Acquisition, error)
	ListByCustomer(customerID string, limit, offset int) ([]*entity.Acquisition, error)
}
