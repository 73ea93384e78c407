package repository

import "github.com/quentinhasdavovo/quentinhas-api/internal/domain/entity"

// MealRepository porta de persistência para pratos do cardápio.
// Leituras anexam AvailableQty como soma das stock_entries do prato.
type MealRepository interface {
	Create(meal *entity.Meal) error
	GetByID(id string) (*entity.Meal, error)
	List(limit, offset int) ([]*entity.Meal, error)
	Update(meal *entity.Meal) error
	// SyncAvailability recalcula available a partir da soma do estoque do prato.
	// Invariante: available == (quantidade projetada > 0).
	SyncAvailability(id string) error
	Delete(id string) error
}
