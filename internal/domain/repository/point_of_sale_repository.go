package repository

import "github.com/quentinhasdavovo/quentinhas-api/internal/domain/entity"

// PointOfSaleRepository porta de persistência para pontos de venda.
type PointOfSaleRepository interface {
	Create(pos *entity.PointOfSale) error
	GetByID(id string) (*entity.PointOfSale, error)
	List(limit, offset int) ([]*entity.PointOfSale, error)
	Update(pos *entity.PointOfSale) error
	Delete(id string) error
}
