package repository

import "github.com/quentinhasdavovo/quentinhas-api/internal/domain/entity"

// StockRepository porta de persistência para estoque por ponto de venda.
type StockRepository interface {
	Get(mealID, posID string) (*entity.StockEntry, error)
	ListByPointOfSale(posID string) ([]*entity.StockEntry, error)
	// Upsert grava a quantidade informada mantendo available == (qty > 0)
	// no mesmo statement.
	Upsert(entry *entity.StockEntry) error
	// DecrementIfAvailable desconta qty de forma condicional e atômica:
	// só afeta a linha se available_qty >= qty, recalculando available junto.
	// Retorna a quantidade resultante e se alguma linha foi afetada.
	DecrementIfAvailable(mealID, posID string, qty int) (remaining int, ok bool, err error)
	Delete(mealID, posID string) error
}
