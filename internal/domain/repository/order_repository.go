package repository

import "github.com/quentinhasdavovo/quentinhas-api/internal/domain/entity"

// OrderFilter filtros opcionais para listagem de pedidos.
type OrderFilter struct {
	CustomerID    string
	PointOfSaleID string
	Status        string
}

// OrderRepository porta de persistência para pedidos.
// Não há Delete: pedidos só mudam de status.
type OrderRepository interface {
	Create(order *entity.Order) error
	GetByID(id string) (*entity.Order, error)
	// List anexa nome do cliente e do prato por join (conveniência de leitura).
	List(f OrderFilter, limit, offset int) ([]*entity.OrderSummary, error)
	// UpdateStatus troca o status com guarda no status de origem
	// (WHERE status = from); zero linhas afetadas indica corrida perdida.
	UpdateStatus(id, from, to string) (updated bool, err error)
}
