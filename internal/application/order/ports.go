package order

import (
	"context"

	"github.com/quentinhasdavovo/quentinhas-api/internal/domain/repository"
)

// TxRunner executa uma função dentro de uma transação de banco, passando
// repositórios atados a essa tx. É o que garante a atomicidade do fluxo
// pedido + reserva de estoque (sem compensação manual).
type TxRunner interface {
	Run(ctx context.Context, fn func(
		orderRepo repository.OrderRepository,
		stockRepo repository.StockRepository,
		mealRepo repository.MealRepository,
	) error) error
}
