package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	apporder "github.com/quentinhasdavovo/quentinhas-api/internal/application/order"
	"github.com/quentinhasdavovo/quentinhas-api/internal/application/usecase"
	"github.com/quentinhasdavovo/quentinhas-api/internal/domain/repository"
)

// TxRunner satisfaz os runners esperados pelos casos de uso.
var _ apporder.TxRunner = (*TxRunner)(nil)
var _ usecase.CreditTxRunner = (*TxRunner)(nil)

// TxRunner executa callbacks dentro de uma transação PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner constrói o runner com o pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia uma transação, executa fn com repos atados à tx e faz Commit ou Rollback.
// É a garantia de atomicidade do fluxo de pedido + reserva de estoque.
func (r *TxRunner) Run(ctx context.Context, fn func(
	orderRepo repository.OrderRepository,
	stockRepo repository.StockRepository,
	mealRepo repository.MealRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewOrderRepository(tx), NewStockRepository(tx), NewMealRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunCredits inicia uma transação com repos de aquisição e usuário
// (aquisição de créditos + incremento de saldo, atômicos).
func (r *TxRunner) RunCredits(ctx context.Context, fn func(
	acqRepo repository.AcquisitionRepository,
	userRepo repository.UserRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewAcquisitionRepository(tx), NewUserRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
