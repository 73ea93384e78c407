package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/quentinhasdavovo/quentinhas-api/internal/domain/entity"
	"github.com/quentinhasdavovo/quentinhas-api/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo implementação de StockRepository sobre PostgreSQL (usável com pool ou tx).
// stock_entries é a fonte de verdade de quantidade por (prato, ponto de venda).
type StockRepo struct {
	q Querier
}

// NewStockRepository constrói o adaptador de estoque. Passar pool ou tx (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

// Get obtém o estoque atual de um prato em um ponto de venda.
func (r *StockRepo) Get(mealID, posID string) (*entity.StockEntry, error) {
	query := `
		SELECT meal_id, point_of_sale_id, available_qty, available, updated_at
		FROM stock_entries WHERE meal_id = $1 AND point_of_sale_id = $2`
	var s entity.StockEntry
	err := r.q.QueryRow(context.Background(), query, mealID, posID).Scan(
		&s.MealID, &s.PointOfSaleID, &s.AvailableQty, &s.Available, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock: %w", err)
	}
	return &s, nil
}

// ListByPointOfSale lista o estoque de um ponto de venda.
func (r *StockRepo) ListByPointOfSale(posID string) ([]*entity.StockEntry, error) {
	query := `
		SELECT meal_id, point_of_sale_id, available_qty, available, updated_at
		FROM stock_entries WHERE point_of_sale_id = $1 ORDER BY meal_id`
	rows, err := r.q.Query(context.Background(), query, posID)
	if err != nil {
		return nil, fmt.Errorf("list stock: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockEntry
	for rows.Next() {
		var s entity.StockEntry
		if err := rows.Scan(&s.MealID, &s.PointOfSaleID, &s.AvailableQty, &s.Available, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan stock: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// Upsert insere ou atualiza a quantidade (por prato e ponto de venda).
// available é recalculado no mesmo statement para manter a invariante.
func (r *StockRepo) Upsert(entry *entity.StockEntry) error {
	query := `
		INSERT INTO stock_entries (meal_id, point_of_sale_id, available_qty, available, updated_at)
		VALUES ($1, $2, $3, $3 > 0, now())
		ON CONFLICT (meal_id, point_of_sale_id)
		DO UPDATE SET available_qty = EXCLUDED.available_qty, available = EXCLUDED.available_qty > 0, updated_at = now()`
	_, err := r.q.Exec(context.Background(), query, entry.MealID, entry.PointOfSaleID, entry.AvailableQty)
	if err != nil {
		return fmt.Errorf("upsert stock: %w", err)
	}
	return nil
}

// DecrementIfAvailable desconta qty de forma condicional e atômica (compare-and-swap):
// a linha só é afetada se available_qty >= qty, e available é recalculado junto.
// Zero linhas afetadas significa estoque insuficiente (ou linha inexistente).
func (r *StockRepo) DecrementIfAvailable(mealID, posID string, qty int) (int, bool, error) {
	query := `
		UPDATE stock_entries
		SET available_qty = available_qty - $3,
			available = available_qty - $3 > 0,
			updated_at = now()
		WHERE meal_id = $1 AND point_of_sale_id = $2 AND available_qty >= $3
		RETURNING available_qty`
	var remaining int
	err := r.q.QueryRow(context.Background(), query, mealID, posID, qty).Scan(&remaining)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("decrement stock: %w", err)
	}
	return remaining, true, nil
}

// Delete remove a entrada de estoque de um prato em um ponto de venda.
func (r *StockRepo) Delete(mealID, posID string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM stock_entries WHERE meal_id = $1 AND point_of_sale_id = $2`, mealID, posID)
	if err != nil {
		return fmt.Errorf("delete stock: %w", err)
	}
	return nil
}
