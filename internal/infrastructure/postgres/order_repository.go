package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/quentinhasdavovo/quentinhas-api/internal/domain/entity"
	"github.com/quentinhasdavovo/quentinhas-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementação de OrderRepository sobre PostgreSQL (usável com pool ou tx).
type OrderRepo struct {
	q Querier
}

// NewOrderRepository constrói o adaptador de pedidos. Passar pool ou tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// Create persiste um novo pedido.
func (r *OrderRepo) Create(order *entity.Order) error {
	query := `
		INSERT INTO orders (id, customer_id, meal_id, quantity, total, status, portions, point_of_sale_id, placed_at)
		VALUES ($1, NULLIF($2, ''), $3, $4, $5, $6, $7, NULLIF($8, ''), $9)`
	_, err := r.q.Exec(context.Background(), query,
		order.ID, order.CustomerID, order.MealID, order.Quantity, order.Total,
		order.Status, order.Portions, order.PointOfSaleID, order.PlacedAt,
	)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

// GetByID obtém um pedido por ID.
func (r *OrderRepo) GetByID(id string) (*entity.Order, error) {
	query := `
		SELECT id, COALESCE(customer_id::text, ''), meal_id, quantity, total, status,
			portions, COALESCE(point_of_sale_id::text, ''), placed_at
		FROM orders WHERE id = $1`
	var o entity.Order
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&o.ID, &o.CustomerID, &o.MealID, &o.Quantity, &o.Total, &o.Status,
		&o.Portions, &o.PointOfSaleID, &o.PlacedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	return &o, nil
}

// List lista pedidos com filtros opcionais, anexando nome do cliente e do prato
// por join (conveniência de exibição, não muda o modelo de dados).
func (r *OrderRepo) List(f repository.OrderFilter, limit, offset int) ([]*entity.OrderSummary, error) {
	query := `
		SELECT o.id, COALESCE(o.customer_id::text, ''), o.meal_id, o.quantity, o.total, o.status,
			o.portions, COALESCE(o.point_of_sale_id::text, ''), o.placed_at,
			COALESCE(u.name, ''), COALESCE(m.name, '')
		FROM orders o
		LEFT JOIN users u ON u.id = o.customer_id
		LEFT JOIN meals m ON m.id = o.meal_id
		WHERE ($1 = '' OR o.customer_id::text = $1)
			AND ($2 = '' OR o.point_of_sale_id::text = $2)
			AND ($3 = '' OR o.status = $3)
		ORDER BY o.placed_at DESC LIMIT $4 OFFSET $5`
	rows, err := r.q.Query(context.Background(), query,
		f.CustomerID, f.PointOfSaleID, f.Status, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()
	var list []*entity.OrderSummary
	for rows.Next() {
		var s entity.OrderSummary
		if err := rows.Scan(
			&s.ID, &s.CustomerID, &s.MealID, &s.Quantity, &s.Total, &s.Status,
			&s.Portions, &s.PointOfSaleID, &s.PlacedAt,
			&s.CustomerName, &s.MealName,
		); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// UpdateStatus troca o status com guarda no status de origem.
// Zero linhas afetadas = outro ator mudou o status primeiro (corrida perdida).
func (r *OrderRepo) UpdateStatus(id, from, to string) (bool, error) {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE orders SET status = $3 WHERE id = $1 AND status = $2`, id, from, to)
	if err != nil {
		return false, fmt.Errorf("update order status: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}
