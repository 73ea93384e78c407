package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/quentinhasdavovo/quentinhas-api/internal/domain/entity"
	"github.com/quentinhasdavovo/quentinhas-api/internal/domain/repository"
)

var _ repository.AcquisitionRepository = (*AcquisitionRepo)(nil)

// AcquisitionRepo implementação de AcquisitionRepository sobre PostgreSQL (usável com pool ou tx).
type AcquisitionRepo struct {
	q Querier
}

// NewAcquisitionRepository constrói o adaptador de aquisições. Passar pool ou tx (Querier).
func NewAcquisitionRepository(q Querier) *AcquisitionRepo {
	return &AcquisitionRepo{q: q}
}

// Create persiste uma nova aquisição de créditos.
func (r *AcquisitionRepo) Create(acq *entity.Acquisition) error {
	query := `
		INSERT INTO acquisitions (id, customer_id, credits, amount, point_of_sale_id, created_at)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6)`
	_, err := r.q.Exec(context.Background(), query,
		acq.ID, acq.CustomerID, acq.Credits, acq.Amount, acq.PointOfSaleID, acq.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert acquisition: %w", err)
	}
	return nil
}

// GetByID obtém uma aquisição por ID.
func (r *AcquisitionRepo) GetByID(id string) (*entity.Acquisition, error) {
	query := `
		SELECT id, customer_id, credits, amount, COALESCE(point_of_sale_id::text, ''), created_at
		FROM acquisitions WHERE id = $1`
	var a entity.Acquisition
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&a.ID, &a.CustomerID, &a.Credits, &a.Amount, &a.PointOfSaleID, &a.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get acquisition: %w", err)
	}
	return &a, nil
}

// ListByCustomer lista aquisições de um cliente, mais recentes primeiro.
func (r *AcquisitionRepo) ListByCustomer(customerID string, limit, offset int) ([]*entity.Acquisition, error) {
	query := `
		SELECT id, customer_id, credits, amount, COALESCE(point_of_sale_id::text, ''), created_at
		FROM acquisitions WHERE customer_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, customerID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list acquisitions: %w", err)
	}
	defer rows.Close()
	var list []*entity.Acquisition
	for rows.Next() {
		var a entity.Acquisition
		if err := rows.Scan(&a.ID, &a.CustomerID, &a.Credits, &a.Amount, &a.PointOfSaleID, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan acquisition: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}
