package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/quentinhasdavovo/quentinhas-api/internal/domain/entity"
	"github.com/quentinhasdavovo/quentinhas-api/internal/domain/repository"
)

var _ repository.PointOfSaleRepository = (*PointOfSaleRepo)(nil)

// PointOfSaleRepo implementação de PointOfSaleRepository sobre PostgreSQL (usável com pool ou tx).
type PointOfSaleRepo struct {
	q Querier
}

// NewPointOfSaleRepository constrói o adaptador de pontos de venda. Passar pool ou tx (Querier).
func NewPointOfSaleRepository(q Querier) *PointOfSaleRepo {
	return &PointOfSaleRepo{q: q}
}

// Create persiste um novo ponto de venda.
func (r *PointOfSaleRepo) Create(pos *entity.PointOfSale) error {
	query := `
		INSERT INTO points_of_sale (id, name, address, responsible, phone, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		pos.ID, pos.Name, pos.Address, pos.Responsible, pos.Phone, pos.Active,
		pos.CreatedAt, pos.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert point of sale: %w", err)
	}
	return nil
}

// GetByID obtém um ponto de venda por ID.
func (r *PointOfSaleRepo) GetByID(id string) (*entity.PointOfSale, error) {
	query := `
		SELECT id, name, address, responsible, phone, active, created_at, updated_at
		FROM points_of_sale WHERE id = $1`
	var p entity.PointOfSale
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.Name, &p.Address, &p.Responsible, &p.Phone, &p.Active, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get point of sale: %w", err)
	}
	return &p, nil
}

// List lista pontos de venda com paginação.
func (r *PointOfSaleRepo) List(limit, offset int) ([]*entity.PointOfSale, error) {
	query := `
		SELECT id, name, address, responsible, phone, active, created_at, updated_at
		FROM points_of_sale ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list points of sale: %w", err)
	}
	defer rows.Close()
	var list []*entity.PointOfSale
	for rows.Next() {
		var p entity.PointOfSale
		if err := rows.Scan(&p.ID, &p.Name, &p.Address, &p.Responsible, &p.Phone, &p.Active,
			&p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan point of sale: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Update atualiza um ponto de venda existente.
func (r *PointOfSaleRepo) Update(pos *entity.PointOfSale) error {
	query := `
		UPDATE points_of_sale SET name = $2, address = $3, responsible = $4, phone = $5, active = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		pos.ID, pos.Name, pos.Address, pos.Responsible, pos.Phone, pos.Active, pos.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update point of sale: %w", err)
	}
	return nil
}

// Delete remove um ponto de venda por ID.
func (r *PointOfSaleRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM points_of_sale WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete point of sale: %w", err)
	}
	return nil
}
