package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/quentinhasdavovo/quentinhas-api/internal/domain/entity"
	"github.com/quentinhasdavovo/quentinhas-api/internal/domain/repository"
)

var _ repository.MealRepository = (*MealRepo)(nil)

// MealRepo implementação de MealRepository sobre PostgreSQL (usável com pool ou tx).
// AvailableQty vem sempre por subquery: SUM do estoque por ponto de venda.
type MealRepo struct {
	q Querier
}

// NewMealRepository constrói o adaptador de pratos. Passar pool ou tx (Querier).
func NewMealRepository(q Querier) *MealRepo {
	return &MealRepo{q: q}
}

const mealColumns = `
	m.id, m.name, m.description, m.price, m.available, m.image_url, m.ingredients,
	COALESCE((SELECT SUM(s.available_qty) FROM stock_entries s WHERE s.meal_id = m.id), 0),
	m.created_at, m.updated_at`

// Create persiste um novo prato. available nasce refletindo a projeção (0 -> false).
func (r *MealRepo) Create(meal *entity.Meal) error {
	query := `
		INSERT INTO meals (id, name, description, price, available, image_url, ingredients, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		meal.ID, meal.Name, meal.Description, meal.Price, meal.Available,
		meal.ImageURL, meal.Ingredients, meal.CreatedAt, meal.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert meal: %w", err)
	}
	return nil
}

// GetByID obtém um prato por ID com a quantidade projetada.
func (r *MealRepo) GetByID(id string) (*entity.Meal, error) {
	query := `SELECT` + mealColumns + ` FROM meals m WHERE m.id = $1`
	m, err := scanMeal(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get meal: %w", err)
	}
	return m, nil
}

// List lista pratos com paginação, mais recentes primeiro.
func (r *MealRepo) List(limit, offset int) ([]*entity.Meal, error) {
	query := `SELECT` + mealColumns + ` FROM meals m ORDER BY m.created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list meals: %w", err)
	}
	defer rows.Close()
	var list []*entity.Meal
	for rows.Next() {
		m, err := scanMeal(rows)
		if err != nil {
			return nil, fmt.Errorf("scan meal: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

// Update atualiza os campos de catálogo do prato. Quantidade não é editável
// por aqui: estoque muda via stock_entries.
func (r *MealRepo) Update(meal *entity.Meal) error {
	query := `
		UPDATE meals SET name = $2, description = $3, price = $4, available = $5,
			image_url = $6, ingredients = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		meal.ID, meal.Name, meal.Description, meal.Price, meal.Available,
		meal.ImageURL, meal.Ingredients, meal.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update meal: %w", err)
	}
	return nil
}

// SyncAvailability recalcula o flag available a partir da soma do estoque.
// Chamado depois de mutações de stock_entries fora da linha do prato.
func (r *MealRepo) SyncAvailability(id string) error {
	query := `
		UPDATE meals SET available =
			COALESCE((SELECT SUM(s.available_qty) FROM stock_entries s WHERE s.meal_id = meals.id), 0) > 0,
			updated_at = now()
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, id)
	if err != nil {
		return fmt.Errorf("sync meal availability: %w", err)
	}
	return nil
}

// Delete remove um prato por ID.
func (r *MealRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM meals WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete meal: %w", err)
	}
	return nil
}

func scanMeal(row pgx.Row) (*entity.Meal, error) {
	var m entity.Meal
	err := row.Scan(
		&m.ID, &m.Name, &m.Description, &m.Price, &m.Available, &m.ImageURL,
		&m.Ingredients, &m.AvailableQty, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}
