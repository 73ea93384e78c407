package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/quentinhasdavovo/quentinhas-api/internal/application/dto"
	apporder "github.com/quentinhasdavovo/quentinhas-api/internal/application/order"
	"github.com/quentinhasdavovo/quentinhas-api/internal/domain"
	"github.com/quentinhasdavovo/quentinhas-api/internal/domain/entity"
	"github.com/quentinhasdavovo/quentinhas-api/internal/domain/repository"
)

// MealUseCase CRUD de pratos e manutenção do estoque por ponto de venda.
type MealUseCase struct {
	mealRepo  repository.MealRepository
	stockRepo repository.StockRepository
	posRepo   repository.PointOfSaleRepository
	txRunner  apporder.TxRunner
}

// NewMealUseCase constrói o caso de uso.
func NewMealUseCase(
	mealRepo repository.MealRepository,
	stockRepo repository.StockRepository,
	posRepo repository.PointOfSaleRepository,
	txRunner apporder.TxRunner,
) *MealUseCase {
	return &MealUseCase{mealRepo: mealRepo, stockRepo: stockRepo, posRepo: posRepo, txRunner: txRunner}
}

// Create cadastra um prato. Nasce indisponível: estoque entra via SetStock.
func (uc *MealUseCase) Create(in dto.CreateMealRequest) (*dto.MealResponse, error) {
	if in.Name == "" || in.Price.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	meal := &entity.Meal{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Available:   false,
		ImageURL:    in.ImageURL,
		Ingredients: in.Ingredients,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.mealRepo.Create(meal); err != nil {
		return nil, err
	}
	return toMealResponse(meal), nil
}

// GetByID obtém um prato com a quantidade projetada.
func (uc *MealUseCase) GetByID(id string) (*dto.MealResponse, error) {
	meal, err := uc.mealRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if meal == nil {
		return nil, domain.ErrNotFound
	}
	return toMealResponse(meal), nil
}

// List lista pratos com paginação.
func (uc *MealUseCase) List(limit, offset int) (*dto.MealListResponse, error) {
	meals, err := uc.mealRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := &dto.MealListResponse{
		Items: make([]dto.MealResponse, 0, len(meals)),
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}
	for _, m := range meals {
		out.Items = append(out.Items, *toMealResponse(m))
	}
	return out, nil
}

// Update atualiza os campos de catálogo de um prato.
func (uc *MealUseCase) Update(id string, in dto.UpdateMealRequest) (*dto.MealResponse, error) {
	if in.Name == "" || in.Price.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	meal, err := uc.mealRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if meal == nil {
		return nil, domain.ErrNotFound
	}
	meal.Name = in.Name
	meal.Description = in.Description
	meal.Price = in.Price
	meal.ImageURL = in.ImageURL
	meal.Ingredients = in.Ingredients
	meal.UpdatedAt = time.Now()
	if err := uc.mealRepo.Update(meal); err != nil {
		return nil, err
	}
	return toMealResponse(meal), nil
}

// Delete remove um prato.
func (uc *MealUseCase) Delete(id string) error {
	meal, err := uc.mealRepo.GetByID(id)
	if err != nil {
		return err
	}
	if meal == nil {
		return domain.ErrNotFound
	}
	return uc.mealRepo.Delete(id)
}

// SetStock grava a quantidade de um prato em um ponto de venda e ressincroniza
// o flag do prato, na mesma transação.
func (uc *MealUseCase) SetStock(ctx context.Context, in dto.UpsertStockRequest) (*dto.StockResponse, error) {
	if in.AvailableQty < 0 {
		return nil, domain.ErrInvalidInput
	}
	meal, err := uc.mealRepo.GetByID(in.MealID)
	if err != nil {
		return nil, err
	}
	if meal == nil {
		return nil, domain.ErrNotFound
	}
	pos, err := uc.posRepo.GetByID(in.PointOfSaleID)
	if err != nil {
		return nil, err
	}
	if pos == nil {
		return nil, domain.ErrNotFound
	}

	var out *dto.StockResponse
	err = uc.txRunner.Run(ctx, func(
		_ repository.OrderRepository,
		stockRepo repository.StockRepository,
		mealRepo repository.MealRepository,
	) error {
		entry := &entity.StockEntry{
			MealID:        in.MealID,
			PointOfSaleID: in.PointOfSaleID,
			AvailableQty:  in.AvailableQty,
			Available:     in.AvailableQty > 0,
			UpdatedAt:     time.Now(),
		}
		if err := stockRepo.Upsert(entry); err != nil {
			return err
		}
		if err := mealRepo.SyncAvailability(in.MealID); err != nil {
			return err
		}
		out = toStockResponse(entry)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ListStock lista o estoque de um ponto de venda.
func (uc *MealUseCase) ListStock(posID string) ([]dto.StockResponse, error) {
	entries, err := uc.stockRepo.ListByPointOfSale(posID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.StockResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, *toStockResponse(e))
	}
	return out, nil
}

func toMealResponse(m *entity.Meal) *dto.MealResponse {
	return &dto.MealResponse{
		ID:           m.ID,
		Name:         m.Name,
		Description:  m.Description,
		Price:        m.Price,
		Available:    m.Available,
		ImageURL:     m.ImageURL,
		Ingredients:  m.Ingredients,
		AvailableQty: m.AvailableQty,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func toStockResponse(e *entity.StockEntry) *dto.StockResponse {
	return &dto.StockResponse{
		MealID:        e.MealID,
		PointOfSaleID: e.PointOfSaleID,
		AvailableQty:  e.AvailableQty,
		Available:     e.Available,
		UpdatedAt:     e.UpdatedAt,
	}
}
