package order

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/quentinhasdavovo/quentinhas-api/internal/application/dto"
	"github.com/quentinhasdavovo/quentinhas-api/internal/domain"
	"github.com/quentinhasdavovo/quentinhas-api/internal/domain/entity"
	domorder "github.com/quentinhasdavovo/quentinhas-api/internal/domain/order"
	"github.com/quentinhasdavovo/quentinhas-api/internal/domain/repository"
)

// PlaceOrderUseCase cria um pedido reservando a quantidade no estoque do ponto
// de venda, em uma única transação. O desconto é um update condicional
// (available_qty >= quantidade), então chamadas concorrentes sobre o mesmo
// prato não conseguem vender além do estoque.
type PlaceOrderUseCase struct {
	txRunner TxRunner
	mealRepo repository.MealRepository
	userRepo repository.UserRepository
	posRepo  repository.PointOfSaleRepository
}

// NewPlaceOrderUseCase constrói o caso de uso.
func NewPlaceOrderUseCase(
	txRunner TxRunner,
	mealRepo repository.MealRepository,
	userRepo repository.UserRepository,
	posRepo repository.PointOfSaleRepository,
) *PlaceOrderUseCase {
	return &PlaceOrderUseCase{
		txRunner: txRunner,
		mealRepo: mealRepo,
		userRepo: userRepo,
		posRepo:  posRepo,
	}
}

// Place valida o pedido, resolve o ponto de venda e, dentro da transação:
// desconta o estoque condicionalmente e insere o pedido com status solicitado.
// Total = preço do prato x quantidade no momento do pedido. Qualquer erro faz
// rollback: nenhum estado parcial sobrevive.
func (uc *PlaceOrderUseCase) Place(ctx context.Context, actor domain.AuthContext, in dto.CreateOrderRequest) (*entity.Order, int, error) {
	if in.MealID == "" || in.Quantity < 1 {
		return nil, 0, domain.ErrInvalidInput
	}

	meal, err := uc.mealRepo.GetByID(in.MealID)
	if err != nil {
		return nil, 0, err
	}
	if meal == nil {
		return nil, 0, domain.ErrNotFound
	}

	posID, err := uc.resolvePointOfSale(actor, in.PointOfSaleID)
	if err != nil {
		return nil, 0, err
	}

	ord := &entity.Order{
		ID:            uuid.New().String(),
		CustomerID:    actor.UserID,
		MealID:        in.MealID,
		Quantity:      in.Quantity,
		Total:         meal.Price.Mul(decimal.NewFromInt(int64(in.Quantity))),
		Status:        domorder.StatusSolicitado,
		Portions:      in.Portions,
		PointOfSaleID: posID,
		PlacedAt:      time.Now(),
	}

	var remaining int
	err = uc.txRunner.Run(ctx, func(
		orderRepo repository.OrderRepository,
		stockRepo repository.StockRepository,
		mealRepo repository.MealRepository,
	) error {
		// 1) Desconto condicional e atômico: zero linhas = sem estoque.
		rem, ok, err := stockRepo.DecrementIfAvailable(in.MealID, posID, in.Quantity)
		if err != nil {
			return err
		}
		if !ok {
			entry, err := stockRepo.Get(in.MealID, posID)
			if err != nil {
				return err
			}
			if entry == nil {
				return domain.ErrNotFound
			}
			return domain.ErrInsufficientStock
		}
		remaining = rem

		// 2) Mantém o flag do prato coerente com a soma projetada.
		if err := mealRepo.SyncAvailability(in.MealID); err != nil {
			return err
		}

		// 3) Insere o pedido. Rollback desfaz o desconto se falhar.
		return orderRepo.Create(ord)
	})
	if err != nil {
		return nil, 0, err
	}
	return ord, remaining, nil
}

// resolvePointOfSale decide onde reservar o estoque: o ponto do payload, senão
// o ponto vinculado ao cliente autenticado. Pedido anônimo sem ponto é inválido.
func (uc *PlaceOrderUseCase) resolvePointOfSale(actor domain.AuthContext, posID string) (string, error) {
	if posID != "" {
		pos, err := uc.posRepo.GetByID(posID)
		if err != nil {
			return "", err
		}
		if pos == nil {
			return "", domain.ErrNotFound
		}
		return posID, nil
	}
	if actor.Anonymous() {
		return "", domain.ErrInvalidInput
	}
	user, err := uc.userRepo.GetByID(actor.UserID)
	if err != nil {
		return "", err
	}
	if user == nil || user.PointOfSaleID == "" {
		return "", domain.ErrInvalidInput
	}
	return user.PointOfSaleID, nil
}
