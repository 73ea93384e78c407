package order

import (
	"context"

	"github.com/quentinhasdavovo/quentinhas-api/internal/domain"
	"github.com/quentinhasdavovo/quentinhas-api/internal/domain/entity"
	domorder "github.com/quentinhasdavovo/quentinhas-api/internal/domain/order"
	"github.com/quentinhasdavovo/quentinhas-api/internal/domain/repository"
)

// UpdateStatusUseCase aplica transições de status passando pela máquina de
// estados central. O perfil é revalidado aqui: o guard de rota é contornável
// por qualquer caminho de chamada direto.
type UpdateStatusUseCase struct {
	orderRepo repository.OrderRepository
}

// NewUpdateStatusUseCase constrói o caso de uso.
func NewUpdateStatusUseCase(orderRepo repository.OrderRepository) *UpdateStatusUseCase {
	return &UpdateStatusUseCase{orderRepo: orderRepo}
}

// UpdateStatus valida a transição (origem, destino, perfil) e persiste com
// guarda no status de origem. Um ator concorrente que mude o status primeiro
// faz a guarda falhar com ErrConflict em vez de sobrescrever às cegas.
// Cancelamento não devolve o estoque reservado.
func (uc *UpdateStatusUseCase) UpdateStatus(ctx context.Context, actor domain.AuthContext, orderID, newStatus string) (*entity.Order, error) {
	if !domorder.ValidStatus(newStatus) {
		return nil, domain.ErrInvalidInput
	}

	ord, err := uc.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if ord == nil {
		return nil, domain.ErrNotFound
	}

	if err := domorder.Transition(ord.Status, newStatus, actor.Role); err != nil {
		return nil, err
	}

	updated, err := uc.orderRepo.UpdateStatus(orderID, ord.Status, newStatus)
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, domain.ErrConflict
	}
	ord.Status = newStatus
	return ord, nil
}
