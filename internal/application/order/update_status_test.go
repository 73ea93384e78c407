package order_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apporder "github.com/quentinhasdavovo/quentinhas-api/internal/application/order"
	"github.com/quentinhasdavovo/quentinhas-api/internal/domain"
	"github.com/quentinhasdavovo/quentinhas-api/internal/domain/entity"
	domorder "github.com/quentinhasdavovo/quentinhas-api/internal/domain/order"
)

const pedidoID = "3d4c5b6a-7988-4a6b-8c5d-4e3f2a1b0c9d"

func newUpdateStatusEnv(t *testing.T, status string) (*memStore, *memOrderRepo, *apporder.UpdateStatusUseCase) {
	t.Helper()
	store := newMemStore()
	store.orders[pedidoID] = &entity.Order{
		ID:       pedidoID,
		MealID:   mealFeijoada,
		Quantity: 1,
		Status:   status,
	}
	orders := &memOrderRepo{s: store}
	return store, orders, apporder.NewUpdateStatusUseCase(orders)
}

func TestUpdateStatus_AtendenteSepara(t *testing.T) {
	store, _, uc := newUpdateStatusEnv(t, domorder.StatusSolicitado)
	actor := domain.AuthContext{UserID: "u1", Role: entity.RoleAtendente}

	ord, err := uc.UpdateStatus(context.Background(), actor, pedidoID, domorder.StatusSeparado)
	require.NoError(t, err)
	assert.Equal(t, domorder.StatusSeparado, ord.Status)
	assert.Equal(t, domorder.StatusSeparado, store.orders[pedidoID].Status)
}

func TestUpdateStatus_AdminEntrega(t *testing.T) {
	store, _, uc := newUpdateStatusEnv(t, domorder.StatusSeparado)
	actor := domain.AuthContext{UserID: "u1", Role: entity.RoleAdmin}

	ord, err := uc.UpdateStatus(context.Background(), actor, pedidoID, domorder.StatusEntregue)
	require.NoError(t, err)
	assert.Equal(t, domorder.StatusEntregue, ord.Status)
	assert.Equal(t, domorder.StatusEntregue, store.orders[pedidoID].Status)
}

func TestUpdateStatus_ClienteNaoTransiciona(t *testing.T) {
	store, _, uc := newUpdateStatusEnv(t, domorder.StatusSolicitado)
	actor := domain.AuthContext{UserID: "u1", Role: entity.RoleCliente}

	_, err := uc.UpdateStatus(context.Background(), actor, pedidoID, domorder.StatusSeparado)
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.Equal(t, domorder.StatusSolicitado, store.orders[pedidoID].Status)
}

func TestUpdateStatus_EstadoTerminal(t *testing.T) {
	_, _, uc := newUpdateStatusEnv(t, domorder.StatusEntregue)
	actor := domain.AuthContext{UserID: "u1", Role: entity.RoleAdmin}

	_, err := uc.UpdateStatus(context.Background(), actor, pedidoID, domorder.StatusCancelado)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestUpdateStatus_StatusForaDoDominio(t *testing.T) {
	_, _, uc := newUpdateStatusEnv(t, domorder.StatusSolicitado)
	actor := domain.AuthContext{UserID: "u1", Role: entity.RoleAdmin}

	_, err := uc.UpdateStatus(context.Background(), actor, pedidoID, "despachado")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUpdateStatus_PedidoInexistente(t *testing.T) {
	_, _, uc := newUpdateStatusEnv(t, domorder.StatusSolicitado)
	actor := domain.AuthContext{UserID: "u1", Role: entity.RoleAdmin}

	_, err := uc.UpdateStatus(context.Background(), actor, "9e8d7c6b-5a49-4382-9176-0f1e2d3c4b5a", domorder.StatusSeparado)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdateStatus_CorridaPerdidaViraConflito(t *testing.T) {
	store, orders, uc := newUpdateStatusEnv(t, domorder.StatusSolicitado)
	// outro ator cancela entre a leitura e a guarda de escrita
	orders.raceTo = domorder.StatusCancelado
	actor := domain.AuthContext{UserID: "u1", Role: entity.RoleAtendente}

	_, err := uc.UpdateStatus(context.Background(), actor, pedidoID, domorder.StatusSeparado)
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.Equal(t, domorder.StatusCancelado, store.orders[pedidoID].Status)
}

func TestUpdateStatus_CancelamentoNaoDevolveEstoque(t *testing.T) {
	store, _, uc := newUpdateStatusEnv(t, domorder.StatusSolicitado)
	store.stock[stockKey(mealFeijoada, posCentro)] = &entity.StockEntry{
		MealID:        mealFeijoada,
		PointOfSaleID: posCentro,
		AvailableQty:  4,
		Available:     true,
	}
	actor := domain.AuthContext{UserID: "u1", Role: entity.RoleAdmin}

	_, err := uc.UpdateStatus(context.Background(), actor, pedidoID, domorder.StatusCancelado)
	require.NoError(t, err)
	assert.Equal(t, 4, store.stock[stockKey(mealFeijoada, posCentro)].AvailableQty)
}
