package order_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/quentinhasdavovo/quentinhas-api/internal/domain"
	"github.com/quentinhasdavovo/quentinhas-api/internal/domain/entity"
	"github.com/quentinhasdavovo/quentinhas-api/internal/domain/order"
)

func TestTransition_FluxoFeliz(t *testing.T) {
	// solicitado -> separado -> entregue, pelos perfis corretos
	assert.NoError(t, order.Transition(order.StatusSolicitado, order.StatusSeparado, entity.RoleAtendente))
	assert.NoError(t, order.Transition(order.StatusSolicitado, order.StatusSeparado, entity.RoleAdmin))
	assert.NoError(t, order.Transition(order.StatusSeparado, order.StatusEntregue, entity.RoleAdmin))
}

func TestTransition_Cancelamento(t *testing.T) {
	// admin pode cancelar a partir de solicitado ou separado
	assert.NoError(t, order.Transition(order.StatusSolicitado, order.StatusCancelado, entity.RoleAdmin))
	assert.NoError(t, order.Transition(order.StatusSeparado, order.StatusCancelado, entity.RoleAdmin))
}

func TestTransition_PerfilSemPermissao(t *testing.T) {
	// a aresta existe mas o perfil não pode executá-la
	assert.ErrorIs(t, order.Transition(order.StatusSeparado, order.StatusEntregue, entity.RoleAtendente), domain.ErrForbidden)
	assert.ErrorIs(t, order.Transition(order.StatusSolicitado, order.StatusCancelado, entity.RoleAtendente), domain.ErrForbidden)
	assert.ErrorIs(t, order.Transition(order.StatusSolicitado, order.StatusSeparado, entity.RoleCliente), domain.ErrForbidden)
}

func TestTransition_EstadosTerminaisRejeitamQualquerSaida(t *testing.T) {
	terminais := []string{order.StatusEntregue, order.StatusCancelado}
	destinos := []string{
		order.StatusSolicitado, order.StatusSeparado, order.StatusPronto,
		order.StatusEntregue, order.StatusCancelado,
	}
	for _, from := range terminais {
		for _, to := range destinos {
			err := order.Transition(from, to, entity.RoleAdmin)
			assert.ErrorIs(t, err, domain.ErrInvalidTransition,
				"de %s para %s deveria ser rejeitado", from, to)
		}
	}
}

func TestTransition_ArestasInexistentes(t *testing.T) {
	// pular etapa ou regredir não é permitido nem para admin
	assert.ErrorIs(t, order.Transition(order.StatusSolicitado, order.StatusEntregue, entity.RoleAdmin), domain.ErrInvalidTransition)
	assert.ErrorIs(t, order.Transition(order.StatusSeparado, order.StatusSolicitado, entity.RoleAdmin), domain.ErrInvalidTransition)
}

func TestTransition_ProntoDeclaradoMasInalcancavel(t *testing.T) {
	// "pronto" pertence ao domínio de status mas nenhuma transição chega nele
	assert.True(t, order.ValidStatus(order.StatusPronto))
	for _, from := range []string{order.StatusSolicitado, order.StatusSeparado} {
		assert.ErrorIs(t, order.Transition(from, order.StatusPronto, entity.RoleAdmin), domain.ErrInvalidTransition)
	}
}

func TestTransition_StatusForaDoDominio(t *testing.T) {
	assert.ErrorIs(t, order.Transition("despachado", order.StatusEntregue, entity.RoleAdmin), domain.ErrInvalidTransition)
	assert.ErrorIs(t, order.Transition(order.StatusSolicitado, "qualquer", entity.RoleAdmin), domain.ErrInvalidTransition)
}

func TestTerminal(t *testing.T) {
	assert.True(t, order.Terminal(order.StatusEntregue))
	assert.True(t, order.Terminal(order.StatusCancelado))
	assert.False(t, order.Terminal(order.StatusSolicitado))
	assert.False(t, order.Terminal(order.StatusSeparado))
	assert.False(t, order.Terminal(order.StatusPronto))
}
