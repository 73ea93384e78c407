package order

import (
	"github.com/quentinhasdavovo/quentinhas-api/internal/domain"
	"github.com/quentinhasdavovo/quentinhas-api/internal/domain/entity"
)

// Status de pedido. "pronto" está declarado no domínio mas nenhuma transição
// chega até ele (estágio entre separado e entregue ainda não implementado).
const (
	StatusSolicitado = "solicitado"
	StatusSeparado   = "separado"
	StatusPronto     = "pronto"
	StatusEntregue   = "entregue"
	StatusCancelado  = "cancelado"
)

// edge identifica uma transição (origem -> destino).
type edge struct {
	from, to string
}

// transitions mapeia cada transição permitida aos perfis que podem executá-la.
// entregue e cancelado são terminais: não aparecem como origem.
var transitions = map[edge][]string{
	{StatusSolicitado, StatusSeparado}:  {entity.RoleAdmin, entity.RoleAtendente},
	{StatusSeparado, StatusEntregue}:    {entity.RoleAdmin},
	{StatusSolicitado, StatusCancelado}: {entity.RoleAdmin},
	{StatusSeparado, StatusCancelado}:   {entity.RoleAdmin},
}

// ValidStatus informa se s pertence ao domínio de status de pedido.
func ValidStatus(s string) bool {
	switch s {
	case StatusSolicitado, StatusSeparado, StatusPronto, StatusEntregue, StatusCancelado:
		return true
	}
	return false
}

// Terminal informa se o status não admite mais nenhuma transição.
func Terminal(s string) bool {
	return s == StatusEntregue || s == StatusCancelado
}

// Transition valida a transição from -> to para o perfil informado.
// Retorna ErrInvalidTransition para arestas inexistentes (inclusive qualquer
// saída de estado terminal) e ErrForbidden quando a aresta existe mas o perfil
// não pode executá-la. Todo mutador de status deve passar por aqui.
func Transition(from, to, role string) error {
	if !ValidStatus(from) || !ValidStatus(to) {
		return domain.ErrInvalidTransition
	}
	roles, ok := transitions[edge{from, to}]
	if !ok {
		return domain.ErrInvalidTransition
	}
	for _, r := range roles {
		if r == role {
			return nil
		}
	}
	return domain.ErrForbidden
}
