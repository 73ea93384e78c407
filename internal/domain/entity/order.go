package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order representa um pedido de N unidades de um prato, acompanhado pelo ciclo de status.
// Pedidos nunca são apagados; só mudam de status.
type Order struct {
	ID            string
	CustomerID    string // vazio = pedido anônimo
	MealID        string
	Quantity      int             // >= 1
	Total         decimal.Decimal // preço do prato x quantidade no momento do pedido
	Status        string          // ver internal/domain/order
	Portions      []string        // acompanhamentos escolhidos, lista ordenada
	PointOfSaleID string          // opcional
	PlacedAt      time.Time
}

// OrderSummary é a linha de listagem com campos de exibição anexados por join.
type OrderSummary struct {
	Order
	CustomerName string
	MealName     string
}
