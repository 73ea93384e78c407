package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateOrderRequest payload de criação de pedido. O cliente vem do token
// (pedido anônimo = sem token). Sem PointOfSaleID, usa o ponto vinculado ao cliente.
type CreateOrderRequest struct {
	MealID        string   `json:"meal_id" validate:"required,uuid"`
	Quantity      int      `json:"quantity" validate:"required,min=1"`
	Portions      []string `json:"portions"`
	PointOfSaleID string   `json:"point_of_sale_id" validate:"omitempty,uuid"`
}

// UpdateOrderStatusRequest payload de transição de status.
type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=solicitado separado pronto entregue cancelado"`
}

// OrderResponse representação de um pedido.
type OrderResponse struct {
	ID            string          `json:"id"`
	CustomerID    string          `json:"customer_id,omitempty"`
	CustomerName  string          `json:"customer_name,omitempty"`
	MealID        string          `json:"meal_id"`
	MealName      string          `json:"meal_name,omitempty"`
	Quantity      int             `json:"quantity"`
	Total         decimal.Decimal `json:"total"`
	Status        string          `json:"status"`
	Portions      []string        `json:"portions"`
	PointOfSaleID string          `json:"point_of_sale_id,omitempty"`
	PlacedAt      time.Time       `json:"placed_at"`
}

// PlaceOrderResponse pedido criado + estoque restante no ponto de venda.
type PlaceOrderResponse struct {
	Order        OrderResponse `json:"order"`
	RemainingQty int           `json:"remaining_qty"`
}

// OrderListResponse listagem paginada de pedidos.
type OrderListResponse struct {
	Items []OrderResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}
