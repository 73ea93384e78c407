package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateMealRequest payload de criação de prato.
type CreateMealRequest struct {
	Name        string          `json:"name" validate:"required"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price" validate:"required"`
	ImageURL    string          `json:"image_url" validate:"omitempty,url"`
	Ingredients []string        `json:"ingredients"`
}

// UpdateMealRequest payload de atualização de prato.
type UpdateMealRequest struct {
	Name        string          `json:"name" validate:"required"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price" validate:"required"`
	ImageURL    string          `json:"image_url" validate:"omitempty,url"`
	Ingredients []string        `json:"ingredients"`
}

// MealResponse representação de um prato com a quantidade projetada.
type MealResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Description  string          `json:"description,omitempty"`
	Price        decimal.Decimal `json:"price"`
	Available    bool            `json:"available"`
	ImageURL     string          `json:"image_url,omitempty"`
	Ingredients  []string        `json:"ingredients"`
	AvailableQty int             `json:"available_qty"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// MealListResponse listagem paginada de pratos.
type MealListResponse struct {
	Items []MealResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}

// UpsertStockRequest payload para definir o estoque de um prato em um ponto de venda.
type UpsertStockRequest struct {
	MealID        string `json:"meal_id" validate:"required,uuid"`
	PointOfSaleID string `json:"point_of_sale_id" validate:"required,uuid"`
	AvailableQty  int    `json:"available_qty" validate:"min=0"`
}

// StockResponse estoque de um prato em um ponto de venda.
type StockResponse struct {
	MealID        string    `json:"meal_id"`
	PointOfSaleID string    `json:"point_of_sale_id"`
	AvailableQty  int       `json:"available_qty"`
	Available     bool      `json:"available"`
	UpdatedAt     time.Time `json:"updated_at"`
}
