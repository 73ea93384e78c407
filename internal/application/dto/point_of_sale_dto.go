package dto

import "time"

// CreatePointOfSaleRequest payload de criação de ponto de venda.
type CreatePointOfSaleRequest struct {
	Name        string `json:"name" validate:"required"`
	Address     string `json:"address" validate:"required"`
	Responsible string `json:"responsible"`
	Phone       string `json:"phone"`
	Active      bool   `json:"active"`
}

// UpdatePointOfSaleRequest payload de atualização de ponto de venda.
type UpdatePointOfSaleRequest struct {
	Name        string `json:"name" validate:"required"`
	Address     string `json:"address" validate:"required"`
	Responsible string `json:"responsible"`
	Phone       string `json:"phone"`
	Active      bool   `json:"active"`
}

// PointOfSaleResponse representação de um ponto de venda.
type PointOfSaleResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Address     string    `json:"address"`
	Responsible string    `json:"responsible,omitempty"`
	Phone       string    `json:"phone,omitempty"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// PointOfSaleListResponse listagem paginada de pontos de venda.
type PointOfSaleListResponse struct {
	Items []PointOfSaleResponse `json:"items"`
	Page  PageResponse          `json:"page"`
}
