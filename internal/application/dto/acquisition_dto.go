package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateAcquisitionRequest payload de compra de créditos de refeição.
type CreateAcquisitionRequest struct {
	CustomerID    string          `json:"customer_id" validate:"required,uuid"`
	Credits       int             `json:"credits" validate:"required,min=1"`
	Amount        decimal.Decimal `json:"amount" validate:"required"`
	PointOfSaleID string          `json:"point_of_sale_id" validate:"omitempty,uuid"`
}

// AcquisitionResponse representação de uma aquisição de créditos.
type AcquisitionResponse struct {
	ID            string          `json:"id"`
	CustomerID    string          `json:"customer_id"`
	Credits       int             `json:"credits"`
	Amount        decimal.Decimal `json:"amount"`
	PointOfSaleID string          `json:"point_of_sale_id,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	// Saldo do cliente depois da aquisição.
	NewBalance int `json:"new_balance"`
}

// AcquisitionListResponse listagem paginada de aquisições.
type AcquisitionListResponse struct {
	Items []AcquisitionResponse `json:"items"`
	Page  PageResponse          `json:"page"`
}
