package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Acquisition representa uma compra de créditos de refeição por um cliente.
// Criar uma aquisição incrementa o CreditBalance do cliente na mesma transação.
type Acquisition struct {
	ID            string
	CustomerID    string
	Credits       int             // >= 1
	Amount        decimal.Decimal // valor pago
	PointOfSaleID string          // opcional
	CreatedAt     time.Time
}
