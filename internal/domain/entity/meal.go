package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Meal representa uma quentinha do cardápio.
// AvailableQty é uma projeção de leitura: soma das stock_entries do prato.
// A fonte de verdade do estoque é StockEntry (estoque por ponto de venda).
type Meal struct {
	ID           string
	Name         string
	Description  string
	Price        decimal.Decimal // preço unitário de venda
	Available    bool            // invariante: Available == (AvailableQty > 0)
	ImageURL     string          // opcional
	Ingredients  []string        // lista ordenada
	AvailableQty int             // projeção: SUM(stock_entries.available_qty)
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
