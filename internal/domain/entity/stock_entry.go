package entity

import "time"

// StockEntry representa o estoque de um prato em um ponto de venda.
// É a fonte de verdade de quantidade; o total por prato é derivado por soma.
type StockEntry struct {
	MealID        string
	PointOfSaleID string
	AvailableQty  int  // >= 0
	Available     bool // invariante: Available == (AvailableQty > 0)
	UpdatedAt     time.Time
}
