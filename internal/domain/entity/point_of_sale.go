package entity

import "time"

// PointOfSale representa um ponto de venda físico onde as quentinhas são distribuídas.
type PointOfSale struct {
	ID          string
	Name        string
	Address     string
	Responsible string
	Phone       string
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
