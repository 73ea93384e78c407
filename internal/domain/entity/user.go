package entity

import "time"

// Perfis válidos para User.
const (
	RoleAdmin     = "admin"
	RoleAtendente = "atendente"
	RoleCliente   = "cliente"
)

// User representa um usuário do sistema (administrador, atendente ou cliente).
type User struct {
	ID            string
	Name          string
	Email         string // único, armazenado em minúsculas
	PasswordHash  string // hash bcrypt, nunca em texto plano depois de persistir
	Role          string // admin, atendente, cliente
	Phone         string
	Address       string
	PointOfSaleID string // ponto de venda vinculado (opcional)
	CreditBalance int    // saldo de créditos de refeição, >= 0
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
