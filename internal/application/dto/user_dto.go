package dto

// UpdateUserRequest payload de atualização de usuário (admin).
// Senha e saldo não são editáveis por aqui: saldo muda via aquisições.
type UpdateUserRequest struct {
	Name          string `json:"name" validate:"required"`
	Email         string `json:"email" validate:"required,email"`
	Role          string `json:"role" validate:"required,oneof=admin atendente cliente"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	PointOfSaleID string `json:"point_of_sale_id" validate:"omitempty,uuid"`
}

// UserListResponse listagem paginada de usuários.
type UserListResponse struct {
	Items []UserResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
