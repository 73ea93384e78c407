package repository

import "github.com/quentinhasdavovo/quentinhas-api/internal/domain/entity"

// UserRepository porta de persistência para usuários.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	List(limit, offset int) ([]*entity.User, error)
	Update(user *entity.User) error
	Delete(id string) error
	// AddCredits incrementa o saldo de créditos do usuário.
	AddCredits(id string, credits int) error
}
