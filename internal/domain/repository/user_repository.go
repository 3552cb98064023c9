package repository

import "github.com/caixaflow/pdv-api/internal/domain/entity"

// UserRepository define o porto de persistência para operadores (DIP).
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	Update(user *entity.User) error
	List(limit, offset int) ([]*entity.User, error)
}
