package repository

import "github.com/jhoicas/estoque-api/internal/domain/entity"

// UserRepository puerto de persistencia para usuarios.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	// GetByEmailExcluding busca un usuario con ese email distinto del ID dado
	// (para validar unicidad en updates).
	GetByEmailExcluding(email, excludeID string) (*entity.User, error)
	List() ([]*entity.User, error)
	Update(user *entity.User) error
	Delete(id string) error
}
