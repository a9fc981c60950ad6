package repository

import "github.com/venus-soft/venus-inventory-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User.
type UserRepository interface {
	// Create persiste el usuario y rellena su ID; devuelve
	// domain.ErrEmailAlreadyExists si el email ya está registrado.
	Create(user *entity.User) error
	// GetByEmail devuelve (nil, nil) si no existe.
	GetByEmail(email string) (*entity.User, error)
	GetByID(id int64) (*entity.User, error)
}
