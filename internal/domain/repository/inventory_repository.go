package repository

import "github.com/venus-soft/venus-inventory-api/internal/domain/entity"

// InventoryRepository define el puerto de persistencia para Inventory (DIP).
// GetByID y GetByIDForUpdate devuelven (nil, nil) si el ítem no existe.
type InventoryRepository interface {
	Create(item *entity.Inventory) error
	GetByID(id int64) (*entity.Inventory, error)
	// GetByIDForUpdate bloquea la fila del ítem (SELECT FOR UPDATE); solo tiene
	// sentido con un repositorio atado a una transacción.
	GetByIDForUpdate(id int64) (*entity.Inventory, error)
	List() ([]*entity.Inventory, error)
	Update(item *entity.Inventory) error
	Delete(id int64) error
}
